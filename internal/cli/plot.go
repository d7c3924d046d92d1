package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/staggrid/grid1d"
	"github.com/katalvlaran/staggrid/plotgrid"
)

func (a *app) newPlotCmd() *cobra.Command {
	var out, title string

	cmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "Render the grid described in FILE as an image",
		Long: `Render the grid described in FILE: walls on the upper row, centers on
the lower row, ghost points in grey and the bulk boundaries dashed.

The image format follows the extension of --out, falling back to
plot.format from the configuration.`,
		Example: `  staggrid plot grid.yaml -o grid.svg`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, g, err := a.load(args[0])
			if err != nil {
				return err
			}

			opts := plotgrid.DefaultOptions()
			opts.Title = title
			if opts.Title == "" {
				opts.Title = name
			}
			opts.Width = vg.Length(a.cfg.Plot.WidthCM) * vg.Centimeter
			opts.Height = vg.Length(a.cfg.Plot.HeightCM) * vg.Centimeter
			opts.Format = a.cfg.Plot.Format
			if ext := strings.TrimPrefix(filepath.Ext(out), "."); ext != "" {
				opts.Format = ext
			}

			if err := writePlot(out, g, opts); err != nil {
				return err
			}
			a.log.Info("wrote plot", zap.String("path", out), zap.String("format", opts.Format))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output image file")
	cmd.Flags().StringVar(&title, "title", "", "Plot title (default: grid name)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// writePlot renders g into path. A partially written file is removed.
func writePlot(path string, g *grid1d.StaggeredGrid, opts plotgrid.Options) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cli: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("cli: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return plotgrid.Render(fh, g, opts)
}
