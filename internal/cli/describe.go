package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/staggrid/grid1d"
	"github.com/katalvlaran/staggrid/gridio"
)

func (a *app) newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe FILE",
		Short: "Build the grid described in FILE and print its layout",
		Long: `Build the grid described in FILE and print its walls, centers,
bulk ranges and span. Construction errors (singular grid, missing ghost
positions, non-monotonic positions) are reported and exit non-zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, g, err := a.load(args[0])
			if err != nil {
				return err
			}
			return a.emitSummary(name, g)
		},
	}
}

// load decodes and builds the description at path. The returned name is the
// description's own name, or the file's base name when it has none.
func (a *app) load(path string) (string, *grid1d.StaggeredGrid, error) {
	d, err := gridio.Load(path)
	if err != nil {
		return "", nil, err
	}
	g, err := d.Build()
	if err != nil {
		a.log.Warn("grid construction failed", zap.String("path", path), zap.Error(err))
		return "", nil, err
	}

	name := d.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	a.log.Debug("loaded description",
		zap.String("path", path),
		zap.String("name", name),
		zap.Int("cells", g.NCells()),
		zap.Bool("uniform", d.Uniform != nil))
	return name, g, nil
}
