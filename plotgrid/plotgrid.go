// Package plotgrid draws a staggered grid as a two-row strip chart: walls on
// the upper row, centers on the lower one, ghost points greyed out and the
// bulk boundaries marked by dashed vertical lines.
package plotgrid

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/staggrid/grid1d"
)

// ErrUnsupportedFormat indicates an image format Render cannot produce.
var ErrUnsupportedFormat = errors.New("plotgrid: unsupported image format")

const (
	wallRow   = 1.0
	centerRow = 0.0
)

var (
	wallColor   = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	centerColor = color.RGBA{R: 40, G: 80, B: 200, A: 255}
	ghostColor  = color.Gray{Y: 160}
	bulkColor   = color.Black
)

// Options controls the rendered image.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	// Format is an image extension understood by gonum/plot: png, svg, pdf, jpg, eps, tif.
	Format string
}

// DefaultOptions returns a 16cm x 5cm PNG with no title.
func DefaultOptions() Options {
	return Options{
		Width:  16 * vg.Centimeter,
		Height: 5 * vg.Centimeter,
		Format: "png",
	}
}

// New builds the plot for g.
func New(g *grid1d.StaggeredGrid, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "position"
	p.Y.Min, p.Y.Max = centerRow-0.5, wallRow+0.5
	p.Y.Tick.Marker = plot.ConstantTicks([]plot.Tick{
		{Value: centerRow, Label: "centers"},
		{Value: wallRow, Label: "walls"},
	})

	for _, fam := range []struct {
		pos   grid1d.Position
		row   float64
		color color.Color
		shape draw.GlyphDrawer
	}{
		{grid1d.Walls, wallRow, wallColor, draw.BoxGlyph{}},
		{grid1d.Centers, centerRow, centerColor, draw.CircleGlyph{}},
	} {
		bulk, ghosts := split(g, fam.pos, fam.row)

		bs, err := scatter(bulk, fam.color, fam.shape)
		if err != nil {
			return nil, err
		}
		p.Add(bs)
		p.Legend.Add(fam.pos.String(), bs)

		// A family may have no ghosts at all (e.g. walls when the padding
		// is a single center); an empty scatter has no data range.
		if len(ghosts) > 0 {
			gs, err := scatter(ghosts, ghostColor, fam.shape)
			if err != nil {
				return nil, err
			}
			p.Add(gs)
		}
	}
	p.Legend.Add("ghosts", ghostThumb{draw.GlyphStyle{Color: ghostColor, Shape: draw.CircleGlyph{}, Radius: vg.Points(3)}})

	for _, x := range []float64{g.Lower(), g.Upper()} {
		l, err := plotter.NewLine(plotter.XYs{{X: x, Y: p.Y.Min}, {X: x, Y: p.Y.Max}})
		if err != nil {
			return nil, fmt.Errorf("plotgrid: bulk boundary: %w", err)
		}
		l.Color = bulkColor
		l.Width = vg.Points(1)
		l.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(l)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	return p, nil
}

// Render writes the plot of g to w in opts.Format.
func Render(w io.Writer, g *grid1d.StaggeredGrid, opts Options) error {
	format := strings.ToLower(strings.TrimPrefix(opts.Format, "."))
	switch format {
	case "png", "svg", "pdf", "jpg", "jpeg", "eps", "tif", "tiff":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}
	p, err := New(g, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return fmt.Errorf("plotgrid: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("plotgrid: write: %w", err)
	}
	return nil
}

// split returns the bulk and ghost points of family pos placed on row y.
func split(g *grid1d.StaggeredGrid, pos grid1d.Position, y float64) (bulk, ghosts plotter.XYs) {
	r := g.BulkRange(pos)
	for i, x := range g.At(pos) {
		xy := plotter.XY{X: x, Y: y}
		if r.Contains(i) {
			bulk = append(bulk, xy)
		} else {
			ghosts = append(ghosts, xy)
		}
	}
	return bulk, ghosts
}

func scatter(xys plotter.XYs, c color.Color, shape draw.GlyphDrawer) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("plotgrid: scatter: %w", err)
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Shape = shape
	s.GlyphStyle.Radius = vg.Points(3)
	return s, nil
}

// ghostThumb is the legend entry shared by ghost walls and ghost centers.
type ghostThumb struct {
	style draw.GlyphStyle
}

func (t ghostThumb) Thumbnail(c *draw.Canvas) {
	c.DrawGlyph(t.style, c.Center())
}
