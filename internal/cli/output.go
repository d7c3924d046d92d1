package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/staggrid/grid1d"
	"github.com/katalvlaran/staggrid/gridio"
)

// palette holds the colors of text output for one invocation. --no-color
// disables them here and leaves color.NoColor alone.
type palette struct {
	header  *color.Color
	label   *color.Color
	ghost   *color.Color
	success *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		header:  color.New(color.FgBlue, color.Bold),
		label:   color.New(color.FgCyan),
		ghost:   color.New(color.Faint),
		success: color.New(color.FgGreen, color.Bold),
	}
	if !enabled {
		for _, c := range []*color.Color{p.header, p.label, p.ghost, p.success} {
			c.DisableColor()
		}
	}
	return p
}

// emitSummary prints g in the configured output format.
func (a *app) emitSummary(name string, g *grid1d.StaggeredGrid) error {
	switch a.cfg.Output.Format {
	case "json":
		return gridio.Encode(a.stdout, gridio.JSON, gridio.Summarize(name, g))
	case "yaml":
		return gridio.Encode(a.stdout, gridio.YAML, gridio.Summarize(name, g))
	}
	renderGrid(a.stdout, a.pal, name, g)
	return nil
}

// renderGrid writes the text layout:
//
//	one-cell
//	  cells   1
//	  extent  [0, 1]  span 1
//	  walls   0 1  (bulk [0, 1], ghosts 0+0)
//	  centers -0.5 0.5 1.5  (bulk [1, 1], ghosts 1+1)
//
// Ghost points are printed faint when colors are on.
func renderGrid(w io.Writer, pal palette, name string, g *grid1d.StaggeredGrid) {
	if name == "" {
		name = "grid"
	}
	pal.header.Fprintln(w, name)
	fmt.Fprintf(w, "  %-8s%d\n", "cells", g.NCells())
	fmt.Fprintf(w, "  %-8s[%g, %g]  span %g\n", "extent", g.Lower(), g.Upper(), g.Span())

	for _, p := range []grid1d.Position{grid1d.Walls, grid1d.Centers} {
		r := g.BulkRange(p)
		pal.label.Fprintf(w, "  %-8s", p)
		for i, x := range g.At(p) {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			if r.Contains(i) {
				fmt.Fprintf(w, "%g", x)
			} else {
				pal.ghost.Fprintf(w, "%g", x)
			}
		}
		lo, hi := g.NGhosts(p)
		fmt.Fprintf(w, "  (bulk %s, ghosts %d+%d)\n", r, lo, hi)
	}
}
