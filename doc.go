// Package staggrid is a small toolkit for one-dimensional staggered grids,
// the layout finite-volume solvers use to keep fluxes on cell walls and
// state on cell centers.
//
// 🚀 What is a staggered grid?
//
//	A single strictly increasing sequence of positions in which walls and
//	centers alternate. The bulk region holds the physical cells; ghost
//	points pad it on both sides for boundary conditions:
//
//	   c   w   c   w   c
//	   ·───|───·───|───·
//	 ghost └─ bulk ──┘ ghost
//
// Under the hood, everything is organized in a few subpackages:
//
//	grid1d/         - StaggeredGrid, Line and the Uniform generator
//	domain/         - bounded physical domains and containment checks
//	capi/           - handle registry and status codes behind the C ABI
//	gridio/         - YAML, JSON and MessagePack grid descriptions
//	plotgrid/       - gonum/plot rendering of a grid
//	cmd/libstaggrid - c-shared library exporting grid_c_* functions
//	cmd/staggrid    - describe, generate and plot from the command line
//
// Quick example:
//
//	g, err := grid1d.New(1, 1, []float64{-0.5, 0, 0.5, 1, 1.5})
//	// g.At(grid1d.Walls)   == [0 1]
//	// g.At(grid1d.Centers) == [-0.5 0.5 1.5]
//	// g.Span()             == 1
//
//	go get github.com/katalvlaran/staggrid
package staggrid
