package grid1d

import "fmt"

// New builds a StaggeredGrid from interleaved wall/center positions.
//
// positions holds every point of the grid, ghosts included, in strictly
// ascending order with walls and centers alternating. ilowerWall is the index
// in positions of the wall bounding the physical domain from below, and
// nbulkCells the number of physical cells. The upper bulk wall is then at
// ilowerWall + 2*nbulkCells.
//
// Validation order:
//  1. nbulkCells < 1                                  → ErrSingularGrid
//  2. ilowerWall < 1 or upper wall >= len(positions)-1 → ErrMissingPositions
//  3. positions not strictly increasing               → ErrNonMonotonic
//
// positions is copied; the grid never aliases caller memory.
//
// Complexity: O(n) time and memory.
func New(nbulkCells, ilowerWall int, positions []float64) (*StaggeredGrid, error) {
	if nbulkCells < 1 {
		return nil, ErrSingularGrid
	}
	n := len(positions)
	// Both bounds keep ilowerWall + 2*nbulkCells from overflowing.
	if ilowerWall < 1 || ilowerWall >= n || nbulkCells > n {
		return nil, ErrMissingPositions
	}
	iupperWall := ilowerWall + 2*nbulkCells
	if iupperWall >= n-1 {
		return nil, ErrMissingPositions
	}
	if err := validateIncreasing(positions); err != nil {
		return nil, err
	}

	walls, centers := partition(positions, ilowerWall)

	// Raw index i maps to local index i/2 in either family, since the
	// family starting at raw index 1 drops exactly one leading point.
	return &StaggeredGrid{
		walls:      walls,
		centers:    centers,
		wallBulk:   Range{Lower: ilowerWall / 2, Upper: iupperWall / 2},
		centerBulk: Range{Lower: (ilowerWall + 1) / 2, Upper: (iupperWall - 1) / 2},
		ncells:     nbulkCells,
	}, nil
}

// At returns every point of the requested family, ghosts included.
// The returned slice is a view into the grid and must not be modified.
// At panics if p is not Walls or Centers.
func (g *StaggeredGrid) At(p Position) []float64 {
	switch p {
	case Walls:
		return g.walls[:len(g.walls):len(g.walls)]
	case Centers:
		return g.centers[:len(g.centers):len(g.centers)]
	}
	panic(fmt.Sprintf("grid1d: unknown position %d", int(p)))
}

// BulkRange returns the inclusive index range of non-ghost points within
// At(p). It spans NCells()+1 walls or NCells() centers.
func (g *StaggeredGrid) BulkRange(p Position) Range {
	switch p {
	case Walls:
		return g.wallBulk
	case Centers:
		return g.centerBulk
	}
	panic(fmt.Sprintf("grid1d: unknown position %d", int(p)))
}

// Bulk returns the non-ghost points of the requested family as a view.
func (g *StaggeredGrid) Bulk(p Position) []float64 {
	r := g.BulkRange(p)
	return g.At(p)[r.Lower : r.Upper+1 : r.Upper+1]
}

// Len returns the number of points, ghosts included, in family p.
func (g *StaggeredGrid) Len(p Position) int {
	return len(g.At(p))
}

// NGhosts returns how many ghost points of family p lie below and above
// the bulk region.
func (g *StaggeredGrid) NGhosts(p Position) (lower, upper int) {
	r := g.BulkRange(p)
	return r.Lower, g.Len(p) - 1 - r.Upper
}

// NCells returns the number of bulk cells.
func (g *StaggeredGrid) NCells() int {
	return g.ncells
}

// Span returns the width of the physical domain, the distance between the
// lower and upper bulk walls. It is always strictly positive.
func (g *StaggeredGrid) Span() float64 {
	return g.walls[g.wallBulk.Upper] - g.walls[g.wallBulk.Lower]
}

// Lower returns the position of the lower bulk wall.
func (g *StaggeredGrid) Lower() float64 {
	return g.walls[g.wallBulk.Lower]
}

// Upper returns the position of the upper bulk wall.
func (g *StaggeredGrid) Upper() float64 {
	return g.walls[g.wallBulk.Upper]
}

// Contains reports whether x lies within the physical domain, bulk walls
// included.
func (g *StaggeredGrid) Contains(x float64) bool {
	return x >= g.Lower() && x <= g.Upper()
}

// LowerWallIndex returns the index of the lower bulk wall within
// Positions(), i.e. the ilowerWall the grid was built with.
func (g *StaggeredGrid) LowerWallIndex() int {
	i := 2 * g.wallBulk.Lower
	if g.centers[0] < g.walls[0] {
		i++
	}
	return i
}

// Positions returns a newly allocated copy of the interleaved positions the
// grid was built from.
//
// Complexity: O(n).
func (g *StaggeredGrid) Positions() []float64 {
	return merge(g.walls, g.centers)
}

func (g *StaggeredGrid) String() string {
	return fmt.Sprintf("StaggeredGrid{cells: %d, span: %g, walls: %d %v, centers: %d %v}",
		g.ncells, g.Span(), len(g.walls), g.wallBulk, len(g.centers), g.centerBulk)
}
