package grid1d

import "gonum.org/v1/gonum/floats"

// MaxUniformPoints caps the number of positions Uniform allocates
// (1 GiB of float64).
const MaxUniformPoints = 1 << 27

// Uniform builds an evenly spaced StaggeredGrid of nbulkCells cells between
// the bulk walls lower and upper, padded with nghostCells full ghost cells
// (one wall and one center each) on both sides.
//
// The layout has 2*(nbulkCells+2*nghostCells)+1 points and starts and ends
// with a ghost wall; the lower bulk wall sits at index 2*nghostCells.
//
// Errors are those of New: ErrSingularGrid for nbulkCells < 1,
// ErrMissingPositions for nghostCells < 1, ErrNonMonotonic when
// upper <= lower or either bound is not finite. Layouts over
// MaxUniformPoints points fail with ErrTooLarge before anything is allocated.
func Uniform(nbulkCells, nghostCells int, lower, upper float64) (*StaggeredGrid, error) {
	if nbulkCells < 1 {
		return nil, ErrSingularGrid
	}
	if nghostCells < 1 {
		return nil, ErrMissingPositions
	}
	// Each count is bounded first so the sum below cannot overflow.
	if nbulkCells > MaxUniformPoints/2 || nghostCells > MaxUniformPoints/4 ||
		2*(nbulkCells+2*nghostCells)+1 > MaxUniformPoints {
		return nil, ErrTooLarge
	}
	dx := (upper - lower) / float64(nbulkCells)
	pad := float64(nghostCells) * dx
	positions := make([]float64, 2*(nbulkCells+2*nghostCells)+1)
	floats.Span(positions, lower-pad, upper+pad)

	ilower := 2 * nghostCells
	// Pin the bulk walls to the requested bounds so Span() == upper-lower.
	positions[ilower] = lower
	positions[ilower+2*nbulkCells] = upper

	return New(nbulkCells, ilower, positions)
}
