// Package grid1d provides the one-dimensional staggered grid used by
// finite-volume and finite-difference solvers.
//
// What:
//
//   - StaggeredGrid splits an ascending array of positions, where cell walls
//     and cell centers alternate, into two sequences: walls and centers.
//   - It records which points belong to the physical ("bulk") domain and
//     which are ghost padding kept for boundary stencils.
//   - Line is the non-staggered special case: a single increasing sequence
//     with no ghost bookkeeping.
//
// Layout of a grid with one bulk cell and one ghost center on each side
// (New(1, 1, positions)):
//
//	index:     0     1     2     3     4
//	position: -0.5   0    0.5    1    1.5
//	kind:      C     W     C     W     C
//	bulk:            [-----------]
//
// Walls are the points sharing the parity of ilowerWall; every other point
// is a center. The bulk walls are ilowerWall..ilowerWall+2*nbulkCells.
//
// Complexity:
//
//   - New, Uniform, NewLine: O(n) time and memory.
//   - At, Bulk, BulkRange, Span, Contains: O(1), no allocation.
//   - Positions: O(n).
//
// Errors:
//
//   - ErrSingularGrid: no bulk cell requested (or fewer than 2 points for a Line).
//   - ErrMissingPositions: no ghost point below or above the bulk region.
//   - ErrNonMonotonic: positions are not strictly increasing.
//   - ErrInvalidPosition: unknown position name passed to ParsePosition.
//   - ErrTooLarge: Uniform asked for more than MaxUniformPoints positions.
//
// A grid is immutable once built and can be shared between goroutines
// without locking.
package grid1d
