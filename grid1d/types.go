package grid1d

import (
	"fmt"
	"strings"
)

// Position selects one of the two point families of a staggered grid.
// The numeric values are stable and used as tags across the C boundary.
type Position int

const (
	// Walls selects cell faces.
	Walls Position = iota
	// Centers selects cell centers.
	Centers
)

// String returns "walls" or "centers".
func (p Position) String() string {
	switch p {
	case Walls:
		return "walls"
	case Centers:
		return "centers"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// Valid reports whether p is Walls or Centers.
func (p Position) Valid() bool {
	return p == Walls || p == Centers
}

// ParsePosition converts a case-insensitive name ("walls", "centers")
// into a Position. Surrounding whitespace is ignored.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "walls":
		return Walls, nil
	case "centers":
		return Centers, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
}

// Range is an inclusive index range [Lower, Upper] into a point sequence.
type Range struct {
	Lower, Upper int
}

// Len returns the number of indices covered by r.
func (r Range) Len() int {
	return r.Upper - r.Lower + 1
}

// Contains reports whether index i lies inside r.
func (r Range) Contains(i int) bool {
	return i >= r.Lower && i <= r.Upper
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Lower, r.Upper)
}

// StaggeredGrid is a 1D staggered grid. It is immutable once built.
// walls and centers include ghost points; wallBulk and centerBulk are
// inclusive local index ranges of the physical domain in each sequence.
type StaggeredGrid struct {
	walls      []float64
	centers    []float64
	wallBulk   Range
	centerBulk Range
	ncells     int
}
