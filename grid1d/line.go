package grid1d

// Line is a non-staggered 1D grid: a single strictly increasing sequence of
// at least two points, with no ghost bookkeeping. It is immutable once built.
type Line struct {
	points []float64
}

// NewLine validates and copies points.
// Returns ErrSingularGrid for fewer than two points and ErrNonMonotonic if
// the points do not strictly increase.
func NewLine(points []float64) (*Line, error) {
	if len(points) < 2 {
		return nil, ErrSingularGrid
	}
	if err := validateIncreasing(points); err != nil {
		return nil, err
	}
	cp := make([]float64, len(points))
	copy(cp, points)
	return &Line{points: cp}, nil
}

// First returns the lowest point.
func (l *Line) First() float64 { return l.points[0] }

// Last returns the highest point.
func (l *Line) Last() float64 { return l.points[len(l.points)-1] }

// Span returns Last() - First().
func (l *Line) Span() float64 { return l.Last() - l.First() }

// Contains reports whether x lies within [First(), Last()].
func (l *Line) Contains(x float64) bool {
	return x >= l.First() && x <= l.Last()
}

// Points returns a view of the points; it must not be modified.
func (l *Line) Points() []float64 {
	return l.points[:len(l.points):len(l.points)]
}

// Len returns the number of points.
func (l *Line) Len() int { return len(l.points) }
