package grid1d

// partition splits interleaved positions in a single pass. Points whose index
// has the same parity as anchor go to walls, the others to centers. Both
// results are fresh slices in input order.
func partition(positions []float64, anchor int) (walls, centers []float64) {
	n := len(positions)
	nwalls := (n + 1 - anchor%2) / 2
	walls = make([]float64, 0, nwalls)
	centers = make([]float64, 0, n-nwalls)
	for i, x := range positions {
		if (i-anchor)%2 == 0 {
			walls = append(walls, x)
		} else {
			centers = append(centers, x)
		}
	}
	return walls, centers
}

// merge is the inverse of partition for increasing inputs: it interleaves
// a and b by ascending value into a new slice.
func merge(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

// validateIncreasing returns ErrNonMonotonic unless every adjacent pair is
// strictly increasing. The negated comparison also rejects NaN.
func validateIncreasing(xs []float64) error {
	for i := 1; i < len(xs); i++ {
		if !(xs[i-1] < xs[i]) {
			return ErrNonMonotonic
		}
	}
	return nil
}
