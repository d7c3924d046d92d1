package main

import "math"

// sizeToInt converts a C size_t to int, saturating at math.MaxInt. A huge
// count then fails the grid's range checks instead of wrapping negative.
func sizeToInt(v uint64) int {
	if v > math.MaxInt {
		return math.MaxInt
	}
	return int(v)
}
