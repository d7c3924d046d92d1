// Package domain describes the physical extent of a simulation as one
// bounded interval per dimension, and checks it against 1D grids.
//
// A Domain is immutable once built. Each dimension is a Bounds with
// Lower < Upper; Within reports whether every dimension fits inside the
// grid given for it.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBounds indicates Lower >= Upper (or a NaN bound).
	ErrInvalidBounds = errors.New("domain: lower bound must be smaller than upper bound")
	// ErrNoDimensions indicates a Domain built without any Bounds.
	ErrNoDimensions = errors.New("domain: at least one dimension is required")
	// ErrDimensionMismatch indicates a grid count different from Dims().
	ErrDimensionMismatch = errors.New("domain: one grid per dimension is required")
)

// Extent is anything that can tell whether a coordinate lies inside it.
// *grid1d.StaggeredGrid and *grid1d.Line both satisfy it.
type Extent interface {
	Contains(x float64) bool
}

// Bounds is a closed interval [Lower, Upper] with Lower < Upper.
type Bounds struct {
	Lower, Upper float64
}

// NewBounds returns ErrInvalidBounds unless lower < upper.
func NewBounds(lower, upper float64) (Bounds, error) {
	if !(lower < upper) {
		return Bounds{}, ErrInvalidBounds
	}
	return Bounds{Lower: lower, Upper: upper}, nil
}

// Width returns Upper - Lower.
func (b Bounds) Width() float64 { return b.Upper - b.Lower }

// Within reports whether both ends of b lie inside e.
func (b Bounds) Within(e Extent) bool {
	return e.Contains(b.Lower) && e.Contains(b.Upper)
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%g, %g]", b.Lower, b.Upper)
}

// Domain is an axis-aligned box, one Bounds per dimension.
type Domain struct {
	bounds []Bounds
}

// New builds a Domain from (lower, upper) pairs, one per dimension.
// The first invalid pair is reported as ErrInvalidBounds wrapped with its
// dimension index.
func New(pairs ...[2]float64) (*Domain, error) {
	if len(pairs) == 0 {
		return nil, ErrNoDimensions
	}
	bounds := make([]Bounds, len(pairs))
	for i, p := range pairs {
		b, err := NewBounds(p[0], p[1])
		if err != nil {
			return nil, fmt.Errorf("domain: dimension %d: %w", i, err)
		}
		bounds[i] = b
	}
	return &Domain{bounds: bounds}, nil
}

// Dims returns the number of dimensions.
func (d *Domain) Dims() int { return len(d.bounds) }

// Bounds returns the interval of dimension i. It panics if i is out of range.
func (d *Domain) Bounds(i int) Bounds { return d.bounds[i] }

// Within reports whether every dimension of d fits inside the matching grid.
// grids must hold exactly Dims() entries, else ErrDimensionMismatch.
func (d *Domain) Within(grids ...Extent) (bool, error) {
	if len(grids) != len(d.bounds) {
		return false, ErrDimensionMismatch
	}
	for i, b := range d.bounds {
		if !b.Within(grids[i]) {
			return false, nil
		}
	}
	return true, nil
}
