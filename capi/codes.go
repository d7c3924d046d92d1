// SPDX-License-Identifier: MIT

package capi

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/staggrid/grid1d"
)

// Code is the status reported through the C error out-parameter.
type Code int32

const (
	OK               Code = 0
	SingularGrid     Code = 1
	NonMonotonic     Code = 2
	MissingPositions Code = 3
	InvalidPosition  Code = 4
	InvalidHandle    Code = 5
	AllocFailed      Code = -1
)

// ErrInvalidHandle is returned by Code.Err for InvalidHandle.
var ErrInvalidHandle = errors.New("capi: invalid grid handle")

// ErrAllocFailed is returned by Code.Err for AllocFailed.
var ErrAllocFailed = errors.New("capi: buffer allocation failed")

// CodeOf maps an error to its status code. nil maps to OK; errors outside
// the grid1d taxonomy panic, as they indicate a missing mapping.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, grid1d.ErrSingularGrid):
		return SingularGrid
	case errors.Is(err, grid1d.ErrNonMonotonic):
		return NonMonotonic
	case errors.Is(err, grid1d.ErrMissingPositions):
		return MissingPositions
	case errors.Is(err, grid1d.ErrInvalidPosition):
		return InvalidPosition
	case errors.Is(err, ErrInvalidHandle):
		return InvalidHandle
	case errors.Is(err, ErrAllocFailed):
		return AllocFailed
	}
	panic(fmt.Sprintf("capi: no status code for %v", err))
}

// Err is the inverse of CodeOf. OK and unknown codes return nil.
func (c Code) Err() error {
	switch c {
	case SingularGrid:
		return grid1d.ErrSingularGrid
	case NonMonotonic:
		return grid1d.ErrNonMonotonic
	case MissingPositions:
		return grid1d.ErrMissingPositions
	case InvalidPosition:
		return grid1d.ErrInvalidPosition
	case InvalidHandle:
		return ErrInvalidHandle
	case AllocFailed:
		return ErrAllocFailed
	}
	return nil
}

func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case SingularGrid:
		return "singular grid"
	case NonMonotonic:
		return "non-monotonic positions"
	case MissingPositions:
		return "missing ghost positions"
	case InvalidPosition:
		return "invalid position"
	case InvalidHandle:
		return "invalid handle"
	case AllocFailed:
		return "allocation failed"
	}
	return fmt.Sprintf("Code(%d)", int32(c))
}
