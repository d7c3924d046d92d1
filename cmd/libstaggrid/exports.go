//go:build cgo

package main

/*
#include <stddef.h>
#include <stdint.h>
#include <stdlib.h>

#define STAGGRID_POSITION_WALLS 0
#define STAGGRID_POSITION_CENTERS 1

#define STAGGRID_OK 0
#define STAGGRID_SINGULAR_GRID 1
#define STAGGRID_NON_MONOTONIC 2
#define STAGGRID_MISSING_POSITIONS 3
#define STAGGRID_INVALID_POSITION 4
#define STAGGRID_INVALID_HANDLE 5
#define STAGGRID_ALLOC_FAILED -1

typedef uintptr_t staggrid_handle;
*/
import "C"

import (
	"math"
	"os"
	"unsafe"

	"go.uber.org/zap"

	"github.com/katalvlaran/staggrid/capi"
)

var registry = capi.NewRegistry(capi.WithLogger(newLogger()))

// newLogger enables development logging when STAGGRID_DEBUG is set;
// otherwise the library stays silent.
func newLogger() *zap.Logger {
	if os.Getenv("STAGGRID_DEBUG") == "" {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func setErr(ierr *C.int32_t, code capi.Code) {
	if ierr != nil {
		*ierr = C.int32_t(code)
	}
}

// grid_c_create builds a grid from len_positions doubles. On failure it
// returns 0 and stores the status code in *ierr.
//
//export grid_c_create
func grid_c_create(nbulkCells, ilowerWall C.size_t, positions *C.double, lenPositions C.size_t, ierr *C.int32_t) C.staggrid_handle {
	var xs []float64
	if positions != nil && lenPositions > 0 {
		xs = unsafe.Slice((*float64)(unsafe.Pointer(positions)), int(lenPositions))
	}
	h, code := registry.Create(sizeToInt(uint64(nbulkCells)), sizeToInt(uint64(ilowerWall)), xs)
	setErr(ierr, code)
	return C.staggrid_handle(h)
}

// grid_c_destroy releases a grid. Later calls with the same handle report
// STAGGRID_INVALID_HANDLE.
//
//export grid_c_destroy
func grid_c_destroy(grid C.staggrid_handle) {
	registry.Destroy(capi.Handle(grid))
}

// grid_c_span returns the bulk width, or NaN for an invalid handle.
//
//export grid_c_span
func grid_c_span(grid C.staggrid_handle) C.double {
	span, code := registry.Span(capi.Handle(grid))
	if code != capi.OK {
		return C.double(math.NaN())
	}
	return C.double(span)
}

// grid_c_at returns a malloc'ed copy of the walls or centers. The caller
// owns it and releases it with grid_c_free. Empty results are NULL with
// *length == 0.
//
//export grid_c_at
func grid_c_at(grid C.staggrid_handle, position C.uint8_t, length *C.size_t, ierr *C.int32_t) *C.double {
	if length != nil {
		*length = 0
	}
	buf, code := registry.At(capi.Handle(grid), uint8(position))
	if code != capi.OK || buf.IsEmpty() {
		setErr(ierr, code)
		return nil
	}

	n := buf.Len()
	ptr := (*C.double)(C.malloc(C.size_t(n) * C.size_t(unsafe.Sizeof(C.double(0)))))
	if ptr == nil {
		setErr(ierr, capi.AllocFailed)
		return nil
	}
	copy(unsafe.Slice((*float64)(unsafe.Pointer(ptr)), n), buf.Data)
	if length != nil {
		*length = C.size_t(n)
	}
	setErr(ierr, capi.OK)
	return ptr
}

// grid_c_free releases a buffer returned by grid_c_at. NULL is a no-op.
//
//export grid_c_free
func grid_c_free(data *C.double) {
	if data != nil {
		C.free(unsafe.Pointer(data))
	}
}
