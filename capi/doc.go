// SPDX-License-Identifier: MIT
//
// Package capi is the Go half of the C boundary for staggered grids.
//
// It owns everything a foreign caller needs besides raw pointer handling:
//
//   - an opaque Handle per live grid, issued by a Registry;
//   - numeric status Codes, one per grid1d error;
//   - copy-out Buffers that never alias grid storage.
//
// Status codes (stable, part of the ABI):
//
//	0  OK
//	1  SingularGrid       grid1d.ErrSingularGrid
//	2  NonMonotonic       grid1d.ErrNonMonotonic
//	3  MissingPositions   grid1d.ErrMissingPositions
//	4  InvalidPosition    position tag is neither 0 (walls) nor 1 (centers)
//	5  InvalidHandle      unknown or already destroyed handle
//	-1 AllocFailed        the C side could not allocate an output buffer
//
// Ownership: Create copies the positions it is given. At returns a fresh
// Buffer that belongs to the caller; the cgo layer turns it into malloc'ed
// memory released with grid_c_free. A zero-length result has nil Data so
// the C side sees a NULL pointer rather than a malloc(0) allocation.
//
// Destroy releases a handle exactly once. A second Destroy, or any call with
// a destroyed handle, reports InvalidHandle here; C callers must treat such
// use as undefined behaviour since handle values may be reused by future
// versions.
package capi
