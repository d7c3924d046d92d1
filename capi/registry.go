// SPDX-License-Identifier: MIT

package capi

import (
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/staggrid/grid1d"
)

// Handle identifies a grid owned by a Registry. The zero Handle is null.
type Handle uint64

// Position tags accepted by At.
const (
	TagWalls   uint8 = uint8(grid1d.Walls)
	TagCenters uint8 = uint8(grid1d.Centers)
)

// Buffer is a caller-owned copy of a point sequence. Data is nil when the
// sequence is empty.
type Buffer struct {
	Data []float64
}

// Len returns the number of values in b.
func (b Buffer) Len() int { return len(b.Data) }

// IsEmpty reports whether b carries no data (the NULL sentinel in C).
func (b Buffer) IsEmpty() bool { return b.Data == nil }

// Option configures a Registry.
type Option func(r *Registry)

// WithLogger routes registry events to l. The default is zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// Registry maps Handles to live grids.
//
// Grids are immutable, so mu only guards the handle table; span and point
// queries on distinct or identical handles run concurrently under RLock.
type Registry struct {
	mu    sync.RWMutex // guards grids and next
	grids map[Handle]*grid1d.StaggeredGrid
	next  Handle
	log   *zap.Logger
}

// NewRegistry returns an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		grids: make(map[Handle]*grid1d.StaggeredGrid),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create builds a grid and returns its handle with OK, or the null handle
// with the status code of the failed precondition.
func (r *Registry) Create(nbulkCells, ilowerWall int, positions []float64) (Handle, Code) {
	g, err := grid1d.New(nbulkCells, ilowerWall, positions)
	if err != nil {
		code := CodeOf(err)
		r.log.Debug("grid rejected",
			zap.Int("nbulk_cells", nbulkCells),
			zap.Int("ilower_wall", ilowerWall),
			zap.Int("len_positions", len(positions)),
			zap.Stringer("code", code))
		return 0, code
	}

	r.mu.Lock()
	r.next++
	h := r.next
	r.grids[h] = g
	r.mu.Unlock()

	r.log.Debug("grid created", zap.Uint64("handle", uint64(h)), zap.Stringer("grid", g))
	return h, OK
}

// Destroy releases h. It returns InvalidHandle if h is null, unknown or
// already destroyed.
func (r *Registry) Destroy(h Handle) Code {
	r.mu.Lock()
	_, ok := r.grids[h]
	delete(r.grids, h)
	r.mu.Unlock()

	if !ok {
		r.log.Warn("destroy of invalid handle", zap.Uint64("handle", uint64(h)))
		return InvalidHandle
	}
	r.log.Debug("grid destroyed", zap.Uint64("handle", uint64(h)))
	return OK
}

// Span returns the bulk width of the grid behind h.
func (r *Registry) Span(h Handle) (float64, Code) {
	g, code := r.lookup(h)
	if code != OK {
		return 0, code
	}
	return g.Span(), OK
}

// At copies the walls (tag 0) or centers (tag 1) of the grid behind h,
// ghosts included.
func (r *Registry) At(h Handle, tag uint8) (Buffer, Code) {
	g, code := r.lookup(h)
	if code != OK {
		return Buffer{}, code
	}
	p := grid1d.Position(tag)
	if !p.Valid() {
		return Buffer{}, InvalidPosition
	}
	return copyBuffer(g.At(p)), OK
}

// Grid returns the grid behind h for in-process callers.
func (r *Registry) Grid(h Handle) (*grid1d.StaggeredGrid, error) {
	g, code := r.lookup(h)
	return g, code.Err()
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.grids)
}

func (r *Registry) lookup(h Handle) (*grid1d.StaggeredGrid, Code) {
	r.mu.RLock()
	g, ok := r.grids[h]
	r.mu.RUnlock()
	if !ok {
		r.log.Warn("lookup of invalid handle", zap.Uint64("handle", uint64(h)))
		return nil, InvalidHandle
	}
	return g, OK
}

func copyBuffer(src []float64) Buffer {
	if len(src) == 0 {
		return Buffer{}
	}
	dst := make([]float64, len(src))
	copy(dst, src)
	return Buffer{Data: dst}
}
