package capi_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/staggrid/capi"
	"github.com/katalvlaran/staggrid/grid1d"
)

var oneCell = []float64{-0.5, 0, 0.5, 1, 1.5}

func newRegistry(t *testing.T) *capi.Registry {
	t.Helper()
	return capi.NewRegistry(capi.WithLogger(zaptest.NewLogger(t)))
}

// TestCreateDestroy mirrors the C smoke test: create, query, destroy.
func TestCreateDestroy(t *testing.T) {
	r := newRegistry(t)

	h, code := r.Create(1, 1, oneCell)
	require.Equal(t, capi.OK, code)
	require.NotZero(t, h)
	assert.Equal(t, 1, r.Len())

	span, code := r.Span(h)
	require.Equal(t, capi.OK, code)
	assert.Equal(t, 1.0, span)

	assert.Equal(t, capi.OK, r.Destroy(h))
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, capi.InvalidHandle, r.Destroy(h), "second destroy must be rejected")

	_, code = r.Span(h)
	assert.Equal(t, capi.InvalidHandle, code)
}

// TestCreate_Codes checks the ABI value of every construction failure.
func TestCreate_Codes(t *testing.T) {
	cases := []struct {
		name      string
		ncells    int
		ilower    int
		positions []float64
		code      capi.Code
		value     int32
	}{
		{"Singular", 0, 0, nil, capi.SingularGrid, 1},
		{"NonMonotonic", 1, 1, []float64{0, 1, 0.5, 2, 3}, capi.NonMonotonic, 2},
		{"MissingPositions", 1, 1, []float64{-0.5, 0, 0.5, 1}, capi.MissingPositions, 3},
	}
	r := newRegistry(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, code := r.Create(tc.ncells, tc.ilower, tc.positions)
			assert.Zero(t, h)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.value, int32(code))
		})
	}
	assert.Equal(t, 0, r.Len())
}

// TestAt copies both families and rejects unknown tags.
func TestAt(t *testing.T) {
	r := newRegistry(t)
	h, code := r.Create(1, 1, oneCell)
	require.Equal(t, capi.OK, code)

	walls, code := r.At(h, capi.TagWalls)
	require.Equal(t, capi.OK, code)
	assert.Equal(t, []float64{0, 1}, walls.Data)
	assert.Equal(t, 2, walls.Len())

	centers, code := r.At(h, capi.TagCenters)
	require.Equal(t, capi.OK, code)
	assert.Equal(t, []float64{-0.5, 0.5, 1.5}, centers.Data)

	// The buffer is a copy: scribbling on it leaves the grid intact.
	walls.Data[0] = 42
	again, _ := r.At(h, capi.TagWalls)
	assert.Equal(t, []float64{0, 1}, again.Data)

	bad, code := r.At(h, 2)
	assert.Equal(t, capi.InvalidPosition, code)
	assert.True(t, bad.IsEmpty())

	_, code = r.At(capi.Handle(0), capi.TagWalls)
	assert.Equal(t, capi.InvalidHandle, code)
}

func TestGrid(t *testing.T) {
	r := newRegistry(t)
	h, _ := r.Create(1, 1, oneCell)

	g, err := r.Grid(h)
	require.NoError(t, err)
	assert.Equal(t, 1, g.NCells())

	_, err = r.Grid(h + 100)
	assert.ErrorIs(t, err, capi.ErrInvalidHandle)
}

// TestConcurrentCreateQueryDestroy runs full handle lifecycles in parallel.
func TestConcurrentCreateQueryDestroy(t *testing.T) {
	r := capi.NewRegistry()
	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)
	handles := make(chan capi.Handle, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			h, code := r.Create(1, 1, oneCell)
			if code != capi.OK {
				t.Errorf("Create: %v", code)
				return
			}
			if span, code := r.Span(h); code != capi.OK || span != 1 {
				t.Errorf("Span = %v, %v", span, code)
			}
			handles <- h
		}()
	}
	wg.Wait()
	close(handles)

	seen := make(map[capi.Handle]bool)
	for h := range handles {
		require.False(t, seen[h], "handle %d issued twice", h)
		seen[h] = true
		require.Equal(t, capi.OK, r.Destroy(h))
	}
	assert.Len(t, seen, workers)
	assert.Equal(t, 0, r.Len())
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, capi.OK, capi.CodeOf(nil))
	assert.Equal(t, capi.MissingPositions, capi.CodeOf(fmt.Errorf("load: %w", grid1d.ErrMissingPositions)))
	_, err := grid1d.ParsePosition("faces")
	assert.Equal(t, capi.InvalidPosition, capi.CodeOf(err))
	assert.Panics(t, func() { capi.CodeOf(errors.New("boom")) })

	for _, c := range []capi.Code{capi.SingularGrid, capi.NonMonotonic, capi.MissingPositions,
		capi.InvalidPosition, capi.InvalidHandle, capi.AllocFailed} {
		assert.Equal(t, c, capi.CodeOf(c.Err()), "round trip of %v", c)
	}
	assert.NoError(t, capi.OK.Err())
	assert.Equal(t, "Code(99)", capi.Code(99).String())
	assert.Equal(t, "missing ghost positions", capi.MissingPositions.String())
}
