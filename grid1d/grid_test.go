package grid1d_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/staggrid/grid1d"
)

//----------------------------------------------------------------------------//
// New: successful construction
//----------------------------------------------------------------------------//

// TestNew_OneCell builds the smallest grid: one bulk cell with a ghost
// center on each side.
//
//	index:  0    1   2   3   4
//	       -0.5  0  0.5  1  1.5
//	        C    W   C   W   C
func TestNew_OneCell(t *testing.T) {
	g, err := grid1d.New(1, 1, []float64{-0.5, 0, 0.5, 1, 1.5})
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1}, g.At(grid1d.Walls))
	assert.Equal(t, []float64{-0.5, 0.5, 1.5}, g.At(grid1d.Centers))
	assert.Equal(t, 1.0, g.Span())
	assert.Equal(t, 1, g.NCells())

	assert.Equal(t, grid1d.Range{Lower: 0, Upper: 1}, g.BulkRange(grid1d.Walls))
	assert.Equal(t, grid1d.Range{Lower: 1, Upper: 1}, g.BulkRange(grid1d.Centers))
	assert.Equal(t, []float64{0.5}, g.Bulk(grid1d.Centers))
}

// TestNew_OneCellWithGhostCells puts a full ghost cell below the bulk and
// one ghost cell plus a ghost center above it.
func TestNew_OneCellWithGhostCells(t *testing.T) {
	g, err := grid1d.New(1, 2, []float64{0, 1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	assert.Equal(t, 2.0, g.Span())
	assert.Equal(t, []float64{0, 2, 4, 6}, g.At(grid1d.Walls))
	assert.Equal(t, []float64{1, 3, 5}, g.At(grid1d.Centers))
	assert.Equal(t, []float64{2, 4}, g.Bulk(grid1d.Walls))
	assert.Equal(t, []float64{3}, g.Bulk(grid1d.Centers))

	lo, hi := g.NGhosts(grid1d.Walls)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 1, hi)
	lo, hi = g.NGhosts(grid1d.Centers)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 1, hi)
}

// TestNew_SpanMatchesRawInput checks Span against the raw input and the
// bulk range sizes for a range of cell counts and anchors.
func TestNew_SpanMatchesRawInput(t *testing.T) {
	positions := make([]float64, 41)
	for i := range positions {
		positions[i] = float64(i*i) / 8
	}
	for ilower := 1; ilower < 10; ilower++ {
		for ncells := 1; ilower+2*ncells < len(positions)-1; ncells++ {
			g, err := grid1d.New(ncells, ilower, positions)
			require.NoError(t, err, "ncells=%d ilower=%d", ncells, ilower)

			iupper := ilower + 2*ncells
			assert.Equal(t, positions[iupper]-positions[ilower], g.Span())
			assert.Equal(t, ncells+1, g.BulkRange(grid1d.Walls).Len())
			assert.Equal(t, ncells, g.BulkRange(grid1d.Centers).Len())

			// At least one ghost center on each side of the bulk walls.
			centers := g.At(grid1d.Centers)
			assert.Less(t, centers[0], g.Lower())
			assert.Greater(t, centers[len(centers)-1], g.Upper())

			wr, cr := g.BulkRange(grid1d.Walls), g.BulkRange(grid1d.Centers)
			assert.GreaterOrEqual(t, wr.Lower, 0)
			assert.Less(t, wr.Upper, g.Len(grid1d.Walls))
			assert.GreaterOrEqual(t, cr.Lower, 0)
			assert.Less(t, cr.Upper, g.Len(grid1d.Centers))
		}
	}
}

// TestNew_RoundTrip verifies that merging walls and centers reproduces the
// input exactly, for both anchor parities.
func TestNew_RoundTrip(t *testing.T) {
	cases := []struct {
		name      string
		ilower    int
		ncells    int
		positions []float64
	}{
		{"OddAnchor", 1, 1, []float64{-0.5, 0, 0.5, 1, 1.5}},
		{"EvenAnchor", 2, 2, []float64{-1, -0.5, 0, 0.5, 1, 1.5, 2, 2.5}},
		{"Irregular", 3, 2, []float64{-3, -2.9, -1, 0, 0.01, 0.2, 4, 7, 7.5, 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid1d.New(tc.ncells, tc.ilower, tc.positions)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.positions, g.Positions()); diff != "" {
				t.Errorf("Positions() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.ilower, g.LowerWallIndex())
			assert.Equal(t, len(tc.positions), g.Len(grid1d.Walls)+g.Len(grid1d.Centers))
		})
	}
}

// TestNew_CopiesInput ensures later mutation of the caller's slice does not
// leak into the grid.
func TestNew_CopiesInput(t *testing.T) {
	positions := []float64{-0.5, 0, 0.5, 1, 1.5}
	g, err := grid1d.New(1, 1, positions)
	require.NoError(t, err)

	positions[1] = -100
	positions[3] = 100
	assert.Equal(t, []float64{0, 1}, g.At(grid1d.Walls))
	assert.Equal(t, 1.0, g.Span())
}

// TestAt_ViewIsClipped checks that appending to a returned view cannot
// overwrite the grid's storage.
func TestAt_ViewIsClipped(t *testing.T) {
	g, err := grid1d.New(1, 2, []float64{0, 1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	bulk := g.Bulk(grid1d.Walls)
	_ = append(bulk, 99)
	assert.Equal(t, []float64{0, 2, 4, 6}, g.At(grid1d.Walls))
}

// TestAt_UnknownPositionPanics covers the programmer-error path.
func TestAt_UnknownPositionPanics(t *testing.T) {
	g, err := grid1d.New(1, 1, []float64{-0.5, 0, 0.5, 1, 1.5})
	require.NoError(t, err)

	assert.Panics(t, func() { g.At(grid1d.Position(7)) })
	assert.Panics(t, func() { g.BulkRange(grid1d.Position(-1)) })
}

// TestContains checks the inclusive bulk extent.
func TestContains(t *testing.T) {
	g, err := grid1d.New(1, 1, []float64{-0.5, 0, 0.5, 1, 1.5})
	require.NoError(t, err)

	assert.True(t, g.Contains(0))
	assert.True(t, g.Contains(0.7))
	assert.True(t, g.Contains(1))
	assert.False(t, g.Contains(-0.5), "ghost center is outside the bulk")
	assert.False(t, g.Contains(1.0000001))
}

//----------------------------------------------------------------------------//
// New: rejected inputs
//----------------------------------------------------------------------------//

// TestNew_Errors covers every precondition and their precedence.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name      string
		ncells    int
		ilower    int
		positions []float64
		err       error
	}{
		{"Singular", 0, 0, []float64{}, grid1d.ErrSingularGrid},
		{"SingularWithValidPositions", 0, 1, []float64{-0.5, 0, 0.5, 1, 1.5}, grid1d.ErrSingularGrid},
		{"NegativeCells", -3, 1, []float64{-0.5, 0, 0.5, 1, 1.5}, grid1d.ErrSingularGrid},
		{"NoGhostBelow", 1, 0, []float64{0, 0.5, 1, 1.5}, grid1d.ErrMissingPositions},
		{"NoGhostAbove", 1, 1, []float64{-0.5, 0, 0.5, 1}, grid1d.ErrMissingPositions},
		{"NotEnoughPoints", 2, 1, []float64{-0.5, 0, 0.5, 1, 1.5}, grid1d.ErrMissingPositions},
		{"NegativeAnchor", 1, -1, []float64{-0.5, 0, 0.5, 1, 1.5}, grid1d.ErrMissingPositions},
		{"AnchorPastEnd", 1, 9, []float64{-0.5, 0, 0.5, 1, 1.5}, grid1d.ErrMissingPositions},
		{"HugeCellCount", int(^uint(0) >> 2), 1, []float64{-0.5, 0, 0.5, 1, 1.5}, grid1d.ErrMissingPositions},
		{"NonMonotonic", 1, 1, []float64{0, 1, 0.5, 2, 3}, grid1d.ErrNonMonotonic},
		{"Duplicate", 1, 1, []float64{0, 1, 1, 2, 3}, grid1d.ErrNonMonotonic},
		{"DecreasingInGhosts", 1, 2, []float64{0, 1, 2, 3, 4, 6, 5}, grid1d.ErrNonMonotonic},
		{"NaN", 1, 1, []float64{0, 1, nan(), 2, 3}, grid1d.ErrNonMonotonic},
		// Missing padding wins over non-monotonic positions.
		{"MissingBeatsNonMonotonic", 1, 1, []float64{1, 0, -1, -2}, grid1d.ErrMissingPositions},
		{"SingularBeatsEverything", 0, 0, []float64{3, 2, 1}, grid1d.ErrSingularGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid1d.New(tc.ncells, tc.ilower, tc.positions)
			assert.Nil(t, g)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d, %d, %v) error = %v; want %v", tc.ncells, tc.ilower, tc.positions, err, tc.err)
			}
			// Sentinels are returned bare.
			assert.Same(t, tc.err, err)
		})
	}
}

//----------------------------------------------------------------------------//
// Position and Range
//----------------------------------------------------------------------------//

func TestParsePosition(t *testing.T) {
	cases := []struct {
		in   string
		want grid1d.Position
	}{
		{"walls", grid1d.Walls},
		{"Walls", grid1d.Walls},
		{" CENTERS ", grid1d.Centers},
		{"centers", grid1d.Centers},
	}
	for _, tc := range cases {
		p, err := grid1d.ParsePosition(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, p)
		assert.Equal(t, p, mustParse(t, p.String()), "String() must round-trip")
	}

	_, err := grid1d.ParsePosition("faces")
	assert.ErrorIs(t, err, grid1d.ErrInvalidPosition)
}

func TestPosition_Valid(t *testing.T) {
	assert.True(t, grid1d.Walls.Valid())
	assert.True(t, grid1d.Centers.Valid())
	assert.False(t, grid1d.Position(2).Valid())
	assert.Equal(t, "Position(2)", grid1d.Position(2).String())
}

func TestRange(t *testing.T) {
	r := grid1d.Range{Lower: 2, Upper: 5}
	assert.Equal(t, 4, r.Len())
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(6))
	assert.Equal(t, "[2, 5]", r.String())
}

func mustParse(t *testing.T, s string) grid1d.Position {
	t.Helper()
	p, err := grid1d.ParsePosition(s)
	require.NoError(t, err)
	return p
}

func nan() float64 { return math.NaN() }
