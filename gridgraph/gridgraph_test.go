package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chiton/gridgraph"
)

// fixture is the 5×5 maze-like tile used across tests.
var fixture = [][]int{
	{1, 9, 9, 9, 9},
	{1, 9, 1, 1, 1},
	{1, 9, 1, 9, 1},
	{1, 9, 1, 1, 1},
	{1, 1, 1, 9, 1},
}

//----------------------------------------------------------------------------//
// NewTiledGrid and SetMultiplier Tests
//----------------------------------------------------------------------------//

// TestNewTiledGrid_Errors verifies that NewTiledGrid rejects malformed inputs.
func TestNewTiledGrid_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		grid [][]int
		opts []gridgraph.Option
		err  error
	}{
		{"EmptyRows", [][]int{}, nil, gridgraph.ErrEmptyGrid},
		{"NilGrid", nil, nil, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, nil, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, nil, gridgraph.ErrNonRectangular},
		{"NonSquare", [][]int{{1, 2, 3}, {4, 5, 6}}, nil, gridgraph.ErrNonSquare},
		{"CostTooHigh", [][]int{{1, 10}, {1, 1}}, nil, gridgraph.ErrCellValue},
		{"NegativeCost", [][]int{{-1}}, nil, gridgraph.ErrCellValue},
		{"ZeroMultiplier", [][]int{{1}}, []gridgraph.Option{gridgraph.WithMultiplier(0)}, gridgraph.ErrBadMultiplier},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewTiledGrid(tc.grid, tc.opts...)
			require.Error(t, err)
			assert.Truef(t, errors.Is(err, tc.err), "NewTiledGrid(%v) error = %v; want %v", tc.grid, err, tc.err)
		})
	}
}

// TestNewTiledGrid_DeepCopy ensures later edits of the input do not leak in.
func TestNewTiledGrid_DeepCopy(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}}
	tg, err := gridgraph.NewTiledGrid(in)
	require.NoError(t, err)

	in[0][0] = 9
	c, err := tg.Cost(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, c)
}

// TestSetMultiplier checks that only the effective size changes.
func TestSetMultiplier(t *testing.T) {
	tg, err := gridgraph.NewTiledGrid(fixture)
	require.NoError(t, err)
	assert.Equal(t, 5, tg.Size())
	assert.Equal(t, 26, tg.NumNodes())
	assert.Equal(t, 25, tg.LastNodeID())

	require.NoError(t, tg.SetMultiplier(5))
	assert.Equal(t, 5, tg.Multiplier())
	assert.Equal(t, 5, tg.BaseSize())
	assert.Equal(t, 25, tg.Size())
	assert.Equal(t, 626, tg.NumNodes())
	assert.Equal(t, 625, tg.LastNodeID())

	err = tg.SetMultiplier(0)
	assert.ErrorIs(t, err, gridgraph.ErrBadMultiplier)
	assert.Equal(t, 25, tg.Size(), "failed SetMultiplier must not change the view")

	require.NoError(t, tg.SetMultiplier(1))
	got := tg.Materialize()
	assert.Equal(t, fixture, got)
}

//----------------------------------------------------------------------------//
// Cost and tiling Tests
//----------------------------------------------------------------------------//

// TestCost_WrapRule verifies that tiled costs wrap into 1..9, never 0 or 10.
func TestCost_WrapRule(t *testing.T) {
	t.Parallel()

	tg, err := gridgraph.NewTiledGrid([][]int{{9}}, gridgraph.WithMultiplier(3))
	require.NoError(t, err)

	cases := []struct {
		x, y int
		want int
	}{
		{0, 0, 9},
		{1, 0, 1}, // 9 + 1 wraps to 1
		{0, 1, 1},
		{1, 1, 2},
		{2, 2, 4},
	}
	for _, tc := range cases {
		got, err := tg.Cost(tc.x, tc.y)
		require.NoError(t, err)
		assert.Equalf(t, tc.want, got, "Cost(%d,%d)", tc.x, tc.y)
	}
}

// TestMaterialize_SingleCell expands an 8 the way the tiling rule describes:
//
//	8 9 1
//	9 1 2
//	1 2 3
func TestMaterialize_SingleCell(t *testing.T) {
	t.Parallel()

	tg, err := gridgraph.NewTiledGrid([][]int{{8}}, gridgraph.WithMultiplier(3))
	require.NoError(t, err)

	want := [][]int{
		{8, 9, 1},
		{9, 1, 2},
		{1, 2, 3},
	}
	assert.Equal(t, want, tg.Materialize())
}

// TestCost_HighestOffset covers the largest offset used in practice, 4+4.
func TestCost_HighestOffset(t *testing.T) {
	tg, err := gridgraph.NewTiledGrid([][]int{{8, 9}, {1, 2}}, gridgraph.WithMultiplier(5))
	require.NoError(t, err)

	c, err := tg.Cost(8, 8) // base 8, offsets 4+4 → 16 → 7
	require.NoError(t, err)
	assert.Equal(t, 7, c)

	c, err = tg.Cost(9, 9) // base 2, offsets 4+4 → 10 → 1
	require.NoError(t, err)
	assert.Equal(t, 1, c)
}

// TestCost_ZeroBase keeps a zero in the first tile and wraps it elsewhere.
func TestCost_ZeroBase(t *testing.T) {
	tg, err := gridgraph.NewTiledGrid([][]int{{0}}, gridgraph.WithMultiplier(2))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {1, 2}}, tg.Materialize())
}

// TestCost_OutOfBounds checks bounds reporting against the effective size.
func TestCost_OutOfBounds(t *testing.T) {
	tg, err := gridgraph.NewTiledGrid(fixture, gridgraph.WithMultiplier(2))
	require.NoError(t, err)

	_, err = tg.Cost(9, 9)
	require.NoError(t, err)

	for _, xy := range [][2]int{{-1, 0}, {10, 0}, {0, 10}, {3, -2}} {
		_, err = tg.Cost(xy[0], xy[1])
		assert.ErrorIsf(t, err, gridgraph.ErrOutOfBounds, "Cost(%d,%d)", xy[0], xy[1])
		assert.False(t, tg.InBounds(xy[0], xy[1]))
	}
}

//----------------------------------------------------------------------------//
// Graph view Tests
//----------------------------------------------------------------------------//

// TestNodeID_Coordinate round-trips every cell of a tiled grid.
func TestNodeID_Coordinate(t *testing.T) {
	tg, err := gridgraph.NewTiledGrid(fixture, gridgraph.WithMultiplier(2))
	require.NoError(t, err)

	for y := 0; y < tg.Size(); y++ {
		for x := 0; x < tg.Size(); x++ {
			id := tg.NodeID(x, y)
			gx, gy := tg.Coordinate(id)
			require.Equal(t, [2]int{x, y}, [2]int{gx, gy})
		}
	}
	x, y := tg.Coordinate(gridgraph.StartNode)
	assert.Equal(t, [2]int{-1, -1}, [2]int{x, y})
	x, y = tg.Coordinate(tg.LastNodeID() + 1)
	assert.Equal(t, [2]int{-1, -1}, [2]int{x, y})
}

// TestNeighbors_Order checks the left, right, up, down order and border trimming.
func TestNeighbors_Order(t *testing.T) {
	t.Parallel()

	tg, err := gridgraph.NewTiledGrid(fixture)
	require.NoError(t, err)

	cases := []struct {
		name string
		u    int
		want []int
	}{
		{"Start", gridgraph.StartNode, []int{1}},
		{"TopLeft", 1, []int{2, 6}},
		{"TopRight", 5, []int{4, 10}},
		{"Center", 13, []int{12, 14, 8, 18}},
		{"BottomRight", 25, []int{24, 20}},
		{"LeftEdge", 11, []int{12, 6, 16}},
		{"Beyond", 26, nil},
		{"Negative", -3, nil},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tg.Neighbors(tc.u))
		})
	}
}

// TestNeighbors_InRange asserts every neighbor id stays in [0, NumNodes()).
func TestNeighbors_InRange(t *testing.T) {
	tg, err := gridgraph.NewTiledGrid(fixture, gridgraph.WithMultiplier(3))
	require.NoError(t, err)

	for u := 0; u < tg.NumNodes(); u++ {
		for _, v := range tg.Neighbors(u) {
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, tg.NumNodes())
			_, ok := tg.Distance(u, v)
			require.Truef(t, ok, "Neighbors(%d) lists %d but Distance reports no edge", u, v)
		}
	}
}

// TestDistance covers the start edge, adjacency and NONE results.
func TestDistance(t *testing.T) {
	t.Parallel()

	tg, err := gridgraph.NewTiledGrid([][]int{{3, 1}, {2, 7}})
	require.NoError(t, err)

	cases := []struct {
		name   string
		u, v   int
		want   int64
		wantOK bool
	}{
		{"Self", 3, 3, 0, true},
		{"StartSelf", 0, 0, 0, true},
		{"StartEdge", 0, 1, 3, true},
		{"StartNotAdjacent", 0, 2, 0, false},
		{"NoEdgeIntoStart", 1, 0, 0, false},
		{"Right", 1, 2, 1, true},
		{"Left", 2, 1, 3, true},
		{"Down", 1, 3, 2, true},
		{"Diagonal", 1, 4, 0, false},
		{"RowWrapIsNotAdjacent", 2, 3, 0, false},
		{"OutOfRange", 4, 5, 0, false},
		{"SelfNegative", -5, -5, 0, false},
		{"SelfPastLast", 5, 5, 0, false},
		{"StartToPastLast", 0, 5, 0, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tg.Distance(tc.u, tc.v)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestDistance_DestinationCost asserts that entering a cell costs the same
// from every adjacent cell, including across tile borders.
func TestDistance_DestinationCost(t *testing.T) {
	tg, err := gridgraph.NewTiledGrid(fixture, gridgraph.WithMultiplier(2))
	require.NoError(t, err)

	for v := 1; v <= tg.LastNodeID(); v++ {
		x, y := tg.Coordinate(v)
		want, err := tg.Cost(x, y)
		require.NoError(t, err)
		for _, u := range tg.Neighbors(v) {
			got, ok := tg.Distance(u, v)
			require.True(t, ok)
			require.Equalf(t, int64(want), got, "Distance(%d,%d)", u, v)
		}
	}
}

// TestDistance_StartEdgeUsesBaseTile keeps the start edge on the base cost
// whatever the multiplier is.
func TestDistance_StartEdgeUsesBaseTile(t *testing.T) {
	tg, err := gridgraph.NewTiledGrid([][]int{{6}})
	require.NoError(t, err)
	for _, m := range []int{1, 2, 5} {
		require.NoError(t, tg.SetMultiplier(m))
		d, ok := tg.Distance(gridgraph.StartNode, 1)
		require.True(t, ok)
		assert.Equal(t, int64(6), d)
	}
}
