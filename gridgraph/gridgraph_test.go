package gridgraph_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// New, Set, Get and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.w, tc.h)
			if !errors.Is(err, gridgraph.ErrEmptyGrid) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.w, tc.h, err, gridgraph.ErrEmptyGrid)
			}
		})
	}
}

// TestNew_Defaults checks the all-open layout and corner markers.
func TestNew_Defaults(t *testing.T) {
	g, err := gridgraph.New(4, 3)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Point{X: 0, Y: 0}, g.Start)
	assert.Equal(t, gridgraph.Point{X: 3, Y: 2}, g.Goal)
	assert.Empty(t, g.Walls())
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			w, ok := g.Get(x, y)
			require.True(t, ok)
			require.Equal(t, gridgraph.Open, w)
		}
	}
}

// TestSetGet covers in-bounds writes and the out-of-bounds failure flag.
func TestSetGet(t *testing.T) {
	g, err := gridgraph.NewSquare(3)
	require.NoError(t, err)

	require.True(t, g.Set(1, 2, gridgraph.Wall))
	w, ok := g.Get(1, 2)
	require.True(t, ok)
	assert.Equal(t, gridgraph.Wall, w)
	assert.False(t, g.Passable(gridgraph.Point{X: 1, Y: 2}))

	invalid := [][2]int{{-1, 0}, {3, 0}, {0, 3}, {2, -1}}
	for _, xy := range invalid {
		if g.Set(xy[0], xy[1], gridgraph.Wall) {
			t.Errorf("Set(%d,%d)=true; want false", xy[0], xy[1])
		}
		if _, ok := g.Get(xy[0], xy[1]); ok {
			t.Errorf("Get(%d,%d) reported present; want absent", xy[0], xy[1])
		}
	}
	assert.Equal(t, []gridgraph.Point{{X: 1, Y: 2}}, g.Walls())
}

// TestSetStartGoal_OutOfBounds ensures markers are never clamped.
func TestSetStartGoal_OutOfBounds(t *testing.T) {
	g, err := gridgraph.NewSquare(2)
	require.NoError(t, err)
	require.ErrorIs(t, g.SetStart(gridgraph.Point{X: 2, Y: 0}), gridgraph.ErrOutOfBounds)
	require.ErrorIs(t, g.SetGoal(gridgraph.Point{X: 0, Y: -1}), gridgraph.ErrOutOfBounds)
	require.NoError(t, g.SetGoal(gridgraph.Point{X: 1, Y: 0}))
	assert.Equal(t, gridgraph.Point{X: 1, Y: 0}, g.Goal)
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Corner returns two neighbors in N, E, S, W order.
func TestNeighbors_Corner(t *testing.T) {
	g, _ := gridgraph.NewSquare(3)
	got := g.Neighbors(gridgraph.Point{X: 0, Y: 0}, nil)
	want := []gridgraph.Cell{
		{Point: gridgraph.Point{X: 1, Y: 0}, Weight: gridgraph.Open},
		{Point: gridgraph.Point{X: 0, Y: 1}, Weight: gridgraph.Open},
	}
	assert.Equal(t, want, got)
}

// TestNeighbors_WallsAndCheat verifies walls are skipped unless they are the cheat point.
func TestNeighbors_WallsAndCheat(t *testing.T) {
	g, _ := gridgraph.NewSquare(3)
	center := gridgraph.Point{X: 1, Y: 1}
	north := gridgraph.Point{X: 1, Y: 0}
	east := gridgraph.Point{X: 2, Y: 1}
	g.Set(north.X, north.Y, gridgraph.Wall)
	g.Set(east.X, east.Y, gridgraph.Wall)

	require.Len(t, g.Neighbors(center, nil), 2)

	withCheat := g.Neighbors(center, &east)
	require.Len(t, withCheat, 3)
	assert.Equal(t, gridgraph.Cell{Point: east, Weight: gridgraph.Open}, withCheat[0])

	// The cheat is a parameter only; the grid still holds the wall.
	w, _ := g.Get(east.X, east.Y)
	assert.Equal(t, gridgraph.Wall, w)

	// A cheat point that is not a neighbor changes nothing.
	far := gridgraph.Point{X: 9, Y: 9}
	assert.Len(t, g.Neighbors(center, &far), 2)
}

//----------------------------------------------------------------------------//
// Clone, Render and Manhattan Tests
//----------------------------------------------------------------------------//

// TestClone_Independent verifies a clone does not share cell storage.
func TestClone_Independent(t *testing.T) {
	g, _ := gridgraph.NewSquare(3)
	c := g.Clone()
	require.True(t, c.Set(1, 1, gridgraph.Wall))

	w, _ := g.Get(1, 1)
	assert.Equal(t, gridgraph.Open, w, "original must stay open")
	assert.Equal(t, g.Start, c.Start)
	assert.Equal(t, g.Goal, c.Goal)
}

// TestRender marks path cells while keeping start and goal markers.
func TestRender(t *testing.T) {
	g, _ := gridgraph.NewSquare(3)
	g.Set(1, 1, gridgraph.Wall)
	path := []gridgraph.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}
	want := strings.Join([]string{"SOO", ".#O", "..E", ""}, "\n")
	assert.Equal(t, want, g.Render(path))
	assert.Equal(t, strings.Join([]string{"S..", ".#.", "..E", ""}, "\n"), g.String())
}

// TestManhattan checks symmetry and sign handling.
func TestManhattan(t *testing.T) {
	a := gridgraph.Point{X: 1, Y: 5}
	b := gridgraph.Point{X: 4, Y: 1}
	assert.Equal(t, 7, gridgraph.Manhattan(a, b))
	assert.Equal(t, 7, gridgraph.Manhattan(b, a))
	assert.Zero(t, gridgraph.Manhattan(a, a))
}

// TestCoordinate round-trips row-major indices.
func TestCoordinate(t *testing.T) {
	g, _ := gridgraph.New(5, 2)
	assert.Equal(t, gridgraph.Point{X: 0, Y: 0}, g.Coordinate(0))
	assert.Equal(t, gridgraph.Point{X: 4, Y: 0}, g.Coordinate(4))
	assert.Equal(t, gridgraph.Point{X: 2, Y: 1}, g.Coordinate(7))
}
