// Package gridgraph provides the maze model consumed by the search packages.
//
//   - New / NewSquare allocate an all-open grid, start top-left, goal bottom-right.
//   - Set / Get mutate and read single cells with an explicit bounds flag.
//   - Neighbors yields the orthogonal passable cells of a point.
//   - Clone deep-copies a grid for per-scenario modification.
package gridgraph

import (
	"fmt"
	"strings"
)

// New constructs a width×height grid with every cell Open,
// Start at (0,0) and Goal at (width-1,height-1).
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	weights := make([][]int, height)
	for y := 0; y < height; y++ {
		row := make([]int, width)
		for x := range row {
			row[x] = Open
		}
		weights[y] = row
	}

	return &Grid{
		Width:   width,
		Height:  height,
		Start:   Point{0, 0},
		Goal:    Point{width - 1, height - 1},
		weights: weights,
	}, nil
}

// NewSquare constructs a size×size grid; see New.
func NewSquare(size int) (*Grid, error) {
	return New(size, size)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Set assigns weight to cell (x,y). It reports false, leaving the grid
// untouched, when (x,y) is out of bounds; callers treat that as malformed input.
func (g *Grid) Set(x, y, weight int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.weights[y][x] = weight

	return true
}

// Get returns the weight of (x,y) and whether the cell exists.
func (g *Grid) Get(x, y int) (int, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}

	return g.weights[y][x], true
}

// Cell returns the weighted cell at p and whether it exists.
func (g *Grid) Cell(p Point) (Cell, bool) {
	w, ok := g.Get(p.X, p.Y)
	if !ok {
		return Cell{}, false
	}

	return Cell{Point: p, Weight: w}, true
}

// Passable reports whether p is in bounds and not a wall.
func (g *Grid) Passable(p Point) bool {
	w, ok := g.Get(p.X, p.Y)

	return ok && w <= Open
}

// SetStart moves the start marker. Returns ErrOutOfBounds for points outside the grid.
func (g *Grid) SetStart(p Point) error {
	if !g.InBounds(p.X, p.Y) {
		return fmt.Errorf("%w: start %s", ErrOutOfBounds, p)
	}
	g.Start = p

	return nil
}

// SetGoal moves the goal marker. Returns ErrOutOfBounds for points outside the grid.
func (g *Grid) SetGoal(p Point) error {
	if !g.InBounds(p.X, p.Y) {
		return fmt.Errorf("%w: goal %s", ErrOutOfBounds, p)
	}
	g.Goal = p

	return nil
}

// Neighbors returns the in-bounds orthogonal neighbors of p in N, E, S, W
// order, each annotated with its weight. Walls are skipped, except the one
// equal to *cheat (if cheat is non-nil), which is reported with weight Open.
// The grid itself is never modified.
// Complexity: O(1).
func (g *Grid) Neighbors(p Point, cheat *Point) []Cell {
	out := make([]Cell, 0, len(orthogonal))
	for _, d := range orthogonal {
		q := Point{p.X + d[0], p.Y + d[1]}
		w, ok := g.Get(q.X, q.Y)
		if !ok {
			continue
		}
		if w > Open {
			if cheat == nil || *cheat != q {
				continue
			}
			w = Open
		}
		out = append(out, Cell{Point: q, Weight: w})
	}

	return out
}

// Walls lists every wall point in row-major order.
func (g *Grid) Walls() []Point {
	var walls []Point
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.weights[y][x] > Open {
				walls = append(walls, Point{x, y})
			}
		}
	}

	return walls
}

// Clone returns a deep copy of g. Mutating the copy never affects g.
func (g *Grid) Clone() *Grid {
	weights := make([][]int, g.Height)
	for y := range g.weights {
		weights[y] = make([]int, g.Width)
		copy(weights[y], g.weights[y])
	}

	return &Grid{
		Width:   g.Width,
		Height:  g.Height,
		Start:   g.Start,
		Goal:    g.Goal,
		weights: weights,
	}
}

// String renders the grid in map notation.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render draws the grid with every point of path marked as SymbolPath.
// Start and goal markers take precedence over path marks.
func (g *Grid) Render(path []Point) string {
	onPath := make(map[Point]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{x, y}
			_, marked := onPath[p]
			switch {
			case p == g.Start:
				sb.WriteByte(SymbolStart)
			case p == g.Goal:
				sb.WriteByte(SymbolGoal)
			case marked:
				sb.WriteByte(SymbolPath)
			case g.weights[y][x] > Open:
				sb.WriteByte(SymbolWall)
			default:
				sb.WriteByte(SymbolOpen)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row‑major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{idx % g.Width, idx / g.Width}
}
