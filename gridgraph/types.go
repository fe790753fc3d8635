// Package gridgraph defines the core types of the maze model:
// points, weighted cells and the Grid itself.
package gridgraph

import "fmt"

// Cell weights understood by the search packages.
const (
	// Open marks a passable cell. Entering it costs 1.
	Open = 1
	// Wall marks an impassable cell. Any weight > Open is a wall.
	Wall = 2
)

// Map symbols used by ParseMap and Render.
const (
	SymbolWall  = '#'
	SymbolOpen  = '.'
	SymbolStart = 'S'
	SymbolGoal  = 'E'
	SymbolPath  = 'O'
)

// Point identifies a cell: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// String formats the point as "col,row", the coordinate list format.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Cell is a point plus its traversal weight.
// Weight is not part of the identity; key maps by Cell.Point.
type Cell struct {
	Point
	Weight int
}

// Passable reports whether the cell can be entered without a cheat.
func (c Cell) Passable() bool { return c.Weight <= Open }

// Grid is a rectangular maze with a designated Start and Goal.
// Cell weights are stored row-major; use Get or Cell to read them.
//
// A Grid is built once per scenario; searches only read it. Scenario
// scans that need a modified maze work on a Clone.
type Grid struct {
	Width, Height int
	Start, Goal   Point
	weights       [][]int
}

// orthogonal lists the 4-neighborhood in N, E, S, W order.
var orthogonal = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
