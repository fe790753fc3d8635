// Package astar defines options, results and sentinel errors for the A* search.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOptionViolation indicates that an Option received an invalid value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrBudgetExceeded indicates the expansion budget ran out before the
	// search reached the goal or exhausted the open set.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")
)

// Heuristic estimates the remaining cost from a cell to the goal.
// It must be consistent (never drop by more than the step cost between
// neighbors), which implies it never overestimates; otherwise the returned
// route may not be optimal.
type Heuristic func(from, goal gridgraph.Point) int

// Manhattan is the default heuristic for 4-connected unit grids.
func Manhattan(from, goal gridgraph.Point) int {
	return gridgraph.Manhattan(from, goal)
}

// Zero turns A* into Dijkstra's algorithm.
func Zero(_, _ gridgraph.Point) int { return 0 }

// Options configures Search.
//
// Cheat         – the single wall allowed as a neighbor, or nil.
// MaxExpansions – expansion budget; 0 means unlimited.
// Heuristic     – remaining-cost estimate; Manhattan by default.
type Options struct {
	Cheat         *gridgraph.Point
	MaxExpansions int
	Heuristic     Heuristic

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: no cheat,
// no expansion budget, Manhattan heuristic.
func DefaultOptions() Options {
	return Options{
		Cheat:         nil,
		MaxExpansions: 0,
		Heuristic:     Manhattan,
	}
}

// WithCheat lets the search step onto the wall at p as if it were open.
// Every other wall stays impassable.
func WithCheat(p gridgraph.Point) Option {
	return func(o *Options) {
		c := p
		o.Cheat = &c
	}
}

// usable reports whether p is open or is the cheat cell.
func (o Options) usable(g *gridgraph.Grid, p gridgraph.Point) bool {
	return g.Passable(p) || (o.Cheat != nil && *o.Cheat == p)
}

// WithMaxExpansions bounds the number of expanded cells.
//
//	n > 0:  stop with ErrBudgetExceeded after n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithHeuristic replaces the Manhattan estimate. A nil h is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// Result holds the outcome of a search.
//
//   - Path:     cells from Start to Goal inclusive; Path[i] is reached after i steps.
//   - Cost:     sum of the weights of all cells entered after Start.
//   - Expanded: number of cells popped and expanded.
//   - Found:    false when the goal is unreachable; Path is nil then.
type Result struct {
	Path     []gridgraph.Cell
	Cost     int
	Expanded int
	Found    bool
}

// Steps returns the number of moves on the path, or -1 when no path was found.
func (r Result) Steps() int {
	if !r.Found {
		return -1
	}

	return len(r.Path) - 1
}

// Points strips the weights from Path, e.g. for gridgraph.Grid.Render.
func (r Result) Points() []gridgraph.Point {
	pts := make([]gridgraph.Point, len(r.Path))
	for i, c := range r.Path {
		pts[i] = c.Point
	}

	return pts
}
