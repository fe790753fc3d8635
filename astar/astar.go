// Package astar implements A* search over gridgraph.Grid.
//
// Notes on implementation choices:
//
//   - The graph is implicit: successors come from Grid.Neighbors on demand.
//   - cost and cameFrom are flat maps keyed by gridgraph.Point; no node
//     objects with back-pointers are built.
//   - We use a “lazy” decrease-key strategy: improved entries are pushed again
//     and stale ones are skipped when popped.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Search computes the minimum-cost route from g.Start to g.Goal.
//
// Returns:
//
//   - Result with Found == true, the route and its cost, or
//   - Result with Found == false when the goal cannot be reached
//     (including a start or goal that is itself a wall), with a nil error.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//
// Complexity:
//
//   - Time:  O(V log V)
//   - Space: O(V)
func Search(g *gridgraph.Grid, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate grid
	if g == nil {
		return Result{}, ErrNilGrid
	}

	// 3) Wall endpoints are only usable through the cheat.
	if !cfg.usable(g, g.Start) || !cfg.usable(g, g.Goal) {
		return Result{}, nil
	}

	r := &runner{
		g:        g,
		options:  cfg,
		cost:     make(map[gridgraph.Point]int),
		cameFrom: make(map[gridgraph.Point]gridgraph.Point),
		closed:   make(map[gridgraph.Point]bool),
	}
	r.init()

	return r.process()
}

// runner holds the mutable state of a single search.
type runner struct {
	g        *gridgraph.Grid                     // read-only within Search
	options  Options                             // configuration
	cost     map[gridgraph.Point]int             // best known g per point
	cameFrom map[gridgraph.Point]gridgraph.Point // predecessor on the best route
	closed   map[gridgraph.Point]bool            // expanded points
	open     nodePQ                              // min-heap on f
	seq      int                                 // push counter for tie-breaking
	expanded int
}

// init seeds the open set with the start at g = 0.
func (r *runner) init() {
	heap.Init(&r.open)
	start := r.g.Start
	r.cost[start] = 0
	r.push(start, 0)
}

// push enqueues p with cost-so-far gp.
func (r *runner) push(p gridgraph.Point, gp int) {
	h := r.options.Heuristic(p, r.g.Goal)
	r.seq++
	heap.Push(&r.open, &node{point: p, g: gp, h: h, f: gp + h, seq: r.seq})
}

// process is the main loop: pop the lowest f, stop at the goal, relax neighbors.
func (r *runner) process() (Result, error) {
	goal := r.g.Goal
	for r.open.Len() > 0 {
		n := heap.Pop(&r.open).(*node)

		// Skip stale entries superseded by a cheaper push.
		if r.closed[n.point] || n.g > r.cost[n.point] {
			continue
		}

		if n.point == goal {
			return Result{
				Path:     r.reconstruct(goal),
				Cost:     n.g,
				Expanded: r.expanded,
				Found:    true,
			}, nil
		}

		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return Result{Expanded: r.expanded}, fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, r.expanded)
		}
		r.closed[n.point] = true
		r.expanded++

		for _, nb := range r.g.Neighbors(n.point, r.options.Cheat) {
			if r.closed[nb.Point] {
				continue
			}
			newG := n.g + nb.Weight
			if old, seen := r.cost[nb.Point]; seen && newG >= old {
				continue
			}
			r.cost[nb.Point] = newG
			r.cameFrom[nb.Point] = n.point
			r.push(nb.Point, newG)
		}
	}

	// Open set exhausted: the goal is unreachable.
	return Result{Expanded: r.expanded}, nil
}

// reconstruct walks cameFrom back from goal to start and reverses the walk.
// Weights reflect the grid, except a cheat cell which is reported as Open.
func (r *runner) reconstruct(goal gridgraph.Point) []gridgraph.Cell {
	start := r.g.Start
	var path []gridgraph.Cell
	for cur := goal; ; {
		path = append(path, r.cell(cur))
		if cur == start {
			break
		}
		cur = r.cameFrom[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func (r *runner) cell(p gridgraph.Point) gridgraph.Cell {
	c, _ := r.g.Cell(p)
	if r.options.Cheat != nil && *r.options.Cheat == p {
		c.Weight = gridgraph.Open
	}

	return c
}

// node is an open-set entry.
type node struct {
	point gridgraph.Point
	g     int // cost so far
	h     int // heuristic to goal
	f     int // g + h
	seq   int // push order
}

// nodePQ is a min-heap of *node ordered by f, then h, then push order.
type nodePQ []*node

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f; on ties prefer the entry closer to the goal, then the older one.
func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}

	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*node)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
