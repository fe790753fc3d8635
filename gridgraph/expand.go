package gridgraph

import (
	"container/list"
	"fmt"
)

// Breaches finds a route from src to dst that knocks down the fewest walls.
// Moving into an open cell costs 0, moving into a wall costs 1.
// Returns the route (both endpoints included) and the number of walls on it.
//
// Behavior:
//  1. Validate both points are in bounds (ErrOutOfBounds).
//  2. 0–1 BFS from src: open cells go to the deque front, walls to the back.
//  3. Stop when dst is popped.
//  4. Reconstruct the route via the predecessor slice.
//
// A src wall is counted as one breach. ErrNoPath is only possible when the
// grid is disconnected, which cannot happen on a rectangle; it is kept for
// callers that treat the result generically.
//
// Complexity: O(W·H). Memory: O(W·H).
func (g *Grid) Breaches(src, dst Point) (route []Point, walls int, err error) {
	if !g.InBounds(src.X, src.Y) {
		return nil, 0, fmt.Errorf("%w: %s", ErrOutOfBounds, src)
	}
	if !g.InBounds(dst.X, dst.Y) {
		return nil, 0, fmt.Errorf("%w: %s", ErrOutOfBounds, dst)
	}

	n := g.Width * g.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	s := g.index(src.X, src.Y)
	dist[s] = 0
	if g.weights[src.Y][src.X] > Open {
		dist[s] = 1
	}
	dq := list.New()
	dq.PushFront(s)

	target := g.index(dst.X, dst.Y)
	found := false
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == target {
			found = true
			break
		}
		up := g.Coordinate(u)
		for _, d := range orthogonal {
			vx, vy := up.X+d[0], up.Y+d[1]
			if !g.InBounds(vx, vy) {
				continue
			}
			v := g.index(vx, vy)
			step := 0
			if g.weights[vy][vx] > Open {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !found {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		route = append(route, g.Coordinate(at))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route, dist[target], nil
}
