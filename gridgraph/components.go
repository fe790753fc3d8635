package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells under
// 4-connectivity. Components are listed in the row-major order of their
// first cell; each component lists its points in BFS order from that cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Point {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]Point

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.weights[y][x] > Open {
				continue // wall
			}
			i0 := g.index(x, y)
			if seen[i0] {
				continue
			}
			seen[i0] = true
			comps = append(comps, g.flood(Point{x, y}, seen))
		}
	}

	return comps
}

// Connected reports whether a and b are passable and joined by open cells.
// It is a cheap reachability check that avoids a full search.
func (g *Grid) Connected(a, b Point) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, g.Width*g.Height)
	seen[g.index(a.X, a.Y)] = true
	g.flood(a, seen)

	return seen[g.index(b.X, b.Y)]
}

// flood collects the component containing p, marking seen as it goes.
// p must already be marked.
func (g *Grid) flood(p Point, seen []bool) []Point {
	queue := []Point{p}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range orthogonal {
			vx, vy := u.X+d[0], u.Y+d[1]
			if !g.InBounds(vx, vy) || g.weights[vy][vx] > Open {
				continue
			}
			vi := g.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, Point{vx, vy})
			}
		}
	}

	return queue
}
