package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// randomGrid returns an n×n grid with roughly density walls, seeded for repeatability.
func randomGrid(b *testing.B, n int, density float64) *gridgraph.Grid {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	g, err := gridgraph.NewSquare(n)
	if err != nil {
		b.Fatalf("setup NewSquare failed: %v", err)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if r.Float64() < density {
				g.Set(x, y, gridgraph.Wall)
			}
		}
	}

	return g
}

// BenchmarkConnectedComponents measures flood fill on a 1000×1000 grid.
// Complexity: O(W×H)
func BenchmarkConnectedComponents(b *testing.B) {
	g := randomGrid(b, 1000, 0.3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}

// BenchmarkBreaches measures the 0-1 BFS corner to corner on a 500×500 grid.
// Complexity: O(W×H)
func BenchmarkBreaches(b *testing.B) {
	g := randomGrid(b, 500, 0.4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := g.Breaches(g.Start, g.Goal); err != nil {
			b.Fatalf("Breaches failed: %v", err)
		}
	}
}

// BenchmarkNeighbors measures neighbor generation at an interior point.
func BenchmarkNeighbors(b *testing.B) {
	g := randomGrid(b, 64, 0.3)
	p := gridgraph.Point{X: 32, Y: 32}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(p, nil)
	}
}
