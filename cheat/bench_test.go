package cheat_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/cheat"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// serpentine returns the unique route of an n×n boustrophedon maze (~n²/2 cells).
// n must be odd so the last row is open.
func serpentine(b *testing.B, n int) []gridgraph.Cell {
	b.Helper()
	g, err := gridgraph.NewSquare(n)
	if err != nil {
		b.Fatal(err)
	}
	for y := 1; y < n; y += 2 {
		for x := 0; x < n; x++ {
			g.Set(x, y, gridgraph.Wall)
		}
		gap := n - 1
		if (y/2)%2 == 1 {
			gap = 0
		}
		g.Set(gap, y, gridgraph.Open)
	}
	res, err := astar.Search(g)
	if err != nil || !res.Found {
		b.Fatalf("setup search failed: %v", err)
	}

	return res.Path
}

// BenchmarkCount_Short measures the two-step analysis on a long route.
// Complexity: O(n²)
func BenchmarkCount_Short(b *testing.B) {
	path := serpentine(b, 81)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cheat.Count(path, cheat.WithMaxDistance(2), cheat.WithMinSavings(100)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAnalyze_Long measures the twenty-step analysis with histogram.
func BenchmarkAnalyze_Long(b *testing.B) {
	path := serpentine(b, 81)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cheat.Analyze(path, cheat.WithMaxDistance(20), cheat.WithMinSavings(100)); err != nil {
			b.Fatal(err)
		}
	}
}
