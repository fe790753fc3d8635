package cheat

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Analyze builds the savings histogram of all shortcuts along path.
//
// Validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. path must be non-empty (ErrEmptyPath).
//  3. path must be continuous (ErrBrokenPath).
//
// Complexity: O(n²) time, O(k) memory for k distinct savings values.
func Analyze(path []gridgraph.Cell, opts ...Option) (Histogram, error) {
	hist := make(Histogram)
	err := walk(path, opts, func(s Shortcut) {
		hist[s.Savings]++
	})
	if err != nil {
		return nil, err
	}

	return hist, nil
}

// Count returns the number of shortcuts along path; see Analyze.
func Count(path []gridgraph.Cell, opts ...Option) (int, error) {
	total := 0
	err := walk(path, opts, func(Shortcut) {
		total++
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

// Enumerate lists every shortcut along path, ordered by (From, To).
func Enumerate(path []gridgraph.Cell, opts ...Option) ([]Shortcut, error) {
	var out []Shortcut
	err := walk(path, opts, func(s Shortcut) {
		out = append(out, s)
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// walk validates its inputs and calls visit for each shortcut in (From, To) order.
func walk(path []gridgraph.Cell, opts []Option, visit func(Shortcut)) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg.err
	}
	if len(path) == 0 {
		return ErrEmptyPath
	}
	for i := 1; i < len(path); i++ {
		if gridgraph.Manhattan(path[i-1].Point, path[i].Point) != 1 {
			return fmt.Errorf("%w: step %d from %s to %s", ErrBrokenPath, i, path[i-1].Point, path[i].Point)
		}
	}

	// savings = (j-i) - d with d ≥ 0, so j-i ≥ MinSavings is necessary,
	// and j-i ≥ 1 is necessary for positive savings.
	minGap := cfg.MinSavings
	if minGap < 1 {
		minGap = 1
	}

	n := len(path)
	for i := 0; i < n; i++ {
		from := path[i].Point
		for j := i + minGap; j < n; j++ {
			d := gridgraph.Manhattan(from, path[j].Point)
			if d > cfg.MaxDistance {
				continue
			}
			honest := j - i
			if honest <= d {
				continue
			}
			savings := honest - d
			if savings < cfg.MinSavings {
				continue
			}
			visit(Shortcut{From: i, To: j, Distance: d, Savings: savings})
		}
	}

	return nil
}
