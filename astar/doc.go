// Package astar computes minimum-cost routes over a gridgraph.Grid with the
// A* algorithm and an admissible Manhattan heuristic.
//
// Overview:
//
//   - Search expands cells in order of f = g + h, where g is the cost so far
//     and h the Manhattan distance to the goal. On a 4-connected grid with
//     unit steps h is admissible and consistent, so the first time the goal
//     is popped its cost is optimal.
//   - Entering a cell costs its weight; walls are never entered, except the
//     single cell named by WithCheat. A walled start or goal makes the
//     route impossible unless it is that cell.
//   - Cost excludes the start cell; on unit grids it equals the number of
//     steps, len(Path)-1.
//
// Key features:
//
//   - WithCheat:         treat one wall as open, without touching the grid.
//   - WithMaxExpansions: stop with ErrBudgetExceeded after n expansions.
//   - WithHeuristic:     plug another admissible estimate (Zero gives Dijkstra).
//
// Determinism:
//
//   - Ties on f are broken by smaller h, then by push order. For a fixed grid
//     the returned path is stable across runs; across implementations only
//     the cost is guaranteed when several shortest paths exist.
//
// Performance and complexity:
//
//   - Time:  O(V log V) with V = W×H cells (lazy decrease-key heap).
//   - Space: O(V) for the cost and predecessor maps.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:         a nil grid was passed.
//   - ErrOptionViolation: an option received an invalid value.
//   - ErrBudgetExceeded:  WithMaxExpansions was exhausted before a verdict.
//
// An unreachable goal is not an error: Search returns Result.Found == false.
//
// Thread safety:
//
//   - Search only reads the grid. Concurrent searches over one grid are safe
//     as long as nobody mutates it; each call owns its open set and maps.
package astar
