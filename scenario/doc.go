// Package scenario evaluates many independent "what if" grids: it finds the
// first wall of a drop sequence that cuts the goal off, and the single walls
// whose removal restores or shortens the route.
//
// Every scenario runs one complete astar.Search. Scenarios share nothing
// mutable: a prefix scan builds a fresh grid per scenario, and a removal
// scan passes the removed wall to astar.WithCheat against one read-only
// grid. Scenarios therefore run in parallel on an errgroup worker pool.
//
// Budgets and cancellation:
//
//   - WithMaxScenarios(n) bounds the number of scenarios evaluated; running
//     out yields ErrBudgetExceeded.
//   - The context is checked between scenarios. A single search is never
//     interrupted.
//
// Observability:
//
//   - WithLogger attaches a *slog.Logger (silent by default).
//   - WithMetrics records scenario counters and search expansions on a
//     Prometheus registry (see NewMetrics).
//   - Spans are started on the global OpenTelemetry tracer "gridpath.scenario".
package scenario
