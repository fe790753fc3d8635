// Package cheat enumerates shortcuts along an honest route: pairs of route
// positions close enough to teleport between that the jump saves steps.
//
// Overview:
//
//   - The route is the ordered cell sequence returned by astar.Search; index
//     i is the elapsed time at which the runner stands on Path[i].
//   - A pair (i, j), i ≤ j, is a shortcut when the Manhattan distance d
//     between Path[i] and Path[j] is at most MaxDistance and the savings
//     (j - i) - d is positive and at least MinSavings.
//   - Analyze counts shortcuts per savings amount; Count returns the total;
//     Enumerate lists the individual records.
//
// The enumeration looks at all pairs and is quadratic in route length,
// which is bounded by the grid area; the analysis runs once per query.
//
// Options:
//
//   - WithMaxDistance(d): teleport range, d ≥ 0 (default 2).
//   - WithMinSavings(s):  minimum savings to count, s ≥ 0 (default 1).
//
// Errors:
//
//   - ErrOptionViolation (wrapping ErrBadMaxDistance or ErrBadMinSavings):
//     negative parameters are rejected before any work is done, so a bad
//     call never looks like "no shortcuts found".
//   - ErrEmptyPath:  the route has no cells (e.g. the goal was unreachable).
//   - ErrBrokenPath: consecutive route cells are not orthogonal neighbors.
package cheat
