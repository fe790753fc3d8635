// Package gridpath solves route questions on grid mazes: the shortest route
// from start to goal, the shortcuts that a short wall-phase would open along
// it, and what-if scans over many variants of one grid.
//
// Packages:
//
//	gridgraph/     Grid, Point and Cell types, map and coordinate parsing,
//	               connectivity and minimum-breach routes
//	astar/         A* search with a Manhattan heuristic and an optional cheat cell
//	cheat/         shortcut histograms over a search result
//	scenario/      parallel scans: first blocking wall, single-wall removals
//	config/        YAML, .env and GRIDPATH_* configuration
//	cmd/gridpath/  the command-line front end
//
// Quick ASCII example:
//
//	S.#.        S.#.
//	.##.   →    O##.
//	...E        OOOE
//
//	astar.Search finds the 5-step route around the wall block.
//
// Everything below cmd/ is synchronous except scenario, which runs each
// variant on its own goroutine against a grid it never mutates.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
