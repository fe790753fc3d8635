// Package gridgraph treats a 2D maze of passable and impassable cells as an
// implicit graph, the input model for the astar and cheat packages.
//
// What:
//
//   - Grid wraps a rectangular array of cell weights plus a Start and a Goal.
//   - Weight 1 (Open) is a passable cell, any weight > 1 (Wall) is impassable.
//   - Neighbors generates the 4-connected adjacency on demand; the graph is
//     never materialized.
//   - ConnectedComponents and Connected flood-fill the passable cells.
//   - Breaches computes the minimal number of walls to knock down to join
//     two points (0-1 BFS).
//   - ParseMap, ParseCoordinates and FromCoordinates build grids from
//     character maps ("#", ".", "S", "E") and "col,row" lists.
//
// Coordinates:
//
//   - Point{X, Y}: X is the column, Y is the row, origin at the top-left.
//   - Identity is the Point only; weights are auxiliary data on a Cell.
//
// Cheat coordinate:
//
//   - Neighbors accepts an optional *Point. A wall equal to that point is
//     returned as an Open cell, so "what if this wall were gone" queries run
//     against the same Grid without mutating it.
//
// Complexity:
//
//   - Neighbors:           O(1).
//   - ConnectedComponents: O(W×H), Memory: O(W×H).
//   - Breaches:            O(W×H),   Memory: O(W×H).
//   - Clone:               O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: grid has no rows or no columns.
//   - ErrNonRectangular: map rows have differing lengths.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//   - ErrBadSymbol: a map contains a character other than # . S E.
//   - ErrBadCoordinate: a coordinate line is not "col,row".
//   - ErrMissingStart / ErrMissingGoal: a map lacks S or E.
//   - ErrNoPath: Breaches cannot join the requested points.
package gridgraph
