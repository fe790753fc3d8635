package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates map rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrBadSymbol indicates an unknown character in a map.
	ErrBadSymbol = errors.New("gridgraph: unknown map symbol")
	// ErrBadCoordinate indicates a malformed "col,row" line.
	ErrBadCoordinate = errors.New("gridgraph: malformed coordinate")
	// ErrMissingStart indicates a map without a start marker.
	ErrMissingStart = errors.New("gridgraph: map has no start")
	// ErrMissingGoal indicates a map without a goal marker.
	ErrMissingGoal = errors.New("gridgraph: map has no goal")
	// ErrNoPath indicates two points cannot be joined.
	ErrNoPath = errors.New("gridgraph: no path between specified points")
)
