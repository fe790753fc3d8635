package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseMap reads a character map: '#' wall, '.' open, 'S' start, 'E' goal.
// Trailing blank lines are ignored; carriage returns are stripped.
//
// Errors: ErrEmptyGrid, ErrNonRectangular, ErrBadSymbol (with line and column),
// ErrMissingStart, ErrMissingGoal, or the reader's error.
func ParseMap(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading map: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	w := len(lines[0])
	for _, line := range lines {
		if len(line) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(w, len(lines))
	if err != nil {
		return nil, err
	}

	var hasStart, hasGoal bool
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case SymbolOpen:
			case SymbolWall:
				g.weights[y][x] = Wall
			case SymbolStart:
				g.Start, hasStart = Point{x, y}, true
			case SymbolGoal:
				g.Goal, hasGoal = Point{x, y}, true
			default:
				return nil, fmt.Errorf("%w %q at line %d, column %d", ErrBadSymbol, line[x], y+1, x+1)
			}
		}
	}
	if !hasStart {
		return nil, ErrMissingStart
	}
	if !hasGoal {
		return nil, ErrMissingGoal
	}

	return g, nil
}

// ParseCoordinates reads newline-separated "col,row" pairs.
// Blank lines are skipped; surrounding spaces are allowed.
// A malformed line yields ErrBadCoordinate with its 1-based line number.
func ParseCoordinates(r io.Reader) ([]Point, error) {
	var pts []Point
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCoordinate, n, line)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCoordinate, n, line)
		}
		pts = append(pts, Point{x, y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading coordinates: %w", err)
	}

	return pts, nil
}

// FromCoordinates builds a (size+1)×(size+1) grid whose coordinates range
// over 0..size, with Start at (0,0), Goal at (size,size) and a wall at each
// point of walls. Any out-of-bounds wall is rejected with ErrOutOfBounds
// and its index, never clamped.
func FromCoordinates(size int, walls []Point) (*Grid, error) {
	if size < 0 {
		return nil, ErrEmptyGrid
	}
	g, err := NewSquare(size + 1)
	if err != nil {
		return nil, err
	}
	for i, p := range walls {
		if !g.Set(p.X, p.Y, Wall) {
			return nil, fmt.Errorf("%w: wall #%d at %s", ErrOutOfBounds, i, p)
		}
	}

	return g, nil
}
