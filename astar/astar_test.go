// Package astar_test contains unit tests for the A* search: validation, optimality
// on open and corridor grids, unreachable goals, the cheat coordinate and the
// expansion budget.
package astar_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// raceMap is the 15×15 reference race track with a single winding corridor.
const raceMap = `###############
#...#...#.....#
#.#.#.#.#.###.#
#S#...#.#.#...#
#######.#.#.###
#######.#.#...#
#######.#.###.#
###..E#...#...#
###.#######.###
#...###...#...#
#.#####.#.###.#
#.#...#.#.#...#
#.#.#.#.#.#.###
#...#...#...###
###############
`

// fallen lists the first walls of the 0..6 coordinate example.
const fallen = `5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
`

// SearchSuite exercises Search under various scenarios.
type SearchSuite struct {
	suite.Suite
}

func (s *SearchSuite) parse(src string) *gridgraph.Grid {
	g, err := gridgraph.ParseMap(strings.NewReader(src))
	s.Require().NoError(err)

	return g
}

// requireValidPath checks endpoints, continuity and the cost/weight relation.
func (s *SearchSuite) requireValidPath(g *gridgraph.Grid, res astar.Result) {
	s.Require().True(res.Found)
	s.Require().NotEmpty(res.Path)
	s.Require().Equal(g.Start, res.Path[0].Point)
	s.Require().Equal(g.Goal, res.Path[len(res.Path)-1].Point)
	sum := 0
	for i := 1; i < len(res.Path); i++ {
		s.Require().Equal(1, gridgraph.Manhattan(res.Path[i-1].Point, res.Path[i].Point),
			"step %d is not orthogonal", i)
		sum += res.Path[i].Weight
	}
	s.Require().Equal(res.Cost, sum)
}

// TestNilGrid rejects a nil grid.
func (s *SearchSuite) TestNilGrid() {
	_, err := astar.Search(nil)
	s.Require().ErrorIs(err, astar.ErrNilGrid)
}

// TestNegativeBudget surfaces the recorded option violation.
func (s *SearchSuite) TestNegativeBudget() {
	g, _ := gridgraph.NewSquare(3)
	_, err := astar.Search(g, astar.WithMaxExpansions(-1))
	s.Require().ErrorIs(err, astar.ErrOptionViolation)
}

// TestOpenGridIsManhattan verifies cost == Manhattan(start, goal) without walls.
func (s *SearchSuite) TestOpenGridIsManhattan() {
	for _, dims := range [][2]int{{1, 1}, {1, 7}, {5, 5}, {12, 3}, {30, 30}} {
		g, err := gridgraph.New(dims[0], dims[1])
		s.Require().NoError(err)
		res, err := astar.Search(g)
		s.Require().NoError(err)
		s.requireValidPath(g, res)
		s.Require().Equal(gridgraph.Manhattan(g.Start, g.Goal), res.Cost, "grid %v", dims)
		s.Require().Equal(res.Cost, res.Steps())
	}
}

// TestCustomEndpoints searches between interior points.
func (s *SearchSuite) TestCustomEndpoints() {
	g, _ := gridgraph.NewSquare(9)
	s.Require().NoError(g.SetStart(gridgraph.Point{X: 6, Y: 7}))
	s.Require().NoError(g.SetGoal(gridgraph.Point{X: 2, Y: 1}))
	res, err := astar.Search(g)
	s.Require().NoError(err)
	s.requireValidPath(g, res)
	s.Require().Equal(10, res.Cost)
}

// TestCorridor returns the unique corridor length.
func (s *SearchSuite) TestCorridor() {
	g := s.parse("S....\n####.\n.....\n.####\n....E\n")
	res, err := astar.Search(g)
	s.Require().NoError(err)
	s.requireValidPath(g, res)
	s.Require().Equal(16, res.Cost)
	s.Require().Len(res.Path, 17)
}

// TestRaceTrack finds the 84-step honest route of the reference maze.
func (s *SearchSuite) TestRaceTrack() {
	g := s.parse(raceMap)
	res, err := astar.Search(g)
	s.Require().NoError(err)
	s.requireValidPath(g, res)
	s.Require().Equal(84, res.Cost)
	s.Require().Len(res.Path, 85)
}

// TestFallenCoordinates matches the 0..6 example after 12 walls.
func (s *SearchSuite) TestFallenCoordinates() {
	walls, err := gridgraph.ParseCoordinates(strings.NewReader(fallen))
	s.Require().NoError(err)
	g, err := gridgraph.FromCoordinates(6, walls)
	s.Require().NoError(err)
	res, err := astar.Search(g)
	s.Require().NoError(err)
	s.requireValidPath(g, res)
	s.Require().Equal(22, res.Steps())
}

// TestGoalIsWall reports not found without error.
func (s *SearchSuite) TestGoalIsWall() {
	g, _ := gridgraph.NewSquare(4)
	g.Set(g.Goal.X, g.Goal.Y, gridgraph.Wall)
	res, err := astar.Search(g)
	s.Require().NoError(err)
	s.Require().False(res.Found)
	s.Require().Nil(res.Path)
	s.Require().Equal(-1, res.Steps())
}

// TestStartIsWall needs the cheat to leave a walled start.
func (s *SearchSuite) TestStartIsWall() {
	g, _ := gridgraph.NewSquare(3)
	g.Set(g.Start.X, g.Start.Y, gridgraph.Wall)
	res, err := astar.Search(g)
	s.Require().NoError(err)
	s.Require().False(res.Found)
	s.Require().Zero(res.Expanded)

	res, err = astar.Search(g, astar.WithCheat(g.Start))
	s.Require().NoError(err)
	s.requireValidPath(g, res)
	s.Require().Equal(gridgraph.Open, res.Path[0].Weight)
}

// TestUnreachable exhausts the open set on a split grid.
func (s *SearchSuite) TestUnreachable() {
	g := s.parse("S.#\n###\n..E\n")
	res, err := astar.Search(g)
	s.Require().NoError(err)
	s.Require().False(res.Found)
	s.Require().Equal(2, res.Expanded)
}

// TestCheatOpensSingleWall lets exactly one wall be crossed.
func (s *SearchSuite) TestCheatOpensSingleWall() {
	g := s.parse("S.#\n###\n..E\n")
	wall := gridgraph.Point{X: 0, Y: 1}

	res, err := astar.Search(g, astar.WithCheat(wall))
	s.Require().NoError(err)
	s.requireValidPath(g, res)
	s.Require().Equal(4, res.Cost)
	s.Require().Equal(wall, res.Path[1].Point)
	s.Require().Equal(gridgraph.Open, res.Path[1].Weight)

	// The grid is untouched and the honest search still fails.
	s.Require().False(g.Passable(wall))
	honest, err := astar.Search(g)
	s.Require().NoError(err)
	s.Require().False(honest.Found)
}

// TestCheatOnGoal lets a wall goal be entered when it is the cheat point.
func (s *SearchSuite) TestCheatOnGoal() {
	g, _ := gridgraph.NewSquare(3)
	g.Set(g.Goal.X, g.Goal.Y, gridgraph.Wall)
	res, err := astar.Search(g, astar.WithCheat(g.Goal))
	s.Require().NoError(err)
	s.requireValidPath(g, res)
	s.Require().Equal(4, res.Cost)
}

// TestCheatShortens shows a shortcut through one wall of the race track.
func (s *SearchSuite) TestCheatShortens() {
	g := s.parse(raceMap)
	// Breaking (8,1) joins two corridor segments and saves 12 steps.
	res, err := astar.Search(g, astar.WithCheat(gridgraph.Point{X: 8, Y: 1}))
	s.Require().NoError(err)
	s.requireValidPath(g, res)
	s.Require().Equal(84-12, res.Cost)
}

// TestIdempotent runs the same search twice.
func (s *SearchSuite) TestIdempotent() {
	g := s.parse(raceMap)
	first, err := astar.Search(g)
	s.Require().NoError(err)
	second, err := astar.Search(g)
	s.Require().NoError(err)
	s.Require().Equal(first, second)
}

// TestBudget stops early with ErrBudgetExceeded.
func (s *SearchSuite) TestBudget() {
	g, _ := gridgraph.NewSquare(10)
	res, err := astar.Search(g, astar.WithMaxExpansions(3))
	s.Require().ErrorIs(err, astar.ErrBudgetExceeded)
	s.Require().False(res.Found)
	s.Require().Equal(3, res.Expanded)

	res, err = astar.Search(g, astar.WithMaxExpansions(0))
	s.Require().NoError(err)
	s.Require().True(res.Found)
}

// TestAgreesWithDijkstra compares Manhattan A* against the zero heuristic on random mazes.
func (s *SearchSuite) TestAgreesWithDijkstra() {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		g, _ := gridgraph.New(8+r.Intn(12), 8+r.Intn(12))
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if r.Float64() < 0.3 {
					g.Set(x, y, gridgraph.Wall)
				}
			}
		}
		g.Set(g.Start.X, g.Start.Y, gridgraph.Open)
		g.Set(g.Goal.X, g.Goal.Y, gridgraph.Open)

		informed, err := astar.Search(g)
		s.Require().NoError(err)
		blind, err := astar.Search(g, astar.WithHeuristic(astar.Zero))
		s.Require().NoError(err)

		s.Require().Equal(blind.Found, informed.Found, "trial %d", trial)
		s.Require().Equal(g.Connected(g.Start, g.Goal), informed.Found, "trial %d", trial)
		if informed.Found {
			s.requireValidPath(g, informed)
			s.Require().Equal(blind.Cost, informed.Cost, "trial %d", trial)
			s.Require().LessOrEqual(informed.Expanded, blind.Expanded, "trial %d", trial)
		}
	}
}

// TestNilHeuristicIgnored keeps the default estimate.
func (s *SearchSuite) TestNilHeuristicIgnored() {
	g, _ := gridgraph.NewSquare(5)
	res, err := astar.Search(g, astar.WithHeuristic(nil))
	s.Require().NoError(err)
	s.Require().Equal(8, res.Cost)
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

// TestResultPoints strips weights in order.
func TestResultPoints(t *testing.T) {
	g, _ := gridgraph.New(3, 1)
	res, err := astar.Search(g)
	require.NoError(t, err)
	require.Equal(t, []gridgraph.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, res.Points())
}
