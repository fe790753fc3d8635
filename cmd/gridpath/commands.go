package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/cheat"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/scenario"
)

// intFlag returns the flag value when it was given, otherwise fallback.
func intFlag(cmd *cobra.Command, name string, value, fallback int) int {
	if cmd.Flags().Changed(name) {
		return value
	}

	return fallback
}

func (a *app) search(g *gridgraph.Grid, maxExpansions int) (astar.Result, error) {
	res, err := astar.Search(g, astar.WithMaxExpansions(maxExpansions))
	if err != nil {
		return res, err
	}
	a.logger.Debug("search finished", "found", res.Found, "steps", res.Steps(), "expanded", res.Expanded)
	if !res.Found {
		return res, fmt.Errorf("%w: %s unreachable from %s", gridgraph.ErrNoPath, g.Goal, g.Start)
	}

	return res, nil
}

func newPathCmd(a *app) *cobra.Command {
	var (
		mapPath       string
		render        bool
		maxExpansions int
	)
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the length of the shortest route from S to E",
		Example: `  gridpath path --map maze.txt
  gridpath path --map - --render < maze.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.readMap(mapPath)
			if err != nil {
				return err
			}
			res, err := a.search(g, intFlag(cmd, "max-expansions", maxExpansions, a.cfg.Search.MaxExpansions))
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "steps: %d\n", res.Steps())
			if render {
				fmt.Fprint(a.out, g.Render(res.Points()))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&mapPath, "map", "", "character map file ('-' for stdin)")
	cmd.Flags().BoolVar(&render, "render", false, "draw the route with 'O'")
	cmd.Flags().IntVar(&maxExpansions, "max-expansions", 0, "abort the search after N expanded cells (0 = no limit)")
	_ = cmd.MarkFlagRequired("map")

	return cmd
}

func newCheatsCmd(a *app) *cobra.Command {
	var (
		mapPath     string
		maxDistance int
		minSavings  int
		histogram   bool
	)
	cmd := &cobra.Command{
		Use:   "cheats",
		Short: "Count shortcuts along the route that save at least M steps",
		Long: `cheats finds the shortest route, then counts every pair of route positions
at most --max-distance steps apart (Manhattan, walls ignored) whose jump
saves at least --min-savings steps.`,
		Example: `  gridpath cheats --map maze.txt --max-distance 2 --min-savings 100
  gridpath cheats --map maze.txt --max-distance 20 --min-savings 50 --histogram`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.readMap(mapPath)
			if err != nil {
				return err
			}
			res, err := a.search(g, a.cfg.Search.MaxExpansions)
			if err != nil {
				return err
			}

			h, err := cheat.Analyze(res.Path,
				cheat.WithMaxDistance(intFlag(cmd, "max-distance", maxDistance, a.cfg.Cheats.MaxDistance)),
				cheat.WithMinSavings(intFlag(cmd, "min-savings", minSavings, a.cfg.Cheats.MinSavings)),
			)
			if err != nil {
				return err
			}
			a.logger.Info("shortcuts analyzed", "steps", res.Steps(), "histogram", h)

			if histogram {
				for _, b := range h.Buckets() {
					fmt.Fprintf(a.out, "%d\t%d\n", b.Savings, b.Count)
				}
			}
			fmt.Fprintf(a.out, "total: %d\n", h.Total())

			return nil
		},
	}
	cmd.Flags().StringVar(&mapPath, "map", "", "character map file ('-' for stdin)")
	cmd.Flags().IntVar(&maxDistance, "max-distance", cheat.DefaultMaxDistance, "longest shortcut in steps")
	cmd.Flags().IntVar(&minSavings, "min-savings", cheat.DefaultMinSavings, "smallest saving to count")
	cmd.Flags().BoolVar(&histogram, "histogram", false, "print 'savings<TAB>count' per bucket")
	_ = cmd.MarkFlagRequired("map")

	return cmd
}

func newFallenCmd(a *app) *cobra.Command {
	var (
		coordsPath string
		size       int
		count      int
	)
	cmd := &cobra.Command{
		Use:   "fallen",
		Short: "Shortest route across a 0..size grid after the first K walls fell",
		Example: `  gridpath fallen --coords bytes.txt --size 70 --count 1024`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			walls, err := a.readCoordinates(coordsPath)
			if err != nil {
				return err
			}
			if count < 0 || count > len(walls) {
				return fmt.Errorf("--count %d not in [0,%d]", count, len(walls))
			}
			g, err := gridgraph.FromCoordinates(size, walls[:count])
			if err != nil {
				return err
			}
			res, err := a.search(g, a.cfg.Search.MaxExpansions)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "steps: %d\n", res.Steps())

			return nil
		},
	}
	cmd.Flags().StringVar(&coordsPath, "coords", "", "file of 'col,row' lines ('-' for stdin)")
	cmd.Flags().IntVar(&size, "size", 70, "largest coordinate of the grid")
	cmd.Flags().IntVar(&count, "count", 1024, "number of walls to drop")
	_ = cmd.MarkFlagRequired("coords")

	return cmd
}

func newBlockerCmd(a *app) *cobra.Command {
	var (
		coordsPath string
		size       int
		from       int
	)
	cmd := &cobra.Command{
		Use:   "blocker",
		Short: "Print the first wall of a list that cuts the goal off",
		Long: `blocker drops the walls of --coords one by one onto a 0..size grid and
prints, as "col,row", the first one after which the bottom-right corner can no
longer be reached from the top-left corner. Prefixes shorter than --from are
assumed to leave a route open.`,
		Example: `  gridpath blocker --coords bytes.txt --size 70 --from 1024 --workers 8`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			walls, err := a.readCoordinates(coordsPath)
			if err != nil {
				return err
			}
			idx, err := scenario.FirstBlocking(cmd.Context(), size, walls, from,
				a.scenarioOptions(a.cfg.Scenario.MinSavings)...)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, walls[idx])

			return nil
		},
	}
	cmd.Flags().StringVar(&coordsPath, "coords", "", "file of 'col,row' lines ('-' for stdin)")
	cmd.Flags().IntVar(&size, "size", 70, "largest coordinate of the grid")
	cmd.Flags().IntVar(&from, "from", 0, "first prefix length to evaluate")
	_ = cmd.MarkFlagRequired("coords")

	return cmd
}

func newRemovalsCmd(a *app) *cobra.Command {
	var (
		mapPath    string
		minSavings int
	)
	cmd := &cobra.Command{
		Use:   "removals",
		Short: "List single walls whose removal restores or shortens the route",
		Example: `  gridpath removals --map maze.txt --min-savings 20`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.readMap(mapPath)
			if err != nil {
				return err
			}
			removals, err := scenario.WallRemovals(cmd.Context(), g,
				a.scenarioOptions(intFlag(cmd, "min-savings", minSavings, a.cfg.Scenario.MinSavings))...)
			for _, r := range removals {
				if r.Restores {
					fmt.Fprintf(a.out, "%s\trestores\tsteps=%d\n", r.Wall, r.Steps)
					continue
				}
				fmt.Fprintf(a.out, "%s\tsaves=%d\tsteps=%d\n", r.Wall, r.Savings, r.Steps)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "total: %d\n", len(removals))

			return nil
		},
	}
	cmd.Flags().StringVar(&mapPath, "map", "", "character map file ('-' for stdin)")
	cmd.Flags().IntVar(&minSavings, "min-savings", 1, "smallest shortening to report")
	_ = cmd.MarkFlagRequired("map")

	return cmd
}
