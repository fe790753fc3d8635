package scenario

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Removal describes the effect of knocking down a single wall.
type Removal struct {
	// Wall is the removed wall.
	Wall gridgraph.Point
	// Restores is true when the goal was unreachable and becomes reachable.
	Restores bool
	// Steps is the route length with Wall removed.
	Steps int
	// Savings is the honest route length minus Steps; 0 when Restores.
	Savings int
}

// WallRemovals evaluates every wall of g as a removal candidate and returns
// those that either restore an unreachable goal or shorten the route by at
// least max(MinSavings, 1) steps, in row-major order of the wall.
//
// Each candidate is one astar.Search with astar.WithCheat on g, which is
// only read. Walls with fewer than two passable neighbors cannot lie on a
// route and are skipped, unless the wall is the start or the goal. When the
// goal is unreachable and every route needs more than one breach, the result
// is empty without evaluating any candidate.
//
// With WithMaxScenarios(n) only the first n candidates are evaluated; their
// removals are returned together with ErrBudgetExceeded.
func WallRemovals(ctx context.Context, g *gridgraph.Grid, opts ...Option) ([]Removal, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	ctx, span := tracer.Start(ctx, "scenario.WallRemovals",
		trace.WithAttributes(
			attribute.Int("width", g.Width),
			attribute.Int("height", g.Height),
			attribute.Int("workers", cfg.Workers),
		),
	)
	defer span.End()

	fail := func(out []Removal, err error) ([]Removal, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return out, err
	}

	honest, err := astar.Search(g)
	if err != nil {
		return fail(nil, err)
	}
	cfg.Metrics.observe(KindRemoval, honest.Expanded, honest.Found)

	if !honest.Found {
		_, breaches, err := g.Breaches(g.Start, g.Goal)
		if err != nil {
			return fail(nil, err)
		}
		if breaches > 1 {
			cfg.Logger.Debug("no single wall reconnects", "breaches", breaches)
			span.SetAttributes(attribute.Int("breaches", breaches))
			return nil, nil
		}
	}

	candidates := candidateWalls(g)
	var budgetErr error
	if cfg.MaxScenarios > 0 && len(candidates) > cfg.MaxScenarios {
		budgetErr = fmt.Errorf("%w: %d of %d candidates evaluated",
			ErrBudgetExceeded, cfg.MaxScenarios, len(candidates))
		candidates = candidates[:cfg.MaxScenarios]
	}
	span.SetAttributes(attribute.Int("candidates", len(candidates)))

	minSavings := cfg.MinSavings
	if minSavings < 1 {
		minSavings = 1
	}

	found := make([]*Removal, len(candidates))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for i, w := range candidates {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := astar.Search(g, astar.WithCheat(w))
			if err != nil {
				return fmt.Errorf("scenario: removal %s: %w", w, err)
			}
			cfg.Metrics.observe(KindRemoval, res.Expanded, res.Found)
			if !res.Found {
				return nil
			}

			switch {
			case !honest.Found:
				found[i] = &Removal{Wall: w, Restores: true, Steps: res.Steps()}
			case honest.Steps()-res.Steps() >= minSavings:
				found[i] = &Removal{Wall: w, Steps: res.Steps(), Savings: honest.Steps() - res.Steps()}
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return fail(nil, err)
	}

	var out []Removal
	for _, r := range found {
		if r != nil {
			out = append(out, *r)
		}
	}
	cfg.Logger.Info("wall removals evaluated",
		"candidates", len(candidates),
		"reported", len(out),
		"restoring", !honest.Found,
	)
	span.SetAttributes(attribute.Int("reported", len(out)))

	if budgetErr != nil {
		return fail(out, budgetErr)
	}

	return out, nil
}

// candidateWalls lists the walls, row-major, a route could pass through.
func candidateWalls(g *gridgraph.Grid) []gridgraph.Point {
	var out []gridgraph.Point
	for _, w := range g.Walls() {
		if w == g.Start || w == g.Goal || len(g.Neighbors(w, nil)) >= 2 {
			out = append(out, w)
		}
	}

	return out
}

func slogWall(p gridgraph.Point) slog.Attr {
	return slog.String("wall", p.String())
}
