package scenario

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

var tracer = otel.Tracer("gridpath.scenario")

// FirstBlocking drops walls one by one onto the 0..size grid of
// gridgraph.FromCoordinates and returns the index in walls of the first wall
// after which the goal is unreachable.
//
// Description:
//
//	Scenario k places walls[:k]. Scenarios k = from, from+1, ... are
//	evaluated in batches of Workers, each on its own grid, and the first
//	batch containing an unreachable goal decides: the smallest such k gives
//	the answer k-1. Adding walls never restores a route, so later prefixes
//	need not be looked at.
//
// Inputs:
//   - ctx:   checked between batches and before each scenario.
//   - size:  largest coordinate; the grid is (size+1)×(size+1).
//   - walls: drop sequence; every point must be in bounds.
//   - from:  first prefix length to evaluate, 0 ≤ from ≤ len(walls).
//
// Outputs:
//   - int:   index of the blocking wall, or -1 on error.
//   - error: ErrBadRange, gridgraph.ErrOutOfBounds, ErrOptionViolation,
//     ErrBudgetExceeded, ErrNotBlocked, or the context error.
func FirstBlocking(ctx context.Context, size int, walls []gridgraph.Point, from int, opts ...Option) (int, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return -1, err
	}

	ctx, span := tracer.Start(ctx, "scenario.FirstBlocking",
		trace.WithAttributes(
			attribute.Int("size", size),
			attribute.Int("walls", len(walls)),
			attribute.Int("from", from),
			attribute.Int("workers", cfg.Workers),
		),
	)
	defer span.End()

	fail := func(err error) (int, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return -1, err
	}

	if from < 0 || from > len(walls) {
		return fail(fmt.Errorf("%w: %d not in [0,%d]", ErrBadRange, from, len(walls)))
	}
	// Reject malformed input once instead of in every scenario.
	if _, err := gridgraph.FromCoordinates(size, walls); err != nil {
		return fail(err)
	}

	evaluated := 0
	for next := from; next <= len(walls); {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		if cfg.MaxScenarios > 0 && evaluated >= cfg.MaxScenarios {
			return fail(fmt.Errorf("%w: %d prefixes evaluated", ErrBudgetExceeded, evaluated))
		}

		hi := next + cfg.Workers
		if hi > len(walls)+1 {
			hi = len(walls) + 1
		}
		if cfg.MaxScenarios > 0 && hi-next > cfg.MaxScenarios-evaluated {
			hi = next + cfg.MaxScenarios - evaluated
		}

		blocked, err := evaluatePrefixes(ctx, cfg, size, walls, next, hi)
		if err != nil {
			return fail(err)
		}
		evaluated += hi - next

		for k := next; k < hi; k++ {
			if blocked[k-next] {
				idx := k - 1
				cfg.Logger.Info("goal cut off",
					slogWall(walls[idx]),
					"index", idx,
					"evaluated", evaluated,
				)
				span.SetAttributes(
					attribute.Int("blocking_index", idx),
					attribute.Int("evaluated", evaluated),
				)
				return idx, nil
			}
		}
		cfg.Logger.Debug("batch reachable", "from", next, "to", hi-1)
		next = hi
	}

	span.SetAttributes(attribute.Int("evaluated", evaluated))
	return fail(ErrNotBlocked)
}

// evaluatePrefixes runs scenarios lo..hi-1 concurrently and reports, per
// scenario, whether the goal was unreachable.
func evaluatePrefixes(ctx context.Context, cfg Options, size int, walls []gridgraph.Point, lo, hi int) ([]bool, error) {
	blocked := make([]bool, hi-lo)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)

	for k := lo; k < hi; k++ {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			grid, err := gridgraph.FromCoordinates(size, walls[:k])
			if err != nil {
				return err
			}
			res, err := astar.Search(grid)
			if err != nil {
				return fmt.Errorf("scenario: prefix %d: %w", k, err)
			}
			cfg.Metrics.observe(KindPrefix, res.Expanded, res.Found)
			blocked[k-lo] = !res.Found

			return nil
		})
	}

	return blocked, eg.Wait()
}
