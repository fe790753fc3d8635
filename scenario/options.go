package scenario

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
)

// Sentinel errors for scenario scans.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("scenario: invalid option supplied")

	// ErrBudgetExceeded indicates WithMaxScenarios ran out before a verdict.
	ErrBudgetExceeded = errors.New("scenario: scenario budget exceeded")

	// ErrNotBlocked indicates no prefix of the wall sequence cuts off the goal.
	ErrNotBlocked = errors.New("scenario: goal stays reachable")

	// ErrBadRange indicates a prefix start outside the wall sequence.
	ErrBadRange = errors.New("scenario: start index out of range")

	// ErrNilGrid indicates a nil grid.
	ErrNilGrid = errors.New("scenario: grid is nil")
)

// Options configures a scan.
type Options struct {
	// Workers is the number of concurrent scenarios.
	Workers int
	// MaxScenarios bounds evaluated scenarios; 0 means unlimited.
	MaxScenarios int
	// MinSavings filters WallRemovals on shortened routes.
	MinSavings int
	// Logger receives progress records.
	Logger *slog.Logger
	// Metrics, when non-nil, records counters and expansions.
	Metrics *Metrics

	// internal error recorded during option parsing
	err error
}

// Option configures a scan via functional arguments.
type Option func(*Options)

// DefaultOptions returns NumCPU workers, no budget, MinSavings 1,
// a discarding logger and no metrics.
func DefaultOptions() Options {
	return Options{
		Workers:      runtime.NumCPU(),
		MaxScenarios: 0,
		MinSavings:   1,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}

// WithWorkers sets the pool size. n == 0 keeps NumCPU; n < 0 is invalid.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n > 0:
			o.Workers = n
		}
	}
}

// WithMaxScenarios bounds the number of scenarios. n == 0 means unlimited; n < 0 is invalid.
func WithMaxScenarios(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxScenarios cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxScenarios = n
	}
}

// WithMinSavings sets the smallest route shortening WallRemovals reports.
// Values below 1 still require a strictly shorter route; s < 0 is invalid.
func WithMinSavings(s int) Option {
	return func(o *Options) {
		if s < 0 {
			o.err = fmt.Errorf("%w: MinSavings cannot be negative (%d)", ErrOptionViolation, s)
			return
		}
		o.MinSavings = s
	}
}

// WithLogger attaches a logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records scan activity on m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}
