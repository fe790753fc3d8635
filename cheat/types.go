package cheat

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
)

// Sentinel errors for shortcut analysis.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cheat: invalid option supplied")

	// ErrBadMaxDistance indicates a negative teleport range.
	ErrBadMaxDistance = errors.New("cheat: MaxDistance must be non-negative")

	// ErrBadMinSavings indicates a negative savings threshold.
	ErrBadMinSavings = errors.New("cheat: MinSavings must be non-negative")

	// ErrEmptyPath indicates a route without cells.
	ErrEmptyPath = errors.New("cheat: path is empty")

	// ErrBrokenPath indicates two consecutive route cells that are not adjacent.
	ErrBrokenPath = errors.New("cheat: path is not continuous")
)

// Defaults used when no option overrides them.
const (
	DefaultMaxDistance = 2
	DefaultMinSavings  = 1
)

// Options holds the analysis parameters.
type Options struct {
	// MaxDistance is the largest Manhattan distance a shortcut may jump.
	MaxDistance int
	// MinSavings is the smallest savings that is counted.
	MinSavings int

	// internal error recorded during option parsing
	err error
}

// Option configures an analysis via functional arguments.
type Option func(*Options)

// DefaultOptions returns MaxDistance = 2, MinSavings = 1.
func DefaultOptions() Options {
	return Options{
		MaxDistance: DefaultMaxDistance,
		MinSavings:  DefaultMinSavings,
	}
}

// WithMaxDistance sets the teleport range. d < 0 → ErrOptionViolation.
func WithMaxDistance(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: %w (%d)", ErrOptionViolation, ErrBadMaxDistance, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithMinSavings sets the savings threshold. s < 0 → ErrOptionViolation.
func WithMinSavings(s int) Option {
	return func(o *Options) {
		if s < 0 {
			o.err = fmt.Errorf("%w: %w (%d)", ErrOptionViolation, ErrBadMinSavings, s)
			return
		}
		o.MinSavings = s
	}
}

// Shortcut is one jump from route index From to route index To.
type Shortcut struct {
	From, To int // route indices, From ≤ To
	Distance int // Manhattan distance between the endpoints
	Savings  int // (To - From) - Distance
}

// Histogram maps a savings amount to the number of shortcuts with it.
type Histogram map[int]int

// Bucket is one histogram entry.
type Bucket struct {
	Savings int
	Count   int
}

// Total sums all bucket counts.
func (h Histogram) Total() int {
	total := 0
	for _, c := range h {
		total += c
	}

	return total
}

// Buckets lists the entries in ascending savings order.
func (h Histogram) Buckets() []Bucket {
	out := make([]Bucket, 0, len(h))
	for s, c := range h {
		out = append(out, Bucket{Savings: s, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Savings < out[j].Savings })

	return out
}

// LogValue implements slog.LogValuer: the total plus one attribute per savings amount.
func (h Histogram) LogValue() slog.Value {
	buckets := h.Buckets()
	attrs := make([]any, 0, len(buckets))
	for _, b := range buckets {
		attrs = append(attrs, slog.Int(strconv.Itoa(b.Savings), b.Count))
	}

	return slog.GroupValue(
		slog.Int("total", h.Total()),
		slog.Group("savings", attrs...),
	)
}
