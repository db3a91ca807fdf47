// Package search defines the options, strategies, results and sentinel errors
// of the minimum-energy burrow search.
package search

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/moves"
	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by Solve.
var (
	// ErrInvalidBurrow indicates that the start burrow failed validation.
	ErrInvalidBurrow = errors.New("search: invalid start burrow")

	// ErrUnsolvable indicates that the solved arrangement was never reached
	// (no legal route exists, or every route exceeds MaxCost).
	ErrUnsolvable = errors.New("search: solved arrangement is unreachable")

	// ErrExpansionLimit indicates that MaxExpansions was hit before the search finished.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrBadMaxCost indicates WithMaxCost was given a negative value.
	ErrBadMaxCost = errors.New("search: MaxCost must be non-negative")

	// ErrBadMaxExpansions indicates WithMaxExpansions was given a negative value.
	ErrBadMaxExpansions = errors.New("search: MaxExpansions must be non-negative")

	// ErrBadWorkers indicates WithWorkers was given a value below 1.
	ErrBadWorkers = errors.New("search: Workers must be at least 1")
)

// Strategy selects the exploration algorithm. Both compute the same minimum.
type Strategy int

const (
	// StrategyDijkstra settles states in order of increasing cost and stops as
	// soon as the solved arrangement is settled.
	StrategyDijkstra Strategy = iota

	// StrategyRelax explores depth-first from a work-list, re-expanding a state
	// whenever it is reached more cheaply than before (label-correcting).
	StrategyRelax
)

// String returns the flag name of s.
func (s Strategy) String() string {
	switch s {
	case StrategyDijkstra:
		return "dijkstra"
	case StrategyRelax:
		return "relax"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy maps a flag name back to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dijkstra", "":
		return StrategyDijkstra, nil
	case "relax":
		return StrategyRelax, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Options configures Solve.
//
// Strategy      – exploration algorithm, StrategyDijkstra by default.
// ReturnPath    – if true, Result.Path holds one cheapest move sequence.
// MaxCost       – routes whose accumulated energy exceeds this are abandoned.
// MaxExpansions – if > 0, Solve fails with ErrExpansionLimit past this many expansions.
// Workers       – goroutines used by StrategyRelax; ignored by StrategyDijkstra.
// Shuffle, Seed – permute the move enumeration order with a seeded PRNG.
// OnExpand      – called once per expansion; must be safe for concurrent use when Workers > 1.
// Logger        – receives debug records; discards everything by default.
type Options struct {
	Strategy      Strategy
	ReturnPath    bool
	MaxCost       int64
	MaxExpansions int
	Workers       int
	Shuffle       bool
	Seed          int64
	OnExpand      func(b burrow.Burrow, cost int64)
	Logger        logrus.FieldLogger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given:
// Dijkstra, no path, no cost or expansion cap, one worker, enumeration order
// untouched, and a logger that discards output.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	return Options{
		Strategy:      StrategyDijkstra,
		ReturnPath:    false,
		MaxCost:       math.MaxInt64,
		MaxExpansions: 0,
		Workers:       1,
		Shuffle:       false,
		OnExpand:      func(burrow.Burrow, int64) {},
		Logger:        silent,
	}
}

// WithStrategy selects the exploration algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithReturnPath enables path reconstruction in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost abandons every route whose accumulated energy exceeds max.
// Panics with ErrBadMaxCost if max is negative.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithMaxExpansions caps the number of expansions; 0 disables the cap.
// Panics with ErrBadMaxExpansions if n is negative.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithWorkers sets the number of goroutines StrategyRelax fans out to.
// Panics with ErrBadWorkers if n < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithShuffle permutes every generated move list using a PRNG seeded with seed.
func WithShuffle(seed int64) Option {
	return func(o *Options) {
		o.Shuffle = true
		o.Seed = seed
	}
}

// WithOnExpand registers a hook called with every expanded state and the cost
// it was expanded at.
func WithOnExpand(fn func(b burrow.Burrow, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger routes debug records to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of Solve.
type Result struct {
	Cost     int64        // minimum total energy to reach the solved arrangement
	Expanded int          // expansions performed; StrategyRelax may expand a state more than once
	Visited  int          // distinct states that received a cost
	Path     []moves.Move // one cheapest move sequence, only with WithReturnPath
}
