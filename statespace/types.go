// Package statespace provides tunable options and error definitions
// for breadth-first enumeration of reachable burrow arrangements.
package statespace

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/moves"
)

// Sentinel errors for Walk.
var (
	// ErrInvalidStart is returned when the start burrow fails validation.
	ErrInvalidStart = errors.New("statespace: invalid start burrow")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("statespace: invalid option supplied")

	// ErrStateLimit is returned when more than MaxStates states are discovered.
	ErrStateLimit = errors.New("statespace: state limit reached")
)

// Option configures Walk via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Walk.
type Option func(*Options)

// Options holds parameters and callbacks to customize Walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called for each state in visit order with its depth in moves
	// from the start. Returning an error aborts the walk.
	OnVisit func(b burrow.Burrow, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many moves.
	MaxDepth int

	// MaxStates, if > 0, fails the walk with ErrStateLimit once more states
	// than this have been discovered.
	MaxStates int

	// FilterMove skips a transition when it returns false.
	FilterMove func(m moves.Move) bool

	err error
}

// DefaultOptions returns Options with a background context, no limits,
// no filtering and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(burrow.Burrow, int) error { return nil },
		FilterMove: func(moves.Move) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visited state.
func WithOnVisit(fn func(b burrow.Burrow, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to d moves from the start; 0 means no limit.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxStates caps the number of discovered states; 0 means no limit.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithFilterMove skips every move for which fn returns false.
func WithFilterMove(fn func(m moves.Move) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterMove = fn
		}
	}
}

// Result holds the outcome of a walk:
//   - Order: states in visit sequence, start first.
//   - Depth: fewest moves from the start to each state.
//   - Parent: predecessor of each state in the BFS tree.
//   - Edges: number of transitions examined after filtering.
type Result struct {
	Order  []burrow.Burrow
	Depth  map[burrow.Burrow]int
	Parent map[burrow.Burrow]burrow.Burrow
	Edges  int
}

// PathTo reconstructs the fewest-moves sequence of states from the start to dest.
func (r *Result) PathTo(dest burrow.Burrow) ([]burrow.Burrow, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("statespace: state not reached\n%s", dest)
	}
	path := []burrow.Burrow{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
