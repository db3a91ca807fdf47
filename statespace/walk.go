// Package statespace enumerates every burrow arrangement reachable from a
// start by legal moves, breadth-first, with optional hooks, depth and size
// limits and move filtering.
//
// The state graph is implicit: neighbours come from moves.Generate, so nothing
// is materialised beyond the visited set and the Result maps.
package statespace

import (
	"fmt"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/moves"
	"github.com/zyedidia/generic/mapset"
)

type queueItem struct {
	b     burrow.Burrow
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts    Options
	queue   []queueItem
	visited mapset.Set[burrow.Burrow]
	buf     []moves.Move
	res     *Result
}

// Walk runs breadth-first search from start. It returns ErrInvalidStart,
// ErrOptionViolation, ErrStateLimit, a context error, or any OnVisit error.
// On error the partial Result is returned alongside it.
func Walk(start burrow.Burrow, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStart, err)
	}

	w := &walker{
		opts:    o,
		visited: mapset.New[burrow.Burrow](),
		buf:     make([]moves.Move, 0, 32),
		res: &Result{
			Depth:  make(map[burrow.Burrow]int),
			Parent: make(map[burrow.Burrow]burrow.Burrow),
		},
	}
	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

func (w *walker) enqueue(b burrow.Burrow, depth int, parent *burrow.Burrow) {
	w.visited.Put(b)
	w.res.Depth[b] = depth
	if parent != nil {
		w.res.Parent[b] = *parent
	}
	w.queue = append(w.queue, queueItem{b: b, depth: depth})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.b)
		if err := w.opts.OnVisit(item.b, item.depth); err != nil {
			return fmt.Errorf("statespace: OnVisit error at depth %d: %w", item.depth, err)
		}
		if err := w.enqueueSuccessors(item); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) enqueueSuccessors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	w.buf = moves.AppendMoves(w.buf[:0], item.b)
	for _, m := range w.buf {
		if !w.opts.FilterMove(m) {
			continue
		}
		w.res.Edges++
		if w.visited.Has(m.Next) {
			continue
		}
		if w.opts.MaxStates > 0 && w.visited.Size() >= w.opts.MaxStates {
			return fmt.Errorf("%w: %d", ErrStateLimit, w.opts.MaxStates)
		}
		w.enqueue(m.Next, next, &item.b)
	}
	return nil
}
