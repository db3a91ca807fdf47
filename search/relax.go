package search

import (
	"math/rand"
	"sync/atomic"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/moves"
	"golang.org/x/sync/errgroup"
)

// frame is one pending visit on the relax work-list.
type frame struct {
	b    burrow.Burrow
	cost int64
	via  *Link
}

// relaxRunner holds the shared state of a label-correcting search. Workers
// share the memo and the expansion counter and own everything else.
type relaxRunner struct {
	options  Options
	memo     *Memo
	target   burrow.Burrow
	expanded atomic.Int64
}

// solve seeds the work-list with start. With more than one worker, start is
// expanded here and its successors are spread across an errgroup.
func (r *relaxRunner) solve(start burrow.Burrow) error {
	if r.options.Workers <= 1 {
		return r.run([]frame{{b: start}}, r.rng(0))
	}

	seed := frame{b: start}
	if !r.visit(seed) || start.IsSolved() {
		return r.overLimit()
	}
	succ := r.successors(seed, nil, r.rng(0))

	var g errgroup.Group
	g.SetLimit(r.options.Workers)
	for i, m := range succ {
		i := i // per-iteration copy; go.mod targets go 1.21 loop semantics
		f := frame{b: m.Next, cost: m.Cost}
		if r.options.ReturnPath {
			f.via = &Link{Prev: start, Move: m}
		}
		g.Go(func() error {
			return r.run([]frame{f}, r.rng(int64(i)+1))
		})
	}

	return g.Wait()
}

// run drains a private work-list depth-first. A popped frame is expanded only
// if it improves its state's recorded cost, which bounds how often any state
// can be expanded and guarantees termination.
func (r *relaxRunner) run(stack []frame, rng *rand.Rand) error {
	buf := make([]moves.Move, 0, 32)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !r.visit(f) {
			continue
		}
		if err := r.overLimit(); err != nil {
			return err
		}
		if f.b.IsSolved() {
			continue
		}

		buf = r.successors(f, buf[:0], rng)
		for _, m := range buf {
			next := frame{b: m.Next, cost: f.cost + m.Cost}
			if r.options.ReturnPath {
				next.via = &Link{Prev: f.b, Move: m}
			}
			stack = append(stack, next)
		}
	}
	return nil
}

// visit applies the memo rule and reports whether f should be expanded.
func (r *relaxRunner) visit(f frame) bool {
	if f.cost > r.options.MaxCost {
		return false
	}
	// Nothing reached at or above the best solved cost can lead to a cheaper solution.
	if best, ok := r.memo.Best(r.target); ok && f.cost >= best {
		return false
	}
	if !r.memo.Improve(f.b, f.cost, f.via) {
		return false
	}
	r.expanded.Add(1)
	r.options.OnExpand(f.b, f.cost)

	return true
}

func (r *relaxRunner) overLimit() error {
	if r.options.MaxExpansions > 0 && r.expanded.Load() > int64(r.options.MaxExpansions) {
		return ErrExpansionLimit
	}
	return nil
}

// successors appends the moves out of f.b to buf, shuffled when requested.
func (r *relaxRunner) successors(f frame, buf []moves.Move, rng *rand.Rand) []moves.Move {
	buf = moves.AppendMoves(buf, f.b)
	if rng != nil {
		rng.Shuffle(len(buf), func(i, j int) { buf[i], buf[j] = buf[j], buf[i] })
	}
	return buf
}

// rng returns a per-worker PRNG, or nil when shuffling is off.
func (r *relaxRunner) rng(worker int64) *rand.Rand {
	if !r.options.Shuffle {
		return nil
	}
	return rand.New(rand.NewSource(r.options.Seed + worker))
}
