package search

import (
	"math/rand"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/moves"
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// nodeItem is a state and the cost at which it was pushed. Stale items
// (pushed before a cheaper route was found) are skipped when popped.
type nodeItem struct {
	b    burrow.Burrow
	dist int64
}

// dijkstraRunner holds the mutable state for a single priority-ordered search.
type dijkstraRunner struct {
	options  Options
	target   burrow.Burrow
	dist     map[burrow.Burrow]int64 // best known cost per state
	prev     map[burrow.Burrow]Link  // predecessor links, nil unless ReturnPath
	visited  mapset.Set[burrow.Burrow]
	pq       *heap.Heap[nodeItem]
	rng      *rand.Rand
	buf      []moves.Move
	expanded int
}

func newDijkstraRunner(opts Options, target burrow.Burrow) *dijkstraRunner {
	r := &dijkstraRunner{
		options: opts,
		target:  target,
		dist:    make(map[burrow.Burrow]int64),
		visited: mapset.New[burrow.Burrow](),
		pq:      heap.New[nodeItem](func(a, b nodeItem) bool { return a.dist < b.dist }),
		buf:     make([]moves.Move, 0, 32),
	}
	if opts.ReturnPath {
		r.prev = make(map[burrow.Burrow]Link)
	}
	if opts.Shuffle {
		r.rng = rand.New(rand.NewSource(opts.Seed))
	}
	return r
}

// solve pushes start at cost 0 and settles states in order of increasing
// cost until the target is settled or the heap runs dry. It reports whether
// the target was settled.
func (r *dijkstraRunner) solve(start burrow.Burrow) (bool, error) {
	r.dist[start] = 0
	r.pq.Push(nodeItem{b: start, dist: 0})

	for r.pq.Size() > 0 {
		item, _ := r.pq.Pop()
		u, d := item.b, item.dist

		// Stale heap entry for an already settled state.
		if r.visited.Has(u) {
			continue
		}
		// Everything left in the heap is at least this expensive.
		if d > r.options.MaxCost {
			break
		}
		r.visited.Put(u)
		r.expanded++
		r.options.OnExpand(u, d)
		if r.options.MaxExpansions > 0 && r.expanded > r.options.MaxExpansions {
			return false, ErrExpansionLimit
		}

		if u == r.target {
			return true, nil
		}
		r.relax(u, d)
	}

	return false, nil
}

// relax pushes every successor of u whose cost strictly improves.
func (r *dijkstraRunner) relax(u burrow.Burrow, d int64) {
	r.buf = moves.AppendMoves(r.buf[:0], u)
	if r.rng != nil {
		r.rng.Shuffle(len(r.buf), func(i, j int) { r.buf[i], r.buf[j] = r.buf[j], r.buf[i] })
	}

	for _, m := range r.buf {
		v := m.Next
		if r.visited.Has(v) {
			continue
		}
		newDist := d + m.Cost
		if newDist > r.options.MaxCost {
			continue
		}
		if old, ok := r.dist[v]; ok && newDist >= old {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = Link{Prev: u, Move: m}
		}
		r.pq.Push(nodeItem{b: v, dist: newDist})
	}
}

// path walks predecessor links back from the target.
func (r *dijkstraRunner) path() []moves.Move {
	var path []moves.Move
	for cur := r.target; ; {
		l, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, l.Move)
		cur = l.Prev
	}
	reverse(path)

	return path
}
