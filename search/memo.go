package search

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/moves"
)

// Link records how a state was reached at its best known cost.
type Link struct {
	Prev burrow.Burrow
	Move moves.Move
}

type memoEntry struct {
	cost   int64
	link   Link
	linked bool
}

// Memo maps every state reached so far to the lowest accumulated cost seen
// for it. It is safe for concurrent use; Improve is a single critical section.
type Memo struct {
	mu   sync.Mutex
	best map[burrow.Burrow]memoEntry
}

// NewMemo returns an empty Memo.
func NewMemo() *Memo {
	return &Memo{best: make(map[burrow.Burrow]memoEntry)}
}

// Improve records cost for b if b is unseen or cost beats its recorded best,
// and reports whether it did. A cost equal to or above the recorded best leaves
// the memo untouched. via, if non-nil, becomes b's predecessor link.
func (m *Memo) Improve(b burrow.Burrow, cost int64, via *Link) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.best[b]; ok && e.cost <= cost {
		return false
	}
	e := memoEntry{cost: cost}
	if via != nil {
		e.link, e.linked = *via, true
	}
	m.best[b] = e

	return true
}

// Best returns the recorded cost of b.
func (m *Memo) Best(b burrow.Burrow) (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.best[b]
	return e.cost, ok
}

// Len returns the number of recorded states.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.best)
}

// PathTo follows predecessor links back from b and returns the moves in
// forward order. Links only exist for states recorded with a non-nil via.
func (m *Memo) PathTo(b burrow.Burrow) ([]moves.Move, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.best[b]; !ok {
		return nil, fmt.Errorf("search: no recorded cost for target\n%s", b)
	}
	var path []moves.Move
	for cur := b; ; {
		e := m.best[cur]
		if !e.linked {
			break
		}
		// Costs strictly decrease along links, so more hops than states means a broken memo.
		if len(path) > len(m.best) {
			return nil, fmt.Errorf("search: predecessor cycle at\n%s", cur)
		}
		path = append(path, e.link.Move)
		cur = e.link.Prev
	}
	reverse(path)

	return path, nil
}

func reverse(path []moves.Move) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
