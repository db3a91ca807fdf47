package search_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/moves"
	"github.com/katalvlaran/burrow/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemo_ImproveOnlyOnStrictlyLower covers the memo rule: equal or worse
// costs leave the record alone and report false.
func TestMemo_ImproveOnlyOnStrictlyLower(t *testing.T) {
	m := search.NewMemo()
	b := exampleShallow()

	_, ok := m.Best(b)
	assert.False(t, ok)

	assert.True(t, m.Improve(b, 10, nil))
	assert.False(t, m.Improve(b, 10, nil), "equal cost must not count as improvement")
	assert.False(t, m.Improve(b, 12, nil))
	best, ok := m.Best(b)
	require.True(t, ok)
	assert.Equal(t, int64(10), best)

	assert.True(t, m.Improve(b, 5, nil))
	best, _ = m.Best(b)
	assert.Equal(t, int64(5), best)
	assert.Equal(t, 1, m.Len())
}

func TestMemo_PathTo(t *testing.T) {
	m := search.NewMemo()
	start := exampleShallow()
	require.True(t, m.Improve(start, 0, nil))

	first := moves.Generate(start)[0]
	require.True(t, m.Improve(first.Next, first.Cost, &search.Link{Prev: start, Move: first}))

	second := moves.Generate(first.Next)[0]
	require.True(t, m.Improve(second.Next, first.Cost+second.Cost, &search.Link{Prev: first.Next, Move: second}))

	path, err := m.PathTo(second.Next)
	require.NoError(t, err)
	assert.Equal(t, []moves.Move{first, second}, path)

	path, err = m.PathTo(start)
	require.NoError(t, err)
	assert.Empty(t, path)

	solved, err := burrow.Solved(burrow.ShallowDepth)
	require.NoError(t, err)
	_, err = m.PathTo(solved)
	assert.Error(t, err)
}

// TestMemo_ConcurrentImprove hammers one key from many goroutines; the
// recorded best must be the minimum offered and exactly one caller must have
// won with it.
func TestMemo_ConcurrentImprove(t *testing.T) {
	m := search.NewMemo()
	b := exampleShallow()

	const n = 64
	var wg sync.WaitGroup
	var mu sync.Mutex
	winsAtMin := 0
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(cost int64) {
			defer wg.Done()
			if m.Improve(b, cost, nil) && cost == 1 {
				mu.Lock()
				winsAtMin++
				mu.Unlock()
			}
		}(int64(n - i))
	}
	wg.Wait()

	best, ok := m.Best(b)
	require.True(t, ok)
	assert.Equal(t, int64(1), best)
	assert.Equal(t, 1, winsAtMin)
}
