package statespace_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/burrow/amphipod"
	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/moves"
	"github.com/katalvlaran/burrow/statespace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func example() burrow.Burrow {
	return burrow.MustParse("BA", "CD", "BC", "DA")
}

// TestWalk_Errors verifies that invalid inputs and options are rejected.
func TestWalk_Errors(t *testing.T) {
	_, err := statespace.Walk(burrow.Burrow{})
	assert.ErrorIs(t, err, statespace.ErrInvalidStart)

	_, err = statespace.Walk(example(), statespace.WithMaxDepth(-1))
	assert.ErrorIs(t, err, statespace.ErrOptionViolation)

	_, err = statespace.Walk(example(), statespace.WithMaxStates(-1))
	assert.ErrorIs(t, err, statespace.ErrOptionViolation)
}

func TestWalk_SolvedStart(t *testing.T) {
	solved, err := burrow.Solved(burrow.DeepDepth)
	require.NoError(t, err)
	res, err := statespace.Walk(solved)
	require.NoError(t, err)
	assert.Equal(t, []burrow.Burrow{solved}, res.Order)
	assert.Zero(t, res.Edges)
	assert.Equal(t, 0, res.Depth[solved])
}

// TestWalk_ConservationEverywhere visits every reachable arrangement of the
// example and checks the structural invariants on each.
func TestWalk_ConservationEverywhere(t *testing.T) {
	want := [amphipod.Count]int{2, 2, 2, 2}
	res, err := statespace.Walk(example(), statespace.WithOnVisit(func(b burrow.Burrow, _ int) error {
		if b.Counts() != want {
			return errors.New("conservation broken")
		}
		return b.Validate()
	}))
	require.NoError(t, err)
	assert.Len(t, res.Depth, len(res.Order))

	solved, err := burrow.Solved(burrow.ShallowDepth)
	require.NoError(t, err)
	assert.Contains(t, res.Depth, solved)
}

func TestWalk_PathTo(t *testing.T) {
	res, err := statespace.Walk(example())
	require.NoError(t, err)
	solved, err := burrow.Solved(burrow.ShallowDepth)
	require.NoError(t, err)

	path, err := res.PathTo(solved)
	require.NoError(t, err)
	require.Len(t, path, res.Depth[solved]+1)
	assert.Equal(t, example(), path[0])

	for i := 1; i < len(path); i++ {
		found := false
		for _, m := range moves.Generate(path[i-1]) {
			if m.Next == path[i] {
				found = true
				break
			}
		}
		assert.True(t, found, "step %d is not a legal move", i)
	}

	_, err = res.PathTo(burrow.Burrow{})
	assert.Error(t, err)
}

func TestWalk_MaxDepth(t *testing.T) {
	res, err := statespace.Walk(example(), statespace.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Len(t, res.Order, 1+len(moves.Generate(example())))
	for _, d := range res.Depth {
		assert.LessOrEqual(t, d, 1)
	}
}

func TestWalk_MaxStates(t *testing.T) {
	res, err := statespace.Walk(example(), statespace.WithMaxStates(10))
	assert.ErrorIs(t, err, statespace.ErrStateLimit)
	require.NotNil(t, res)
	assert.LessOrEqual(t, len(res.Depth), 10)
}

func TestWalk_OnVisitError(t *testing.T) {
	stop := errors.New("stop")
	visits := 0
	_, err := statespace.Walk(example(), statespace.WithOnVisit(func(burrow.Burrow, int) error {
		visits++
		if visits == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visits)
}

func TestWalk_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := statespace.Walk(example(), statespace.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWalk_FilterMove(t *testing.T) {
	// Without any move that lets a token into a room, nothing ever gets home.
	res, err := statespace.Walk(example(), statespace.WithFilterMove(func(m moves.Move) bool {
		return m.Kind == moves.RoomToHallway
	}))
	require.NoError(t, err)
	for _, b := range res.Order {
		assert.False(t, b.IsSolved())
	}
}
