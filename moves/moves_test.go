package moves_test

import (
	"testing"

	"github.com/katalvlaran/burrow/amphipod"
	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/moves"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func example() burrow.Burrow {
	return burrow.MustParse("BA", "CD", "BC", "DA")
}

// checkMoves asserts the properties every generated move must have.
func checkMoves(t *testing.T, from burrow.Burrow, ms []moves.Move) {
	t.Helper()
	for _, m := range ms {
		assert.Positive(t, m.Steps, m.String())
		assert.Equal(t, int64(m.Steps)*m.Amphipod.Energy(), m.Cost, m.String())
		assert.Equal(t, m.Amphipod, from.At(m.From), m.String())
		assert.Equal(t, amphipod.None, from.At(m.To), m.String())
		assert.Equal(t, m.Amphipod, m.Next.At(m.To), m.String())
		assert.Equal(t, amphipod.None, m.Next.At(m.From), m.String())
		if m.To.InHallway() {
			assert.False(t, amphipod.IsDoorway(m.To.Slot), "rests on doorway: %s", m)
		}
		require.NoError(t, m.Next.Validate(), m.String())
	}
}

func countKind(ms []moves.Move, k moves.Kind) int {
	n := 0
	for _, m := range ms {
		if m.Kind == k {
			n++
		}
	}
	return n
}

func TestGenerate_InitialExample(t *testing.T) {
	b := example()
	ms := moves.Generate(b)
	checkMoves(t, b, ms)

	// Nothing rests in the hallway and no room is enterable yet, so every
	// move takes a top token to one of the seven resting cells.
	assert.Len(t, ms, amphipod.Count*len(moves.RestingCells))
	assert.Equal(t, len(ms), countKind(ms, moves.RoomToHallway))

	want, _ := b.Leave(2, 3)
	assert.Contains(t, ms, moves.Move{
		Kind:     moves.RoomToHallway,
		Amphipod: amphipod.Bronze,
		From:     burrow.RoomAt(2, 0),
		To:       burrow.HallwayAt(3),
		Steps:    4,
		Cost:     40,
		Next:     want,
	})
}

func TestGenerate_SolvedHasNoMoves(t *testing.T) {
	for _, depth := range []int{burrow.ShallowDepth, burrow.DeepDepth} {
		b, err := burrow.Solved(depth)
		require.NoError(t, err)
		assert.Empty(t, moves.Generate(b))
	}
}

func TestGenerate_SingleStepHome(t *testing.T) {
	solved, err := burrow.Solved(burrow.ShallowDepth)
	require.NoError(t, err)
	b, _ := solved.Leave(0, 3)

	ms := moves.Generate(b)
	require.Len(t, ms, 1, "room 0 is enterable so its Amber may not leave again")
	checkMoves(t, b, ms)
	assert.Equal(t, moves.HallwayToRoom, ms[0].Kind)
	assert.Equal(t, int64(2), ms[0].Cost)
	assert.True(t, ms[0].Next.IsSolved())
}

func TestGenerate_RoomToRoom(t *testing.T) {
	b, _ := example().Leave(2, 3)
	ms := moves.Generate(b)
	checkMoves(t, b, ms)

	want, _ := b.Transfer(1, 2)
	assert.Contains(t, ms, moves.Move{
		Kind:     moves.RoomToRoom,
		Amphipod: amphipod.Copper,
		From:     burrow.RoomAt(1, 0),
		To:       burrow.RoomAt(2, 0),
		Steps:    4,
		Cost:     400,
		Next:     want,
	})
	assert.Equal(t, 1, countKind(ms, moves.RoomToRoom))

	// The Bronze at cell 3 cannot go home: room 1 still holds a Copper and a Desert.
	assert.Zero(t, countKind(ms, moves.HallwayToRoom))

	// Room 2 is now enterable (a lone Copper at the back) and must not be emptied.
	for _, m := range ms {
		assert.NotEqual(t, 2, m.From.Room, m.String())
	}
}

func TestGenerate_BlockedCorridor(t *testing.T) {
	// A Bronze parked on cell 5 blocks the Copper of room 1 from reaching room 2.
	b, _ := example().Leave(2, 5)
	ms := moves.Generate(b)
	checkMoves(t, b, ms)
	assert.Zero(t, countKind(ms, moves.RoomToRoom))

	// Room 1 tokens can only stop on cells 3, 1 and 0 to the left: 5 is taken
	// and everything to its right is behind it.
	for _, m := range ms {
		if m.From.Room == 1 {
			assert.Contains(t, []int{0, 1, 3}, m.To.Slot, m.String())
		}
	}
}

func TestGenerate_HallwayBlocksHallway(t *testing.T) {
	solved, err := burrow.Solved(burrow.ShallowDepth)
	require.NoError(t, err)

	// Desert parked on cell 1, then an Amber parked on cell 10: the Amber's
	// way home to doorway 2 is clear, the Desert's way to doorway 8 is clear too.
	b, _ := solved.Leave(3, 1)
	b, _ = b.Leave(0, 10)
	ms := moves.Generate(b)
	checkMoves(t, b, ms)
	assert.Equal(t, 2, countKind(ms, moves.HallwayToRoom))

	// Desert on 3 and Amber on 5: each blocks the other.
	b, _ = solved.Leave(3, 3)
	b, _ = b.Leave(0, 5)
	ms = moves.Generate(b)
	assert.Zero(t, countKind(ms, moves.HallwayToRoom))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "hallway-to-room", moves.HallwayToRoom.String())
	assert.Equal(t, "room-to-hallway", moves.RoomToHallway.String())
	assert.Equal(t, "room-to-room", moves.RoomToRoom.String())
	assert.Equal(t, "kind(9)", moves.Kind(9).String())
}
