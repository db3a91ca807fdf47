package amphipod

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrUnknownAmphipod is returned by Parse for any rune outside A..D.
var ErrUnknownAmphipod = errors.New("amphipod: unknown amphipod letter")

// Geometry of the burrow.
const (
	// Count is the number of kinds and also the number of rooms.
	Count = 4

	// HallwayLen is the number of hallway cells.
	HallwayLen = 11
)

// Amphipod is a token kind. The zero value None marks an empty slot.
type Amphipod uint8

const (
	// None marks an empty hallway cell or room slot.
	None Amphipod = iota
	// Amber moves for 1 energy per step and lives in room 0.
	Amber
	// Bronze moves for 10 energy per step and lives in room 1.
	Bronze
	// Copper moves for 100 energy per step and lives in room 2.
	Copper
	// Desert moves for 1000 energy per step and lives in room 3.
	Desert
)

var energy = [Count]int64{1, 10, 100, 1000}

// Kinds lists the four valid kinds in room order.
var Kinds = [Count]Amphipod{Amber, Bronze, Copper, Desert}

// Valid reports whether a is one of the four real kinds.
func (a Amphipod) Valid() bool {
	return a >= Amber && a <= Desert
}

// Energy returns the energy spent per step. It is 0 for None.
func (a Amphipod) Energy() int64 {
	if !a.Valid() {
		return 0
	}
	return energy[a-1]
}

// Room returns the index of a's home room, or -1 for None.
func (a Amphipod) Room() int {
	if !a.Valid() {
		return -1
	}
	return int(a - 1)
}

// Doorway returns the hallway cell directly above a's home room.
func (a Amphipod) Doorway() int {
	return Doorway(a.Room())
}

// String returns the puzzle letter, or "." for None.
func (a Amphipod) String() string {
	if !a.Valid() {
		return "."
	}
	return string(rune('A' + a - 1))
}

// FromRoom returns the kind that owns room. It returns None when room is out of range.
func FromRoom(room int) Amphipod {
	if room < 0 || room >= Count {
		return None
	}
	return Amphipod(room + 1)
}

// Doorway returns the hallway cell above room.
func Doorway(room int) int {
	return (room + 1) * 2
}

// IsDoorway reports whether hallway cell pos sits above a room.
func IsDoorway(pos int) bool {
	return pos >= 2 && pos <= 2*Count && pos%2 == 0
}

// Parse converts a puzzle letter into a kind. '.' parses as None.
func Parse(r rune) (Amphipod, error) {
	switch r {
	case 'A':
		return Amber, nil
	case 'B':
		return Bronze, nil
	case 'C':
		return Copper, nil
	case 'D':
		return Desert, nil
	case '.':
		return None, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownAmphipod, r)
}

// Distance returns |a-b|.
func Distance[T constraints.Integer](a, b T) T {
	if a < b {
		return b - a
	}
	return a - b
}
