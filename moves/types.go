// Package moves defines Move and the move classes produced by Generate.
package moves

import (
	"fmt"

	"github.com/katalvlaran/burrow/amphipod"
	"github.com/katalvlaran/burrow/burrow"
)

// Kind classifies a move by where it starts and ends.
type Kind uint8

const (
	// HallwayToRoom moves a resting token home.
	HallwayToRoom Kind = iota
	// RoomToHallway moves a token out of a room onto a resting cell.
	RoomToHallway
	// RoomToRoom moves a token out of a room straight into its home room.
	RoomToRoom
)

// String returns a short name for k.
func (k Kind) String() string {
	switch k {
	case HallwayToRoom:
		return "hallway-to-room"
	case RoomToHallway:
		return "room-to-hallway"
	case RoomToRoom:
		return "room-to-room"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Move is one atomic, legal relocation of a single token.
type Move struct {
	Kind     Kind
	Amphipod amphipod.Amphipod
	From     burrow.Position
	To       burrow.Position
	Steps    int           // cells walked
	Cost     int64         // Steps * Amphipod.Energy()
	Next     burrow.Burrow // arrangement after the move
}

// String describes m, e.g. "B room 2/0 -> hallway 3 (4 steps, 40)".
func (m Move) String() string {
	return fmt.Sprintf("%s %s -> %s (%d steps, %d)", m.Amphipod, where(m.From), where(m.To), m.Steps, m.Cost)
}

func where(p burrow.Position) string {
	if p.InHallway() {
		return fmt.Sprintf("hallway %d", p.Slot)
	}
	return fmt.Sprintf("room %d/%d", p.Room, p.Slot)
}

// RestingCells are the hallway cells a token may stop on: every cell except
// the four doorways.
var RestingCells = [...]int{0, 1, 3, 5, 7, 9, 10}
