// Package burrow defines the immutable Burrow value, its sentinel errors and
// the constants of the depth-2 and depth-4 variants.
package burrow

import (
	"errors"

	"github.com/katalvlaran/burrow/amphipod"
)

// Sentinel errors returned by constructors and Validate.
var (
	// ErrBadDepth indicates a room depth other than 2 or 4.
	ErrBadDepth = errors.New("burrow: room depth must be 2 or 4")

	// ErrRoomCount indicates that the arrangement does not have exactly four rooms.
	ErrRoomCount = errors.New("burrow: arrangement must have exactly 4 rooms")

	// ErrRoomSize indicates rooms of unequal length.
	ErrRoomSize = errors.New("burrow: rooms must all have the burrow depth")

	// ErrConservation indicates that some kind does not appear exactly depth times.
	ErrConservation = errors.New("burrow: each amphipod kind must appear exactly depth times")

	// ErrFloatingToken indicates an occupied slot with an empty slot behind it.
	ErrFloatingToken = errors.New("burrow: room has a token above an empty slot")

	// ErrDoorwayOccupied indicates a token resting directly above a doorway.
	ErrDoorwayOccupied = errors.New("burrow: token resting on a doorway cell")

	// ErrNotFoldable indicates Unfold was called on something other than a
	// depth-2 burrow with an empty hallway.
	ErrNotFoldable = errors.New("burrow: only an initial depth-2 burrow can be unfolded")
)

// Room depths of the two puzzle variants.
const (
	// ShallowDepth is the depth of the folded (first) variant.
	ShallowDepth = 2

	// DeepDepth is the depth of the unfolded (second) variant.
	DeepDepth = 4

	// MaxDepth bounds the backing array of every room.
	MaxDepth = DeepDepth
)

// UnfoldRows are the two rows inserted between the top and bottom rows of each
// room by Unfold, indexed [row][room].
//
//	#D#C#B#A#
//	#D#B#A#C#
var UnfoldRows = [2][amphipod.Count]amphipod.Amphipod{
	{amphipod.Desert, amphipod.Copper, amphipod.Bronze, amphipod.Amber},
	{amphipod.Desert, amphipod.Bronze, amphipod.Amber, amphipod.Copper},
}

// Position addresses one cell of the burrow. Room == Hallway means Slot is a
// hallway cell index; otherwise Slot indexes into room Room from the opening.
type Position struct {
	Room int
	Slot int
}

// Hallway is the Position.Room value used for hallway cells.
const Hallway = -1

// HallwayAt returns the Position of hallway cell pos.
func HallwayAt(pos int) Position {
	return Position{Room: Hallway, Slot: pos}
}

// RoomAt returns the Position of slot in room.
func RoomAt(room, slot int) Position {
	return Position{Room: room, Slot: slot}
}

// InHallway reports whether p is a hallway cell.
func (p Position) InHallway() bool {
	return p.Room == Hallway
}
