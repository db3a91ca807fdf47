package burrow

import "github.com/katalvlaran/burrow/amphipod"

// The transitions below move exactly one token and report the number of steps
// it walked. They do not check legality: the move generator decides which
// transitions are allowed and only calls these with a source that is
// occupied and a destination that is free.

// Enter moves the token resting on hallway cell pos into the deepest empty
// slot of its home room.
func (b Burrow) Enter(pos int) (Burrow, int) {
	a := b.hall[pos]
	room := a.Room()
	slot := b.InsertSlot(room)

	b.hall[pos] = amphipod.None
	b.rooms[room][slot] = a

	return b, amphipod.Distance(pos, amphipod.Doorway(room)) + slot + 1
}

// Leave moves the shallowest token of room onto hallway cell pos.
func (b Burrow) Leave(room, pos int) (Burrow, int) {
	slot := b.Top(room)

	b.hall[pos] = b.rooms[room][slot]
	b.rooms[room][slot] = amphipod.None

	return b, slot + 1 + amphipod.Distance(pos, amphipod.Doorway(room))
}

// Transfer moves the shallowest token of room src straight into the deepest
// empty slot of room dst, walking through the hallway without stopping.
func (b Burrow) Transfer(src, dst int) (Burrow, int) {
	from := b.Top(src)
	to := b.InsertSlot(dst)

	b.rooms[dst][to] = b.rooms[src][from]
	b.rooms[src][from] = amphipod.None

	return b, from + 1 + amphipod.Distance(amphipod.Doorway(src), amphipod.Doorway(dst)) + to + 1
}
