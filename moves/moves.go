package moves

import (
	"github.com/katalvlaran/burrow/amphipod"
	"github.com/katalvlaran/burrow/burrow"
)

// rule generates every move of one class and appends it to dst.
type rule func(dst []Move, b burrow.Burrow) []Move

// rules is evaluated in order by AppendMoves. Order affects enumeration order only.
var rules = [...]rule{
	hallwayToRoom,
	roomToRoom,
	roomToHallway,
}

// Generate returns every legal move out of b. A solved burrow has none.
func Generate(b burrow.Burrow) []Move {
	return AppendMoves(make([]Move, 0, 16), b)
}

// AppendMoves appends every legal move out of b to dst and returns the
// extended slice, letting callers reuse a buffer across expansions.
func AppendMoves(dst []Move, b burrow.Burrow) []Move {
	for _, r := range rules {
		dst = r(dst, b)
	}
	return dst
}

// enterable: the room holds only its own kind and has room left.
func enterable(b burrow.Burrow, room int) bool {
	return b.IsRoomEnterable(room) && b.InsertSlot(room) >= 0
}

// departable: the room holds a foreigner, so its top token has to leave.
// Done rooms are enterable, and an empty room is enterable, so both are excluded.
func departable(b burrow.Burrow, room int) bool {
	return !b.IsRoomDone(room) && !b.IsRoomEnterable(room) && b.Population(room) > 0
}

// pathClear reports whether a token standing on hallway cell from can walk to
// cell to. The token's own cell is not checked.
func pathClear(b burrow.Burrow, from, to int) bool {
	switch {
	case from < to:
		return b.IsPathClear(from+1, to)
	case from > to:
		return b.IsPathClear(to, from-1)
	}
	return true
}

// hallwayToRoom: a resting token walks home when its room is enterable and
// the hallway up to the doorway is clear.
func hallwayToRoom(dst []Move, b burrow.Burrow) []Move {
	for _, pos := range RestingCells {
		a := b.Hallway(pos)
		if a == amphipod.None {
			continue
		}
		room := a.Room()
		if !enterable(b, room) || !pathClear(b, pos, a.Doorway()) {
			continue
		}
		slot := b.InsertSlot(room)
		next, steps := b.Enter(pos)
		dst = append(dst, Move{
			Kind:     HallwayToRoom,
			Amphipod: a,
			From:     burrow.HallwayAt(pos),
			To:       burrow.RoomAt(room, slot),
			Steps:    steps,
			Cost:     int64(steps) * a.Energy(),
			Next:     next,
		})
	}
	return dst
}

// roomToRoom: the top token of a departable room walks straight into its own
// room when that room is enterable and the doorway-to-doorway corridor is clear.
func roomToRoom(dst []Move, b burrow.Burrow) []Move {
	for src := 0; src < amphipod.Count; src++ {
		if !departable(b, src) {
			continue
		}
		top := b.Top(src)
		a := b.Slot(src, top)
		home := a.Room()
		if !enterable(b, home) || !b.IsPathClear(amphipod.Doorway(src), a.Doorway()) {
			continue
		}
		slot := b.InsertSlot(home)
		next, steps := b.Transfer(src, home)
		dst = append(dst, Move{
			Kind:     RoomToRoom,
			Amphipod: a,
			From:     burrow.RoomAt(src, top),
			To:       burrow.RoomAt(home, slot),
			Steps:    steps,
			Cost:     int64(steps) * a.Energy(),
			Next:     next,
		})
	}
	return dst
}

// roomToHallway: the top token of a departable room stops on any resting cell
// reachable from the doorway.
func roomToHallway(dst []Move, b burrow.Burrow) []Move {
	for src := 0; src < amphipod.Count; src++ {
		if !departable(b, src) {
			continue
		}
		top := b.Top(src)
		a := b.Slot(src, top)
		door := amphipod.Doorway(src)
		for _, pos := range RestingCells {
			if !b.IsPathClear(pos, door) {
				continue
			}
			next, steps := b.Leave(src, pos)
			dst = append(dst, Move{
				Kind:     RoomToHallway,
				Amphipod: a,
				From:     burrow.RoomAt(src, top),
				To:       burrow.HallwayAt(pos),
				Steps:    steps,
				Cost:     int64(steps) * a.Energy(),
				Next:     next,
			})
		}
	}
	return dst
}
