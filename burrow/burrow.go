package burrow

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/burrow/amphipod"
)

// Burrow is one arrangement of the hallway and the four rooms.
//
// Burrow is a comparable value and is used directly as a map key. Every
// transition returns a new Burrow; none mutates its receiver.
type Burrow struct {
	hall  [amphipod.HallwayLen]amphipod.Amphipod
	rooms [amphipod.Count][MaxDepth]amphipod.Amphipod
	depth uint8
}

// New builds a Burrow with an empty hallway from rooms, each listed from the
// opening inward. The result is validated.
func New(rooms [][]amphipod.Amphipod) (Burrow, error) {
	var b Burrow
	if len(rooms) != amphipod.Count {
		return b, fmt.Errorf("%w: got %d", ErrRoomCount, len(rooms))
	}
	depth := len(rooms[0])
	if depth != ShallowDepth && depth != DeepDepth {
		return b, fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}
	b.depth = uint8(depth)
	for r, room := range rooms {
		if len(room) != depth {
			return Burrow{}, fmt.Errorf("%w: room %d has %d slots, want %d", ErrRoomSize, r, len(room), depth)
		}
		copy(b.rooms[r][:], room)
	}
	if err := b.Validate(); err != nil {
		return Burrow{}, err
	}

	return b, nil
}

// Parse builds a Burrow from four room strings such as "BA", each listed from
// the opening inward.
func Parse(rooms ...string) (Burrow, error) {
	parsed := make([][]amphipod.Amphipod, len(rooms))
	for i, s := range rooms {
		s = strings.TrimSpace(s)
		parsed[i] = make([]amphipod.Amphipod, 0, len(s))
		for _, r := range s {
			a, err := amphipod.Parse(r)
			if err != nil {
				return Burrow{}, fmt.Errorf("burrow: room %d: %w", i, err)
			}
			parsed[i] = append(parsed[i], a)
		}
	}

	return New(parsed)
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(rooms ...string) Burrow {
	b, err := Parse(rooms...)
	if err != nil {
		panic(err)
	}
	return b
}

// Solved returns the unique terminal burrow for depth.
func Solved(depth int) (Burrow, error) {
	if depth != ShallowDepth && depth != DeepDepth {
		return Burrow{}, fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}
	b := Burrow{depth: uint8(depth)}
	for r := range b.rooms {
		for s := 0; s < depth; s++ {
			b.rooms[r][s] = amphipod.FromRoom(r)
		}
	}
	return b, nil
}

// Depth returns the room depth (2 or 4). The zero Burrow has depth 0.
func (b Burrow) Depth() int { return int(b.depth) }

// Hallway returns the occupant of hallway cell pos.
func (b Burrow) Hallway(pos int) amphipod.Amphipod { return b.hall[pos] }

// Slot returns the occupant of slot in room.
func (b Burrow) Slot(room, slot int) amphipod.Amphipod { return b.rooms[room][slot] }

// At returns the occupant of p.
func (b Burrow) At(p Position) amphipod.Amphipod {
	if p.InHallway() {
		return b.hall[p.Slot]
	}
	return b.rooms[p.Room][p.Slot]
}

// Population returns the number of occupied slots in room.
func (b Burrow) Population(room int) int {
	n := 0
	for s := 0; s < int(b.depth); s++ {
		if b.rooms[room][s] != amphipod.None {
			n++
		}
	}
	return n
}

// Top returns the shallowest occupied slot of room, or -1 if it is empty.
func (b Burrow) Top(room int) int {
	for s := 0; s < int(b.depth); s++ {
		if b.rooms[room][s] != amphipod.None {
			return s
		}
	}
	return -1
}

// InsertSlot returns the deepest empty slot of room, the one a token entering
// the room settles in, or -1 if the room is full.
func (b Burrow) InsertSlot(room int) int {
	for s := int(b.depth) - 1; s >= 0; s-- {
		if b.rooms[room][s] == amphipod.None {
			return s
		}
	}
	return -1
}

// IsRoomEnterable reports whether room holds only its own kind, so that a
// homecoming token would not trap a foreigner behind it. Empty rooms are enterable.
func (b Burrow) IsRoomEnterable(room int) bool {
	owner := amphipod.FromRoom(room)
	for s := 0; s < int(b.depth); s++ {
		if a := b.rooms[room][s]; a != amphipod.None && a != owner {
			return false
		}
	}
	return true
}

// IsRoomDone reports whether room is completely filled with its own kind.
func (b Burrow) IsRoomDone(room int) bool {
	owner := amphipod.FromRoom(room)
	for s := 0; s < int(b.depth); s++ {
		if b.rooms[room][s] != owner {
			return false
		}
	}
	return true
}

// IsPathClear reports whether every hallway cell between from and to,
// both included, is empty. Callers exclude a moving token's own cell by
// passing the neighbouring cell as from.
func (b Burrow) IsPathClear(from, to int) bool {
	if from > to {
		from, to = to, from
	}
	for p := from; p <= to; p++ {
		if b.hall[p] != amphipod.None {
			return false
		}
	}
	return true
}

// IsHallwayEmpty reports whether no token rests in the hallway.
func (b Burrow) IsHallwayEmpty() bool {
	return b.IsPathClear(0, amphipod.HallwayLen-1)
}

// IsSolved reports whether b is the terminal arrangement.
func (b Burrow) IsSolved() bool {
	if b.depth == 0 || !b.IsHallwayEmpty() {
		return false
	}
	for r := 0; r < amphipod.Count; r++ {
		if !b.IsRoomDone(r) {
			return false
		}
	}
	return true
}

// Counts returns how many tokens of each kind are present, indexed by home room.
func (b Burrow) Counts() [amphipod.Count]int {
	var c [amphipod.Count]int
	for _, a := range b.hall {
		if a.Valid() {
			c[a.Room()]++
		}
	}
	for r := range b.rooms {
		for s := 0; s < int(b.depth); s++ {
			if a := b.rooms[r][s]; a.Valid() {
				c[a.Room()]++
			}
		}
	}
	return c
}

// Rooms returns a copy of the room contents, each listed from the opening inward.
func (b Burrow) Rooms() [][]amphipod.Amphipod {
	out := make([][]amphipod.Amphipod, amphipod.Count)
	for r := range b.rooms {
		out[r] = append([]amphipod.Amphipod(nil), b.rooms[r][:b.depth]...)
	}
	return out
}

// Validate checks the structural invariants: supported depth, per-kind
// conservation, rooms packed from the back and nothing resting on a doorway.
func (b Burrow) Validate() error {
	depth := int(b.depth)
	if depth != ShallowDepth && depth != DeepDepth {
		return fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}
	for r := range b.rooms {
		for s := depth; s < MaxDepth; s++ {
			if b.rooms[r][s] != amphipod.None {
				return fmt.Errorf("%w: room %d slot %d beyond depth", ErrRoomSize, r, s)
			}
		}
		for s := 1; s < depth; s++ {
			if b.rooms[r][s-1] != amphipod.None && b.rooms[r][s] == amphipod.None {
				return fmt.Errorf("%w: room %d slot %d", ErrFloatingToken, r, s-1)
			}
		}
	}
	for pos, a := range b.hall {
		if a != amphipod.None && amphipod.IsDoorway(pos) {
			return fmt.Errorf("%w: cell %d", ErrDoorwayOccupied, pos)
		}
	}
	for room, n := range b.Counts() {
		if n != depth {
			return fmt.Errorf("%w: %s appears %d times, want %d", ErrConservation, amphipod.FromRoom(room), n, depth)
		}
	}

	return nil
}

// Unfold inserts UnfoldRows between the top and bottom rows of every room,
// turning an initial depth-2 burrow into its depth-4 variant.
func (b Burrow) Unfold() (Burrow, error) {
	if b.depth != ShallowDepth || !b.IsHallwayEmpty() {
		return Burrow{}, ErrNotFoldable
	}
	out := Burrow{depth: DeepDepth}
	for r := range b.rooms {
		out.rooms[r] = [MaxDepth]amphipod.Amphipod{
			b.rooms[r][0],
			UnfoldRows[0][r],
			UnfoldRows[1][r],
			b.rooms[r][1],
		}
	}
	return out, nil
}

// String renders b as the classic diagram.
func (b Burrow) String() string {
	var sb strings.Builder
	sb.WriteString("#############\n#")
	for _, a := range b.hall {
		sb.WriteString(a.String())
	}
	sb.WriteString("#\n")
	for s := 0; s < int(b.depth); s++ {
		if s == 0 {
			sb.WriteString("###")
		} else {
			sb.WriteString("  #")
		}
		for r := range b.rooms {
			sb.WriteString(b.rooms[r][s].String())
			sb.WriteByte('#')
		}
		if s == 0 {
			sb.WriteString("##")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  #########")

	return sb.String()
}
