// Package burrow models one arrangement of the amphipod burrow: an 11-cell
// hallway above four rooms of depth 2 or 4.
//
// A Burrow is an immutable, comparable value. It serves as the memo key of the
// search engine, so it carries no pointers and no slices; rooms are backed by
// fixed arrays of MaxDepth slots of which only the first Depth() are used.
//
// Rooms are stacks opened at slot 0. A token leaves from the shallowest
// occupied slot (Top) and arrives at the deepest empty slot (InsertSlot), so
// occupied slots are always packed against the back of the room.
//
// Predicates:
//
//   - IsRoomEnterable: the room holds nothing but its own kind.
//   - IsRoomDone:      the room is full of its own kind.
//   - IsPathClear:     hallway cells in a closed interval are empty.
//   - IsSolved:        empty hallway and every room done.
//
// Transitions (Enter, Leave, Transfer) return a new Burrow plus the number of
// steps walked; legality is the move generator's business.
//
// Unfold turns the folded depth-2 variant into the depth-4 one by inserting
// UnfoldRows between the top and bottom rows.
package burrow
