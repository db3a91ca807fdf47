// Package amphipod defines the four token types of the burrow puzzle and the
// fixed geometry they live in.
//
// Overview:
//
//   - Four kinds exist: Amber (A), Bronze (B), Copper (C) and Desert (D).
//   - Each kind spends a fixed amount of energy per step: 1, 10, 100, 1000.
//   - Each kind owns exactly one room; room i belongs to FromRoom(i).
//   - The hallway has HallwayLen cells. Room i opens below hallway cell
//     Doorway(i) = (i+1)*2, so cells 2, 4, 6 and 8 are doorways.
//
// Layout:
//
//	#############
//	#...........#   hallway cells 0..10
//	###B#C#B#D###   room slot 0 (opening)
//	  #A#D#C#A#     room slot 1 (back)
//	  #########
//
// All functions are total over the four valid kinds; None is the empty-slot
// marker and is the zero value, so a zeroed array is an empty hallway.
package amphipod
