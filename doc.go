// Package burrow is the root of a solver for the amphipod burrow puzzle:
// four kinds of tokens must be sorted into their own rooms below an 11-cell
// hallway for the least total energy.
//
// Under the hood, everything is organized into small packages:
//
//	amphipod/     token kinds, per-step energy, home rooms and doorways
//	burrow/       the immutable Burrow value, its predicates and transitions
//	moves/        the legal move generator
//	search/       minimum-energy search: Dijkstra or label-correcting relaxation
//	statespace/   breadth-first enumeration of every reachable arrangement
//	cmd/amphipod  command-line front end
//
// Quick example:
//
//	start := burrow.MustParse("BA", "CD", "BC", "DA")
//	shallow, deep, err := search.SolveBoth(start)
//	// shallow.Cost == 12521, deep.Cost == 44169
//
// Both room depths (2 and 4) share one Burrow type; Unfold derives the deep
// variant from the shallow one.
package burrow
