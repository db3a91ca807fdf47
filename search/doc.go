// Package search finds the minimum total energy that sorts a burrow.
//
// Overview:
//
//   - Nodes are burrow.Burrow values, edges are the moves of package moves,
//     and each edge weighs Move.Cost > 0.
//   - The start is any valid burrow; the unique target is burrow.Solved of the
//     same depth.
//   - Two strategies compute the same minimum:
//
//     StrategyDijkstra (default) keeps a min-heap of (state, cost) pairs with
//     lazy decrease-key: a cheaper route pushes a duplicate and the stale entry
//     is skipped when popped. It stops as soon as the target is settled, so
//     every state is expanded at most once.
//
//     StrategyRelax is a label-correcting search over an explicit work-list.
//     A state is expanded whenever it is reached strictly more cheaply than its
//     recorded best in the Memo, and abandoned otherwise. Routes already as
//     expensive as the best known solution are abandoned as well. With
//     WithWorkers(n) the successors of the start are spread over n goroutines
//     sharing one Memo, whose Improve is a single critical section.
//
// Options:
//
//   - WithStrategy, WithReturnPath, WithMaxCost, WithMaxExpansions,
//     WithWorkers, WithShuffle, WithOnExpand, WithLogger.
//
// Errors (sentinel):
//
//   - ErrInvalidBurrow   start failed burrow.Validate.
//   - ErrUnsolvable      the target was never reached.
//   - ErrExpansionLimit  MaxExpansions was exceeded.
//   - ErrBadMaxCost, ErrBadMaxExpansions, ErrBadWorkers (via panic in the
//     option constructors).
//
// Example:
//
//	start := burrow.MustParse("BA", "CD", "BC", "DA")
//	res, err := search.Solve(start)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Cost) // 12521
package search
