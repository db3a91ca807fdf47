// Package search_test provides runnable examples for the burrow search.
package search_test

import (
	"fmt"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/search"
)

// ExampleSolve solves the published depth-2 example.
func ExampleSolve() {
	// 1) Rooms are listed from the opening inward.
	start := burrow.MustParse("BA", "CD", "BC", "DA")

	// 2) Dijkstra is the default strategy.
	res, err := search.Solve(start)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Cost)
	// Output: 12521
}

// ExampleSolve_path asks for one cheapest move sequence and checks that it adds up.
func ExampleSolve_path() {
	start := burrow.MustParse("BA", "CD", "BC", "DA")
	res, err := search.Solve(start, search.WithReturnPath(), search.WithStrategy(search.StrategyRelax))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	total := int64(0)
	for _, m := range res.Path {
		total += m.Cost
	}
	fmt.Println(total == res.Cost, res.Path[len(res.Path)-1].Next.IsSolved())
	// Output: true true
}

// ExampleSolveBoth solves the folded and unfolded variants of one input.
func ExampleSolveBoth() {
	shallow, deep, err := search.SolveBoth(burrow.MustParse("BA", "CD", "BC", "DA"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(shallow.Cost, deep.Cost)
	// Output: 12521 44169
}
