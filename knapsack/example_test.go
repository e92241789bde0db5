package knapsack_test

import (
	"fmt"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/knapsack"
)

func ExampleSolve() {
	res, err := knapsack.Solve(knapsack.Problem{
		Variant:  knapsack.ZeroOne,
		Capacity: knapsack.Capacity{Weight: 10},
		Items: []catalog.Item{
			{Weight: 2, Value: 3},
			{Weight: 3, Value: 4},
			{Weight: 4, Value: 5},
			{Weight: 5, Value: 6},
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("value:", res.Value)
	for _, p := range res.Path {
		fmt.Printf("item %d at (%d,%d)\n", p.Item, p.Row, p.Col)
	}
	fmt.Println(res.Complexity().Time, len(res.Steps))
	// Output:
	// value: 13
	// item 3 at (4,10)
	// item 1 at (2,5)
	// item 0 at (1,2)
	// O(n*C) 44
}

func ExampleSolve_dependency() {
	res, _ := knapsack.Solve(knapsack.Problem{
		Variant:  knapsack.Dependency,
		Capacity: knapsack.Capacity{Weight: 6},
		Items: []catalog.Item{
			{Weight: 3, Value: 4},
			{Weight: 1, Value: 3, Parent: 1},
			{Weight: 2, Value: 4, Parent: 1},
			{Weight: 2, Value: 3},
		},
	}, knapsack.WithTrace(false))
	fmt.Println(res.Value, res.Path[0].Label, res.Quantities)
	// Output:
	// 11 Main1+Attachment2+Attachment3 [1 1 1 0]
}

func ExampleParseVariant() {
	v, _ := knapsack.ParseVariant("depend")
	fmt.Println(v, "/", v.Title())
	// Output:
	// depend / Dependency Knapsack
}
