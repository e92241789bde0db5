package tree_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/tree"
)

func ExampleSolve() {
	// Root 1 (w=2,v=3) with children 2 (w=1,v=4) and 3 (w=3,v=6).
	c, _ := catalog.New(catalog.AttrTree, []catalog.Item{
		{Weight: 2, Value: 3},
		{Weight: 1, Value: 4, Parent: 1},
		{Weight: 3, Value: 6, Parent: 1},
	})
	res, _ := tree.Solve(context.Background(), c, 5, nil, tree.WithTraversal(tree.Iterative))
	fmt.Println("best:", res.Best)
	for _, ch := range res.Selected {
		fmt.Printf("node %d budget %d\n", ch.Node, ch.Budget)
	}
	// Output:
	// best: 9
	// node 0 budget 5
	// node 2 budget 3
}
