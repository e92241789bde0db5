package topk_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/topk"
)

func ExampleMerge() {
	fmt.Println(topk.Merge([]int{8, 6, 6}, []int{7, 6}, 4))
	// Output: [8 7 6 6]
}

func ExampleSolve() {
	c, _ := catalog.New(catalog.AttrNone, []catalog.Item{
		{Weight: 1, Value: 1},
		{Weight: 1, Value: 1},
		{Weight: 1, Value: 2},
	})
	res, _ := topk.Solve(context.Background(), c, 3, 3, nil)
	fmt.Println(res.TopK, res.Best, res.Kth)
	// Output: [4 3 3] 4 3
}
