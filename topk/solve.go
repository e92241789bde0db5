package topk

import (
	"context"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/trace"
)

// Solve fills the top-K grid for the items of c within capacity and
// reports the best and k-th best totals. Only Weight and Value are read.
// One trace step per cell (i ≥ 1) is sent to rec, which may be nil.
// ctx is checked once per row.
func Solve(ctx context.Context, c *catalog.Catalog, capacity, k int, rec *trace.Recorder) (*Result, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}

	n := c.Len()
	g := newGrid(n+1, capacity+1)
	for j := 0; j <= capacity; j++ {
		g.set(0, j, []int{0})
	}

	for i := 1; i <= n; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		it := c.Item(i - 1)
		for j := 0; j <= capacity; j++ {
			without := g.At(i-1, j)
			var with []int
			if j >= it.Weight {
				with = shift(g.At(i-1, j-it.Weight), it.Value)
			}
			seq := Merge(without, with, k)
			g.set(i, j, seq)

			if rec.Enabled() {
				rec.Record(cellStep(i, j, it, seq))
			}
		}
	}

	top := g.At(n, capacity)
	res := &Result{
		K:     k,
		Grid:  g,
		TopK:  append([]int(nil), top...),
		Cells: n * (capacity + 1),
	}
	if len(top) > 0 {
		res.Best = top[0]
	}
	if len(top) >= k {
		res.Kth = top[k-1]
	}

	return res, nil
}

func cellStep(i, j int, it catalog.Item, seq []int) trace.Step {
	s := trace.Step{
		Row:      i,
		Col:      j,
		Vol:      trace.NoVol,
		Decision: trace.Merge,
		Item:     i - 1,
		Values:   append([]int(nil), seq...),
		Choice:   -1,
		Node:     -1,
		Child:    -1,
		Parent:   -1,
		Sources:  []trace.Source{{Row: i - 1, Col: j, Vol: trace.NoVol, Role: trace.Without}},
	}
	if len(seq) > 0 {
		s.Value = seq[0]
	}
	if j >= it.Weight {
		s.Sources = append(s.Sources, trace.Source{Row: i - 1, Col: j - it.Weight, Vol: trace.NoVol, Role: trace.With})
	}

	return s
}
