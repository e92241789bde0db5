package topk_test

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/topk"
	"github.com/katalvlaran/knapsack/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCatalog(t *testing.T, pairs ...[2]int) *catalog.Catalog {
	t.Helper()
	items := make([]catalog.Item, len(pairs))
	for i, p := range pairs {
		items[i] = catalog.Item{Weight: p[0], Value: p[1]}
	}
	c, err := catalog.New(catalog.AttrNone, items)
	require.NoError(t, err)

	return c
}

// bruteTopK lists every subset total with weight <= capacity, descending,
// truncated at k.
func bruteTopK(items []catalog.Item, capacity, k int) []int {
	var totals []int
	for mask := 0; mask < 1<<len(items); mask++ {
		w, v := 0, 0
		for i, it := range items {
			if mask&(1<<i) != 0 {
				w += it.Weight
				v += it.Value
			}
		}
		if w <= capacity {
			totals = append(totals, v)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(totals)))
	if len(totals) > k {
		totals = totals[:k]
	}

	return totals
}

func TestMerge(t *testing.T) {
	cases := []struct {
		name string
		a, b []int
		k    int
		want []int
	}{
		{"interleave", []int{9, 5, 1}, []int{7, 5, 2}, 4, []int{9, 7, 5, 5}},
		{"empty b", []int{3, 2}, nil, 5, []int{3, 2}},
		{"empty a", nil, []int{4}, 1, []int{4}},
		{"both empty", nil, nil, 3, []int{}},
		{"truncate", []int{1, 1, 1}, []int{1, 1}, 2, []int{1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, topk.Merge(tc.a, tc.b, tc.k))
		})
	}
}

// TestMerge_DoesNotAlias makes sure the result owns its storage.
func TestMerge_DoesNotAlias(t *testing.T) {
	a := []int{5, 3}
	out := topk.Merge(a, nil, 2)
	out[0] = 100
	assert.Equal(t, 5, a[0])
}

// TestSolve_ScenarioFive cross-checks the three-item example against
// enumeration: subsets {b,c,a} give 4, then two different subsets give 3.
func TestSolve_ScenarioFive(t *testing.T) {
	c := mustCatalog(t, [2]int{1, 1}, [2]int{1, 1}, [2]int{1, 2})
	res, err := topk.Solve(context.Background(), c, 3, 2, nil)
	require.NoError(t, err)

	assert.Equal(t, bruteTopK(c.Items(), 3, 2), res.TopK)
	assert.Equal(t, []int{4, 3}, res.TopK)
	assert.Equal(t, 4, res.Best)
	assert.Equal(t, 3, res.Kth)
}

func TestSolve_KthAbsentIsZero(t *testing.T) {
	c := mustCatalog(t, [2]int{5, 10})
	res, err := topk.Solve(context.Background(), c, 2, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.TopK)
	assert.Equal(t, 0, res.Best)
	assert.Equal(t, 0, res.Kth)
}

// TestSolve_MatchesEnumeration runs seeded random instances and checks
// each cell sequence is non-increasing, of length <= K, and that the
// terminal sequence equals brute force.
func TestSolve_MatchesEnumeration(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 40; round++ {
		n := 1 + rng.Intn(7)
		pairs := make([][2]int, n)
		for i := range pairs {
			pairs[i] = [2]int{1 + rng.Intn(5), rng.Intn(9)}
		}
		c := mustCatalog(t, pairs...)
		capacity := rng.Intn(12)
		k := 1 + rng.Intn(6)

		res, err := topk.Solve(context.Background(), c, capacity, k, nil)
		require.NoError(t, err)
		require.Equal(t, bruteTopK(c.Items(), capacity, k), res.TopK, "round %d", round)

		for i := 0; i < res.Grid.Rows(); i++ {
			for j := 0; j < res.Grid.Cols(); j++ {
				seq := res.Grid.At(i, j)
				assert.LessOrEqual(t, len(seq), k)
				assert.True(t, sort.IsSorted(sort.Reverse(sort.IntSlice(seq))), "cell (%d,%d) %v", i, j, seq)
			}
		}
	}
}

func TestSolve_TraceOneStepPerCell(t *testing.T) {
	c := mustCatalog(t, [2]int{2, 3}, [2]int{1, 1})
	rec := trace.NewRecorder(0)
	res, err := topk.Solve(context.Background(), c, 3, 2, rec)
	require.NoError(t, err)

	steps := rec.Steps()
	require.Len(t, steps, res.Cells)
	assert.Equal(t, 2*4, res.Cells)

	for idx, s := range steps {
		assert.Equal(t, 1+idx/4, s.Row)
		assert.Equal(t, idx%4, s.Col)
		assert.Equal(t, trace.Merge, s.Decision)
		assert.Equal(t, res.Grid.At(s.Row, s.Col), s.Values)
	}
	// Row 1, col 1: item weight 2 does not fit, only the without source.
	assert.Len(t, steps[1].Sources, 1)
	assert.Len(t, steps[2].Sources, 2)
	assert.Equal(t, trace.With, steps[2].Sources[1].Role)
	assert.Equal(t, 0, steps[2].Sources[1].Col)
}

func TestSolve_Errors(t *testing.T) {
	c := mustCatalog(t, [2]int{1, 1})

	_, err := topk.Solve(context.Background(), c, 3, 0, nil)
	assert.ErrorIs(t, err, topk.ErrInvalidK)

	_, err = topk.Solve(context.Background(), c, -1, 1, nil)
	assert.ErrorIs(t, err, topk.ErrInvalidCapacity)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := topk.Solve(ctx, c, 3, 1, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}
