package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/knapsack"
	"github.com/stretchr/testify/require"
)

func pairs(wv ...int) []catalog.Item {
	out := make([]catalog.Item, 0, len(wv)/2)
	for i := 0; i+1 < len(wv); i += 2 {
		out = append(out, catalog.Item{Weight: wv[i], Value: wv[i+1]})
	}

	return out
}

func solve(t *testing.T, p knapsack.Problem, opts ...knapsack.Option) *knapsack.Result {
	t.Helper()
	res, err := knapsack.Solve(p, opts...)
	require.NoError(t, err)
	require.NotNil(t, res)

	return res
}

// bestCopies maximises Σ q[i]·v[i] subject to Σ q[i]·w[i] <= capacity and
// 0 <= q[i] <= limit[i], by exhaustive enumeration.
func bestCopies(items []catalog.Item, limit []int, capacity int) int {
	var rec func(i, room int) int
	rec = func(i, room int) int {
		if i == len(items) {
			return 0
		}
		best := 0
		for q := 0; q <= limit[i] && q*items[i].Weight <= room; q++ {
			if v := q*items[i].Value + rec(i+1, room-q*items[i].Weight); v > best {
				best = v
			}
		}

		return best
	}

	return rec(0, capacity)
}

// bruteValue computes the optimum of p by enumeration, independent of the
// DP code paths.
func bruteValue(p knapsack.Problem) int {
	capW := p.Capacity.Weight
	items := p.Items
	limit := make([]int, len(items))

	switch p.Variant {
	case knapsack.ZeroOne:
		for i := range limit {
			limit[i] = 1
		}
	case knapsack.Complete:
		for i, it := range items {
			limit[i] = capW / it.Weight
		}
	case knapsack.Multiple:
		for i, it := range items {
			limit[i] = it.Count
		}
	case knapsack.Mixed:
		for i, it := range items {
			switch it.Kind {
			case catalog.Once:
				limit[i] = 1
			case catalog.Unbounded:
				limit[i] = capW / it.Weight
			default:
				limit[i] = it.Count
				if limit[i] == 0 {
					limit[i] = catalog.DefaultMixedCount
				}
			}
		}
	case knapsack.TwoDimensional:
		return bruteSubsets(items, func(mask int) (int, bool) {
			w, m, v := 0, 0, 0
			for i, it := range items {
				if mask&(1<<i) != 0 {
					w, m, v = w+it.Weight, m+it.Volume, v+it.Value
				}
			}
			return v, w <= capW && m <= p.Capacity.Volume
		})
	case knapsack.Group:
		return bruteSubsets(items, func(mask int) (int, bool) {
			seen := map[int]bool{}
			w, v := 0, 0
			for i, it := range items {
				if mask&(1<<i) == 0 {
					continue
				}
				if seen[it.Group] {
					return 0, false
				}
				seen[it.Group] = true
				w, v = w+it.Weight, v+it.Value
			}
			return v, w <= capW
		})
	case knapsack.Dependency, knapsack.Tree:
		return bruteSubsets(items, func(mask int) (int, bool) {
			w, v := 0, 0
			for i, it := range items {
				if mask&(1<<i) == 0 {
					continue
				}
				if it.Parent > 0 && mask&(1<<(it.Parent-1)) == 0 {
					return 0, false
				}
				w, v = w+it.Weight, v+it.Value
			}
			return v, w <= capW
		})
	}

	return bestCopies(items, limit, capW)
}

func bruteSubsets(items []catalog.Item, eval func(mask int) (int, bool)) int {
	best := 0
	for mask := 0; mask < 1<<len(items); mask++ {
		if v, ok := eval(mask); ok && v > best {
			best = v
		}
	}

	return best
}

// randomProblem draws a small instance of variant v.
func randomProblem(rng *rand.Rand, v knapsack.Variant) knapsack.Problem {
	n := 1 + rng.Intn(7)
	items := make([]catalog.Item, n)
	for i := range items {
		it := catalog.Item{Weight: 1 + rng.Intn(5), Value: rng.Intn(10)}
		switch v {
		case knapsack.Multiple:
			it.Count = 1 + rng.Intn(4)
		case knapsack.Mixed:
			it.Kind = catalog.Kind(rng.Intn(3))
			if it.Kind == catalog.Multiple {
				it.Count = rng.Intn(4)
			}
		case knapsack.TwoDimensional:
			it.Volume = rng.Intn(4)
		case knapsack.Group:
			it.Group = rng.Intn(3)
		case knapsack.Tree:
			it.Parent = rng.Intn(i + 1)
		case knapsack.Dependency:
			if i > 0 && rng.Intn(2) == 0 {
				main := rng.Intn(i)
				if items[main].Parent == 0 {
					it.Parent = main + 1
				}
			}
		}
		items[i] = it
	}

	return knapsack.Problem{
		Variant:  v,
		Capacity: knapsack.Capacity{Weight: rng.Intn(14), Volume: rng.Intn(6)},
		K:        1 + rng.Intn(4),
		Items:    items,
	}
}
