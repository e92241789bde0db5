package knapsack_test

import (
	"testing"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/knapsack"
)

func benchItems(n int) []catalog.Item {
	items := make([]catalog.Item, n)
	for i := range items {
		items[i] = catalog.Item{Weight: 1 + (i*7)%23, Value: 1 + (i*13)%37, Count: 1 + i%9, Kind: catalog.Kind(i % 3)}
	}

	return items
}

func benchSolve(b *testing.B, v knapsack.Variant, opts ...knapsack.Option) {
	b.Helper()
	p := knapsack.Problem{Variant: v, Capacity: knapsack.Capacity{Weight: 1000}, Items: benchItems(100)}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := knapsack.Solve(p, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkZeroOne_Trace(b *testing.B) { benchSolve(b, knapsack.ZeroOne) }
func BenchmarkZeroOne_NoTrace(b *testing.B) {
	benchSolve(b, knapsack.ZeroOne, knapsack.WithTrace(false))
}
func BenchmarkMultiple(b *testing.B) { benchSolve(b, knapsack.Multiple, knapsack.WithTrace(false)) }
func BenchmarkMixed(b *testing.B)    { benchSolve(b, knapsack.Mixed, knapsack.WithTrace(false)) }
