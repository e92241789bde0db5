// Package metrics exposes solver counters and histograms to Prometheus.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/knapsack/knapsack"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// solvesTotal counts solves by variant and result
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "knapsack_solves_total",
		Help: "Total solves by variant and result",
	}, []string{"variant", "result"})

	// solveDuration tracks solve latency
	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "knapsack_solve_duration_seconds",
		Help:    "Solve duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00005, 4, 10), // 50µs to ~13s
	}, []string{"variant"})

	// cellsTotal counts evaluated DP cells
	cellsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "knapsack_cells_total",
		Help: "Total DP cells evaluated by variant",
	}, []string{"variant"})

	// batchSize tracks requests per batch
	batchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "knapsack_batch_size",
		Help:    "Number of requests per batch",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
	})
)

// Result labels.
const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultCanceled = "canceled"
)

// ObserveSolve records one finished solve. res may be nil when err is set.
func ObserveSolve(v knapsack.Variant, res *knapsack.Result, err error, elapsed time.Duration) {
	name := v.String()
	solveDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	if err != nil {
		solvesTotal.WithLabelValues(name, resultOf(err)).Inc()
		return
	}
	solvesTotal.WithLabelValues(name, ResultOK).Inc()
	cellsTotal.WithLabelValues(name).Add(float64(res.Cells))
}

// ObserveBatch records the size of one batch.
func ObserveBatch(n int) {
	batchSize.Observe(float64(n))
}

func resultOf(err error) string {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ResultCanceled
	}

	return ResultInvalid
}
