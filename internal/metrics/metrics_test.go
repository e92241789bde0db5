package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/katalvlaran/knapsack/knapsack"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSolve(t *testing.T) {
	ok := testutil.ToFloat64(solvesTotal.WithLabelValues("complete", ResultOK))
	cells := testutil.ToFloat64(cellsTotal.WithLabelValues("complete"))

	ObserveSolve(knapsack.Complete, &knapsack.Result{Cells: 12}, nil, time.Millisecond)

	assert.Equal(t, ok+1, testutil.ToFloat64(solvesTotal.WithLabelValues("complete", ResultOK)))
	assert.Equal(t, cells+12, testutil.ToFloat64(cellsTotal.WithLabelValues("complete")))
}

func TestObserveSolve_Failures(t *testing.T) {
	inv := testutil.ToFloat64(solvesTotal.WithLabelValues("group", ResultInvalid))
	can := testutil.ToFloat64(solvesTotal.WithLabelValues("group", ResultCanceled))

	ObserveSolve(knapsack.Group, nil, errors.New("bad"), 0)
	ObserveSolve(knapsack.Group, nil, context.Canceled, 0)

	assert.Equal(t, inv+1, testutil.ToFloat64(solvesTotal.WithLabelValues("group", ResultInvalid)))
	assert.Equal(t, can+1, testutil.ToFloat64(solvesTotal.WithLabelValues("group", ResultCanceled)))
}

func TestObserveBatch(t *testing.T) {
	ObserveBatch(3)
	assert.Equal(t, 1, testutil.CollectAndCount(batchSize, "knapsack_batch_size"))
}
