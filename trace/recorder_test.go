package trace_test

import (
	"testing"

	"github.com/katalvlaran/knapsack/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_KeepsFillOrder(t *testing.T) {
	rec := trace.NewRecorder(4)
	require.True(t, rec.Enabled())

	for j := 0; j < 3; j++ {
		rec.Record(trace.Step{Row: 1, Col: j, Vol: trace.NoVol, Decision: trace.Skip})
	}
	rec.Record(trace.Step{Kind: trace.KindMerge, Row: 0, Col: 2, Decision: trace.Merge})

	steps := rec.Steps()
	require.Len(t, steps, 4)
	for j := 0; j < 3; j++ {
		assert.Equal(t, j, steps[j].Col)
	}
	assert.Equal(t, 3, rec.Count(trace.KindCell))
	assert.Equal(t, 1, rec.Count(trace.KindMerge))
	assert.Equal(t, 0, rec.Count(trace.KindComplete))

	rec.Reset()
	assert.Equal(t, 0, rec.Len())
}

// TestRecorder_NilIsDisabled checks that a nil recorder swallows everything.
func TestRecorder_NilIsDisabled(t *testing.T) {
	var rec *trace.Recorder
	assert.False(t, rec.Enabled())
	assert.NotPanics(t, func() {
		rec.Record(trace.Step{})
		rec.Reset()
	})
	assert.Equal(t, 0, rec.Len())
	assert.Nil(t, rec.Steps())
	assert.Equal(t, 0, rec.Count(trace.KindCell))
}

func TestRecorder_NegativeHint(t *testing.T) {
	rec := trace.NewRecorder(-5)
	rec.Record(trace.Step{})
	assert.Equal(t, 1, rec.Len())
}

func TestStepKind_String(t *testing.T) {
	assert.Equal(t, "cell", trace.KindCell.String())
	assert.Equal(t, "merge", trace.KindMerge.String())
	assert.Equal(t, "complete", trace.KindComplete.String())
	assert.Equal(t, "StepKind(9)", trace.StepKind(9).String())
}
