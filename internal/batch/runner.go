// Package batch solves many independent instances concurrently.
package batch

import (
	"context"
	"slices"
	"time"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/knapsack/internal/metrics"
	"github.com/katalvlaran/knapsack/knapsack"
	"golang.org/x/sync/errgroup"
)

// Outcome is the result of one instance. Exactly one of Result and Err is
// set.
type Outcome struct {
	Index  int
	Result *knapsack.Result
	Err    error
}

// Runner bounds concurrency to a fixed worker count. It is safe for
// concurrent use; every Run is independent.
type Runner struct {
	workers int
	log     logr.Logger
	opts    []knapsack.Option
}

// NewRunner returns a Runner with workers goroutines (at least one). opts
// are applied to every solve after the runner's own context and logger.
func NewRunner(workers int, log logr.Logger, opts ...knapsack.Option) *Runner {
	return &Runner{workers: max(workers, 1), log: log, opts: slices.Clip(opts)}
}

// Workers reports the concurrency limit.
func (r *Runner) Workers() int { return r.workers }

// Run solves problems and returns one Outcome per problem, in input order.
// A failing instance only sets its own Outcome.Err. The returned error is
// non-nil only when ctx ends first; instances that had not finished then
// carry the context error.
func (r *Runner) Run(ctx context.Context, problems []knapsack.Problem) ([]Outcome, error) {
	out := make([]Outcome, len(problems))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, p := range problems {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				out[i] = Outcome{Index: i, Err: err}
				return err
			}
			start := time.Now()
			opts := append([]knapsack.Option{
				knapsack.WithContext(gctx),
				knapsack.WithLogger(r.log.WithValues("index", i)),
			}, r.opts...)
			res, err := knapsack.Solve(p, opts...)
			metrics.ObserveSolve(p.Variant, res, err, time.Since(start))
			out[i] = Outcome{Index: i, Result: res, Err: err}
			if err != nil {
				r.log.V(1).Info("instance failed", "index", i, "variant", p.Variant.String(), "error", err.Error())
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return out, err
	}
	metrics.ObserveBatch(len(problems))

	return out, nil
}
