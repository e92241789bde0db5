package batch_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/internal/batch"
	"github.com/katalvlaran/knapsack/internal/logging"
	"github.com/katalvlaran/knapsack/knapsack"
)

func zeroOne(capacity int, wv ...int) knapsack.Problem {
	p := knapsack.Problem{Variant: knapsack.ZeroOne, Capacity: knapsack.Capacity{Weight: capacity}}
	for i := 0; i+1 < len(wv); i += 2 {
		p.Items = append(p.Items, catalog.Item{Weight: wv[i], Value: wv[i+1]})
	}
	return p
}

var _ = Describe("Runner", func() {
	var runner *batch.Runner

	BeforeEach(func() {
		runner = batch.NewRunner(3, logging.NewTestLogger(), knapsack.WithTrace(false))
	})

	Context("with valid instances", func() {
		It("should keep input order", func() {
			problems := make([]knapsack.Problem, 20)
			for i := range problems {
				problems[i] = zeroOne(i, 1, 1)
			}

			out, err := runner.Run(context.Background(), problems)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HaveLen(20))
			for i, o := range out {
				Expect(o.Index).To(Equal(i))
				Expect(o.Err).NotTo(HaveOccurred())
				Expect(o.Result.Value).To(Equal(min(i, 1)), fmt.Sprintf("instance %d", i))
			}
		})

		It("should match a sequential solve", func() {
			p := zeroOne(10, 2, 3, 3, 4, 4, 5, 5, 6)
			want, err := knapsack.Solve(p, knapsack.WithTrace(false))
			Expect(err).NotTo(HaveOccurred())

			out, err := runner.Run(context.Background(), []knapsack.Problem{p, p})
			Expect(err).NotTo(HaveOccurred())
			Expect(out[0].Result.Path).To(Equal(want.Path))
			Expect(out[1].Result.Value).To(Equal(13))
		})

		It("should apply the runner options", func() {
			out, err := runner.Run(context.Background(), []knapsack.Problem{zeroOne(2, 1, 1)})
			Expect(err).NotTo(HaveOccurred())
			Expect(out[0].Result.Steps).To(BeNil())
		})
	})

	Context("with a failing instance", func() {
		It("should isolate the failure", func() {
			bad := knapsack.Problem{Variant: knapsack.ZeroOne, Items: []catalog.Item{{Weight: 0, Value: 1}}}
			out, err := runner.Run(context.Background(), []knapsack.Problem{zeroOne(1, 1, 5), bad, zeroOne(1, 1, 7)})
			Expect(err).NotTo(HaveOccurred())
			Expect(out[0].Result.Value).To(Equal(5))
			Expect(out[1].Err).To(MatchError(catalog.ErrInvalidWeight))
			Expect(out[1].Result).To(BeNil())
			Expect(out[2].Result.Value).To(Equal(7))
		})
	})

	Context("with a cancelled context", func() {
		It("should report the context error", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			out, err := runner.Run(ctx, []knapsack.Problem{zeroOne(1, 1, 1), zeroOne(1, 1, 1)})
			Expect(err).To(MatchError(context.Canceled))
			for _, o := range out {
				Expect(o.Err).To(MatchError(context.Canceled))
			}
		})
	})

	It("should clamp the worker count", func() {
		Expect(batch.NewRunner(0, logging.NewTestLogger()).Workers()).To(Equal(1))
	})
})
