package batch_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/knapsack/internal/batch"
	"github.com/katalvlaran/knapsack/internal/logging"
	"github.com/katalvlaran/knapsack/internal/render"
	"github.com/katalvlaran/knapsack/internal/request"
)

func intp(n int) *int { return &n }

var _ = Describe("RunDocuments", func() {
	var (
		runner *batch.Runner
		docs   []request.Document
	)

	BeforeEach(func() {
		runner = batch.NewRunner(2, logging.NewTestLogger())
		docs = []request.Document{
			{Algorithm: "knapsack_01", Params: request.Params{Capacity: 5, Items: []request.Item{{Weight: 2, Value: 3}, {Weight: 3, Value: 4}}}},
			{Algorithm: "knapsack_2d", Params: request.Params{Capacity: 5}},
			{Algorithm: "kth", Params: request.Params{Capacity: 2, K: intp(2), Items: []request.Item{{Weight: 1, Value: 2}, {Weight: 1, Value: 1}}}},
			{Algorithm: "multiple", Params: request.Params{Capacity: 2, Items: []request.Item{{Weight: 1, Value: 1}}}},
		}
	})

	It("should fill every slot in request order", func() {
		out, err := runner.RunDocuments(context.Background(), docs)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.ID).NotTo(BeEmpty())
		Expect(out.Results).To(HaveLen(4))

		first, ok := out.Results[0].(*render.Document)
		Expect(ok).To(BeTrue())
		Expect(first.MaxValue).To(Equal(7))

		Expect(out.Results[1]).To(BeAssignableToTypeOf(render.ErrorDocument{}))
		Expect(out.Results[1].(render.ErrorDocument).Code).To(Equal(400))
		Expect(out.Results[1].(render.ErrorDocument).Error).To(ContainSubstring("capacity2"))

		kth := out.Results[2].(*render.Document)
		Expect(kth.TopK).To(Equal([]int{3, 2}))
		Expect(*kth.KthValue).To(Equal(2))
	})

	It("should report solver rejections per slot", func() {
		out, err := runner.RunDocuments(context.Background(), docs)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Results[3].(render.ErrorDocument).Error).To(ContainSubstring("count"))
	})
})
