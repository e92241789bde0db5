package batch

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/katalvlaran/knapsack/internal/render"
	"github.com/katalvlaran/knapsack/internal/request"
	"github.com/katalvlaran/knapsack/knapsack"
)

// RunDocuments converts and solves docs. A document that does not convert
// or fails to solve becomes a 400 render.ErrorDocument in its slot; the
// rest become render documents. The error is non-nil only when ctx ends
// first.
func (r *Runner) RunDocuments(ctx context.Context, docs []request.Document) (*render.BatchDocument, error) {
	out := &render.BatchDocument{ID: uuid.NewString(), Results: make([]any, len(docs))}

	problems := make([]knapsack.Problem, 0, len(docs))
	slot := make([]int, 0, len(docs))
	for i := range docs {
		p, err := docs[i].Problem()
		if err != nil {
			out.Results[i] = render.ErrorDocument{Code: http.StatusBadRequest, Error: err.Error()}
			continue
		}
		problems = append(problems, p)
		slot = append(slot, i)
	}

	outcomes, err := r.Run(ctx, problems)
	if err != nil {
		return nil, err
	}
	for k, o := range outcomes {
		if o.Err != nil {
			out.Results[slot[k]] = render.ErrorDocument{Code: http.StatusBadRequest, Error: o.Err.Error()}
			continue
		}
		out.Results[slot[k]] = render.Build(o.Result)
	}

	return out, nil
}
