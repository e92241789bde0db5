package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/expand"
	"github.com/katalvlaran/knapsack/internal/request"
	"github.com/katalvlaran/knapsack/knapsack"
	"github.com/katalvlaran/knapsack/topk"
	"github.com/katalvlaran/knapsack/tree"
)

// Stable error codes returned in ErrorResponse.Code.
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeBodyTooLarge     = "BODY_TOO_LARGE"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeUnknownAlgorithm = "UNKNOWN_ALGORITHM"
	CodeMissingParam     = "MISSING_PARAM"
	CodeInvalidItem      = "INVALID_ITEM"
	CodeInvalidCapacity  = "INVALID_CAPACITY"
	CodeInvalidK         = "INVALID_K"
	CodeTooManyAttach    = "TOO_MANY_ATTACHMENTS"
	CodeTreeTooDeep      = "TREE_TOO_DEEP"
	CodeCanceled         = "CANCELED"
	CodeSolveFailed      = "SOLVE_FAILED"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// classify maps a decode, validation or solver error onto an HTTP status
// and error code.
func classify(err error) (int, string) {
	var verrs validator.ValidationErrors
	var ierr *catalog.ItemError

	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest, CodeValidationFailed
	case errors.Is(err, knapsack.ErrUnknownVariant):
		return http.StatusBadRequest, CodeUnknownAlgorithm
	case errors.Is(err, request.ErrMissingParam):
		return http.StatusBadRequest, CodeMissingParam
	case errors.As(err, &ierr):
		return http.StatusBadRequest, CodeInvalidItem
	case errors.Is(err, knapsack.ErrInvalidCapacity),
		errors.Is(err, topk.ErrInvalidCapacity),
		errors.Is(err, tree.ErrInvalidCapacity):
		return http.StatusBadRequest, CodeInvalidCapacity
	case errors.Is(err, topk.ErrInvalidK):
		return http.StatusBadRequest, CodeInvalidK
	case errors.Is(err, expand.ErrTooManyAttachments):
		return http.StatusUnprocessableEntity, CodeTooManyAttach
	case errors.Is(err, tree.ErrDepthExceeded):
		return http.StatusUnprocessableEntity, CodeTreeTooDeep
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, CodeCanceled
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, CodeCanceled
	}

	return http.StatusInternalServerError, CodeSolveFailed
}
