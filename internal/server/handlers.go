package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/katalvlaran/knapsack/internal/batch"
	"github.com/katalvlaran/knapsack/internal/config"
	"github.com/katalvlaran/knapsack/internal/metrics"
	"github.com/katalvlaran/knapsack/internal/render"
	"github.com/katalvlaran/knapsack/internal/request"
	"github.com/katalvlaran/knapsack/knapsack"
)

// Handlers serves the solve endpoints.
type Handlers struct {
	cfg *config.Config
	log logr.Logger
}

// NewHandlers returns handlers solving with cfg's solver and batch settings.
func NewHandlers(cfg *config.Config, log logr.Logger) *Handlers {
	return &Handlers{cfg: cfg, log: log}
}

// HandleSolve handles POST /v1/solve.
//
// The body is a request.Document; the reply is the render.Document of the
// solve, carrying the request id.
func (h *Handlers) HandleSolve(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	log := h.log.WithValues("request_id", requestID, "handler", "HandleSolve")

	var doc request.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		rejectBody(c, log, err)
		return
	}

	out, err := h.solve(c, log, &doc)
	if err != nil {
		status, code := classify(err)
		log.Info("solve rejected", "status", status, "code", code, "error", err.Error())
		c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
		return
	}
	out.ID = requestID

	c.JSON(http.StatusOK, out)
}

func (h *Handlers) solve(c *gin.Context, log logr.Logger, doc *request.Document) (*render.Document, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	p, err := doc.Problem()
	if err != nil {
		return nil, err
	}

	opts := append(h.cfg.Solver.Options(), knapsack.WithContext(c.Request.Context()), knapsack.WithLogger(log))
	start := time.Now()
	res, err := knapsack.Solve(p, opts...)
	metrics.ObserveSolve(p.Variant, res, err, time.Since(start))
	if err != nil {
		return nil, err
	}

	return render.Build(res), nil
}

// HandleBatch handles POST /v1/batch.
//
// The body is a request.Batch; the reply is a render.BatchDocument.
// Requests that fail to convert or solve get an error entry; the others
// are solved concurrently.
func (h *Handlers) HandleBatch(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	log := h.log.WithValues("request_id", requestID, "handler", "HandleBatch")

	var b request.Batch
	if err := c.ShouldBindJSON(&b); err != nil {
		rejectBody(c, log, err)
		return
	}
	if err := b.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeValidationFailed})
		return
	}

	workers := h.cfg.Batch.Workers
	if b.Workers > 0 {
		workers = b.Workers
	}
	runner := batch.NewRunner(workers, log, h.cfg.Solver.Options()...)
	out, err := runner.RunDocuments(c.Request.Context(), b.Requests)
	if err != nil {
		status, code := classify(err)
		c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
		return
	}
	out.ID = requestID
	log.V(1).Info("batch finished", "requests", len(out.Results), "workers", runner.Workers())

	c.JSON(http.StatusOK, out)
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// getOrCreateRequestID reads X-Request-ID or generates one, and echoes it on
// the response.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return requestID
}

// limitBody caps request bodies at n bytes.
func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}

// rejectBody replies to a body that could not be bound.
func rejectBody(c *gin.Context, log logr.Logger, err error) {
	log.Info("invalid request body", "error", err.Error())

	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Request body too large", Code: CodeBodyTooLarge})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Code: CodeInvalidRequest})
}
