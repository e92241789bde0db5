package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers the solve endpoints on rg (typically /v1).
//
//	POST /v1/solve - solve one request document
//	POST /v1/batch - solve a batch of request documents
func RegisterRoutes(rg *gin.RouterGroup, handlers *Handlers) {
	rg.POST("/solve", handlers.HandleSolve)
	rg.POST("/batch", handlers.HandleBatch)
}

// NewRouter builds the engine: body limit, recovery, /v1 routes, /healthz
// and /metrics.
func NewRouter(handlers *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), limitBody(handlers.cfg.Server.MaxBodyBytes))

	RegisterRoutes(router.Group("/v1"), handlers)
	router.GET("/healthz", handlers.HandleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
