// Package api exposes the operations HTTP surface: company intake, operator
// status actions, reanalysis, run-progress polling, health, and metrics.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trustlane/vetd/pkg/database"
	"github.com/trustlane/vetd/pkg/queue"
	"github.com/trustlane/vetd/pkg/services"
)

// PoolHealther reports worker pool health. It is satisfied by
// *queue.WorkerPool and may be nil when no pool runs in this process.
type PoolHealther interface {
	Health() *queue.PoolHealth
}

// Server is the HTTP API server.
type Server struct {
	db        *database.Client
	companies *services.CompanyService
	analyses  *services.AnalysisService
	enqueuer  *queue.Enqueuer
	pool      PoolHealther
	warnings  *services.SystemWarningsService

	httpSrv *http.Server
}

// NewServer creates the API server. pool may be nil for API-only replicas.
func NewServer(db *database.Client, companies *services.CompanyService, analyses *services.AnalysisService, enqueuer *queue.Enqueuer, pool PoolHealther) *Server {
	return &Server{
		db:        db,
		companies: companies,
		analyses:  analyses,
		enqueuer:  enqueuer,
		pool:      pool,
	}
}

// SetWarningsService attaches the transient warnings sink reported by the
// health endpoint.
func (s *Server) SetWarningsService(warnings *services.SystemWarningsService) {
	s.warnings = warnings
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), correlationMiddleware(), requestLogger())

	router.GET("/health", s.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	companies := v1.Group("/companies")
	companies.POST("", s.createCompany)
	companies.GET("/:id", s.getCompany)
	companies.PATCH("/:id", s.updateCompany)
	companies.DELETE("/:id", s.deleteCompany)
	companies.POST("/:id/reanalyze", s.reanalyzeCompany)
	companies.PATCH("/:id/status", s.applyStatusAction)
	companies.POST("/:id/auto-approve", s.autoApprove)
	companies.GET("/:id/analysis-status", s.analysisStatus)
	companies.GET("/:id/analyses", s.listAnalyses)

	return router
}

// Start runs the HTTP server until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// health reports database and worker pool health. Any degraded component
// turns the response into a 503.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{"status": "healthy"}
	healthy := true

	dbHealth, err := database.Health(ctx, s.db.DB())
	body["database"] = dbHealth
	if err != nil {
		healthy = false
		body["error"] = err.Error()
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		body["queue"] = poolHealth
		if !poolHealth.IsHealthy {
			healthy = false
		}
	}

	// Warnings are informational and do not flip the status
	if s.warnings != nil {
		if warnings := s.warnings.GetWarnings(); len(warnings) > 0 {
			body["warnings"] = warnings
		}
	}

	if !healthy {
		body["status"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	c.JSON(http.StatusOK, body)
}
