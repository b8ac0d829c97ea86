package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trustlane/vetd/pkg/correlation"
	"github.com/trustlane/vetd/pkg/metrics"
	"github.com/trustlane/vetd/pkg/models"
)

type reanalyzeRequest struct {
	RetryFailedOnly bool `json:"retry_failed_only"`
}

// reanalyzeCompany handles POST /api/v1/companies/:id/reanalyze. A
// failed_only retry requires a previous analysis with failed checks to
// re-run; otherwise the request is rejected.
func (s *Server) reanalyzeCompany(c *gin.Context) {
	var req reanalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	company, err := s.companies.Get(ctx, c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	mode := models.RetryFull
	var failedChecks []models.Step
	if req.RetryFailedOnly {
		latest, err := s.analyses.Latest(ctx, company.ID)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		if latest == nil || len(latest.FailedChecks) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no failed checks to retry"})
			return
		}
		steps, err := models.ParseSteps(latest.FailedChecks)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		mode = models.RetryFailedOnly
		failedChecks = steps
	}

	// Reset run state so progress polling starts from zero
	if err := s.companies.UpdateAnalysisStatus(ctx, company.ID, models.AnalysisStatusPending, nil); err != nil {
		mapServiceError(c, err)
		return
	}

	correlationID := correlation.FromContext(ctx)
	job, err := s.enqueuer.Enqueue(ctx, company.ID, mode, failedChecks, correlationID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	metrics.ReanalysisEnqueued.WithLabelValues(string(mode)).Inc()
	c.JSON(http.StatusAccepted, gin.H{
		"company_id":     company.ID,
		"retry_mode":     mode,
		"job_id":         job.ID,
		"correlation_id": correlationID,
	})
}

// analysisStatus handles GET /api/v1/companies/:id/analysis-status.
func (s *Server) analysisStatus(c *gin.Context) {
	ctx := c.Request.Context()
	company, err := s.companies.Get(ctx, c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	failedChecks := []string{}
	if latest, err := s.analyses.Latest(ctx, company.ID); err == nil && latest != nil && latest.FailedChecks != nil {
		failedChecks = latest.FailedChecks
	}

	status := models.AnalysisStatus(company.AnalysisStatus)
	c.JSON(http.StatusOK, models.AnalysisStatusSnapshot{
		CompanyID:          company.ID,
		AnalysisStatus:     status,
		ProgressPercentage: models.ProgressPercentage(status, company.CurrentStep),
		CurrentStep:        company.CurrentStep,
		FailedChecks:       failedChecks,
		LastUpdated:        company.UpdatedAt,
	})
}

// listAnalyses handles GET /api/v1/companies/:id/analyses, newest first.
func (s *Server) listAnalyses(c *gin.Context) {
	ctx := c.Request.Context()
	company, err := s.companies.Get(ctx, c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	analyses, err := s.analyses.List(ctx, company.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	out := make([]analysisResponse, 0, len(analyses))
	for _, a := range analyses {
		out = append(out, toAnalysisResponse(a))
	}
	c.JSON(http.StatusOK, gin.H{"analyses": out})
}
