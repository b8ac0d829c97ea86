package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trustlane/vetd/pkg/correlation"
	"github.com/trustlane/vetd/pkg/metrics"
	"github.com/trustlane/vetd/pkg/models"
	"github.com/trustlane/vetd/pkg/services"
)

// createCompany handles POST /api/v1/companies: register the company and
// enqueue its first full verification run.
func (s *Server) createCompany(c *gin.Context) {
	var req models.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.CompanyCreated.WithLabelValues("invalid_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	company, err := s.companies.Create(ctx, req)
	if err != nil {
		switch {
		case services.IsValidationError(err):
			metrics.CompanyCreated.WithLabelValues("validation_error").Inc()
		case errors.Is(err, services.ErrAlreadyExists):
			metrics.CompanyCreated.WithLabelValues("duplicate").Inc()
		default:
			metrics.CompanyCreated.WithLabelValues("error").Inc()
		}
		mapServiceError(c, err)
		return
	}

	correlationID := correlation.FromContext(ctx)
	job, err := s.enqueuer.Enqueue(ctx, company.ID, models.RetryFull, nil, correlationID)
	if err != nil {
		metrics.CompanyCreated.WithLabelValues("enqueue_error").Inc()
		mapServiceError(c, err)
		return
	}

	metrics.CompanyCreated.WithLabelValues("created").Inc()
	c.JSON(http.StatusCreated, gin.H{
		"company":        toCompanyResponse(company),
		"job_id":         job.ID,
		"correlation_id": correlationID,
	})
}

// getCompany handles GET /api/v1/companies/:id.
func (s *Server) getCompany(c *gin.Context) {
	company, err := s.companies.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCompanyResponse(company))
}

// updateCompany handles PATCH /api/v1/companies/:id. Declared attributes
// are immutable once the first analysis ran (412).
func (s *Server) updateCompany(c *gin.Context) {
	var req models.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := s.companies.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCompanyResponse(company))
}

// deleteCompany handles DELETE /api/v1/companies/:id (soft delete).
func (s *Server) deleteCompany(c *gin.Context) {
	if err := s.companies.Delete(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
