package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trustlane/vetd/pkg/models"
)

type statusActionRequest struct {
	Action string `json:"action" binding:"required"`
}

// applyStatusAction handles PATCH /api/v1/companies/:id/status. Undefined
// transitions come back as 412 without mutating the row.
func (s *Server) applyStatusAction(c *gin.Context) {
	var req statusActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	action, err := models.ParseStatusAction(req.Action)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := s.companies.ApplyStatusAction(c.Request.Context(), c.Param("id"), action)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCompanyResponse(company))
}

// autoApprove handles POST /api/v1/companies/:id/auto-approve: approve only
// when the run is complete, low-risk, and the company is still pending.
func (s *Server) autoApprove(c *gin.Context) {
	company, err := s.companies.AutoApprove(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCompanyResponse(company))
}
