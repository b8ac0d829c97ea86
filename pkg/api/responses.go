package api

import (
	"time"

	"github.com/trustlane/vetd/ent"
	"github.com/trustlane/vetd/pkg/models"
)

// companyResponse is the external representation of a company row.
type companyResponse struct {
	CompanyID      string     `json:"company_id"`
	Name           string     `json:"name"`
	Domain         string     `json:"domain"`
	WebsiteURL     *string    `json:"website_url"`
	Email          *string    `json:"email"`
	Phone          *string    `json:"phone"`
	Status         string     `json:"status"`
	RiskScore      int        `json:"risk_score"`
	AnalysisStatus string     `json:"analysis_status"`
	CurrentStep    *string    `json:"current_step"`
	LastAnalyzedAt *time.Time `json:"last_analyzed_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toCompanyResponse(c *ent.Company) companyResponse {
	return companyResponse{
		CompanyID:      c.ID,
		Name:           c.Name,
		Domain:         c.Domain,
		WebsiteURL:     c.WebsiteURL,
		Email:          c.Email,
		Phone:          c.Phone,
		Status:         string(c.Status),
		RiskScore:      c.RiskScore,
		AnalysisStatus: string(c.AnalysisStatus),
		CurrentStep:    c.CurrentStep,
		LastAnalyzedAt: c.LastAnalyzedAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// analysisResponse is the external representation of one analysis version.
type analysisResponse struct {
	AnalysisID       string                `json:"analysis_id"`
	CompanyID        string                `json:"company_id"`
	Version          int                   `json:"version"`
	AlgorithmVersion string                `json:"algorithm_version"`
	SubmittedData    models.SubmittedData  `json:"submitted_data"`
	DiscoveredData   models.DiscoveredData `json:"discovered_data"`
	Signals          []models.Signal       `json:"signals"`
	RiskScore        int                   `json:"risk_score"`
	LLMSummary       *string               `json:"llm_summary"`
	LLMDetails       *string               `json:"llm_details"`
	IsComplete       bool                  `json:"is_complete"`
	FailedChecks     []string              `json:"failed_checks"`
	CreatedAt        time.Time             `json:"created_at"`
}

func toAnalysisResponse(a *ent.CompanyAnalysis) analysisResponse {
	failed := a.FailedChecks
	if failed == nil {
		failed = []string{}
	}
	return analysisResponse{
		AnalysisID:       a.ID,
		CompanyID:        a.CompanyID,
		Version:          a.Version,
		AlgorithmVersion: a.AlgorithmVersion,
		SubmittedData:    a.SubmittedData,
		DiscoveredData:   a.DiscoveredData,
		Signals:          a.Signals,
		RiskScore:        a.RiskScore,
		LLMSummary:       a.LlmSummary,
		LLMDetails:       a.LlmDetails,
		IsComplete:       a.IsComplete,
		FailedChecks:     failed,
		CreatedAt:        a.CreatedAt,
	}
}
