// Package models contains the domain types shared across the pipeline,
// services, queue, and API layers.
package models

import (
	"fmt"
	"time"
)

// CompanyStatus is the operator-visible review state of a company.
//
// This is the normalized set. Legacy values from the predecessor schema
// ("rejected", "revoked") are not accepted; the operator actions that used
// to produce them now map to "suspicious".
type CompanyStatus string

const (
	CompanyStatusPending    CompanyStatus = "pending"
	CompanyStatusApproved   CompanyStatus = "approved"
	CompanyStatusSuspicious CompanyStatus = "suspicious"
	CompanyStatusFraudulent CompanyStatus = "fraudulent"
)

// IsValid checks if the company status is one of the normalized values.
func (s CompanyStatus) IsValid() bool {
	switch s {
	case CompanyStatusPending, CompanyStatusApproved, CompanyStatusSuspicious, CompanyStatusFraudulent:
		return true
	default:
		return false
	}
}

// CompanyStatusValues returns the normalized status values for schema enums.
func CompanyStatusValues() []string {
	return []string{
		string(CompanyStatusPending),
		string(CompanyStatusApproved),
		string(CompanyStatusSuspicious),
		string(CompanyStatusFraudulent),
	}
}

// ParseCompanyStatus validates a raw status value at a boundary.
func ParseCompanyStatus(raw string) (CompanyStatus, error) {
	s := CompanyStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown company status %q", raw)
	}
	return s, nil
}

// AnalysisStatus is the company-level state of the verification run.
//
// Normalized set: the predecessor's terminal values ("completed", "failed",
// "incomplete") all collapse into "complete"; completeness of an individual
// run lives on the analysis record's is_complete flag.
type AnalysisStatus string

const (
	AnalysisStatusPending    AnalysisStatus = "pending"
	AnalysisStatusInProgress AnalysisStatus = "in_progress"
	AnalysisStatusComplete   AnalysisStatus = "complete"
)

// IsValid checks if the analysis status is one of the normalized values.
func (s AnalysisStatus) IsValid() bool {
	switch s {
	case AnalysisStatusPending, AnalysisStatusInProgress, AnalysisStatusComplete:
		return true
	default:
		return false
	}
}

// AnalysisStatusValues returns the normalized values for schema enums.
func AnalysisStatusValues() []string {
	return []string{
		string(AnalysisStatusPending),
		string(AnalysisStatusInProgress),
		string(AnalysisStatusComplete),
	}
}

// StatusAction is an operator command token for a company status transition.
type StatusAction string

const (
	ActionApprove            StatusAction = "approve"
	ActionMarkReviewComplete StatusAction = "mark_review_complete"
	ActionReject             StatusAction = "reject"
	ActionFlagFraudulent     StatusAction = "flag_fraudulent"
	ActionRevokeApproval     StatusAction = "revoke_approval"
)

// IsValid checks if the action is a known operator command.
func (a StatusAction) IsValid() bool {
	switch a {
	case ActionApprove, ActionMarkReviewComplete, ActionReject, ActionFlagFraudulent, ActionRevokeApproval:
		return true
	default:
		return false
	}
}

// ParseStatusAction validates a raw action token at a boundary.
func ParseStatusAction(raw string) (StatusAction, error) {
	a := StatusAction(raw)
	if !a.IsValid() {
		return "", fmt.Errorf("unknown status action %q", raw)
	}
	return a, nil
}

// SubmittedData are the declared company attributes captured for one run.
// Missing optional attributes serialize as null, matching the persisted
// analysis contract.
type SubmittedData struct {
	Name       string  `json:"name"`
	Domain     string  `json:"domain"`
	WebsiteURL *string `json:"website_url"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
}

// CreateCompanyRequest contains fields for registering a new company.
type CreateCompanyRequest struct {
	Name       string  `json:"name"`
	Domain     string  `json:"domain"`
	WebsiteURL *string `json:"website_url,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
}

// UpdateCompanyRequest contains the declared attributes an update may touch.
// Nil fields are left unchanged.
type UpdateCompanyRequest struct {
	Name       *string `json:"name,omitempty"`
	Domain     *string `json:"domain,omitempty"`
	WebsiteURL *string `json:"website_url,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
}

// Empty reports whether the update touches nothing.
func (r *UpdateCompanyRequest) Empty() bool {
	return r.Name == nil && r.Domain == nil && r.WebsiteURL == nil && r.Email == nil && r.Phone == nil
}

// AnalysisStatusSnapshot is the polling view of a company's run progress.
type AnalysisStatusSnapshot struct {
	CompanyID          string         `json:"company_id"`
	AnalysisStatus     AnalysisStatus `json:"analysis_status"`
	ProgressPercentage int            `json:"progress_percentage"`
	CurrentStep        *string        `json:"current_step"`
	FailedChecks       []string       `json:"failed_checks"`
	LastUpdated        time.Time      `json:"last_updated"`
}
