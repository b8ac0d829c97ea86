package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trustlane/vetd/ent"
	"github.com/trustlane/vetd/ent/company"
	"github.com/trustlane/vetd/pkg/models"
)

// CompanyService manages company lifecycle and status transitions.
// It is the sole mutator of company rows outside of SaveAnalysis.
type CompanyService struct {
	client *ent.Client
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(client *ent.Client) *CompanyService {
	return &CompanyService{client: client}
}

// Create registers a company with pending statuses and risk 0.
func (s *CompanyService) Create(ctx context.Context, req models.CreateCompanyRequest) (*ent.Company, error) {
	name := strings.TrimSpace(req.Name)
	domain := strings.ToLower(strings.TrimSpace(req.Domain))

	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	if domain == "" {
		return nil, NewValidationError("domain", "required")
	}

	builder := s.client.Company.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetDomain(domain).
		SetStatus(company.StatusPending).
		SetAnalysisStatus(company.AnalysisStatusPending).
		SetRiskScore(0)

	if req.WebsiteURL != nil && *req.WebsiteURL != "" {
		builder.SetWebsiteURL(strings.TrimSpace(*req.WebsiteURL))
	}
	if req.Email != nil && *req.Email != "" {
		builder.SetEmail(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil && *req.Phone != "" {
		builder.SetPhone(strings.TrimSpace(*req.Phone))
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return created, nil
}

// Get fetches a company by id, excluding soft-deleted rows.
func (s *CompanyService) Get(ctx context.Context, id string) (*ent.Company, error) {
	c, err := s.client.Company.Query().
		Where(company.IDEQ(id), company.IsDeleted(false)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return c, nil
}

// Update changes declared attributes. Once the company has been analyzed
// its declared attributes are locked and the update is rejected.
func (s *CompanyService) Update(ctx context.Context, id string, req models.UpdateCompanyRequest) (*ent.Company, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Empty() {
		return c, nil
	}
	if c.LastAnalyzedAt != nil {
		return nil, ErrAnalysisLocked
	}

	builder := c.Update()
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		builder.SetName(name)
	}
	if req.Domain != nil {
		domain := strings.ToLower(strings.TrimSpace(*req.Domain))
		if domain == "" {
			return nil, NewValidationError("domain", "must not be empty")
		}
		builder.SetDomain(domain)
	}
	if req.WebsiteURL != nil {
		if url := strings.TrimSpace(*req.WebsiteURL); url != "" {
			builder.SetWebsiteURL(url)
		} else {
			builder.ClearWebsiteURL()
		}
	}
	if req.Email != nil {
		if email := strings.TrimSpace(*req.Email); email != "" {
			builder.SetEmail(email)
		} else {
			builder.ClearEmail()
		}
	}
	if req.Phone != nil {
		if phone := strings.TrimSpace(*req.Phone); phone != "" {
			builder.SetPhone(phone)
		} else {
			builder.ClearPhone()
		}
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return updated, nil
}

// Delete soft-deletes a company. Its analyses and jobs stay queryable for
// audit until retention removes them.
func (s *CompanyService) Delete(ctx context.Context, id string) error {
	n, err := s.client.Company.Update().
		Where(company.IDEQ(id), company.IsDeleted(false)).
		SetIsDeleted(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStep records the stage the pipeline is currently on. Idempotent
// single-row update; an optional status moves analysis_status with it.
func (s *CompanyService) UpdateStep(ctx context.Context, id string, step models.Step, status *models.AnalysisStatus) error {
	builder := s.client.Company.Update().
		Where(company.IDEQ(id), company.IsDeleted(false)).
		SetCurrentStep(string(step))
	if status != nil {
		builder.SetAnalysisStatus(company.AnalysisStatus(*status))
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update company step: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateAnalysisStatus moves the run state. A nil step clears current_step;
// transitioning to complete stamps last_analyzed_at.
func (s *CompanyService) UpdateAnalysisStatus(ctx context.Context, id string, status models.AnalysisStatus, step *string) error {
	builder := s.client.Company.Update().
		Where(company.IDEQ(id), company.IsDeleted(false)).
		SetAnalysisStatus(company.AnalysisStatus(status))

	if step != nil {
		builder.SetCurrentStep(*step)
	} else {
		builder.ClearCurrentStep()
	}
	if status == models.AnalysisStatusComplete {
		builder.SetLastAnalyzedAt(time.Now())
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update analysis status: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkRunFailed closes out a fatally failed run: the run state becomes
// complete with no step, and the company is flagged suspicious unless it is
// already fraudulent.
func (s *CompanyService) MarkRunFailed(ctx context.Context, id string) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	builder := c.Update().
		SetAnalysisStatus(company.AnalysisStatusComplete).
		ClearCurrentStep().
		SetLastAnalyzedAt(time.Now())

	if c.Status != company.StatusFraudulent {
		builder.SetStatus(company.StatusSuspicious)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to mark run failed: %w", err)
	}
	return nil
}

// ApplyStatusAction performs an operator-driven status transition.
func (s *CompanyService) ApplyStatusAction(ctx context.Context, id string, action models.StatusAction) (*ent.Company, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := ApplyAction(models.CompanyStatus(c.Status), action)
	if err != nil {
		return nil, err
	}

	updated, err := c.Update().SetStatus(company.Status(next)).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to apply status action: %w", err)
	}
	return updated, nil
}

// AutoApprove approves a pending company whose completed run scored at or
// below the approval threshold. Used by both the operator endpoint and the
// post-analysis path.
func (s *CompanyService) AutoApprove(ctx context.Context, id string) (*ent.Company, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	eligible := c.AnalysisStatus == company.AnalysisStatusComplete &&
		c.RiskScore <= autoApproveThreshold &&
		c.Status == company.StatusPending
	if !eligible {
		return nil, ErrNotEligible
	}

	updated, err := c.Update().SetStatus(company.StatusApproved).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to auto-approve company: %w", err)
	}
	return updated, nil
}
