package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/trustlane/vetd/ent"
	"github.com/trustlane/vetd/ent/company"
	"github.com/trustlane/vetd/ent/companyanalysis"
	"github.com/trustlane/vetd/pkg/models"
)

// AnalysisService persists versioned analysis snapshots.
type AnalysisService struct {
	client *ent.Client
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(client *ent.Client) *AnalysisService {
	return &AnalysisService{client: client}
}

// SaveAnalysisInput carries one finished verification run.
type SaveAnalysisInput struct {
	CompanyID        string
	AlgorithmVersion string
	SubmittedData    models.SubmittedData
	DiscoveredData   models.DiscoveredData
	Signals          []models.Signal
	RiskScore        int
	LLMSummary       *string
	LLMDetails       *string
	IsComplete       bool
	FailedChecks     []string
}

// Latest returns the newest analysis for a company, nil when none exists.
func (s *AnalysisService) Latest(ctx context.Context, companyID string) (*ent.CompanyAnalysis, error) {
	a, err := s.client.CompanyAnalysis.Query().
		Where(companyanalysis.CompanyIDEQ(companyID)).
		Order(ent.Desc(companyanalysis.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query latest analysis: %w", err)
	}
	return a, nil
}

// List returns all analyses for a company, newest version first.
func (s *AnalysisService) List(ctx context.Context, companyID string) ([]*ent.CompanyAnalysis, error) {
	analyses, err := s.client.CompanyAnalysis.Query().
		Where(companyanalysis.CompanyIDEQ(companyID)).
		Order(ent.Desc(companyanalysis.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return analyses, nil
}

// Save persists a run in one transaction: the company row is locked, the
// next version assigned from max+1, the snapshot inserted, and the company
// updated with the new risk score and classified status.
func (s *AnalysisService) Save(ctx context.Context, input SaveAnalysisInput) (*ent.CompanyAnalysis, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Lock the company row so concurrent runs serialize on the version read
	locked, err := tx.Company.Query().
		Where(company.IDEQ(input.CompanyID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock company: %w", err)
	}

	version := 1
	prev, err := tx.CompanyAnalysis.Query().
		Where(companyanalysis.CompanyIDEQ(input.CompanyID)).
		Order(ent.Desc(companyanalysis.FieldVersion)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to read latest version: %w", err)
	}
	if err == nil {
		version = prev.Version + 1
	}

	failedChecks := append([]string{}, input.FailedChecks...)
	sort.Strings(failedChecks)

	builder := tx.CompanyAnalysis.Create().
		SetID(uuid.New().String()).
		SetCompanyID(input.CompanyID).
		SetVersion(version).
		SetAlgorithmVersion(input.AlgorithmVersion).
		SetSubmittedData(input.SubmittedData).
		SetDiscoveredData(input.DiscoveredData).
		SetSignals(input.Signals).
		SetRiskScore(input.RiskScore).
		SetIsComplete(input.IsComplete).
		SetFailedChecks(failedChecks)
	if input.LLMSummary != nil {
		builder.SetLlmSummary(*input.LLMSummary)
	}
	if input.LLMDetails != nil {
		builder.SetLlmDetails(*input.LLMDetails)
	}

	analysis, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("version %d for company %s: %w", version, input.CompanyID, ErrConcurrentModification)
		}
		return nil, fmt.Errorf("failed to insert analysis: %w", err)
	}

	newStatus := Classify(models.CompanyStatus(locked.Status), input.RiskScore, input.IsComplete)

	if _, err := tx.Company.UpdateOneID(input.CompanyID).
		SetRiskScore(input.RiskScore).
		SetAnalysisStatus(company.AnalysisStatusComplete).
		SetCurrentStep(string(models.StepComplete)).
		SetLastAnalyzedAt(analysis.CreatedAt).
		SetStatus(company.Status(newStatus)).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to update company after analysis: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit analysis: %w", err)
	}

	return analysis, nil
}
