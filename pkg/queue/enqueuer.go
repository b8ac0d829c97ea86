package queue

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trustlane/vetd/ent"
	"github.com/trustlane/vetd/ent/verificationjob"
	"github.com/trustlane/vetd/pkg/correlation"
	"github.com/trustlane/vetd/pkg/models"
	"github.com/trustlane/vetd/pkg/services"
)

// Enqueuer inserts verification jobs for workers to claim.
type Enqueuer struct {
	client *ent.Client
}

// NewEnqueuer creates a new Enqueuer.
func NewEnqueuer(client *ent.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

// Enqueue inserts a pending job for the company. An empty correlationID gets
// a fresh identifier; failedChecks only matters for failed_only jobs.
func (e *Enqueuer) Enqueue(ctx context.Context, companyID string, mode models.RetryMode, failedChecks []models.Step, correlationID string) (*ent.VerificationJob, error) {
	if correlationID == "" {
		correlationID = correlation.NewID()
	}

	checks := make([]string, 0, len(failedChecks))
	for _, step := range failedChecks {
		checks = append(checks, string(step))
	}

	job, err := e.client.VerificationJob.Create().
		SetID(uuid.New().String()).
		SetCompanyID(companyID).
		SetRetryMode(verificationjob.RetryMode(mode)).
		SetFailedChecks(checks).
		SetCorrelationID(correlationID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("company %s: %w", companyID, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to enqueue job: %w", err)
	}
	return job, nil
}
