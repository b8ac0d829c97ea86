package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustlane/vetd/ent"
	"github.com/trustlane/vetd/ent/verificationjob"
	"github.com/trustlane/vetd/pkg/config"
	testdb "github.com/trustlane/vetd/test/database"
)

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		Enabled:       true,
		JobTTL:        168 * time.Hour,
		CheckInterval: 1 * time.Hour,
	}
}

func seedJob(t *testing.T, client *ent.Client, status verificationjob.Status, completedAt *time.Time) *ent.VerificationJob {
	t.Helper()
	ctx := context.Background()

	company, err := client.Company.Create().
		SetID(uuid.New().String()).
		SetName("Retention Co").
		SetDomain(uuid.New().String() + ".com").
		Save(ctx)
	require.NoError(t, err)

	builder := client.VerificationJob.Create().
		SetID(uuid.New().String()).
		SetCompanyID(company.ID).
		SetCorrelationID("corr-retention").
		SetStatus(status)
	if completedAt != nil {
		builder.SetCompletedAt(*completedAt)
	}

	job, err := builder.Save(ctx)
	require.NoError(t, err)
	return job
}

func TestService_DeletesExpiredTerminalJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	old := time.Now().Add(-200 * time.Hour)
	expiredCompleted := seedJob(t, client.Client, verificationjob.StatusCompleted, &old)
	expiredFailed := seedJob(t, client.Client, verificationjob.StatusFailed, &old)

	svc := NewService(retentionConfig(), client.Client)
	svc.cleanupTerminalJobs(ctx)

	for _, id := range []string{expiredCompleted.ID, expiredFailed.ID} {
		_, err := client.VerificationJob.Get(ctx, id)
		assert.True(t, ent.IsNotFound(err), "job %s should be deleted", id)
	}
}

func TestService_PreservesRecentAndActiveJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	recent := time.Now().Add(-1 * time.Hour)
	recentCompleted := seedJob(t, client.Client, verificationjob.StatusCompleted, &recent)
	pending := seedJob(t, client.Client, verificationjob.StatusPending, nil)
	inProgress := seedJob(t, client.Client, verificationjob.StatusInProgress, nil)

	svc := NewService(retentionConfig(), client.Client)
	svc.cleanupTerminalJobs(ctx)

	for _, id := range []string{recentCompleted.ID, pending.ID, inProgress.ID} {
		_, err := client.VerificationJob.Get(ctx, id)
		assert.NoError(t, err, "job %s should survive", id)
	}
}

func TestService_CompanyRowsUntouched(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	old := time.Now().Add(-200 * time.Hour)
	job := seedJob(t, client.Client, verificationjob.StatusCompleted, &old)

	svc := NewService(retentionConfig(), client.Client)
	svc.cleanupTerminalJobs(ctx)

	_, err := client.VerificationJob.Get(ctx, job.ID)
	require.True(t, ent.IsNotFound(err))

	count, err := client.Company.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "retention must never delete companies")
}

func TestService_DisabledConfigIsNoOp(t *testing.T) {
	client := testdb.NewTestClient(t)

	cfg := retentionConfig()
	cfg.Enabled = false

	svc := NewService(cfg, client.Client)
	svc.Start(context.Background())
	assert.Nil(t, svc.cancel, "disabled service must not start its loop")
	svc.Stop()
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)

	svc := NewService(retentionConfig(), client.Client)
	svc.Start(context.Background())
	require.NotNil(t, svc.cancel)
	svc.Stop()
}
