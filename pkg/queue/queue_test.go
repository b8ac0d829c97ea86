package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustlane/vetd/ent"
	"github.com/trustlane/vetd/ent/company"
	"github.com/trustlane/vetd/ent/verificationjob"
	"github.com/trustlane/vetd/pkg/config"
	"github.com/trustlane/vetd/pkg/database"
	"github.com/trustlane/vetd/pkg/models"
	"github.com/trustlane/vetd/pkg/pipeline"
	"github.com/trustlane/vetd/pkg/services"
	testdb "github.com/trustlane/vetd/test/database"
)

// stubExecutor records executed jobs and returns a scripted result.
type stubExecutor struct {
	mu   sync.Mutex
	jobs []*models.JobMessage
	err  error
}

func (s *stubExecutor) Execute(_ context.Context, job *models.JobMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
	return s.err
}

func (s *stubExecutor) executed() []*models.JobMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*models.JobMessage{}, s.jobs...)
}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.MaxConcurrentJobs = 1
	cfg.PollInterval = 20 * time.Millisecond
	cfg.PollJitter = 5 * time.Millisecond
	cfg.MaxAttempts = 2
	return cfg
}

func createQueueCompany(t *testing.T, client *database.Client, domain string) *ent.Company {
	t.Helper()
	c, err := services.NewCompanyService(client.Client).Create(context.Background(), models.CreateCompanyRequest{
		Name:   "Queued " + domain,
		Domain: domain,
	})
	require.NoError(t, err)
	return c
}

func TestEnqueuer(t *testing.T) {
	client := testdb.NewTestClient(t)
	enqueuer := NewEnqueuer(client.Client)
	ctx := context.Background()

	t.Run("enqueues a pending full job", func(t *testing.T) {
		c := createQueueCompany(t, client, "enqueue.com")

		job, err := enqueuer.Enqueue(ctx, c.ID, models.RetryFull, nil, "corr-1")
		require.NoError(t, err)
		assert.Equal(t, verificationjob.StatusPending, job.Status)
		assert.Equal(t, verificationjob.RetryModeFull, job.RetryMode)
		assert.Equal(t, "corr-1", job.CorrelationID)
		assert.Equal(t, 0, job.Attempts)
		assert.Nil(t, job.PodID)
	})

	t.Run("generates a correlation id when missing", func(t *testing.T) {
		c := createQueueCompany(t, client, "corrless.com")

		job, err := enqueuer.Enqueue(ctx, c.ID, models.RetryFull, nil, "")
		require.NoError(t, err)
		assert.NotEmpty(t, job.CorrelationID)
	})

	t.Run("carries failed checks for selective retries", func(t *testing.T) {
		c := createQueueCompany(t, client, "selective.com")

		job, err := enqueuer.Enqueue(ctx, c.ID, models.RetryFailedOnly,
			[]models.Step{models.StepWhois, models.StepPhone}, "corr-2")
		require.NoError(t, err)
		assert.Equal(t, verificationjob.RetryModeFailedOnly, job.RetryMode)
		assert.Equal(t, []string{"whois", "phone"}, job.FailedChecks)
	})

	t.Run("unknown company", func(t *testing.T) {
		_, err := enqueuer.Enqueue(ctx, "ghost", models.RetryFull, nil, "")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestWorkerClaimAndRelease(t *testing.T) {
	client := testdb.NewTestClient(t)
	companies := services.NewCompanyService(client.Client)
	enqueuer := NewEnqueuer(client.Client)
	ctx := context.Background()

	newTestWorker := func(executor JobExecutor) *Worker {
		pool := NewWorkerPool("pod-test", client.Client, testQueueConfig(), executor, companies)
		return NewWorker("w-0", "pod-test", client.Client, testQueueConfig(), executor, companies, pool)
	}

	t.Run("claims oldest pending job first", func(t *testing.T) {
		c1 := createQueueCompany(t, client, "first.com")
		c2 := createQueueCompany(t, client, "second.com")
		_, err := enqueuer.Enqueue(ctx, c1.ID, models.RetryFull, nil, "corr-a")
		require.NoError(t, err)
		_, err = enqueuer.Enqueue(ctx, c2.ID, models.RetryFull, nil, "corr-b")
		require.NoError(t, err)

		w := newTestWorker(&stubExecutor{})
		claimed, err := w.claimNextJob(ctx)
		require.NoError(t, err)
		assert.Equal(t, c1.ID, claimed.CompanyID)
		assert.Equal(t, verificationjob.StatusInProgress, claimed.Status)
		assert.Equal(t, 1, claimed.Attempts)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "pod-test", *claimed.PodID)
		assert.NotNil(t, claimed.StartedAt)
		assert.NotNil(t, claimed.LastHeartbeatAt)

		// Second claim gets the newer job, then the queue is empty
		claimed2, err := w.claimNextJob(ctx)
		require.NoError(t, err)
		assert.Equal(t, c2.ID, claimed2.CompanyID)
		_, err = w.claimNextJob(ctx)
		assert.ErrorIs(t, err, ErrNoJobsAvailable)
	})

	t.Run("successful job completes", func(t *testing.T) {
		c := createQueueCompany(t, client, "done.com")
		_, err := enqueuer.Enqueue(ctx, c.ID, models.RetryFull, nil, "")
		require.NoError(t, err)

		w := newTestWorker(&stubExecutor{})
		job, err := w.claimNextJob(ctx)
		require.NoError(t, err)
		require.NoError(t, w.releaseJob(ctx, job, nil))

		got, err := client.VerificationJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, verificationjob.StatusCompleted, got.Status)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("retriable failure requeues while attempts remain", func(t *testing.T) {
		c := createQueueCompany(t, client, "retry.com")
		_, err := enqueuer.Enqueue(ctx, c.ID, models.RetryFull, nil, "")
		require.NoError(t, err)

		w := newTestWorker(&stubExecutor{})
		job, err := w.claimNextJob(ctx)
		require.NoError(t, err)
		require.NoError(t, w.releaseJob(ctx, job, errors.New("connection reset")))

		got, err := client.VerificationJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, verificationjob.StatusPending, got.Status)
		assert.Nil(t, got.PodID)
		assert.Nil(t, got.LastHeartbeatAt)
		assert.Equal(t, 1, got.Attempts, "attempts survive the requeue")
		require.NotNil(t, got.Error)
		assert.Contains(t, *got.Error, "connection reset")
	})

	t.Run("retriable failure at the attempt cap fails the job and the run", func(t *testing.T) {
		c := createQueueCompany(t, client, "exhausted.com")
		_, err := enqueuer.Enqueue(ctx, c.ID, models.RetryFull, nil, "")
		require.NoError(t, err)

		w := newTestWorker(&stubExecutor{})
		job, err := w.claimNextJob(ctx)
		require.NoError(t, err)
		// Second claim cycle reaches MaxAttempts (2)
		require.NoError(t, w.releaseJob(ctx, job, errors.New("flaky")))
		job, err = w.claimNextJob(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, job.Attempts)
		require.NoError(t, w.releaseJob(ctx, job, errors.New("flaky again")))

		got, err := client.VerificationJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, verificationjob.StatusFailed, got.Status)

		comp, err := companies.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, company.StatusSuspicious, comp.Status, "run marked failed")
		assert.Equal(t, company.AnalysisStatusComplete, comp.AnalysisStatus)
	})

	t.Run("fatal failure never requeues", func(t *testing.T) {
		c := createQueueCompany(t, client, "fatal.com")
		_, err := enqueuer.Enqueue(ctx, c.ID, models.RetryFull, nil, "")
		require.NoError(t, err)

		w := newTestWorker(&stubExecutor{})
		job, err := w.claimNextJob(ctx)
		require.NoError(t, err)
		require.NoError(t, w.releaseJob(ctx, job, pipeline.Fatal(errors.New("company gone"))))

		got, err := client.VerificationJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, verificationjob.StatusFailed, got.Status)
		assert.Equal(t, 1, got.Attempts, "no second attempt")
	})
}

func TestWorkerPoolProcessesJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	companies := services.NewCompanyService(client.Client)
	enqueuer := NewEnqueuer(client.Client)
	ctx := context.Background()

	c := createQueueCompany(t, client, "pooled.com")
	_, err := enqueuer.Enqueue(ctx, c.ID, models.RetryFailedOnly,
		[]models.Step{models.StepDNS}, "corr-pool")
	require.NoError(t, err)

	executor := &stubExecutor{}
	pool := NewWorkerPool("pod-pool", client.Client, testQueueConfig(), executor, companies)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		return len(executor.executed()) == 1
	}, 5*time.Second, 20*time.Millisecond)

	msg := executor.executed()[0]
	assert.Equal(t, c.ID, msg.CompanyID)
	assert.Equal(t, models.RetryFailedOnly, msg.RetryMode)
	assert.Equal(t, []models.Step{models.StepDNS}, msg.FailedChecks)
	assert.Equal(t, "corr-pool", msg.CorrelationID)

	require.Eventually(t, func() bool {
		jobs, err := client.VerificationJob.Query().
			Where(verificationjob.StatusEQ(verificationjob.StatusCompleted)).
			All(ctx)
		return err == nil && len(jobs) == 1
	}, 5*time.Second, 20*time.Millisecond)

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.Equal(t, "pod-pool", health.PodID)
	assert.Equal(t, 1, health.TotalWorkers)
}

func seedInProgressJob(t *testing.T, client *database.Client, companyID, podID string, attempts int, heartbeatAge time.Duration) *ent.VerificationJob {
	t.Helper()
	job, err := client.VerificationJob.Create().
		SetID(fmt.Sprintf("job-%s-%d", companyID, time.Now().UnixNano())).
		SetCompanyID(companyID).
		SetCorrelationID("corr-orphan").
		SetStatus(verificationjob.StatusInProgress).
		SetPodID(podID).
		SetAttempts(attempts).
		SetStartedAt(time.Now().Add(-heartbeatAge)).
		SetLastHeartbeatAt(time.Now().Add(-heartbeatAge)).
		Save(context.Background())
	require.NoError(t, err)
	return job
}

func TestOrphanRecovery(t *testing.T) {
	client := testdb.NewTestClient(t)
	companies := services.NewCompanyService(client.Client)
	ctx := context.Background()

	cfg := testQueueConfig()
	pool := NewWorkerPool("pod-live", client.Client, cfg, &stubExecutor{}, companies)

	t.Run("stale job with attempts left is requeued", func(t *testing.T) {
		c := createQueueCompany(t, client, "stale.com")
		job := seedInProgressJob(t, client, c.ID, "pod-dead", 1, cfg.OrphanThreshold+time.Minute)

		require.NoError(t, pool.detectAndRecoverOrphans(ctx))

		got, err := client.VerificationJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, verificationjob.StatusPending, got.Status)
		assert.Nil(t, got.PodID)
	})

	t.Run("stale job at the attempt cap fails and marks the run", func(t *testing.T) {
		c := createQueueCompany(t, client, "deadend.com")
		job := seedInProgressJob(t, client, c.ID, "pod-dead", cfg.MaxAttempts, cfg.OrphanThreshold+time.Minute)

		require.NoError(t, pool.detectAndRecoverOrphans(ctx))

		got, err := client.VerificationJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, verificationjob.StatusFailed, got.Status)

		comp, err := companies.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, company.StatusSuspicious, comp.Status)
	})

	t.Run("fresh job is left alone", func(t *testing.T) {
		c := createQueueCompany(t, client, "fresh.com")
		job := seedInProgressJob(t, client, c.ID, "pod-live", 1, time.Second)

		require.NoError(t, pool.detectAndRecoverOrphans(ctx))

		got, err := client.VerificationJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, verificationjob.StatusInProgress, got.Status)
	})
}

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	companies := services.NewCompanyService(client.Client)
	ctx := context.Background()

	cfg := testQueueConfig()

	c1 := createQueueCompany(t, client, "restarted.com")
	own := seedInProgressJob(t, client, c1.ID, "pod-self", 1, time.Second)

	c2 := createQueueCompany(t, client, "other-pod.com")
	other := seedInProgressJob(t, client, c2.ID, "pod-other", 1, time.Second)

	c3 := createQueueCompany(t, client, "spent.com")
	spent := seedInProgressJob(t, client, c3.ID, "pod-self", cfg.MaxAttempts, time.Second)

	require.NoError(t, CleanupStartupOrphans(ctx, client.Client, companies, cfg, "pod-self"))

	got, err := client.VerificationJob.Get(ctx, own.ID)
	require.NoError(t, err)
	assert.Equal(t, verificationjob.StatusPending, got.Status, "own orphan requeued")

	got, err = client.VerificationJob.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, verificationjob.StatusInProgress, got.Status, "other pod's job untouched")

	got, err = client.VerificationJob.Get(ctx, spent.ID)
	require.NoError(t, err)
	assert.Equal(t, verificationjob.StatusFailed, got.Status, "own orphan out of attempts fails")

	comp, err := companies.Get(ctx, c3.ID)
	require.NoError(t, err)
	assert.Equal(t, company.StatusSuspicious, comp.Status)
}
