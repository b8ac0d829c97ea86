package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/trustlane/vetd/ent"
	"github.com/trustlane/vetd/ent/verificationjob"
	"github.com/trustlane/vetd/pkg/config"
	"github.com/trustlane/vetd/pkg/correlation"
	"github.com/trustlane/vetd/pkg/metrics"
	"github.com/trustlane/vetd/pkg/models"
	"github.com/trustlane/vetd/pkg/pipeline"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes jobs.
type Worker struct {
	id          string
	podID       string
	client      *ent.Client
	config      *config.QueueConfig
	jobExecutor JobExecutor
	companies   RunFailer
	pool        JobRegistry
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// JobRegistry is the subset of WorkerPool used by Worker for job registration.
type JobRegistry interface {
	RegisterJob(jobID string, cancel context.CancelFunc)
	UnregisterJob(jobID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor JobExecutor, companies RunFailer, pool JobRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		jobExecutor:  executor,
		companies:    companies,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.VerificationJob.Query().
		Where(verificationjob.StatusEQ(verificationjob.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active jobs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentJobs {
		return ErrAtCapacity
	}

	// 2. Claim next job
	job, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	msg := jobMessage(job)
	log := slog.With(
		"job_id", job.ID,
		"company_id", job.CompanyID,
		"correlation_id", msg.CorrelationID,
		"worker_id", w.id,
		"attempt", job.Attempts,
	)
	log.Info("Job claimed")

	w.setStatus(WorkerStatusWorking, job.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create job context with timeout and correlation binding
	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancelJob()
	jobCtx = correlation.WithID(jobCtx, msg.CorrelationID)

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterJob(job.ID, cancelJob)
	defer w.pool.UnregisterJob(job.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	go w.runHeartbeat(heartbeatCtx, job.ID)

	// 6. Validate the message before executing; a malformed row can never
	// succeed, so it fails terminally.
	execErr := msg.Validate()
	if execErr != nil {
		execErr = pipeline.Fatal(execErr)
	} else {
		execErr = w.jobExecutor.Execute(jobCtx, msg)
	}

	// 7. Stop heartbeat
	cancelHeartbeat()

	// 8. Release the job. Use background context: the job ctx may be
	// cancelled or past its deadline.
	if errors.Is(execErr, context.DeadlineExceeded) && jobCtx.Err() != nil {
		execErr = fmt.Errorf("job timed out after %v: %w", w.config.JobTimeout, execErr)
	}
	if err := w.releaseJob(context.Background(), job, execErr); err != nil {
		log.Error("Failed to release job", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Job processing finished", "error", execErr)
	return nil
}

// claimNextJob atomically claims the oldest pending job using
// FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.VerificationJob, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	job, err := tx.VerificationJob.Query().
		Where(verificationjob.StatusEQ(verificationjob.StatusPending)).
		Order(ent.Asc(verificationjob.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	now := time.Now()
	job, err = job.Update().
		SetStatus(verificationjob.StatusInProgress).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return job, nil
}

// runHeartbeat periodically updates last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.VerificationJob.UpdateOneID(jobID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// releaseJob writes the terminal or requeued job state.
//
// nil error: completed. Fatal error: failed immediately, the company run is
// marked failed. Retriable error: back to pending while attempts remain,
// failed otherwise.
func (w *Worker) releaseJob(ctx context.Context, job *ent.VerificationJob, execErr error) error {
	log := slog.With("job_id", job.ID, "company_id", job.CompanyID)

	if execErr == nil {
		return w.client.VerificationJob.UpdateOneID(job.ID).
			SetStatus(verificationjob.StatusCompleted).
			SetCompletedAt(time.Now()).
			ClearError().
			Exec(ctx)
	}

	if !pipeline.IsFatal(execErr) && job.Attempts < w.config.MaxAttempts {
		log.Warn("Requeueing job for another attempt",
			"attempt", job.Attempts, "max_attempts", w.config.MaxAttempts, "error", execErr)
		return w.client.VerificationJob.UpdateOneID(job.ID).
			SetStatus(verificationjob.StatusPending).
			ClearPodID().
			ClearStartedAt().
			ClearLastHeartbeatAt().
			SetError(execErr.Error()).
			Exec(ctx)
	}

	log.Error("Job failed terminally", "attempt", job.Attempts, "error", execErr)
	metrics.AnalysisFailure.WithLabelValues(errorType(execErr)).Inc()

	// Best-effort: the company must not stay stuck in in_progress
	if err := w.companies.MarkRunFailed(ctx, job.CompanyID); err != nil {
		log.Error("Failed to mark company run failed", "error", err)
	}

	return w.client.VerificationJob.UpdateOneID(job.ID).
		SetStatus(verificationjob.StatusFailed).
		SetCompletedAt(time.Now()).
		SetError(execErr.Error()).
		Exec(ctx)
}

// errorType maps an execution error to the AnalysisFailure label.
func errorType(err error) string {
	switch {
	case pipeline.IsFatal(err):
		return "validation_error"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}

// jobMessage decodes a queue row into the executor's message contract.
func jobMessage(job *ent.VerificationJob) *models.JobMessage {
	failed := make([]models.Step, 0, len(job.FailedChecks))
	for _, check := range job.FailedChecks {
		failed = append(failed, models.Step(check))
	}
	return &models.JobMessage{
		CompanyID:     job.CompanyID,
		RetryMode:     models.RetryMode(job.RetryMode),
		FailedChecks:  failed,
		CorrelationID: job.CorrelationID,
		Timestamp:     job.EnqueuedAt,
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
