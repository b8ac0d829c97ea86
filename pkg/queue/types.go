// Package queue provides the durable verification job queue and its worker
// pool. Jobs live in Postgres; workers claim them with FOR UPDATE SKIP
// LOCKED and redelivery happens by resetting a row back to pending.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/trustlane/vetd/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no pending jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// JobExecutor processes one claimed verification job.
//
// The executor owns the analysis lifecycle internally: probe stages, scoring,
// the LLM adjustment, and the transactional save. The worker only handles
// claiming, heartbeat, and the terminal job status update. A nil return means
// the analysis was persisted; a fatal error (pipeline.IsFatal) means the job
// is unprocessable and must not be redelivered; any other error releases the
// job for another attempt.
type JobExecutor interface {
	Execute(ctx context.Context, job *models.JobMessage) error
}

// RunFailer marks a company's verification run as terminally failed. It is
// the slice of the company service the queue needs when a job gives up.
type RunFailer interface {
	MarkRunFailed(ctx context.Context, id string) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveJobs       int            `json:"active_jobs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
