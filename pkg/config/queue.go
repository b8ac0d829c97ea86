package config

import (
	"fmt"
	"time"
)

// QueueConfig contains job queue and worker pool configuration.
// These values control how verification jobs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes jobs.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentJobs is the global limit of jobs being processed
	// across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentJobs int `yaml:"max_concurrent_jobs"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollJitter.
	PollJitter time.Duration `yaml:"poll_jitter"`

	// JobTimeout is the maximum time one verification job can run.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// HeartbeatInterval is how often a worker stamps last_heartbeat_at
	// on the job it is processing.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanCheckInterval is how often to scan for orphaned jobs.
	OrphanCheckInterval time.Duration `yaml:"orphan_check_interval"`

	// OrphanThreshold is how long a job can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// MaxAttempts caps how many times a job may be claimed before it is
	// marked failed instead of being requeued.
	MaxAttempts int `yaml:"max_attempts"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentJobs:       5,
		PollInterval:            1 * time.Second,
		PollJitter:              500 * time.Millisecond,
		JobTimeout:              10 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Minute,
		OrphanCheckInterval:     5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		MaxAttempts:             3,
	}
}

// Validate checks queue configuration for invalid values.
func (c *QueueConfig) Validate() error {
	if c.WorkerCount < 1 {
		return fmt.Errorf("%w: queue.worker_count must be >= 1, got %d", ErrInvalidValue, c.WorkerCount)
	}
	if c.MaxConcurrentJobs < c.WorkerCount {
		return fmt.Errorf("%w: queue.max_concurrent_jobs (%d) must be >= queue.worker_count (%d)",
			ErrInvalidValue, c.MaxConcurrentJobs, c.WorkerCount)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: queue.poll_interval must be positive", ErrInvalidValue)
	}
	if c.JobTimeout <= 0 {
		return fmt.Errorf("%w: queue.job_timeout must be positive", ErrInvalidValue)
	}
	if c.HeartbeatInterval <= 0 || c.HeartbeatInterval >= c.OrphanThreshold {
		return fmt.Errorf("%w: queue.heartbeat_interval must be positive and below queue.orphan_threshold",
			ErrInvalidValue)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: queue.max_attempts must be >= 1, got %d", ErrInvalidValue, c.MaxAttempts)
	}
	return nil
}
