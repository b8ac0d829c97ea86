// Package cleanup provides data retention for the verification job queue.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/trustlane/vetd/ent"
	"github.com/trustlane/vetd/ent/verificationjob"
	"github.com/trustlane/vetd/pkg/config"
)

// Service periodically deletes terminal (completed or failed) job rows past
// their TTL so the queue table stays small. Company and analysis rows are
// never touched; they are the audit trail.
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		config: cfg,
		client: client,
	}
}

// Start launches the background cleanup loop. A disabled config makes Start
// a no-op.
func (s *Service) Start(ctx context.Context) {
	if !s.config.Enabled || s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"job_ttl", s.config.JobTTL,
		"interval", s.config.CheckInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.cleanupTerminalJobs(ctx)

	ticker := time.NewTicker(s.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanupTerminalJobs(ctx)
		}
	}
}

// cleanupTerminalJobs deletes completed and failed job rows whose terminal
// timestamp is older than the TTL. Uses a background context so an in-flight
// delete is not cut off mid-shutdown.
func (s *Service) cleanupTerminalJobs(_ context.Context) {
	cutoff := time.Now().Add(-s.config.JobTTL)

	count, err := s.client.VerificationJob.Delete().
		Where(
			verificationjob.StatusIn(
				verificationjob.StatusCompleted,
				verificationjob.StatusFailed,
			),
			verificationjob.CompletedAtNotNil(),
			verificationjob.CompletedAtLT(cutoff),
		).
		Exec(context.Background())
	if err != nil {
		slog.Error("Retention: job cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted terminal jobs", "count", count, "cutoff", cutoff)
	}
}
