package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/trustlane/vetd/ent"
	"github.com/trustlane/vetd/ent/verificationjob"
	"github.com/trustlane/vetd/pkg/config"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned jobs.
// All pods run this independently; the recovery operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in_progress jobs whose heartbeat went stale
// (or that never heartbeated after claiming) and requeues or fails them.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.VerificationJob.Query().
		Where(
			verificationjob.StatusEQ(verificationjob.StatusInProgress),
			verificationjob.Or(
				verificationjob.And(
					verificationjob.LastHeartbeatAtNotNil(),
					verificationjob.LastHeartbeatAtLT(threshold),
				),
				verificationjob.And(
					verificationjob.LastHeartbeatAtIsNil(),
					verificationjob.StartedAtNotNil(),
					verificationjob.StartedAtLT(threshold),
				),
			),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "count", len(orphans))

	recovered := 0
	for _, job := range orphans {
		if err := p.recoverOrphanedJob(ctx, job); err != nil {
			slog.Error("Failed to recover orphaned job",
				"job_id", job.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedJob requeues an orphaned job while attempts remain,
// otherwise fails it and marks the company run failed.
func (p *WorkerPool) recoverOrphanedJob(ctx context.Context, job *ent.VerificationJob) error {
	podID := "unknown"
	if job.PodID != nil {
		podID = *job.PodID
	}
	lastHeartbeat := "never"
	if job.LastHeartbeatAt != nil {
		lastHeartbeat = job.LastHeartbeatAt.Format(time.RFC3339)
	}
	log := slog.With("job_id", job.ID, "company_id", job.CompanyID, "old_pod_id", podID)

	if job.Attempts < p.config.MaxAttempts {
		err := job.Update().
			SetStatus(verificationjob.StatusPending).
			ClearPodID().
			ClearStartedAt().
			ClearLastHeartbeatAt().
			SetError(fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to requeue orphaned job: %w", err)
		}
		log.Warn("Orphaned job requeued", "attempt", job.Attempts, "last_heartbeat", lastHeartbeat)
		return nil
	}

	err := job.Update().
		SetStatus(verificationjob.StatusFailed).
		SetCompletedAt(time.Now()).
		SetError(fmt.Sprintf("Orphaned after %d attempts: no heartbeat from pod %s since %s",
			job.Attempts, podID, lastHeartbeat)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail orphaned job: %w", err)
	}

	// Best-effort: the company must not stay stuck in in_progress
	if err := p.companies.MarkRunFailed(ctx, job.CompanyID); err != nil {
		log.Error("Failed to mark company run failed for orphan", "error", err)
	}

	log.Warn("Orphaned job failed terminally", "attempts", job.Attempts, "last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of jobs owned by this pod
// that were in-progress when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, companies RunFailer, cfg *config.QueueConfig, podID string) error {
	orphans, err := client.VerificationJob.Query().
		Where(
			verificationjob.StatusEQ(verificationjob.StatusInProgress),
			verificationjob.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, job := range orphans {
		if job.Attempts < cfg.MaxAttempts {
			err := job.Update().
				SetStatus(verificationjob.StatusPending).
				ClearPodID().
				ClearStartedAt().
				ClearLastHeartbeatAt().
				SetError(fmt.Sprintf("Orphaned: pod %s restarted while job was in progress", podID)).
				Exec(ctx)
			if err != nil {
				slog.Error("Failed to requeue startup orphan",
					"job_id", job.ID,
					"error", err)
				continue
			}
			slog.Info("Startup orphan requeued", "job_id", job.ID, "attempt", job.Attempts)
			continue
		}

		err := job.Update().
			SetStatus(verificationjob.StatusFailed).
			SetCompletedAt(time.Now()).
			SetError(fmt.Sprintf("Orphaned after %d attempts: pod %s restarted while job was in progress",
				job.Attempts, podID)).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to fail startup orphan",
				"job_id", job.ID,
				"error", err)
			continue
		}
		if err := companies.MarkRunFailed(ctx, job.CompanyID); err != nil {
			slog.Error("Failed to mark company run failed for startup orphan",
				"job_id", job.ID,
				"error", err)
		}
		slog.Info("Startup orphan failed terminally", "job_id", job.ID, "attempts", job.Attempts)
	}

	return nil
}
