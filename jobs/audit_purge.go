package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/davidjulakidze/lolly-law-assessment/internal/shared"
)

// AuditPurgeJob deletes audit rows past the configured retention window.
type AuditPurgeJob struct {
	audit  *shared.AuditLogger
	logger *slog.Logger
}

// NewAuditPurgeJob constructs the job.
func NewAuditPurgeJob(audit *shared.AuditLogger, logger *slog.Logger) *AuditPurgeJob {
	return &AuditPurgeJob{audit: audit, logger: logger}
}

// Handle processes TaskAuditPurge tasks.
func (j *AuditPurgeJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload AuditPurgePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if payload.RetentionHours <= 0 {
		return asynq.SkipRetry
	}

	cutoff := time.Now().UTC().Add(-time.Duration(payload.RetentionHours) * time.Hour)
	deleted, err := j.audit.PurgeBefore(ctx, cutoff)
	if err != nil {
		j.logger.Error("audit purge failed", slog.Any("error", err))
		return err
	}
	j.logger.Info("audit purge complete", slog.Int64("deleted", deleted), slog.Time("cutoff", cutoff))
	return nil
}
