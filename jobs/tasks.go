package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskAuditPurge is the task type for audit log retention.
	TaskAuditPurge = "audit:purge"
)

// AuditPurgePayload configures one retention run.
type AuditPurgePayload struct {
	RetentionHours int `json:"retention_hours"`
}

// NewAuditPurgeTask constructs an Asynq task for audit retention.
func NewAuditPurgeTask(retentionHours int) (*asynq.Task, error) {
	data, err := json.Marshal(AuditPurgePayload{RetentionHours: retentionHours})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAuditPurge, data), nil
}
