package models

import "time"

type StepState string

const (
	StepStarted   StepState = "STARTED"
	StepApplied   StepState = "APPLIED"
	StepAudited   StepState = "AUDITED"
	StepPublished StepState = "PUBLISHED"
	StepSkipped   StepState = "SKIPPED"
)

// Done reports whether nothing is left to do for the step.
func (s StepState) Done() bool {
	return s == StepPublished || s == StepSkipped
}

// SagaStep records how far one saga step got, keyed by "<action>:<primary entity id>".
// OldStatus is the primary entity status seen when the step began.
type SagaStep struct {
	Key           string    `gorm:"primaryKey;size:200" json:"key"`
	Action        string    `gorm:"size:50;not null" json:"action"`
	CorrelationID string    `gorm:"size:200" json:"correlation_id"`
	State         StepState `gorm:"size:20;not null;index" json:"state"`
	OldStatus     string    `gorm:"size:50" json:"old_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func StepKey(action CallbackType, entityID string) string {
	return string(action) + ":" + entityID
}
