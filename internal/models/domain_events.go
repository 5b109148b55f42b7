package models

import "time"

const (
	PaymentCallbacksTopic = "payments.callbacks"
	PaymentEventsTopic    = "payments.events"
	PaymentCallbacksDLQ   = "payments.callbacks.dlq"
)

// PaymentDomainEvent is published after a saga step is applied and audited.
// It carries ids only, consumers look the entities up themselves.
type PaymentDomainEvent struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	RequestID     string    `json:"request_id,omitempty"`
	TransactionID string    `json:"transaction_id,omitempty"`
	RefundID      string    `json:"refund_id,omitempty"`
	Gateway       string    `json:"gateway"`
	CorrelationID string    `json:"correlation_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Error         string    `json:"error"`
	Permanent     bool      `json:"permanent"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
