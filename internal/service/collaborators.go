package service

import (
	"context"
	"time"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
)

// RequestService persists PaymentRequest status changes. Lookups return
// models.ErrNotFound when nothing matches.
type RequestService interface {
	GetByID(ctx context.Context, id string) (*models.PaymentRequest, error)
	GetByToken(ctx context.Context, token string) (*models.PaymentRequest, error)
	UpdateStatus(ctx context.Context, id string, status models.RequestStatus, reason string) error
	MarkAsPaid(ctx context.Context, id string, paidAt time.Time) error
}

type TransactionService interface {
	GetByExternalID(ctx context.Context, externalID string) (*models.PaymentTransaction, error)
	GetByID(ctx context.Context, id string) (*models.PaymentTransaction, error)
	MarkAsProcessed(ctx context.Context, id string, externalID string, gatewayResponse map[string]interface{}) error
	MarkAsFailed(ctx context.Context, id string, errorCode string, errorMessage string) error
	MarkAsProcessing(ctx context.Context, id string) error
	ListStale(ctx context.Context, updatedBefore time.Time, limit int) ([]models.PaymentTransaction, error)
	MarkReconciled(ctx context.Context, id string, at time.Time) error
}

type RefundService interface {
	GetByExternalID(ctx context.Context, externalRefundID string) (*models.PaymentRefund, error)
	MarkAsProcessed(ctx context.Context, id string, gatewayResponse map[string]interface{}) error
	MarkAsFailed(ctx context.Context, id string, errorCode string, errorMessage string) error
	ListStale(ctx context.Context, updatedBefore time.Time, limit int) ([]models.PaymentRefund, error)
	MarkReconciled(ctx context.Context, id string, at time.Time) error
}

// AuditService appends to the audit trail. Entries are never updated.
type AuditService interface {
	LogPaymentRequestAction(ctx context.Context, entry *models.PaymentAuditLog) error
	LogTransactionAction(ctx context.Context, entry *models.PaymentAuditLog) error
	LogRefundAction(ctx context.Context, entry *models.PaymentAuditLog) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, key string, message interface{}) error
}

// StepJournal tracks how far each saga step got so a redelivered callback resumes
// instead of re-applying.
type StepJournal interface {
	// Begin stores step if its key is new and returns the stored record, with
	// created reporting whether this call inserted it.
	Begin(ctx context.Context, step *models.SagaStep) (stored *models.SagaStep, created bool, err error)
	Advance(ctx context.Context, key string, state models.StepState) error
}

// StatusQuerier asks a gateway for the current outcome of a transaction or refund.
// A nil event means the gateway still reports it as pending.
type StatusQuerier interface {
	Gateway() string
	QueryTransaction(ctx context.Context, tx models.PaymentTransaction) (*models.PaymentCallbackEvent, error)
	QueryRefund(ctx context.Context, refund models.PaymentRefund) (*models.PaymentCallbackEvent, error)
}

// CallbackProcessor is implemented by SagaService.
type CallbackProcessor interface {
	ProcessCallback(ctx context.Context, event *models.PaymentCallbackEvent) (Outcome, error)
}
