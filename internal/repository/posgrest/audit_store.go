package posgrest

import (
	"context"
	"errors"
	"time"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"gorm.io/gorm"
)

var (
	errAuditWithoutRequest     = errors.New("request audit entry needs a payment request id")
	errAuditWithoutTransaction = errors.New("transaction audit entry needs a transaction id")
	errAuditWithoutRefund      = errors.New("refund audit entry needs a refund id")
)

// AuditStore is append-only, entries are inserted and eventually deleted by the
// retention hook but never updated.
type AuditStore struct {
	*repository[models.PaymentAuditLog]
}

func NewAuditStore(db *gorm.DB) *AuditStore {
	return &AuditStore{New[models.PaymentAuditLog](db)}
}

func (s *AuditStore) LogPaymentRequestAction(ctx context.Context, entry *models.PaymentAuditLog) error {
	if entry.PaymentRequestID == nil {
		return models.Permanent(errAuditWithoutRequest)
	}
	return s.Create(ctx, entry)
}

func (s *AuditStore) LogTransactionAction(ctx context.Context, entry *models.PaymentAuditLog) error {
	if entry.TransactionID == nil {
		return models.Permanent(errAuditWithoutTransaction)
	}
	return s.Create(ctx, entry)
}

func (s *AuditStore) LogRefundAction(ctx context.Context, entry *models.PaymentAuditLog) error {
	if entry.RefundID == nil {
		return models.Permanent(errAuditWithoutRefund)
	}
	return s.Create(ctx, entry)
}

func (s *AuditStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.PaymentAuditLog{})
	return result.RowsAffected, result.Error
}
