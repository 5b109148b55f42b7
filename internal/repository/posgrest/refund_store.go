package posgrest

import (
	"context"
	"time"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RefundStore struct {
	*repository[models.PaymentRefund]
}

func NewRefundStore(db *gorm.DB) *RefundStore {
	return &RefundStore{New[models.PaymentRefund](db)}
}

func (s *RefundStore) GetByExternalID(ctx context.Context, externalRefundID string) (*models.PaymentRefund, error) {
	return s.FirstBy(ctx, "external_refund_id = ?", externalRefundID)
}

func (s *RefundStore) MarkAsProcessed(ctx context.Context, id string, gatewayResponse map[string]interface{}) error {
	affected, err := s.GuardedUpdate(ctx, id, models.RefundSourcesFor(models.StatusSuccess), map[string]interface{}{
		"status":           models.StatusSuccess,
		"gateway_response": datatypes.JSONMap(gatewayResponse),
		"processed_at":     time.Now().UTC(),
	})
	return s.settleGuarded(ctx, id, string(models.StatusSuccess), affected, err)
}

func (s *RefundStore) MarkAsFailed(ctx context.Context, id string, errorCode string, errorMessage string) error {
	affected, err := s.GuardedUpdate(ctx, id, models.RefundSourcesFor(models.StatusFailed), map[string]interface{}{
		"status":        models.StatusFailed,
		"error_code":    errorCode,
		"error_message": errorMessage,
		"processed_at":  time.Now().UTC(),
	})
	return s.settleGuarded(ctx, id, string(models.StatusFailed), affected, err)
}

func (s *RefundStore) ListStale(ctx context.Context, updatedBefore time.Time, limit int) ([]models.PaymentRefund, error) {
	return s.listUnsettled(ctx, "external_refund_id", updatedBefore, limit)
}

func (s *RefundStore) MarkReconciled(ctx context.Context, id string, at time.Time) error {
	return s.markReconciled(ctx, id, at)
}
