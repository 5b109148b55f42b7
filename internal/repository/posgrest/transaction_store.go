package posgrest

import (
	"context"
	"time"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TransactionStore struct {
	*repository[models.PaymentTransaction]
}

func NewTransactionStore(db *gorm.DB) *TransactionStore {
	return &TransactionStore{New[models.PaymentTransaction](db)}
}

func (s *TransactionStore) GetByExternalID(ctx context.Context, externalID string) (*models.PaymentTransaction, error) {
	return s.FirstBy(ctx, "external_id = ?", externalID)
}

func (s *TransactionStore) MarkAsProcessed(ctx context.Context, id string, externalID string, gatewayResponse map[string]interface{}) error {
	fields := map[string]interface{}{
		"status":           models.StatusSuccess,
		"gateway_response": datatypes.JSONMap(gatewayResponse),
		"processed_at":     time.Now().UTC(),
		"error_code":       "",
		"error_message":    "",
	}
	if externalID != "" {
		fields["external_id"] = externalID
	}
	affected, err := s.GuardedUpdate(ctx, id, models.TransactionSourcesFor(models.StatusSuccess), fields)
	return s.settleGuarded(ctx, id, string(models.StatusSuccess), affected, err)
}

// MarkAsFailed records the gateway error and counts the attempt.
func (s *TransactionStore) MarkAsFailed(ctx context.Context, id string, errorCode string, errorMessage string) error {
	affected, err := s.GuardedUpdate(ctx, id, models.TransactionSourcesFor(models.StatusFailed), map[string]interface{}{
		"status":        models.StatusFailed,
		"error_code":    errorCode,
		"error_message": errorMessage,
		"retry_count":   gorm.Expr("retry_count + 1"),
		"processed_at":  time.Now().UTC(),
	})
	return s.settleGuarded(ctx, id, string(models.StatusFailed), affected, err)
}

func (s *TransactionStore) MarkAsProcessing(ctx context.Context, id string) error {
	affected, err := s.GuardedUpdate(ctx, id, models.TransactionSourcesFor(models.StatusProcessing), map[string]interface{}{
		"status": models.StatusProcessing,
	})
	return s.settleGuarded(ctx, id, string(models.StatusProcessing), affected, err)
}

// ListStale returns open transactions with an external id that have not changed
// or been reconciled since updatedBefore.
func (s *TransactionStore) ListStale(ctx context.Context, updatedBefore time.Time, limit int) ([]models.PaymentTransaction, error) {
	return s.listUnsettled(ctx, "external_id", updatedBefore, limit)
}

func (s *TransactionStore) MarkReconciled(ctx context.Context, id string, at time.Time) error {
	return s.markReconciled(ctx, id, at)
}
