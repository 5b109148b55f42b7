package posgrest

import (
	"context"
	"time"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"gorm.io/gorm"
)

type RequestStore struct {
	*repository[models.PaymentRequest]
}

func NewRequestStore(db *gorm.DB) *RequestStore {
	return &RequestStore{New[models.PaymentRequest](db)}
}

func (s *RequestStore) GetByToken(ctx context.Context, token string) (*models.PaymentRequest, error) {
	return s.FirstBy(ctx, "payment_token = ?", token)
}

func (s *RequestStore) UpdateStatus(ctx context.Context, id string, status models.RequestStatus, reason string) error {
	affected, err := s.GuardedUpdate(ctx, id, models.RequestSourcesFor(status), map[string]interface{}{
		"status":        status,
		"status_reason": reason,
	})
	return s.settleGuarded(ctx, id, string(status), affected, err)
}

func (s *RequestStore) MarkAsPaid(ctx context.Context, id string, paidAt time.Time) error {
	affected, err := s.GuardedUpdate(ctx, id, models.RequestSourcesFor(models.RequestPaid), map[string]interface{}{
		"status":        models.RequestPaid,
		"status_reason": "",
		"paid_at":       paidAt,
	})
	return s.settleGuarded(ctx, id, string(models.RequestPaid), affected, err)
}
