package posgrest

import (
	"context"
	"fmt"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JournalStore persists saga steps so progress survives restarts.
type JournalStore struct {
	*repository[models.SagaStep]
}

func NewJournalStore(db *gorm.DB) *JournalStore {
	return &JournalStore{New[models.SagaStep](db)}
}

func (s *JournalStore) Begin(ctx context.Context, step *models.SagaStep) (*models.SagaStep, bool, error) {
	if step.State == "" {
		step.State = models.StepStarted
	}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(step)
	if result.Error != nil {
		return nil, false, result.Error
	}

	stored, err := s.FirstBy(ctx, "key = ?", step.Key)
	if err != nil {
		return nil, false, err
	}
	return stored, result.RowsAffected == 1, nil
}

func (s *JournalStore) Advance(ctx context.Context, key string, state models.StepState) error {
	result := s.db.WithContext(ctx).
		Model(&models.SagaStep{}).
		Where("key = ?", key).
		Update("state", state)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("saga step %s: %w", key, models.ErrNotFound)
	}
	return nil
}
