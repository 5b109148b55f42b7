package posgrest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"gorm.io/gorm"
)

// repository is a generic GORM-based repository implementation.
// It provides the lookups and guarded updates shared by the entity stores.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity into the database.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// GetByID retrieves a single entity by its ID. A missing row is models.ErrNotFound.
func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return r.FirstBy(ctx, "id = ?", id)
}

// FirstBy retrieves the first entity matching the condition.
func (r *repository[T]) FirstBy(ctx context.Context, query string, args ...interface{}) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where(query, args...).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%T %v: %w", entity, args, models.ErrNotFound)
		}
		return nil, err
	}
	return &entity, nil
}

// GuardedUpdate sets fields on the row with id only while its status is one of
// from. Zero rows affected is not an error here, callers decide what it means.
func (r *repository[T]) GuardedUpdate(ctx context.Context, id string, from interface{}, fields map[string]interface{}) (int64, error) {
	var entity T
	result := r.db.WithContext(ctx).
		Model(&entity).
		Where("id = ? AND status IN ?", id, from).
		Updates(fields)
	return result.RowsAffected, result.Error
}

// Status reads only the status column of the row with id.
func (r *repository[T]) Status(ctx context.Context, id string) (string, error) {
	var statuses []string
	var entity T
	err := r.db.WithContext(ctx).Model(&entity).Where("id = ?", id).Limit(1).Pluck("status", &statuses).Error
	if err != nil {
		return "", err
	}
	if len(statuses) == 0 {
		return "", fmt.Errorf("%T %s: %w", entity, id, models.ErrNotFound)
	}
	return statuses[0], nil
}

// settleGuarded turns a guarded update that touched no row into a result. The row
// already being at target counts as success.
func (r *repository[T]) settleGuarded(ctx context.Context, id string, target string, affected int64, err error) error {
	if err != nil || affected > 0 {
		return err
	}
	current, err := r.Status(ctx, id)
	if err != nil {
		return err
	}
	if current == target {
		return nil
	}
	var entity T
	return fmt.Errorf("%T %s is %s, cannot move to %s: %w", entity, id, current, target, models.ErrInvalidTransition)
}

// listUnsettled returns rows still PENDING or PROCESSING that carry a value in
// externalColumn and that neither changed nor were reconciled since before.
// Rows never reconciled come first, then the oldest checked.
func (r *repository[T]) listUnsettled(ctx context.Context, externalColumn string, before time.Time, limit int) ([]T, error) {
	var rows []T
	err := r.db.WithContext(ctx).
		Where("status IN ?", []models.PaymentStatus{models.StatusPending, models.StatusProcessing}).
		Where(externalColumn+" <> '' AND updated_at < ?", before).
		Where("last_reconciled_at IS NULL OR last_reconciled_at < ?", before).
		Order("last_reconciled_at ASC NULLS FIRST").
		Order("updated_at ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// markReconciled stamps last_reconciled_at without touching updated_at.
func (r *repository[T]) markReconciled(ctx context.Context, id string, at time.Time) error {
	var entity T
	result := r.db.WithContext(ctx).Model(&entity).Where("id = ?", id).UpdateColumn("last_reconciled_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%T %s: %w", entity, id, models.ErrNotFound)
	}
	return nil
}
