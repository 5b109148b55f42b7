package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
)

// MemoryJournal is a process-local StepJournal. Progress is lost on restart, so it
// is only used in tests and when no database journal is configured.
type MemoryJournal struct {
	mu    sync.Mutex
	steps map[string]models.SagaStep
}

func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{steps: make(map[string]models.SagaStep)}
}

func (j *MemoryJournal) Begin(ctx context.Context, step *models.SagaStep) (*models.SagaStep, bool, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if existing, ok := j.steps[step.Key]; ok {
		return &existing, false, nil
	}

	now := time.Now().UTC()
	stored := *step
	if stored.State == "" {
		stored.State = models.StepStarted
	}
	stored.CreatedAt = now
	stored.UpdatedAt = now
	j.steps[stored.Key] = stored
	return &stored, true, nil
}

func (j *MemoryJournal) Advance(ctx context.Context, key string, state models.StepState) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	step, ok := j.steps[key]
	if !ok {
		return fmt.Errorf("saga step %s: %w", key, models.ErrNotFound)
	}
	step.State = state
	step.UpdatedAt = time.Now().UTC()
	j.steps[key] = step
	return nil
}

// State returns the recorded state of key, or "" when unknown.
func (j *MemoryJournal) State(key string) models.StepState {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.steps[key].State
}
