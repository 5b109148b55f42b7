package normalizer

import (
	"fmt"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
)

// Normalizer turns one gateway's webhook body into a PaymentCallbackEvent.
type Normalizer interface {
	Gateway() string
	Supports(raw []byte) bool
	Parse(raw []byte) (*models.PaymentCallbackEvent, error)
}

// Registry holds the normalizers in detection priority order. The least specific
// shape goes last.
type Registry struct {
	normalizers []Normalizer
}

func NewRegistry(normalizers ...Normalizer) *Registry {
	if len(normalizers) == 0 {
		normalizers = []Normalizer{NewCard(), NewWallet(), NewBank()}
	}
	return &Registry{normalizers: normalizers}
}

// Detect returns the first normalizer that recognizes the payload shape.
func (r *Registry) Detect(raw []byte) (Normalizer, error) {
	for _, n := range r.normalizers {
		if n.Supports(raw) {
			return n, nil
		}
	}
	return nil, fmt.Errorf("no gateway recognizes payload: %w", models.ErrUnsupportedPayload)
}

func (r *Registry) ForGateway(gateway string) (Normalizer, bool) {
	for _, n := range r.normalizers {
		if n.Gateway() == gateway {
			return n, true
		}
	}
	return nil, false
}

func (r *Registry) Normalizers() []Normalizer {
	return r.normalizers
}
