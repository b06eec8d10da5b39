// Package memory provides the in-process payment store.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	"github.com/google/uuid"
)

// PaymentRepository keeps payments in a map guarded by a single lock.
// Stored records are copies, so callers cannot mutate them after insertion.
type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]*domain.Payment
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		payments: make(map[uuid.UUID]*domain.Payment),
	}
}

// Add inserts payment unconditionally. Identifiers are not checked for
// duplicates; the payment service always generates fresh ones.
func (r *PaymentRepository) Add(ctx context.Context, payment *domain.Payment) error {
	if payment == nil {
		return fmt.Errorf("payment repository: payment is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.payments[payment.ID] = payment.Clone()
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.payments[id]
	if !ok {
		return nil, domain.NewPaymentNotFoundError(id.String())
	}
	return payment.Clone(), nil
}

// Count returns the number of stored payments.
func (r *PaymentRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.payments)
}
