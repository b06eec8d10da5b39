package ports

import (
	"context"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	"github.com/google/uuid"
)

// PaymentRepository stores processed payments. Records are append-only.
type PaymentRepository interface {
	Add(ctx context.Context, payment *domain.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
}
