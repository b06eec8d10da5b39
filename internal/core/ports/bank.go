package ports

import (
	"context"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
)

// BankPort defines the behavior of the external acquiring bank.
// Implementations absorb every failure into the returned result.
type BankPort interface {
	Authorize(ctx context.Context, req domain.BankAuthorizationRequest) domain.AuthorizationResult
}
