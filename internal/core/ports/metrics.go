package ports

import (
	"time"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
)

// Metrics records payment pipeline measurements.
type Metrics interface {
	ObserveDecision(status domain.PaymentStatus)
	ObserveBankCall(result domain.AuthorizationResult, elapsed time.Duration)
}

// NopMetrics discards every measurement.
type NopMetrics struct{}

func (NopMetrics) ObserveDecision(domain.PaymentStatus) {}

func (NopMetrics) ObserveBankCall(domain.AuthorizationResult, time.Duration) {}
