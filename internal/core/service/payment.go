package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	"github.com/DanielPopoola/card-payment-gateway/internal/core/ports"
	"github.com/DanielPopoola/card-payment-gateway/internal/core/validation"
	"github.com/google/uuid"
)

// RequestValidator reports every rule a payment request breaks.
type RequestValidator interface {
	Validate(req domain.PaymentRequest) []domain.Violation
}

type PaymentService struct {
	repo       ports.PaymentRepository
	bankClient ports.BankPort
	validator  RequestValidator
	metrics    ports.Metrics
	logger     *slog.Logger
	newID      func() uuid.UUID
	now        func() time.Time
}

type Option func(*PaymentService)

func WithValidator(v RequestValidator) Option {
	return func(s *PaymentService) {
		s.validator = v
	}
}

func WithMetrics(m ports.Metrics) Option {
	return func(s *PaymentService) {
		s.metrics = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *PaymentService) {
		s.logger = logger
	}
}

func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *PaymentService) {
		s.newID = newID
	}
}

// WithClock sets the clock used to stamp stored payments.
func WithClock(now func() time.Time) Option {
	return func(s *PaymentService) {
		s.now = now
	}
}

func NewPaymentService(repo ports.PaymentRepository, bankClient ports.BankPort, opts ...Option) *PaymentService {
	s := &PaymentService{
		repo:       repo,
		bankClient: bankClient,
		validator:  validation.New(),
		metrics:    ports.NopMetrics{},
		logger:     slog.Default(),
		newID:      uuid.New,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "payment_service")
	return s
}

// Process validates req, asks the bank to authorize it when valid, and stores
// the outcome. Invalid requests come back Rejected without reaching the bank.
// Anything short of a positive bank authorization is Declined.
//
// An error is returned only when ctx ends while the bank call is in flight or
// the repository fails; in both cases nothing is stored.
func (s *PaymentService) Process(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error) {
	if violations := s.validator.Validate(req); len(violations) > 0 {
		result := domain.NewPaymentResult(s.newID(), domain.StatusRejected, req, violations)
		s.logger.Info("payment rejected",
			"payment_id", result.ID,
			"card_last_four", domain.LastFour(req.CardNumber),
			"violations", len(violations),
		)
		s.metrics.ObserveDecision(domain.StatusRejected)
		return result, nil
	}

	status, err := s.authorize(ctx, req)
	if err != nil {
		return nil, err
	}

	id := s.newID()
	payment := domain.NewPayment(id, status, req, s.now().UTC())
	if err := s.repo.Add(ctx, payment); err != nil {
		s.logger.Error("failed to store payment", "payment_id", id, "error", err)
		return nil, fmt.Errorf("store payment %s: %w", id, err)
	}

	s.logger.Info("payment processed",
		"payment_id", id,
		"status", status,
		"card_last_four", domain.LastFour(req.CardNumber),
		"amount", req.Amount,
		"currency", req.Currency,
	)
	s.metrics.ObserveDecision(status)
	return domain.NewPaymentResult(id, status, req, nil), nil
}

func (s *PaymentService) authorize(ctx context.Context, req domain.PaymentRequest) (domain.PaymentStatus, error) {
	start := time.Now()
	result := s.bankClient.Authorize(ctx, domain.NewBankAuthorizationRequest(req))
	s.metrics.ObserveBankCall(result, time.Since(start))

	if err := ctx.Err(); err != nil {
		s.logger.Warn("payment abandoned, request context ended during bank call", "error", err)
		return "", err
	}

	switch result.Outcome {
	case domain.OutcomeAuthorized:
		return domain.StatusAuthorized, nil
	case domain.OutcomeDeclined:
		return domain.StatusDeclined, nil
	case domain.OutcomeFailed:
		s.logger.Warn("bank call failed, declining payment", "failure", result.Failure)
		return domain.StatusDeclined, nil
	default:
		s.logger.Error("unknown bank outcome, declining payment", "outcome", result.Outcome)
		return domain.StatusDeclined, nil
	}
}

// GetByID returns the masked view of a stored payment, or an error matching
// domain.ErrPaymentNotFound when the id is unknown.
func (s *PaymentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.MaskedPayment, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return payment.Masked(), nil
}
