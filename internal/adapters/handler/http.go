package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	"github.com/google/uuid"
)

type PaymentService interface {
	Process(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MaskedPayment, error)
}

type PaymentHandler struct {
	service PaymentService
	logger  *slog.Logger
}

func NewPaymentHandler(service PaymentService, logger *slog.Logger) *PaymentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentHandler{
		service: service,
		logger:  logger.With("component", "payment_handler"),
	}
}

func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /payments", h.HandleProcessPayment)
	mux.HandleFunc("GET /payments/{id}", h.HandleGetPayment)
	mux.HandleFunc("GET /health", h.HandleHealth)
}

// HandleHealth reports that the process is serving requests.
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *PaymentHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
