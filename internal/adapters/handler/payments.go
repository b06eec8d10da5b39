package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
)

// maxRequestBody caps the size of a payment request body.
const maxRequestBody = 64 << 10

// HandleProcessPayment processes a card payment
// @Summary      Process a payment
// @Description  Validates the card payment, asks the acquiring bank to authorize it and stores the outcome.
// @Description  Invalid requests are answered with status Rejected and are not stored.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      domain.PaymentRequest  true  "Card payment details"
// @Success      200      {object}  domain.PaymentResult   "Payment processed (Authorized, Declined or Rejected)"
// @Failure      400      {object}  APIResponse            "Body is not a valid payment request"
// @Failure      408      {object}  APIResponse            "Request cancelled or timed out"
// @Failure      500      {object}  APIResponse            "Internal server error"
// @Router       /payments [post]
func (h *PaymentHandler) HandleProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req domain.PaymentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		h.logger.Warn("failed to decode payment request", "error", err)
		WriteError(w, domain.NewInvalidRequestError(err), h.logger)
		return
	}

	result, err := h.service.Process(r.Context(), req)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// HandleGetPayment retrieves a stored payment with the card number masked
// @Summary      Get payment by ID
// @Description  Returns a previously processed payment. Only the last four card digits are included.
// @Tags         payments
// @Produce      json
// @Param        id   path      string                true  "Payment ID (UUID)"
// @Success      200  {object}  domain.MaskedPayment  "Payment found"
// @Failure      404  {object}  APIResponse           "Payment not found"
// @Failure      500  {object}  APIResponse           "Internal server error"
// @Router       /payments/{id} [get]
func (h *PaymentHandler) HandleGetPayment(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")

	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", raw, &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		// A malformed id can never name a stored payment.
		WriteError(w, domain.NewPaymentNotFoundError(raw), h.logger)
		return
	}

	payment, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, payment)
}
