package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
)

// APIResponse is the envelope used for error responses.
type APIResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const internalErrorMessage = "an unexpected error occurred"

func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError maps err to a status code and writes the error envelope.
// Unrecognised errors become a 500 whose details only reach the log.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	status, apiErr := mapError(err)
	if status == http.StatusInternalServerError && logger != nil {
		logger.Error("request failed", "error", err)
	}

	respondWithJSON(w, status, APIResponse{
		Success: false,
		Error:   apiErr,
	})
}

func mapError(err error) (int, *APIError) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusRequestTimeout, &APIError{
			Code:    domain.ErrCodeTimeout,
			Message: "request was cancelled or timed out",
		}
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case domain.ErrCodePaymentNotFound:
			return http.StatusNotFound, &APIError{Code: domainErr.Code, Message: domainErr.Message}
		case domain.ErrCodeInvalidRequest:
			return http.StatusBadRequest, &APIError{Code: domainErr.Code, Message: domainErr.Message}
		case domain.ErrCodeTimeout:
			return http.StatusRequestTimeout, &APIError{Code: domainErr.Code, Message: domainErr.Message}
		}
	}

	return http.StatusInternalServerError, &APIError{
		Code:    domain.ErrCodeInternal,
		Message: internalErrorMessage,
	}
}
