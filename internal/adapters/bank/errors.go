package bank

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
)

type BankError struct {
	Code       string
	Err        error
	Message    string
	StatusCode int
}

func (e *BankError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bank error [%s]: %s (status: %d): %v", e.Code, e.Message, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("bank error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
}

func (e *BankError) Unwrap() error {
	return e.Err
}

func IsBankError(err error) (*BankError, bool) {
	var bankErr *BankError
	ok := errors.As(err, &bankErr)
	return bankErr, ok
}

// ClassifyStatus maps a non-200 bank status code to a failure kind.
func ClassifyStatus(statusCode int) domain.BankFailure {
	switch {
	case statusCode == http.StatusBadRequest:
		return domain.FailureClientError
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return domain.FailureAuth
	case statusCode == http.StatusNotFound:
		return domain.FailureNotFound
	case statusCode == http.StatusServiceUnavailable:
		return domain.FailureUnavailable
	case statusCode >= 500 && statusCode <= 599:
		return domain.FailureServerError
	default:
		return domain.FailureUnexpectedStatus
	}
}

func failureMessage(failure domain.BankFailure) string {
	switch failure {
	case domain.FailureClientError:
		return "bank rejected the request as malformed"
	case domain.FailureAuth:
		return "bank refused the gateway credentials"
	case domain.FailureNotFound:
		return "bank payment endpoint not found"
	case domain.FailureUnavailable:
		return "bank service unavailable"
	case domain.FailureServerError:
		return "bank internal server error"
	default:
		return "unexpected status code from bank"
	}
}
