package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches domain errors by code so wrapped copies compare equal to the sentinels.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

const (
	ErrCodePaymentNotFound = "PAYMENT_NOT_FOUND"
	ErrCodeInvalidRequest  = "INVALID_REQUEST_BODY"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeTimeout         = "TIMEOUT"
)

var ErrPaymentNotFound = &DomainError{
	Code:    ErrCodePaymentNotFound,
	Message: "payment not found",
}

func NewPaymentNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodePaymentNotFound,
		Message: fmt.Sprintf("payment %s not found", id),
	}
}

func NewInvalidRequestError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidRequest,
		Message: "request body is not a valid payment request",
		Err:     err,
	}
}

// IsErrorCode reports whether err is a DomainError with the given code.
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
