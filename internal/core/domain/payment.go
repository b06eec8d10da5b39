// Package domain holds the payment entities shared by the gateway core and its adapters.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the terminal outcome assigned to a payment request.
type PaymentStatus string

const (
	StatusRejected   PaymentStatus = "Rejected"
	StatusAuthorized PaymentStatus = "Authorized"
	StatusDeclined   PaymentStatus = "Declined"
)

// IsStored reports whether payments with this status are kept for retrieval.
// Rejected requests never reach the bank and are not persisted.
func (s PaymentStatus) IsStored() bool {
	return s == StatusAuthorized || s == StatusDeclined
}

// PaymentRequest is the untrusted card payment submitted by a merchant.
type PaymentRequest struct {
	CardNumber  string `json:"card_number" example:"2222405343248877"`
	ExpiryMonth int    `json:"expiry_month" example:"4"`
	ExpiryYear  int    `json:"expiry_year" example:"2030"`
	Currency    string `json:"currency" example:"GBP"`
	Amount      int64  `json:"amount" example:"100"`
	CVV         string `json:"cvv" example:"123"`
}

// Payment is the stored record of a payment that was sent to the bank.
type Payment struct {
	ID          uuid.UUID
	Status      PaymentStatus
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	Amount      int64
	CreatedAt   time.Time
}

// NewPayment builds the record for a processed request.
func NewPayment(id uuid.UUID, status PaymentStatus, req PaymentRequest, createdAt time.Time) *Payment {
	return &Payment{
		ID:          id,
		Status:      status,
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		Currency:    req.Currency,
		Amount:      req.Amount,
		CreatedAt:   createdAt,
	}
}

// Clone returns a copy that shares no state with p.
func (p *Payment) Clone() *Payment {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// Masked projects the record into the view returned on retrieval.
func (p *Payment) Masked() *MaskedPayment {
	return &MaskedPayment{
		ID:                 p.ID,
		Status:             p.Status,
		CardNumberLastFour: LastFour(p.CardNumber),
		ExpiryMonth:        p.ExpiryMonth,
		ExpiryYear:         p.ExpiryYear,
		Currency:           p.Currency,
		Amount:             p.Amount,
	}
}

// MaskedPayment is the read-only view of a stored payment. It never carries the
// full card number or the CVV.
type MaskedPayment struct {
	ID                 uuid.UUID     `json:"id"`
	Status             PaymentStatus `json:"status"`
	CardNumberLastFour string        `json:"card_number_last_four"`
	ExpiryMonth        int           `json:"expiry_month"`
	ExpiryYear         int           `json:"expiry_year"`
	Currency           string        `json:"currency"`
	Amount             int64         `json:"amount"`
}

// PaymentResult is returned when a payment request is processed. It echoes the
// submitted card number unmasked; only the retrieval path masks it.
type PaymentResult struct {
	ID          uuid.UUID     `json:"id"`
	Status      PaymentStatus `json:"status"`
	CardNumber  string        `json:"card_number"`
	ExpiryMonth int           `json:"expiry_month"`
	ExpiryYear  int           `json:"expiry_year"`
	Currency    string        `json:"currency"`
	Amount      int64         `json:"amount"`
	Errors      []Violation   `json:"errors,omitempty"`
}

// NewPaymentResult echoes req under the given id and status.
func NewPaymentResult(id uuid.UUID, status PaymentStatus, req PaymentRequest, violations []Violation) *PaymentResult {
	return &PaymentResult{
		ID:          id,
		Status:      status,
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		Currency:    req.Currency,
		Amount:      req.Amount,
		Errors:      violations,
	}
}

// LastFour returns the last four characters of a card number, or "" when the
// number is shorter than four characters.
func LastFour(cardNumber string) string {
	if len(cardNumber) < 4 {
		return ""
	}
	return cardNumber[len(cardNumber)-4:]
}

// Violation describes one field that failed validation.
type Violation struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
