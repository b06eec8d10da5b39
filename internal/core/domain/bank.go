package domain

import "fmt"

// BankAuthorizationRequest is the normalised body sent to the acquiring bank.
type BankAuthorizationRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        string `json:"cvv"`
}

// NewBankAuthorizationRequest normalises a validated request for the bank.
// The expiry is formatted as MM/YYYY with the month zero-padded.
func NewBankAuthorizationRequest(req PaymentRequest) BankAuthorizationRequest {
	return BankAuthorizationRequest{
		CardNumber: req.CardNumber,
		ExpiryDate: fmt.Sprintf("%02d/%d", req.ExpiryMonth, req.ExpiryYear),
		Currency:   req.Currency,
		Amount:     req.Amount,
		CVV:        req.CVV,
	}
}

// BankAuthorizationResponse is the body the bank returns on HTTP 200.
type BankAuthorizationResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

// AuthorizationOutcome is how a single bank call ended.
type AuthorizationOutcome string

const (
	OutcomeAuthorized AuthorizationOutcome = "authorized"
	OutcomeDeclined   AuthorizationOutcome = "declined"
	OutcomeFailed     AuthorizationOutcome = "failed"
)

// BankFailure classifies a failed bank call. It is informational only.
type BankFailure string

const (
	FailureNone              BankFailure = ""
	FailureClientError       BankFailure = "client_error"
	FailureServerError       BankFailure = "server_error"
	FailureUnavailable       BankFailure = "unavailable"
	FailureAuth              BankFailure = "auth_failure"
	FailureNotFound          BankFailure = "not_found"
	FailureUnexpectedStatus  BankFailure = "unexpected_status"
	FailureTransport         BankFailure = "transport"
	FailureMalformedResponse BankFailure = "malformed_response"
	FailureCancelled         BankFailure = "cancelled"
)

// AuthorizationResult is the outcome of one bank authorization attempt.
type AuthorizationResult struct {
	Outcome           AuthorizationOutcome
	AuthorizationCode string
	Failure           BankFailure
	StatusCode        int
	Err               error
}

// Authorized reports whether the bank positively authorized the payment.
// Every other outcome, failures included, counts as not authorized.
func (r AuthorizationResult) Authorized() bool {
	return r.Outcome == OutcomeAuthorized
}

func AuthorizedResult(code string) AuthorizationResult {
	return AuthorizationResult{Outcome: OutcomeAuthorized, AuthorizationCode: code, StatusCode: 200}
}

func DeclinedResult(code string) AuthorizationResult {
	return AuthorizationResult{Outcome: OutcomeDeclined, AuthorizationCode: code, StatusCode: 200}
}

func FailedResult(failure BankFailure, statusCode int, err error) AuthorizationResult {
	return AuthorizationResult{Outcome: OutcomeFailed, Failure: failure, StatusCode: statusCode, Err: err}
}
