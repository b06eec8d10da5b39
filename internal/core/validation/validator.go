// Package validation checks card payment requests before they are sent to the bank.
package validation

import (
	"time"
	"unicode/utf8"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
)

// Field names reported in violations.
const (
	FieldCardNumber  = "card_number"
	FieldExpiryMonth = "expiry_month"
	FieldExpiryYear  = "expiry_year"
	FieldCurrency    = "currency"
	FieldAmount      = "amount"
	FieldCVV         = "cvv"
	FieldExpiryDate  = "expiry_date"
)

// Violation kinds.
const (
	KindRequired      = "required"
	KindInvalidLength = "invalid_length"
	KindNotNumeric    = "not_numeric"
	KindOutOfRange    = "out_of_range"
	KindInvalidFormat = "invalid_format"
	KindNotPositive   = "not_positive"
	KindExpired       = "expired"
)

const (
	MsgCardNumberRequired      = "Card number is required."
	MsgCardNumberLengthInvalid = "Card number must be between 14-19 digits."
	MsgCardNumberNotNumeric    = "Card number must be numeric."
	MsgExpiryMonthInvalid      = "Expiry month must be between 1 and 12."
	MsgExpiryYearInvalid       = "Expiry year must be a valid year."
	MsgCurrencyRequired        = "Currency is required."
	MsgCurrencyInvalid         = "Currency must be a 3-letter ISO code (e.g., GBP, USD, EUR)."
	MsgAmountNotPositive       = "Amount must be greater than 0."
	MsgCVVRequired             = "CVV is required."
	MsgCVVInvalid              = "CVV must be 3 or 4 digits."
	MsgCardExpired             = "Card has expired."
)

const (
	minCardNumberLength = 14
	maxCardNumberLength = 19
	maxExpiryYearsAhead = 20
)

// rule inspects one aspect of a request and returns the violations it found.
// Rules never short-circuit each other: an empty value fails every check it
// does not satisfy.
type rule func(req domain.PaymentRequest, now time.Time) []domain.Violation

// Validator runs every rule against a request and collects all violations.
type Validator struct {
	now   func() time.Time
	rules []rule
}

type Option func(*Validator)

// WithClock overrides the clock used for the expiry checks.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

func New(opts ...Option) *Validator {
	v := &Validator{
		now: time.Now,
		rules: []rule{
			checkCardNumber,
			checkExpiryMonth,
			checkExpiryYear,
			checkCurrency,
			checkAmount,
			checkCVV,
			checkExpiryDate,
		},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate returns every violation in req, in rule order. An empty result means
// the request can be sent to the bank.
func (v *Validator) Validate(req domain.PaymentRequest) []domain.Violation {
	now := v.now().UTC()

	var violations []domain.Violation
	for _, r := range v.rules {
		violations = append(violations, r(req, now)...)
	}
	return violations
}

func violation(field, kind, msg string) domain.Violation {
	return domain.Violation{Field: field, Kind: kind, Message: msg}
}

func checkCardNumber(req domain.PaymentRequest, _ time.Time) []domain.Violation {
	var out []domain.Violation
	if req.CardNumber == "" {
		out = append(out, violation(FieldCardNumber, KindRequired, MsgCardNumberRequired))
	}
	if n := utf8.RuneCountInString(req.CardNumber); n < minCardNumberLength || n > maxCardNumberLength {
		out = append(out, violation(FieldCardNumber, KindInvalidLength, MsgCardNumberLengthInvalid))
	}
	if !isDigits(req.CardNumber) {
		out = append(out, violation(FieldCardNumber, KindNotNumeric, MsgCardNumberNotNumeric))
	}
	return out
}

func checkExpiryMonth(req domain.PaymentRequest, _ time.Time) []domain.Violation {
	if !validMonth(req.ExpiryMonth) {
		return []domain.Violation{violation(FieldExpiryMonth, KindOutOfRange, MsgExpiryMonthInvalid)}
	}
	return nil
}

func checkExpiryYear(req domain.PaymentRequest, now time.Time) []domain.Violation {
	current := now.Year()
	if req.ExpiryYear < current || req.ExpiryYear > current+maxExpiryYearsAhead {
		return []domain.Violation{violation(FieldExpiryYear, KindOutOfRange, MsgExpiryYearInvalid)}
	}
	return nil
}

func checkCurrency(req domain.PaymentRequest, _ time.Time) []domain.Violation {
	var out []domain.Violation
	if req.Currency == "" {
		out = append(out, violation(FieldCurrency, KindRequired, MsgCurrencyRequired))
	}
	if !isCurrencyCode(req.Currency) {
		out = append(out, violation(FieldCurrency, KindInvalidFormat, MsgCurrencyInvalid))
	}
	return out
}

func checkAmount(req domain.PaymentRequest, _ time.Time) []domain.Violation {
	if req.Amount <= 0 {
		return []domain.Violation{violation(FieldAmount, KindNotPositive, MsgAmountNotPositive)}
	}
	return nil
}

func checkCVV(req domain.PaymentRequest, _ time.Time) []domain.Violation {
	var out []domain.Violation
	if req.CVV == "" {
		out = append(out, violation(FieldCVV, KindRequired, MsgCVVRequired))
	}
	if n := len(req.CVV); n < 3 || n > 4 || !isDigits(req.CVV) {
		out = append(out, violation(FieldCVV, KindInvalidFormat, MsgCVVInvalid))
	}
	return out
}

// checkExpiryDate runs only for a valid month. The year is not range checked here:
// time.Date normalises any year, so out-of-range values still produce a verdict.
func checkExpiryDate(req domain.PaymentRequest, now time.Time) []domain.Violation {
	if !validMonth(req.ExpiryMonth) {
		return nil
	}
	if now.After(lastInstantOfMonth(req.ExpiryYear, req.ExpiryMonth)) {
		return []domain.Violation{violation(FieldExpiryDate, KindExpired, MsgCardExpired)}
	}
	return nil
}

// lastInstantOfMonth returns 23:59:59 UTC on the last day of the month.
func lastInstantOfMonth(year, month int) time.Time {
	firstOfNext := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	return firstOfNext.Add(-time.Second)
}

func validMonth(month int) bool {
	return month >= 1 && month <= 12
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
