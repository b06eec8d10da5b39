package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPaymentService struct {
	processFn func(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error)
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.MaskedPayment, error)
}

func (m *mockPaymentService) Process(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error) {
	return m.processFn(ctx, req)
}

func (m *mockPaymentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.MaskedPayment, error) {
	return m.getByIDFn(ctx, id)
}

func newTestServer(svc PaymentService) *http.ServeMux {
	mux := http.NewServeMux()
	NewPaymentHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(mux)
	return mux
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.False(t, resp.Success)
	return resp
}

func TestHandleProcessPayment_Success(t *testing.T) {
	paymentID := uuid.New()
	var received domain.PaymentRequest

	svc := &mockPaymentService{
		processFn: func(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error) {
			received = req
			return domain.NewPaymentResult(paymentID, domain.StatusAuthorized, req, nil), nil
		},
	}

	body := `{"card_number":"2222405343248877","expiry_month":4,"expiry_year":2030,"currency":"GBP","amount":100,"cvv":"123"}`
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	rr := httptest.NewRecorder()

	newTestServer(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, domain.PaymentRequest{
		CardNumber:  "2222405343248877",
		ExpiryMonth: 4,
		ExpiryYear:  2030,
		Currency:    "GBP",
		Amount:      100,
		CVV:         "123",
	}, received)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, paymentID.String(), resp["id"])
	assert.Equal(t, "Authorized", resp["status"])
	assert.Equal(t, "2222405343248877", resp["card_number"])
	assert.Equal(t, float64(4), resp["expiry_month"])
	assert.Equal(t, float64(2030), resp["expiry_year"])
	assert.Equal(t, "GBP", resp["currency"])
	assert.Equal(t, float64(100), resp["amount"])
	assert.NotContains(t, resp, "errors")
	assert.NotContains(t, resp, "cvv")
}

func TestHandleProcessPayment_RejectedIsStillOK(t *testing.T) {
	svc := &mockPaymentService{
		processFn: func(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error) {
			return domain.NewPaymentResult(uuid.New(), domain.StatusRejected, req, []domain.Violation{
				{Field: "amount", Kind: "not_positive", Message: "Amount must be greater than 0."},
			}), nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(`{"amount":0}`))
	rr := httptest.NewRecorder()

	newTestServer(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp domain.PaymentResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, domain.StatusRejected, resp.Status)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "amount", resp.Errors[0].Field)
}

func TestHandleProcessPayment_InvalidBody(t *testing.T) {
	svc := &mockPaymentService{
		processFn: func(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error) {
			t.Fatal("service must not be called for an undecodable body")
			return nil, nil
		},
	}

	for _, body := range []string{`{not json`, `{"amount":"ten"}`, ``, `[1,2]`} {
		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()

		newTestServer(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)
		resp := decodeError(t, rr)
		assert.Equal(t, domain.ErrCodeInvalidRequest, resp.Error.Code)
	}
}

func TestHandleProcessPayment_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"cancelled", context.Canceled, http.StatusRequestTimeout, domain.ErrCodeTimeout},
		{"deadline", context.DeadlineExceeded, http.StatusRequestTimeout, domain.ErrCodeTimeout},
		{"unexpected", errors.New("store payment: disk full"), http.StatusInternalServerError, domain.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockPaymentService{
				processFn: func(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error) {
					return nil, tt.err
				},
			}

			req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(`{}`))
			rr := httptest.NewRecorder()

			newTestServer(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			resp := decodeError(t, rr)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotContains(t, resp.Error.Message, "disk full")
		})
	}
}

func TestHandleGetPayment_Success(t *testing.T) {
	paymentID := uuid.New()
	svc := &mockPaymentService{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.MaskedPayment, error) {
			assert.Equal(t, paymentID, id)
			return &domain.MaskedPayment{
				ID:                 id,
				Status:             domain.StatusDeclined,
				CardNumberLastFour: "8877",
				ExpiryMonth:        4,
				ExpiryYear:         2030,
				Currency:           "GBP",
				Amount:             100,
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/payments/"+paymentID.String(), nil)
	rr := httptest.NewRecorder()

	newTestServer(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, paymentID.String(), resp["id"])
	assert.Equal(t, "Declined", resp["status"])
	assert.Equal(t, "8877", resp["card_number_last_four"])
	assert.NotContains(t, resp, "card_number")
	assert.NotContains(t, resp, "cvv")
}

func TestHandleGetPayment_NotFound(t *testing.T) {
	svc := &mockPaymentService{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.MaskedPayment, error) {
			return nil, domain.NewPaymentNotFoundError(id.String())
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/payments/"+uuid.NewString(), nil)
	rr := httptest.NewRecorder()

	newTestServer(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, domain.ErrCodePaymentNotFound, resp.Error.Code)
}

func TestHandleGetPayment_MalformedIDIsNotFound(t *testing.T) {
	svc := &mockPaymentService{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.MaskedPayment, error) {
			t.Fatal("service must not be called for a malformed id")
			return nil, nil
		},
	}

	for _, id := range []string{"not-a-uuid", "12345", "7c9e6679-7425-40de-944b"} {
		req := httptest.NewRequest(http.MethodGet, "/payments/"+id, nil)
		rr := httptest.NewRecorder()

		newTestServer(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code, "id %q", id)
		resp := decodeError(t, rr)
		assert.Equal(t, domain.ErrCodePaymentNotFound, resp.Error.Code)
	}
}

func TestHandleGetPayment_UnexpectedError(t *testing.T) {
	svc := &mockPaymentService{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.MaskedPayment, error) {
			return nil, errors.New("connection reset by peer")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/payments/"+uuid.NewString(), nil)
	rr := httptest.NewRecorder()

	newTestServer(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, domain.ErrCodeInternal, resp.Error.Code)
	assert.Equal(t, internalErrorMessage, resp.Error.Message)
}

func TestHandleHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	newTestServer(&mockPaymentService{}).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestMapError(t *testing.T) {
	status, apiErr := mapError(&domain.DomainError{Code: domain.ErrCodeTimeout, Message: "slow"})
	assert.Equal(t, http.StatusRequestTimeout, status)
	assert.Equal(t, domain.ErrCodeTimeout, apiErr.Code)

	status, apiErr = mapError(&domain.DomainError{Code: "SOMETHING_ELSE", Message: "secret"})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, internalErrorMessage, apiErr.Message)
}
