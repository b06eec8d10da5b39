package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	"github.com/DanielPopoola/card-payment-gateway/internal/tests/e2e/testdata"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestClient wraps HTTP calls to gateway
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ProcessPayment calls POST /payments and returns the status code and decoded result
func (c *TestClient) ProcessPayment(t *testing.T, req domain.PaymentRequest) (int, *domain.PaymentResult) {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	status, bodyBytes := c.do(t, http.MethodPost, "/payments", bytes.NewReader(body))
	if status != http.StatusOK {
		return status, nil
	}

	var result domain.PaymentResult
	require.NoError(t, json.Unmarshal(bodyBytes, &result))
	return status, &result
}

// PostRaw sends body to POST /payments unchanged
func (c *TestClient) PostRaw(t *testing.T, body string) (int, []byte) {
	t.Helper()
	return c.do(t, http.MethodPost, "/payments", strings.NewReader(body))
}

// GetPayment calls GET /payments/{id}
func (c *TestClient) GetPayment(t *testing.T, id string) (int, []byte) {
	t.Helper()
	return c.do(t, http.MethodGet, "/payments/"+id, nil)
}

func (c *TestClient) Get(t *testing.T, path string) (int, []byte) {
	t.Helper()
	return c.do(t, http.MethodGet, path, nil)
}

func (c *TestClient) do(t *testing.T, method, path string, body io.Reader) (int, []byte) {
	t.Helper()

	httpReq, err := http.NewRequest(method, c.baseURL+path, body)
	require.NoError(t, err)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	require.NoError(t, err)
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, bodyBytes
}

func requestFor(card testdata.TestCard) domain.PaymentRequest {
	return domain.PaymentRequest{
		CardNumber:  card.CardNumber,
		ExpiryMonth: card.ExpiryMonth,
		ExpiryYear:  card.ExpiryYear,
		Currency:    "GBP",
		Amount:      100,
		CVV:         card.CVV,
	}
}

// FakeBank imitates the acquiring bank simulator.
type FakeBank struct {
	*httptest.Server
	calls atomic.Int64
}

func NewFakeBank() *FakeBank {
	b := &FakeBank{}
	b.Server = httptest.NewServer(http.HandlerFunc(b.handle))
	return b
}

func (b *FakeBank) Calls() int64 {
	return b.calls.Load()
}

func (b *FakeBank) handle(w http.ResponseWriter, r *http.Request) {
	b.calls.Add(1)

	if r.Method != http.MethodPost || r.URL.Path != "/payments" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var req domain.BankAuthorizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CardNumber == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errorMessage":"Not all required properties were sent in the request"}`))
		return
	}

	last := req.CardNumber[len(req.CardNumber)-1] - '0'
	switch {
	case last == 0:
		w.WriteHeader(http.StatusServiceUnavailable)
	case last%2 == 1:
		writeBankResponse(w, domain.BankAuthorizationResponse{Authorized: true, AuthorizationCode: uuid.NewString()})
	default:
		writeBankResponse(w, domain.BankAuthorizationResponse{Authorized: false})
	}
}

func writeBankResponse(w http.ResponseWriter, resp domain.BankAuthorizationResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}
