package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DanielPopoola/card-payment-gateway/internal/config"
	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
)

const authorizePath = "/payments"

// maxErrorBody bounds how much of a failed response is kept for logging.
const maxErrorBody = 4 << 10

type HTTPBankClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewBankClient(cfg config.BankConfig, logger *slog.Logger) *HTTPBankClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPBankClient{
		baseURL: strings.TrimRight(cfg.BankBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.BankConnTimeout,
		},
		logger: logger.With("component", "bank_client"),
	}
}

// Authorize sends one authorization request to the bank. It never returns an
// error: every failure is reported as an OutcomeFailed result, which callers
// must treat as not authorized.
func (c *HTTPBankClient) Authorize(ctx context.Context, req domain.BankAuthorizationRequest) domain.AuthorizationResult {
	log := c.logger.With(
		"card_last_four", domain.LastFour(req.CardNumber),
		"amount", req.Amount,
		"currency", req.Currency,
	)

	result := c.authorize(ctx, req)

	switch result.Outcome {
	case domain.OutcomeAuthorized, domain.OutcomeDeclined:
		log.Info("bank responded", "outcome", result.Outcome, "authorization_code", result.AuthorizationCode)
	default:
		c.logFailure(log, result)
	}
	return result
}

func (c *HTTPBankClient) authorize(ctx context.Context, req domain.BankAuthorizationRequest) domain.AuthorizationResult {
	resp, err := postJSON(c, ctx, authorizePath, req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			return domain.FailedResult(domain.FailureCancelled, 0, err)
		}
		return domain.FailedResult(domain.FailureTransport, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		failure := ClassifyStatus(resp.StatusCode)
		return domain.FailedResult(failure, resp.StatusCode, &BankError{
			Code:       string(failure),
			Message:    failureMessage(failure),
			StatusCode: resp.StatusCode,
			Err:        bodyError(body),
		})
	}

	var bankResp domain.BankAuthorizationResponse
	if err := json.NewDecoder(resp.Body).Decode(&bankResp); err != nil {
		return domain.FailedResult(domain.FailureMalformedResponse, resp.StatusCode, &BankError{
			Code:       string(domain.FailureMalformedResponse),
			Message:    "error decoding json response",
			StatusCode: resp.StatusCode,
			Err:        err,
		})
	}

	if bankResp.Authorized {
		return domain.AuthorizedResult(bankResp.AuthorizationCode)
	}
	return domain.DeclinedResult(bankResp.AuthorizationCode)
}

// postJSON posts req as JSON to the bank. The caller owns the response body.
func postJSON[Req any](c *HTTPBankClient, ctx context.Context, path string, req Req) (*http.Response, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("error marshalling json: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	return resp, nil
}

func (c *HTTPBankClient) logFailure(log *slog.Logger, result domain.AuthorizationResult) {
	attrs := []any{
		"failure", result.Failure,
		"status_code", result.StatusCode,
		"error", result.Err,
	}

	switch result.Failure {
	case domain.FailureClientError, domain.FailureNotFound, domain.FailureCancelled:
		log.Warn("bank authorization failed", attrs...)
	default:
		log.Error("bank authorization failed", attrs...)
	}
}

func bodyError(body []byte) error {
	if len(body) == 0 {
		return nil
	}
	return errors.New(strings.TrimSpace(string(body)))
}
