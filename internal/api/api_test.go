package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DanielPopoola/card-payment-gateway/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSpec(t *testing.T) {
	doc, err := api.LoadSpec(context.Background())
	require.NoError(t, err)

	require.NotNil(t, doc.Paths.Find("/payments"))
	require.NotNil(t, doc.Paths.Find("/payments/{id}"))
	assert.NotNil(t, doc.Paths.Find("/payments").Post)
	assert.NotNil(t, doc.Paths.Find("/payments/{id}").Get)

	masked := doc.Components.Schemas["MaskedPayment"].Value
	assert.Contains(t, masked.Properties, "card_number_last_four")
	assert.NotContains(t, masked.Properties, "card_number")
	assert.NotContains(t, masked.Properties, "cvv")
}

func TestRegisterDocsRoutes(t *testing.T) {
	doc, err := api.LoadSpec(context.Background())
	require.NoError(t, err)

	mux := http.NewServeMux()
	require.NoError(t, api.RegisterDocsRoutes(mux, doc))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "3.0.3", body["openapi"])
	assert.Contains(t, body["paths"], "/payments/{id}")
}
