package apispec

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "api-key test-key")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func TestLoad(t *testing.T) {
	doc, err := Load(context.Background())
	require.NoError(t, err)

	for _, path := range []string{
		"/health",
		"/v1/card",
		"/v1/transaction/{approval_status}",
		"/v1/simulate/authorize",
		"/v1/simulate/void",
		"/v1/simulate/clearing",
		"/v1/simulate/return",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestValidator_ValidateRequest(t *testing.T) {
	v, err := NewValidator(context.Background())
	require.NoError(t, err)

	tests := []struct {
		name    string
		method  string
		target  string
		body    string
		wantErr bool
	}{
		{
			name:   "list cards without filters",
			method: http.MethodGet,
			target: "/v1/card",
		},
		{
			name:   "list cards with filters",
			method: http.MethodGet,
			target: "/v1/card?page=2&page_size=10&begin=2024-01-01&end=2024-02-01&card_token=abc",
		},
		{
			name:    "page size above maximum",
			method:  http.MethodGet,
			target:  "/v1/card?page_size=5000",
			wantErr: true,
		},
		{
			name:   "list approved transactions",
			method: http.MethodGet,
			target: "/v1/transaction/approvals?transaction_token=t",
		},
		{
			name:    "unknown approval status",
			method:  http.MethodGet,
			target:  "/v1/transaction/pending",
			wantErr: true,
		},
		{
			name:   "create card",
			method: http.MethodPost,
			target: "/v1/card",
			body:   `{"type":"SINGLE_USE","memo":"groceries","spend_limit":5000,"spend_limit_duration":"MONTHLY"}`,
		},
		{
			name:    "create card in closed state",
			method:  http.MethodPost,
			target:  "/v1/card",
			body:    `{"type":"SINGLE_USE","state":"CLOSED"}`,
			wantErr: true,
		},
		{
			name:    "create card without type",
			method:  http.MethodPost,
			target:  "/v1/card",
			body:    `{"memo":"x"}`,
			wantErr: true,
		},
		{
			name:   "close card",
			method: http.MethodPut,
			target: "/v1/card",
			body:   `{"card_token":"abc","state":"CLOSED"}`,
		},
		{
			name:    "update card without token",
			method:  http.MethodPut,
			target:  "/v1/card",
			body:    `{"state":"OPEN"}`,
			wantErr: true,
		},
		{
			name:   "simulate authorization",
			method: http.MethodPost,
			target: "/v1/simulate/authorize",
			body:   `{"descriptor":"coffee","pan":"4111111111111111","amount":100}`,
		},
		{
			name:    "simulate authorization with fractional amount",
			method:  http.MethodPost,
			target:  "/v1/simulate/authorize",
			body:    `{"descriptor":"coffee","pan":"4111111111111111","amount":1.5}`,
			wantErr: true,
		},
		{
			name:   "simulate clearing",
			method: http.MethodPost,
			target: "/v1/simulate/clearing",
			body:   `{"token":"t","amount":0}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRequest(newRequest(tt.method, tt.target, tt.body))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_RestoresBody(t *testing.T) {
	v, err := NewValidator(context.Background())
	require.NoError(t, err)

	body := `{"token":"t","amount":10}`
	req := newRequest(http.MethodPost, "/v1/simulate/void", body)
	require.NoError(t, v.ValidateRequest(req))

	data, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.JSONEq(t, body, string(data))
}

func TestValidator_Security(t *testing.T) {
	v, err := NewValidator(context.Background())
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		req := newRequest(http.MethodGet, "/v1/card", "")
		req.Header.Del("Authorization")

		err := v.ValidateRequest(req)
		require.Error(t, err)
		assert.True(t, IsSecurityError(err))
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := newRequest(http.MethodGet, "/v1/card", "")
		req.Header.Set("Authorization", "Bearer test-key")

		err := v.ValidateRequest(req)
		require.Error(t, err)
		assert.True(t, IsSecurityError(err))
	})
}

func TestValidator_UnknownOperation(t *testing.T) {
	v, err := NewValidator(context.Background())
	require.NoError(t, err)

	err = v.ValidateRequest(newRequest(http.MethodDelete, "/v1/card", ""))
	assert.ErrorIs(t, err, ErrUnknownOperation)

	err = v.ValidateRequest(newRequest(http.MethodGet, "/docs", ""))
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestValidator_HealthNeedsNoKey(t *testing.T) {
	v, err := NewValidator(context.Background())
	require.NoError(t, err)

	req := newRequest(http.MethodGet, "/health", "")
	req.Header.Del("Authorization")
	assert.NoError(t, v.ValidateRequest(req))
}

func TestDocsRoutes(t *testing.T) {
	mux := http.NewServeMux()
	RegisterDocsRoutes(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/v1/simulate/authorize")

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "openapi:")

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swagger-ui")
}
