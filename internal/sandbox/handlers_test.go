package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/benx421/privacy-go/internal/apispec"
	"github.com/benx421/privacy-go/internal/config"
	"github.com/benx421/privacy-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

func newTestRouter(t *testing.T, validate bool) http.Handler {
	t.Helper()

	router, err := NewRouter(context.Background(), &config.SandboxConfig{
		APIKey:           testAPIKey,
		BINPrefix:        testBIN,
		ValidateRequests: validate,
	}, testLogger())
	require.NoError(t, err)
	return router
}

func serve(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Authorization", "api-key "+testAPIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type errorBody struct {
	Message            string `json:"message"`
	DebuggingRequestID string `json:"debugging_request_id"`
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t, true)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	router := newTestRouter(t, true)

	req := httptest.NewRequest(http.MethodGet, "/v1/card", nil)
	req.Header.Set("Authorization", "api-key wrong")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody[errorBody](t, rec)
	assert.NotEmpty(t, body.Message)
	assert.NotEmpty(t, body.DebuggingRequestID)
}

func TestRouter_CardLifecycle(t *testing.T) {
	for _, validate := range []bool{true, false} {
		router := newTestRouter(t, validate)

		rec := serve(t, router, http.MethodPost, "/v1/card", map[string]any{
			"type":        "UNLOCKED",
			"memo":        "travel",
			"spend_limit": 5000,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		card := decodeBody[models.Card](t, rec)
		assert.Equal(t, models.CardStateOpen, card.State)
		assert.Equal(t, models.Cents(5000), card.SpendLimit)

		rec = serve(t, router, http.MethodPut, "/v1/card", map[string]any{
			"card_token": card.Token,
			"state":      "PAUSED",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, models.CardStatePaused, decodeBody[models.Card](t, rec).State)

		rec = serve(t, router, http.MethodGet, "/v1/card?card_token="+card.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		page := decodeBody[models.Page[models.Card]](t, rec)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "travel", page.Data[0].Memo)
		assert.Equal(t, int64(1), page.TotalEntries)
	}
}

func TestRouter_AuthorizeAndClear(t *testing.T) {
	router := newTestRouter(t, true)

	rec := serve(t, router, http.MethodPost, "/v1/card", map[string]any{"type": "SINGLE_USE"})
	require.Equal(t, http.StatusOK, rec.Code)
	card := decodeBody[models.Card](t, rec)

	rec = serve(t, router, http.MethodPost, "/v1/simulate/authorize", map[string]any{
		"descriptor": "coffee",
		"pan":        card.PAN,
		"amount":     1250,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token := decodeBody[apispec.SimulateAuthorize200JSONResponse](t, rec).Token
	require.NotEmpty(t, token)

	rec = serve(t, router, http.MethodPost, "/v1/simulate/clearing", map[string]any{"token": token, "amount": 0})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = serve(t, router, http.MethodGet, "/v1/transaction/approvals?transaction_token="+token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeBody[models.Page[models.Transaction]](t, rec)
	require.Len(t, page.Data, 1)
	assert.Equal(t, models.TransactionStatusSettling, page.Data[0].Status)
	assert.Equal(t, models.Cents(1250), page.Data[0].SettledAmount)

	rec = serve(t, router, http.MethodPost, "/v1/simulate/void", map[string]any{"token": token, "amount": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, router, http.MethodPost, "/v1/simulate/return", map[string]any{
		"descriptor": "refund",
		"pan":        card.PAN,
		"amount":     1250,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEqual(t, token, decodeBody[apispec.SimulateReturn200JSONResponse](t, rec).Token)
}

func TestRouter_Errors(t *testing.T) {
	tests := []struct {
		name       string
		validate   bool
		method     string
		target     string
		body       any
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "page size over maximum with contract",
			validate:   true,
			method:     http.MethodGet,
			target:     "/v1/card?page_size=5000",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "page size over maximum without contract",
			method:     http.MethodGet,
			target:     "/v1/card?page_size=5000",
			wantStatus: http.StatusBadRequest,
			wantMsg:    "page_size must be an integer between 1 and 1000",
		},
		{
			name:       "bad begin date",
			method:     http.MethodGet,
			target:     "/v1/transaction/all?begin=yesterday",
			wantStatus: http.StatusBadRequest,
			wantMsg:    "begin must be a YYYY-MM-DD date",
		},
		{
			name:       "unknown approval status",
			method:     http.MethodGet,
			target:     "/v1/transaction/pending",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown card on update",
			validate:   true,
			method:     http.MethodPut,
			target:     "/v1/card",
			body:       map[string]any{"card_token": "missing", "memo": "x"},
			wantStatus: http.StatusNotFound,
			wantMsg:    "card missing not found",
		},
		{
			name:       "invalid card type without contract",
			method:     http.MethodPost,
			target:     "/v1/card",
			body:       map[string]any{"type": "VIRTUAL"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "type must be one of: SINGLE_USE MERCHANT_LOCKED UNLOCKED",
		},
		{
			name:       "non luhn card number",
			method:     http.MethodPost,
			target:     "/v1/simulate/authorize",
			body:       map[string]any{"descriptor": "d", "pan": "4111111111111112", "amount": 1},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "pan is not a valid card number",
		},
		{
			name:       "unknown card number",
			validate:   true,
			method:     http.MethodPost,
			target:     "/v1/simulate/authorize",
			body:       map[string]any{"descriptor": "d", "pan": "4111111111111111", "amount": 1},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "no card with the given pan",
		},
		{
			name:       "unknown transaction",
			validate:   true,
			method:     http.MethodPost,
			target:     "/v1/simulate/void",
			body:       map[string]any{"token": "missing", "amount": 0},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed body",
			method:     http.MethodPost,
			target:     "/v1/simulate/clearing",
			body:       "not an object",
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid JSON body",
		},
		{
			name:       "non integer page",
			method:     http.MethodGet,
			target:     "/v1/card?page=two",
			wantStatus: http.StatusBadRequest,
			wantMsg:    "page has an invalid format",
		},
		{
			name:       "zero page without contract",
			method:     http.MethodGet,
			target:     "/v1/transaction/all?page=0",
			wantStatus: http.StatusBadRequest,
			wantMsg:    "page must be an integer of at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, tt.validate)

			rec := serve(t, router, tt.method, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			body := decodeBody[errorBody](t, rec)
			assert.NotEmpty(t, body.DebuggingRequestID)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Message)
			}
		})
	}
}

func TestRouter_EmptyStateLeavesCardUnchanged(t *testing.T) {
	router := newTestRouter(t, false)

	rec := serve(t, router, http.MethodPost, "/v1/card", map[string]any{"type": "UNLOCKED", "state": "PAUSED"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	card := decodeBody[models.Card](t, rec)

	rec = serve(t, router, http.MethodPut, "/v1/card", map[string]any{
		"card_token":           card.Token,
		"state":                "",
		"spend_limit_duration": "",
		"memo":                 "renamed",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeBody[models.Card](t, rec)
	assert.Equal(t, models.CardStatePaused, updated.State)
	assert.Equal(t, card.SpendLimitDuration, updated.SpendLimitDuration)
	assert.Equal(t, "renamed", updated.Memo)
}

func TestRouter_HugePageIsEmpty(t *testing.T) {
	for _, validate := range []bool{true, false} {
		router := newTestRouter(t, validate)
		rec := serve(t, router, http.MethodPost, "/v1/card", map[string]any{"type": "UNLOCKED"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		for _, target := range []string{
			"/v1/card?page=184467440737095518",
			"/v1/transaction/all?page=184467440737095518&page_size=1000",
		} {
			rec = serve(t, router, http.MethodGet, target, nil)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			page := decodeBody[map[string]any](t, rec)
			assert.Equal(t, []any{}, page["data"])
			assert.Equal(t, float64(184467440737095518), page["page"])
		}
	}
}

func TestRouter_Docs(t *testing.T) {
	router := newTestRouter(t, true)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "openapi")
}
