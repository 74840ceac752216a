package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/benx421/privacy-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method      string
	Path        string
	RawQuery    string
	Auth        string
	Accept      string
	ContentType string
	Body        []byte
}

type recordingServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newRecordingServer(t *testing.T, status int, response string) *recordingServer {
	t.Helper()

	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body) //nolint:errcheck // test helper
		rs.mu.Lock()
		rs.requests = append(rs.requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.EscapedPath(),
			RawQuery:    r.URL.RawQuery,
			Auth:        r.Header.Get("Authorization"),
			Accept:      r.Header.Get("Accept"),
			ContentType: r.Header.Get("Content-Type"),
			Body:        body,
		})
		rs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response)) //nolint:errcheck // test helper
	}))
	t.Cleanup(rs.Close)
	return rs
}

func (rs *recordingServer) recorded() []recordedRequest {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return append([]recordedRequest(nil), rs.requests...)
}

func (rs *recordingServer) only(t *testing.T) recordedRequest {
	t.Helper()
	reqs := rs.recorded()
	require.Len(t, reqs, 1)
	return reqs[0]
}

func newTestClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()
	c, err := New("test-key", baseURL, opts...)
	require.NoError(t, err)
	return c
}

func bodyMap(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m))
	return m
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "https", baseURL: "https://sandbox.privacy.com"},
		{name: "trailing slash", baseURL: "https://api.privacy.com/"},
		{name: "missing scheme", baseURL: "sandbox.privacy.com", wantErr: true},
		{name: "empty", baseURL: "", wantErr: true},
		{name: "unparsable", baseURL: "http://[::1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New("key", tt.baseURL)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.NotContains(t, c.baseURL[len(c.baseURL)-1:], "/")
		})
	}
}

func TestClient_Headers(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{"data":[]}`)
	c := newTestClient(t, srv.URL+"/")

	_, err := c.ListCards(context.Background(), nil)
	require.NoError(t, err)

	req := srv.only(t)
	assert.Equal(t, "api-key test-key", req.Auth)
	assert.Equal(t, "application/json", req.Accept)
	assert.Empty(t, req.ContentType)
	assert.Equal(t, "/v1/card", req.Path)
	assert.Empty(t, req.RawQuery)
}

func TestClient_RequestEditor(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{"data":[]}`)

	var seen string
	c := newTestClient(t, srv.URL, WithRequestEditorFn(func(_ context.Context, req *http.Request) error {
		seen = req.Header.Get("Authorization")
		req.Header.Set("Authorization", "api-key edited")
		return nil
	}))

	_, err := c.ListCards(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "api-key test-key", seen)
	assert.Equal(t, "api-key edited", srv.only(t).Auth)

	failing := newTestClient(t, srv.URL, WithRequestEditorFn(func(context.Context, *http.Request) error {
		return errors.New("boom")
	}))
	_, err = failing.ListCards(context.Background(), nil)
	assert.ErrorContains(t, err, "boom")
	assert.Len(t, srv.recorded(), 1)
}

func TestClient_InvalidArgumentsMakeNoCalls(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{}`)
	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	tests := []struct {
		name  string
		field string
		call  func() error
	}{
		{
			name:  "unknown approval status",
			field: "approval_status",
			call: func() error {
				_, err := c.ListTransactions(ctx, "pending", nil)
				return err
			},
		},
		{
			name:  "empty approval status",
			field: "approval_status",
			call: func() error {
				_, err := c.ListTransactions(ctx, "", nil)
				return err
			},
		},
		{
			name:  "unknown card type",
			field: "type",
			call: func() error {
				_, err := c.CreateCard(ctx, CreateCardParams{Type: "VIRTUAL"})
				return err
			},
		},
		{
			name:  "missing card type",
			field: "type",
			call: func() error {
				_, err := c.CreateCard(ctx, CreateCardParams{})
				return err
			},
		},
		{
			name:  "closed state on create",
			field: "state",
			call: func() error {
				_, err := c.CreateCard(ctx, CreateCardParams{
					Type:  models.CardTypeSingleUse,
					State: Ptr(models.CardStateClosed),
				})
				return err
			},
		},
		{
			name:  "unknown duration on create",
			field: "spend_limit_duration",
			call: func() error {
				_, err := c.CreateCard(ctx, CreateCardParams{
					Type:               models.CardTypeSingleUse,
					SpendLimitDuration: Ptr(models.SpendLimitDuration("WEEKLY")),
				})
				return err
			},
		},
		{
			name:  "empty duration on create",
			field: "spend_limit_duration",
			call: func() error {
				_, err := c.CreateCard(ctx, CreateCardParams{
					Type:               models.CardTypeSingleUse,
					SpendLimitDuration: Ptr(models.SpendLimitDuration("")),
				})
				return err
			},
		},
		{
			name:  "empty state on create",
			field: "state",
			call: func() error {
				_, err := c.CreateCard(ctx, CreateCardParams{
					Type:  models.CardTypeSingleUse,
					State: Ptr(models.CardState("")),
				})
				return err
			},
		},
		{
			name:  "empty state on update",
			field: "state",
			call: func() error {
				_, err := c.UpdateCard(ctx, "tok", UpdateCardParams{State: Ptr(models.CardState(""))})
				return err
			},
		},
		{
			name:  "unknown state on update",
			field: "state",
			call: func() error {
				_, err := c.UpdateCard(ctx, "tok", UpdateCardParams{State: Ptr(models.CardState("FROZEN"))})
				return err
			},
		},
		{
			name:  "unknown duration on update",
			field: "spend_limit_duration",
			call: func() error {
				_, err := c.UpdateCard(ctx, "tok", UpdateCardParams{
					SpendLimitDuration: Ptr(models.SpendLimitDuration("DAILY")),
				})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.ErrorIs(t, err, ErrInvalidArgument)

			var argErr *InvalidArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.field, argErr.Field)
			assert.NotEmpty(t, argErr.Allowed)
		})
	}

	assert.Empty(t, srv.recorded())
}

func TestInvalidArgumentError_Error(t *testing.T) {
	err := &InvalidArgumentError{Field: "state", Value: "CLOSED", Allowed: []string{"OPEN", "PAUSED"}}
	assert.Equal(t, `invalid state "CLOSED": must be one of OPEN, PAUSED`, err.Error())
}

func TestClient_CreateCardBody(t *testing.T) {
	tests := []struct {
		name   string
		params CreateCardParams
		want   map[string]any
	}{
		{
			name:   "type only",
			params: CreateCardParams{Type: models.CardTypeSingleUse},
			want:   map[string]any{"type": "SINGLE_USE"},
		},
		{
			name: "every field",
			params: CreateCardParams{
				Type:               models.CardTypeMerchantLocked,
				Memo:               Ptr("netflix"),
				SpendLimit:         Ptr(models.Cents(1599)),
				SpendLimitDuration: Ptr(models.SpendLimitMonthly),
				State:              Ptr(models.CardStatePaused),
			},
			want: map[string]any{
				"type":                 "MERCHANT_LOCKED",
				"memo":                 "netflix",
				"spend_limit":          float64(1599),
				"spend_limit_duration": "MONTHLY",
				"state":                "PAUSED",
			},
		},
		{
			name: "given but empty values are omitted",
			params: CreateCardParams{
				Type:       models.CardTypeUnlocked,
				Memo:       Ptr(""),
				SpendLimit: Ptr(models.Cents(0)),
			},
			want: map[string]any{"type": "UNLOCKED"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newRecordingServer(t, http.StatusOK, `{"token":"card"}`)
			c := newTestClient(t, srv.URL)

			doc, err := c.CreateCard(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, "card", doc["token"])

			req := srv.only(t)
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/v1/card", req.Path)
			assert.Equal(t, "application/json", req.ContentType)
			assert.Equal(t, tt.want, bodyMap(t, req.Body))
		})
	}
}

func TestClient_UpdateCardBody(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{"token":"tok"}`)
	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	_, err := c.UpdateCard(ctx, "tok", UpdateCardParams{})
	require.NoError(t, err)

	_, err = c.UpdateCard(ctx, "tok", UpdateCardParams{
		State:              Ptr(models.CardStateClosed),
		Memo:               Ptr("done"),
		SpendLimit:         Ptr(models.Cents(10)),
		SpendLimitDuration: Ptr(models.SpendLimitForever),
	})
	require.NoError(t, err)

	reqs := srv.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, http.MethodPut, reqs[0].Method)
	assert.Equal(t, map[string]any{"card_token": "tok"}, bodyMap(t, reqs[0].Body))
	assert.Equal(t, map[string]any{
		"card_token":           "tok",
		"state":                "CLOSED",
		"memo":                 "done",
		"spend_limit":          float64(10),
		"spend_limit_duration": "FOREVER",
	}, bodyMap(t, reqs[1].Body))
}

func TestClient_ListQueries(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{"data":[],"page":1}`)
	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	_, err := c.ListCards(ctx, &ListCardsParams{
		Page:      Ptr(2),
		PageSize:  Ptr(25),
		Begin:     Ptr("2024-01-01"),
		CardToken: Ptr("a b&c"),
	})
	require.NoError(t, err)

	_, err = c.ListTransactions(ctx, models.ApprovalStatusAll, &ListTransactionsParams{
		End:              Ptr("2024-02-01"),
		TransactionToken: Ptr("txn"),
	})
	require.NoError(t, err)

	_, err = c.ListTransactions(ctx, models.ApprovalStatusDeclines, &ListTransactionsParams{})
	require.NoError(t, err)

	reqs := srv.recorded()
	require.Len(t, reqs, 3)

	assert.Equal(t, "/v1/card", reqs[0].Path)
	assert.Equal(t, "begin=2024-01-01&card_token=a+b%26c&page=2&page_size=25", reqs[0].RawQuery)

	assert.Equal(t, "/v1/transaction/all", reqs[1].Path)
	assert.Equal(t, "end=2024-02-01&transaction_token=txn", reqs[1].RawQuery)

	assert.Equal(t, "/v1/transaction/declines", reqs[2].Path)
	assert.Empty(t, reqs[2].RawQuery)
	assert.Empty(t, reqs[2].Body)
}

func TestClient_HTTPErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"Invalid API key"}`, wantMsg: "Invalid API key"},
		{name: "not found", status: http.StatusNotFound, body: `{"message":"card not found","debugging_request_id":"x"}`, wantMsg: "card not found"},
		{name: "server error with html body", status: http.StatusBadGateway, body: `<html>bad gateway</html>`},
		{name: "redirect", status: http.StatusFound, body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newRecordingServer(t, tt.status, tt.body)
			c := newTestClient(t, srv.URL)

			doc, err := c.ListTransactions(context.Background(), models.ApprovalStatusAll, nil)
			require.Error(t, err)
			assert.Nil(t, doc)

			var httpErr *HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, http.MethodGet, httpErr.Method)
			assert.Equal(t, "/v1/transaction/all", httpErr.Path)
			assert.Equal(t, tt.body, string(httpErr.Body))
			assert.Equal(t, tt.wantMsg, httpErr.Message())
			assert.NotErrorIs(t, err, models.ErrTypeMismatch)
		})
	}
}

func TestClient_HTTPErrorsOnEveryOperation(t *testing.T) {
	ctx := context.Background()
	const pan = "4111111111111111"

	ops := []struct {
		name   string
		method string
		path   string
		call   func(*Client) (any, error)
	}{
		{
			name:   "list cards",
			method: http.MethodGet,
			path:   "/v1/card",
			call:   func(c *Client) (any, error) { return c.ListCards(ctx, nil) },
		},
		{
			name:   "create card",
			method: http.MethodPost,
			path:   "/v1/card",
			call: func(c *Client) (any, error) {
				return c.CreateCard(ctx, CreateCardParams{Type: models.CardTypeSingleUse})
			},
		},
		{
			name:   "update card",
			method: http.MethodPut,
			path:   "/v1/card",
			call: func(c *Client) (any, error) {
				return c.UpdateCard(ctx, "card", UpdateCardParams{Memo: Ptr("x")})
			},
		},
		{
			name:   "list transactions",
			method: http.MethodGet,
			path:   "/v1/transaction/declines",
			call: func(c *Client) (any, error) {
				return c.ListTransactions(ctx, models.ApprovalStatusDeclines, nil)
			},
		},
		{
			name:   "simulate authorization",
			method: http.MethodPost,
			path:   "/v1/simulate/authorize",
			call:   func(c *Client) (any, error) { return c.SimulateAuthorization(ctx, "coffee", pan, 1) },
		},
		{
			name:   "simulate void",
			method: http.MethodPost,
			path:   "/v1/simulate/void",
			call:   func(c *Client) (any, error) { return nil, c.SimulateVoid(ctx, "t", 1) },
		},
		{
			name:   "simulate clearing",
			method: http.MethodPost,
			path:   "/v1/simulate/clearing",
			call:   func(c *Client) (any, error) { return nil, c.SimulateClearing(ctx, "t", 0) },
		},
		{
			name:   "simulate return",
			method: http.MethodPost,
			path:   "/v1/simulate/return",
			call:   func(c *Client) (any, error) { return c.SimulateReturn(ctx, "refund", pan, 1) },
		},
	}

	// Bodies that would decode successfully on a 2xx response.
	const successShaped = `{"token":"t","data":[],"page":1,"total_entries":0,"total_pages":0}`

	for _, op := range ops {
		for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError} {
			t.Run(fmt.Sprintf("%s %d", op.name, status), func(t *testing.T) {
				srv := newRecordingServer(t, status, successShaped)
				c := newTestClient(t, srv.URL)

				result, err := op.call(c)
				require.Error(t, err)
				assert.NotErrorIs(t, err, models.ErrTypeMismatch)
				assert.Empty(t, result)

				var httpErr *HTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, status, httpErr.StatusCode)
				assert.Equal(t, op.method, httpErr.Method)
				assert.Equal(t, op.path, httpErr.Path)
				assert.Equal(t, successShaped, string(httpErr.Body))

				req := srv.only(t)
				assert.Equal(t, op.method, req.Method)
				assert.Equal(t, op.path, req.Path)
			})
		}
	}
}

func TestHTTPError_TruncatesBody(t *testing.T) {
	long := make([]byte, 2000)
	for i := range long {
		long[i] = 'x'
	}
	err := &HTTPError{Method: "GET", Path: "/v1/card", StatusCode: 500, Body: long}

	assert.Less(t, len(err.Error()), 600)
	assert.Contains(t, err.Error(), "status=500")
}

func TestClient_NonObjectResponse(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `[1,2,3]`)
	c := newTestClient(t, srv.URL)

	_, err := c.ListCards(context.Background(), nil)
	assert.ErrorIs(t, err, models.ErrTypeMismatch)
}

func TestClient_Simulations(t *testing.T) {
	ctx := context.Background()

	t.Run("authorization returns token", func(t *testing.T) {
		srv := newRecordingServer(t, http.StatusOK, `{"token":"txn-1"}`)
		c := newTestClient(t, srv.URL)

		token, err := c.SimulateAuthorization(ctx, "coffee", "4111111111111111", 450)
		require.NoError(t, err)
		assert.Equal(t, "txn-1", token)

		req := srv.only(t)
		assert.Equal(t, "/v1/simulate/authorize", req.Path)
		assert.Equal(t, map[string]any{
			"descriptor": "coffee",
			"pan":        "4111111111111111",
			"amount":     float64(450),
		}, bodyMap(t, req.Body))
	})

	t.Run("return returns token", func(t *testing.T) {
		srv := newRecordingServer(t, http.StatusOK, `{"token":"txn-2"}`)
		c := newTestClient(t, srv.URL)

		token, err := c.SimulateReturn(ctx, "refund", "4111111111111111", 0)
		require.NoError(t, err)
		assert.Equal(t, "txn-2", token)
		assert.Equal(t, float64(0), bodyMap(t, srv.only(t).Body)["amount"])
	})

	for _, tt := range []struct {
		name    string
		body    string
		wantGot string
	}{
		{name: "numeric token", body: `{"token":42}`, wantGot: "number"},
		{name: "null token", body: `{"token":null}`, wantGot: "null"},
		{name: "missing token", body: `{}`, wantGot: "null"},
		{name: "object token", body: `{"token":{"id":"t"}}`, wantGot: "object"},
		{name: "array token", body: `{"token":["t"]}`, wantGot: "array"},
		{name: "boolean token", body: `{"token":true}`, wantGot: "boolean"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			srv := newRecordingServer(t, http.StatusOK, tt.body)
			c := newTestClient(t, srv.URL)

			_, err := c.SimulateAuthorization(ctx, "coffee", "4111111111111111", 1)
			require.ErrorIs(t, err, models.ErrTypeMismatch)

			var decodeErr *models.DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, "token", decodeErr.Field)
			assert.Equal(t, "string", decodeErr.Expected)
			assert.Equal(t, tt.wantGot, decodeErr.Got)
		})
	}

	for _, tt := range []struct {
		name string
		path string
		call func(*Client) error
	}{
		{name: "void", path: "/v1/simulate/void", call: func(c *Client) error { return c.SimulateVoid(ctx, "txn", 100) }},
		{name: "clearing", path: "/v1/simulate/clearing", call: func(c *Client) error { return c.SimulateClearing(ctx, "txn", 0) }},
	} {
		t.Run(tt.name+" sends one request", func(t *testing.T) {
			srv := newRecordingServer(t, http.StatusOK, ``)
			c := newTestClient(t, srv.URL)

			require.NoError(t, tt.call(c))

			req := srv.only(t)
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, tt.path, req.Path)
			assert.Equal(t, "txn", bodyMap(t, req.Body)["token"])
		})
	}
}

func TestClient_ContextCanceled(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{}`)
	c := newTestClient(t, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListCards(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

type mockDoer struct {
	mock.Mock
}

func (m *mockDoer) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}

func TestClient_TransportError(t *testing.T) {
	doer := new(mockDoer)
	transportErr := errors.New("connection refused")
	doer.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "https://sandbox.example/v1/simulate/void"
	})).Return(nil, transportErr).Once()

	c := newTestClient(t, "https://sandbox.example", WithHTTPClient(doer))

	err := c.SimulateVoid(context.Background(), "txn", 1)
	require.ErrorIs(t, err, transportErr)
	assert.Contains(t, err.Error(), "POST /v1/simulate/void")
	doer.AssertExpectations(t)
}
