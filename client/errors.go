package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is matched by every *InvalidArgumentError
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError is returned before any network call when a parameter
// is outside the values the API accepts
type InvalidArgumentError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be one of %s", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// Unwrap returns ErrInvalidArgument for errors.Is support
func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// HTTPError is returned when the API answers with a non-2xx status.
// It is never retried.
type HTTPError struct {
	Method     string
	Path       string
	Body       []byte
	StatusCode int
}

const maxErrorBody = 512

func (e *HTTPError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	return fmt.Sprintf("%s %s: status=%d body=%s", e.Method, e.Path, e.StatusCode, body)
}

// Message returns the "message" field of a JSON error body, if there is one
func (e *HTTPError) Message() string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(e.Body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
