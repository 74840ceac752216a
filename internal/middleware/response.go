package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// ErrorResponse is the error body returned by every sandbox endpoint
type ErrorResponse struct {
	Message            string `json:"message"`
	DebuggingRequestID string `json:"debugging_request_id"`
}

// WriteError writes a JSON error body with a fresh debugging request id
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{
		Message:            message,
		DebuggingRequestID: uuid.NewString(),
	})
}

// WriteJSON writes v as a JSON response with the given status
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	//nolint:errcheck // Best effort response writing once headers are sent
	json.NewEncoder(w).Encode(v)
}
