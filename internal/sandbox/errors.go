package sandbox

import (
	"fmt"
	"net/http"
)

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInvalidRequest      = "invalid_request"
	ErrCodeInvalidCard         = "invalid_card"
	ErrCodeInvalidAmount       = "invalid_amount"
	ErrCodeCardNotFound        = "card_not_found"
	ErrCodeCardClosed          = "card_closed"
	ErrCodeTransactionNotFound = "transaction_not_found"
	ErrCodeTransactionState    = "invalid_transaction_state"
	ErrCodeInternalError       = "internal_error"
)

// HTTPStatus maps an error code to the status the API answers with
func HTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequest, ErrCodeInvalidCard, ErrCodeInvalidAmount,
		ErrCodeCardClosed, ErrCodeTransactionState:
		return http.StatusBadRequest
	case ErrCodeCardNotFound, ErrCodeTransactionNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func newError(code, format string, args ...any) *ServiceError {
	return &ServiceError{Code: code, Message: fmt.Sprintf(format, args...)}
}
