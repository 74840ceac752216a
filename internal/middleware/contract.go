package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/benx421/privacy-go/internal/apispec"
)

// RequestValidator checks an incoming request against the API contract
type RequestValidator interface {
	ValidateRequest(req *http.Request) error
}

// ContractValidation rejects requests that violate the API contract.
// Requests for routes outside the contract are passed through untouched.
func ContractValidation(validator RequestValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := validator.ValidateRequest(r)
			switch {
			case err == nil, errors.Is(err, apispec.ErrUnknownOperation):
				next.ServeHTTP(w, r)
			case apispec.IsSecurityError(err):
				WriteError(w, http.StatusUnauthorized, "Please provide API key in Authorization header")
			default:
				logger.Debug("request violates contract",
					"path", r.URL.Path,
					"method", r.Method,
					"error", err,
				)
				WriteError(w, http.StatusBadRequest, err.Error())
			}
		})
	}
}
