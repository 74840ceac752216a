package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/benx421/privacy-go/internal/apispec"
)

// APIKeyAuth rejects requests whose Authorization header is not
// "api-key <key>". An empty apiKey accepts any key.
func APIKeyAuth(apiKey string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isAPIPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			scheme, key, _ := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
			if scheme != apispec.AuthScheme {
				WriteError(w, http.StatusUnauthorized, "Please provide API key in Authorization header")
				return
			}

			if apiKey != "" && subtle.ConstantTimeCompare([]byte(strings.TrimSpace(key)), []byte(apiKey)) != 1 {
				logger.Debug("rejected api key",
					"path", r.URL.Path,
					"method", r.Method,
				)
				WriteError(w, http.StatusUnauthorized, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
