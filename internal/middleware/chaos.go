// Package middleware provides HTTP middleware components for the sandbox API.
package middleware

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/benx421/privacy-go/internal/config"
)

const apiPathPrefix = "/v1/"

// isAPIPath reports whether path belongs to the authenticated card API.
// Health and documentation routes are served without key or faults.
func isAPIPath(path string) bool {
	return strings.HasPrefix(path, apiPathPrefix)
}

// FailureInjection delays API requests by a random latency in the configured
// window and fails a FailureRate share of them with a 500.
func FailureInjection(cfg *config.SandboxConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isAPIPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			if err := sleepContext(r.Context(), latency(cfg.MinLatencyMS, cfg.MaxLatencyMS)); err != nil {
				logger.Debug("request canceled during injected latency",
					"path", r.URL.Path,
					"error", err,
				)
				return
			}

			if shouldInjectFailure(cfg.FailureRate) {
				logger.Debug("injecting random failure",
					"path", r.URL.Path,
					"method", r.Method,
				)
				WriteError(w, http.StatusInternalServerError, "random failure injection")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// latency picks a duration in [minMS, maxMS). A window that is empty or
// inverted yields minMS.
func latency(minMS, maxMS int) time.Duration {
	if minMS <= 0 && maxMS <= 0 {
		return 0
	}

	base := time.Duration(max(minMS, 0)) * time.Millisecond
	spread := maxMS - minMS
	if spread <= 0 {
		return base
	}

	offset, err := rand.Int(rand.Reader, big.NewInt(int64(spread)))
	if err != nil {
		return base
	}
	return base + time.Duration(offset.Int64())*time.Millisecond
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func shouldInjectFailure(failureRate float64) bool {
	switch {
	case failureRate <= 0:
		return false
	case failureRate >= 1:
		return true
	}

	const precision = 1_000_000
	n, err := rand.Int(rand.Reader, big.NewInt(precision))
	if err != nil {
		return false
	}
	return n.Int64() < int64(failureRate*precision)
}
