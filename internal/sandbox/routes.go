package sandbox

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/benx421/privacy-go/internal/apispec"
	"github.com/benx421/privacy-go/internal/config"
	"github.com/benx421/privacy-go/internal/middleware"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(ctx context.Context, cfg *config.SandboxConfig, logger *slog.Logger) (http.Handler, error) {
	service, err := NewService(cfg.BINPrefix, logger)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	apispec.RegisterDocsRoutes(mux)
	NewHandler(service, logger).RegisterRoutes(mux)

	var finalHandler http.Handler = mux

	if cfg.ValidateRequests {
		validator, err := apispec.NewValidator(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load api contract: %w", err)
		}
		finalHandler = middleware.ContractValidation(validator, logger)(finalHandler)
	}

	finalHandler = middleware.APIKeyAuth(cfg.APIKey, logger)(finalHandler)
	finalHandler = middleware.FailureInjection(cfg, logger)(finalHandler)

	return finalHandler, nil
}
