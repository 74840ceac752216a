package apispec

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
)

// AuthScheme is the prefix of the Authorization header value
const AuthScheme = "api-key"

// ErrUnknownOperation indicates the request matches no operation in the contract
var ErrUnknownOperation = errors.New("no matching operation")

// Validator checks requests against the embedded contract
type Validator struct {
	router routers.Router
}

// NewValidator loads the contract and builds a router over its operations
func NewValidator(ctx context.Context) (*Validator, error) {
	doc, err := Load(ctx)
	if err != nil {
		return nil, err
	}

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build openapi router: %w", err)
	}

	return &Validator{router: router}, nil
}

// ValidateRequest checks path, query, headers, security and body of req.
// The body is restored so the request can still be served afterwards.
func (v *Validator) ValidateRequest(req *http.Request) error {
	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s", ErrUnknownOperation, req.Method, req.URL.Path)
	}

	input := &openapi3filter.RequestValidationInput{
		Request:    req,
		PathParams: pathParams,
		Route:      route,
		Options: &openapi3filter.Options{
			AuthenticationFunc: authenticate,
		},
	}

	return openapi3filter.ValidateRequest(req.Context(), input)
}

// IsSecurityError reports whether err came from the security requirements check
func IsSecurityError(err error) bool {
	var secErr *openapi3filter.SecurityRequirementsError
	return errors.As(err, &secErr)
}

func authenticate(_ context.Context, input *openapi3filter.AuthenticationInput) error {
	header := input.RequestValidationInput.Request.Header.Get(input.SecurityScheme.Name)
	scheme, _, _ := strings.Cut(strings.TrimSpace(header), " ")
	if scheme != AuthScheme {
		return fmt.Errorf("%s header must use the %q scheme", input.SecurityScheme.Name, AuthScheme)
	}
	return nil
}
