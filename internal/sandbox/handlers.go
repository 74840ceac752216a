package sandbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/benx421/privacy-go/internal/apispec"
	"github.com/benx421/privacy-go/internal/middleware"
	"github.com/benx421/privacy-go/models"
)

const dateLayout = "2006-01-02"

// Handler serves the sandbox endpoints on top of a Service
type Handler struct {
	service   *Service
	validator *RequestValidator
	logger    *slog.Logger
}

var _ apispec.StrictServerInterface = (*Handler)(nil)

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{
		service:   service,
		validator: NewRequestValidator(),
		logger:    logger,
	}
}

// RegisterRoutes mounts every contract operation on mux. Parameter binding
// and body decoding failures become invalid_request errors.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	strict := apispec.NewStrictHandlerWithOptions(h, nil, apispec.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  h.writeBodyError,
		ResponseErrorHandlerFunc: h.writeError,
	})
	apispec.HandlerWithOptions(strict, apispec.StdHTTPServerOptions{
		BaseRouter:       mux,
		ErrorHandlerFunc: h.writeParamError,
	})
}

// GetHealth handles GET /health
func (h *Handler) GetHealth(_ context.Context, _ apispec.GetHealthRequestObject) (apispec.GetHealthResponseObject, error) {
	return apispec.GetHealth200JSONResponse{Status: "healthy"}, nil
}

// ListCards handles GET /v1/card
func (h *Handler) ListCards(ctx context.Context, request apispec.ListCardsRequestObject) (apispec.ListCardsResponseObject, error) {
	p := request.Params
	filter, err := newListFilter(p.Page, p.PageSize, p.Begin, p.End, p.CardToken)
	if err != nil {
		return nil, err
	}

	return apispec.ListCards200JSONResponse(h.service.ListCards(ctx, filter)), nil
}

// CreateCard handles POST /v1/card
func (h *Handler) CreateCard(ctx context.Context, request apispec.CreateCardRequestObject) (apispec.CreateCardResponseObject, error) {
	if err := h.validator.Validate(request.Body); err != nil {
		return nil, err
	}

	card, err := h.service.CreateCard(ctx, newCreateCardRequest(request.Body))
	if err != nil {
		return nil, err
	}

	return apispec.CreateCard200JSONResponse(card), nil
}

// UpdateCard handles PUT /v1/card
func (h *Handler) UpdateCard(ctx context.Context, request apispec.UpdateCardRequestObject) (apispec.UpdateCardResponseObject, error) {
	if err := h.validator.Validate(request.Body); err != nil {
		return nil, err
	}

	card, err := h.service.UpdateCard(ctx, newUpdateCardRequest(request.Body))
	if err != nil {
		return nil, err
	}

	return apispec.UpdateCard200JSONResponse(card), nil
}

// ListTransactions handles GET /v1/transaction/{approval_status}
func (h *Handler) ListTransactions(ctx context.Context, request apispec.ListTransactionsRequestObject) (apispec.ListTransactionsResponseObject, error) {
	status := models.ApprovalStatus(request.ApprovalStatus)
	if !status.Valid() {
		return nil, newError(ErrCodeInvalidRequest, "approval_status must be one of: approvals, declines, all")
	}

	p := request.Params
	filter, err := newListFilter(p.Page, p.PageSize, p.Begin, p.End, p.CardToken)
	if err != nil {
		return nil, err
	}
	if p.TransactionToken != nil {
		filter.TransactionToken = *p.TransactionToken
	}

	return apispec.ListTransactions200JSONResponse(h.service.ListTransactions(ctx, status, filter)), nil
}

// SimulateAuthorize handles POST /v1/simulate/authorize
func (h *Handler) SimulateAuthorize(ctx context.Context, request apispec.SimulateAuthorizeRequestObject) (apispec.SimulateAuthorizeResponseObject, error) {
	body := request.Body
	if err := h.validator.Validate(body); err != nil {
		return nil, err
	}

	txn, err := h.service.Authorize(ctx, body.Descriptor, body.Pan, models.Cents(body.Amount))
	if err != nil {
		return nil, err
	}

	return apispec.SimulateAuthorize200JSONResponse{Token: txn.Token}, nil
}

// SimulateVoid handles POST /v1/simulate/void
func (h *Handler) SimulateVoid(ctx context.Context, request apispec.SimulateVoidRequestObject) (apispec.SimulateVoidResponseObject, error) {
	body := request.Body
	if err := h.validator.Validate(body); err != nil {
		return nil, err
	}

	if err := h.service.Void(ctx, body.Token, models.Cents(body.Amount)); err != nil {
		return nil, err
	}

	return apispec.SimulateVoid200JSONResponse{}, nil
}

// SimulateClearing handles POST /v1/simulate/clearing
func (h *Handler) SimulateClearing(ctx context.Context, request apispec.SimulateClearingRequestObject) (apispec.SimulateClearingResponseObject, error) {
	body := request.Body
	if err := h.validator.Validate(body); err != nil {
		return nil, err
	}

	if err := h.service.Clearing(ctx, body.Token, models.Cents(body.Amount)); err != nil {
		return nil, err
	}

	return apispec.SimulateClearing200JSONResponse{}, nil
}

// SimulateReturn handles POST /v1/simulate/return
func (h *Handler) SimulateReturn(ctx context.Context, request apispec.SimulateReturnRequestObject) (apispec.SimulateReturnResponseObject, error) {
	body := request.Body
	if err := h.validator.Validate(body); err != nil {
		return nil, err
	}

	txn, err := h.service.Return(ctx, body.Descriptor, body.Pan, models.Cents(body.Amount))
	if err != nil {
		return nil, err
	}

	return apispec.SimulateReturn200JSONResponse{Token: txn.Token}, nil
}

func (h *Handler) writeBodyError(w http.ResponseWriter, r *http.Request, err error) {
	h.writeError(w, r, &ServiceError{Code: ErrCodeInvalidRequest, Message: "invalid JSON body", Err: err})
}

func (h *Handler) writeParamError(w http.ResponseWriter, r *http.Request, err error) {
	var formatErr *apispec.InvalidParamFormatError
	if errors.As(err, &formatErr) {
		h.writeError(w, r, &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: fmt.Sprintf("%s has an invalid format", formatErr.ParamName),
			Err:     err,
		})
		return
	}
	h.writeError(w, r, &ServiceError{Code: ErrCodeInvalidRequest, Message: "invalid parameters", Err: err})
}

// writeError maps service errors to appropriate HTTP responses
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		svcErr = &ServiceError{Code: ErrCodeInternalError, Message: "internal error", Err: err}
	}

	status := HTTPStatus(svcErr.Code)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}

	middleware.WriteError(w, status, svcErr.Error())
}

func newListFilter(page, pageSize *int, begin, end, cardToken *string) (ListFilter, error) {
	filter := ListFilter{Page: 1, PageSize: defaultPageSize}

	if page != nil {
		if *page < 1 {
			return ListFilter{}, newError(ErrCodeInvalidRequest, "page must be an integer of at least 1")
		}
		filter.Page = *page
	}
	if pageSize != nil {
		if *pageSize < 1 || *pageSize > maxPageSize {
			return ListFilter{}, newError(ErrCodeInvalidRequest, "page_size must be an integer between 1 and %d", maxPageSize)
		}
		filter.PageSize = *pageSize
	}

	var err error
	if filter.Dates.begin, err = dateParam("begin", begin); err != nil {
		return ListFilter{}, err
	}
	if filter.Dates.end, err = dateParam("end", end); err != nil {
		return ListFilter{}, err
	}
	if cardToken != nil {
		filter.CardToken = *cardToken
	}

	return filter, nil
}

func dateParam(name string, raw *string) (time.Time, error) {
	if raw == nil || *raw == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return time.Time{}, newError(ErrCodeInvalidRequest, "%s must be a YYYY-MM-DD date", name)
	}
	return t, nil
}
