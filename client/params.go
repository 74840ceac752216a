package client

import (
	"fmt"
	"net/url"
	"slices"

	"github.com/benx421/privacy-go/models"
	"github.com/oapi-codegen/runtime"
)

// ListCardsParams are the optional filters of ListCards. Nil fields are not sent.
type ListCardsParams struct {
	Page     *int
	PageSize *int
	// Begin and End are YYYY-MM-DD dates, passed through unchanged
	Begin     *string
	End       *string
	CardToken *string
}

// ListTransactionsParams are the optional filters of ListTransactions
type ListTransactionsParams struct {
	Page             *int
	PageSize         *int
	Begin            *string
	End              *string
	CardToken        *string
	TransactionToken *string
}

// CreateCardParams describes a new card. Type is required.
//
// A nil optional field is not provided. A provided field that is empty or
// zero is still validated but left out of the request body.
type CreateCardParams struct {
	Type               models.CardType
	Memo               *string
	SpendLimit         *models.Cents
	SpendLimitDuration *models.SpendLimitDuration
	State              *models.CardState
}

// UpdateCardParams lists the card properties to change. Nil fields are left unchanged.
type UpdateCardParams struct {
	State              *models.CardState
	Memo               *string
	SpendLimit         *models.Cents
	SpendLimitDuration *models.SpendLimitDuration
}

type createCardRequest struct {
	Type               models.CardType           `json:"type"`
	Memo               string                    `json:"memo,omitempty"`
	SpendLimitDuration models.SpendLimitDuration `json:"spend_limit_duration,omitempty"`
	State              models.CardState          `json:"state,omitempty"`
	SpendLimit         models.Cents              `json:"spend_limit,omitempty"`
}

type updateCardRequest struct {
	CardToken          string                    `json:"card_token"`
	State              models.CardState          `json:"state,omitempty"`
	Memo               string                    `json:"memo,omitempty"`
	SpendLimitDuration models.SpendLimitDuration `json:"spend_limit_duration,omitempty"`
	SpendLimit         models.Cents              `json:"spend_limit,omitempty"`
}

type simulateCardRequest struct {
	Descriptor string       `json:"descriptor"`
	PAN        string       `json:"pan"`
	Amount     models.Cents `json:"amount"`
}

type simulateTransactionRequest struct {
	Token  string       `json:"token"`
	Amount models.Cents `json:"amount"`
}

// States a card may be created in. CLOSED is only reachable through an update.
var createCardStates = []models.CardState{models.CardStateOpen, models.CardStatePaused}

type enum interface {
	~string
	Valid() bool
}

func checkEnum[T enum](field string, value T, allowed []T) error {
	if value.Valid() && slices.Contains(allowed, value) {
		return nil
	}

	names := make([]string, len(allowed))
	for i, v := range allowed {
		names[i] = string(v)
	}
	return &InvalidArgumentError{Field: field, Value: string(value), Allowed: names}
}

func checkOptionalEnum[T enum](field string, value *T, allowed []T) error {
	if value == nil {
		return nil
	}
	return checkEnum(field, *value, allowed)
}

func (p CreateCardParams) validate() error {
	if err := checkEnum("type", p.Type, models.CardTypeValues()); err != nil {
		return err
	}
	if err := checkOptionalEnum("spend_limit_duration", p.SpendLimitDuration, models.SpendLimitDurationValues()); err != nil {
		return err
	}
	return checkOptionalEnum("state", p.State, createCardStates)
}

func (p UpdateCardParams) validate() error {
	if err := checkOptionalEnum("state", p.State, models.CardStateValues()); err != nil {
		return err
	}
	return checkOptionalEnum("spend_limit_duration", p.SpendLimitDuration, models.SpendLimitDurationValues())
}

// queryBuilder encodes query parameters in OpenAPI form style and keeps the first error
type queryBuilder struct {
	values url.Values
	err    error
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{values: url.Values{}}
}

func (q *queryBuilder) add(name string, value any) {
	if q.err != nil {
		return
	}

	frag, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
	if err != nil {
		q.err = fmt.Errorf("encoding query parameter %s: %w", name, err)
		return
	}
	parsed, err := url.ParseQuery(frag)
	if err != nil {
		q.err = fmt.Errorf("encoding query parameter %s: %w", name, err)
		return
	}
	for k, vs := range parsed {
		for _, v := range vs {
			q.values.Add(k, v)
		}
	}
}

func addOptional[T any](q *queryBuilder, name string, value *T) {
	if value != nil {
		q.add(name, *value)
	}
}

func pathParam(name, value string) (string, error) {
	styled, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
	if err != nil {
		return "", fmt.Errorf("encoding path parameter %s: %w", name, err)
	}
	return styled, nil
}
