package client

import (
	"context"
	"net/http"

	"github.com/benx421/privacy-go/models"
)

const cardsPath = "/v1/card"

// ListCards handles GET /v1/card. params may be nil.
func (c *Client) ListCards(ctx context.Context, params *ListCardsParams) (models.Document, error) {
	q := newQueryBuilder()
	if params != nil {
		addOptional(q, "page", params.Page)
		addOptional(q, "page_size", params.PageSize)
		addOptional(q, "begin", params.Begin)
		addOptional(q, "end", params.End)
		addOptional(q, "card_token", params.CardToken)
	}
	if q.err != nil {
		return nil, q.err
	}

	return c.doDocument(ctx, http.MethodGet, cardsPath, q.values, nil)
}

// CreateCard handles POST /v1/card
func (c *Client) CreateCard(ctx context.Context, params CreateCardParams) (models.Document, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	body := createCardRequest{
		Type:               params.Type,
		Memo:               valueOf(params.Memo),
		SpendLimit:         valueOf(params.SpendLimit),
		SpendLimitDuration: valueOf(params.SpendLimitDuration),
		State:              valueOf(params.State),
	}

	return c.doDocument(ctx, http.MethodPost, cardsPath, nil, body)
}

// UpdateCard handles PUT /v1/card.
// Setting the state to CLOSED cannot be undone.
func (c *Client) UpdateCard(ctx context.Context, cardToken string, params UpdateCardParams) (models.Document, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	body := updateCardRequest{
		CardToken:          cardToken,
		State:              valueOf(params.State),
		Memo:               valueOf(params.Memo),
		SpendLimit:         valueOf(params.SpendLimit),
		SpendLimitDuration: valueOf(params.SpendLimitDuration),
	}

	return c.doDocument(ctx, http.MethodPut, cardsPath, nil, body)
}
