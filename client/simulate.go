package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/benx421/privacy-go/models"
)

// The simulate endpoints only exist in the sandbox environment.

// SimulateAuthorization handles POST /v1/simulate/authorize. It returns the
// token of the new transaction, used later to void or clear it.
func (c *Client) SimulateAuthorization(ctx context.Context, descriptor, pan string, amount models.Cents) (string, error) {
	return c.simulateCard(ctx, "/v1/simulate/authorize", descriptor, pan, amount)
}

// SimulateVoid handles POST /v1/simulate/void. It voids up to amount of a
// pending authorization.
func (c *Client) SimulateVoid(ctx context.Context, token string, amount models.Cents) error {
	return c.simulateTransaction(ctx, "/v1/simulate/void", token, amount)
}

// SimulateClearing handles POST /v1/simulate/clearing. After clearing the
// transaction is no longer pending.
func (c *Client) SimulateClearing(ctx context.Context, token string, amount models.Cents) error {
	return c.simulateTransaction(ctx, "/v1/simulate/clearing", token, amount)
}

// SimulateReturn handles POST /v1/simulate/return. Returns settle
// immediately and never enter the pending state.
func (c *Client) SimulateReturn(ctx context.Context, descriptor, pan string, amount models.Cents) (string, error) {
	return c.simulateCard(ctx, "/v1/simulate/return", descriptor, pan, amount)
}

func (c *Client) simulateCard(ctx context.Context, path, descriptor, pan string, amount models.Cents) (string, error) {
	doc, err := c.doDocument(ctx, http.MethodPost, path, nil, simulateCardRequest{
		Descriptor: descriptor,
		PAN:        pan,
		Amount:     amount,
	})
	if err != nil {
		return "", err
	}

	token, ok := doc["token"].(string)
	if !ok {
		return "", fmt.Errorf("%s %s: %w", http.MethodPost, path, &models.DecodeError{
			Field:    "token",
			Expected: "string",
			Got:      models.JSONKind(doc["token"]),
		})
	}
	return token, nil
}

func (c *Client) simulateTransaction(ctx context.Context, path, token string, amount models.Cents) error {
	_, err := c.do(ctx, http.MethodPost, path, nil, simulateTransactionRequest{
		Token:  token,
		Amount: amount,
	})
	return err
}
