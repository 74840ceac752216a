package sandbox

import "github.com/benx421/privacy-go/internal/apispec"

// Service inputs decoded from the validated request bodies

type createCardRequest struct {
	Type               string
	Memo               string
	SpendLimitDuration string
	State              string
	SpendLimit         int64
}

type updateCardRequest struct {
	CardToken          string
	State              *string
	Memo               *string
	SpendLimitDuration *string
	SpendLimit         *int64
}

func newCreateCardRequest(body *apispec.CreateCardRequest) createCardRequest {
	req := createCardRequest{Type: string(body.Type)}
	if body.Memo != nil {
		req.Memo = *body.Memo
	}
	if body.SpendLimitDuration != nil {
		req.SpendLimitDuration = string(*body.SpendLimitDuration)
	}
	if body.State != nil {
		req.State = string(*body.State)
	}
	if body.SpendLimit != nil {
		req.SpendLimit = *body.SpendLimit
	}
	return req
}

func newUpdateCardRequest(body *apispec.UpdateCardRequest) updateCardRequest {
	req := updateCardRequest{
		CardToken:  body.CardToken,
		Memo:       body.Memo,
		SpendLimit: body.SpendLimit,
	}
	// An empty state or duration leaves the card's value unchanged.
	if body.State != nil && *body.State != "" {
		state := string(*body.State)
		req.State = &state
	}
	if body.SpendLimitDuration != nil && *body.SpendLimitDuration != "" {
		duration := string(*body.SpendLimitDuration)
		req.SpendLimitDuration = &duration
	}
	return req
}
