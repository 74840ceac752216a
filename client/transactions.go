package client

import (
	"context"
	"net/http"

	"github.com/benx421/privacy-go/models"
)

// ListTransactions handles GET /v1/transaction/{approval_status}.
// status must be approvals, declines or all. params may be nil.
func (c *Client) ListTransactions(
	ctx context.Context,
	status models.ApprovalStatus,
	params *ListTransactionsParams,
) (models.Document, error) {
	if err := checkEnum("approval_status", status, models.ApprovalStatusValues()); err != nil {
		return nil, err
	}

	segment, err := pathParam("approval_status", string(status))
	if err != nil {
		return nil, err
	}

	q := newQueryBuilder()
	if params != nil {
		addOptional(q, "page", params.Page)
		addOptional(q, "page_size", params.PageSize)
		addOptional(q, "begin", params.Begin)
		addOptional(q, "end", params.End)
		addOptional(q, "card_token", params.CardToken)
		addOptional(q, "transaction_token", params.TransactionToken)
	}
	if q.err != nil {
		return nil, q.err
	}

	return c.doDocument(ctx, http.MethodGet, "/v1/transaction/"+segment, q.values, nil)
}
