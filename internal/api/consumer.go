package api

import (
	"context"
	"net/http"

	"partner-dashboard/internal/models"
)

const consumerTransactionsRoute = "/partners/consumer-transactions"

// ConsumerTransactionsPage is one server-side page of token purchases made
// for end-customer meters.
type ConsumerTransactionsPage struct {
	Total        int                          `json:"total"`
	Pagination   models.Pagination            `json:"pagination" validate:"required"`
	Transactions []models.ConsumerTransaction `json:"transactions" validate:"dive"`
}

type consumerTransactionsResponse struct {
	Status  string                    `json:"status"`
	Message string                    `json:"message"`
	Data    *ConsumerTransactionsPage `json:"data" validate:"required"`
}

// GetConsumerTransactions fetches one page of consumer token purchases.
func (c *Client) GetConsumerTransactions(ctx context.Context, token string, page int) (*ConsumerTransactionsPage, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	var resp consumerTransactionsResponse
	if err := c.do(ctx, http.MethodGet, consumerTransactionsRoute, token, pageQuery(page), nil, &resp, "consumer transactions", "fetch consumer transactions"); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
