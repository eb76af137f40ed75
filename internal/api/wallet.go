package api

import (
	"context"
	"net/http"

	"partner-dashboard/internal/models"
)

const walletTransactionsRoute = "/partners/wallet-transactions"

// WalletTransactionsPage is one server-side page of the wallet ledger.
type WalletTransactionsPage struct {
	Total        int                        `json:"total"`
	Pagination   models.Pagination          `json:"pagination" validate:"required"`
	Transactions []models.WalletTransaction `json:"transactions" validate:"dive"`
}

type walletTransactionsResponse struct {
	Status  string                  `json:"status"`
	Message string                  `json:"message"`
	Data    *WalletTransactionsPage `json:"data" validate:"required"`
}

// GetWalletTransactions fetches one page of the partner's wallet ledger.
func (c *Client) GetWalletTransactions(ctx context.Context, token string, page int) (*WalletTransactionsPage, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	var resp walletTransactionsResponse
	if err := c.do(ctx, http.MethodGet, walletTransactionsRoute, token, pageQuery(page), nil, &resp, "wallet transactions", "fetch wallet transactions"); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
