package voxa

import (
	"context"
	"net/http"
)

// AccountService reads account and balance information.
type AccountService struct {
	client *Client
}

// Account is the caller's account state.
type Account struct {
	Email        string `json:"email"`
	Plan         string `json:"plan"`
	BalanceCents int64  `json:"balance_cents"`
}

// Get fetches the current account.
func (s *AccountService) Get(ctx context.Context) (*Account, error) {
	var a Account
	err := s.client.unaryInto(ctx, &request{
		op:     "account.get",
		method: http.MethodGet,
		path:   "/v1/account",
	}, &a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
