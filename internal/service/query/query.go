// Package query is the read half of the Public API (C7).
package query

import (
	"context"
	"strings"

	"github.com/gabrielBlankenburg/exbanking-go/internal/gateway"
	"github.com/gabrielBlankenburg/exbanking-go/internal/mmodel"
	"github.com/gabrielBlankenburg/exbanking-go/internal/money"
)

// BalanceReader is the subset of *gateway.Gateway GetBalance depends on.
// Narrowed to an interface so it can be swapped for a generated mock in
// tests.
type BalanceReader interface {
	Balance(ctx context.Context, user, currency string) gateway.Result
}

// UseCase is the read-side Public API.
type UseCase struct {
	Gateway BalanceReader
}

// GetBalance returns user's balance in currency, 0 if never touched.
func (uc *UseCase) GetBalance(ctx context.Context, user, currency string) (float64, error) {
	if strings.TrimSpace(user) == "" || strings.TrimSpace(currency) == "" {
		return 0, mmodel.NewError(mmodel.ErrWrongArguments, "user and currency must be non-empty strings")
	}

	res := uc.Gateway.Balance(ctx, user, currency)
	if res.Err != nil {
		return 0, res.Err
	}

	return money.Format(res.Balances[0]), nil
}
