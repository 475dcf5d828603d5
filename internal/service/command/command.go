// Package command is the write half of the Public API (C7): argument
// validation, money parsing, and delegation to the Gateway or the user
// store.
package command

import (
	"context"
	"strings"

	"github.com/gabrielBlankenburg/exbanking-go/internal/gateway"
	"github.com/gabrielBlankenburg/exbanking-go/internal/mmodel"
	"github.com/gabrielBlankenburg/exbanking-go/internal/money"
	"github.com/gabrielBlankenburg/exbanking-go/pkg/mlog"
)

// UserStore is the subset of userstore.Store that CreateUser needs. Narrowed
// to an interface so it can be swapped for a generated mock in tests.
type UserStore interface {
	Create(name string) bool
}

// TransactionGateway is the subset of *gateway.Gateway the write-side Public
// API depends on. Narrowed to an interface so it can be swapped for a
// generated mock in tests.
type TransactionGateway interface {
	Deposit(ctx context.Context, user, currency string, amount int64) gateway.Result
	Withdraw(ctx context.Context, user, currency string, amount int64) gateway.Result
	Send(ctx context.Context, from, to, currency string, amount int64) gateway.Result
}

// UseCase is the write-side Public API.
type UseCase struct {
	Users   UserStore
	Gateway TransactionGateway
	Logger  mlog.Logger
}

// CreateUser creates a new account. name must be non-empty.
func (uc *UseCase) CreateUser(name string) error {
	if strings.TrimSpace(name) == "" {
		return mmodel.NewError(mmodel.ErrWrongArguments, "user must be a non-empty string")
	}

	if !uc.Users.Create(name) {
		return mmodel.NewError(mmodel.ErrUserAlreadyExists, "user already exists")
	}

	uc.Logger.Infof("created user %q", name)

	return nil
}

// Deposit credits user's currency balance by amount (a positive external
// float) and returns the resulting balance.
func (uc *UseCase) Deposit(ctx context.Context, user string, amount float64, currency string) (float64, error) {
	minorAmount, err := validateMoneyArgs(user, amount, currency)
	if err != nil {
		return 0, err
	}

	res := uc.Gateway.Deposit(ctx, user, currency, minorAmount)
	if res.Err != nil {
		return 0, res.Err
	}

	return money.Format(res.Balances[0]), nil
}

// Withdraw debits user's currency balance by amount and returns the
// resulting balance.
func (uc *UseCase) Withdraw(ctx context.Context, user string, amount float64, currency string) (float64, error) {
	minorAmount, err := validateMoneyArgs(user, amount, currency)
	if err != nil {
		return 0, err
	}

	res := uc.Gateway.Withdraw(ctx, user, currency, minorAmount)
	if res.Err != nil {
		return 0, res.Err
	}

	return money.Format(res.Balances[0]), nil
}

// Send transfers amount of currency from "from" to "to" and returns both
// resulting balances.
func (uc *UseCase) Send(ctx context.Context, from, to string, amount float64, currency string) (fromBalance, toBalance float64, err error) {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return 0, 0, mmodel.NewError(mmodel.ErrWrongArguments, "from and to must be non-empty strings")
	}

	if from == to {
		return 0, 0, mmodel.NewError(mmodel.ErrWrongArguments, "from and to must differ")
	}

	minorAmount, verr := validateMoneyArgs(from, amount, currency)
	if verr != nil {
		return 0, 0, verr
	}

	res := uc.Gateway.Send(ctx, from, to, currency, minorAmount)
	if res.Err != nil {
		return 0, 0, res.Err
	}

	return money.Format(res.Balances[0]), money.Format(res.Balances[1]), nil
}

// validateMoneyArgs validates the shared shape of deposit/withdraw/send
// arguments and parses amount into minor units.
func validateMoneyArgs(user string, amount float64, currency string) (int64, error) {
	if strings.TrimSpace(user) == "" || strings.TrimSpace(currency) == "" {
		return 0, mmodel.NewError(mmodel.ErrWrongArguments, "user and currency must be non-empty strings")
	}

	if amount <= 0 {
		return 0, mmodel.NewError(mmodel.ErrWrongArguments, "amount must be greater than zero")
	}

	minorAmount, ok := money.Parse(amount)
	if !ok {
		return 0, mmodel.NewError(mmodel.ErrWrongArguments, "amount is not a valid number")
	}

	return minorAmount, nil
}
