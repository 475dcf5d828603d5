package in

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gabrielBlankenburg/exbanking-go/internal/service/command"
	"github.com/gabrielBlankenburg/exbanking-go/internal/service/query"
	"github.com/gabrielBlankenburg/exbanking-go/pkg/mlog"
)

// AccountHandler exposes the five Public API operations over HTTP.
type AccountHandler struct {
	Command *command.UseCase
	Query   *query.UseCase
	Logger  mlog.Logger
}

// CreateUser handles POST /users.
func (h *AccountHandler) CreateUser(payload any, c *fiber.Ctx) error {
	in := payload.(*CreateUserInput)

	h.Logger.Infof("request to create user %q", in.User)

	if err := h.Command.CreateUser(in.User); err != nil {
		return withError(c, err)
	}

	return c.SendStatus(fiber.StatusCreated)
}

// Deposit handles POST /users/:user/deposit.
func (h *AccountHandler) Deposit(payload any, c *fiber.Ctx) error {
	in := payload.(*MoneyInput)
	user := c.Params("user")

	balance, err := h.Command.Deposit(c.UserContext(), user, in.Amount, in.Currency)
	if err != nil {
		return withError(c, err)
	}

	return c.JSON(BalanceOutput{Balance: balance})
}

// Withdraw handles POST /users/:user/withdraw.
func (h *AccountHandler) Withdraw(payload any, c *fiber.Ctx) error {
	in := payload.(*MoneyInput)
	user := c.Params("user")

	balance, err := h.Command.Withdraw(c.UserContext(), user, in.Amount, in.Currency)
	if err != nil {
		return withError(c, err)
	}

	return c.JSON(BalanceOutput{Balance: balance})
}

// Send handles POST /send.
func (h *AccountHandler) Send(payload any, c *fiber.Ctx) error {
	in := payload.(*SendInput)

	fromBalance, toBalance, err := h.Command.Send(c.UserContext(), in.From, in.To, in.Amount, in.Currency)
	if err != nil {
		return withError(c, err)
	}

	return c.JSON(TransferOutput{FromBalance: fromBalance, ToBalance: toBalance})
}

// GetBalance handles GET /users/:user/balance.
func (h *AccountHandler) GetBalance(c *fiber.Ctx) error {
	user := c.Params("user")
	currency := c.Query("currency")

	balance, err := h.Query.GetBalance(c.UserContext(), user, currency)
	if err != nil {
		return withError(c, err)
	}

	return c.JSON(BalanceOutput{Balance: balance})
}
