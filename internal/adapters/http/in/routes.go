package in

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gabrielBlankenburg/exbanking-go/pkg/mlog"
)

// NewRouter registers routes for the banking HTTP server.
func NewRouter(logger mlog.Logger, handler *AccountHandler) *fiber.App {
	f := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return withError(c, err)
		},
	})

	f.Use(func(c *fiber.Ctx) error {
		logger.Debugf("%s %s", c.Method(), c.OriginalURL())
		return c.Next()
	})

	f.Post("/users", withBody(new(CreateUserInput), handler.CreateUser))
	f.Post("/users/:user/deposit", withBody(new(MoneyInput), handler.Deposit))
	f.Post("/users/:user/withdraw", withBody(new(MoneyInput), handler.Withdraw))
	f.Get("/users/:user/balance", handler.GetBalance)
	f.Post("/send", withBody(new(SendInput), handler.Send))

	f.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return f
}
