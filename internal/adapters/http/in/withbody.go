package in

import (
	"reflect"

	"github.com/gofiber/fiber/v2"
	"gopkg.in/go-playground/validator.v9"

	"github.com/gabrielBlankenburg/exbanking-go/internal/mmodel"
)

// decodeHandlerFunc receives a struct already decoded and validated by
// withBody.
type decodeHandlerFunc func(payload any, c *fiber.Ctx) error

var validate = validator.New()

// withBody decodes the request body into a fresh instance of the type
// behind structSource, validates it with the `validate` struct tags, and
// only then calls h.
func withBody(structSource any, h decodeHandlerFunc) fiber.Handler {
	t := reflect.TypeOf(structSource).Elem()

	return func(c *fiber.Ctx) error {
		payload := reflect.New(t).Interface()

		if err := c.BodyParser(payload); err != nil {
			return withError(c, mmodel.NewError(mmodel.ErrWrongArguments, "malformed request body"))
		}

		if err := validate.Struct(payload); err != nil {
			return withError(c, mmodel.NewError(mmodel.ErrWrongArguments, err.Error()))
		}

		return h(payload, c)
	}
}
