package in

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gabrielBlankenburg/exbanking-go/internal/mmodel"
	"github.com/gabrielBlankenburg/exbanking-go/pkg/constant"
)

// ResponseError is the JSON shape of every error response.
type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// withError writes err as a JSON ResponseError with the status mapped from
// its Kind, defaulting to wrong_arguments/400 for anything not already a
// *mmodel.Error (e.g. a body-parse failure).
func withError(c *fiber.Ctx, err error) error {
	var bankErr *mmodel.Error
	if !errors.As(err, &bankErr) {
		bankErr = mmodel.NewError(mmodel.ErrWrongArguments, err.Error())
	}

	return c.Status(constant.HTTPStatusForError(bankErr.Kind)).JSON(ResponseError{
		Code:    string(bankErr.Kind),
		Message: bankErr.Error(),
	})
}
