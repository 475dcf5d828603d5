// Package constant holds small fixed lookup tables shared by more than one
// adapter, mirroring the teacher's pkg/constant package.
package constant

import (
	"net/http"

	"github.com/gabrielBlankenburg/exbanking-go/internal/mmodel"
)

// HTTPStatusForError maps the closed banking error taxonomy to an HTTP
// status code for the JSON adapter.
func HTTPStatusForError(kind mmodel.ErrorKind) int {
	switch kind {
	case mmodel.ErrWrongArguments:
		return http.StatusBadRequest
	case mmodel.ErrUserAlreadyExists:
		return http.StatusConflict
	case mmodel.ErrUserDoesNotExist, mmodel.ErrSenderNotFound, mmodel.ErrReceiverNotFound:
		return http.StatusNotFound
	case mmodel.ErrNotEnoughFunds:
		return http.StatusUnprocessableEntity
	case mmodel.ErrTooManyRequestsToUser:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
