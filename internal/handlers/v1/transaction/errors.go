package transaction

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/lakefield-systems/sales-server/internal/service"
)

// serviceError maps service failures to transport errors: an invalid month
// is the caller's fault, anything else is reported as a server failure.
func serviceError(err error, message string) error {
	if errors.Is(err, service.ErrInvalidMonth) {
		return huma.NewError(http.StatusBadRequest, err.Error())
	}

	return huma.NewError(http.StatusInternalServerError, message, err)
}
