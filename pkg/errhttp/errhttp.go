// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/tapestack/tapestack/pkg/httpx"
	catalogdomain "github.com/tapestack/tapestack/services/catalog/domain"
	rentaldomain "github.com/tapestack/tapestack/services/rental/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, rentaldomain.ErrDueDateNotFuture):
		return http.StatusBadRequest // 400
	case errors.Is(err, rentaldomain.ErrNotBorrower):
		return http.StatusForbidden // 403
	case errors.Is(err, rentaldomain.ErrRentalNotFound),
		errors.Is(err, catalogdomain.ErrVHSNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, rentaldomain.ErrOutOfStock),
		errors.Is(err, rentaldomain.ErrAlreadyReturned),
		errors.Is(err, rentaldomain.ErrConcurrentUpdate),
		errors.Is(err, catalogdomain.ErrVHSAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, rentaldomain.ErrNotReturned),
		errors.Is(err, rentaldomain.ErrRateUnavailable),
		errors.Is(err, catalogdomain.ErrInvalidVHS):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
