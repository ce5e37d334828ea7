package http

import (
	"errors"
	"net/http"

	"smart-todo/internal/task"
	pkgErrors "smart-todo/pkg/errors"
)

var (
	errWrongBody    = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	errWrongQuery   = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	errWrongDueDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "due_date must be RFC 3339, YYYY-MM-DDTHH:MM or YYYY-MM-DD")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unrecognized is an internal error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrInputTooLong),
		errors.Is(err, task.ErrInvalidTitle),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidCategory):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
