package errx

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
)

// WrapDB maps database/sql errors to AppError.
func WrapDB(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return New(err, http.StatusNotFound, NotFoundMessage)
	case errors.Is(err, context.DeadlineExceeded):
		return New(err, http.StatusGatewayTimeout, DatabaseErrorMessage)
	default:
		return New(err, http.StatusInternalServerError, DatabaseErrorMessage)
	}
}
