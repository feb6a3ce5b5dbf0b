package errors

import (
	"campusmarket/internal/errors"
)

// AsAppError extracts an AppError from the error chain. Returns nil when
// the error does not carry one.
func AsAppError(err error) AppError {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HTTPCodeOf resolves the HTTP status code for an error, defaulting to 500
func HTTPCodeOf(err error) int {
	if appErr := AsAppError(err); appErr != nil {
		return appErr.HTTPCode()
	}
	return ErrInternalError.HTTPCode()
}
