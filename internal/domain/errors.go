package domain

import (
	"fmt"
)

// AppError is an error carrying the HTTP status it should be rendered with.
// The API error handler turns it into {"status":"error","message":...}.
type AppError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Err:        err,
	}
}

func (e *AppError) WithMessage(msg string) *AppError {
	return &AppError{
		Message:    msg,
		StatusCode: e.StatusCode,
		Err:        e.Err,
	}
}

// Is lets errors.Is match copies produced by WithError against the
// predefined values below.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && e.StatusCode == t.StatusCode && e.Message == t.Message
}

// Pre-defined errors
var (
	ErrInternal = &AppError{
		Message:    "An unexpected error occurred",
		StatusCode: 500,
	}

	ErrBadRequest = &AppError{
		Message:    "Invalid request",
		StatusCode: 400,
	}

	ErrStudentNotFound = &AppError{
		Message:    "Student not found",
		StatusCode: 404,
	}

	ErrStoreFailure = &AppError{
		Message:    "Failed to reach the record store",
		StatusCode: 500,
	}
)
