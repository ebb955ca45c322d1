package apperror

import "fmt"

// AppError pairs a sentinel error with the code and HTTP status the API
// reports for it. Service layers return these; handlers translate them
// through ToHTTP without inspecting the message.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error // wrapped cause, optional
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds a standalone AppError, typically declared as a package-level
// sentinel such as ErrRunNotFound.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap attaches a code and status to an existing error, keeping the cause
// reachable for errors.Is. Returns nil when err is nil.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
