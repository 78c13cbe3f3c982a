package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// NotAcceptable covers validation failures, duplicate associations and
// inconsistent date ranges.
func NotAcceptable(message string) *AppError {
	return New(http.StatusNotAcceptable, message, nil)
}

// NotFound covers missing records, voided records and unresolved references.
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Locked reports a record that exists and is not voided but has been retired.
func Locked(message string) *AppError {
	return New(http.StatusLocked, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
