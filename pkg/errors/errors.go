package errors

import "errors"

// Codes shared between the domain and the transport layer.
const (
	CodeInvalidInput = "invalid_input"
	CodeDataNotFound = "data_not_found"
	CodeDataInvalid  = "data_invalid"
	CodeStats        = "stats_error"
)

// AppError carries a machine readable code next to the human message.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap produces a new AppError; err may be nil.
func Wrap(code, message string, err error) error {
	return &AppError{Code: code, Message: message, Err: err}
}

// IsCode reports whether any AppError in err's chain carries code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// CodeOf returns the outermost AppError code, or "" when err carries none.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
