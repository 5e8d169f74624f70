package mdminer

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL     = "internal"      // packaging or other unexpected failure
	EINVALID      = "invalid"       // malformed input
	ENOTFOUND     = "not_found"     // required DOM element or field absent
	ENOTSUPPORTED = "not_supported" // unknown site identifier
	EUNAVAILABLE  = "unavailable"   // remote resource could not be fetched
)

// Error represents an application error with a machine-readable code and
// a human-readable message. The message is safe to surface to users.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("mdminer error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return a generic message.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf returns an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
