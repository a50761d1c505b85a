// Package errors carries coded errors through the engine, the size stores
// and the CLI.
//
// Every error the engine returns from a failed drag start, and every store
// failure, is an *Error with a Code. Callers branch on the code, not on the
// message:
//
//	if err := engine.DragStart(dir, p); errors.Is(err, errors.ErrCodeBoundsNotFound) {
//	    // no boundary element; the engine is still idle
//	}
//
// Codes starting with INVALID_ describe caller mistakes; see Code.Invalid.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a stable, machine-readable error class.
type Code string

const (
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidDirection Code = "INVALID_DIRECTION"
	ErrCodeInvalidSelector  Code = "INVALID_SELECTOR"
	ErrCodeInvalidKey       Code = "INVALID_KEY"

	// ErrCodeHandleDisabled rejects a drag on a handle turned off in Enable.
	ErrCodeHandleDisabled Code = "HANDLE_DISABLED"

	ErrCodeNotFound       Code = "NOT_FOUND"
	ErrCodeBoundsNotFound Code = "BOUNDS_NOT_FOUND"

	// ErrCodeNetwork covers redis connectivity.
	ErrCodeNetwork  Code = "NETWORK_ERROR"
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Invalid reports whether c describes bad input or configuration.
func (c Code) Invalid() bool { return strings.HasPrefix(string(c), "INVALID_") }

// Error pairs a Code with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an *Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is New with a cause attached.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage drops the code prefix and cause; plain errors pass through.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
