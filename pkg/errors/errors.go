// Package errors carries the coded errors returned across the harness.
// Every failure a user can see has an ErrorCode, so tests and the CLI can
// tell a parse failure from a missing input without matching messages.
package errors

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/rs/zerolog"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Run errors, one per stage a day goes through
	ErrInput     ErrorCode = "INPUT"
	ErrParse     ErrorCode = "PARSE"
	ErrPart      ErrorCode = "PART"
	ErrBench     ErrorCode = "BENCH"
	ErrInvariant ErrorCode = "INVARIANT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// AocError is an error with a code and optional structured details
type AocError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	Wrapped error
}

func (e *AocError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AocError) Unwrap() error {
	return e.Wrapped
}

// Is matches any AocError with the same code, so errors.Is(err,
// errors.New(errors.ErrParse, "")) asks "is this a parse failure".
func (e *AocError) Is(target error) bool {
	var t *AocError
	return errors.As(target, &t) && t.Code == e.Code
}

// WithDetail adds a detail to the error
func (e *AocError) WithDetail(key string, value any) *AocError {
	if e.Details == nil {
		e.Details = map[string]any{}
	}
	e.Details[key] = value
	return e
}

// MarshalZerologObject lets the error be embedded in a log event with its
// code and details as fields.
func (e *AocError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("code", string(e.Code)).Str("error", e.Message)
	for _, k := range slices.Sorted(maps.Keys(e.Details)) {
		ev.Interface(k, e.Details[k])
	}
	if e.Wrapped != nil {
		ev.AnErr("cause", e.Wrapped)
	}
}

// New creates an error with the given code and message
func New(code ErrorCode, message string) *AocError {
	return &AocError{Code: code, Message: message, Details: map[string]any{}}
}

// Newf creates an error with a formatted message
func Newf(code ErrorCode, format string, args ...any) *AocError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches a code and message to err. A nil err stays nil.
func Wrap(err error, code ErrorCode, message string) *AocError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...any) *AocError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// As returns the outermost AocError in err's chain
func As(err error) (*AocError, bool) {
	var e *AocError
	ok := errors.As(err, &e)
	return e, ok
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	e, ok := As(err)
	return ok && e.Code == code
}

// GetErrorCode returns the code of err, or ErrUnknown for uncoded errors
func GetErrorCode(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of err, or nil for uncoded errors
func GetErrorDetails(err error) map[string]any {
	if e, ok := As(err); ok {
		return e.Details
	}
	return nil
}
