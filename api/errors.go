// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the threadpool library.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrPoolClosed is returned by submission once shutdown has begun.
	ErrPoolClosed = fmt.Errorf("pool is closed")

	// ErrInvalidPriority marks a raw numeric priority outside the
	// platform's valid range.
	ErrInvalidPriority = fmt.Errorf("priority value out of range")

	// ErrBindingUnsupported marks an affinity or priority primitive
	// that is unavailable on the host platform.
	ErrBindingUnsupported = fmt.Errorf("thread binding not supported on this platform")

	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodePoolClosed
	ErrCodeInvalidPriority
	ErrCodeBindingUnsupported
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
