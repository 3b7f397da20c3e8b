package domain

import (
	"errors"
	"fmt"
)

// DomainError is a command error with a stable code.
// Codes have the form RKV-<AREA>-<NNNN>.
type DomainError struct {
	Code    string // Error code (e.g., "RKV-CMD-4000")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches any DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Command errors. All of them are recoverable: the client gets the generic
// invalid-command reply and the connection keeps being served.
var (
	// ErrUnknownCommand covers unknown names and malformed request shapes.
	ErrUnknownCommand = NewDomainError("RKV-CMD-4000", "unknown command")

	// ErrBadArity indicates a known command with the wrong number of arguments
	// or an unrecognized option.
	ErrBadArity = NewDomainError("RKV-CMD-4001", "wrong number of arguments")

	// ErrBadExpiryValue indicates a PX argument that is not a non-negative integer.
	ErrBadExpiryValue = NewDomainError("RKV-CMD-4002", "invalid expire time")
)
