package errors

import (
	"errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error codes. Config errors are author-facing and raised at
// construction time; domain errors are learner-facing and raised at
// call time by the input validation wrapper.
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeDomainError   = "DOMAIN_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, preserving the code of
// an underlying AppError.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// ConfigError creates an author-facing configuration error. It signals
// that a sampling set or wrapper was declared with an invalid
// configuration and should halt setup of that object.
func ConfigError(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// ConfigErrorf creates an author-facing configuration error with formatting
func ConfigErrorf(format string, args ...interface{}) *AppError {
	return New(CodeConfigInvalid, fmt.Sprintf(format, args...))
}

// DomainError creates a learner-facing error carrying a complete
// human-readable report. Callers surface the message verbatim.
func DomainError(message string) *AppError {
	return New(CodeDomainError, message)
}

// InternalError creates an internal error
func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}

// IsConfigError reports whether err is (or wraps) a configuration error
func IsConfigError(err error) bool {
	return GetCode(err) == CodeConfigInvalid
}

// IsDomainError reports whether err is (or wraps) a domain error
func IsDomainError(err error) bool {
	return GetCode(err) == CodeDomainError
}

// GetCode returns the error code if err is an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}
