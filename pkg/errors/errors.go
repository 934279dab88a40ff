package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// tmux errors
	ErrTmuxNotFound           ErrorCode = "TMUX_NOT_FOUND"
	ErrTmuxVersionCommand     ErrorCode = "TMUX_VERSION_COMMAND"
	ErrTmuxVersionBadOutput   ErrorCode = "TMUX_VERSION_BAD_OUTPUT"
	ErrTmuxVersionUnsupported ErrorCode = "TMUX_VERSION_UNSUPPORTED"
	ErrTmuxNested             ErrorCode = "TMUX_NESTED"
	ErrRender                 ErrorCode = "RENDER"

	// Environment errors
	ErrHomeNotFound ErrorCode = "HOME_NOT_FOUND"
	ErrZshNotFound  ErrorCode = "ZSH_NOT_FOUND"
	ErrPathEnv      ErrorCode = "PATH_ENV"
	ErrExec         ErrorCode = "EXEC"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
)

// NmkError represents a structured error with code and details
type NmkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *NmkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NmkError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an NmkError with the same code
func (e *NmkError) Is(target error) bool {
	var targetErr *NmkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new NmkError with the given code and message
func New(code ErrorCode, message string) *NmkError {
	return &NmkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new NmkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *NmkError {
	return &NmkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an NmkError.
// A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &NmkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &NmkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *NmkError) WithDetail(key string, value interface{}) *NmkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var nmkErr *NmkError
	if errors.As(err, &nmkErr) {
		return nmkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an NmkError
func GetErrorCode(err error) ErrorCode {
	var nmkErr *NmkError
	if errors.As(err, &nmkErr) {
		return nmkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an NmkError
func GetErrorDetails(err error) map[string]interface{} {
	var nmkErr *NmkError
	if errors.As(err, &nmkErr) {
		return nmkErr.Details
	}
	return nil
}
