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

	// Environment errors
	ErrUnsupportedOS ErrorCode = "UNSUPPORTED_OS"
	ErrHomeResolve   ErrorCode = "HOME_RESOLVE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// External command errors
	ErrPkgInstall ErrorCode = "PKG_INSTALL"
	ErrClone      ErrorCode = "CLONE"
	ErrCommandRun ErrorCode = "COMMAND_RUN"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrBackup     ErrorCode = "BACKUP"
	ErrRemove     ErrorCode = "REMOVE"
)

// NvupError represents a structured error with code and details
type NvupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *NvupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NvupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *NvupError) Is(target error) bool {
	var targetErr *NvupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new NvupError with the given code and message
func New(code ErrorCode, message string) *NvupError {
	return &NvupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new NvupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *NvupError {
	return &NvupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a NvupError
func Wrap(err error, code ErrorCode, message string) *NvupError {
	if err == nil {
		return nil
	}
	return &NvupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *NvupError {
	if err == nil {
		return nil
	}
	return &NvupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *NvupError) WithDetail(key string, value interface{}) *NvupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var nvupErr *NvupError
	if errors.As(err, &nvupErr) {
		return nvupErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a NvupError
func GetErrorCode(err error) ErrorCode {
	var nvupErr *NvupError
	if errors.As(err, &nvupErr) {
		return nvupErr.Code
	}
	return ErrUnknown
}
