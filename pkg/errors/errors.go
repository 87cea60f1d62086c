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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrTarget      ErrorCode = "TARGET_INVALID"
	ErrLocked      ErrorCode = "LOCKED"

	// Rule-level errors
	ErrDirMissing ErrorCode = "DIR_MISSING"
	ErrDirList    ErrorCode = "DIR_LIST"

	// Resolution errors
	ErrNoRoute      ErrorCode = "NO_ROUTE"
	ErrSamePath     ErrorCode = "SAME_PATH"
	ErrScriptExec   ErrorCode = "SCRIPT_EXEC"
	ErrScriptExit   ErrorCode = "SCRIPT_EXIT"
	ErrScriptOutput ErrorCode = "SCRIPT_OUTPUT"

	// Execution errors
	ErrOverwrite      ErrorCode = "OVERWRITE"
	ErrOverwriteCheck ErrorCode = "OVERWRITE_CHECK"
	ErrDirCreate      ErrorCode = "DIR_CREATE"
	ErrMove           ErrorCode = "MOVE"
)

// ShinyError represents a structured error with code and details
type ShinyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ShinyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ShinyError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ShinyError) Is(target error) bool {
	var targetErr *ShinyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ShinyError with the given code and message
func New(code ErrorCode, message string) *ShinyError {
	return &ShinyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ShinyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ShinyError {
	return &ShinyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ShinyError
func Wrap(err error, code ErrorCode, message string) *ShinyError {
	if err == nil {
		return nil
	}
	return &ShinyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ShinyError {
	if err == nil {
		return nil
	}
	return &ShinyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ShinyError) WithDetail(key string, value interface{}) *ShinyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var shinyErr *ShinyError
	if errors.As(err, &shinyErr) {
		return shinyErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ShinyError
func GetErrorCode(err error) ErrorCode {
	var shinyErr *ShinyError
	if errors.As(err, &shinyErr) {
		return shinyErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ShinyError
func GetErrorDetails(err error) map[string]interface{} {
	var shinyErr *ShinyError
	if errors.As(err, &shinyErr) {
		return shinyErr.Details
	}
	return nil
}

// Describe renders an error for end users: the message and its cause, without the code prefix.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	if shinyErr, ok := err.(*ShinyError); ok {
		if shinyErr.Wrapped != nil {
			return fmt.Sprintf("%s: %s", shinyErr.Message, Describe(shinyErr.Wrapped))
		}
		return shinyErr.Message
	}
	return err.Error()
}
