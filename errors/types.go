package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// Session tool errors
	ErrCodeToolUnavailable     ErrorCode = "TOOL_UNAVAILABLE"
	ErrCodeToolReportedError   ErrorCode = "TOOL_REPORTED_ERROR"
	ErrCodeExecFailed          ErrorCode = "EXEC_FAILED"
	ErrCodeDeleteFailed        ErrorCode = "DELETE_FAILED"
	ErrCodeNoSessionsAvailable ErrorCode = "NO_SESSIONS_AVAILABLE"
	ErrCodeInsideSession       ErrorCode = "ALREADY_INSIDE_SESSION"

	// Terminal integration errors
	ErrCodeTabRenameFailed ErrorCode = "TAB_RENAME_FAILED"
	ErrCodePromptCancelled ErrorCode = "PROMPT_CANCELLED"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// ZismError represents a structured error with context
type ZismError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *ZismError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ZismError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *ZismError) WithDetail(key string, value interface{}) *ZismError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *ZismError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new ZismError
func New(code ErrorCode, message string) *ZismError {
	return &ZismError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a ZismError
func Wrap(err error, code ErrorCode, message string) *ZismError {
	return &ZismError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific ZismError code
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	zErr, ok := err.(*ZismError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return zErr.Code
}

// As returns the first ZismError in the chain of err, if any.
func As(err error) (*ZismError, bool) {
	for err != nil {
		if zErr, ok := err.(*ZismError); ok {
			return zErr, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}
