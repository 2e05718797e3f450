package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Navigation data errors
	ErrCodeSetNotFound    ErrorCode = "SET_NOT_FOUND"
	ErrCodeSourceNotFound ErrorCode = "SOURCE_NOT_FOUND"
	ErrCodeSourceInvalid  ErrorCode = "SOURCE_INVALID"
	ErrCodeInvalidVersion ErrorCode = "INVALID_VERSION"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// DocnavError represents a structured error with context
type DocnavError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *DocnavError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DocnavError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *DocnavError) WithDetail(key string, value interface{}) *DocnavError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *DocnavError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new DocnavError
func New(code ErrorCode, message string) *DocnavError {
	return &DocnavError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a DocnavError
func Wrap(err error, code ErrorCode, message string) *DocnavError {
	return &DocnavError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific DocnavError code
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	dnErr, ok := err.(*DocnavError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return dnErr.Code
}

// As returns the outermost DocnavError in err's chain, if any.
func As(err error) (*DocnavError, bool) {
	for err != nil {
		if dnErr, ok := err.(*DocnavError); ok {
			return dnErr, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}
