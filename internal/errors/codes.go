package errors

import (
	"fmt"
)

// ErrorCode represents a specific error type for relay operations.
type ErrorCode string

const (
	// ErrCodeInvalidArgument indicates invalid input parameters.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeRateLimitExceeded indicates rate limit has been exceeded.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeStoreUnavailable indicates the e-commerce backend is not reachable.
	ErrCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	// ErrCodeLLMUnavailable indicates the language-model service is not available.
	ErrCodeLLMUnavailable ErrorCode = "LLM_UNAVAILABLE"
	// ErrCodeCompletionFailed indicates the completion call failed.
	ErrCodeCompletionFailed ErrorCode = "COMPLETION_FAILED"
)

// RelayError represents a structured error for relay operations.
type RelayError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *RelayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *RelayError) Unwrap() error {
	return e.Cause
}

// InvalidArgument creates an invalid argument error.
func InvalidArgument(msg string) *RelayError {
	return &RelayError{Code: ErrCodeInvalidArgument, Message: msg}
}

// RateLimitExceeded creates a rate limit exceeded error.
func RateLimitExceeded(msg string) *RelayError {
	return &RelayError{Code: ErrCodeRateLimitExceeded, Message: msg}
}

// CompletionFailed creates a completion failed error.
func CompletionFailed(msg string, cause error) *RelayError {
	return &RelayError{Code: ErrCodeCompletionFailed, Message: msg, Cause: cause}
}

// Wrap wraps an existing error with a code and message.
func Wrap(cause error, code ErrorCode, msg string) *RelayError {
	return &RelayError{Code: code, Message: msg, Cause: cause}
}

// IsCode checks if an error is of a specific code.
func IsCode(err error, code ErrorCode) bool {
	if relayErr, ok := err.(*RelayError); ok {
		return relayErr.Code == code
	}
	return false
}

// GetCodeFromError extracts the error code from any error.
// Returns the provided default code if the error is not a RelayError.
func GetCodeFromError(err error, defaultCode ErrorCode) ErrorCode {
	if relayErr, ok := err.(*RelayError); ok {
		return relayErr.Code
	}
	return defaultCode
}
