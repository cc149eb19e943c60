package errors

import (
	"fmt"
)

// ErrorCode represents a specific error type for inference operations.
type ErrorCode string

const (
	// ErrCodeInvalidArgument indicates invalid input parameters.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeEngineInitFailed indicates the inference engine could not be constructed.
	ErrCodeEngineInitFailed ErrorCode = "ENGINE_INIT_FAILED"
	// ErrCodeGenerationFailed indicates a runtime failure inside the engine.
	ErrCodeGenerationFailed ErrorCode = "GENERATION_FAILED"
	// ErrCodeServiceUnavailable indicates the service is not available.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeContextCanceled indicates the operation was canceled.
	ErrCodeContextCanceled ErrorCode = "CONTEXT_CANCELED"
	// ErrCodeTimeout indicates the operation timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// AIError represents a structured error for inference operations.
type AIError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *AIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *AIError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error.
func (e *AIError) WithContext(key string, value interface{}) *AIError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// GetCode returns the error code.
func (e *AIError) GetCode() ErrorCode {
	return e.Code
}

// Convenience constructors for common error types.

// InvalidArgument creates an invalid argument error.
func InvalidArgument(msg string) *AIError {
	return &AIError{Code: ErrCodeInvalidArgument, Message: msg}
}

// EngineInitFailed creates an engine initialization error.
func EngineInitFailed(msg string, cause error) *AIError {
	return &AIError{Code: ErrCodeEngineInitFailed, Message: msg, Cause: cause}
}

// GenerationFailed creates a generation failure error.
func GenerationFailed(msg string, cause error) *AIError {
	return &AIError{Code: ErrCodeGenerationFailed, Message: msg, Cause: cause}
}

// ServiceUnavailable creates a service unavailable error.
func ServiceUnavailable(msg string) *AIError {
	return &AIError{Code: ErrCodeServiceUnavailable, Message: msg}
}

// ContextCanceled creates a context canceled error.
func ContextCanceled(cause error) *AIError {
	return &AIError{Code: ErrCodeContextCanceled, Message: "operation canceled", Cause: cause}
}

// Timeout creates a timeout error.
func Timeout(msg string) *AIError {
	return &AIError{Code: ErrCodeTimeout, Message: msg}
}

// Wrap wraps an existing error with additional context.
func Wrap(cause error, code ErrorCode, msg string) *AIError {
	return &AIError{Code: code, Message: msg, Cause: cause}
}

// IsCode checks if an error is of a specific code.
func IsCode(err error, code ErrorCode) bool {
	if aiErr, ok := err.(*AIError); ok {
		return aiErr.Code == code
	}
	return false
}

// GetCodeFromError extracts the error code from any error.
// Returns the provided default code if the error is not an AIError.
func GetCodeFromError(err error, defaultCode ErrorCode) ErrorCode {
	if aiErr, ok := err.(*AIError); ok {
		return aiErr.Code
	}
	return defaultCode
}
