package errors

import (
	"fmt"
)

// YfoilError is the structured error type for yfoil.
// It provides context for exit handling, logging, and user presentation.
type YfoilError struct {
	// Code is the unique error code (e.g., "ERR_201_FILE_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Validation, Internal).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *YfoilError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *YfoilError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
func (e *YfoilError) Is(target error) bool {
	if t, ok := target.(*YfoilError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *YfoilError) WithDetail(key, value string) *YfoilError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
func (e *YfoilError) WithSuggestion(suggestion string) *YfoilError {
	e.Suggestion = suggestion
	return e
}

// New creates a new YfoilError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *YfoilError {
	return &YfoilError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a YfoilError from an existing error.
// The error's message becomes the YfoilError message.
func Wrap(code string, err error) *YfoilError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *YfoilError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// IOError creates a file read error.
func IOError(message string, cause error) *YfoilError {
	return New(ErrCodeFileRead, message, cause)
}

// ValidationError creates a generic input validation error.
func ValidationError(message string, cause error) *YfoilError {
	return New(ErrCodeInvalidInput, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *YfoilError {
	return New(ErrCodeInternal, message, cause)
}

// IsFatal checks if an error has fatal severity.
func IsFatal(err error) bool {
	if ye, ok := err.(*YfoilError); ok {
		return ye.Severity == SeverityFatal
	}
	return false
}

// GetCode extracts the error code from a YfoilError.
// Returns empty string if not a YfoilError.
func GetCode(err error) string {
	if ye, ok := err.(*YfoilError); ok {
		return ye.Code
	}
	return ""
}

// GetCategory extracts the category from a YfoilError.
// Returns empty string if not a YfoilError.
func GetCategory(err error) Category {
	if ye, ok := err.(*YfoilError); ok {
		return ye.Category
	}
	return ""
}
