package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryConfig Category = "config"
	CategoryScene  Category = "scene"
	CategoryCLI    Category = "cli"
)

// PropwatchError is a structured error with a stable code, explanation,
// and fix suggestion.
type PropwatchError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (config, scene, cli).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *PropwatchError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *PropwatchError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *PropwatchError) WithDetail(format string, args ...any) *PropwatchError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *PropwatchError) WithSuggestion(s string) *PropwatchError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *PropwatchError) Wrap(err error) *PropwatchError {
	e.Wrapped = err
	return e
}

// New creates a PropwatchError from a registered error code.
func New(code string) *PropwatchError {
	template, ok := registry[code]
	if !ok {
		return &PropwatchError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &PropwatchError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a new PropwatchError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *PropwatchError {
	return &PropwatchError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a PropwatchError.
func FromError(err error, code string) *PropwatchError {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*PropwatchError); ok {
		return pe
	}
	return New(code).Wrap(err)
}
