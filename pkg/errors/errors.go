// Package errors provides structured error types for clihelp.
// Errors include context, causes, and actionable suggestions.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Category classifies errors for consistent handling and display.
type Category string

const (
	CategoryConfig     Category = "config"     // Configuration loading/parsing errors
	CategoryLayout     Category = "layout"     // Column geometry and write errors
	CategoryCommand    Category = "command"    // Help path lookup and shell command errors
	CategoryValidation Category = "validation" // Entry and input validation errors
	CategoryIO         Category = "io"         // File/IO errors
	CategoryInternal   Category = "internal"   // Internal/unexpected errors
)

// HelpError is a structured error with context and suggestions.
// It implements the error interface and supports error wrapping.
type HelpError struct {
	// Code is a unique identifier for this error type (e.g., "LAYOUT_INVALID_COLUMN")
	Code string

	// Category classifies this error for consistent handling
	Category Category

	// Message is the primary error message describing what went wrong
	Message string

	// Context provides additional key-value details about the error
	Context map[string]string

	// Cause is the underlying error that triggered this error (for wrapping)
	Cause error

	// Suggestions are actionable remediation steps for the user
	Suggestions []string
}

// Error implements the error interface.
func (e *HelpError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain inspection.
func (e *HelpError) Unwrap() error {
	return e.Cause
}

// Is reports whether e matches target for errors.Is() checks.
// Two HelpErrors match if they have the same Code.
func (e *HelpError) Is(target error) bool {
	if t, ok := target.(*HelpError); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new HelpError with the given code, category, and message.
func New(code string, category Category, message string) *HelpError {
	return &HelpError{
		Code:     code,
		Category: category,
		Message:  message,
		Context:  make(map[string]string),
	}
}

// WithContext adds a context key-value pair and returns the error for chaining.
func (e *HelpError) WithContext(key, value string) *HelpError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithContextMap adds multiple context key-value pairs.
func (e *HelpError) WithContextMap(ctx map[string]string) *HelpError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	for k, v := range ctx {
		e.Context[k] = v
	}
	return e
}

// WithCause wraps an underlying error and returns the error for chaining.
func (e *HelpError) WithCause(cause error) *HelpError {
	e.Cause = cause
	return e
}

// WithSuggestion adds a remediation suggestion and returns the error for chaining.
func (e *HelpError) WithSuggestion(suggestion string) *HelpError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple remediation suggestions.
func (e *HelpError) WithSuggestions(suggestions ...string) *HelpError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// HasContext returns true if the error has context information.
func (e *HelpError) HasContext() bool {
	return len(e.Context) > 0
}

// HasSuggestions returns true if the error has suggestions.
func (e *HelpError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// ContextString returns the context entries as key="value" pairs sorted by key.
func (e *HelpError) ContextString() string {
	if len(e.Context) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%q", k, e.Context[k]))
	}
	return strings.Join(parts, ", ")
}

// Wrap wraps an existing error with a HelpError.
func Wrap(err error, code string, category Category, message string) *HelpError {
	return New(code, category, message).WithCause(err)
}

// AsHelpError finds the first HelpError in err's chain.
func AsHelpError(err error) (*HelpError, bool) {
	if err == nil {
		return nil, false
	}
	var he *HelpError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// IsCategory checks if an error is a HelpError with the given category.
func IsCategory(err error, category Category) bool {
	if he, ok := AsHelpError(err); ok {
		return he.Category == category
	}
	return false
}

// IsCode checks if an error is a HelpError with the given code.
func IsCode(err error, code string) bool {
	if he, ok := AsHelpError(err); ok {
		return he.Code == code
	}
	return false
}
