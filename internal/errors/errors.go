// Package errors provides a lightweight structured error type (BuilderError)
// for category-based classification in the build pipeline and CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a builder error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// External tool integration errors
	CategoryToolchain ErrorCategory = "toolchain"

	// Build and processing errors
	CategoryBuild      ErrorCategory = "build"
	CategoryManifest   ErrorCategory = "manifest"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Runtime and infrastructure errors
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// BuilderError is a structured error with category, severity, and context
type BuilderError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for BuilderError
type ContextFields map[string]any

// Error implements the error interface
func (e *BuilderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *BuilderError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *BuilderError) WithContext(key string, value any) *BuilderError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new BuilderError
func New(category ErrorCategory, severity ErrorSeverity, message string) *BuilderError {
	return &BuilderError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new BuilderError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *BuilderError {
	return &BuilderError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if be, ok := err.(*BuilderError); ok {
		return be.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a BuilderError
func GetCategory(err error) ErrorCategory {
	if be, ok := err.(*BuilderError); ok {
		return be.Category
	}
	return CategoryInternal
}
