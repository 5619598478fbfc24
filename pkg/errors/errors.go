package errors

import (
	"fmt"
)

// ParseError represents a theme or config file syntax failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a rejected theme name, theme config or config field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ProtectedResourceError is returned when removing something that must always exist,
// such as the built-in themes.
type ProtectedResourceError struct {
	Resource string
	Name     string
}

// NewProtectedResourceError constructs a ProtectedResourceError.
func NewProtectedResourceError(resource, name string) error {
	return &ProtectedResourceError{Resource: resource, Name: name}
}

func (e *ProtectedResourceError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %q is built in and cannot be removed", e.Resource, e.Name)
}

// NotFoundError is returned when a named resource is not registered.
type NotFoundError struct {
	Resource string
	Name     string
}

// NewNotFoundError constructs a NotFoundError.
func NewNotFoundError(resource, name string) error {
	return &NotFoundError{Resource: resource, Name: name}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
}
