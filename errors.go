package schemagen

import (
	"errors"
	"fmt"
)

// Standard sentinel errors reported by generated code.
var (
	// ErrNotFound is returned when an index does not resolve in a Document.
	ErrNotFound = errors.New("schemagen: entity not found")

	// ErrInvalidLiteral is returned when a wire literal does not name any
	// variant of an enumeration.
	ErrInvalidLiteral = errors.New("schemagen: invalid literal")

	// ErrInvalidValue is returned when an Invalid checked value, or an
	// enumeration value that was never declared, is unwrapped or encoded.
	ErrInvalidValue = errors.New("schemagen: invalid value")
)

// NotFoundError represents an index that has no entity in a Document.
type NotFoundError struct {
	kind  string
	index int
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("schemagen: %s not found (index=%d)", e.kind, e.index)
}

// Is reports whether the target error matches NotFoundError.
// This allows errors.Is(notFoundErr, ErrNotFound) to return true.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// Kind returns the entity kind that was looked up.
func (e *NotFoundError) Kind() string {
	return e.kind
}

// Index returns the index that was looked up.
func (e *NotFoundError) Index() int {
	return e.index
}

// NewNotFoundError returns a new NotFoundError for the given entity kind and index.
func NewNotFoundError(kind string, index int) *NotFoundError {
	return &NotFoundError{kind: kind, index: index}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNotFound)
}

// InvalidLiteralError represents a wire literal that is not declared by an
// enumeration. Checked values decode it as Invalid instead of failing.
type InvalidLiteralError struct {
	Type    string // Enumeration type name
	Literal any    // The literal that was read
}

// Error returns the error string.
func (e *InvalidLiteralError) Error() string {
	if s, ok := e.Literal.(string); ok {
		return fmt.Sprintf("schemagen: invalid %s literal %q", e.Type, s)
	}
	return fmt.Sprintf("schemagen: invalid %s literal %v", e.Type, e.Literal)
}

// Is reports whether the target error matches InvalidLiteralError.
func (e *InvalidLiteralError) Is(err error) bool {
	return err == ErrInvalidLiteral
}

// NewInvalidLiteralError returns a new InvalidLiteralError.
func NewInvalidLiteralError(typ string, literal any) *InvalidLiteralError {
	return &InvalidLiteralError{Type: typ, Literal: literal}
}

// IsInvalidLiteral returns true if the error is an InvalidLiteralError.
func IsInvalidLiteral(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidLiteralError
	return errors.As(err, &e)
}

// InvalidValueError represents a value that has no wire literal.
type InvalidValueError struct {
	Type  string // Type name
	Value any    // Offending value, nil for an Invalid checked value
}

// Error returns the error string.
func (e *InvalidValueError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("schemagen: invalid %s value", e.Type)
	}
	return fmt.Sprintf("schemagen: invalid %s value %v", e.Type, e.Value)
}

// Is reports whether the target error matches InvalidValueError.
func (e *InvalidValueError) Is(err error) bool {
	return err == ErrInvalidValue
}

// NewInvalidValueError returns a new InvalidValueError.
func NewInvalidValueError(typ string, value any) *InvalidValueError {
	return &InvalidValueError{Type: typ, Value: value}
}
