package schema

import (
	"errors"
	"strings"
)

// Sentinel errors for the schema error taxonomy. Every *Error matches
// ErrInvalidSchema and exactly one of the others.
var (
	// ErrInvalidSchema indicates a schema definition error.
	ErrInvalidSchema = errors.New("schemagen: invalid schema")
	// ErrMissingField indicates that a required key is absent.
	ErrMissingField = errors.New("schemagen: missing field")
	// ErrWrongShape indicates that a key holds a value of the wrong structural kind.
	ErrWrongShape = errors.New("schemagen: wrong shape")
	// ErrUnknownTypeTag indicates a field or element type outside the closed vocabulary.
	ErrUnknownTypeTag = errors.New("schemagen: unknown type tag")
	// ErrUnknownEncoding indicates an enumeration encoding other than String or Integer.
	ErrUnknownEncoding = errors.New("schemagen: unknown encoding")
	// ErrConflictingOptionalDefault indicates a field that is optional and also has a default.
	ErrConflictingOptionalDefault = errors.New("schemagen: optional field with default")
	// ErrDuplicateLiteral indicates two variants of an enumeration sharing a literal.
	ErrDuplicateLiteral = errors.New("schemagen: duplicate literal")
)

// Error represents a schema definition error.
type Error struct {
	Code    error  // One of the sentinel errors above.
	Unit    string // Unit name or source file
	Item    string // Field or variant name (if applicable)
	Key     string // Offending key (if applicable)
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Code != nil {
		b.WriteString(e.Code.Error())
	} else {
		b.WriteString(ErrInvalidSchema.Error())
	}
	if e.Unit != "" {
		b.WriteString(" in ")
		b.WriteString(e.Unit)
	}
	if e.Item != "" {
		b.WriteString(" item ")
		b.WriteString(e.Item)
	}
	if e.Key != "" {
		b.WriteString(" key ")
		b.WriteString(e.Key)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the error code or ErrInvalidSchema.
func (e *Error) Is(target error) bool {
	return target == ErrInvalidSchema || (e.Code != nil && target == e.Code)
}

// NewError creates a new Error.
func NewError(code error, unit, item, key, message string) *Error {
	return &Error{
		Code:    code,
		Unit:    unit,
		Item:    item,
		Key:     key,
		Message: message,
	}
}

// IsSchemaError reports whether the error is a schema Error.
func IsSchemaError(err error) bool {
	var schemaErr *Error
	return errors.As(err, &schemaErr)
}
