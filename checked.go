package schemagen

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Checked holds the decoded value of an enumeration, or the Invalid sentinel
// when the wire literal named no declared variant. Unrecognized literals are
// data, not decoding failures; consumers decide whether to reject them.
type Checked[T any] struct {
	value T
	valid bool
}

// Valid returns a checked value holding v.
func Valid[T any](v T) Checked[T] {
	return Checked[T]{value: v, valid: true}
}

// Invalid returns the Invalid sentinel.
func Invalid[T any]() Checked[T] {
	return Checked[T]{}
}

// IsValid reports whether c holds a declared value.
func (c Checked[T]) IsValid() bool {
	return c.valid
}

// Get returns the held value and true, or the zero value and false for Invalid.
func (c Checked[T]) Get() (T, bool) {
	return c.value, c.valid
}

// Unwrap returns the held value. It panics if c is Invalid; callers are
// expected to have validated the document beforehand.
func (c Checked[T]) Unwrap() T {
	if !c.valid {
		panic(NewInvalidValueError(typeName[T](), nil))
	}
	return c.value
}

// String implements the fmt.Stringer interface.
func (c Checked[T]) String() string {
	if !c.valid {
		return "Invalid"
	}
	return fmt.Sprint(c.value)
}

// MarshalJSON implements the json.Marshaler interface. Invalid values cannot
// be encoded since their literal is lost.
func (c Checked[T]) MarshalJSON() ([]byte, error) {
	if !c.valid {
		return nil, NewInvalidValueError(typeName[T](), nil)
	}
	return json.Marshal(c.value)
}

// UnmarshalJSON implements the json.Unmarshaler interface. A literal that T
// rejects with an InvalidLiteralError yields Invalid; other errors are
// returned as is.
func (c *Checked[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		var lit *InvalidLiteralError
		if errors.As(err, &lit) {
			*c = Invalid[T]()
			return nil
		}
		return err
	}
	*c = Valid(v)
	return nil
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
