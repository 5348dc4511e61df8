package field

import (
	"fmt"
	"strings"
)

// A Type represents a field type tag. The set of tags is closed: the loader
// rejects tag names outside it and the generator dispatches on it with a
// switch that has no fallback emission.
type Type uint8

// List of field type tags.
const (
	TypeInvalid Type = iota
	TypeString
	TypeInteger
	TypeFloat
	TypeBool
	TypeIndex
	TypeRecord
	TypeEnum
	TypeArray
	TypeFixedArray
	TypeAny
	TypeSpecial
	endTypes
)

var typeNames = [...]string{
	TypeInvalid:    "invalid",
	TypeString:     "String",
	TypeInteger:    "Integer",
	TypeFloat:      "Float",
	TypeBool:       "Bool",
	TypeIndex:      "Index",
	TypeRecord:     "Struct",
	TypeEnum:       "Enum",
	TypeArray:      "Array",
	TypeFixedArray: "FixedSizeArray",
	TypeAny:        "Any",
	TypeSpecial:    "Special",
}

// tagAliases maps alternative spellings accepted in schema files.
var tagAliases = map[string]Type{
	"Record":      TypeRecord,
	"Enumeration": TypeEnum,
	"FixedArray":  TypeFixedArray,
}

// String returns the schema spelling of the type tag.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

// Valid reports if the given type is a known tag.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Scalar reports if the type is one of the primitive value types.
func (t Type) Scalar() bool {
	switch t {
	case TypeString, TypeInteger, TypeFloat, TypeBool:
		return true
	}
	return false
}

// Entity reports if the type refers to another schema unit by name.
func (t Type) Entity() bool {
	switch t {
	case TypeIndex, TypeRecord, TypeEnum:
		return true
	}
	return false
}

// ParseType returns the type tag for its schema spelling.
func ParseType(s string) (Type, bool) {
	for t := TypeString; t < endTypes; t++ {
		if typeNames[t] == s {
			return t, true
		}
	}
	t, ok := tagAliases[s]
	return t, ok
}

// TypeInfo holds the information regarding a field type. It is a tagged
// variant: which of the other members are meaningful depends on Type.
type TypeInfo struct {
	Type Type
	// Of is the by-name target of Index, Record and Enum types, written as
	// a module path relative to the base package, e.g. "camera::Perspective".
	Of string
	// Elem is the element type of Array and FixedArray types.
	Elem *TypeInfo
	// Len is the element count of FixedArray types.
	Len int
	// Text is the literal Go type of Special fields.
	Text string
}

// String returns a schema-like rendering of the type, used in diagnostics.
func (t *TypeInfo) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Type {
	case TypeIndex, TypeRecord, TypeEnum:
		return fmt.Sprintf("%s<%s>", t.Type, t.Of)
	case TypeArray:
		return fmt.Sprintf("%s<%s>", t.Type, t.Elem)
	case TypeFixedArray:
		return fmt.Sprintf("%s<%s; %d>", t.Type, t.Elem, t.Len)
	case TypeSpecial:
		return fmt.Sprintf("%s(%s)", t.Type, t.Text)
	default:
		return t.Type.String()
	}
}

// Target splits the by-name reference of an entity type into its module path
// and entity name. Both "::" and "." are accepted as separators.
func (t *TypeInfo) Target() (module []string, name string) {
	ref := strings.ReplaceAll(t.Of, ".", "::")
	parts := strings.Split(strings.Trim(ref, ":"), "::")
	return parts[:len(parts)-1], parts[len(parts)-1]
}
