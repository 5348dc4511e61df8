package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/schemagen/schema/field"
)

// Kind describes what a schema unit declares.
type Kind uint8

// Unit kinds.
const (
	KindRecord Kind = iota + 1
	KindEnum
)

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindRecord:
		return "Struct"
	case KindEnum:
		return "Enum"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Encoding describes how the variants of an enumeration are written on the wire.
type Encoding uint8

// Enumeration encodings.
const (
	EncodingString Encoding = iota + 1
	EncodingInteger
)

// String implements the fmt.Stringer interface.
func (e Encoding) String() string {
	switch e {
	case EncodingString:
		return "String"
	case EncodingInteger:
		return "Integer"
	default:
		return "Encoding(" + strconv.Itoa(int(e)) + ")"
	}
}

// Unit is one compiled entity: a record type or an enumerated type.
type Unit struct {
	// Name is the declared identifier of the entity.
	Name string
	// Module is the nesting path of the entity. Empty means the base package.
	Module []string
	Kind   Kind
	Docs   string
	// Fields of a record, in declaration order.
	Fields []*Field
	// Encoding and Variants of an enumeration, in declaration order.
	Encoding Encoding
	Variants []*Variant
	// Include is a verbatim code block emitted ahead of the generated code.
	Include string
	// Source is the file the unit was loaded from, if any.
	Source string
}

// QualifiedName returns the unit name prefixed by its module path using "::",
// e.g. "camera::Perspective". It is the same form used by field references.
func (u *Unit) QualifiedName() string {
	return strings.Join(append(append([]string(nil), u.Module...), u.Name), "::")
}

// Field returns the field with the given name, or nil.
func (u *Unit) Field(name string) *Field {
	for _, f := range u.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Field is one member of a record.
type Field struct {
	Name string
	Docs string
	// Key is the serialized name of the field. Empty means Name.
	Key      string
	Type     *field.TypeInfo
	Optional bool
	Default  *Literal
	// Hidden fields are kept in the storage type but have no accessor.
	Hidden bool
}

// StorageKey returns the serialized name of the field.
func (f *Field) StorageKey() string {
	if f.Key != "" {
		return f.Key
	}
	return f.Name
}

// Visible reports if the field is exposed by the accessor type.
func (f *Field) Visible() bool {
	return !f.Hidden && f.Type != nil && f.Type.Type != field.TypeSpecial
}

// Variant is one case of an enumeration.
type Variant struct {
	Name    string
	Docs    string
	Literal Literal
}

// LiteralKind is the kind of a scalar literal.
type LiteralKind uint8

// Literal kinds.
const (
	LitString LiteralKind = iota + 1
	LitInteger
	LitFloat
	LitBool
)

// String implements the fmt.Stringer interface.
func (k LiteralKind) String() string {
	switch k {
	case LitString:
		return "string"
	case LitInteger:
		return "integer"
	case LitFloat:
		return "float"
	case LitBool:
		return "bool"
	default:
		return "LiteralKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Literal is a scalar value written in a schema file.
type Literal struct {
	Kind LiteralKind
	S    string
	I    int64
	F    float64
	B    bool
}

// StringLit returns a string literal.
func StringLit(s string) Literal { return Literal{Kind: LitString, S: s} }

// IntLit returns an integer literal.
func IntLit(i int64) Literal { return Literal{Kind: LitInteger, I: i} }

// FloatLit returns a float literal.
func FloatLit(f float64) Literal { return Literal{Kind: LitFloat, F: f} }

// BoolLit returns a bool literal.
func BoolLit(b bool) Literal { return Literal{Kind: LitBool, B: b} }

// Value returns the literal as a Go value of its natural type.
func (l Literal) Value() any {
	switch l.Kind {
	case LitString:
		return l.S
	case LitInteger:
		return l.I
	case LitFloat:
		return l.F
	case LitBool:
		return l.B
	default:
		return nil
	}
}

// String implements the fmt.Stringer interface.
func (l Literal) String() string {
	if l.Kind == LitString {
		return strconv.Quote(l.S)
	}
	return fmt.Sprint(l.Value())
}
