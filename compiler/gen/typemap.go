package gen

import (
	"fmt"
	"math"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/schemagen/schema"
	"github.com/syssam/schemagen/schema/field"
)

// Directive is the serialization directive attached to a storage field.
type Directive uint8

// Serialization directives.
const (
	// DirectiveNone always writes the field.
	DirectiveNone Directive = iota
	// DirectiveOmitEmpty omits the field when it is absent.
	DirectiveOmitEmpty
	// DirectiveOmitDefault omits the field when it equals its default value.
	DirectiveOmitDefault
)

// String implements the fmt.Stringer interface.
func (d Directive) String() string {
	switch d {
	case DirectiveNone:
		return "none"
	case DirectiveOmitEmpty:
		return "omitempty"
	case DirectiveOmitDefault:
		return "omitdefault"
	default:
		return fmt.Sprintf("Directive(%d)", d)
	}
}

// Strategy is how an accessor method builds its result from the stored value.
type Strategy uint8

// Accessor strategies.
const (
	// StrategyNone means the field has no accessor.
	StrategyNone Strategy = iota
	// StrategyCopy returns the stored value.
	StrategyCopy
	// StrategyDeref dereferences an optional stored value.
	StrategyDeref
	// StrategyResolve resolves a stored index through the document.
	StrategyResolve
	// StrategyWrap wraps an embedded record in its accessor type.
	StrategyWrap
	// StrategyUnwrap unwraps a checked enumeration value.
	StrategyUnwrap
	// StrategyIter constructs a sequence over stored elements.
	StrategyIter
	// StrategyRaw returns an opaque payload.
	StrategyRaw
)

var strategyNames = [...]string{
	StrategyNone:    "none",
	StrategyCopy:    "copy",
	StrategyDeref:   "deref",
	StrategyResolve: "resolve",
	StrategyWrap:    "wrap",
	StrategyUnwrap:  "unwrap",
	StrategyIter:    "iter",
	StrategyRaw:     "raw",
}

// String implements the fmt.Stringer interface.
func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", s)
}

// Mapping holds the emission rules of one field.
type Mapping struct {
	// Storage is the type of the field in the storage struct.
	Storage jen.Code
	// Directive is the serialization directive of the storage field.
	Directive Directive
	// Accessor is the result type of the accessor method. When Optional is
	// set the method returns (Accessor, bool).
	Accessor jen.Code
	// Zero is the zero value of Accessor, returned with false for absent
	// optional values.
	Zero jen.Code
	// Strategy selects how the accessor body is constructed.
	Strategy Strategy
	// Optional reports if the accessor has a comma-ok result.
	Optional bool
	// Elem is the element type of Array and FixedArray fields.
	Elem *field.TypeInfo
	// Target is set for fields that reference another unit, or whose
	// elements do.
	Target *target
	// Default is the expression of the default value, for defaulted fields.
	Default jen.Code
}

// Map returns the emission rules of a field of the given unit. Tags outside
// the closed vocabulary and element types that cannot be stored fail with
// schema.ErrUnknownTypeTag; defaults that do not fit the field fail with
// schema.ErrWrongShape.
func (c *Config) Map(u *schema.Unit, f *schema.Field) (Mapping, error) {
	if f.Type == nil {
		return Mapping{}, schema.NewError(schema.ErrMissingField, u.Name, f.Name, "ty", "field has no type")
	}
	var (
		m   Mapping
		err error
	)
	switch t := f.Type; t.Type {
	case field.TypeString, field.TypeInteger, field.TypeFloat, field.TypeBool:
		m = c.mapScalar(t, f.Optional)
	case field.TypeIndex:
		tg := c.target(t)
		m = Mapping{
			Storage:  jen.Qual(runtimePkg, "Index").Types(jen.Qual(tg.pkg, tg.storage())),
			Accessor: jen.Qual(tg.pkg, tg.name),
			Zero:     jen.Qual(tg.pkg, tg.name).Values(),
			Strategy: StrategyResolve,
			Target:   &tg,
		}
		m.optional(f.Optional)
	case field.TypeRecord:
		tg := c.target(t)
		m = Mapping{
			Storage:  jen.Qual(tg.pkg, tg.storage()),
			Accessor: jen.Qual(tg.pkg, tg.name),
			Zero:     jen.Qual(tg.pkg, tg.name).Values(),
			Strategy: StrategyWrap,
			Target:   &tg,
		}
		m.optional(f.Optional)
	case field.TypeEnum:
		tg := c.target(t)
		m = Mapping{
			Storage:  jen.Qual(runtimePkg, "Checked").Types(jen.Qual(tg.pkg, tg.name)),
			Accessor: jen.Qual(tg.pkg, tg.name),
			Zero:     jen.Lit(0),
			Strategy: StrategyUnwrap,
			Target:   &tg,
		}
		m.optional(f.Optional)
	case field.TypeArray:
		m, err = c.mapArray(u, f)
	case field.TypeFixedArray:
		m, err = c.mapFixedArray(u, f)
	case field.TypeAny:
		// Any is always an optional opaque payload.
		m = Mapping{
			Storage:   jen.Qual("encoding/json", "RawMessage"),
			Directive: DirectiveOmitEmpty,
			Accessor:  jen.Qual("encoding/json", "RawMessage"),
			Zero:      jen.Nil(),
			Strategy:  StrategyRaw,
			Optional:  true,
		}
	case field.TypeSpecial:
		// Special fields are never optional and have no accessor.
		if f.Type.Text == "" {
			return Mapping{}, schema.NewError(schema.ErrMissingField, u.Name, f.Name, "of", "special field has no type text")
		}
		m = Mapping{
			Storage:  jen.Id(f.Type.Text),
			Strategy: StrategyNone,
		}
	default:
		return Mapping{}, schema.NewError(schema.ErrUnknownTypeTag, u.Name, f.Name, "ty", fmt.Sprintf("unknown type tag %s", t.Type))
	}
	if err != nil {
		return Mapping{}, err
	}
	if f.Default != nil {
		if err := c.mapDefault(u, f, &m); err != nil {
			return Mapping{}, err
		}
	}
	return m, nil
}

// optional turns a mapping into its optional form: a pointer in storage,
// omitted when absent, and a comma-ok accessor.
func (m *Mapping) optional(opt bool) {
	if !opt {
		return
	}
	m.Storage = jen.Op("*").Add(m.Storage)
	m.Directive = DirectiveOmitEmpty
	m.Optional = true
	if m.Strategy == StrategyCopy {
		m.Strategy = StrategyDeref
	}
}

// scalarType returns the Go type of a scalar tag.
func scalarType(t field.Type) (*jen.Statement, jen.Code) {
	switch t {
	case field.TypeString:
		return jen.String(), jen.Lit("")
	case field.TypeInteger:
		return jen.Uint32(), jen.Lit(0)
	case field.TypeFloat:
		return jen.Float32(), jen.Lit(0)
	default:
		return jen.Bool(), jen.False()
	}
}

func (c *Config) mapScalar(t *field.TypeInfo, opt bool) Mapping {
	typ, zero := scalarType(t.Type)
	m := Mapping{
		Storage:  typ,
		Accessor: typ,
		Zero:     zero,
		Strategy: StrategyCopy,
	}
	m.optional(opt)
	return m
}

// mapArray maps growable arrays. An empty array is the absent value, so the
// optional flag does not change the mapping.
func (c *Config) mapArray(u *schema.Unit, f *schema.Field) (Mapping, error) {
	elem := f.Type.Elem
	if elem == nil {
		return Mapping{}, schema.NewError(schema.ErrMissingField, u.Name, f.Name, "of", "array has no element type")
	}
	m := Mapping{
		Directive: DirectiveOmitEmpty,
		Zero:      jen.Nil(),
		Strategy:  StrategyIter,
		Elem:      elem,
	}
	switch elem.Type {
	case field.TypeString, field.TypeInteger, field.TypeFloat, field.TypeBool:
		typ, _ := scalarType(elem.Type)
		m.Storage = jen.Index().Add(typ)
		m.Accessor = jen.Op("*").Qual(runtimePkg, "Iter").Types(typ)
	case field.TypeIndex, field.TypeRecord, field.TypeEnum:
		tg := c.target(elem)
		var stored jen.Code
		switch elem.Type {
		case field.TypeIndex:
			stored = jen.Qual(runtimePkg, "Index").Types(jen.Qual(tg.pkg, tg.storage()))
		case field.TypeRecord:
			stored = jen.Qual(tg.pkg, tg.storage())
		default:
			stored = jen.Qual(runtimePkg, "Checked").Types(jen.Qual(tg.pkg, tg.name))
		}
		m.Storage = jen.Index().Add(stored)
		// The iterator type is emitted along with the storage type.
		m.Accessor = jen.Op("*").Id(iterName(u, f))
		m.Target = &tg
	default:
		return Mapping{}, schema.NewError(schema.ErrUnknownTypeTag, u.Name, f.Name, "of", fmt.Sprintf("unsupported array element %s", elem))
	}
	return m, nil
}

// mapFixedArray maps fixed-size arrays of scalars.
func (c *Config) mapFixedArray(u *schema.Unit, f *schema.Field) (Mapping, error) {
	elem := f.Type.Elem
	if elem == nil {
		return Mapping{}, schema.NewError(schema.ErrMissingField, u.Name, f.Name, "of", "array has no element type")
	}
	if !elem.Type.Scalar() {
		return Mapping{}, schema.NewError(schema.ErrUnknownTypeTag, u.Name, f.Name, "of", fmt.Sprintf("unsupported fixed-size array element %s", elem))
	}
	if f.Type.Len <= 0 {
		return Mapping{}, schema.NewError(schema.ErrWrongShape, u.Name, f.Name, "n", fmt.Sprintf("invalid array length %d", f.Type.Len))
	}
	typ, _ := scalarType(elem.Type)
	m := Mapping{
		Storage:  jen.Index(jen.Lit(f.Type.Len)).Add(typ),
		Accessor: jen.Op("*").Qual(runtimePkg, "Iter").Types(typ),
		Zero:     jen.Nil(),
		Strategy: StrategyIter,
		Elem:     elem,
	}
	m.optional(f.Optional)
	return m, nil
}

// mapDefault validates the default literal of a field against its type and
// records the expression producing it.
func (c *Config) mapDefault(u *schema.Unit, f *schema.Field, m *Mapping) error {
	if f.Optional {
		return schema.NewError(schema.ErrConflictingOptionalDefault, u.Name, f.Name, "default", "optional field declares a default")
	}
	lit := *f.Default
	wrong := func() error {
		return schema.NewError(schema.ErrWrongShape, u.Name, f.Name, "default", fmt.Sprintf("%s default %s does not fit %s", lit.Kind, lit, f.Type))
	}
	switch f.Type.Type {
	case field.TypeString:
		if lit.Kind != schema.LitString {
			return wrong()
		}
		m.Default = jen.Lit(lit.S)
	case field.TypeInteger:
		if lit.Kind != schema.LitInteger || lit.I < 0 || lit.I > math.MaxUint32 {
			return wrong()
		}
		m.Default = jen.Lit(int(lit.I))
	case field.TypeFloat:
		switch lit.Kind {
		case schema.LitFloat:
			m.Default = jen.Lit(lit.F)
		case schema.LitInteger:
			m.Default = jen.Lit(float64(lit.I))
		default:
			return wrong()
		}
	case field.TypeBool:
		if lit.Kind != schema.LitBool {
			return wrong()
		}
		m.Default = jen.Lit(lit.B)
	case field.TypeEnum:
		var arg jen.Code
		switch lit.Kind {
		case schema.LitString:
			arg = jen.Lit(lit.S)
		case schema.LitInteger:
			if lit.I < 0 || lit.I > math.MaxUint32 {
				return wrong()
			}
			arg = jen.Lit(int(lit.I))
		default:
			return wrong()
		}
		m.Default = jen.Qual(m.Target.pkg, "Decode"+m.Target.name).Call(arg)
	default:
		return schema.NewError(schema.ErrWrongShape, u.Name, f.Name, "default", fmt.Sprintf("%s fields cannot declare a default", f.Type.Type))
	}
	m.Directive = DirectiveOmitDefault
	return nil
}
