package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/schemagen/schema"
	"github.com/syssam/schemagen/schema/field"
)

// recordField is a field of a record together with its emission rules.
// Optional and Default are ambiguous between the embedded types and must be
// selected through Mapping or Field.
type recordField struct {
	*schema.Field
	Mapping
	// ident is the Go name of the storage field.
	ident string
}

// defaultFunc returns the name of the default producer of the field.
func (f *recordField) defaultFunc(u *schema.Unit) string {
	return camel(typeName(u.Name)) + f.ident + "Default"
}

// isDefaultFunc returns the name of the default predicate of the field.
func (f *recordField) isDefaultFunc(u *schema.Unit) string {
	return camel(typeName(u.Name)) + f.ident + "IsDefault"
}

// iterName returns the name of the iterator type of an array field whose
// elements refer to other units.
func iterName(u *schema.Unit, f *schema.Field) string {
	return typeName(u.Name) + typeName(f.Name) + "Iter"
}

// recordFields maps the boilerplate members and the declared fields of a
// record, in that order.
func (c *Config) recordFields(u *schema.Unit) ([]*recordField, error) {
	all := append(c.members(u), u.Fields...)
	fields := make([]*recordField, 0, len(all))
	idents := make(map[string]string, len(all))
	for _, f := range all {
		m, err := c.Map(u, f)
		if err != nil {
			return nil, err
		}
		rf := &recordField{Field: f, Mapping: m, ident: typeName(f.Name)}
		if prev, ok := idents[rf.ident]; ok {
			return nil, NewGenerationError("struct", u.Name, "fields "+prev+" and "+f.Name+" have the same Go name "+rf.ident, nil)
		}
		idents[rf.ident] = f.Name
		fields = append(fields, rf)
	}
	return fields, nil
}

// tag returns the struct tag of a storage field.
func (f *recordField) tag() map[string]string {
	key := f.StorageKey()
	if f.Directive == DirectiveOmitEmpty {
		key += ",omitempty"
	}
	return map[string]string{"json": key}
}

// genStruct generates the storage type of a record, the default helpers of
// its defaulted fields, and the iterators of its entity arrays.
func (c *Config) genStruct(u *schema.Unit, fields []*recordField) []jen.Code {
	var (
		name      = typeName(u.Name) + "JSON"
		defaulted []*recordField
		blocks    []jen.Code
	)
	blocks = append(blocks, jen.Commentf("%s is the serialized form of %s.", name, typeName(u.Name)).Line().
		Type().Id(name).StructFunc(func(g *jen.Group) {
		for i, f := range fields {
			if i > 0 {
				g.Line()
			}
			for _, l := range docLines(f.Docs) {
				g.Comment(l)
			}
			g.Id(f.ident).Add(f.Storage).Tag(f.tag())
			if f.Directive == DirectiveOmitDefault {
				defaulted = append(defaulted, f)
			}
		}
	}))
	for _, f := range fields {
		if f.Directive == DirectiveOmitDefault {
			blocks = append(blocks, c.genDefault(u, f)...)
		}
	}
	if len(defaulted) > 0 {
		blocks = append(blocks, c.genDefaultCodec(u, defaulted)...)
	}
	for _, f := range fields {
		if f.Strategy == StrategyIter && f.Target != nil {
			blocks = append(blocks, c.genIter(u, f)...)
		}
	}
	return blocks
}

// genDefault generates the default producer and predicate of a field.
func (c *Config) genDefault(u *schema.Unit, f *recordField) []jen.Code {
	fn, is := f.defaultFunc(u), f.isDefaultFunc(u)
	cmp := jen.Id("x").Op("==").Id(fn).Call()
	if f.Type.Type == field.TypeFloat {
		cmp = jen.Qual(runtimePkg, "ApproxEqual").Call(jen.Id("x"), jen.Id(fn).Call())
	}
	return []jen.Code{
		jen.Commentf("%s returns the default value of the %s field.", fn, f.Name).Line().
			Func().Id(fn).Params().Add(f.Storage).Block(
			jen.Return(f.Mapping.Default),
		),
		jen.Commentf("%s reports if x is the default value of the %s field.", is, f.Name).Line().
			Func().Id(is).Params(jen.Id("x").Add(f.Storage)).Bool().Block(
			jen.Return(cmp),
		),
	}
}

// genDefaultCodec generates the JSON codec of a storage type that omits
// fields equal to their default and fills in absent ones.
func (c *Config) genDefaultCodec(u *schema.Unit, defaulted []*recordField) []jen.Code {
	name := typeName(u.Name) + "JSON"
	rcv := receiver(name)
	return []jen.Code{
		jen.Comment("MarshalJSON implements the json.Marshaler interface. Fields equal").Line().
			Comment("to their default value are omitted.").Line().
			Func().Params(jen.Id(rcv).Id(name)).Id("MarshalJSON").Params().Params(jen.Index().Byte(), jen.Error()).BlockFunc(func(g *jen.Group) {
			g.Type().Id("plain").Id(name)
			g.Id("out").Op(":=").StructFunc(func(g *jen.Group) {
				g.Id("plain")
				for _, f := range defaulted {
					g.Id(f.ident).Op("*").Add(f.Storage).Tag(map[string]string{"json": f.StorageKey() + ",omitempty"})
				}
			}).Values(jen.Dict{jen.Id("plain"): jen.Id("plain").Call(jen.Id(rcv))})
			for _, f := range defaulted {
				g.If(jen.Op("!").Id(f.isDefaultFunc(u)).Call(jen.Id(rcv).Dot(f.ident))).Block(
					jen.Id("out").Dot(f.ident).Op("=").Op("&").Id(rcv).Dot(f.ident),
				)
			}
			g.Return(jen.Qual("encoding/json", "Marshal").Call(jen.Id("out")))
		}),
		jen.Comment("UnmarshalJSON implements the json.Unmarshaler interface. Absent").Line().
			Comment("fields take their default value.").Line().
			Func().Params(jen.Id(rcv).Op("*").Id(name)).Id("UnmarshalJSON").Params(jen.Id("data").Index().Byte()).Error().Block(
			jen.Type().Id("plain").Id(name),
			jen.Id("v").Op(":=").Id("plain").Values(jen.DictFunc(func(d jen.Dict) {
				for _, f := range defaulted {
					d[jen.Id(f.ident)] = jen.Id(f.defaultFunc(u)).Call()
				}
			})),
			jen.If(jen.Err().Op(":=").Qual("encoding/json", "Unmarshal").Call(jen.Id("data"), jen.Op("&").Id("v")), jen.Err().Op("!=").Nil()).Block(
				jen.Return(jen.Err()),
			),
			jen.Op("*").Id(rcv).Op("=").Id(name).Call(jen.Id("v")),
			jen.Return(jen.Nil()),
		),
	}
}

// elemValue returns the expression producing the accessor value of one
// stored element of an entity array.
func elemValue(tg *target, elem field.Type, doc, item jen.Code) jen.Code {
	switch elem {
	case field.TypeIndex:
		return jen.Qual(tg.pkg, "New"+tg.name).Call(doc, jen.Qual(runtimePkg, "Resolve").Call(doc, jen.Lit(tg.kind), item))
	case field.TypeRecord:
		return jen.Qual(tg.pkg, "New"+tg.name).Call(doc, jen.Op("&").Add(item))
	default:
		return jen.Add(item).Dot("Unwrap").Call()
	}
}

// genIter generates the iterator type of an array field whose elements refer
// to other units.
func (c *Config) genIter(u *schema.Unit, f *recordField) []jen.Code {
	var (
		name  = iterName(u, f.Field)
		rcv   = "it"
		elem  = jen.Qual(f.Target.pkg, f.Target.name)
		items = f.Storage
	)
	next := jen.Id(rcv).Dot("items").Index(jen.Id(rcv).Dot("pos"))
	return []jen.Code{
		jen.Commentf("%s iterates over the %s of a %s.", name, f.Name, typeName(u.Name)).Line().
			Type().Id(name).Struct(
			jen.Id("doc").Qual(runtimePkg, "Document"),
			jen.Id("items").Add(items),
			jen.Id("pos").Int(),
		),
		jen.Comment("Len returns the number of remaining items.").Line().
			Func().Params(jen.Id(rcv).Op("*").Id(name)).Id("Len").Params().Int().Block(
			jen.Return(jen.Len(jen.Id(rcv).Dot("items")).Op("-").Id(rcv).Dot("pos")),
		),
		jen.Comment("Next returns the next item. It returns false when the iterator is exhausted.").Line().
			Func().Params(jen.Id(rcv).Op("*").Id(name)).Id("Next").Params().Params(elem, jen.Bool()).Block(
			jen.If(jen.Id(rcv).Dot("pos").Op(">=").Len(jen.Id(rcv).Dot("items"))).Block(
				jen.Return(f.elemZero(), jen.False()),
			),
			jen.Id("v").Op(":=").Add(elemValue(f.Target, f.Elem.Type, jen.Id(rcv).Dot("doc"), next)),
			jen.Id(rcv).Dot("pos").Op("++"),
			jen.Return(jen.Id("v"), jen.True()),
		),
		jen.Comment("All returns a sequence over the remaining items.").Line().
			Func().Params(jen.Id(rcv).Op("*").Id(name)).Id("All").Params().Qual("iter", "Seq").Types(elem).Block(
			jen.Return(jen.Func().Params(jen.Id("yield").Func().Params(elem).Bool()).Block(
				jen.For().Block(
					jen.List(jen.Id("v"), jen.Id("ok")).Op(":=").Id(rcv).Dot("Next").Call(),
					jen.If(jen.Op("!").Id("ok").Op("||").Op("!").Id("yield").Call(jen.Id("v"))).Block(
						jen.Return(),
					),
				),
			)),
		),
	}
}

// elemZero returns the zero value of the accessor value of an element.
func (f *recordField) elemZero() jen.Code {
	if f.Elem.Type == field.TypeEnum {
		return jen.Lit(0)
	}
	return jen.Qual(f.Target.pkg, f.Target.name).Values()
}
