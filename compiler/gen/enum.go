package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/schemagen/schema"
)

// enumVariant is a variant with its resolved Go names.
type enumVariant struct {
	*schema.Variant
	ident string // constant name, e.g. AlphaModeBLEND
	disc  int64  // discriminant
}

// enumLiteral returns the Go literal of a variant.
func enumLiteral(v *schema.Variant) jen.Code {
	if v.Literal.Kind == schema.LitString {
		return jen.Lit(v.Literal.S)
	}
	return jen.Lit(int(v.Literal.I))
}

// genEnum generates the declaration and the checked codec of an enumeration.
func (c *Config) genEnum(u *schema.Unit) ([]jen.Code, error) {
	if u.Encoding != schema.EncodingString && u.Encoding != schema.EncodingInteger {
		return nil, schema.NewError(schema.ErrUnknownEncoding, u.Name, "", "of", "unknown enumeration encoding "+u.Encoding.String())
	}
	name := typeName(u.Name)
	variants := make([]*enumVariant, 0, len(u.Variants))
	seen := make(map[any]string, len(u.Variants))
	idents := make(map[string]string, len(u.Variants))
	for i, v := range u.Variants {
		want := schema.LitString
		if u.Encoding == schema.EncodingInteger {
			want = schema.LitInteger
		}
		if v.Literal.Kind != want {
			return nil, schema.NewError(schema.ErrWrongShape, u.Name, v.Name, "value", "expected "+want.String()+" literal, got "+v.Literal.Kind.String())
		}
		if prev, ok := seen[v.Literal.Value()]; ok {
			return nil, schema.NewError(schema.ErrDuplicateLiteral, u.Name, v.Name, "value", "literal "+v.Literal.String()+" already used by "+prev)
		}
		seen[v.Literal.Value()] = v.Name
		ev := &enumVariant{Variant: v, ident: name + typeName(v.Name)}
		if prev, ok := idents[ev.ident]; ok {
			return nil, NewGenerationError("enum", u.Name, "variants "+prev+" and "+v.Name+" have the same Go name "+ev.ident, nil)
		}
		idents[ev.ident] = v.Name
		// String discriminants follow declaration order, integer ones are
		// the declared literal.
		if u.Encoding == schema.EncodingString {
			ev.disc = int64(i + 1)
		} else {
			ev.disc = v.Literal.I
		}
		variants = append(variants, ev)
	}

	var (
		rcv    = receiver(name)
		litTyp = jen.String()
		zero   = jen.Lit("")
	)
	if u.Encoding == schema.EncodingInteger {
		litTyp, zero = jen.Uint32(), jen.Lit(0)
	}
	var blocks []jen.Code

	// Declaration.
	blocks = append(blocks, docs(u.Docs).Type().Id(name).Uint32())
	blocks = append(blocks, jen.Const().DefsFunc(func(g *jen.Group) {
		for _, v := range variants {
			for _, line := range docLines(v.Docs) {
				g.Comment(line)
			}
			g.Id(v.ident).Id(name).Op("=").Lit(int(v.disc))
		}
	}))

	// Values.
	blocks = append(blocks, jen.Commentf("%sValues returns all declared variants of %s, in declaration order.", name, name).Line().
		Func().Id(name+"Values").Params().Index().Id(name).Block(
		jen.Return(jen.Index().Id(name).ValuesFunc(func(g *jen.Group) {
			for _, v := range variants {
				g.Id(v.ident)
			}
		})),
	))

	// Decode.
	blocks = append(blocks, jen.Commentf("Decode%s returns the variant of %s declared with the given literal,", name, name).Line().
		Comment("or the Invalid sentinel if there is none.").Line().
		Func().Id("Decode"+name).Params(jen.Id("lit").Add(litTyp)).Qual(runtimePkg, "Checked").Types(jen.Id(name)).Block(
		jen.Switch(jen.Id("lit")).BlockFunc(func(g *jen.Group) {
			for _, v := range variants {
				g.Case(enumLiteral(v.Variant)).Block(
					jen.Return(jen.Qual(runtimePkg, "Valid").Call(jen.Id(v.ident))),
				)
			}
		}),
		jen.Return(jen.Qual(runtimePkg, "Invalid").Types(jen.Id(name)).Call()),
	))

	// Encode.
	blocks = append(blocks, jen.Comment("literal returns the literal declared for the variant.").Line().
		Func().Params(jen.Id(rcv).Id(name)).Id("literal").Params().Params(litTyp, jen.Bool()).Block(
		jen.Switch(jen.Id(rcv)).BlockFunc(func(g *jen.Group) {
			for _, v := range variants {
				g.Case(jen.Id(v.ident)).Block(
					jen.Return(enumLiteral(v.Variant), jen.True()),
				)
			}
		}),
		jen.Return(zero, jen.False()),
	))

	if u.Encoding == schema.EncodingString {
		blocks = append(blocks, jen.Comment("String returns the equivalent string value.").Line().
			Func().Params(jen.Id(rcv).Id(name)).Id("String").Params().String().Block(
			jen.If(jen.List(jen.Id("lit"), jen.Id("ok")).Op(":=").Id(rcv).Dot("literal").Call(), jen.Id("ok")).Block(
				jen.Return(jen.Id("lit")),
			),
			jen.Return(jen.Lit(name+"(").Op("+").Qual("strconv", "FormatUint").Call(jen.Uint64().Call(jen.Id(rcv)), jen.Lit(10)).Op("+").Lit(")")),
		))
	} else {
		blocks = append(blocks, jen.Comment("GLEnum returns the equivalent GLenum value.").Line().
			Func().Params(jen.Id(rcv).Id(name)).Id("GLEnum").Params().Uint32().Block(
			jen.Return(jen.Uint32().Call(jen.Id(rcv))),
		))
		blocks = append(blocks, jen.Comment("String returns the name of the variant.").Line().
			Func().Params(jen.Id(rcv).Id(name)).Id("String").Params().String().Block(
			jen.Switch(jen.Id(rcv)).BlockFunc(func(g *jen.Group) {
				for _, v := range variants {
					g.Case(jen.Id(v.ident)).Block(jen.Return(jen.Lit(v.Name)))
				}
			}),
			jen.Return(jen.Lit(name+"(").Op("+").Qual("strconv", "FormatUint").Call(jen.Uint64().Call(jen.Id(rcv)), jen.Lit(10)).Op("+").Lit(")")),
		))
	}

	// JSON codec.
	blocks = append(blocks, jen.Comment("MarshalJSON implements the json.Marshaler interface.").Line().
		Func().Params(jen.Id(rcv).Id(name)).Id("MarshalJSON").Params().Params(jen.Index().Byte(), jen.Error()).Block(
		jen.List(jen.Id("lit"), jen.Id("ok")).Op(":=").Id(rcv).Dot("literal").Call(),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Return(jen.Nil(), jen.Qual(runtimePkg, "NewInvalidValueError").Call(jen.Lit(name), jen.Uint32().Call(jen.Id(rcv)))),
		),
		jen.Return(jen.Qual("encoding/json", "Marshal").Call(jen.Id("lit"))),
	))
	blocks = append(blocks, jen.Comment("UnmarshalJSON implements the json.Unmarshaler interface. Literals that").Line().
		Comment("name no variant fail with a *schemagen.InvalidLiteralError.").Line().
		Func().Params(jen.Id(rcv).Op("*").Id(name)).Id("UnmarshalJSON").Params(jen.Id("data").Index().Byte()).Error().Block(
		jen.Var().Id("lit").Add(litTyp),
		jen.If(jen.Err().Op(":=").Qual("encoding/json", "Unmarshal").Call(jen.Id("data"), jen.Op("&").Id("lit")), jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Err()),
		),
		jen.List(jen.Id("variant"), jen.Id("ok")).Op(":=").Id("Decode"+name).Call(jen.Id("lit")).Dot("Get").Call(),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Return(jen.Qual(runtimePkg, "NewInvalidLiteralError").Call(jen.Lit(name), jen.Id("lit"))),
		),
		jen.Op("*").Id(rcv).Op("=").Id("variant"),
		jen.Return(jen.Nil()),
	))
	return blocks, nil
}
