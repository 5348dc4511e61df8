package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/schemagen/schema"
	"github.com/syssam/schemagen/schema/field"
)

// reservedMethods holds the methods of the accessor type that field
// accessors must not redefine.
var reservedMethods = map[string]bool{
	"JSON":     true,
	"Document": true,
	"String":   true,
}

// methodName returns the name of the accessor method of a field.
func methodName(f *recordField) string {
	if reservedMethods[f.ident] {
		return "Get" + f.ident
	}
	return f.ident
}

// genAccessor generates the accessor type of a record: a view over the
// storage value that resolves references through the document.
func (c *Config) genAccessor(u *schema.Unit, fields []*recordField) ([]jen.Code, error) {
	var (
		name    = typeName(u.Name)
		storage = name + "JSON"
		rcv     = receiver(name)
		blocks  []jen.Code
	)
	decl := docs(u.Docs)
	if len(docLines(u.Docs)) == 0 {
		decl = jen.Commentf("%s gives access to a %s within its document.", name, storage).Line()
	}
	blocks = append(blocks,
		decl.Type().Id(name).Struct(
			jen.Id("doc").Qual(runtimePkg, "Document"),
			jen.Id("json").Op("*").Id(storage),
		),
		jen.Commentf("New%s returns the accessor of a %s held by doc.", name, storage).Line().
			Func().Id("New"+name).Params(jen.Id("doc").Qual(runtimePkg, "Document"), jen.Id("raw").Op("*").Id(storage)).Id(name).Block(
			jen.Return(jen.Id(name).Values(jen.Dict{
				jen.Id("doc"):  jen.Id("doc"),
				jen.Id("json"): jen.Id("raw"),
			})),
		),
		jen.Comment("JSON returns the underlying storage value.").Line().
			Func().Params(jen.Id(rcv).Id(name)).Id("JSON").Params().Op("*").Id(storage).Block(
			jen.Return(jen.Id(rcv).Dot("json")),
		),
		jen.Comment("Document returns the document the value belongs to.").Line().
			Func().Params(jen.Id(rcv).Id(name)).Id("Document").Params().Qual(runtimePkg, "Document").Block(
			jen.Return(jen.Id(rcv).Dot("doc")),
		),
	)
	methods := make(map[string]string, len(fields))
	for _, f := range fields {
		if !f.Visible() || f.Strategy == StrategyNone {
			continue
		}
		mn := methodName(f)
		if prev, ok := methods[mn]; ok {
			return nil, NewGenerationError("accessor", u.Name, "fields "+prev+" and "+f.Name+" have the same accessor "+mn, nil)
		}
		methods[mn] = f.Name
		results := jen.Add(f.Accessor)
		if f.Mapping.Optional {
			results = jen.Params(f.Accessor, jen.Bool())
		}
		doc := docs(f.Docs)
		if len(docLines(f.Docs)) == 0 {
			doc = jen.Commentf("%s returns the %s field.", mn, f.Name).Line()
		}
		blocks = append(blocks, doc.Func().Params(jen.Id(rcv).Id(name)).Id(mn).Params().Add(results).Block(
			c.accessorBody(u, f, rcv)...,
		))
	}
	return blocks, nil
}

// accessorBody returns the statements of the accessor method of a field.
func (c *Config) accessorBody(u *schema.Unit, f *recordField, rcv string) []jen.Code {
	val := func() *jen.Statement {
		return jen.Id(rcv).Dot("json").Dot(f.ident)
	}
	doc := jen.Id(rcv).Dot("doc")
	// absent guards optional values stored as pointers.
	absent := jen.If(val().Op("==").Nil()).Block(
		jen.Return(f.Zero, jen.False()),
	)
	ret := func(v jen.Code) []jen.Code {
		if f.Mapping.Optional {
			return []jen.Code{absent, jen.Return(v, jen.True())}
		}
		return []jen.Code{jen.Return(v)}
	}
	switch f.Strategy {
	case StrategyCopy:
		return ret(val())
	case StrategyDeref:
		return ret(jen.Op("*").Add(val()))
	case StrategyResolve:
		idx := val()
		if f.Mapping.Optional {
			idx = jen.Op("*").Add(val())
		}
		return ret(jen.Qual(f.Target.pkg, "New"+f.Target.name).Call(doc, jen.Qual(runtimePkg, "Resolve").Call(doc, jen.Lit(f.Target.kind), idx)))
	case StrategyWrap:
		ptr := val()
		if !f.Mapping.Optional {
			ptr = jen.Op("&").Add(val())
		}
		return ret(jen.Qual(f.Target.pkg, "New"+f.Target.name).Call(doc, ptr))
	case StrategyUnwrap:
		return ret(val().Dot("Unwrap").Call())
	case StrategyIter:
		switch {
		case f.Target != nil:
			return ret(jen.Op("&").Id(iterName(u, f.Field)).Values(jen.Dict{
				jen.Id("doc"):   doc,
				jen.Id("items"): val(),
			}))
		case f.Type.Type == field.TypeFixedArray:
			return ret(jen.Qual(runtimePkg, "NewIter").Call(val().Index(jen.Empty(), jen.Empty())))
		default:
			return ret(jen.Qual(runtimePkg, "NewIter").Call(val()))
		}
	case StrategyRaw:
		return []jen.Code{
			jen.If(jen.Len(val()).Op("==").Lit(0)).Block(
				jen.Return(f.Zero, jen.False()),
			),
			jen.Return(val(), jen.True()),
		}
	default:
		return []jen.Code{jen.Panic(jen.Lit("unreachable"))}
	}
}
