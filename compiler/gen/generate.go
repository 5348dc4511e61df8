package gen

import (
	"errors"
	"io"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/schemagen/schema"
)

// Generator compiles schema units into Go source files.
//
// Example:
//
//	u, err := load.Load("camera.toml")
//	if err != nil {
//		return err
//	}
//	g := gen.NewGenerator(gen.MustNewConfig(gen.WithPackage("example.com/gltf/schema")))
//	if err := g.Generate(os.Stdout, u); err != nil {
//		return err
//	}
type Generator struct {
	cfg *Config
}

// NewGenerator creates a new generator. A nil config uses the defaults.
func NewGenerator(cfg *Config) *Generator {
	if cfg == nil {
		cfg = &Config{Package: DefaultPackage}
	}
	return &Generator{cfg: cfg}
}

// Config returns the configuration of the generator.
func (g *Generator) Config() *Config {
	return g.cfg
}

// File builds the file of a unit without rendering it.
func (g *Generator) File(u *schema.Unit) (*jen.File, error) {
	if u == nil {
		return nil, NewGenerationError("unit", "", "nil unit", nil)
	}
	if u.Name == "" {
		return nil, wrap("unit", u, schema.NewError(schema.ErrMissingField, u.Source, "", "ident", "unit has no name"))
	}
	var blocks []jen.Code
	switch u.Kind {
	case schema.KindEnum:
		enum, err := g.cfg.genEnum(u)
		if err != nil {
			return nil, wrap("enum", u, err)
		}
		blocks = enum
	case schema.KindRecord:
		fields, err := g.cfg.recordFields(u)
		if err != nil {
			return nil, wrap("struct", u, err)
		}
		acc, err := g.cfg.genAccessor(u, fields)
		if err != nil {
			return nil, wrap("accessor", u, err)
		}
		blocks = append(g.cfg.genStruct(u, fields), acc...)
	default:
		return nil, wrap("unit", u, schema.NewError(schema.ErrWrongShape, u.Name, "", "kind", "unknown unit kind "+u.Kind.String()))
	}
	return g.cfg.Assemble(u, blocks), nil
}

// Generate compiles a unit and writes the formatted source to w. Nothing is
// written if any phase fails.
func (g *Generator) Generate(w io.Writer, u *schema.Unit) error {
	f, err := g.File(u)
	if err != nil {
		return err
	}
	return g.cfg.Render(w, u, f)
}

// Generate compiles a unit with the given options and writes the formatted
// source to w.
func Generate(w io.Writer, u *schema.Unit, opts ...Option) error {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return err
	}
	return NewGenerator(cfg).Generate(w, u)
}

// wrap attaches the phase and the unit to an emission error. Errors that
// already carry them are returned as is.
func wrap(phase string, u *schema.Unit, err error) error {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return err
	}
	return NewGenerationError(phase, u.Name, "", err)
}
