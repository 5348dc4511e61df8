package gen

import (
	"bytes"
	"io"
	"path"
	"strings"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"

	"github.com/syssam/schemagen/schema"
	"github.com/syssam/schemagen/schema/field"
)

// docLines splits schema docs into comment lines. Every line becomes its own
// line comment, since jennifer renders multi-line comments as blocks.
func docLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		l = strings.TrimRight(l, " \t\r")
		if strings.HasPrefix(l, "//") || strings.HasPrefix(l, "/*") {
			l = " " + l
		}
		lines[i] = l
	}
	return lines
}

// docs returns a statement holding the doc comment of a declaration. The
// declaration is chained on the returned statement.
func docs(s string) *jen.Statement {
	stmt := jen.Null()
	for _, l := range docLines(s) {
		stmt.Comment(l).Line()
	}
	return stmt
}

// Assemble creates the file of a unit: the package is derived from the module
// path of the unit, the include block goes first and the generated blocks
// follow in order.
func (c *Config) Assemble(u *schema.Unit, blocks []jen.Code) *jen.File {
	f := jen.NewFilePathName(c.PkgPath(u.Module), c.PkgName(u.Module))
	f.HeaderComment(c.header())
	c.importNames(f, u)
	if inc := strings.TrimSpace(u.Include); inc != "" {
		f.Id(inc)
		f.Line()
	}
	for i, b := range blocks {
		if i > 0 {
			f.Line()
		}
		f.Add(b)
	}
	return f
}

// importNames registers the package names of the runtime and of the units
// referenced by u, so that their imports are rendered without aliases.
// Packages sharing a name with an earlier one keep a generated alias.
func (c *Config) importNames(f *jen.File, u *schema.Unit) {
	f.ImportNames(map[string]string{
		runtimePkg:      "schemagen",
		"encoding/json": "json",
		"iter":          "iter",
		"strconv":       "strconv",
	})
	seen := map[string]string{"schemagen": runtimePkg}
	for _, fd := range u.Fields {
		if fd.Type == nil {
			continue
		}
		for _, info := range []*field.TypeInfo{fd.Type, fd.Type.Elem} {
			if info == nil || !info.Type.Entity() {
				continue
			}
			module, _ := info.Target()
			p, name := c.PkgPath(module), c.PkgName(module)
			if prev, ok := seen[name]; ok && prev != p {
				continue
			}
			seen[name] = p
			f.ImportName(p, name)
		}
	}
}

// FileName returns the path of the generated file of a unit, relative to the
// output directory: one directory per module segment and the unit name in
// snake case.
func (c *Config) FileName(u *schema.Unit) string {
	parts := make([]string, 0, len(u.Module)+1)
	for _, m := range u.Module {
		parts = append(parts, pkgName(m))
	}
	parts = append(parts, snake(typeName(u.Name))+".go")
	return path.Join(parts...)
}

// Render formats the file and writes it to w. Imports needed by verbatim
// include blocks are resolved while formatting. Nothing is written if the
// file fails to render.
func (c *Config) Render(w io.Writer, u *schema.Unit, f *jen.File) error {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return NewGenerationError("module", u.Name, "render file", err)
	}
	src, err := imports.Process(path.Join(c.PkgPath(u.Module), path.Base(c.FileName(u))), buf.Bytes(), nil)
	if err != nil {
		return NewGenerationError("module", u.Name, "format file", err)
	}
	if _, err := w.Write(src); err != nil {
		return NewGenerationError("module", u.Name, "write file", err)
	}
	return nil
}
