// Package load reads schema unit files and turns them into validated
// schema.Unit values.
package load

import (
	"fmt"
	"io/fs"
	"math"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/syssam/schemagen/schema"
	"github.com/syssam/schemagen/schema/field"
)

// Load reads the schema unit at the given path. The syntax is selected by
// the file extension: ".toml", ".yaml" or ".yml".
func Load(p string) (*schema.Unit, error) {
	return LoadFS(os.DirFS(filepath.Dir(p)), filepath.Base(p))
}

// LoadFS reads the schema unit with the given name from fsys. Include files
// named by the unit are resolved relative to the directory of the unit.
func LoadFS(fsys fs.FS, name string) (*schema.Unit, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	var u *schema.Unit
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".toml":
		u, err = LoadTOML(name, data)
	case ".yaml", ".yml":
		u, err = LoadYAML(name, data)
	default:
		return nil, fmt.Errorf("read schema %s: unsupported file extension %q", name, ext)
	}
	if err != nil {
		return nil, err
	}
	if u.Include != "" {
		buf, err := fs.ReadFile(fsys, path.Join(path.Dir(name), u.Include))
		if err != nil {
			return nil, fmt.Errorf("read include of %s: %w", name, err)
		}
		u.Include = string(buf)
	}
	return u, nil
}

// LoadTOML decodes a schema unit from TOML source. The source name is used
// in diagnostics only. An include key in the unit is returned unresolved in
// Unit.Include; use LoadFS to have it read.
func LoadTOML(source string, data []byte) (*schema.Unit, error) {
	t, err := parseTOML(data)
	if err != nil {
		return nil, &schema.Error{Code: schema.ErrWrongShape, Unit: source, Message: "malformed TOML", Cause: err}
	}
	return decode(source, t)
}

// LoadYAML decodes a schema unit from YAML source, with the same layout as
// the TOML form.
func LoadYAML(source string, data []byte) (*schema.Unit, error) {
	t, err := parseYAML(data)
	if err != nil {
		return nil, &schema.Error{Code: schema.ErrWrongShape, Unit: source, Message: "malformed YAML", Cause: err}
	}
	return decode(source, t)
}

// decoder builds a unit from a decoded table and reports errors against
// the unit being decoded.
type decoder struct {
	unit string
}

func decode(source string, root *table) (*schema.Unit, error) {
	d := &decoder{unit: source}
	meta, err := d.table(root, "", "meta")
	if err != nil {
		return nil, err
	}
	name, err := d.stringAlias(meta, "", "ident", "identity")
	if err != nil {
		return nil, err
	}
	d.unit = name
	u := &schema.Unit{Name: name, Source: source}
	if u.Docs, err = d.string(meta, "", "docs"); err != nil {
		return nil, err
	}
	if u.Module, err = d.module(meta); err != nil {
		return nil, err
	}
	if u.Include, err = d.optionalString(meta, "", "include"); err != nil {
		return nil, err
	}
	kind, err := d.string(meta, "", "kind")
	if err != nil {
		return nil, err
	}
	switch kind {
	case "Struct", "Record":
		u.Kind = schema.KindRecord
		err = d.fields(u, root)
	case "Enum", "Enumeration":
		u.Kind = schema.KindEnum
		err = d.variants(u, meta, root)
	default:
		return nil, d.errorf(schema.ErrWrongShape, "", "kind", "unknown unit kind %q", kind)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (d *decoder) module(meta *table) ([]string, error) {
	v, ok := meta.get("module")
	if !ok {
		return nil, nil
	}
	var parts []string
	switch v := v.(type) {
	case string:
		parts = strings.Split(v, "::")
	case []any:
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, d.errorf(schema.ErrWrongShape, "", "module", "expected string segments, got %s", shapeName(e))
			}
			parts = append(parts, s)
		}
	default:
		return nil, d.shape("", "module", "string", v, meta)
	}
	var module []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			module = append(module, p)
		}
	}
	return module, nil
}

func (d *decoder) fields(u *schema.Unit, root *table) error {
	fields, err := d.table(root, "", "fields")
	if err != nil {
		return err
	}
	for _, name := range fields.keys {
		ft, ok := fields.values[name].(*table)
		if !ok {
			return d.shape(name, "fields", "table", fields.values[name], fields)
		}
		f, err := d.field(name, ft)
		if err != nil {
			return err
		}
		u.Fields = append(u.Fields, f)
	}
	return nil
}

func (d *decoder) field(name string, t *table) (*schema.Field, error) {
	f := &schema.Field{Name: name}
	var err error
	if f.Docs, err = d.string(t, name, "docs"); err != nil {
		return nil, err
	}
	if f.Type, err = d.typeInfo(name, t); err != nil {
		return nil, err
	}
	if f.Key, err = d.optionalString(t, name, "key"); err != nil {
		return nil, err
	}
	if f.Optional, err = d.optionalBool(t, name, "optional"); err != nil {
		return nil, err
	}
	if f.Hidden, err = d.optionalBool(t, name, "hidden"); err != nil {
		return nil, err
	}
	if v, ok := t.get("default"); ok {
		lit, err := d.literal(name, "default", v, t)
		if err != nil {
			return nil, err
		}
		f.Default = &lit
	}
	if f.Optional && f.Default != nil {
		return nil, d.errorf(schema.ErrConflictingOptionalDefault, name, "default", "optional field declares default %s", f.Default)
	}
	return f, nil
}

// typeInfo decodes the "ty" and "of" keys of a field or element table.
func (d *decoder) typeInfo(item string, t *table) (*field.TypeInfo, error) {
	tag, err := d.string(t, item, "ty")
	if err != nil {
		return nil, err
	}
	typ, ok := field.ParseType(tag)
	if !ok {
		return nil, d.errorf(schema.ErrUnknownTypeTag, item, "ty", "unknown type tag %q", tag)
	}
	info := &field.TypeInfo{Type: typ}
	switch typ {
	case field.TypeIndex, field.TypeRecord, field.TypeEnum:
		if info.Of, err = d.string(t, item, "of"); err != nil {
			return nil, err
		}
	case field.TypeSpecial:
		if info.Text, err = d.string(t, item, "of"); err != nil {
			return nil, err
		}
	case field.TypeArray:
		of, ok := t.get("of")
		if !ok {
			return nil, d.errorf(schema.ErrMissingField, item, "of", "array element type is required")
		}
		switch of := of.(type) {
		case string:
			// A scalar tag names the element type, anything else names a
			// record stored inline.
			if et, ok := field.ParseType(of); ok && et.Scalar() {
				info.Elem = &field.TypeInfo{Type: et}
			} else {
				info.Elem = &field.TypeInfo{Type: field.TypeRecord, Of: of}
			}
		case *table:
			if info.Elem, err = d.typeInfo(item, of); err != nil {
				return nil, err
			}
		default:
			return nil, d.shape(item, "of", "string or table", of, t)
		}
	case field.TypeFixedArray:
		of, err := d.table(t, item, "of")
		if err != nil {
			return nil, err
		}
		if info.Elem, err = d.typeInfo(item, of); err != nil {
			return nil, err
		}
		n, err := d.integer(of, item, "n")
		if err != nil {
			return nil, err
		}
		if n <= 0 || n > math.MaxInt32 {
			return nil, d.errorf(schema.ErrWrongShape, item, "n", "array length %d out of range", n)
		}
		info.Len = int(n)
	}
	return info, nil
}

func (d *decoder) variants(u *schema.Unit, meta, root *table) error {
	enc, err := d.stringAlias(meta, "", "of", "encoding")
	if err != nil {
		return err
	}
	switch enc {
	case "String":
		u.Encoding = schema.EncodingString
	case "Integer":
		u.Encoding = schema.EncodingInteger
	default:
		return d.errorf(schema.ErrUnknownEncoding, "", "of", "unknown enumeration encoding %q", enc)
	}
	values, err := d.table(root, "", "values")
	if err != nil {
		return err
	}
	seen := make(map[any]string, len(values.keys))
	for _, name := range values.keys {
		vt, ok := values.values[name].(*table)
		if !ok {
			return d.shape(name, "values", "table", values.values[name], values)
		}
		v := &schema.Variant{Name: name}
		if v.Docs, err = d.string(vt, name, "docs"); err != nil {
			return err
		}
		raw, ok := vt.get("value")
		if !ok {
			return d.errorf(schema.ErrMissingField, name, "value", "required key is absent")
		}
		switch u.Encoding {
		case schema.EncodingString:
			s, ok := raw.(string)
			if !ok {
				return d.shape(name, "value", "string", raw, vt)
			}
			v.Literal = schema.StringLit(s)
		case schema.EncodingInteger:
			i, ok := raw.(int64)
			if !ok {
				return d.shape(name, "value", "integer", raw, vt)
			}
			if i < 0 || i > math.MaxUint32 {
				return d.errorf(schema.ErrWrongShape, name, "value", "literal %d does not fit in 32 bits", i)
			}
			v.Literal = schema.IntLit(i)
		}
		if prev, ok := seen[v.Literal.Value()]; ok {
			return d.errorf(schema.ErrDuplicateLiteral, name, "value", "literal %s already used by %s", v.Literal, prev)
		}
		seen[v.Literal.Value()] = name
		u.Variants = append(u.Variants, v)
	}
	return nil
}

func (d *decoder) literal(item, key string, v any, t *table) (schema.Literal, error) {
	switch v := v.(type) {
	case string:
		return schema.StringLit(v), nil
	case int64:
		return schema.IntLit(v), nil
	case float64:
		return schema.FloatLit(v), nil
	case bool:
		return schema.BoolLit(v), nil
	default:
		return schema.Literal{}, d.shape(item, key, "scalar", v, t)
	}
}

func (d *decoder) table(t *table, item, key string) (*table, error) {
	v, ok := t.get(key)
	if !ok {
		return nil, d.errorf(schema.ErrMissingField, item, key, "required table is absent")
	}
	sub, ok := v.(*table)
	if !ok {
		return nil, d.shape(item, key, "table", v, t)
	}
	return sub, nil
}

func (d *decoder) string(t *table, item, key string) (string, error) {
	v, ok := t.get(key)
	if !ok {
		return "", d.errorf(schema.ErrMissingField, item, key, "required key is absent")
	}
	s, ok := v.(string)
	if !ok {
		return "", d.shape(item, key, "string", v, t)
	}
	return s, nil
}

// stringAlias is like string, but accepts the value under either key.
func (d *decoder) stringAlias(t *table, item, key, alias string) (string, error) {
	if _, ok := t.get(key); !ok {
		if _, ok := t.get(alias); ok {
			key = alias
		}
	}
	return d.string(t, item, key)
}

func (d *decoder) optionalString(t *table, item, key string) (string, error) {
	if _, ok := t.get(key); !ok {
		return "", nil
	}
	return d.string(t, item, key)
}

func (d *decoder) optionalBool(t *table, item, key string) (bool, error) {
	v, ok := t.get(key)
	if !ok {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, d.shape(item, key, "bool", v, t)
	}
	return b, nil
}

func (d *decoder) integer(t *table, item, key string) (int64, error) {
	v, ok := t.get(key)
	if !ok {
		return 0, d.errorf(schema.ErrMissingField, item, key, "required key is absent")
	}
	i, ok := v.(int64)
	if !ok {
		return 0, d.shape(item, key, "integer", v, t)
	}
	return i, nil
}

func (d *decoder) shape(item, key, want string, got any, t *table) *schema.Error {
	msg := fmt.Sprintf("expected %s, got %s", want, shapeName(got))
	if p := t.pos[key]; p.Line > 0 {
		msg = p.String() + ": " + msg
	}
	return schema.NewError(schema.ErrWrongShape, d.unit, item, key, msg)
}

func (d *decoder) errorf(code error, item, key, format string, args ...any) *schema.Error {
	return schema.NewError(code, d.unit, item, key, fmt.Sprintf(format, args...))
}
