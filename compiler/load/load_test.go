package load

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/schemagen/schema"
	"github.com/syssam/schemagen/schema/field"
)

func TestLoad_Camera(t *testing.T) {
	u, err := Load("testdata/camera.toml")
	require.NoError(t, err)
	assert.Equal(t, "Camera", u.Name)
	assert.Equal(t, schema.KindRecord, u.Kind)
	assert.Empty(t, u.Module)
	assert.Equal(t, "A camera's projection.", u.Docs)
	require.Len(t, u.Fields, 3)

	names := make([]string, 0, len(u.Fields))
	for _, f := range u.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"kind", "perspective", "orthographic"}, names)

	kind := u.Fields[0]
	assert.Equal(t, field.TypeEnum, kind.Type.Type)
	assert.Equal(t, "camera::Type", kind.Type.Of)
	assert.False(t, kind.Optional)

	for _, f := range u.Fields[1:] {
		assert.Equal(t, field.TypeRecord, f.Type.Type)
		assert.True(t, f.Optional)
		assert.Nil(t, f.Default)
	}
}

func TestLoad_AlphaMode(t *testing.T) {
	u, err := Load("testdata/alpha_mode.toml")
	require.NoError(t, err)
	assert.Equal(t, schema.KindEnum, u.Kind)
	assert.Equal(t, schema.EncodingInteger, u.Encoding)
	assert.Equal(t, []string{"material"}, u.Module)
	require.Len(t, u.Variants, 3)
	for i, want := range []struct {
		name string
		lit  int64
	}{{"OPAQUE", 1}, {"MASK", 2}, {"BLEND", 3}} {
		assert.Equal(t, want.name, u.Variants[i].Name)
		assert.Equal(t, schema.IntLit(want.lit), u.Variants[i].Literal)
	}
}

func TestLoad_StringEnum(t *testing.T) {
	u, err := Load("testdata/camera_type.toml")
	require.NoError(t, err)
	assert.Equal(t, schema.EncodingString, u.Encoding)
	assert.Equal(t, "camera::Type", u.QualifiedName())
	require.Len(t, u.Variants, 2)
	assert.Equal(t, "Perspective", u.Variants[0].Name)
	assert.Equal(t, schema.StringLit("perspective"), u.Variants[0].Literal)
	assert.Equal(t, "Orthographic", u.Variants[1].Name)
}

func TestLoad_YAML(t *testing.T) {
	u, err := Load("testdata/node.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Node", u.Name)
	assert.Equal(t, []string{"scene"}, u.Module)
	assert.Contains(t, u.Include, "func (n Node) Root() bool")
	require.Len(t, u.Fields, 6)

	children := u.Field("children")
	require.NotNil(t, children)
	assert.Equal(t, "Array<Index<scene::Node>>", children.Type.String())

	matrix := u.Field("matrix")
	require.NotNil(t, matrix)
	assert.Equal(t, "FixedSizeArray<Float; 16>", matrix.Type.String())
	assert.True(t, matrix.Optional)

	weights := u.Field("weights")
	require.NotNil(t, weights)
	assert.Equal(t, "Array<Float>", weights.Type.String())

	visible := u.Field("visible")
	require.NotNil(t, visible)
	require.NotNil(t, visible.Default)
	assert.Equal(t, schema.BoolLit(true), *visible.Default)

	raw := u.Field("raw")
	require.NotNil(t, raw)
	assert.Equal(t, "map[string]any", raw.Type.Text)
	assert.Equal(t, "rawData", raw.StorageKey())
	assert.False(t, raw.Visible())
}

func TestLoad_ConflictingOptionalDefault(t *testing.T) {
	_, err := Load("testdata/conflict.toml")
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrConflictingOptionalDefault)
	assert.ErrorIs(t, err, schema.ErrInvalidSchema)
	assert.Contains(t, err.Error(), "wrapS")
}

func TestLoad_OrderPreserved(t *testing.T) {
	const meta = `
[meta]
ident = "Order"
kind = "Enum"
of = "String"
docs = "Order."
`
	tests := []struct {
		name   string
		values string
	}{
		{"sections", `
[values.Zulu]
docs = "z"
value = "z"

[values.Alpha]
docs = "a"
value = "a"

[values.Mike]
docs = "m"
value = "m"
`},
		{"inline tables", `
[values]
Zulu = { docs = "z", value = "z" }
Alpha = { docs = "a", value = "a" }
Mike = { docs = "m", value = "m" }
`},
		{"dotted keys", `
[values]
Zulu.docs = "z"
Zulu.value = "z"
Alpha = { docs = "a", value = "a" }
Mike.docs = "m"
Mike.value = "m"
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := LoadTOML("order.toml", []byte(meta+tt.values))
			require.NoError(t, err)
			var names []string
			for _, v := range u.Variants {
				names = append(names, v.Name)
			}
			assert.Equal(t, []string{"Zulu", "Alpha", "Mike"}, names)
		})
	}
}

func TestLoad_InlineFields(t *testing.T) {
	src := `
[meta]
ident = "Accessor"
kind = "Struct"
docs = "Typed view into a buffer view."

[fields]
count = { docs = "Number of elements.", ty = "Integer" }
byte_offset = { docs = "Offset in bytes.", ty = "Integer", default = 0x0 }
normalized = { docs = "Normalized values.", ty = "Bool", default = false }
min = { docs = "Minimum values.", ty = "Array", of = { ty = "Float" } }
`
	u, err := LoadTOML("accessor.toml", []byte(src))
	require.NoError(t, err)
	var names []string
	for _, f := range u.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"count", "byte_offset", "normalized", "min"}, names)
	require.NotNil(t, u.Fields[1].Default)
	assert.Equal(t, schema.IntLit(0), *u.Fields[1].Default)
	assert.Equal(t, field.TypeFloat, u.Fields[3].Type.Elem.Type)
}

func TestLoad_DuplicateKey(t *testing.T) {
	src := "[meta]\nident = \"A\"\nident = \"B\"\n"
	_, err := LoadTOML("dup.toml", []byte(src))
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrWrongShape)
	assert.Contains(t, err.Error(), "duplicate key")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code error
		key  string
	}{
		{
			name: "missing meta",
			src:  "[fields.a]\ndocs = \"a\"\nty = \"String\"\n",
			code: schema.ErrMissingField,
			key:  "meta",
		},
		{
			name: "meta not a table",
			src:  "meta = \"Camera\"\n",
			code: schema.ErrWrongShape,
			key:  "meta",
		},
		{
			name: "missing ident",
			src:  "[meta]\nkind = \"Struct\"\ndocs = \"d\"\n",
			code: schema.ErrMissingField,
			key:  "ident",
		},
		{
			name: "missing docs",
			src:  "[meta]\nident = \"A\"\nkind = \"Struct\"\n",
			code: schema.ErrMissingField,
			key:  "docs",
		},
		{
			name: "missing fields",
			src:  "[meta]\nident = \"A\"\nkind = \"Struct\"\ndocs = \"d\"\n",
			code: schema.ErrMissingField,
			key:  "fields",
		},
		{
			name: "unknown kind",
			src:  "[meta]\nident = \"A\"\nkind = \"Union\"\ndocs = \"d\"\n",
			code: schema.ErrWrongShape,
			key:  "kind",
		},
		{
			name: "unknown type tag",
			src:  "[meta]\nident = \"A\"\nkind = \"Struct\"\ndocs = \"d\"\n[fields.a]\ndocs = \"a\"\nty = \"Map\"\n",
			code: schema.ErrUnknownTypeTag,
			key:  "ty",
		},
		{
			name: "optional not bool",
			src:  "[meta]\nident = \"A\"\nkind = \"Struct\"\ndocs = \"d\"\n[fields.a]\ndocs = \"a\"\nty = \"String\"\noptional = \"yes\"\n",
			code: schema.ErrWrongShape,
			key:  "optional",
		},
		{
			name: "index without target",
			src:  "[meta]\nident = \"A\"\nkind = \"Struct\"\ndocs = \"d\"\n[fields.a]\ndocs = \"a\"\nty = \"Index\"\n",
			code: schema.ErrMissingField,
			key:  "of",
		},
		{
			name: "fixed array without length",
			src:  "[meta]\nident = \"A\"\nkind = \"Struct\"\ndocs = \"d\"\n[fields.a]\ndocs = \"a\"\nty = \"FixedSizeArray\"\nof = { ty = \"Float\" }\n",
			code: schema.ErrMissingField,
			key:  "n",
		},
		{
			name: "unknown encoding",
			src:  "[meta]\nident = \"E\"\nkind = \"Enum\"\nof = \"Float\"\ndocs = \"d\"\n[values.A]\ndocs = \"a\"\nvalue = 1\n",
			code: schema.ErrUnknownEncoding,
			key:  "of",
		},
		{
			name: "integer literal for string enum",
			src:  "[meta]\nident = \"E\"\nkind = \"Enum\"\nof = \"String\"\ndocs = \"d\"\n[values.A]\ndocs = \"a\"\nvalue = 1\n",
			code: schema.ErrWrongShape,
			key:  "value",
		},
		{
			name: "integer literal out of range",
			src:  "[meta]\nident = \"E\"\nkind = \"Enum\"\nof = \"Integer\"\ndocs = \"d\"\n[values.A]\ndocs = \"a\"\nvalue = 4294967296\n",
			code: schema.ErrWrongShape,
			key:  "value",
		},
		{
			name: "duplicate literal",
			src:  "[meta]\nident = \"E\"\nkind = \"Enum\"\nof = \"Integer\"\ndocs = \"d\"\n[values.A]\ndocs = \"a\"\nvalue = 1\n[values.B]\ndocs = \"b\"\nvalue = 1\n",
			code: schema.ErrDuplicateLiteral,
			key:  "value",
		},
		{
			name: "missing variant docs",
			src:  "[meta]\nident = \"E\"\nkind = \"Enum\"\nof = \"Integer\"\ndocs = \"d\"\n[values.A]\nvalue = 1\n",
			code: schema.ErrMissingField,
			key:  "docs",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTOML("test.toml", []byte(tt.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.code)
			var serr *schema.Error
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.key, serr.Key)
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := LoadTOML("bad.toml", []byte("[meta\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrWrongShape)

	_, err = LoadYAML("bad.yaml", []byte("- a\n- b\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrWrongShape)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	fsys := fstest.MapFS{"unit.json": {Data: []byte("{}")}}
	_, err := LoadFS(fsys, "unit.json")
	require.Error(t, err)
	assert.False(t, schema.IsSchemaError(err))
}

func TestLoad_ModuleArray(t *testing.T) {
	src := "[meta]\nident = \"A\"\nkind = \"Enum\"\nof = \"String\"\nmodule = [\"a\", \"b\"]\ndocs = \"d\"\n[values.X]\ndocs = \"x\"\nvalue = \"x\"\n"
	u, err := LoadTOML("a.toml", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, u.Module)
	assert.Equal(t, "a::b::A", u.QualifiedName())
}
