package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/schemagen/schema"
	"github.com/syssam/schemagen/schema/field"
)

func TestUnit_QualifiedName(t *testing.T) {
	u := &schema.Unit{Name: "Perspective", Module: []string{"camera"}}
	assert.Equal(t, "camera::Perspective", u.QualifiedName())

	u = &schema.Unit{Name: "Node"}
	assert.Equal(t, "Node", u.QualifiedName())
}

func TestUnit_Field(t *testing.T) {
	u := &schema.Unit{
		Name: "Camera",
		Fields: []*schema.Field{
			{Name: "kind", Type: &field.TypeInfo{Type: field.TypeEnum, Of: "camera::Type"}},
		},
	}
	require.NotNil(t, u.Field("kind"))
	assert.Nil(t, u.Field("missing"))
}

func TestField_Visible(t *testing.T) {
	tests := []struct {
		name    string
		field   *schema.Field
		visible bool
	}{
		{"scalar", &schema.Field{Type: &field.TypeInfo{Type: field.TypeFloat}}, true},
		{"hidden", &schema.Field{Type: &field.TypeInfo{Type: field.TypeFloat}, Hidden: true}, false},
		{"special", &schema.Field{Type: &field.TypeInfo{Type: field.TypeSpecial, Text: "int"}}, false},
		{"any", &schema.Field{Type: &field.TypeInfo{Type: field.TypeAny}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, tt.field.Visible())
		})
	}
}

func TestField_StorageKey(t *testing.T) {
	assert.Equal(t, "byte_offset", (&schema.Field{Name: "byte_offset"}).StorageKey())
	assert.Equal(t, "byteOffset", (&schema.Field{Name: "byte_offset", Key: "byteOffset"}).StorageKey())
}

func TestLiteral(t *testing.T) {
	assert.Equal(t, `"x"`, schema.StringLit("x").String())
	assert.Equal(t, "3", schema.IntLit(3).String())
	assert.Equal(t, "0.5", schema.FloatLit(0.5).String())
	assert.Equal(t, "true", schema.BoolLit(true).String())
	assert.Equal(t, int64(3), schema.IntLit(3).Value())
	assert.Nil(t, schema.Literal{}.Value())
}

func TestKindAndEncoding(t *testing.T) {
	assert.Equal(t, "Struct", schema.KindRecord.String())
	assert.Equal(t, "Enum", schema.KindEnum.String())
	assert.Equal(t, "Integer", schema.EncodingInteger.String())
	assert.Equal(t, "Encoding(9)", schema.Encoding(9).String())
}

func TestError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := schema.NewError(schema.ErrMissingField, "camera.toml", "znear", "docs", "required")
		assert.Contains(t, err.Error(), "schemagen: missing field")
		assert.Contains(t, err.Error(), "in camera.toml")
		assert.Contains(t, err.Error(), "item znear")
		assert.Contains(t, err.Error(), "key docs")
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("Is matches code and ErrInvalidSchema", func(t *testing.T) {
		err := schema.NewError(schema.ErrDuplicateLiteral, "AlphaMode", "MASK", "value", "")
		assert.True(t, errors.Is(err, schema.ErrDuplicateLiteral))
		assert.True(t, errors.Is(err, schema.ErrInvalidSchema))
		assert.False(t, errors.Is(err, schema.ErrWrongShape))
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("toml: line 3")
		err := &schema.Error{Code: schema.ErrWrongShape, Cause: cause}
		assert.True(t, errors.Is(err, cause))
		assert.Contains(t, err.Error(), "toml: line 3")
	})

	t.Run("IsSchemaError helper", func(t *testing.T) {
		assert.True(t, schema.IsSchemaError(schema.NewError(schema.ErrWrongShape, "", "", "", "")))
		assert.False(t, schema.IsSchemaError(errors.New("other")))
	})
}
