package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/schemagen/schema"
)

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("Features", "bogus", "unknown feature")

		assert.Contains(t, err.Error(), "schemagen: config error")
		assert.Contains(t, err.Error(), "Features")
		assert.Contains(t, err.Error(), "bogus")
		assert.Contains(t, err.Error(), "unknown feature")
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("Package", nil, "cannot be empty")

		assert.Contains(t, err.Error(), "Package")
		assert.Contains(t, err.Error(), "cannot be empty")
		assert.NotContains(t, err.Error(), "value:")
	})

	t.Run("Is matches ErrMissingConfig", func(t *testing.T) {
		err := NewConfigError("Target", nil, "missing")
		assert.True(t, errors.Is(err, ErrMissingConfig))
	})

	t.Run("IsConfigError helper", func(t *testing.T) {
		err := NewConfigError("Target", nil, "missing")
		assert.True(t, IsConfigError(err))
		assert.False(t, IsConfigError(errors.New("other")))
	})
}

func TestGenerationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("unexpected token")
		err := NewGenerationError("module", "Camera", "format file", cause)

		assert.Equal(t, "schemagen: generation error in phase module (unit: Camera): format file: unexpected token", err.Error())
	})

	t.Run("Error message with phase only", func(t *testing.T) {
		err := &GenerationError{Phase: "enum"}
		assert.Equal(t, "schemagen: generation error in phase enum", err.Error())
	})

	t.Run("Unwrap reaches schema errors", func(t *testing.T) {
		cause := schema.NewError(schema.ErrWrongShape, "Camera", "znear", "default", "bad default")
		err := NewGenerationError("struct", "Camera", "", cause)

		assert.True(t, errors.Is(err, ErrGenerationFailed))
		assert.True(t, errors.Is(err, schema.ErrWrongShape))
		assert.True(t, errors.Is(err, schema.ErrInvalidSchema))
		assert.False(t, errors.Is(err, schema.ErrUnknownTypeTag))
	})

	t.Run("IsGenerationError helper", func(t *testing.T) {
		assert.True(t, IsGenerationError(NewGenerationError("enum", "AlphaMode", "x", nil)))
		assert.False(t, IsGenerationError(errors.New("other")))
	})
}

func TestWrap(t *testing.T) {
	u := &schema.Unit{Name: "Camera"}

	err := wrap("struct", u, errors.New("boom"))
	var genErr *GenerationError
	assert.True(t, errors.As(err, &genErr))
	assert.Equal(t, "struct", genErr.Phase)
	assert.Equal(t, "Camera", genErr.Unit)

	inner := NewGenerationError("accessor", "Camera", "dup", nil)
	assert.Same(t, inner, wrap("struct", u, inner))
}
