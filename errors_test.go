package schemagen_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/schemagen"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := schemagen.NewNotFoundError("scene::Node", 3)
		assert.Equal(t, "schemagen: scene::Node not found (index=3)", err.Error())
		assert.Equal(t, "scene::Node", err.Kind())
		assert.Equal(t, 3, err.Index())
	})

	t.Run("Is", func(t *testing.T) {
		err := schemagen.NewNotFoundError("Mesh", 0)
		assert.True(t, errors.Is(err, schemagen.ErrNotFound))
	})

	t.Run("IsNotFound", func(t *testing.T) {
		err := schemagen.NewNotFoundError("Camera", 1)
		assert.True(t, schemagen.IsNotFound(err))

		// Wrapped error
		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, schemagen.IsNotFound(wrapped))

		// Sentinel error
		assert.True(t, schemagen.IsNotFound(schemagen.ErrNotFound))

		// Non-matching error
		assert.False(t, schemagen.IsNotFound(errors.New("other error")))
		assert.False(t, schemagen.IsNotFound(nil))
	})
}

func TestInvalidLiteralError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := schemagen.NewInvalidLiteralError("Type", "fisheye")
		assert.Equal(t, `schemagen: invalid Type literal "fisheye"`, err.Error())

		err = schemagen.NewInvalidLiteralError("AlphaMode", uint32(7))
		assert.Equal(t, "schemagen: invalid AlphaMode literal 7", err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := schemagen.NewInvalidLiteralError("Type", "x")
		assert.True(t, errors.Is(err, schemagen.ErrInvalidLiteral))
		assert.False(t, errors.Is(err, schemagen.ErrInvalidValue))
	})

	t.Run("IsInvalidLiteral", func(t *testing.T) {
		err := fmt.Errorf("decode: %w", schemagen.NewInvalidLiteralError("Type", "x"))
		assert.True(t, schemagen.IsInvalidLiteral(err))
		assert.False(t, schemagen.IsInvalidLiteral(schemagen.ErrInvalidLiteral))
		assert.False(t, schemagen.IsInvalidLiteral(nil))
	})
}

func TestInvalidValueError(t *testing.T) {
	err := schemagen.NewInvalidValueError("AlphaMode", uint32(9))
	assert.Equal(t, "schemagen: invalid AlphaMode value 9", err.Error())
	assert.True(t, errors.Is(err, schemagen.ErrInvalidValue))

	err = schemagen.NewInvalidValueError("AlphaMode", nil)
	assert.Equal(t, "schemagen: invalid AlphaMode value", err.Error())
}
