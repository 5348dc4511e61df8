package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/schemagen/schema"
	"github.com/syssam/schemagen/schema/field"
)

func TestConfigFeatureEnabled(t *testing.T) {
	t.Run("returns true for enabled feature", func(t *testing.T) {
		c := &Config{Features: []Feature{FeatureNames, FeatureExtras}}

		enabled, err := c.FeatureEnabled("extras")

		assert.NoError(t, err)
		assert.True(t, enabled)
	})

	t.Run("returns default for disabled feature", func(t *testing.T) {
		c := &Config{}

		enabled, err := c.FeatureEnabled("names")

		assert.NoError(t, err)
		assert.False(t, enabled)
	})

	t.Run("nil config", func(t *testing.T) {
		var c *Config

		enabled, err := c.FeatureEnabled("extensions")

		assert.NoError(t, err)
		assert.False(t, enabled)
	})

	t.Run("unknown feature", func(t *testing.T) {
		c := &Config{}

		_, err := c.FeatureEnabled("privacy")

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestConfigMembers(t *testing.T) {
	u := &schema.Unit{
		Name: "Mesh",
		Fields: []*schema.Field{
			{Name: "name", Docs: "Declared name.", Type: &field.TypeInfo{Type: field.TypeString}, Optional: true},
		},
	}

	assert.Empty(t, (&Config{}).members(u))

	c := &Config{Features: []Feature{FeatureNames, FeatureExtras, FeatureExtensions}}
	members := c.members(u)
	require.Len(t, members, 2)
	assert.Equal(t, "extras", members[0].Name)
	assert.Equal(t, "extensions", members[1].Name)
}

func TestConfigPkgPath(t *testing.T) {
	tests := []struct {
		name   string
		pkg    string
		module []string
		path   string
		clause string
	}{
		{"base", "", nil, "schema", "schema"},
		{"module", "", []string{"camera"}, "schema/camera", "camera"},
		{"nested", "github.com/test/gltf", []string{"texture", "info"}, "github.com/test/gltf/texture/info", "info"},
		{"base import path", "github.com/test/gltf", nil, "github.com/test/gltf", "gltf"},
		{"keyword", "", []string{"type"}, "schema/pkgtype", "pkgtype"},
		{"mixed case", "", []string{"Sparse_Indices"}, "schema/sparseindices", "sparseindices"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{Package: tt.pkg}
			assert.Equal(t, tt.path, c.PkgPath(tt.module))
			assert.Equal(t, tt.clause, c.PkgName(tt.module))
		})
	}
}

func TestConfigTarget(t *testing.T) {
	c := &Config{Package: "github.com/test/gltf"}

	tg := c.target(&field.TypeInfo{Type: field.TypeIndex, Of: "scene::Node"})
	assert.Equal(t, "github.com/test/gltf/scene", tg.pkg)
	assert.Equal(t, "Node", tg.name)
	assert.Equal(t, "NodeJSON", tg.storage())
	assert.Equal(t, "scene::Node", tg.kind)

	tg = c.target(&field.TypeInfo{Type: field.TypeEnum, Of: "alpha_mode"})
	assert.Equal(t, "github.com/test/gltf", tg.pkg)
	assert.Equal(t, "AlphaMode", tg.name)
}

func TestConfigFileName(t *testing.T) {
	c := &Config{}
	assert.Equal(t, "camera/perspective.go", c.FileName(&schema.Unit{Name: "Perspective", Module: []string{"camera"}}))
	assert.Equal(t, "alpha_mode.go", c.FileName(&schema.Unit{Name: "AlphaMode"}))
}
