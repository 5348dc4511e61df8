package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithHeader(t *testing.T) {
	t.Run("sets header", func(t *testing.T) {
		c := &Config{}
		err := WithHeader("Custom header")(c)

		require.NoError(t, err)
		assert.Equal(t, "Custom header", c.Header)
		assert.Equal(t, "Custom header", c.header())
	})

	t.Run("empty header falls back to default", func(t *testing.T) {
		c := &Config{Header: "existing"}
		err := WithHeader("")(c)

		require.NoError(t, err)
		assert.Equal(t, "", c.Header)
		assert.Equal(t, DefaultHeader, c.header())
	})
}

func TestWithPackage(t *testing.T) {
	t.Run("sets package", func(t *testing.T) {
		c := &Config{}
		err := WithPackage("github.com/test/gltf")(c)

		require.NoError(t, err)
		assert.Equal(t, "github.com/test/gltf", c.Package)
	})

	t.Run("empty package returns error", func(t *testing.T) {
		c := &Config{}
		err := WithPackage("")(c)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithTarget(t *testing.T) {
	t.Run("sets target directory", func(t *testing.T) {
		c := &Config{}
		err := WithTarget("./out")(c)

		require.NoError(t, err)
		assert.Equal(t, "./out", c.Target)
	})

	t.Run("empty target returns error", func(t *testing.T) {
		c := &Config{}
		err := WithTarget("")(c)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithFeatures(t *testing.T) {
	t.Run("adds single feature", func(t *testing.T) {
		c := &Config{}
		err := WithFeatures(FeatureNames)(c)

		require.NoError(t, err)
		require.Len(t, c.Features, 1)
		assert.Equal(t, "names", c.Features[0].Name)
	})

	t.Run("appends to existing features", func(t *testing.T) {
		c := &Config{Features: []Feature{FeatureNames}}
		err := WithFeatures(FeatureExtras, FeatureExtensions)(c)

		require.NoError(t, err)
		assert.Len(t, c.Features, 3)
	})
}

func TestWithFeatureNames(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		want    []string
		wantErr bool
	}{
		{"none", nil, nil, false},
		{"names", []string{"names"}, []string{"names"}, false},
		{"all", []string{"names", "extras", "extensions"}, []string{"names", "extras", "extensions"}, false},
		{"unknown", []string{"names", "privacy"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			err := WithFeatureNames(tt.names...)(c)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
				return
			}
			require.NoError(t, err)
			var got []string
			for _, f := range c.Features {
				got = append(got, f.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithWorkers(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithWorkers(3)(c))
	assert.Equal(t, 3, c.workers())

	require.NoError(t, WithWorkers(0)(c))
	assert.Positive(t, c.workers())

	err := WithWorkers(-1)(c)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestConfigApply(t *testing.T) {
	t.Run("applies multiple options", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(
			WithPackage("github.com/test/gltf"),
			WithTarget("./out"),
			WithHeader("Custom"),
		)

		require.NoError(t, err)
		assert.Equal(t, "github.com/test/gltf", c.Package)
		assert.Equal(t, "./out", c.Target)
		assert.Equal(t, "Custom", c.Header)
	})

	t.Run("stops on first error", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(
			WithPackage(""),     // Error
			WithTarget("./out"), // Should not be applied
		)

		require.Error(t, err)
		assert.Empty(t, c.Package)
		assert.Empty(t, c.Target)
	})
}

func TestConfigApplyAll(t *testing.T) {
	t.Run("collects all errors", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(
			WithPackage(""), // Error
			WithTarget(""),  // Error
			WithWorkers(-2), // Error
			WithHeader("ok"),
		)

		require.Error(t, err)
		// errors.Join returns an error with Unwrap() []error
		unwrapper, ok := err.(interface{ Unwrap() []error })
		require.True(t, ok, "error should implement Unwrap() []error")
		assert.Len(t, unwrapper.Unwrap(), 3)
		assert.Equal(t, "ok", c.Header)
	})

	t.Run("returns nil when all succeed", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(
			WithPackage("github.com/test"),
			WithTarget("./out"),
		)

		require.NoError(t, err)
	})
}

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := NewConfig()

		require.NoError(t, err)
		assert.Equal(t, DefaultPackage, c.Package)
		assert.Empty(t, c.Features)
	})

	t.Run("creates config with options", func(t *testing.T) {
		c, err := NewConfig(
			WithPackage("github.com/test/gltf"),
			WithTarget("./out"),
		)

		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "github.com/test/gltf", c.Package)
		assert.Equal(t, "./out", c.Target)
	})

	t.Run("returns error on invalid option", func(t *testing.T) {
		c, err := NewConfig(
			WithPackage(""),
		)

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestMustNewConfig(t *testing.T) {
	t.Run("returns config on success", func(t *testing.T) {
		c := MustNewConfig(
			WithPackage("github.com/test/gltf"),
		)

		require.NotNil(t, c)
		assert.Equal(t, "github.com/test/gltf", c.Package)
	})

	t.Run("panics on error", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNewConfig(WithPackage(""))
		})
	})
}
