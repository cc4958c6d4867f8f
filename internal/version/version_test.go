package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	t.Parallel()
	t.Run("Dep", func(t *testing.T) {
		v := Extract(&debug.BuildInfo{
			Deps: []*debug.Module{
				{Path: "github.com/go-faster/jalali", Version: "v1.2.3-alpha"},
			},
		})
		require.Equal(t, "alpha", v.Name)
		require.Equal(t, 1, v.Major)
		require.Equal(t, 2, v.Minor)
		require.Equal(t, 3, v.Patch)
	})
	t.Run("Main", func(t *testing.T) {
		v := Extract(&debug.BuildInfo{
			Main: debug.Module{Path: "github.com/go-faster/jalali", Version: "v0.4.0"},
		})
		require.Equal(t, "v0.4.0", v.Raw)
	})
	t.Run("Unknown", func(t *testing.T) {
		v := Extract(&debug.BuildInfo{})
		assert.Equal(t, "dev", v.Name)
		assert.Equal(t, "0.0.1-dev", v.Raw)
	})
}

func TestGet(t *testing.T) {
	t.Parallel()
	assert.NotEmpty(t, Get().Raw)
}
