package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty path returns defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("partial file keeps other defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "partial.yaml")
		require.NoError(t, os.WriteFile(path, []byte("words: [b, a]\nsearch:\n  word: a\n"), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, cfg.Words)
		assert.Equal(t, "a", cfg.Search.Word)
		assert.Equal(t, DefaultConfig().Integers, cfg.Integers)
		assert.Equal(t, DefaultConfig().Search.Integer, cfg.Search.Integer)
	})

	t.Run("empty dataset", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("integers: []\n"), 0o600))

		_, err := LoadConfig(path)
		require.ErrorIs(t, err, errEmptyDataset)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("integers: [1, two"), 0o600))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})

	t.Run("wrong element type", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "typed.yaml")
		require.NoError(t, os.WriteFile(path, []byte("integers: [1, two]\n"), 0o600))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})
}
