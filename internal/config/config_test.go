package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	cross, ok := cfg.Player("cross")
	require.True(t, ok)
	assert.Equal(t, "human", cross.Type)

	circle, ok := cfg.Player("circle")
	require.True(t, ok)
	assert.Equal(t, "bot", circle.Type)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
seed = 42

player "cross" {
  type = "bot"
  name = "Silas"
}

player "circle" {
  type = "random"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.EqualValues(t, 42, cfg.Seed)

	cross, ok := cfg.Player("cross")
	require.True(t, ok)
	assert.Equal(t, "bot", cross.Type)
	assert.Equal(t, "Silas", cross.Name)

	circle, ok := cfg.Player("circle")
	require.True(t, ok)
	assert.Equal(t, "random", circle.Type)
	assert.Equal(t, "random", circle.Name, "name defaults to the player type")
}

func TestLoadFillsMissingSide(t *testing.T) {
	path := writeConfig(t, `
player "circle" {
  type = "random"
  name = "Rando"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	cross, ok := cfg.Player("cross")
	require.True(t, ok)
	assert.Equal(t, "human", cross.Type, "unconfigured side falls back to defaults")
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		path := writeConfig(t, `
player "cross" {
  type = "alien"
}
`)
		_, err := Load(path)
		assert.ErrorContains(t, err, "unknown type")
	})

	t.Run("unknown side", func(t *testing.T) {
		path := writeConfig(t, `
player "triangle" {
  type = "bot"
}
`)
		_, err := Load(path)
		assert.ErrorContains(t, err, "unknown player side")
	})

	t.Run("duplicate side", func(t *testing.T) {
		path := writeConfig(t, `
player "cross" {
  type = "bot"
}

player "cross" {
  type = "human"
}
`)
		_, err := Load(path)
		assert.ErrorContains(t, err, "configured twice")
	})

	t.Run("malformed hcl", func(t *testing.T) {
		path := writeConfig(t, `player "cross" {`)
		_, err := Load(path)
		assert.ErrorContains(t, err, "parse")
	})
}
