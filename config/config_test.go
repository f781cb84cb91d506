package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/longdoc/solver"
)

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("missing named file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, ErrLoadConfig)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		data := []byte(`
ai:
  model: llama3
  temperature: 0.5
solver:
  chunk_size: 250000
storage:
  in_memory: true
`)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "llama3", cfg.AI.Model)
		assert.Equal(t, 0.5, cfg.AI.Temperature)
		assert.Equal(t, 250_000, cfg.Solver.ChunkSize)
		assert.True(t, cfg.Storage.InMemory)

		// Untouched fields keep their defaults.
		assert.Equal(t, solver.DefaultContextSize, cfg.Solver.ContextSize)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ai: ["), 0o644))

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrLoadConfig)
	})

	t.Run("environment overrides win", func(t *testing.T) {
		t.Setenv("LONGDOC_AI_MODEL", "phi3")
		t.Setenv("LONGDOC_SOLVER_CHUNK_SIZE", "1234")
		t.Setenv("LONGDOC_AI_TEMPERATURE", "0.9")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "phi3", cfg.AI.Model)
		assert.Equal(t, 1234, cfg.Solver.ChunkSize)
		assert.Equal(t, 0.9, cfg.AI.Temperature)
	})

	t.Run("bad numeric env values are ignored", func(t *testing.T) {
		t.Setenv("LONGDOC_SOLVER_CHUNK_SIZE", "not-a-number")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, solver.DefaultChunkSize, cfg.Solver.ChunkSize)
	})
}

func TestAIConfig(t *testing.T) {
	cfg := Default()
	cfg.AI.Model = "custom"

	a := cfg.AIConfig()
	assert.Equal(t, "custom", a.Model)
	assert.Equal(t, cfg.AI.Host, a.Host)
	assert.Equal(t, cfg.AI.SummaryTokens, a.SummaryTokens)
}
