package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadKeepsExplicitZeroDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doubt.yaml")
	yamlBody := `
engine:
  max_depth: 0
scoring:
  saturation: 20
rules:
  min_words: 3
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Engine.MaxDepth)
	assert.Equal(t, 1, cfg.Engine.Fanout)
	assert.Equal(t, 20, cfg.Scoring.Saturation)
	assert.Equal(t, 0.75, cfg.Scoring.CountWeight)
	assert.Equal(t, 3, cfg.Rules.MinWords)
	assert.Equal(t, 10000, cfg.Rules.MaxInputRunes)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.NoError(t, Validate(cfg))
}

func TestLoadMaxPasses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doubt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  fanout: 5\n  max_depth: 6\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Engine.MaxPasses)
	assert.NoError(t, Validate(cfg))

	t.Setenv("DOUBT_MAX_PASSES", "8")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Engine.MaxPasses)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: [unterminated"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doubt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  max_depth: 2\n"), 0o600))

	t.Setenv("DOUBT_MAX_DEPTH", "3")
	t.Setenv("DOUBT_LOG_FORMAT", "json")
	t.Setenv("DOUBT_CACHE_SIZE", "0")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Engine.MaxDepth)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 0, cfg.Batch.CacheSize)
}

func TestEnvRejectsGarbage(t *testing.T) {
	t.Setenv("DOUBT_MAX_DEPTH", "deep")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestMarshalRoundTripShape(t *testing.T) {
	out, err := Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(out), "max_depth: 1")
	assert.Contains(t, string(out), "count_weight: 0.75")
}
