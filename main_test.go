package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.yaml")
	require.NoError(t, os.WriteFile(path, []byte("team:\n  name: fromfile\nmax_turns: 10\nbot: donothing\n"), 0o644))

	cfg, err := loadConfig([]string{"-config", path, "-team", "flagged", "-turns", "0", "-log-level", "debug"})
	require.NoError(t, err)
	assert.Equal(t, "flagged", cfg.Team.Name)
	assert.Equal(t, 0, cfg.MaxTurns)
	assert.Equal(t, "donothing", cfg.Bot)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigRejectsUnknownBot(t *testing.T) {
	_, err := loadConfig([]string{"-bot", "genius"})
	assert.Error(t, err)
}
