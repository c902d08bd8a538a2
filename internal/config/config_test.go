package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(Dir(), "plannex.db"), cfg.DatabasePath)
	assert.Equal(t, DefaultBaseWage, cfg.BaseWage)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".plannex")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "base_wage: 450.5\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 450.5, cfg.BaseWage)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched keys keep their defaults
	assert.Equal(t, filepath.Join(dir, "plannex.db"), cfg.DatabasePath)
}
