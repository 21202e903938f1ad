package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "omniadapt")

	v, err := loadConfig(configDir)
	require.NoError(t, err)

	assert.Equal(t, defaultBackend, v.GetString(cfgKeyBackend))
	assert.Empty(t, v.GetString(cfgKeyDataDir))

	_, err = os.Stat(filepath.Join(configDir, configFileExt))
	assert.NoError(t, err, "default config.yaml is written on first run")
}

func TestLoadConfigReadsExisting(t *testing.T) {
	configDir := t.TempDir()
	content := "backend: sqlite\ndata_dir: /srv/omnipath\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileExt), []byte(content), 0o644))

	v, err := loadConfig(configDir)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", v.GetString(cfgKeyBackend))
	assert.Equal(t, "/srv/omnipath", v.GetString(cfgKeyDataDir))
}

func TestLoadConfigPreservesExistingFile(t *testing.T) {
	configDir := t.TempDir()
	content := "backend: sqlite\ndata_dir: /srv/omnipath\n"
	path := filepath.Join(configDir, configFileExt)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := loadConfig(configDir)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(got), "loadConfig never overwrites an existing config.yaml")
}
