package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campsite.toml")
	body := `
[window]
width = 1920
height = 1080
title = "Night Scene"
vsync = false

[camera]
fov = 65.0
move_speed = 12.0
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1920, cfg.Window.Width)
	assert.Equal(t, "Night Scene", cfg.Window.Title)
	assert.False(t, cfg.Window.VSync)
	assert.InDelta(t, 65.0, cfg.Camera.FOV, 1e-6)
	assert.InDelta(t, 12.0, cfg.Camera.MoveSpeed, 1e-6)
	// Untouched sections keep their defaults.
	assert.InDelta(t, 0.1, cfg.Camera.Sensitivity, 1e-6)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campsite.toml")
	require.NoError(t, os.WriteFile(path, []byte("[camera]\nfov = -5.0\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campsite.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\nwidth="), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
