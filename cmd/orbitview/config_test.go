package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gekko3d/rendiation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(nil)
	require.NoError(t, err)

	def := rendiation.DefaultViewConfig()
	assert.Equal(t, def.Title, cfg.Title)
	assert.Equal(t, def.Width, cfg.Width)
	assert.Equal(t, def.Height, cfg.Height)
	assert.Equal(t, def.FovDegrees, cfg.FovDegrees)
	assert.Equal(t, float32(0), cfg.HidpiFactor, "hidpi left for the monitor to decide")
}

func TestParseConfigOverrides(t *testing.T) {
	cfg, err := parseConfig([]byte(`
title = "viewer"
width = 800
height = 600
hidpi_factor = 2
fov_degrees = 75
far = 500
debug = true
`))
	require.NoError(t, err)
	assert.Equal(t, "viewer", cfg.Title)
	assert.Equal(t, float32(800), cfg.Width)
	assert.Equal(t, float32(600), cfg.Height)
	assert.Equal(t, float32(2), cfg.HidpiFactor)
	assert.Equal(t, float32(75), cfg.FovDegrees)
	assert.Equal(t, float32(0.1), cfg.Near)
	assert.Equal(t, float32(500), cfg.Far)
	assert.True(t, cfg.Debug)
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"far before near", "near = 10\nfar = 1"},
		{"negative width", "width = -5"},
		{"fov too wide", "fov_degrees = 200"},
		{"negative radius", "orbit_radius = -1"},
		{"malformed", "width = ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, rendiation.DefaultViewConfig().Width, cfg.Width)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.toml")
	require.NoError(t, os.WriteFile(path, []byte("orbit_radius = 25\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, float32(25), cfg.OrbitRadius)
}
