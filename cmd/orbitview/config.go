package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gekko3d/rendiation"
	"github.com/pelletier/go-toml/v2"
)

// loadConfig reads a TOML view config. An empty path or a missing file yields
// the defaults.
func loadConfig(path string) (rendiation.ViewConfig, error) {
	if path == "" {
		return parseConfig(nil)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return parseConfig(nil)
	}
	if err != nil {
		return rendiation.ViewConfig{}, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (rendiation.ViewConfig, error) {
	var cfg rendiation.ViewConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return rendiation.ViewConfig{}, fmt.Errorf("parse config: %w", err)
	}
	// hidpi stays zero so the window can pick the monitor scale
	hidpi := cfg.HidpiFactor
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return rendiation.ViewConfig{}, err
	}
	cfg.HidpiFactor = hidpi
	return cfg, nil
}
