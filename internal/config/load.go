package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/1273l/Godot-Launcher/internal/messages"
)

// Load reads the config file at path. A missing, unreadable, or unparsable
// file is not fatal: Load then returns Default() together with the error so
// the caller can warn and continue with a clean slate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes TOML config data. source is used in error messages.
// On a decode error the returned config is Default(), never a partial value.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf(messages.ConfigParseFmt, source, err)
	}
	if cfg.DefaultExecutables == nil {
		cfg.DefaultExecutables = map[string]string{}
	}
	return &cfg, nil
}
