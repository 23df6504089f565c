package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/1273l/Godot-Launcher/internal/messages"
)

// Save serializes cfg as TOML and replaces the file at path. A failure
// leaves the in-memory config untouched; callers treat it as a warning.
func Save(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf(messages.ConfigMarshalFmt, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf(messages.ConfigWriteFileFmt, path, err)
	}
	return nil
}
