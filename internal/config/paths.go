package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/1273l/Godot-Launcher/internal/messages"
)

// FileName is the config file kept beside the gdrun binary.
const FileName = "gdrun.toml"

// SelfDirName is the fallback name of gdrun's own directory, used when the
// executable path cannot be resolved. The scanner excludes this directory
// from version candidacy so gdrun never offers to launch itself.
const SelfDirName = "Gdrun"

// DefaultPath returns the config file path beside the running binary.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveSelfPathFmt, err)
	}
	return filepath.Join(filepath.Dir(exe), FileName), nil
}

// ReservedDirName returns the version identifier reserved for gdrun itself:
// the base name of the directory holding the config file. The scanner skips
// it case-insensitively.
func ReservedDirName(configPath string) string {
	if configPath == "" {
		return SelfDirName
	}
	name := filepath.Base(filepath.Dir(configPath))
	if name == "." || name == string(filepath.Separator) {
		return SelfDirName
	}
	return name
}
