// Package config owns the persisted launcher state: the versions root
// directory and the remembered executable per version.
package config

// Config is the full persisted state of gdrun.
//
// DefaultExecutables maps a version identifier (the bare name of a
// subdirectory under RootDirectory) to the absolute executable path last
// chosen for that version. Entries are overwritten on each successful
// selection and never pruned; a stale path is detected at read time and
// treated as absent.
type Config struct {
	RootDirectory      string            `toml:"root-directory,omitempty"`
	DefaultExecutables map[string]string `toml:"default-executables"`
}

// Default returns an empty config. Every load failure falls back to this
// value in full; a partially applied config never exists.
func Default() *Config {
	return &Config{
		DefaultExecutables: map[string]string{},
	}
}
