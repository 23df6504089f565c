package scan

import (
	"path/filepath"
	"strings"
)

// enginePrefix is the case-insensitive base-name prefix a file must carry to
// count as a Godot executable.
const enginePrefix = "godot"

// consoleMarker in the base name (extension stripped) marks a console build.
const consoleMarker = "console"

// Variant classifies a Godot executable build.
type Variant int

// Editor sorts before Console wherever executables are presented.
const (
	Editor Variant = iota
	Console
)

func (v Variant) String() string {
	if v == Console {
		return "console"
	}
	return "editor"
}

// IsQualifyingExecutable reports whether path looks like a launchable Godot
// binary: the base name starts with the engine prefix and the file passes
// the platform executable test. Only the path and its metadata are
// consulted, never file contents.
func IsQualifyingExecutable(sys System, path string) bool {
	if !strings.HasPrefix(strings.ToLower(filepath.Base(path)), enginePrefix) {
		return false
	}
	return isExecutable(sys, path)
}

// VariantOf infers the build variant from the base file name.
func VariantOf(path string) Variant {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if strings.Contains(strings.ToLower(name), consoleMarker) {
		return Console
	}
	return Editor
}
