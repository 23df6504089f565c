//go:build windows

package scan

import (
	"path/filepath"
	"strings"
)

const exeExt = ".exe"

// isExecutable reports whether path carries the native executable extension,
// case-insensitively. Windows has no execute permission bit to probe.
func isExecutable(_ System, path string) bool {
	return strings.EqualFold(filepath.Ext(path), exeExt)
}
