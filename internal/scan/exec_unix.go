//go:build !windows

package scan

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// isExecutable reports whether path is a regular file with the owner
// execute bit set. Any metadata probe error means not executable.
func isExecutable(sys System, path string) bool {
	info, err := sys.Stat(path)
	if err != nil {
		return false
	}
	if !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&fs.FileMode(unix.S_IXUSR) != 0
}
