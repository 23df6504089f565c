package scan

import (
	"io/fs"
	"os"
)

// System abstracts the filesystem operations the scanner and classifier
// need. Tests substitute an in-memory implementation; other packages that
// touch the OS define their own System with the operations they need.
type System interface {
	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
}

// RealSystem implements System using the os package.
type RealSystem struct{}

// ReadDir lists the named directory.
func (RealSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// Stat returns file metadata for the named file.
func (RealSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}
