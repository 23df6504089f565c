// Package scan discovers installed Godot versions under a root directory
// and classifies the executables inside each version directory.
package scan

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/1273l/Godot-Launcher/internal/messages"
)

// Candidate is one installed version: the bare subdirectory name used as
// the version identifier, and the directory's full path. Candidates are
// recomputed every run, never persisted.
type Candidate struct {
	Version string
	Dir     string
}

// Executable is one qualifying binary inside a version directory.
type Executable struct {
	Path    string
	Variant Variant
}

// Scan enumerates the immediate subdirectories of rootDir and returns one
// Candidate per directory holding at least one qualifying executable,
// sorted ascending by version identifier. reservedDir (gdrun's own
// directory) is excluded case-insensitively. An empty result is a valid
// result; only a failure to read rootDir itself is an error.
func Scan(sys System, rootDir, reservedDir string) ([]Candidate, error) {
	entries, err := sys.ReadDir(rootDir)
	if err != nil {
		return nil, fmt.Errorf(messages.ScanRootFmt, rootDir, err)
	}

	var candidates []Candidate
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if strings.EqualFold(entry.Name(), reservedDir) {
			continue
		}
		dir := filepath.Join(rootDir, entry.Name())
		if len(Executables(sys, dir)) == 0 {
			continue
		}
		candidates = append(candidates, Candidate{Version: entry.Name(), Dir: dir})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Version < candidates[j].Version
	})
	return candidates, nil
}

// Executables returns the qualifying executables among the immediate files
// of dir, editor variants first, ties broken by path. An unreadable
// directory counts as containing none.
func Executables(sys System, dir string) []Executable {
	entries, err := sys.ReadDir(dir)
	if err != nil {
		return nil
	}

	var execs []Executable
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !IsQualifyingExecutable(sys, path) {
			continue
		}
		execs = append(execs, Executable{Path: path, Variant: VariantOf(path)})
	}

	sort.Slice(execs, func(i, j int) bool {
		if execs[i].Variant != execs[j].Variant {
			return execs[i].Variant < execs[j].Variant
		}
		return execs[i].Path < execs[j].Path
	})
	return execs
}
