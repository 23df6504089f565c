package scan

import (
	"io/fs"
	"time"
)

// fakeSystem serves canned directory listings and file metadata, and records
// which directories were listed.
type fakeSystem struct {
	dirs     map[string][]fs.DirEntry
	infos    map[string]fs.FileInfo
	readErrs map[string]error

	readDirCalls []string
}

func (s *fakeSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	s.readDirCalls = append(s.readDirCalls, name)
	if err, ok := s.readErrs[name]; ok {
		return nil, err
	}
	return s.dirs[name], nil
}

func (s *fakeSystem) Stat(name string) (fs.FileInfo, error) {
	info, ok := s.infos[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return info, nil
}

type fakeEntry struct {
	name string
	dir  bool
}

func (e fakeEntry) Name() string               { return e.name }
func (e fakeEntry) IsDir() bool                { return e.dir }
func (e fakeEntry) Type() fs.FileMode          { return 0 }
func (e fakeEntry) Info() (fs.FileInfo, error) { return nil, fs.ErrNotExist }

type fakeInfo struct {
	name string
	mode fs.FileMode
}

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) Mode() fs.FileMode  { return i.mode }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.mode.IsDir() }
func (i fakeInfo) Sys() any           { return nil }
