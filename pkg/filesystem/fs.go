package filesystem

import (
	"io"
	"io/fs"
)

// FS is the subset of filesystem operations the planner and executor need
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
	Open(name string) (fs.File, error)
	// CreateExclusive creates a new file for writing and fails if name already exists
	CreateExclusive(name string, perm fs.FileMode) (io.WriteCloser, error)
}
