// Package filesystem provides the filesystem abstraction used by the
// migration and payload stages so that tests can run against temporary
// directories.
package filesystem

import "io/fs"

// FS abstracts filesystem operations
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
	ReadDir(name string) ([]fs.DirEntry, error)
}
