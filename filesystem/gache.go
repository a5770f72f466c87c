package filesystem

import (
	"io"
	"os"
)

// CacheFs routes gache persistence through the active backend, so cached
// registries land in MemMapFs during tests.
type CacheFs struct{}

// OpenFile opens a file using the current filesystem backend.
func (CacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

// MkdirAll creates a directory using the current filesystem backend.
func (CacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
