// Package filex provides the plain filesystem primitives the vault storage
// backend is built on. The storage adapter calls these through the
// Filesystem interface so tests can substitute a fake and assert on the
// exact calls made.
package filex

import (
	"errors"
	"io/fs"
	"os"
)

// Filesystem is the minimal primitive surface the vault backend needs.
// ReadFile returns (nil, nil) when the file does not exist: a missing file
// is the documented empty-state case, not an error.
type Filesystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte) error
	DeleteFile(path string) error
	ListDirectory(path string) ([]string, error)
	EnsureDirectory(path string) error
}

// OS is the real-filesystem implementation.
type OS struct{}

func (OS) ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return b, err
}

func (OS) WriteFile(path string, content []byte) error {
	return os.WriteFile(path, content, 0o600)
}

func (OS) DeleteFile(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ListDirectory returns the names in path. A missing directory yields an
// empty list.
func (OS) ListDirectory(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

func (OS) EnsureDirectory(path string) error {
	return os.MkdirAll(path, 0o700)
}
