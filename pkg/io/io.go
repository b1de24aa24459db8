package io

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	_ FileIO = (*LocalFileSystem)(nil)
)

const (
	DefaultFileMode = os.FileMode(0o644)
	DefaultDirMode  = os.FileMode(0o755)
)

// LocalFileSystem is the default implementation of file io using the os package
type LocalFileSystem struct{}

// Stat is a wrapper around os.Stat
func (o *LocalFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile is a wrapper around os.ReadFile
func (o *LocalFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile truncates name and writes data to it, creating it when missing.
// The previous contents are gone once the truncate happens, a failed write
// leaves a partial file behind.
func (o *LocalFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// MkdirAll is a wrapper around os.MkdirAll
func (o *LocalFileSystem) MkdirAll(name string, perm os.FileMode) error {
	return os.MkdirAll(name, perm)
}

// FileExists reports whether path can be stat'ed.
func FileExists(fio FileIO, path string) bool {
	_, err := fio.Stat(path)
	return err == nil
}

// EnsureFile creates path with the given initial contents when it does not
// exist yet. It reports whether the file was created.
func EnsureFile(fio FileIO, path string, initial []byte) (bool, error) {
	_, err := fio.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := fio.MkdirAll(dir, DefaultDirMode); err != nil {
			return false, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := fio.WriteFile(path, initial, DefaultFileMode); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", path, err)
	}

	return true, nil
}
