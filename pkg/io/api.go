package io

import (
	"os"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_io.go github.com/kasuboski/moviedb/pkg/io FileIO

// FileIO is an interface for the file operations the file backed stores need
type FileIO interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	MkdirAll(name string, perm os.FileMode) error
}
