package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kasuboski/moviedb/pkg/collection"
	"github.com/oapi-codegen/nullable"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_storage.go github.com/kasuboski/moviedb/pkg/storage Storage

var (
	ErrNotFound = errors.New("not found in storage")
	// ErrCorrupt marks backing data that could not be decoded. ListMovies
	// recovers from it by returning an empty collection.
	ErrCorrupt = errors.New("corrupt storage")
)

// Storage persists a whole movie collection. Every mutation reads the full
// collection, changes it in memory and writes the full collection back.
type Storage interface {
	ListMovies(ctx context.Context) (collection.Collection, error)
	AddMovie(ctx context.Context, title string, year int, rating float64, poster nullable.Nullable[string]) error
	DeleteMovie(ctx context.Context, title string) error
	UpdateMovie(ctx context.Context, title string, rating float64) error
}

type Format string

const (
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// ParseFormat resolves a configured format. An empty format is inferred from
// the file extension, defaulting to json.
func ParseFormat(format, filePath string) (Format, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" {
		switch strings.ToLower(filepath.Ext(filePath)) {
		case ".csv":
			return FormatCSV, nil
		case ".db", ".sqlite", ".sqlite3":
			return FormatSQLite, nil
		default:
			return FormatJSON, nil
		}
	}

	switch Format(f) {
	case FormatJSON, FormatCSV, FormatSQLite:
		return Format(f), nil
	default:
		return "", fmt.Errorf("unsupported storage format: %s", format)
	}
}

// NotFound wraps ErrNotFound with the missing title.
func NotFound(title string) error {
	return fmt.Errorf("movie %q: %w", title, ErrNotFound)
}

// Corrupt wraps ErrCorrupt with the underlying decode failure.
func Corrupt(path string, err error) error {
	return fmt.Errorf("%s: %w: %w", path, ErrCorrupt, err)
}

// CheckInvariants rejects decoded entries that violate the movie invariants.
func CheckInvariants(c collection.Collection) error {
	for _, m := range c.Movies() {
		if err := collection.Validate(m); err != nil {
			return err
		}
	}
	return nil
}
