package file

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/kasuboski/moviedb/pkg/collection"
	mio "github.com/kasuboski/moviedb/pkg/io"
	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/pkg/storage"
	"github.com/oapi-codegen/nullable"
	"go.uber.org/zap"
)

var _ storage.Storage = (*Store)(nil)

// Codec converts between a collection and its on-disk encoding.
type Codec interface {
	// Name identifies the encoding in logs.
	Name() string
	// Empty is the content written when the backing file is created.
	Empty() []byte
	Encode(c collection.Collection) ([]byte, error)
	Decode(b []byte) (collection.Collection, error)
}

// Store keeps a collection in a single file, rewriting the whole file on
// every mutation.
type Store struct {
	path  string
	codec Codec
	fio   mio.FileIO
}

// New creates a file store at path, creating an empty backing file when none
// exists.
func New(ctx context.Context, path string, codec Codec, fio mio.FileIO) (*Store, error) {
	log := logger.FromCtx(ctx)

	if fio == nil {
		fio = &mio.LocalFileSystem{}
	}

	created, err := mio.EnsureFile(fio, path, codec.Empty())
	if err != nil {
		return nil, err
	}

	log.Debugw("storage ready", zap.String("path", path), zap.String("format", codec.Name()), zap.Bool("created", created))

	return &Store{
		path:  path,
		codec: codec,
		fio:   fio,
	}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// ListMovies returns the stored collection. A missing or undecodable file
// yields an empty collection instead of an error.
func (s *Store) ListMovies(ctx context.Context) (collection.Collection, error) {
	c, err := s.load()
	if err != nil {
		logger.FromCtx(ctx).Warnw("falling back to an empty collection", zap.String("path", s.path), zap.Error(err))
		return collection.New(), nil
	}
	return c, nil
}

// AddMovie inserts or overwrites title with a rounded rating.
func (s *Store) AddMovie(ctx context.Context, title string, year int, rating float64, poster nullable.Nullable[string]) error {
	movies, err := s.ListMovies(ctx)
	if err != nil {
		return err
	}

	m := collection.Movie{Title: title, Year: year, Rating: rating, Poster: poster}
	movies.Set(m.Normalized())

	return s.save(ctx, movies)
}

// DeleteMovie removes title. The file is left untouched when title is absent.
func (s *Store) DeleteMovie(ctx context.Context, title string) error {
	movies, err := s.ListMovies(ctx)
	if err != nil {
		return err
	}

	if !movies.Delete(title) {
		return storage.NotFound(title)
	}

	return s.save(ctx, movies)
}

// UpdateMovie replaces only the rating of title.
func (s *Store) UpdateMovie(ctx context.Context, title string, rating float64) error {
	movies, err := s.ListMovies(ctx)
	if err != nil {
		return err
	}

	m, ok := movies.Get(title)
	if !ok {
		return storage.NotFound(title)
	}

	m.Rating = collection.RoundRating(rating)
	movies.Set(m)

	return s.save(ctx, movies)
}

func (s *Store) load() (collection.Collection, error) {
	b, err := s.fio.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return collection.New(), nil
		}
		return collection.Collection{}, err
	}

	c, err := s.codec.Decode(b)
	if err != nil {
		return collection.Collection{}, storage.Corrupt(s.path, err)
	}

	if err := storage.CheckInvariants(c); err != nil {
		return collection.Collection{}, storage.Corrupt(s.path, err)
	}

	return c, nil
}

func (s *Store) save(ctx context.Context, c collection.Collection) error {
	b, err := s.codec.Encode(c)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.codec.Name(), err)
	}

	if err := s.fio.WriteFile(s.path, b, mio.DefaultFileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	logger.FromCtx(ctx).Debugw("saved collection", zap.String("path", s.path), zap.Int("movies", c.Len()))
	return nil
}
