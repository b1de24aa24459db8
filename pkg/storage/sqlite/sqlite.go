package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/moviedb/pkg/collection"
	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/pkg/storage"
	"github.com/kasuboski/moviedb/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/moviedb/pkg/storage/sqlite/schema/gen/table"
	_ "github.com/mattn/go-sqlite3"
	"github.com/oapi-codegen/nullable"
	"go.uber.org/zap"
)

var _ storage.Storage = (*SQLite)(nil)

// SQLite keeps the collection in a single table. Mutations follow the same
// read-modify-write-all contract as the file stores: the table is emptied
// and refilled inside one transaction.
type SQLite struct {
	db *sql.DB
	// initErr is set when the file could not be migrated, e.g. because it is
	// not a sqlite database. Reads degrade to an empty collection and writes
	// return the error.
	initErr error
}

// New opens the sqlite database at filePath and applies pending migrations
func New(ctx context.Context, filePath string) (*SQLite, error) {
	log := logger.FromCtx(ctx)

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db}
	if err := runMigrations(db); err != nil {
		log.Warnw("failed to migrate database", zap.String("path", filePath), zap.Error(err))
		s.initErr = storage.Corrupt(filePath, err)
		return s, nil
	}

	log.Debugw("storage ready", zap.String("path", filePath), zap.String("format", string(storage.FormatSQLite)))
	return s, nil
}

// Close closes the underlying database
func (s *SQLite) Close() error {
	return s.db.Close()
}

// ListMovies returns the stored collection in insertion order. Query
// failures degrade to an empty collection.
func (s *SQLite) ListMovies(ctx context.Context) (collection.Collection, error) {
	c, err := s.load(ctx)
	if err != nil {
		logger.FromCtx(ctx).Warnw("falling back to an empty collection", zap.Error(err))
		return collection.New(), nil
	}
	return c, nil
}

// AddMovie inserts or overwrites title with a rounded rating
func (s *SQLite) AddMovie(ctx context.Context, title string, year int, rating float64, poster nullable.Nullable[string]) error {
	if s.initErr != nil {
		return s.initErr
	}

	movies, err := s.ListMovies(ctx)
	if err != nil {
		return err
	}

	m := collection.Movie{Title: title, Year: year, Rating: rating, Poster: poster}
	movies.Set(m.Normalized())

	return s.save(ctx, movies)
}

// DeleteMovie removes title when present
func (s *SQLite) DeleteMovie(ctx context.Context, title string) error {
	if s.initErr != nil {
		return s.initErr
	}

	movies, err := s.ListMovies(ctx)
	if err != nil {
		return err
	}

	if !movies.Delete(title) {
		return storage.NotFound(title)
	}

	return s.save(ctx, movies)
}

// UpdateMovie replaces the rating of title
func (s *SQLite) UpdateMovie(ctx context.Context, title string, rating float64) error {
	if s.initErr != nil {
		return s.initErr
	}

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

func (s *SQLite) load(ctx context.Context) (collection.Collection, error) {
	if s.initErr != nil {
		return collection.Collection{}, s.initErr
	}

	stmt := table.Movie.
		SELECT(table.Movie.AllColumns).
		FROM(table.Movie).
		ORDER_BY(table.Movie.Position.ASC())

	rows := make([]model.Movie, 0)
	if err := stmt.QueryContext(ctx, s.db, &rows); err != nil {
		return collection.Collection{}, fmt.Errorf("failed to list movies: %w", err)
	}

	c := collection.New()
	for _, r := range rows {
		c.Set(fromModel(r))
	}

	if err := storage.CheckInvariants(c); err != nil {
		return collection.Collection{}, storage.Corrupt("movie table", err)
	}

	return c, nil
}

func (s *SQLite) save(ctx context.Context, c collection.Collection) error {
	log := logger.FromCtx(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debugw("failed to init transaction", zap.Error(err))
		return err
	}

	del := table.Movie.DELETE().WHERE(sqlite.Bool(true))
	if _, err := del.ExecContext(ctx, tx); err != nil {
		log.Debugw("failed to execute statement", zap.String("query", del.DebugSql()), zap.Error(err))
		tx.Rollback()
		return err
	}

	if c.Len() > 0 {
		rows := make([]model.Movie, 0, c.Len())
		for i, m := range c.Movies() {
			rows = append(rows, toModel(m, i))
		}

		ins := table.Movie.INSERT(table.Movie.AllColumns).MODELS(rows)
		if _, err := ins.ExecContext(ctx, tx); err != nil {
			log.Debugw("failed to execute statement", zap.String("query", ins.DebugSql()), zap.Error(err))
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func toModel(m collection.Movie, position int) model.Movie {
	row := model.Movie{
		Title:    m.Title,
		Rating:   m.Rating,
		Year:     int32(m.Year),
		Position: int32(position),
	}
	if p := m.PosterURL(); p != "" {
		row.Poster = &p
	}
	return row
}

func fromModel(r model.Movie) collection.Movie {
	var poster string
	if r.Poster != nil {
		poster = *r.Poster
	}
	return collection.NewMovie(r.Title, int(r.Year), r.Rating, poster)
}
