package manager

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/kasuboski/moviedb/pkg/collection"
	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/pkg/omdb"
	"github.com/kasuboski/moviedb/pkg/storage"
)

var (
	ErrAlreadyExists = errors.New("movie already exists")
	ErrNoFetcher     = errors.New("metadata lookup is not configured")
)

// MovieManager runs every collection operation against a single store.
// Operations are serialized so concurrent callers never interleave a
// read-modify-write cycle.
type MovieManager struct {
	mu      sync.Mutex
	storage storage.Storage
	fetcher omdb.Fetcher
	picker  collection.Picker
}

// Option configures a MovieManager
type Option func(*MovieManager)

// WithFetcher enables metadata lookups when adding movies
func WithFetcher(f omdb.Fetcher) Option {
	return func(m *MovieManager) {
		m.fetcher = f
	}
}

// WithPicker sets the random source used by RandomMovie
func WithPicker(p collection.Picker) Option {
	return func(m *MovieManager) {
		m.picker = p
	}
}

func New(storage storage.Storage, opts ...Option) *MovieManager {
	m := &MovieManager{storage: storage}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CanLookup reports whether AddMovieFromLookup is available
func (m *MovieManager) CanLookup() bool {
	return m.fetcher != nil
}

func (m *MovieManager) snapshot(ctx context.Context) (collection.Collection, error) {
	c, err := m.storage.ListMovies(ctx)
	if err != nil {
		logger.FromCtx(ctx).Errorw("failed to list movies", "error", err)
		return collection.Collection{}, err
	}
	return c, nil
}

// ListMovies returns every movie in storage order
func (m *MovieManager) ListMovies(ctx context.Context) ([]collection.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return c.Movies(), nil
}

// AddMovie stores a manually entered movie
func (m *MovieManager) AddMovie(ctx context.Context, req AddMovieRequest) (collection.Movie, error) {
	log := logger.FromCtx(ctx, "title", req.Title)

	req.Title = strings.TrimSpace(req.Title)
	req.Rating = collection.RoundRating(req.Rating)
	if err := collection.ValidateStruct(req); err != nil {
		log.Debugw("rejected movie", "error", err)
		return collection.Movie{}, err
	}

	movie := collection.NewMovie(req.Title, req.Year, req.Rating, req.Poster)

	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.snapshot(ctx)
	if err != nil {
		return collection.Movie{}, err
	}
	if err := m.insert(ctx, c, movie); err != nil {
		return collection.Movie{}, err
	}

	log.Infow("added movie", "year", movie.Year, "rating", movie.Rating)
	return movie, nil
}

// AddMovieFromLookup fetches metadata for title and stores it under the given title
func (m *MovieManager) AddMovieFromLookup(ctx context.Context, title string) (collection.Movie, error) {
	title = strings.TrimSpace(title)
	log := logger.FromCtx(ctx, "title", title)

	if title == "" {
		return collection.Movie{}, fmt.Errorf("%w: title must not be empty", collection.ErrValidation)
	}
	if m.fetcher == nil {
		return collection.Movie{}, ErrNoFetcher
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.snapshot(ctx)
	if err != nil {
		return collection.Movie{}, err
	}
	if c.Has(title) {
		return collection.Movie{}, fmt.Errorf("%w: %q", ErrAlreadyExists, title)
	}

	res, err := m.fetcher.Fetch(ctx, title)
	if err != nil {
		log.Debugw("metadata lookup failed", "error", err)
		return collection.Movie{}, err
	}

	movie := collection.Movie{
		Title:  title,
		Rating: res.Rating,
		Year:   res.Year,
		Poster: res.Poster,
	}.Normalized()
	if err := collection.Validate(movie); err != nil {
		log.Debugw("metadata does not fit the collection", "error", err)
		return collection.Movie{}, err
	}

	if err := m.insert(ctx, c, movie); err != nil {
		return collection.Movie{}, err
	}

	log.Infow("added movie from lookup", "year", movie.Year, "rating", movie.Rating)
	return movie, nil
}

// insert adds movie unless its title is taken in c. The caller holds the lock.
func (m *MovieManager) insert(ctx context.Context, c collection.Collection, movie collection.Movie) error {
	if c.Has(movie.Title) {
		return fmt.Errorf("%w: %q", ErrAlreadyExists, movie.Title)
	}

	err := m.storage.AddMovie(ctx, movie.Title, movie.Year, movie.Rating, movie.Poster)
	if err != nil {
		logger.FromCtx(ctx).Errorw("failed to add movie", "error", err)
		return err
	}
	return nil
}

// DeleteMovie removes a movie by title
func (m *MovieManager) DeleteMovie(ctx context.Context, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.storage.DeleteMovie(ctx, title)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.FromCtx(ctx).Errorw("failed to delete movie", "error", err)
		}
		return err
	}

	logger.FromCtx(ctx).Infow("deleted movie", "title", title)
	return nil
}

// UpdateMovie replaces the rating of an existing movie
func (m *MovieManager) UpdateMovie(ctx context.Context, req UpdateMovieRequest) (collection.Movie, error) {
	req.Rating = collection.RoundRating(req.Rating)
	if err := collection.ValidateStruct(req); err != nil {
		return collection.Movie{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.storage.UpdateMovie(ctx, req.Title, req.Rating)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.FromCtx(ctx).Errorw("failed to update movie", "error", err)
		}
		return collection.Movie{}, err
	}

	c, err := m.snapshot(ctx)
	if err != nil {
		return collection.Movie{}, err
	}
	movie, ok := c.Get(req.Title)
	if !ok {
		return collection.Movie{}, storage.NotFound(req.Title)
	}

	logger.FromCtx(ctx).Infow("updated movie", "title", req.Title, "rating", req.Rating)
	return movie, nil
}

// Stats summarizes the ratings of the collection
func (m *MovieManager) Stats(ctx context.Context) (collection.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.snapshot(ctx)
	if err != nil {
		return collection.Stats{}, err
	}
	return collection.Summarize(c), nil
}

// RandomMovie picks a movie uniformly
func (m *MovieManager) RandomMovie(ctx context.Context) (collection.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.snapshot(ctx)
	if err != nil {
		return collection.Movie{}, err
	}
	return collection.RandomMovie(c, m.picker)
}

// SearchMovies returns the movies whose title contains query, ignoring case
func (m *MovieManager) SearchMovies(ctx context.Context, query string) ([]collection.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return collection.FindBySubstring(c, query).Movies(), nil
}

// SortMovies orders the collection by key
func (m *MovieManager) SortMovies(ctx context.Context, key SortKey, descending bool) ([]collection.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	switch key {
	case SortByRating:
		return collection.SortByRating(c, descending), nil
	case SortByYear:
		return collection.SortByYear(c, descending), nil
	default:
		return nil, fmt.Errorf("%w: unknown sort key %q", collection.ErrValidation, key)
	}
}

// FilterMovies returns the movies within the requested bounds, highest rated first
func (m *MovieManager) FilterMovies(ctx context.Context, req FilterRequest) ([]collection.Movie, error) {
	req = req.rounded()
	if err := collection.ValidateStruct(req); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	minRating, startYear, endYear := req.bounds()
	return collection.Filter(c, minRating, startYear, endYear), nil
}
