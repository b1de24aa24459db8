package manager

import (
	"context"

	"github.com/kasuboski/moviedb/pkg/collection"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_service.go github.com/kasuboski/moviedb/pkg/manager Service

// Service is the set of collection operations exposed to the shell and the API
type Service interface {
	CanLookup() bool
	ListMovies(ctx context.Context) ([]collection.Movie, error)
	AddMovie(ctx context.Context, req AddMovieRequest) (collection.Movie, error)
	AddMovieFromLookup(ctx context.Context, title string) (collection.Movie, error)
	DeleteMovie(ctx context.Context, title string) error
	UpdateMovie(ctx context.Context, req UpdateMovieRequest) (collection.Movie, error)
	Stats(ctx context.Context) (collection.Stats, error)
	RandomMovie(ctx context.Context) (collection.Movie, error)
	SearchMovies(ctx context.Context, query string) ([]collection.Movie, error)
	SortMovies(ctx context.Context, key SortKey, descending bool) ([]collection.Movie, error)
	FilterMovies(ctx context.Context, req FilterRequest) ([]collection.Movie, error)
}

var _ Service = (*MovieManager)(nil)
