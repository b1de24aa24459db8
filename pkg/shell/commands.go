package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/kasuboski/moviedb/pkg/collection"
	"github.com/kasuboski/moviedb/pkg/manager"
	"github.com/kasuboski/moviedb/pkg/omdb"
	"github.com/kasuboski/moviedb/pkg/storage"
)

func (s *Shell) listMovies(ctx context.Context) error {
	movies, err := s.movies.ListMovies(ctx)
	if err != nil {
		return err
	}
	s.printMovies(movies)
	return nil
}

func (s *Shell) exists(ctx context.Context, title string) (bool, error) {
	movies, err := s.movies.ListMovies(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range movies {
		if m.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (s *Shell) addMovie(ctx context.Context) error {
	title, err := s.askTitle()
	if err != nil {
		return err
	}

	found, err := s.exists(ctx, title)
	if err != nil {
		return err
	}
	if found {
		s.printWarning(fmt.Sprintf("Movie '%s' already exists!", title))
		return nil
	}

	var movie collection.Movie
	if s.movies.CanLookup() {
		movie, err = s.movies.AddMovieFromLookup(ctx, title)
	} else {
		movie, err = s.addManually(ctx, title)
	}

	switch {
	case errors.Is(err, manager.ErrAlreadyExists):
		s.printWarning(fmt.Sprintf("Movie '%s' already exists!", title))
	case errors.Is(err, omdb.ErrNotFound):
		s.printWarning(fmt.Sprintf("Movie '%s' not found", title))
	case errors.Is(err, omdb.ErrUnavailable):
		s.printWarning("Error fetching data!")
	case err != nil:
		return err
	default:
		s.printSuccess(fmt.Sprintf("Movie '%s' (%d) added with rating %s.", movie.Title, movie.Year, formatRating(movie.Rating)))
	}
	return nil
}

func (s *Shell) addManually(ctx context.Context, title string) (collection.Movie, error) {
	rating, err := s.askRating()
	if err != nil {
		return collection.Movie{}, err
	}
	year, err := s.askYear()
	if err != nil {
		return collection.Movie{}, err
	}
	return s.movies.AddMovie(ctx, manager.AddMovieRequest{Title: title, Rating: rating, Year: year})
}

func (s *Shell) deleteMovie(ctx context.Context) error {
	title, err := s.askTitle()
	if err != nil {
		return err
	}

	err = s.movies.DeleteMovie(ctx, title)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.printWarning(fmt.Sprintf("Movie '%s' doesn't exist!", title))
	case err != nil:
		return err
	default:
		s.printSuccess(fmt.Sprintf("Movie '%s' deleted.", title))
	}
	return nil
}

func (s *Shell) updateMovie(ctx context.Context) error {
	title, err := s.askTitle()
	if err != nil {
		return err
	}

	found, err := s.exists(ctx, title)
	if err != nil {
		return err
	}
	if !found {
		s.printWarning(fmt.Sprintf("Movie '%s' doesn't exist!", title))
		return nil
	}

	rating, err := s.askRating()
	if err != nil {
		return err
	}

	movie, err := s.movies.UpdateMovie(ctx, manager.UpdateMovieRequest{Title: title, Rating: rating})
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.printWarning(fmt.Sprintf("Movie '%s' doesn't exist!", title))
	case err != nil:
		return err
	default:
		s.printSuccess(fmt.Sprintf("Movie '%s' now rated %s.", movie.Title, formatRating(movie.Rating)))
	}
	return nil
}

func (s *Shell) stats(ctx context.Context) error {
	stats, err := s.movies.Stats(ctx)
	if err != nil {
		return err
	}
	s.printStats(stats)
	return nil
}

func (s *Shell) randomMovie(ctx context.Context) error {
	movie, err := s.movies.RandomMovie(ctx)
	if errors.Is(err, collection.ErrEmptyCollection) {
		s.println("No movies found!")
		return nil
	}
	if err != nil {
		return err
	}
	s.printRandom(movie)
	return nil
}

func (s *Shell) searchMovies(ctx context.Context) error {
	query, err := s.readLine("Enter part of movie name: ")
	if err != nil {
		return err
	}

	movies, err := s.movies.SearchMovies(ctx, query)
	if err != nil {
		return err
	}

	s.println()
	if len(movies) == 0 {
		s.println("No movie found.")
		return nil
	}
	s.printMovies(movies)
	return nil
}

func (s *Shell) sortBy(key manager.SortKey) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		descending, err := s.askDescending()
		if err != nil {
			return err
		}

		movies, err := s.movies.SortMovies(ctx, key, descending)
		if err != nil {
			return err
		}
		s.printMovies(movies)
		return nil
	}
}

func (s *Shell) filterMovies(ctx context.Context) error {
	minRating, err := s.askMinRating()
	if err != nil {
		return err
	}
	startYear, err := s.askYearBound("start")
	if err != nil {
		return err
	}
	endYear, err := s.askYearBound("end")
	if err != nil {
		return err
	}

	movies, err := s.movies.FilterMovies(ctx, manager.FilterRequest{
		MinRating: minRating,
		StartYear: startYear,
		EndYear:   endYear,
	})
	if err != nil {
		return err
	}
	s.printMovies(movies)
	return nil
}
