package shell

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kasuboski/moviedb/pkg/collection"
	"github.com/kasuboski/moviedb/pkg/manager"
	"github.com/kasuboski/moviedb/pkg/omdb"
	omdbmocks "github.com/kasuboski/moviedb/pkg/omdb/mocks"
	"github.com/kasuboski/moviedb/pkg/storage/jsonfile"
	"github.com/kasuboski/moviedb/pkg/storage/mocks"
)

type fixedPicker int

func (p fixedPicker) IntN(n int) int {
	return int(p) % n
}

func seed() []collection.Movie {
	return []collection.Movie{
		collection.NewMovie("The Shawshank Redemption", 1994, 9.3, ""),
		collection.NewMovie("Inception", 2010, 8.8, "https://posters/inception.jpg"),
		collection.NewMovie("Pulp Fiction", 1994, 8.9, ""),
		collection.NewMovie("The Room", 2003, 3.6, ""),
		collection.NewMovie("The Godfather", 1972, 9.3, ""),
	}
}

func newManager(t *testing.T, movies []collection.Movie, opts ...manager.Option) *manager.MovieManager {
	t.Helper()
	ctx := context.Background()
	store, err := jsonfile.New(ctx, filepath.Join(t.TempDir(), "movies.json"), nil)
	require.NoError(t, err)
	for _, m := range movies {
		require.NoError(t, store.AddMovie(ctx, m.Title, m.Year, m.Rating, m.Poster))
	}
	return manager.New(store, opts...)
}

func run(t *testing.T, movies manager.Service, input ...string) (string, *Shell) {
	t.Helper()
	var out bytes.Buffer
	s := New(movies, strings.NewReader(strings.Join(input, "\n")+"\n"), &out)
	err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateExited, s.State())
	return out.String(), s
}

func TestShell_Exit(t *testing.T) {
	t.Run("menu choice", func(t *testing.T) {
		out, _ := run(t, newManager(t, seed()), "0")
		assert.Contains(t, out, "********** My Movie Database **********")
		assert.Contains(t, out, "0. Exit\n1. List movies\n2. Add movie\n3. Delete movie\n4. Update movie\n5. Stats\n6. Random movie\n7. Search movie\n8. Movies sorted by rating\n9. Movies sorted by year\n10. Filter movies\n")
		assert.True(t, strings.HasSuffix(out, "Bye Bye!\n"))
	})

	t.Run("end of input", func(t *testing.T) {
		var out bytes.Buffer
		s := New(newManager(t, seed()), strings.NewReader(""), &out, WithTitle("Friday Night"))
		require.NoError(t, s.Run(context.Background()))
		assert.Contains(t, out.String(), "********** Friday Night **********")
		assert.Contains(t, out.String(), "Bye Bye!")
		assert.Equal(t, StateExited, s.State())
	})

	t.Run("end of input inside a command", func(t *testing.T) {
		var out bytes.Buffer
		s := New(newManager(t, seed()), strings.NewReader("2\nUp\n"), &out)
		require.NoError(t, s.Run(context.Background()))
		assert.Contains(t, out.String(), "Enter new movie rating (0-10): ")
		assert.Contains(t, out.String(), "Bye Bye!")
	})
}

func TestShell_InvalidChoice(t *testing.T) {
	out, _ := run(t, newManager(t, seed()), "abc", "11", "-1", "0")
	assert.Contains(t, out, "Invalid input. Please enter a number!")
	assert.Equal(t, 2, strings.Count(out, "The choice must be between 0 and 10. Please try again."))
}

func TestShell_ListMovies(t *testing.T) {
	out, _ := run(t, newManager(t, seed()), "1", "", "0")
	assert.Contains(t, out, "----- Total of 5 movies -----")
	assert.Contains(t, out, "'Inception'\n\tRating: 8.8 | Year: 2010\n\tPoster: https://posters/inception.jpg\n")
	assert.Contains(t, out, "'The Room'\n\tRating: 3.6 | Year: 2003\n")
	assert.Contains(t, out, "Press enter to continue: ")

	out, _ = run(t, newManager(t, nil), "1", "", "0")
	assert.Contains(t, out, "No movies found!")
}

func TestShell_AddMovie(t *testing.T) {
	ctx := context.Background()

	t.Run("manual entry", func(t *testing.T) {
		m := newManager(t, seed())
		out, _ := run(t, m, "2", "", "Up", "abc", "11", "8.26", "99", "year", "2009", "", "0")

		assert.Contains(t, out, "The movie name must not be empty!")
		assert.Contains(t, out, "Invalid input. Please enter a valid number!")
		assert.Contains(t, out, "Rating 11.0 is invalid. Please try again!")
		assert.Contains(t, out, "Invalid year. Please enter a 4-digit year!")
		assert.Contains(t, out, "Invalid input. Please enter a valid 4-digit year!")
		assert.Contains(t, out, "Movie 'Up' (2009) added with rating 8.3.")

		movies, err := m.ListMovies(ctx)
		require.NoError(t, err)
		assert.Equal(t, collection.NewMovie("Up", 2009, 8.3, ""), movies[len(movies)-1])
	})

	t.Run("duplicate", func(t *testing.T) {
		out, _ := run(t, newManager(t, seed()), "2", "Inception", "", "0")
		assert.Contains(t, out, "Movie 'Inception' already exists!")
		assert.NotContains(t, out, "Enter new movie rating")
	})

	t.Run("lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := omdbmocks.NewMockFetcher(ctrl)
		gomock.InOrder(
			fetcher.EXPECT().Fetch(gomock.Any(), "Up").Return(&omdb.Result{
				Title:  "Up",
				Year:   2009,
				Rating: 8.3,
				Poster: nullable.NewNullableWithValue("https://posters/up.jpg"),
			}, nil),
			fetcher.EXPECT().Fetch(gomock.Any(), "asdfgh").Return(nil, omdb.ErrNotFound),
			fetcher.EXPECT().Fetch(gomock.Any(), "Alien").Return(nil, omdb.ErrUnavailable),
		)

		m := newManager(t, seed(), manager.WithFetcher(fetcher))
		out, _ := run(t, m, "2", "Up", "", "2", "asdfgh", "", "2", "Alien", "", "0")

		assert.NotContains(t, out, "Enter new movie rating")
		assert.Contains(t, out, "Movie 'Up' (2009) added with rating 8.3.")
		assert.Contains(t, out, "Movie 'asdfgh' not found")
		assert.Contains(t, out, "Error fetching data!")

		movies, err := m.ListMovies(ctx)
		require.NoError(t, err)
		assert.Len(t, movies, 6)
	})
}

func TestShell_DeleteMovie(t *testing.T) {
	m := newManager(t, seed())
	out, _ := run(t, m, "3", "The Room", "", "3", "The Room", "", "0")
	assert.Contains(t, out, "Movie 'The Room' deleted.")
	assert.Contains(t, out, "Movie 'The Room' doesn't exist!")

	movies, err := m.ListMovies(context.Background())
	require.NoError(t, err)
	assert.Len(t, movies, 4)
}

func TestShell_UpdateMovie(t *testing.T) {
	m := newManager(t, seed())
	out, _ := run(t, m, "4", "Nope", "", "4", "The Room", "-2", "4.04", "", "0")
	assert.Contains(t, out, "Movie 'Nope' doesn't exist!")
	assert.Contains(t, out, "Rating -2.0 is invalid. Please try again!")
	assert.Contains(t, out, "Movie 'The Room' now rated 4.0.")
}

func TestShell_Stats(t *testing.T) {
	out, _ := run(t, newManager(t, seed()), "5", "", "0")
	assert.Contains(t, out, "Average rating: 8.0\n")
	assert.Contains(t, out, "Median rating : 8.9\n")
	assert.Contains(t, out, "Best movies   : - 'The Shawshank Redemption', Rating: 9.3\n                - 'The Godfather', Rating: 9.3\n")
	assert.Contains(t, out, "Worst movie   : 'The Room', Rating: 3.6\n")

	var buf bytes.Buffer
	s := New(nil, strings.NewReader(""), &buf)
	s.printStats(collection.Summarize(collection.New(seed()...)))
	snaps.MatchSnapshot(t, buf.String())

	out, _ = run(t, newManager(t, nil), "5", "", "0")
	assert.Contains(t, out, "No movies found!")
}

func TestShell_RandomMovie(t *testing.T) {
	out, _ := run(t, newManager(t, seed(), manager.WithPicker(fixedPicker(1))), "6", "", "0")
	assert.Contains(t, out, "Your movie for tonight:\n'Inception'\nIt's rated 8.8 and released 2010.\n")

	out, _ = run(t, newManager(t, nil), "6", "", "0")
	assert.Contains(t, out, "No movies found!")
}

func TestShell_SearchMovies(t *testing.T) {
	out, _ := run(t, newManager(t, seed()), "7", "THE", "", "7", "zzz", "", "0")
	assert.Contains(t, out, "----- Total of 3 movies -----")
	assert.Contains(t, out, "No movie found.")
}

func TestShell_SortMovies(t *testing.T) {
	t.Run("by rating descending", func(t *testing.T) {
		out, _ := run(t, newManager(t, seed()), "8", "3", "2", "", "0")
		assert.Contains(t, out, "Bad input! Please enter '1' or '2'.")

		shawshank := strings.Index(out, "'The Shawshank Redemption'")
		godfather := strings.Index(out, "'The Godfather'")
		room := strings.Index(out, "'The Room'")
		assert.Less(t, shawshank, godfather)
		assert.Less(t, godfather, room)
	})

	t.Run("by year ascending", func(t *testing.T) {
		out, _ := run(t, newManager(t, seed()), "9", "1", "", "0")

		godfather := strings.Index(out, "'The Godfather'")
		shawshank := strings.Index(out, "'The Shawshank Redemption'")
		inception := strings.Index(out, "'Inception'")
		assert.Less(t, godfather, shawshank)
		assert.Less(t, shawshank, inception)
	})
}

func TestShell_FilterMovies(t *testing.T) {
	t.Run("blank bounds", func(t *testing.T) {
		out, _ := run(t, newManager(t, seed()), "10", "", "", "", "", "0")
		assert.Contains(t, out, "----- Total of 5 movies -----")
	})

	t.Run("bounded", func(t *testing.T) {
		out, _ := run(t, newManager(t, seed()), "10", "x", "12", "8.9", "1", "1990", "abc", "2000", "", "0")
		assert.Contains(t, out, "Invalid input. Please enter a valid number or leave blank!")
		assert.Contains(t, out, "Rating 12.0 is invalid. Please try again!")
		assert.Contains(t, out, "Year 1 is invalid. Please enter a 4-digit year!")
		assert.Contains(t, out, "Invalid input. Please enter a valid 4-digit year or leave blank!")
		assert.Contains(t, out, "----- Total of 2 movies -----")
		assert.Contains(t, out, "'The Shawshank Redemption'")
		assert.Contains(t, out, "'Pulp Fiction'")
		assert.NotContains(t, out, "'The Godfather'")
	})

	t.Run("nothing matches", func(t *testing.T) {
		out, _ := run(t, newManager(t, seed()), "10", "9.5", "", "", "", "0")
		assert.Contains(t, out, "No movies found!")
	})
}

func TestShell_ErrorsDoNotEndTheSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorage(ctrl)
	store.EXPECT().ListMovies(gomock.Any()).Return(collection.Collection{}, errors.New("disk on fire")).Times(2)

	out, _ := run(t, manager.New(store), "1", "", "5", "", "0")
	assert.Equal(t, 2, strings.Count(out, "Error: disk on fire"))
	assert.Contains(t, out, "Bye Bye!")
}

func TestShell_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorage(ctrl)
	store.EXPECT().ListMovies(gomock.Any()).Return(collection.Collection{}, context.Canceled)

	var out bytes.Buffer
	s := New(manager.New(store), strings.NewReader("1\n\n0\n"), &out)
	err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateExited, s.State())
}
