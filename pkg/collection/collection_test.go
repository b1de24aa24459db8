package collection

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection(t *testing.T) {
	t.Run("insertion order", func(t *testing.T) {
		c := New(NewMovie("b", 2000, 1, ""), NewMovie("a", 2000, 2, ""), NewMovie("c", 2000, 3, ""))
		assert.Equal(t, []string{"b", "a", "c"}, c.Titles())
		assert.Equal(t, 3, c.Len())
	})

	t.Run("overwrite keeps position", func(t *testing.T) {
		c := New(NewMovie("a", 2000, 1, ""), NewMovie("b", 2000, 2, ""))
		c.Set(NewMovie("a", 2001, 5, ""))

		assert.Equal(t, []string{"a", "b"}, c.Titles())
		m, ok := c.Get("a")
		require.True(t, ok)
		assert.Equal(t, 2001, m.Year)
		assert.Equal(t, 5.0, m.Rating)
	})

	t.Run("delete", func(t *testing.T) {
		c := New(NewMovie("a", 2000, 1, ""), NewMovie("b", 2000, 2, ""), NewMovie("c", 2000, 3, ""))
		assert.True(t, c.Delete("b"))
		assert.False(t, c.Delete("b"))
		assert.Equal(t, []string{"a", "c"}, c.Titles())
		assert.False(t, c.Has("b"))
	})

	t.Run("delete does not disturb clones", func(t *testing.T) {
		c := New(NewMovie("a", 2000, 1, ""), NewMovie("b", 2000, 2, ""))
		clone := c.Clone()
		c.Delete("a")

		assert.Equal(t, []string{"a", "b"}, clone.Titles())
		assert.Equal(t, []string{"b"}, c.Titles())
	})

	t.Run("zero value is usable", func(t *testing.T) {
		var c Collection
		assert.Equal(t, 0, c.Len())
		assert.Empty(t, c.Movies())
		c.Set(NewMovie("a", 2000, 1, ""))
		assert.True(t, c.Has("a"))
	})
}

func TestMovie(t *testing.T) {
	t.Run("rating rounded on construction", func(t *testing.T) {
		assert.Equal(t, 8.8, NewMovie("X", 2020, 8.76, "u").Rating)
		assert.Equal(t, 8.8, NewMovie("X", 2020, 8.75, "u").Rating)
		assert.Equal(t, 8.7, NewMovie("X", 2020, 8.74, "u").Rating)
	})

	t.Run("empty poster is null", func(t *testing.T) {
		m := NewMovie("X", 2020, 8, "")
		assert.True(t, m.Poster.IsNull())
		assert.Equal(t, "", m.PosterURL())
	})

	t.Run("normalized collapses unspecified poster", func(t *testing.T) {
		m := Movie{Title: "X", Rating: 7.26, Year: 2020}
		n := m.Normalized()
		assert.True(t, n.Poster.IsNull())
		assert.Equal(t, 7.3, n.Rating)
	})
}

func TestRoundRating(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 8.76, want: 8.8},
		{in: 8.74, want: 8.7},
		{in: 8.25, want: 8.2},
		{in: 8.75, want: 8.8},
		{in: 7.25, want: 7.2},
		{in: 0.15, want: 0.1},
		{in: 0.25, want: 0.2},
		{in: 2.675, want: 2.7},
		{in: 10.04, want: 10},
		{in: 10.05, want: 10.1},
		{in: 9, want: 9},
		{in: -0.04, want: 0},
	}
	for _, tt := range tests {
		t.Run(strconv.FormatFloat(tt.in, 'g', -1, 64), func(t *testing.T) {
			got := RoundRating(tt.in)
			assert.Equal(t, tt.want, got)
			assert.False(t, math.Signbit(got) && got == 0, "negative zero")
		})
	}

	assert.True(t, math.IsNaN(RoundRating(math.NaN())))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		movie   Movie
		wantErr string
	}{
		{name: "valid", movie: NewMovie("Alien", 1979, 8.5, "")},
		{name: "lower bounds", movie: NewMovie("Old", MinYear, MinRating, "")},
		{name: "upper bounds", movie: NewMovie("Far", MaxYear, MaxRating, "")},
		{name: "empty title", movie: NewMovie("  ", 1979, 8.5, ""), wantErr: "title must not be empty"},
		{name: "rating too high", movie: NewMovie("Alien", 1979, 10.1, ""), wantErr: "rating 10.1 must be between 0 and 10"},
		{name: "rating negative", movie: NewMovie("Alien", 1979, -1, ""), wantErr: "rating -1 must be between 0 and 10"},
		{name: "year too small", movie: NewMovie("Alien", 999, 5, ""), wantErr: "year 999 must be between 1000 and 9999"},
		{name: "year too large", movie: NewMovie("Alien", 10000, 5, ""), wantErr: "year 10000 must be between 1000 and 9999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.movie)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateRatingAndYear(t *testing.T) {
	assert.NoError(t, ValidateRating(0))
	assert.NoError(t, ValidateRating(10))
	assert.ErrorIs(t, ValidateRating(10.5), ErrValidation)
	assert.NoError(t, ValidateYear(2024))
	assert.ErrorIs(t, ValidateYear(99), ErrValidation)
}
