package csvfile

import (
	"testing"

	"github.com/kasuboski/moviedb/pkg/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_Encode(t *testing.T) {
	c := collection.New(
		collection.NewMovie("Inception", 2010, 8.8, ""),
		collection.NewMovie("Crouching Tiger, Hidden Dragon", 2000, 7.9, "https://posters/tiger.jpg"),
	)

	b, err := Codec{}.Encode(c)
	require.NoError(t, err)

	want := "title,rating,year,poster\n" +
		"Inception,8.8,2010,\n" +
		"\"Crouching Tiger, Hidden Dragon\",7.9,2000,https://posters/tiger.jpg\n"
	assert.Equal(t, want, string(b))
}

func TestCodec_Decode(t *testing.T) {
	t.Run("round trips", func(t *testing.T) {
		c := collection.New(
			collection.NewMovie("Crouching Tiger, Hidden Dragon", 2000, 7.9, "https://posters/tiger.jpg"),
			collection.NewMovie("Heat", 1995, 8.3, ""),
		)
		b, err := Codec{}.Encode(c)
		require.NoError(t, err)

		got, err := Codec{}.Decode(b)
		require.NoError(t, err)
		assert.Equal(t, c.Movies(), got.Movies())
	})

	t.Run("columns in any order", func(t *testing.T) {
		c, err := Codec{}.Decode([]byte("year,Title,poster,rating\n1979,Alien,,8.46\n"))
		require.NoError(t, err)

		alien, ok := c.Get("Alien")
		require.True(t, ok)
		assert.Equal(t, collection.NewMovie("Alien", 1979, 8.5, ""), alien)
	})

	t.Run("empty file", func(t *testing.T) {
		c, err := Codec{}.Decode(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("header only", func(t *testing.T) {
		c, err := Codec{}.Decode(Codec{}.Empty())
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("missing column", func(t *testing.T) {
		_, err := Codec{}.Decode([]byte("title,rating,year\nAlien,8.5,1979\n"))
		assert.ErrorContains(t, err, `missing "poster" column`)
	})

	t.Run("bad rating", func(t *testing.T) {
		_, err := Codec{}.Decode([]byte("title,rating,year,poster\nAlien,great,1979,\n"))
		assert.ErrorContains(t, err, "line 2: invalid rating")
	})

	t.Run("bad year", func(t *testing.T) {
		_, err := Codec{}.Decode([]byte("title,rating,year,poster\nAlien,8.5,soon,\n"))
		assert.ErrorContains(t, err, "invalid year")
	})
}
