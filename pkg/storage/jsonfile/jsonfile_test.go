package jsonfile

import (
	"testing"

	"github.com/kasuboski/moviedb/pkg/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_Encode(t *testing.T) {
	c := collection.New(
		collection.NewMovie("Inception", 2010, 8.8, ""),
		collection.NewMovie("Alien", 1979, 8.5, "https://posters/alien.jpg"),
	)

	b, err := Codec{}.Encode(c)
	require.NoError(t, err)

	want := `{
    "Inception": {
        "rating": 8.8,
        "year": 2010,
        "poster": null
    },
    "Alien": {
        "rating": 8.5,
        "year": 1979,
        "poster": "https://posters/alien.jpg"
    }
}`
	assert.Equal(t, want, string(b))
}

func TestCodec_EncodeEmpty(t *testing.T) {
	b, err := Codec{}.Encode(collection.New())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}

func TestCodec_Decode(t *testing.T) {
	t.Run("keeps document order", func(t *testing.T) {
		c, err := Codec{}.Decode([]byte(`{"Zodiac": {"rating": 7.7, "year": 2007}, "Alien": {"rating": 8.46, "year": 1979, "poster": ""}}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"Zodiac", "Alien"}, c.Titles())

		alien, ok := c.Get("Alien")
		require.True(t, ok)
		assert.Equal(t, 8.5, alien.Rating)
		assert.True(t, alien.Poster.IsNull())

		zodiac, _ := c.Get("Zodiac")
		assert.Equal(t, "", zodiac.PosterURL())
	})

	t.Run("empty object", func(t *testing.T) {
		c, err := Codec{}.Decode([]byte("{}"))
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := Codec{}.Decode([]byte(`["Alien"]`))
		assert.Error(t, err)
	})

	t.Run("bad value", func(t *testing.T) {
		_, err := Codec{}.Decode([]byte(`{"Alien": {"rating": "high"}}`))
		assert.ErrorContains(t, err, `movie "Alien"`)
	})

	t.Run("trailing data", func(t *testing.T) {
		_, err := Codec{}.Decode([]byte(`{} {}`))
		assert.Error(t, err)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := Codec{}.Decode([]byte(`{"Alien": {"rating": 8.5,`))
		assert.Error(t, err)
	})
}
