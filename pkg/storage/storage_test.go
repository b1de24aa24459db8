package storage

import (
	"errors"
	"testing"

	"github.com/kasuboski/moviedb/pkg/collection"
	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		format  string
		path    string
		want    Format
		wantErr bool
	}{
		{format: "", path: "movies.json", want: FormatJSON},
		{format: "", path: "movies.CSV", want: FormatCSV},
		{format: "", path: "movies.db", want: FormatSQLite},
		{format: "", path: "movies", want: FormatJSON},
		{format: "CSV", path: "movies.json", want: FormatCSV},
		{format: " sqlite ", path: "x", want: FormatSQLite},
		{format: "yaml", path: "x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.format+"/"+tt.path, func(t *testing.T) {
			got, err := ParseFormat(tt.format, tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrors(t *testing.T) {
	assert.ErrorIs(t, NotFound("Alien"), ErrNotFound)
	assert.ErrorContains(t, NotFound("Alien"), `movie "Alien"`)

	cause := errors.New("unexpected EOF")
	err := Corrupt("movies.json", cause)
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.ErrorIs(t, err, cause)
}

func TestCheckInvariants(t *testing.T) {
	ok := collection.New(collection.NewMovie("A", 2000, 5, ""))
	assert.NoError(t, CheckInvariants(ok))

	bad := collection.New(collection.NewMovie("A", 200, 5, ""))
	assert.ErrorIs(t, CheckInvariants(bad), collection.ErrValidation)
}
