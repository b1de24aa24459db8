package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/kasuboski/moviedb/pkg/collection"
	mio "github.com/kasuboski/moviedb/pkg/io"
	"github.com/kasuboski/moviedb/pkg/storage/file"
	"github.com/oapi-codegen/nullable"
)

const indent = "    "

// record is the value stored under each title key.
type record struct {
	Rating float64                   `json:"rating"`
	Year   int                       `json:"year"`
	Poster nullable.Nullable[string] `json:"poster"`
}

// Codec encodes a collection as a JSON object keyed by title. Key order in
// the document follows collection order.
type Codec struct{}

var _ file.Codec = Codec{}

// New creates a JSON backed store at path.
func New(ctx context.Context, path string, fio mio.FileIO) (*file.Store, error) {
	return file.New(ctx, path, Codec{}, fio)
}

func (Codec) Name() string {
	return "json"
}

func (Codec) Empty() []byte {
	return []byte("{}")
}

func (Codec) Encode(c collection.Collection) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range c.Movies() {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(m.Title)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(record{
			Rating: m.Rating,
			Year:   m.Year,
			Poster: collection.NewPoster(m.PosterURL()),
		})
		if err != nil {
			return nil, fmt.Errorf("movie %q: %w", m.Title, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (Codec) Decode(b []byte) (collection.Collection, error) {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return collection.Collection{}, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return collection.Collection{}, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	c := collection.New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return collection.Collection{}, err
		}
		title, ok := tok.(string)
		if !ok {
			return collection.Collection{}, fmt.Errorf("expected a title key, got %v", tok)
		}

		var r record
		if err := dec.Decode(&r); err != nil {
			return collection.Collection{}, fmt.Errorf("movie %q: %w", title, err)
		}

		m := collection.Movie{Title: title, Rating: r.Rating, Year: r.Year, Poster: r.Poster}
		c.Set(m.Normalized())
	}

	if _, err := dec.Token(); err != nil {
		return collection.Collection{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return collection.Collection{}, errors.New("unexpected data after the JSON object")
	}

	return c, nil
}
