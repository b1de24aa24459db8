package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kasuboski/moviedb/pkg/collection"
	mio "github.com/kasuboski/moviedb/pkg/io"
	"github.com/kasuboski/moviedb/pkg/storage/file"
)

var header = []string{"title", "rating", "year", "poster"}

// Codec encodes a collection as a header-led CSV file with one movie per
// row. An empty poster field is read back as null.
type Codec struct{}

var _ file.Codec = Codec{}

// New creates a CSV backed store at path.
func New(ctx context.Context, path string, fio mio.FileIO) (*file.Store, error) {
	return file.New(ctx, path, Codec{}, fio)
}

func (Codec) Name() string {
	return "csv"
}

func (Codec) Empty() []byte {
	return []byte(strings.Join(header, ",") + "\n")
}

func (Codec) Encode(c collection.Collection) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, m := range c.Movies() {
		row := []string{
			m.Title,
			strconv.FormatFloat(m.Rating, 'f', 1, 64),
			strconv.Itoa(m.Year),
			m.PosterURL(),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("movie %q: %w", m.Title, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Codec) Decode(b []byte) (collection.Collection, error) {
	r := csv.NewReader(bytes.NewReader(b))

	head, err := r.Read()
	if errors.Is(err, io.EOF) {
		return collection.New(), nil
	}
	if err != nil {
		return collection.Collection{}, err
	}

	columns, err := indexColumns(head)
	if err != nil {
		return collection.Collection{}, err
	}

	c := collection.New()
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return collection.Collection{}, err
		}

		m, err := parseRow(row, columns)
		if err != nil {
			line, _ := r.FieldPos(0)
			return collection.Collection{}, fmt.Errorf("line %d: %w", line, err)
		}
		c.Set(m)
	}

	return c, nil
}

func indexColumns(head []string) (map[string]int, error) {
	columns := make(map[string]int, len(head))
	for i, name := range head {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}

	for _, name := range header {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing %q column", name)
		}
	}
	return columns, nil
}

func parseRow(row []string, columns map[string]int) (collection.Movie, error) {
	rating, err := strconv.ParseFloat(strings.TrimSpace(row[columns["rating"]]), 64)
	if err != nil {
		return collection.Movie{}, fmt.Errorf("invalid rating: %w", err)
	}

	year, err := strconv.Atoi(strings.TrimSpace(row[columns["year"]]))
	if err != nil {
		return collection.Movie{}, fmt.Errorf("invalid year: %w", err)
	}

	return collection.NewMovie(row[columns["title"]], year, rating, row[columns["poster"]]), nil
}
