package backend

import (
	"context"
	"io"

	"github.com/kasuboski/moviedb/config"
	mio "github.com/kasuboski/moviedb/pkg/io"
	"github.com/kasuboski/moviedb/pkg/storage"
	"github.com/kasuboski/moviedb/pkg/storage/csvfile"
	"github.com/kasuboski/moviedb/pkg/storage/jsonfile"
	"github.com/kasuboski/moviedb/pkg/storage/sqlite"
)

// New opens the store selected by cfg. The returned closer releases any
// resources held by the store and is never nil.
func New(ctx context.Context, cfg config.Storage) (storage.Storage, io.Closer, error) {
	format, err := storage.ParseFormat(cfg.Format, cfg.FilePath)
	if err != nil {
		return nil, nil, err
	}

	fio := &mio.LocalFileSystem{}

	switch format {
	case storage.FormatCSV:
		s, err := csvfile.New(ctx, cfg.FilePath, fio)
		return s, nopCloser{}, err
	case storage.FormatSQLite:
		s, err := sqlite.New(ctx, cfg.FilePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		s, err := jsonfile.New(ctx, cfg.FilePath, fio)
		return s, nopCloser{}, err
	}
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}
