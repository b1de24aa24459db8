package cmd

import (
	"context"
	"io"
	"net/url"

	"github.com/kasuboski/moviedb/config"
	mhttp "github.com/kasuboski/moviedb/pkg/http"
	"github.com/kasuboski/moviedb/pkg/manager"
	"github.com/kasuboski/moviedb/pkg/omdb"
	"github.com/kasuboski/moviedb/pkg/storage/backend"
)

// newManager opens the configured store and, when an api key is set, the metadata lookup
func newManager(ctx context.Context, cfg config.Config) (*manager.MovieManager, io.Closer, error) {
	store, closer, err := backend.New(ctx, cfg.Storage)
	if err != nil {
		return nil, nil, err
	}

	var opts []manager.Option
	if cfg.OMDb.APIKey != "" {
		fetcher, err := newFetcher(cfg.OMDb)
		if err != nil {
			closer.Close()
			return nil, nil, err
		}
		opts = append(opts, manager.WithFetcher(fetcher))
	}

	return manager.New(store, opts...), closer, nil
}

func newFetcher(cfg config.OMDb) (omdb.Fetcher, error) {
	u := url.URL{
		Scheme: cfg.Scheme,
		Host:   cfg.Host,
	}

	httpClient := mhttp.NewRateLimitedHTTPClient(
		mhttp.WithMaxRetries(cfg.MaxRetries),
		mhttp.WithBaseBackoff(cfg.BaseBackoff),
	)

	client, err := omdb.New(u.String(), cfg.APIKey, omdb.WithHTTPClient(httpClient), omdb.WithTimeout(cfg.Timeout))
	if err != nil {
		return nil, err
	}

	if cfg.CacheTTL <= 0 {
		return client, nil
	}
	return omdb.NewCachingClient(client, cfg.CacheTTL), nil
}
