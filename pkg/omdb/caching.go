package omdb

import (
	"context"
	"time"

	"golang.org/x/text/cases"

	"github.com/kasuboski/moviedb/pkg/cache"
	"github.com/kasuboski/moviedb/pkg/logger"
)

// CachingClient memoizes successful lookups of another Fetcher
type CachingClient struct {
	next    Fetcher
	results *cache.Cache[string, Result]
}

// NewCachingClient wraps next. Results are kept for ttl, or for the life of the client when ttl is zero.
func NewCachingClient(next Fetcher, ttl time.Duration, opts ...cache.Option) *CachingClient {
	opts = append([]cache.Option{cache.WithTTL(ttl)}, opts...)
	return &CachingClient{
		next:    next,
		results: cache.New[string, Result](opts...),
	}
}

func (c *CachingClient) Fetch(ctx context.Context, title string) (*Result, error) {
	key := cases.Fold().String(title)
	if r, ok := c.results.Get(key); ok {
		logger.FromCtx(ctx).Debugw("omdb cache hit", "title", title)
		return &r, nil
	}

	r, err := c.next.Fetch(ctx, title)
	if err != nil {
		return nil, err
	}

	c.results.Set(key, *r)
	return r, nil
}
