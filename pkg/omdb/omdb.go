package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/oapi-codegen/nullable"
	"github.com/oapi-codegen/runtime"

	mhttp "github.com/kasuboski/moviedb/pkg/http"
	"github.com/kasuboski/moviedb/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_omdb.go github.com/kasuboski/moviedb/pkg/omdb Fetcher

const (
	DefaultURL     = "http://www.omdbapi.com"
	DefaultTimeout = 5 * time.Second

	notAvailable = "N/A"
)

var (
	// ErrNotFound is returned when the API answers but knows no movie by that title
	ErrNotFound = errors.New("movie not found")
	// ErrUnavailable is returned when the API cannot be reached or answers unexpectedly
	ErrUnavailable = errors.New("metadata service unavailable")
)

// Result is the metadata used to create a movie entry
type Result struct {
	Title  string
	Year   int
	Rating float64
	Poster nullable.Nullable[string]
}

// Fetcher looks up movie metadata by title
type Fetcher interface {
	Fetch(ctx context.Context, title string) (*Result, error)
}

// titleResponse is the subset of the OMDb title lookup payload we use
type titleResponse struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	ImdbRating string `json:"imdbRating"`
	Poster     string `json:"Poster"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

type Client struct {
	server  *url.URL
	apiKey  string
	client  mhttp.HTTPClient
	timeout time.Duration
}

// ClientOption allows setting custom parameters during construction
type ClientOption func(*Client)

// WithHTTPClient overrides the client used to send requests
func WithHTTPClient(doer mhttp.HTTPClient) ClientOption {
	return func(c *Client) {
		c.client = doer
	}
}

// WithTimeout bounds every lookup. A zero timeout keeps the default.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// New creates a client for the OMDb API served at server
func New(server, apiKey string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(server)
	if err != nil {
		return nil, fmt.Errorf("invalid omdb url %q: %w", server, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid omdb url %q: scheme and host are required", server)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	c := &Client{
		server:  u,
		apiKey:  apiKey,
		client:  mhttp.NewRateLimitedHTTPClient(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Fetch looks up a single title
func (c *Client) Fetch(ctx context.Context, title string) (*Result, error) {
	log := logger.FromCtx(ctx)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.newTitleRequest(ctx, title)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		log.Debugw("omdb request failed", "title", title, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Debugw("omdb returned unexpected status", "title", title, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var tr titleResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if tr.Response != "True" {
		log.Debugw("omdb has no match", "title", title, "reason", tr.Error)
		return nil, fmt.Errorf("%w: %q", ErrNotFound, title)
	}

	return toResult(tr)
}

func (c *Client) newTitleRequest(ctx context.Context, title string) (*http.Request, error) {
	queryURL := *c.server
	queryValues := queryURL.Query()

	for _, p := range []struct {
		name  string
		value string
	}{
		{"apikey", c.apiKey},
		{"t", title},
	} {
		queryFrag, err := runtime.StyleParamWithLocation("form", true, p.name, runtime.ParamLocationQuery, p.value)
		if err != nil {
			return nil, err
		}
		parsed, err := url.ParseQuery(queryFrag)
		if err != nil {
			return nil, err
		}
		for k, v := range parsed {
			for _, v2 := range v {
				queryValues.Add(k, v2)
			}
		}
	}
	queryURL.RawQuery = queryValues.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("accept", "application/json")
	return req, nil
}

func toResult(tr titleResponse) (*Result, error) {
	year, err := parseYear(tr.Year)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	rating := 0.0
	if tr.ImdbRating != notAvailable && tr.ImdbRating != "" {
		rating, err = strconv.ParseFloat(tr.ImdbRating, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid rating %q", ErrUnavailable, tr.ImdbRating)
		}
	}

	poster := nullable.NewNullNullable[string]()
	if tr.Poster != notAvailable && tr.Poster != "" {
		poster = nullable.NewNullableWithValue(tr.Poster)
	}

	return &Result{
		Title:  tr.Title,
		Year:   year,
		Rating: rating,
		Poster: poster,
	}, nil
}

// parseYear reads the leading four digits so ranges like "2010–2012" resolve to their start
func parseYear(s string) (int, error) {
	if len(s) < 4 {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	for _, r := range s[:4] {
		if !unicode.IsDigit(r) {
			return 0, fmt.Errorf("invalid year %q", s)
		}
	}
	return strconv.Atoi(s[:4])
}
