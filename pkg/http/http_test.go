package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/kasuboski/moviedb/pkg/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewRateLimitedHTTPClient(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := NewRateLimitedHTTPClient()
		assert.Same(t, http.DefaultClient, c.client)
		assert.Equal(t, DefaultMaxRetries, c.getMaxRetries())
		assert.Equal(t, DefaultBaseBackoff, c.getBackoff())
	})

	t.Run("options", func(t *testing.T) {
		inner := &http.Client{Timeout: time.Second * 5}
		c := NewRateLimitedHTTPClient(
			WithMaxRetries(5),
			WithBaseBackoff(time.Millisecond*100),
			WithHTTPClient(inner),
		)
		assert.Same(t, inner, c.client)
		assert.Equal(t, 5, c.getMaxRetries())
		assert.Equal(t, time.Millisecond*100, c.getBackoff())
	})

	t.Run("at least one attempt", func(t *testing.T) {
		c := NewRateLimitedHTTPClient(WithMaxRetries(0))
		assert.Equal(t, 1, c.getMaxRetries())
	})
}

func tooManyRequests(header http.Header) *http.Response {
	return &http.Response{
		StatusCode: http.StatusTooManyRequests,
		Header:     header,
		Body:       io.NopCloser(bytes.NewBuffer([]byte("429 response"))),
	}
}

func TestRateLimitedHTTPClient_Do(t *testing.T) {
	t.Run("error during request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest("GET", "https://example.com", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Return(nil, errors.New("http error"))
		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp))
		resp, err := client.Do(req)
		assert.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("non 429 response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest("GET", "https://example.com", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Return(&http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBuffer([]byte("non 429 response"))),
		}, nil)

		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp))
		resp, err := client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "non 429 response", string(b))
	})

	t.Run("429 response - max retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest("GET", "https://example.com", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Return(tooManyRequests(nil), nil)
		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp), WithMaxRetries(1))
		resp, err := client.Do(req)
		assert.ErrorContains(t, err, "rate limit exceeded after 1 retries")
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	})

	t.Run("429 response - retry then success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest("GET", "https://example.com", nil)
		require.NoError(t, err)

		gomock.InOrder(
			mhttp.EXPECT().Do(req).Return(tooManyRequests(nil), nil),
			mhttp.EXPECT().Do(req).Return(&http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBuffer(nil)),
			}, nil),
		)
		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp), WithMaxRetries(2), WithBaseBackoff(time.Millisecond))
		resp, err := client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("429 response - context canceled while waiting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		ctx, cancel := context.WithCancel(context.Background())
		req, err := http.NewRequestWithContext(ctx, "GET", "https://example.com", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).DoAndReturn(func(*http.Request) (*http.Response, error) {
			cancel()
			return tooManyRequests(http.Header{"Retry-After": []string{"30"}}), nil
		})
		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp), WithMaxRetries(3))
		resp, err := client.Do(req)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, resp)
	})
}

func TestRateLimitedClient_getRetryAfter(t *testing.T) {
	c := &RateLimitedClient{baseBackoff: time.Second}

	tests := []struct {
		name       string
		retryAfter string
		attempt    int
		want       time.Duration
	}{
		{name: "header in seconds", retryAfter: "1", want: time.Second},
		{name: "header wins over backoff", retryAfter: "4", attempt: 3, want: time.Second * 4},
		{name: "unparseable header", retryAfter: "soon", attempt: 1, want: time.Second * 2},
		{name: "first backoff", want: time.Second},
		{name: "doubles per attempt", attempt: 3, want: time.Second * 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{Header: http.Header{}}
			if tt.retryAfter != "" {
				resp.Header.Set("Retry-After", tt.retryAfter)
			}
			assert.Equal(t, tt.want, c.getRetryAfter(resp, tt.attempt))
		})
	}
}

func TestRateLimitedClient_jitter(t *testing.T) {
	c := &RateLimitedClient{baseBackoff: time.Millisecond * 10}
	for range 20 {
		j := c.jitter()
		assert.GreaterOrEqual(t, j, time.Duration(0))
		assert.Less(t, j, time.Millisecond*10)
	}

	c = &RateLimitedClient{}
	assert.Equal(t, time.Duration(0), c.jitter())
}
