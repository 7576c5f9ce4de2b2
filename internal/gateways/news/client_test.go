package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rulecraft-chat/internal/common/cache"
	"rulecraft-chat/internal/common/config"
	apierrors "rulecraft-chat/internal/common/errors"
	"rulecraft-chat/internal/common/httpclient"
	"rulecraft-chat/internal/common/logger"
)

func newTestClient(t *testing.T, baseURL, apiKey string, c *cache.Cache) *Client {
	t.Helper()
	return NewClient(
		config.ServiceConfig{BaseURL: baseURL, APIKey: apiKey},
		httpclient.NewClient(2*time.Second),
		c,
		logger.NewTestLogger(t),
	)
}

func TestTopHeadlines_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "sports", r.URL.Query().Get("category"))
		assert.Equal(t, "us", r.URL.Query().Get("country"))
		assert.Equal(t, "3", r.URL.Query().Get("pageSize"))

		w.Write([]byte(`{"articles":[{"title":"First"},{"title":"Second"},{"title":"Third"}]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, "test-key", nil)

	titles, err := client.TopHeadlines(context.Background(), "sports")
	require.NoError(t, err)
	assert.Equal(t, []string{"First", "Second", "Third"}, titles)
}

func TestTopHeadlines_NoArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"articles":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, "test-key", nil)

	titles, err := client.TopHeadlines(context.Background(), "science")
	require.NoError(t, err)
	assert.Empty(t, titles)
}

func TestTopHeadlines_MissingKeySkipsCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected when the API key is missing")
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, "", nil)

	_, err := client.TopHeadlines(context.Background(), "general")
	assert.True(t, apierrors.IsMissingCredential(err))
}

func TestTopHeadlines_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, "test-key", nil)

	_, err := client.TopHeadlines(context.Background(), "general")
	require.Error(t, err)
	assert.False(t, apierrors.IsMissingCredential(err))
	assert.False(t, apierrors.IsNotFound(err))
}

func TestTopHeadlines_CacheHit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("news:sports").SetVal("Cached A\nCached B")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected on a cache hit")
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, "test-key", cache.NewWithClient(rdb, time.Minute))

	titles, err := client.TopHeadlines(context.Background(), "sports")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cached A", "Cached B"}, titles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopHeadlines_StoresResultInCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("news:health").RedisNil()
	mock.ExpectSet("news:health", "Only headline", time.Minute).SetVal("OK")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"articles":[{"title":"Only headline"}]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, "test-key", cache.NewWithClient(rdb, time.Minute))

	titles, err := client.TopHeadlines(context.Background(), "health")
	require.NoError(t, err)
	assert.Equal(t, []string{"Only headline"}, titles)
	assert.NoError(t, mock.ExpectationsWereMet())
}
