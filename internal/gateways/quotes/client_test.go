package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rulecraft-chat/internal/common/config"
	apierrors "rulecraft-chat/internal/common/errors"
	"rulecraft-chat/internal/common/httpclient"
	"rulecraft-chat/internal/common/logger"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	return NewClient(
		config.EndpointConfig{BaseURL: baseURL},
		httpclient.NewClient(2*time.Second),
		logger.NewTestLogger(t),
	)
}

func TestRandom_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":"Simplicity is the soul of efficiency.","author":"Austin Freeman"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	q, err := client.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Simplicity is the soul of efficiency.", q.Content)
	assert.Equal(t, "Austin Freeman", q.Author)
}

func TestRandom_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":"","author":""}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.Random(context.Background())
	assert.True(t, apierrors.IsNotFound(err))
}

func TestRandom_TransportError(t *testing.T) {
	srv := httptest.NewServer(nil)
	srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.Random(context.Background())
	require.Error(t, err)
	assert.False(t, apierrors.IsNotFound(err))
}
