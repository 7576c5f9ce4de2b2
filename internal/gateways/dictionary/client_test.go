package dictionary

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

func TestDefine_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/serendipity", r.URL.Path)
		w.Write([]byte(`[{"meanings":[{"definitions":[{"definition":"a fortunate accident"},{"definition":"second"}]}]}]`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	def, err := client.Define(context.Background(), "serendipity")
	require.NoError(t, err)
	assert.Equal(t, "a fortunate accident", def)
}

func TestDefine_UnknownWord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The API answers misses with an object, not an array.
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"title":"No Definitions Found"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.Define(context.Background(), "qwertyzzz")
	assert.True(t, apierrors.IsNotFound(err))
}

func TestDefine_EmptyMeanings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"meanings":[]}]`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.Define(context.Background(), "word")
	assert.True(t, apierrors.IsNotFound(err))
}

func TestDefine_EscapesWord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/a%20b", r.URL.EscapedPath())
		w.Write([]byte(`[{"meanings":[{"definitions":[{"definition":"x"}]}]}]`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.Define(context.Background(), "a b")
	require.NoError(t, err)
}
