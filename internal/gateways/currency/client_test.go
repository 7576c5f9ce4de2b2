package currency

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

func TestConvert_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "USD", r.URL.Query().Get("from"))
		assert.Equal(t, "INR", r.URL.Query().Get("to"))
		assert.Equal(t, "100", r.URL.Query().Get("amount"))

		w.Write([]byte(`{"result":8300.25}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	result, err := client.Convert(context.Background(), 100, "USD", "INR")
	require.NoError(t, err)
	assert.Equal(t, 8300.25, result)
}

func TestConvert_NullResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":null}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.Convert(context.Background(), 5, "XXX", "YYY")
	assert.True(t, apierrors.IsNotFound(err))
}

func TestConvert_ZeroResultIsValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":0}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	result, err := client.Convert(context.Background(), 0, "USD", "INR")
	require.NoError(t, err)
	assert.Equal(t, 0.0, result)
}

func TestConvert_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.Convert(context.Background(), 100, "USD", "INR")
	require.Error(t, err)
	assert.False(t, apierrors.IsNotFound(err))
}
