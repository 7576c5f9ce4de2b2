package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rulecraft-chat/internal/common/logger"
)

// echoResponder replies with a fixed transform so tests can see exactly
// what the transport passed through.
type echoResponder struct {
	lastMessage string
}

func (e *echoResponder) Respond(_ context.Context, message string) string {
	e.lastMessage = message
	if strings.TrimSpace(message) == "" {
		return "Please type something so I can help."
	}
	return "echo: " + message
}

func newTestServer(t *testing.T) (*Server, *echoResponder) {
	t.Helper()
	r := &echoResponder{}
	return New(r, logger.NewTestLogger(t)), r
}

func postChat(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestChat_RoundTrip(t *testing.T) {
	s, r := newTestServer(t)

	w := postChat(t, s, `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "echo: hello", resp.Reply)
	assert.Equal(t, "hello", r.lastMessage)
}

func TestChat_MissingMessageField(t *testing.T) {
	s, _ := newTestServer(t)

	// A JSON body without "message" binds to the empty string and gets
	// the prompt reply, not an error.
	w := postChat(t, s, `{}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Please type something so I can help.", resp.Reply)
}

func TestChat_InvalidBody(t *testing.T) {
	s, _ := newTestServer(t)

	w := postChat(t, s, `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid request body"}`, w.Body.String())
}

func TestChat_SetsRequestID(t *testing.T) {
	s, _ := newTestServer(t)

	w := postChat(t, s, `{"message":"hi"}`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.NotEmpty(t, body["uptime"])
}

func TestIndex_ServesChatPage(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "/chat")
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	// Generate at least one sample first.
	postChat(t, s, `{"message":"hi"}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_request_duration_seconds")

	// The status label carries the numeric code, not the reason phrase.
	assert.Contains(t, w.Body.String(), `status="200"`)
	assert.NotContains(t, w.Body.String(), `status="OK"`)
}
