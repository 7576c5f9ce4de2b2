// internal/gateways/wiki/client.go
package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"rulecraft-chat/internal/common/cache"
	"rulecraft-chat/internal/common/config"
	apierrors "rulecraft-chat/internal/common/errors"
	"rulecraft-chat/internal/common/httpclient"
	"rulecraft-chat/internal/common/logger"
	"rulecraft-chat/internal/common/metrics"
)

const service = "wiki"

// Client fetches page summaries from the Wikipedia REST API. It backs the
// fallback path when no keyword rule matched.
type Client struct {
	baseURL string
	http    *httpclient.Client
	cache   *cache.Cache
	logger  logger.Logger
}

func NewClient(cfg config.EndpointConfig, hc *httpclient.Client, c *cache.Cache, log logger.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    hc,
		cache:   c,
		logger:  log.With(map[string]interface{}{"gateway": service}),
	}
}

// Summary returns the plain-text extract for a topic.
func (c *Client) Summary(ctx context.Context, topic string) (extract string, err error) {
	start := time.Now()
	defer func() { metrics.ObserveGateway(service, start, err) }()

	cacheKey := "wiki:" + topic
	if raw, ok := c.cache.Get(ctx, cacheKey); ok {
		return raw, nil
	}

	endpoint := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(topic))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", apierrors.NewGatewayError(service, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apierrors.NewGatewayError(service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("topic %q: %w", topic, apierrors.ErrNotFound)
	}

	var payload struct {
		Extract string `json:"extract"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", apierrors.NewGatewayError(service, err)
	}

	if payload.Extract == "" {
		return "", fmt.Errorf("topic %q: %w", topic, apierrors.ErrNotFound)
	}

	c.cache.Set(ctx, cacheKey, payload.Extract)

	return payload.Extract, nil
}
