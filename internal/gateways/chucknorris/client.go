// internal/gateways/chucknorris/client.go
package chucknorris

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"rulecraft-chat/internal/common/config"
	apierrors "rulecraft-chat/internal/common/errors"
	"rulecraft-chat/internal/common/httpclient"
	"rulecraft-chat/internal/common/logger"
	"rulecraft-chat/internal/common/metrics"
)

const service = "chucknorris"

// Client fetches random jokes from api.chucknorris.io.
type Client struct {
	baseURL string
	http    *httpclient.Client
	logger  logger.Logger
}

func NewClient(cfg config.EndpointConfig, hc *httpclient.Client, log logger.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    hc,
		logger:  log.With(map[string]interface{}{"gateway": service}),
	}
}

// Random returns one random joke.
func (c *Client) Random(ctx context.Context) (joke string, err error) {
	start := time.Now()
	defer func() { metrics.ObserveGateway(service, start, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return "", apierrors.NewGatewayError(service, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apierrors.NewGatewayError(service, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", apierrors.NewGatewayError(service, err)
	}

	if payload.Value == "" {
		return "", apierrors.ErrNotFound
	}

	return payload.Value, nil
}
