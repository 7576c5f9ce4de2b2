// internal/gateways/quotes/client.go
package quotes

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

const service = "quotes"

// Quote is one quotation with attribution.
type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Client fetches random quotations from quotable.io.
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

// Random returns one random quotation.
func (c *Client) Random(ctx context.Context) (q *Quote, err error) {
	start := time.Now()
	defer func() { metrics.ObserveGateway(service, start, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, apierrors.NewGatewayError(service, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apierrors.NewGatewayError(service, err)
	}
	defer resp.Body.Close()

	var payload Quote
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apierrors.NewGatewayError(service, err)
	}

	if payload.Content == "" {
		return nil, apierrors.ErrNotFound
	}

	return &payload, nil
}
