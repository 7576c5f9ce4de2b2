// internal/gateways/currency/client.go
package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"rulecraft-chat/internal/common/config"
	apierrors "rulecraft-chat/internal/common/errors"
	"rulecraft-chat/internal/common/httpclient"
	"rulecraft-chat/internal/common/logger"
	"rulecraft-chat/internal/common/metrics"
)

const service = "currency"

// Client converts amounts between currencies via exchangerate.host.
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

// Convert returns amount expressed in the target currency.
func (c *Client) Convert(ctx context.Context, amount float64, from, to string) (result float64, err error) {
	start := time.Now()
	defer func() { metrics.ObserveGateway(service, start, err) }()

	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return 0, apierrors.NewGatewayError(service, err)
	}
	params := url.Values{}
	params.Add("from", from)
	params.Add("to", to)
	params.Add("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return 0, apierrors.NewGatewayError(service, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, apierrors.NewGatewayError(service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, apierrors.NewGatewayError(service, fmt.Errorf("currency API returned %d", resp.StatusCode))
	}

	var payload struct {
		Result *float64 `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, apierrors.NewGatewayError(service, err)
	}

	if payload.Result == nil {
		return 0, fmt.Errorf("conversion %s to %s: %w", from, to, apierrors.ErrNotFound)
	}

	return *payload.Result, nil
}
