// internal/gateways/recipes/client.go
package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"rulecraft-chat/internal/common/config"
	apierrors "rulecraft-chat/internal/common/errors"
	"rulecraft-chat/internal/common/httpclient"
	"rulecraft-chat/internal/common/logger"
	"rulecraft-chat/internal/common/metrics"
)

const (
	service    = "recipes"
	maxResults = 3
)

// Client searches recipes on Spoonacular.
type Client struct {
	baseURL string
	apiKey  string
	http    *httpclient.Client
	logger  logger.Logger
}

func NewClient(cfg config.ServiceConfig, hc *httpclient.Client, log logger.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    hc,
		logger:  log.With(map[string]interface{}{"gateway": service}),
	}
}

// Search returns up to three recipe titles matching query. An empty slice
// means the search succeeded with no hits.
func (c *Client) Search(ctx context.Context, query string) (titles []string, err error) {
	start := time.Now()
	defer func() { metrics.ObserveGateway(service, start, err) }()

	if c.apiKey == "" {
		return nil, apierrors.NewMissingCredential(service, "SPOONACULAR_API_KEY")
	}

	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, apierrors.NewGatewayError(service, err)
	}
	params := url.Values{}
	params.Add("query", query)
	params.Add("number", fmt.Sprintf("%d", maxResults))
	params.Add("apiKey", c.apiKey)
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, apierrors.NewGatewayError(service, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apierrors.NewGatewayError(service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apierrors.NewGatewayError(service, fmt.Errorf("recipe API returned %d", resp.StatusCode))
	}

	var payload struct {
		Results []struct {
			Title string `json:"title"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apierrors.NewGatewayError(service, err)
	}

	titles = make([]string, 0, len(payload.Results))
	for _, r := range payload.Results {
		titles = append(titles, r.Title)
	}

	return titles, nil
}
