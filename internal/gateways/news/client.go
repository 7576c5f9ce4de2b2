// internal/gateways/news/client.go
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rulecraft-chat/internal/common/cache"
	"rulecraft-chat/internal/common/config"
	apierrors "rulecraft-chat/internal/common/errors"
	"rulecraft-chat/internal/common/httpclient"
	"rulecraft-chat/internal/common/logger"
	"rulecraft-chat/internal/common/metrics"
)

const (
	service  = "news"
	country  = "us"
	pageSize = 3
)

// Client fetches top headlines from NewsAPI.
type Client struct {
	baseURL string
	apiKey  string
	http    *httpclient.Client
	cache   *cache.Cache
	logger  logger.Logger
}

func NewClient(cfg config.ServiceConfig, hc *httpclient.Client, c *cache.Cache, log logger.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    hc,
		cache:   c,
		logger:  log.With(map[string]interface{}{"gateway": service}),
	}
}

// TopHeadlines returns up to three headline titles for a category. An empty
// slice means the call succeeded but nothing was published.
func (c *Client) TopHeadlines(ctx context.Context, category string) (titles []string, err error) {
	start := time.Now()
	defer func() { metrics.ObserveGateway(service, start, err) }()

	if c.apiKey == "" {
		return nil, apierrors.NewMissingCredential(service, "NEWS_API_KEY")
	}

	cacheKey := "news:" + category
	if raw, ok := c.cache.Get(ctx, cacheKey); ok {
		return strings.Split(raw, "\n"), nil
	}

	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, apierrors.NewGatewayError(service, err)
	}
	params := url.Values{}
	params.Add("apiKey", c.apiKey)
	params.Add("category", category)
	params.Add("country", country)
	params.Add("pageSize", fmt.Sprintf("%d", pageSize))
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
		return nil, apierrors.NewGatewayError(service, fmt.Errorf("news API returned %d", resp.StatusCode))
	}

	var payload struct {
		Articles []struct {
			Title string `json:"title"`
		} `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apierrors.NewGatewayError(service, err)
	}

	titles = make([]string, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		titles = append(titles, a.Title)
	}

	if len(titles) > 0 {
		c.cache.Set(ctx, cacheKey, strings.Join(titles, "\n"))
	}

	c.logger.Debug("headlines fetched", map[string]interface{}{
		"category": category,
		"count":    len(titles),
	})

	return titles, nil
}
