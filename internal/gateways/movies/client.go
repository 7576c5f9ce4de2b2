// internal/gateways/movies/client.go
package movies

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

const service = "movies"

// Movie holds the OMDb fields shown to the user.
type Movie struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	Actors string `json:"Actors"`
	Genre  string `json:"Genre"`
	Plot   string `json:"Plot"`
}

// Client looks up titles on OMDb.
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

// Lookup fetches details for a title.
func (c *Client) Lookup(ctx context.Context, title string) (m *Movie, err error) {
	start := time.Now()
	defer func() { metrics.ObserveGateway(service, start, err) }()

	if c.apiKey == "" {
		return nil, apierrors.NewMissingCredential(service, "OMDB_API_KEY")
	}

	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, apierrors.NewGatewayError(service, err)
	}
	params := url.Values{}
	params.Add("t", title)
	params.Add("apikey", c.apiKey)
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

	var payload struct {
		Movie
		Response string `json:"Response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apierrors.NewGatewayError(service, err)
	}

	// OMDb reports misses with 200 and Response == "False"
	if payload.Response != "True" {
		return nil, fmt.Errorf("title %q: %w", title, apierrors.ErrNotFound)
	}

	return &payload.Movie, nil
}
