// internal/gateways/dictionary/client.go
package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"rulecraft-chat/internal/common/config"
	apierrors "rulecraft-chat/internal/common/errors"
	"rulecraft-chat/internal/common/httpclient"
	"rulecraft-chat/internal/common/logger"
	"rulecraft-chat/internal/common/metrics"
)

const service = "dictionary"

// Client looks up English definitions on dictionaryapi.dev.
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

// Define returns the first definition of the first meaning for word.
func (c *Client) Define(ctx context.Context, word string) (definition string, err error) {
	start := time.Now()
	defer func() { metrics.ObserveGateway(service, start, err) }()

	endpoint := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(word))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", apierrors.NewGatewayError(service, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apierrors.NewGatewayError(service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apierrors.NewGatewayError(service, err)
	}

	// A successful lookup is a JSON array; a miss is a JSON object
	var entries []struct {
		Meanings []struct {
			Definitions []struct {
				Definition string `json:"definition"`
			} `json:"definitions"`
		} `json:"meanings"`
	}
	if err := json.Unmarshal(body, &entries); err != nil {
		return "", fmt.Errorf("word %q: %w", word, apierrors.ErrNotFound)
	}

	if len(entries) == 0 || len(entries[0].Meanings) == 0 || len(entries[0].Meanings[0].Definitions) == 0 {
		return "", fmt.Errorf("word %q: %w", word, apierrors.ErrNotFound)
	}

	return entries[0].Meanings[0].Definitions[0].Definition, nil
}
