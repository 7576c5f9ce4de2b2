// internal/gateways/translate/client.go
package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rulecraft-chat/internal/common/config"
	apierrors "rulecraft-chat/internal/common/errors"
	"rulecraft-chat/internal/common/httpclient"
	"rulecraft-chat/internal/common/logger"
	"rulecraft-chat/internal/common/metrics"
)

const service = "translate"

// Client translates English text via LibreTranslate.
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

// Translate converts text from English into the target language. The target
// is the language name or code as the user typed it.
func (c *Client) Translate(ctx context.Context, text, target string) (translated string, err error) {
	start := time.Now()
	defer func() { metrics.ObserveGateway(service, start, err) }()

	form := url.Values{}
	form.Add("q", text)
	form.Add("source", "en")
	form.Add("target", strings.ToLower(target))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", apierrors.NewGatewayError(service, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apierrors.NewGatewayError(service, err)
	}
	defer resp.Body.Close()

	var payload struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", apierrors.NewGatewayError(service, err)
	}

	if payload.TranslatedText == "" {
		return "", apierrors.ErrNotFound
	}

	return payload.TranslatedText, nil
}
