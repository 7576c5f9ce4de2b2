// internal/gateways/weather/client.go
package weather

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

const service = "weather"

// Conditions is the current weather for one city.
type Conditions struct {
	Temp        float64 `json:"temp"`
	Description string  `json:"description"`
}

// Client fetches current conditions from OpenWeatherMap.
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

// Current returns the current conditions for city. Metric units.
func (c *Client) Current(ctx context.Context, city string) (cond *Conditions, err error) {
	start := time.Now()
	defer func() { metrics.ObserveGateway(service, start, err) }()

	if c.apiKey == "" {
		return nil, apierrors.NewMissingCredential(service, "OPENWEATHER_API_KEY")
	}

	cacheKey := "weather:" + city
	if raw, ok := c.cache.Get(ctx, cacheKey); ok {
		var cached Conditions
		if json.Unmarshal([]byte(raw), &cached) == nil {
			return &cached, nil
		}
	}

	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, apierrors.NewGatewayError(service, err)
	}
	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", c.apiKey)
	params.Add("units", "metric")
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
		Main *struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apierrors.NewGatewayError(service, err)
	}

	// The API answers 404 with a JSON body for unknown cities
	if resp.StatusCode != http.StatusOK || payload.Main == nil {
		return nil, fmt.Errorf("city %q: %w", city, apierrors.ErrNotFound)
	}

	result := &Conditions{Temp: payload.Main.Temp}
	if len(payload.Weather) > 0 {
		result.Description = payload.Weather[0].Description
	}

	if encoded, jerr := json.Marshal(result); jerr == nil {
		c.cache.Set(ctx, cacheKey, string(encoded))
	}

	c.logger.Debug("weather fetched", map[string]interface{}{
		"city": city,
		"temp": result.Temp,
	})

	return result, nil
}
