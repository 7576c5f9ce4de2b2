// internal/gateways/funfeeds/client.go
package funfeeds

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

const (
	catFactService  = "cat_facts"
	dogImageService = "dog_images"
)

// Client bundles the two trivia feeds: meowfacts and dog.ceo.
type Client struct {
	catFactsURL  string
	dogImagesURL string
	http         *httpclient.Client
	logger       logger.Logger
}

func NewClient(catFacts, dogImages config.EndpointConfig, hc *httpclient.Client, log logger.Logger) *Client {
	return &Client{
		catFactsURL:  catFacts.BaseURL,
		dogImagesURL: dogImages.BaseURL,
		http:         hc,
		logger:       log.With(map[string]interface{}{"gateway": "funfeeds"}),
	}
}

// CatFact returns one random cat fact.
func (c *Client) CatFact(ctx context.Context) (fact string, err error) {
	start := time.Now()
	defer func() { metrics.ObserveGateway(catFactService, start, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.catFactsURL, nil)
	if err != nil {
		return "", apierrors.NewGatewayError(catFactService, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apierrors.NewGatewayError(catFactService, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Data []string `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", apierrors.NewGatewayError(catFactService, err)
	}

	if len(payload.Data) == 0 || payload.Data[0] == "" {
		return "", apierrors.ErrNotFound
	}

	return payload.Data[0], nil
}

// DogImage returns the URL of one random dog picture.
func (c *Client) DogImage(ctx context.Context) (imageURL string, err error) {
	start := time.Now()
	defer func() { metrics.ObserveGateway(dogImageService, start, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.dogImagesURL, nil)
	if err != nil {
		return "", apierrors.NewGatewayError(dogImageService, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apierrors.NewGatewayError(dogImageService, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", apierrors.NewGatewayError(dogImageService, err)
	}

	if payload.Message == "" {
		return "", apierrors.ErrNotFound
	}

	return payload.Message, nil
}
