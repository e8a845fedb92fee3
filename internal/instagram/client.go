// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

// Package instagram talks the two-step Graph API media protocol: a media
// container is created under the business account, then published. The
// container is the platform-side staging resource; publishing consumes it.
package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lnrlnrleite/social/internal/logging"
	"github.com/lnrlnrleite/social/internal/monitoring"
	"github.com/lnrlnrleite/social/internal/tracing"
)

const (
	DefaultBaseURL = "https://graph.facebook.com/v19.0"

	defaultTimeout = 30 * time.Second
)

var _ ClientInterface = (*Client)(nil)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	client  *http.Client
	baseURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

type idResponse struct {
	ID string `json:"id"`
}

type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// CreateMediaContainer runs Graph step 1 and returns the creation id. An OK
// response without an id is reported as an error; the caller must not reach
// the publish step without a usable handle.
func (c *Client) CreateMediaContainer(ctx context.Context, businessID, accessToken, imageURL, caption string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "instagram.Client.CreateMediaContainer")
	defer span.End()

	params := url.Values{}
	params.Set("image_url", imageURL)
	params.Set("caption", caption)
	params.Set("access_token", accessToken)

	id, err := c.post(ctx, fmt.Sprintf("%s/%s/media", c.baseURL, businessID), params)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("media container response carried no id")
	}

	return id, nil
}

// PublishMediaContainer runs Graph step 2 and returns the platform post id.
func (c *Client) PublishMediaContainer(ctx context.Context, businessID, accessToken, creationID string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "instagram.Client.PublishMediaContainer")
	defer span.End()

	params := url.Values{}
	params.Set("creation_id", creationID)
	params.Set("access_token", accessToken)

	id, err := c.post(ctx, fmt.Sprintf("%s/%s/media_publish", c.baseURL, businessID), params)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("media publish response carried no id")
	}

	return id, nil
}

func (c *Client) post(ctx context.Context, endpoint string, params url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		c.setAvailability(0)
		return "", fmt.Errorf("graph API request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.setAvailability(0)
		return "", fmt.Errorf("failed to read graph API response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.setAvailability(0)
		return "", fmt.Errorf("graph API returned %d: %s", resp.StatusCode, upstreamMessage(raw))
	}
	c.setAvailability(1)

	var out idResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("failed to decode graph API response: %w", err)
	}

	return out.ID, nil
}

func upstreamMessage(raw []byte) string {
	var e graphError
	if err := json.Unmarshal(raw, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return strings.TrimSpace(string(raw))
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "instagram"}, v); err != nil {
		c.logger.Errorf("failed to record instagram availability: %v", err)
	}
}
