// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

// Package gemini is a thin client for the Google Generative Language API:
// text via models/{model}:generateContent, images via models/{model}:predict.
// The tenant's own API key is passed per call, never held by the client.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
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
	DefaultBaseURL    = "https://generativelanguage.googleapis.com"
	DefaultTextModel  = "gemini-1.5-flash"
	DefaultImageModel = "imagen-3.0-generate-001"

	defaultTimeout = 60 * time.Second
)

var _ ClientInterface = (*Client)(nil)

type Config struct {
	BaseURL    string
	TextModel  string
	ImageModel string
	Timeout    time.Duration
}

type Client struct {
	client     *http.Client
	baseURL    string
	textModel  string
	imageModel string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.TextModel == "" {
		cfg.TextModel = DefaultTextModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultImageModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		client:     &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type predictRequest struct {
	Instances  []instance `json:"instances"`
	Parameters parameters `json:"parameters"`
}

type instance struct {
	Prompt string `json:"prompt"`
}

type parameters struct {
	SampleCount int    `json:"sampleCount"`
	AspectRatio string `json:"aspectRatio"`
}

type predictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
	} `json:"predictions"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateText sends a single prompt to the text model and returns the first
// candidate's text. An empty candidate list or empty text is an error.
func (c *Client) GenerateText(ctx context.Context, apiKey, prompt string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "gemini.Client.GenerateText")
	defer span.End()

	body := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	var out generateContentResponse
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.textModel)
	if err := c.post(ctx, endpoint, apiKey, body, &out); err != nil {
		return "", err
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("text model returned no candidates")
	}

	text := out.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("text model returned empty text")
	}

	return text, nil
}

// GenerateImage asks the image model for sampleCount samples at the given
// aspect ratio and returns the first prediction's base64 payload.
func (c *Client) GenerateImage(ctx context.Context, apiKey, prompt string, sampleCount int, aspectRatio string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "gemini.Client.GenerateImage")
	defer span.End()

	body := predictRequest{
		Instances:  []instance{{Prompt: prompt}},
		Parameters: parameters{SampleCount: sampleCount, AspectRatio: aspectRatio},
	}

	var out predictResponse
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:predict", c.baseURL, c.imageModel)
	if err := c.post(ctx, endpoint, apiKey, body, &out); err != nil {
		return "", err
	}

	if len(out.Predictions) == 0 {
		return "", fmt.Errorf("image model returned no predictions")
	}

	return out.Predictions[0].BytesBase64Encoded, nil
}

func (c *Client) post(ctx context.Context, endpoint, apiKey string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	// The API authenticates via a key query parameter. The key must never
	// appear in logs or error messages.
	u := endpoint + "?key=" + url.QueryEscape(apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", redactURL(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.setAvailability(0)
		return fmt.Errorf("generative API request failed: %w", redactURL(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.setAvailability(0)
		return fmt.Errorf("failed to read generative API response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.setAvailability(0)
		return fmt.Errorf("generative API returned %d: %s", resp.StatusCode, upstreamMessage(raw))
	}
	c.setAvailability(1)

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode generative API response: %w", err)
	}

	return nil
}

// upstreamMessage extracts the service's own error message so callers can
// surface it. Falls back to the raw body.
func upstreamMessage(raw []byte) string {
	var e errorResponse
	if err := json.Unmarshal(raw, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return strings.TrimSpace(string(raw))
}

// redactURL strips the request URL from url.Error values. The URL carries the
// key query parameter, and these errors end up in client-visible responses.
func redactURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "gemini"}, v); err != nil {
		c.logger.Errorf("failed to record gemini availability: %v", err)
	}
}
