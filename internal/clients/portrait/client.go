// Package portrait requests character portraits from an OpenAI-compatible
// image generation endpoint
package portrait

//go:generate mockgen -destination=mock/mock_client.go -package=portraitmock github.com/KirkDiggler/rpg-sheet/internal/clients/portrait Client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "dall-e-3"
	defaultSize    = "1024x1024"
	defaultTimeout = 60 * time.Second
	errorBodyLimit = 4096
)

// GenerateInput contains the image prompt
type GenerateInput struct {
	Prompt string
}

// GenerateOutput contains the generated image location
type GenerateOutput struct {
	URL string
}

// Client generates portraits
type Client interface {
	// Generate returns errors.Unavailable when the service is not configured
	// or the request fails
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// Config configures the image endpoint
type Config struct {
	BaseURL    string
	APIKey     string
	Model      string
	Size       string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type client struct {
	endpoint   string
	apiKey     string
	model      string
	size       string
	timeout    time.Duration
	httpClient *http.Client
}

// New creates a portrait client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}

	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}

	c := &client{
		endpoint:   base + "/images/generations",
		apiKey:     strings.TrimSpace(cfg.APIKey),
		model:      cfg.Model,
		size:       cfg.Size,
		timeout:    cfg.Timeout,
		httpClient: cfg.HTTPClient,
	}
	if c.model == "" {
		c.model = defaultModel
	}
	if c.size == "" {
		c.size = defaultSize
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}

	return c, nil
}

func (c *client) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil || strings.TrimSpace(input.Prompt) == "" {
		return nil, errors.InvalidArgument("prompt is required")
	}
	if c.apiKey == "" {
		return nil, errors.Unavailable("portrait generation is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url, err := c.request(ctx, input.Prompt)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "portrait generation failed")
	}

	return &GenerateOutput{URL: url}, nil
}

func (c *client) request(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(map[string]any{
		"model":  c.model,
		"prompt": prompt,
		"n":      1,
		"size":   c.size,
	})
	if err != nil {
		return "", fmt.Errorf("marshal image request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build image request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read image response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		if len(payload) > errorBodyLimit {
			payload = payload[:errorBodyLimit]
		}
		return "", fmt.Errorf("image request status %d: %s", res.StatusCode, strings.TrimSpace(string(payload)))
	}

	url := strings.TrimSpace(gjson.GetBytes(payload, "data.0.url").String())
	if url == "" {
		return "", fmt.Errorf("image response had no url")
	}
	return url, nil
}
