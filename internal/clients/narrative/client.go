// Package narrative turns batches of sheet actions into a one-sentence
// story line using an OpenAI-compatible chat completion endpoint
package narrative

//go:generate mockgen -destination=mock/mock_client.go -package=narrativemock github.com/KirkDiggler/rpg-sheet/internal/clients/narrative Client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// FallbackSentence is stored when no narrative could be generated
const FallbackSentence = "The chronicler's quill scratches on, though the words of this moment are lost to the fog."

const (
	defaultBaseURL   = "https://api.openai.com/v1"
	defaultModel     = "gpt-4o-mini"
	defaultTimeout   = 20 * time.Second
	defaultMaxTokens = 60
	errorBodyLimit   = 4096
)

const systemPrompt = "You are the chronicler of a fantasy adventure. " +
	"Describe what the character just did in exactly one short sentence, past tense, third person. " +
	"Do not mention game mechanics, numbers, or the player. Reply with the sentence only."

// Character is the snapshot the narrator sees
type Character struct {
	Name     string
	Gender   string
	Ancestry string
	Class    string
	Level    int
	HP       int
	MaxHP    int
	Equipped []string
}

// GenerateInput contains the character and the actions to narrate
type GenerateInput struct {
	Character Character
	Actions   []string
}

// GenerateOutput holds the story line. Fallback is set when Text is
// FallbackSentence because generation failed.
type GenerateOutput struct {
	Text     string
	Fallback bool
}

// Client generates story lines
type Client interface {
	// Generate never fails on service errors; it returns the fallback
	// sentence instead. It returns an error only when ctx is cancelled, so
	// callers can tell an abandoned request from a failed one.
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// Config configures the chat completion endpoint
type Config struct {
	BaseURL    string
	APIKey     string
	Model      string
	Timeout    time.Duration
	MaxTokens  int
	HTTPClient *http.Client
}

type client struct {
	endpoint   string
	apiKey     string
	model      string
	timeout    time.Duration
	maxTokens  int
	httpClient *http.Client
}

// New creates a narrative client. An empty APIKey is allowed; every call
// then returns the fallback sentence without touching the network.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}

	c := &client{
		endpoint:   strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/") + "/chat/completions",
		apiKey:     strings.TrimSpace(cfg.APIKey),
		model:      strings.TrimSpace(cfg.Model),
		timeout:    cfg.Timeout,
		maxTokens:  cfg.MaxTokens,
		httpClient: cfg.HTTPClient,
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		c.endpoint = defaultBaseURL + "/chat/completions"
	}
	if c.model == "" {
		c.model = defaultModel
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	if c.maxTokens <= 0 {
		c.maxTokens = defaultMaxTokens
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}

	return c, nil
}

func (c *client) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil || len(input.Actions) == 0 {
		return nil, errors.InvalidArgument("at least one action is required")
	}

	if c.apiKey == "" {
		slog.DebugContext(ctx, "narrative generation not configured, using fallback")
		return fallback(), nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.complete(reqCtx, BuildUserPrompt(input))
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "narrative request cancelled")
		}
		slog.WarnContext(ctx, "narrative generation failed, using fallback",
			"character", input.Character.Name,
			"actions", len(input.Actions),
			"error", err)
		return fallback(), nil
	}

	return &GenerateOutput{Text: text}, nil
}

func (c *client) complete(ctx context.Context, userPrompt string) (string, error) {
	body, err := json.Marshal(map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
		"max_tokens": c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		if len(payload) > errorBodyLimit {
			payload = payload[:errorBodyLimit]
		}
		return "", fmt.Errorf("completion request status %d: %s", res.StatusCode, strings.TrimSpace(string(payload)))
	}

	content := gjson.GetBytes(payload, "choices.0.message.content")
	text := strings.TrimSpace(content.String())
	if text == "" {
		return "", fmt.Errorf("completion response had no content")
	}

	return firstLine(text), nil
}

// BuildUserPrompt describes the character and what they did
func BuildUserPrompt(input *GenerateInput) string {
	ch := input.Character

	var b strings.Builder
	fmt.Fprintf(&b, "Character: %s", orDefault(ch.Name, "An unnamed adventurer"))
	if ch.Gender != "" {
		fmt.Fprintf(&b, " (%s)", ch.Gender)
	}
	fmt.Fprintf(&b, ", level %d %s %s.\n", ch.Level, orDefault(ch.Ancestry, "adventurer"), ch.Class)
	fmt.Fprintf(&b, "Hit points: %d of %d.\n", ch.HP, ch.MaxHP)
	if len(ch.Equipped) > 0 {
		fmt.Fprintf(&b, "Equipped: %s.\n", strings.Join(ch.Equipped, ", "))
	}

	if len(input.Actions) == 1 {
		fmt.Fprintf(&b, "What just happened: %s.", strings.TrimSuffix(input.Actions[0], "."))
		return b.String()
	}

	b.WriteString("What just happened, in order:\n")
	for i, action := range input.Actions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, action)
	}
	b.WriteString("Summarize all of it in a single sentence.")
	return b.String()
}

func fallback() *GenerateOutput {
	return &GenerateOutput{Text: FallbackSentence, Fallback: true}
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return strings.Trim(strings.TrimSpace(text), `"`)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
