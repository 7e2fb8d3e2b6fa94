package provider

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
)

// DefaultAnthropicBaseURL mirrors digitallysavvy-go-ai's
// pkg/providers/anthropic.DefaultBaseURL.
const DefaultAnthropicBaseURL = "https://api.anthropic.com"

const defaultAnthropicVersion = "2023-06-01"

// Anthropic implements Provider against the Messages API's streaming
// mode, grounded on digitallysavvy-go-ai's pkg/providers/anthropic
// request shape (model, messages, stream: true) and header set
// (x-api-key, anthropic-version).
type Anthropic struct {
	cfg Config
}

func NewAnthropic(cfg Config) *Anthropic {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultAnthropicBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = "claude-3-5-haiku-latest"
	}
	return &Anthropic{cfg: cfg}
}

func (a *Anthropic) Name() string { return "anthropic" }

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Stream    bool               `json:"stream"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (a *Anthropic) BuildRequest(prompt string) (*http.Request, error) {
	body, err := sonic.Marshal(anthropicRequest{
		Model:     a.cfg.Model,
		MaxTokens: 1024,
		Stream:    true,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return nil, fmt.Errorf("ai/provider: encode anthropic request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, a.cfg.BaseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("content-type", "application/json")
	req.Header.Set("x-api-key", a.cfg.APIKey)
	req.Header.Set("anthropic-version", defaultAnthropicVersion)
	req.Header.Set("accept", "text/event-stream")
	return req, nil
}

// anthropicEvent covers the two streaming event shapes this advisor
// cares about: incremental text deltas and the final message-stop
// marker. Other event types (ping, content_block_start, ...) parse to
// a zero value and are treated as a no-op delta.
type anthropicEvent struct {
	Type  string `json:"type"`
	Delta struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
}

func (a *Anthropic) ParseData(data string) (string, bool, error) {
	if data == "[DONE]" {
		return "", true, nil
	}
	var ev anthropicEvent
	if err := sonic.UnmarshalString(data, &ev); err != nil {
		return "", false, fmt.Errorf("ai/provider: decode anthropic event: %w", err)
	}
	if ev.Type == "message_stop" {
		return "", true, nil
	}
	if ev.Type == "content_block_delta" && ev.Delta.Type == "text_delta" {
		return ev.Delta.Text, false, nil
	}
	return "", false, nil
}
