package provider

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
)

// DefaultOpenAIBaseURL is the default endpoint for the generic
// OpenAI-compatible provider (chat completions, SSE streaming).
const DefaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAICompatible targets any backend speaking the OpenAI chat
// completions wire format — OpenAI itself, and the many self-hosted /
// gateway-fronted servers (vLLM, LiteLLM, Ollama's OpenAI shim, ...)
// that mirror it. Kept distinct from Anthropic per SPEC_FULL §6.3.
type OpenAICompatible struct {
	cfg Config
}

func NewOpenAICompatible(cfg Config) *OpenAICompatible {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenAIBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	return &OpenAICompatible{cfg: cfg}
}

func (o *OpenAICompatible) Name() string { return "openai-compatible" }

type openaiRequest struct {
	Model    string          `json:"model"`
	Stream   bool            `json:"stream"`
	Messages []openaiMessage `json:"messages"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (o *OpenAICompatible) BuildRequest(prompt string) (*http.Request, error) {
	body, err := sonic.Marshal(openaiRequest{
		Model:    o.cfg.Model,
		Stream:   true,
		Messages: []openaiMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return nil, fmt.Errorf("ai/provider: encode openai request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, o.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("content-type", "application/json")
	req.Header.Set("authorization", "Bearer "+o.cfg.APIKey)
	req.Header.Set("accept", "text/event-stream")
	return req, nil
}

type openaiEvent struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason *string `json:"finish_reason"`
	} `json:"choices"`
}

func (o *OpenAICompatible) ParseData(data string) (string, bool, error) {
	if data == "[DONE]" {
		return "", true, nil
	}
	var ev openaiEvent
	if err := sonic.UnmarshalString(data, &ev); err != nil {
		return "", false, fmt.Errorf("ai/provider: decode openai event: %w", err)
	}
	if len(ev.Choices) == 0 {
		return "", false, nil
	}
	ch := ev.Choices[0]
	if ch.FinishReason != nil {
		return ch.Delta.Content, true, nil
	}
	return ch.Delta.Content, false, nil
}
