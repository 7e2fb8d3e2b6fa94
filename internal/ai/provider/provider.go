// Package provider adapts AI backends behind one small interface the
// ai.Worker drives, grounded on digitallysavvy-go-ai's provider split
// (config -> http.Request, SSE event -> text delta) but reduced to just
// the two calls a single-turn streaming advisor needs.
package provider

import "net/http"

// Provider builds the outbound streaming request for a prompt and
// extracts the text delta out of one parsed SSE event's data payload.
type Provider interface {
	// Name identifies the provider for error messages and config.
	Name() string
	// BuildRequest constructs the HTTP request for a single-turn
	// streaming completion call.
	BuildRequest(prompt string) (*http.Request, error)
	// ParseData extracts the incremental text (possibly empty) from one
	// SSE event's data field, and reports done=true once the provider's
	// own termination marker is seen.
	ParseData(data string) (delta string, done bool, err error)
}

// Config is the shared subset of provider configuration read from
// internal/config: API key, model, and optional base-URL override (for
// self-hosted or gateway-fronted OpenAI-compatible endpoints).
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}
