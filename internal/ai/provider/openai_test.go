package provider

import "testing"

func TestOpenAICompatibleBuildRequestShape(t *testing.T) {
	p := NewOpenAICompatible(Config{APIKey: "sk-test"})
	req, err := p.BuildRequest("explain this query")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Header.Get("authorization") != "Bearer sk-test" {
		t.Fatalf("got authorization %q", req.Header.Get("authorization"))
	}
	if req.URL.String() != DefaultOpenAIBaseURL+"/chat/completions" {
		t.Fatalf("got url %q", req.URL.String())
	}
}

func TestOpenAICompatibleParseDataDelta(t *testing.T) {
	p := NewOpenAICompatible(Config{})
	delta, done, err := p.ParseData(`{"choices":[{"delta":{"content":"hi"},"finish_reason":null}]}`)
	if err != nil || done || delta != "hi" {
		t.Fatalf("got (%q, %v, %v)", delta, done, err)
	}
}

func TestOpenAICompatibleParseDataFinish(t *testing.T) {
	p := NewOpenAICompatible(Config{})
	delta, done, err := p.ParseData(`{"choices":[{"delta":{},"finish_reason":"stop"}]}`)
	if err != nil || !done || delta != "" {
		t.Fatalf("got (%q, %v, %v)", delta, done, err)
	}
}

func TestOpenAICompatibleParseDataDoneMarker(t *testing.T) {
	p := NewOpenAICompatible(Config{})
	_, done, err := p.ParseData("[DONE]")
	if err != nil || !done {
		t.Fatalf("got done=%v err=%v", done, err)
	}
}

func TestOpenAICompatibleBaseURLOverride(t *testing.T) {
	p := NewOpenAICompatible(Config{BaseURL: "https://gateway.example.com/v1"})
	req, err := p.BuildRequest("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.URL.String() != "https://gateway.example.com/v1/chat/completions" {
		t.Fatalf("got url %q", req.URL.String())
	}
}
