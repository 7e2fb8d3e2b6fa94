package config

import "testing"

func TestBlankConfigDefaults(t *testing.T) {
	c := NewBlank()
	if c.QueryDebounce().Milliseconds() != 100 {
		t.Fatalf("got %v", c.QueryDebounce())
	}
	if c.AIDebounce().Milliseconds() != 400 {
		t.Fatalf("got %v", c.AIDebounce())
	}
	if c.AIProvider() != "anthropic" {
		t.Fatalf("got %q", c.AIProvider())
	}
	if c.AIWordLimit() != 200 {
		t.Fatalf("got %d", c.AIWordLimit())
	}
	if c.ClipboardBackend() != "osc52" {
		t.Fatalf("got %q", c.ClipboardBackend())
	}
	if c.AutocompleteSampleSize() != 10 {
		t.Fatalf("got %d", c.AutocompleteSampleSize())
	}
	if c.HistoryFile() == "" || c.SnippetsFile() == "" {
		t.Fatal("expected non-empty default file paths")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("JQVIEW_AI_PROVIDER", "openai")
	c := NewBlank()
	if c.AIProvider() != "openai" {
		t.Fatalf("got %q", c.AIProvider())
	}
}

func TestAIConfigDecodesSubMap(t *testing.T) {
	t.Setenv("JQVIEW_AI_API_KEY", "sk-test")
	t.Setenv("JQVIEW_AI_MODEL", "claude-test")
	c := NewBlank()
	aiCfg, err := c.AIConfig()
	if err != nil {
		t.Fatal(err)
	}
	if aiCfg.Provider != "anthropic" || aiCfg.APIKey != "sk-test" || aiCfg.Model != "claude-test" {
		t.Fatalf("got %+v", aiCfg)
	}
	if aiCfg.WordLimit != 200 {
		t.Fatalf("got word limit %d", aiCfg.WordLimit)
	}
}
