package clipboard

import (
	"strings"
	"testing"
)

func TestMemoryCopyRecordsLast(t *testing.T) {
	m := NewMemory()
	if err := m.Copy(".name"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Last != ".name" {
		t.Fatalf("got %q", m.Last)
	}
	if err := m.Copy(".age"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Log) != 2 || m.Log[0] != ".name" || m.Log[1] != ".age" {
		t.Fatalf("got %+v", m.Log)
	}
}

func TestOSC52CopyWritesSequence(t *testing.T) {
	var buf strings.Builder
	c := NewOSC52(&buf, TermPlain)
	if err := c.Copy("hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b]52") {
		t.Fatalf("expected OSC52 sequence, got %q", buf.String())
	}
}

func TestOSC52CopyTmuxWraps(t *testing.T) {
	var plain, tmux strings.Builder
	NewOSC52(&plain, TermPlain).Copy("hello")
	NewOSC52(&tmux, TermTmux).Copy("hello")
	if plain.String() == tmux.String() {
		t.Fatal("expected tmux wrapping to differ from plain sequence")
	}
}
