package popup

import "testing"

func TestOpenClosesPreviousOccupant(t *testing.T) {
	c := New()
	historyClosed := false
	c.Register(KindHistory, func() { historyClosed = true })
	c.Register(KindSnippets, func() {})

	c.Open(KindHistory)
	if c.Active() != KindHistory {
		t.Fatalf("got %v", c.Active())
	}

	c.Open(KindSnippets)
	if !historyClosed {
		t.Fatal("expected history's CloseFunc to run when snippets opened")
	}
	if c.Active() != KindSnippets {
		t.Fatalf("got %v", c.Active())
	}
}

func TestOpenSameKindTwiceDoesNotClose(t *testing.T) {
	c := New()
	closed := false
	c.Register(KindHelp, func() { closed = true })
	c.Open(KindHelp)
	c.Open(KindHelp)
	if closed {
		t.Fatal("expected no close when reopening the same popup")
	}
}

func TestCloseOnlyClearsIfActive(t *testing.T) {
	c := New()
	c.Open(KindAI)
	c.Close(KindHistory)
	if c.Active() != KindAI {
		t.Fatalf("got %v, expected AI to remain active", c.Active())
	}
	c.Close(KindAI)
	if c.Active() != None {
		t.Fatalf("got %v", c.Active())
	}
}

func TestCloseAllInvokesCloser(t *testing.T) {
	c := New()
	closed := false
	c.Register(KindAutocomplete, func() { closed = true })
	c.Open(KindAutocomplete)
	c.CloseAll()
	if !closed || c.AnyOpen() {
		t.Fatalf("closed=%v anyOpen=%v", closed, c.AnyOpen())
	}
}

func TestIsOpen(t *testing.T) {
	c := New()
	c.Open(KindSnippets)
	if !c.IsOpen(KindSnippets) || c.IsOpen(KindHistory) {
		t.Fatal("IsOpen mismatch")
	}
}
