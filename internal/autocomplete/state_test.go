package autocomplete

import "testing"

func suggs(names ...string) []Suggestion {
	out := make([]Suggestion, len(names))
	for i, n := range names {
		out[i] = Suggestion{Label: n}
	}
	return out
}

func TestNewStateNotVisible(t *testing.T) {
	s := New()
	if s.IsVisible() {
		t.Fatal("expected new state to be hidden")
	}
	if len(s.Suggestions()) != 0 {
		t.Fatal("expected no suggestions")
	}
	if s.SelectedIndex() != 0 {
		t.Fatal("expected selected index 0")
	}
	if _, ok := s.Selected(); ok {
		t.Fatal("expected no selection")
	}
}

func TestUpdateSuggestionsMakesVisible(t *testing.T) {
	s := New()
	s.UpdateSuggestions(suggs("a"))
	if !s.IsVisible() {
		t.Fatal("expected visible")
	}
	if len(s.Suggestions()) != 1 {
		t.Fatal("expected 1 suggestion")
	}
}

func TestUpdateSuggestionsEmptyHides(t *testing.T) {
	s := New()
	s.UpdateSuggestions(suggs("a"))
	s.UpdateSuggestions(nil)
	if s.IsVisible() {
		t.Fatal("expected hidden after empty update")
	}
}

func TestHideClearsSelection(t *testing.T) {
	s := New()
	s.UpdateSuggestions(suggs("a"))
	s.Hide()
	if s.IsVisible() {
		t.Fatal("expected hidden")
	}
	if s.SelectedIndex() != 0 {
		t.Fatal("expected selection reset")
	}
}

func TestSelectNextWraps(t *testing.T) {
	s := New()
	s.UpdateSuggestions(suggs("a", "b", "c"))
	s.SelectNext()
	if s.SelectedIndex() != 1 {
		t.Fatalf("got %d", s.SelectedIndex())
	}
	s.SelectNext()
	if s.SelectedIndex() != 2 {
		t.Fatalf("got %d", s.SelectedIndex())
	}
	s.SelectNext()
	if s.SelectedIndex() != 0 {
		t.Fatalf("expected wrap to 0, got %d", s.SelectedIndex())
	}
}

func TestSelectPreviousWraps(t *testing.T) {
	s := New()
	s.UpdateSuggestions(suggs("a", "b", "c"))
	s.SelectPrevious()
	if s.SelectedIndex() != 2 {
		t.Fatalf("expected wrap to 2, got %d", s.SelectedIndex())
	}
}

func TestSelectNextPreviousEmptyNoPanic(t *testing.T) {
	s := New()
	s.SelectNext()
	s.SelectPrevious()
	if s.SelectedIndex() != 0 {
		t.Fatal("expected selected index to stay 0")
	}
}

func TestSelectedReturnsCorrectSuggestion(t *testing.T) {
	s := New()
	s.UpdateSuggestions(suggs("first", "second"))
	sel, ok := s.Selected()
	if !ok || sel.Label != "first" {
		t.Fatalf("got %+v, %v", sel, ok)
	}
	s.SelectNext()
	sel, ok = s.Selected()
	if !ok || sel.Label != "second" {
		t.Fatalf("got %+v, %v", sel, ok)
	}
}

func TestUpdateSuggestionsResetsIndex(t *testing.T) {
	s := New()
	s.UpdateSuggestions(suggs("a", "b"))
	s.SelectNext()
	s.UpdateSuggestions(suggs("new"))
	if s.SelectedIndex() != 0 {
		t.Fatalf("expected reset index, got %d", s.SelectedIndex())
	}
}
