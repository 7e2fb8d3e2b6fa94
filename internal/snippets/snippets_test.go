package snippets

import "testing"

func sample() []Snippet {
	return []Snippet{
		{Name: "Select keys", Query: "keys"},
		{Name: "Flatten arrays", Query: "flatten"},
		{Name: "Select items", Query: ".[]"},
	}
}

func TestNewStateNotVisible(t *testing.T) {
	s := New("")
	if s.IsVisible() {
		t.Fatal("expected not visible")
	}
	if s.IsEditing() {
		t.Fatal("expected browse-only state to never be editing")
	}
}

func TestOpenCloseOpen(t *testing.T) {
	s := New("")
	s.Open()
	if !s.IsVisible() {
		t.Fatal("expected visible")
	}
	s.Close()
	if s.IsVisible() {
		t.Fatal("expected not visible")
	}
	s.Open()
	if !s.IsVisible() {
		t.Fatal("expected visible again")
	}
}

func TestSelectedIndexResetsOnOpen(t *testing.T) {
	s := New("")
	s.SetSnippets(sample())
	s.SelectNext()
	if s.SelectedIndex() != 1 {
		t.Fatalf("got %d", s.SelectedIndex())
	}
	s.Open()
	if s.SelectedIndex() != 0 {
		t.Fatalf("got %d, expected reset on open", s.SelectedIndex())
	}
}

func TestSelectNextStopsAtLastItem(t *testing.T) {
	s := New("")
	s.SetSnippets(sample())
	for i := 0; i < 10; i++ {
		s.SelectNext()
	}
	if s.SelectedIndex() != 2 {
		t.Fatalf("got %d", s.SelectedIndex())
	}
}

func TestSelectPrevStopsAtFirstItem(t *testing.T) {
	s := New("")
	s.SetSnippets(sample())
	for i := 0; i < 10; i++ {
		s.SelectPrev()
	}
	if s.SelectedIndex() != 0 {
		t.Fatalf("got %d", s.SelectedIndex())
	}
}

func TestSelectNextWithEmptyList(t *testing.T) {
	s := New("")
	s.SelectNext()
	if s.SelectedIndex() != 0 {
		t.Fatalf("got %d", s.SelectedIndex())
	}
}

func TestSelectedSnippetReturnsNoneForEmptyList(t *testing.T) {
	s := New("")
	if _, ok := s.SelectedSnippet(); ok {
		t.Fatal("expected no selected snippet")
	}
}

func TestSetSnippetsResetsSelectedIndex(t *testing.T) {
	s := New("")
	s.SetSnippets(sample())
	s.SelectNext()
	s.SetSnippets(sample())
	if s.SelectedIndex() != 0 {
		t.Fatalf("got %d", s.SelectedIndex())
	}
}

func TestFilteredCountReturnsAllWhenNoSearch(t *testing.T) {
	s := New("")
	s.SetSnippets(sample())
	if s.FilteredCount() != 3 {
		t.Fatalf("got %d", s.FilteredCount())
	}
}

func TestSearchFiltersSnippets(t *testing.T) {
	s := New("")
	s.SetSnippets(sample())
	s.SetSearchQuery("select")
	if s.FilteredCount() != 2 {
		t.Fatalf("got %d", s.FilteredCount())
	}
}

func TestSearchNoMatches(t *testing.T) {
	s := New("")
	s.SetSnippets(sample())
	s.SetSearchQuery("xyz123")
	if s.FilteredCount() != 0 {
		t.Fatalf("got %d", s.FilteredCount())
	}
	if _, ok := s.SelectedSnippet(); ok {
		t.Fatal("expected no selected snippet")
	}
}

func TestSearchClearsOnClose(t *testing.T) {
	s := New("")
	s.SetSnippets(sample())
	s.SetSearchQuery("select keys")
	s.Close()
	if s.SearchQuery() != "" {
		t.Fatalf("got %q", s.SearchQuery())
	}
}

func TestSearchResetsSelection(t *testing.T) {
	s := New("")
	s.SetSnippets(sample())
	s.SelectNext()
	s.SelectNext()
	if s.SelectedIndex() != 2 {
		t.Fatalf("got %d", s.SelectedIndex())
	}
	s.SetSearchQuery("select")
	if s.SelectedIndex() != 0 {
		t.Fatalf("got %d", s.SelectedIndex())
	}
}

func TestSelectedSnippetUsesFilteredIndices(t *testing.T) {
	s := New("")
	s.SetSnippets([]Snippet{
		{Name: "Flatten arrays", Query: "flatten"},
		{Name: "Select keys", Query: "keys"},
		{Name: "Select items", Query: ".[]"},
	})
	s.SetSearchQuery("select")
	sel, ok := s.SelectedSnippet()
	if !ok {
		t.Fatal("expected a selected snippet")
	}
	if sel.Name != "Select keys" {
		t.Fatalf("got %q", sel.Name)
	}
}
