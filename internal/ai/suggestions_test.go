package ai

import "testing"

func TestParseSuggestionsSingleFixItem(t *testing.T) {
	got := ParseSuggestions("1. [Fix] .users[]\n   Fix the query")
	if len(got) != 1 {
		t.Fatalf("got %+v", got)
	}
	s := got[0]
	if s.Query != ".users[]" || s.Description != "Fix the query" || s.Type != SuggestionFix {
		t.Fatalf("got %+v", s)
	}
}

func TestParseSuggestionsMultipleItems(t *testing.T) {
	text := "1. [Fix] .users[]\n   handles the missing field\n2. [Next] .users[0].name\n   drill into the first user"
	got := ParseSuggestions(text)
	if len(got) != 2 {
		t.Fatalf("got %d items: %+v", len(got), got)
	}
	if got[0].Type != SuggestionFix || got[1].Type != SuggestionNext {
		t.Fatalf("got types %v, %v", got[0].Type, got[1].Type)
	}
	if got[1].Query != ".users[0].name" {
		t.Fatalf("got %q", got[1].Query)
	}
}

func TestParseSuggestionsNoBracketLabelDefaultsInfo(t *testing.T) {
	got := ParseSuggestions("1. .foo\n   plain suggestion")
	if len(got) != 1 || got[0].Type != SuggestionInfo {
		t.Fatalf("got %+v", got)
	}
}

func TestParseSuggestionsMultilineDescriptionJoined(t *testing.T) {
	got := ParseSuggestions("1. [Fix] .a\n   line one\n   line two")
	if len(got) != 1 || got[0].Description != "line one line two" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseSuggestionsEmptyResponse(t *testing.T) {
	if got := ParseSuggestions(""); len(got) != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestParseSuggestionsPlainTextNoItems(t *testing.T) {
	if got := ParseSuggestions("This is just prose with no numbered items."); len(got) != 0 {
		t.Fatalf("got %+v", got)
	}
}
