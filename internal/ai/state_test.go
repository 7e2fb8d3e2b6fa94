package ai

import "testing"

func TestNewVisibleMatchesEnabled(t *testing.T) {
	s := New(true, false)
	if !s.Visible || !s.Enabled || s.Configured {
		t.Fatalf("got %+v", s)
	}
	s2 := New(false, false)
	if s2.Visible {
		t.Fatal("expected hidden when disabled")
	}
}

func TestToggle(t *testing.T) {
	s := New(true, true)
	s.Toggle()
	if s.Visible {
		t.Fatal("expected hidden after toggle")
	}
	s.Toggle()
	if !s.Visible {
		t.Fatal("expected visible after second toggle")
	}
}

func TestStartRequestPreservesResponse(t *testing.T) {
	s := New(true, true)
	s.Response = "previous answer"
	s.StartRequest()
	if !s.Loading {
		t.Fatal("expected loading")
	}
	if s.Response != "" {
		t.Fatalf("expected response cleared, got %q", s.Response)
	}
	if s.PreviousResponse != "previous answer" {
		t.Fatalf("got previous response %q", s.PreviousResponse)
	}
}

func TestStartRequestEmptyResponseNotPreserved(t *testing.T) {
	s := New(true, true)
	s.StartRequest()
	if s.PreviousResponse != "" {
		t.Fatalf("got %q, want empty", s.PreviousResponse)
	}
}

func TestRequestIDsAreUniquePerRequest(t *testing.T) {
	s := New(true, true)
	id1 := s.StartRequest()
	id2 := s.StartRequest()
	if id1 == id2 {
		t.Fatalf("got equal ids %s, %s", id1, id2)
	}
}

func TestCompleteRequestParsesSuggestions(t *testing.T) {
	s := New(true, true)
	s.Response = "1. [Fix] .users[]\n   Fix the query"
	s.Loading = true
	s.CompleteRequest()
	if s.Loading {
		t.Fatal("expected loading cleared")
	}
	if len(s.Suggestions) != 1 || s.Suggestions[0].Query != ".users[]" {
		t.Fatalf("got %+v", s.Suggestions)
	}
}

func TestStartRequestClearsSuggestionsAndSelection(t *testing.T) {
	s := New(true, true)
	s.Suggestions = []AdvisorSuggestion{{Query: ".test"}}
	s.Selection.Select(0)
	s.StartRequest()
	if len(s.Suggestions) != 0 {
		t.Fatalf("got %+v", s.Suggestions)
	}
	if _, ok := s.Selection.Selected(); ok {
		t.Fatal("expected selection cleared")
	}
}

func TestSetErrorClearsInFlight(t *testing.T) {
	s := New(true, true)
	s.StartRequest()
	if !s.HasInFlightRequest() {
		t.Fatal("expected in-flight request")
	}
	s.SetError("network error")
	if s.HasInFlightRequest() {
		t.Fatal("expected in-flight cleared on error")
	}
	if s.Err != "network error" {
		t.Fatalf("got %q", s.Err)
	}
}

func TestIsQueryChanged(t *testing.T) {
	s := New(true, true)
	if !s.IsQueryChanged(".name") {
		t.Fatal("expected changed with no previous hash")
	}
	s.SetLastQueryHash(".name")
	if s.IsQueryChanged(".name") {
		t.Fatal("expected unchanged for identical query")
	}
	if !s.IsQueryChanged(".age") {
		t.Fatal("expected changed for a different query")
	}
}

func TestAcceptsResponseFiltersStale(t *testing.T) {
	s := New(true, true)
	id1 := s.StartRequest()
	id2 := s.StartRequest()
	if s.AcceptsResponse(Response{ID: id1}) {
		t.Fatal("expected stale response (id1) to be rejected after id2 superseded it")
	}
	if !s.AcceptsResponse(Response{ID: id2}) {
		t.Fatal("expected current response (id2) to be accepted")
	}
}

func TestBuildRequestBumpsIDAndTracksInFlight(t *testing.T) {
	s := New(true, true)
	req := s.BuildRequest("explain")
	if req.Kind != RequestQuery {
		t.Fatalf("got req.Kind %v, want RequestQuery", req.Kind)
	}
	if req.ID != s.requestID {
		t.Fatalf("got req.ID %d, state requestID %d", req.ID, s.requestID)
	}
	id, ok := s.InFlightID()
	if !ok || id != req.ID {
		t.Fatalf("got InFlightID %d,%v, want %d,true", id, ok, req.ID)
	}
}
