package ai

import (
	"hash/fnv"

	"github.com/google/uuid"
)

// State is the AI advisor's popup state, grounded on
// original_source/src/ai/ai_state.rs's AiState: visibility/config flags,
// the accumulating streamed response, request-id bookkeeping for
// staleness filtering, parsed suggestions, and the selection cursor
// over them.
type State struct {
	Visible    bool
	Enabled    bool
	Configured bool
	Loading    bool
	Err        string

	Response         string
	PreviousResponse string

	WordLimit int

	Suggestions []AdvisorSuggestion
	Selection   SelectionState

	requestID        uuid.UUID
	inFlightID       uuid.UUID
	hasInFlight      bool
	lastQueryHash    uint64
	hasLastQueryHash bool
}

// New returns a State matching the config-provided enabled/configured
// flags; the popup starts visible exactly when AI is enabled (spec.md
// §3.4, original_source's "visible by default when AI enabled").
func New(enabled, configured bool) *State {
	return &State{
		Visible:    enabled,
		Enabled:    enabled,
		Configured: configured,
		WordLimit:  200,
	}
}

// Toggle flips popup visibility; it is the only way to close the popup
// (original_source's Phase 2 behavior — Esc does not close it).
func (s *State) Toggle() {
	s.Visible = !s.Visible
}

// StartRequest begins a new request cycle: preserves the current
// response as PreviousResponse (if non-empty), clears the response,
// error and suggestions, mints a fresh request id, and clears any
// selection — matching ai_state.rs's start_request.
func (s *State) StartRequest() uuid.UUID {
	if s.Response != "" {
		s.PreviousResponse = s.Response
	}
	s.Response = ""
	s.Err = ""
	s.Loading = true
	s.requestID = uuid.New()
	s.inFlightID = s.requestID
	s.hasInFlight = true
	s.Suggestions = nil
	s.Selection.Clear()
	return s.requestID
}

// AppendChunk appends a streamed text chunk to the accumulating response.
func (s *State) AppendChunk(chunk string) {
	s.Response += chunk
}

// CompleteRequest marks the request finished and parses the finished
// response into structured suggestions.
func (s *State) CompleteRequest() {
	s.Loading = false
	s.PreviousResponse = ""
	s.hasInFlight = false
	s.Suggestions = ParseSuggestions(s.Response)
}

// SetError records a terminal error and clears in-flight bookkeeping.
func (s *State) SetError(msg string) {
	s.Err = msg
	s.Loading = false
	s.hasInFlight = false
}

// HasInFlightRequest reports whether a request is currently outstanding.
func (s *State) HasInFlightRequest() bool {
	return s.hasInFlight
}

// ClearStaleResponse wipes the response/error when the underlying query
// has changed out from under a still-visible advisor answer.
func (s *State) ClearStaleResponse() {
	s.Response = ""
	s.Err = ""
	s.PreviousResponse = ""
	s.Loading = false
}

// IsQueryChanged reports whether query differs from the last query a
// request was sent for (an unset hash always counts as changed).
func (s *State) IsQueryChanged(query string) bool {
	h := hashQuery(query)
	if !s.hasLastQueryHash {
		return true
	}
	return h != s.lastQueryHash
}

// SetLastQueryHash records query as the basis for future
// IsQueryChanged comparisons.
func (s *State) SetLastQueryHash(query string) {
	s.lastQueryHash = hashQuery(query)
	s.hasLastQueryHash = true
}

func hashQuery(query string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(query))
	return h.Sum64()
}

// BuildRequest constructs a worker Query request for prompt and bumps
// the request id via StartRequest.
func (s *State) BuildRequest(prompt string) Request {
	id := s.StartRequest()
	return Request{Kind: RequestQuery, ID: id, Prompt: prompt, WordCap: s.WordLimit}
}

// InFlightID returns the currently outstanding request's id, if any —
// used to address a Cancel request at the call a superseding query
// should interrupt.
func (s *State) InFlightID() (uuid.UUID, bool) {
	return s.inFlightID, s.hasInFlight
}

// AcceptsResponse reports whether resp belongs to the currently tracked
// in-flight request (staleness filtering for responses arriving after a
// newer request has superseded them).
func (s *State) AcceptsResponse(resp Response) bool {
	return s.hasInFlight && resp.ID == s.inFlightID
}
