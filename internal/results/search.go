package results

import "strings"

// SearchLifecycle mirrors spec.md §3.5's SearchState.state: Closed,
// Active (the search textarea is focused and editing), or Confirmed
// (the last search was committed with Enter and the bar can close while
// navigation between matches remains available).
type SearchLifecycle int

const (
	Closed SearchLifecycle = iota
	Active
	Confirmed
)

// Match is one occurrence of the search term within the rendered
// results text, grounded on scroll.rs's current_match() usage
// (line/col/len feed both vertical and horizontal EnsureVisible calls).
type Match struct {
	Line int
	Col  int
	Len  int
}

// SearchState holds the results-pane search bar's query text, lifecycle,
// and the current match list with a cursor into it.
type SearchState struct {
	Query   string
	state   SearchLifecycle
	Matches []Match
	current int
}

func NewSearch() *SearchState {
	return &SearchState{state: Closed}
}

func (s *SearchState) State() SearchLifecycle { return s.state }

// Open clears any previous query/matches and enters Active (editing).
func (s *SearchState) Open() {
	s.Query = ""
	s.Matches = nil
	s.current = 0
	s.state = Active
}

// Close returns to Closed, dropping the query and matches entirely.
func (s *SearchState) Close() {
	s.Query = ""
	s.Matches = nil
	s.current = 0
	s.state = Closed
}

// Confirm commits the in-progress query, moving from Active to
// Confirmed. A no-op outside Active.
func (s *SearchState) Confirm() {
	if s.state == Active {
		s.state = Confirmed
	}
}

// SetMatches replaces the match list (recomputed whenever Query or the
// underlying results text changes) and clamps the current match index.
func (s *SearchState) SetMatches(matches []Match) {
	s.Matches = matches
	if s.current >= len(matches) {
		s.current = 0
	}
}

// CurrentMatch returns the active match, mirroring
// search_events/scroll.rs's current_match().
func (s *SearchState) CurrentMatch() (Match, bool) {
	if len(s.Matches) == 0 {
		return Match{}, false
	}
	return s.Matches[s.current], true
}

// NextMatch advances to the next match, wrapping around.
func (s *SearchState) NextMatch() (Match, bool) {
	if len(s.Matches) == 0 {
		return Match{}, false
	}
	s.current = (s.current + 1) % len(s.Matches)
	return s.CurrentMatch()
}

// PrevMatch moves to the previous match, wrapping around.
func (s *SearchState) PrevMatch() (Match, bool) {
	if len(s.Matches) == 0 {
		return Match{}, false
	}
	s.current = (s.current - 1 + len(s.Matches)) % len(s.Matches)
	return s.CurrentMatch()
}

// FindMatches does a case-insensitive scan of lines for query,
// producing one Match per occurrence per line. The scan resumes after
// the end of each match, so overlapping occurrences are not reported
// ("aaa" searched for "aa" yields one match).
func FindMatches(lines []string, query string) []Match {
	if query == "" {
		return nil
	}
	lowerQuery := strings.ToLower(query)
	qlen := len([]rune(query))
	var out []Match
	for lineNo, line := range lines {
		lower := strings.ToLower(line)
		start := 0
		for {
			idx := strings.Index(lower[start:], lowerQuery)
			if idx < 0 {
				break
			}
			col := len([]rune(lower[:start+idx]))
			out = append(out, Match{Line: lineNo, Col: col, Len: qlen})
			start = start + idx + len(lowerQuery)
			if start >= len(lower) {
				break
			}
		}
	}
	return out
}
