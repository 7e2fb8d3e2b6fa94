package autocomplete

// State is the autocomplete popup's visibility/selection state, grounded
// on original_source/src/autocomplete/autocomplete_state_tests.rs's
// AutocompleteState: visibility is derived from whether there are any
// suggestions (never set directly), and selection wraps in both
// directions — unlike the results/history/snippets popups, which clamp.
type State struct {
	suggestions []Suggestion
	selectedIdx int

	// BaseQuery is the query text captured when the popup was last shown,
	// used by insert.go's FieldContext cached-base-query rule (spec.md
	// §4.3.6) to detect the user editing the partial after the popup
	// opened.
	BaseQuery string
}

// New returns a hidden State with no suggestions.
func New() *State {
	return &State{}
}

func (s *State) IsVisible() bool { return len(s.suggestions) > 0 }

func (s *State) Suggestions() []Suggestion { return s.suggestions }

func (s *State) SelectedIndex() int { return s.selectedIdx }

// UpdateSuggestions replaces the suggestion list and resets the
// selection. An empty list hides the popup (IsVisible is derived).
func (s *State) UpdateSuggestions(suggestions []Suggestion) {
	s.suggestions = suggestions
	s.selectedIdx = 0
}

// Hide clears the suggestion list, matching AutocompleteState::hide().
func (s *State) Hide() {
	s.suggestions = nil
	s.selectedIdx = 0
}

// SelectNext/SelectPrevious wrap, unlike the results/history/snippets
// popups' clamped navigation — grounded on test_select_next's explicit
// "wraps around" assertion.
func (s *State) SelectNext() {
	if len(s.suggestions) == 0 {
		return
	}
	s.selectedIdx = (s.selectedIdx + 1) % len(s.suggestions)
}

func (s *State) SelectPrevious() {
	if len(s.suggestions) == 0 {
		return
	}
	s.selectedIdx = (s.selectedIdx - 1 + len(s.suggestions)) % len(s.suggestions)
}

// Selected returns the suggestion at the current index, or false if the
// popup is not visible.
func (s *State) Selected() (Suggestion, bool) {
	if !s.IsVisible() || s.selectedIdx < 0 || s.selectedIdx >= len(s.suggestions) {
		return Suggestion{}, false
	}
	return s.suggestions[s.selectedIdx], true
}
