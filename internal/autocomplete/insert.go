package autocomplete

import "strings"

// InsertionPlan is the computed splice: replace runes [Start, cursor) of
// the query with Text, then place the cursor at Start+len(Text).
type InsertionPlan struct {
	Start int
	Text  string
}

// Apply splices the plan into query at the given cursor, returning the
// new query text and the new cursor position.
func (p InsertionPlan) Apply(query string, cursor int) (string, int) {
	runes := []rune(query)
	if cursor > len(runes) {
		cursor = len(runes)
	}
	start := p.Start
	if start < 0 {
		start = 0
	}
	if start > cursor {
		start = cursor
	}
	ins := []rune(p.Text)
	out := make([]rune, 0, len(runes)-cursor+start+len(ins))
	out = append(out, runes[:start]...)
	out = append(out, ins...)
	out = append(out, runes[cursor:]...)
	return string(out), start + len(ins)
}

// PlanInsertion computes the replacement range for a selected suggestion,
// per spec.md §4.3.6. baseQuery is the query text captured when the
// autocomplete popup was opened (used to detect the user has since edited
// the partial — FieldContext's cached-base-query rule).
func PlanInsertion(ctx SuggestionContext, suggestion Suggestion, query string, cursor int, partial string, baseQuery string) InsertionPlan {
	runes := []rune(query)
	if cursor > len(runes) {
		cursor = len(runes)
	}
	partialLen := len([]rune(partial))

	switch ctx {
	case ContextFunction, ContextObjectKey, ContextVariable:
		start := cursor - partialLen
		text := suggestion.InsertText
		if ctx == ContextVariable && !strings.HasPrefix(text, "$") {
			text = "$" + text
		}
		return InsertionPlan{Start: start, Text: text}

	case ContextField, ContextElement:
		return planFieldInsertion(suggestion, runes, cursor, partial, baseQuery)

	default:
		return InsertionPlan{Start: cursor, Text: suggestion.InsertText}
	}
}

func planFieldInsertion(suggestion Suggestion, runes []rune, cursor int, partial string, baseQuery string) InsertionPlan {
	text := suggestion.InsertText
	partialLen := len([]rune(partial))

	if partial == "" {
		// Empty partial: avoid doubling a separator already typed
		// immediately before the cursor ("." + suggestion starting
		// with "." would otherwise render "..name").
		if cursor > 0 && startsWithSeparatorMatching(runes[cursor-1], text) {
			return InsertionPlan{Start: cursor - 1, Text: text}
		}
		return InsertionPlan{Start: cursor, Text: text}
	}

	if (strings.HasPrefix(text, "[") || strings.HasPrefix(text, "{")) &&
		string(runes[:cursor]) == baseQuery {
		// User hasn't edited since the popup opened: append rather
		// than replace the (unchanged) partial.
		return InsertionPlan{Start: cursor, Text: text}
	}
	if strings.HasPrefix(text, "[") || strings.HasPrefix(text, "{") {
		// Partial has since been edited: treat it as filter text and
		// replace from one char before it, eating the leading '.'.
		return InsertionPlan{Start: cursor - partialLen - 1, Text: text}
	}

	if strings.HasPrefix(text, ".") || strings.HasPrefix(text, "[") || strings.HasPrefix(text, "{") {
		return InsertionPlan{Start: cursor - partialLen - 1, Text: text}
	}

	// Bare suggestion: replace only the partial.
	return InsertionPlan{Start: cursor - partialLen, Text: text}
}

// startsWithSeparatorMatching reports whether prev (the rune just before
// the cursor) is the same kind of separator the suggestion text opens
// with, so inserting it verbatim would double it up.
func startsWithSeparatorMatching(prev rune, text string) bool {
	if text == "" {
		return false
	}
	switch prev {
	case '.':
		return strings.HasPrefix(text, ".")
	case '[':
		return strings.HasPrefix(text, "[")
	case '{':
		return strings.HasPrefix(text, "{")
	default:
		return false
	}
}
