package ai

import (
	"regexp"
	"strings"
)

// SuggestionType classifies the kind of advice a numbered suggestion
// carries, grounded on original_source's SuggestionType variants
// referenced from ai_state.rs's test fixtures (Fix, Next, ...).
type SuggestionType int

const (
	SuggestionFix SuggestionType = iota
	SuggestionNext
	SuggestionInfo
)

func suggestionTypeFromLabel(label string) SuggestionType {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "fix":
		return SuggestionFix
	case "next":
		return SuggestionNext
	default:
		return SuggestionInfo
	}
}

// AdvisorSuggestion is one parsed, applyable suggestion out of the
// advisor's free-text response.
type AdvisorSuggestion struct {
	Query       string
	Description string
	Type        SuggestionType
}

// itemHeader matches a numbered item's header line, e.g.
// "1. [Fix] .users[]" — the bracketed label is optional.
var itemHeader = regexp.MustCompile(`^\d+\.\s*(?:\[(\w+)\]\s*)?(.+)$`)

// ParseSuggestions parses the advisor's streamed-then-completed response
// text into structured suggestions: numbered items ("N. [Type] query"),
// with any indented following lines (until the next numbered item or
// end of text) joined as that item's description. Grounded on
// original_source/src/ai/ai_state.rs's
// test_complete_request_parses_suggestions fixture
// ("1. [Fix] .users[]\n   Fix the query" -> query=".users[]",
// description="Fix the query", type=Fix).
func ParseSuggestions(response string) []AdvisorSuggestion {
	var out []AdvisorSuggestion
	var cur *AdvisorSuggestion
	var descLines []string

	flush := func() {
		if cur == nil {
			return
		}
		cur.Description = strings.TrimSpace(strings.Join(descLines, " "))
		out = append(out, *cur)
		cur = nil
		descLines = nil
	}

	for _, line := range strings.Split(response, "\n") {
		if m := itemHeader.FindStringSubmatch(strings.TrimLeft(line, " \t")); m != nil {
			flush()
			cur = &AdvisorSuggestion{
				Query: strings.TrimSpace(m[2]),
				Type:  suggestionTypeFromLabel(m[1]),
			}
			continue
		}
		if cur == nil {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		descLines = append(descLines, trimmed)
	}
	flush()

	return out
}
