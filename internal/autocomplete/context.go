package autocomplete

import (
	"strings"

	"github.com/schmitthub/jqview/internal/editor"
)

// SuggestionContext classifies what kind of completion the cursor
// position calls for.
type SuggestionContext int

const (
	ContextFunction SuggestionContext = iota
	ContextField
	ContextObjectKey
	ContextElement
	ContextVariable
	ContextPipe
)

var jqKeywords = map[string]bool{
	"if": true, "then": true, "else": true, "elif": true, "end": true,
	"and": true, "or": true, "not": true, "as": true, "def": true,
	"reduce": true, "foreach": true, "try": true, "catch": true,
	"import": true, "include": true, "module": true,
}

// functionsTakingArray lists jq builtins whose argument is evaluated once
// per element of an array input, so a field access typed inside their
// parens should suggest as if an ArrayIterator were already prepended
// (spec.md §4.3.2 rule 5 / §4.3.4 "Element context").
var functionsTakingArray = map[string]bool{
	"map": true, "select": true, "sort_by": true, "group_by": true,
	"unique_by": true, "min_by": true, "max_by": true,
	"map_values": true, "all": true, "any": true,
}

// AnalyzeContext determines the SuggestionContext and the partial
// identifier being typed, given the full query text, the cursor's rune
// column, and the brace tracker for that text (spec.md §4.3.1/4.3.2).
func AnalyzeContext(query string, cursor int, brace *editor.BraceTracker) (SuggestionContext, string) {
	runes := []rune(query)
	if cursor > len(runes) {
		cursor = len(runes)
	}
	before := string(runes[:cursor])

	if strings.TrimSpace(before) == "" {
		return ContextFunction, ""
	}

	partial, lastDotLen := trailingIdent(before)

	if lastDotLen > 0 {
		// The partial was introduced by a '.' — FieldContext, unless
		// we're sitting inside an array-consuming function's parens,
		// in which case it's ElementContext (§4.3.4).
		if insideArrayFunctionCall(before, brace) {
			return ContextElement, partial
		}
		return ContextField, partial
	}

	if strings.HasPrefix(partial, "$") {
		return ContextVariable, strings.TrimPrefix(partial, "$")
	}

	if jqKeywords[partial] {
		return ContextFunction, partial
	}

	if kind, _, ok := brace.InnermostOpenerBefore(cursor); ok && kind == '{' && partial != "" && isKeyPosition(before) {
		return ContextObjectKey, partial
	}

	if isAfterPipe(before) {
		return ContextPipe, partial
	}

	return ContextFunction, partial
}

// trailingIdent extracts the identifier run ending at the cursor and, if
// it was introduced by a '.', also reports the byte length consumed by
// that leading dot/optional-dot marker (non-zero signals FieldContext).
func trailingIdent(before string) (partial string, dotLen int) {
	runes := []rune(before)
	i := len(runes)
	for i > 0 && isIdentOrDollar(runes[i-1]) {
		i--
	}
	partial = string(runes[i:])
	if i > 0 && runes[i-1] == '.' {
		return partial, 1
	}
	return partial, 0
}

func isIdentOrDollar(r rune) bool {
	return r == '_' || r == '$' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// isKeyPosition reports whether the text just before the partial is the
// start of an object constructor ("{") or a comma within one — the two
// places an object key, rather than a value expression, is expected.
// Only called when the partial was not introduced by a '.' (dotLen==0),
// so the partial sits directly at the end of before.
func isKeyPosition(before string) bool {
	runes := []rune(before)
	partial, _ := trailingIdent(before)
	end := len(runes) - len([]rune(partial))
	for end > 0 && (runes[end-1] == ' ' || runes[end-1] == '\t') {
		end--
	}
	if end == 0 {
		return false
	}
	return runes[end-1] == '{' || runes[end-1] == ','
}

// isAfterPipe reports whether the last non-whitespace token before the
// cursor is a pipe, the signal for PipeContext (suggest the start of a
// new filter stage).
func isAfterPipe(before string) bool {
	trimmed := strings.TrimRight(before, " \t")
	return strings.HasSuffix(trimmed, "|")
}

// insideArrayFunctionCall reports whether the cursor sits inside the
// parens of a jq function known to apply its argument per-element
// (map, select, sort_by, ...), per spec.md §4.3.2 rule 5.
func insideArrayFunctionCall(before string, brace *editor.BraceTracker) bool {
	cursor := len([]rune(before))
	kind, openCol, ok := brace.InnermostOpenerBefore(cursor)
	if !ok || kind != '(' {
		return false
	}
	runes := []rune(before)
	end := openCol
	start := end
	for start > 0 && isIdentOrDollar(runes[start-1]) {
		start--
	}
	name := string(runes[start:end])
	return functionsTakingArray[name]
}
