package editor

// TextObjectTarget is the character class a text-object motion operates
// on, selected by the second key of "di"/"ca"/etc combos.
type TextObjectTarget int

const (
	TargetWord TextObjectTarget = iota
	TargetDoubleQuote
	TargetSingleQuote
	TargetBacktick
	TargetParentheses
	TargetBrackets
	TargetBraces
)

// TextObjectTargetFromChar maps the second key of a text-object combo to
// a target, or ok=false if the key names no known text object. Grounded
// on original_source's TextObjectTarget::from_char table (w; quotes:
// " ' `; brackets: ( ) b; [ ] ; braces: { } B).
func TextObjectTargetFromChar(c rune) (TextObjectTarget, bool) {
	switch c {
	case 'w':
		return TargetWord, true
	case '"':
		return TargetDoubleQuote, true
	case '\'':
		return TargetSingleQuote, true
	case '`':
		return TargetBacktick, true
	case '(', ')', 'b':
		return TargetParentheses, true
	case '[', ']':
		return TargetBrackets, true
	case '{', '}', 'B':
		return TargetBraces, true
	default:
		return 0, false
	}
}

// FindWordBounds returns the [start, end) rune range of the word under
// col, widened to include one adjacent run of spaces for Around scope.
// Returns ok=false if col sits on a non-word character or past the end
// of text. Grounded on original_source/src/editor/text_objects_tests.rs's
// word_bounds_tests table.
func FindWordBounds(runes []rune, col int, scope Scope) (start, end int, ok bool) {
	if col < 0 || col >= len(runes) || !isWordRune(runes[col]) {
		return 0, 0, false
	}
	start = col
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	end = col + 1
	for end < len(runes) && isWordRune(runes[end]) {
		end++
	}
	if scope == ScopeInner {
		return start, end, true
	}
	// Around: prefer trailing spaces; fall back to leading spaces if
	// there's no room after the word.
	trailEnd := end
	for trailEnd < len(runes) && isSpace(runes[trailEnd]) {
		trailEnd++
	}
	if trailEnd > end {
		return start, trailEnd, true
	}
	leadStart := start
	for leadStart > 0 && isSpace(runes[leadStart-1]) {
		leadStart--
	}
	return leadStart, end, true
}

// FindQuoteBounds returns the [start, end) rune range of a quoted string
// containing or adjacent to col, delimited by quote on both sides.
// Inner excludes the quote characters; Around includes them. Returns
// ok=false if col is outside any matching quote pair.
func FindQuoteBounds(runes []rune, col int, quote rune, scope Scope) (start, end int, ok bool) {
	// Collect quote-character positions.
	var positions []int
	for i, r := range runes {
		if r == quote {
			positions = append(positions, i)
		}
	}
	for i := 0; i+1 < len(positions); i += 2 {
		open, close := positions[i], positions[i+1]
		if col < open || col > close {
			continue
		}
		if scope == ScopeInner {
			return open + 1, close, true
		}
		return open, close + 1, true
	}
	return 0, 0, false
}

var bracketPairs = map[TextObjectTarget][2]rune{
	TargetParentheses: {'(', ')'},
	TargetBrackets:    {'[', ']'},
	TargetBraces:      {'{', '}'},
}

// FindBracketBounds returns the [start, end) rune range of the innermost
// bracket pair enclosing col (open/close chosen by target), or ok=false
// if col is outside any matching pair or the pair is unterminated.
func FindBracketBounds(runes []rune, col int, open, close rune, scope Scope) (start, end int, ok bool) {
	depth := 0
	openIdx := -1
	for i := 0; i < col && i < len(runes); i++ {
		switch runes[i] {
		case open:
			depth++
			openIdx = i
		case close:
			depth--
		}
	}
	// A cursor sitting directly on an opening or closing bracket still
	// belongs to the pair it delimits (cursor_on_opening_bracket /
	// cursor_on_closing_bracket in the grounding test table).
	if col < len(runes) {
		switch runes[col] {
		case open:
			depth++
			openIdx = col
		case close:
			depth++
		}
	}
	if depth <= 0 || openIdx < 0 {
		return 0, 0, false
	}
	// Find the matching close for openIdx by scanning forward with a
	// running depth counter restricted to this bracket kind.
	d := 0
	for i := openIdx; i < len(runes); i++ {
		switch runes[i] {
		case open:
			d++
		case close:
			d--
			if d == 0 {
				if scope == ScopeInner {
					return openIdx + 1, i, true
				}
				return openIdx, i + 1, true
			}
		}
	}
	return 0, 0, false
}

// TextObjectBounds resolves the [start, end) range the text object named
// by target/scope covers under t's cursor, without mutating t. Shared by
// ExecuteTextObject (d/c) and the Yank path in handleTextObject, which
// must read the range without cutting it.
func TextObjectBounds(t *TextLine, target TextObjectTarget, scope Scope) (start, end int, ok bool) {
	switch target {
	case TargetWord:
		return FindWordBounds(t.runes, t.cursor, scope)
	case TargetDoubleQuote:
		return FindQuoteBounds(t.runes, t.cursor, '"', scope)
	case TargetSingleQuote:
		return FindQuoteBounds(t.runes, t.cursor, '\'', scope)
	case TargetBacktick:
		return FindQuoteBounds(t.runes, t.cursor, '`', scope)
	default:
		pair, known := bracketPairs[target]
		if !known {
			return 0, 0, false
		}
		return FindBracketBounds(t.runes, t.cursor, pair[0], pair[1], scope)
	}
}

// ExecuteTextObject deletes the text object named by target/scope under
// t's cursor, returning whether a match was found (a no-match leaves t
// untouched and the caller falls back to Normal mode). Used by the
// Delete/Change operators; Yank uses TextObjectBounds directly so it
// never mutates the buffer.
func ExecuteTextObject(t *TextLine, target TextObjectTarget, scope Scope) bool {
	start, end, ok := TextObjectBounds(t, target, scope)
	if !ok {
		return false
	}
	t.DeleteRange(start, end)
	return true
}
