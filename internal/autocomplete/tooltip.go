package autocomplete

import "unicode"

// Tooltip is a one-line signature/description lookup surfaced as a
// transient popup distinct from Help, grounded on
// original_source/src/tooltip/{detector.rs,tooltip_state.rs} — the
// "tooltip detector" supplemented feature listed in SPEC_FULL.md §2.2.
// It composes with the Autocomplete popup rather than competing for the
// popup-coordinator slot (spec.md §4.1's documented Tooltip+Autocomplete
// exception).
type Tooltip struct {
	Signature   string
	Description string
}

// DetectTooltip finds the function name the cursor is either sitting on
// or enclosed by (an unmatched "(" scanned backwards from the cursor),
// and looks it up in the builtin table. Functions take priority over
// operators, matching detector.rs's update_tooltip_from_app ordering;
// this package has no separate operator table, so an unmatched-function
// miss simply yields no tooltip.
func DetectTooltip(query string, cursor int) (Tooltip, bool) {
	runes := []rune(query)
	if cursor > len(runes) {
		cursor = len(runes)
	}

	if word, ok := wordAtCursor(runes, cursor); ok {
		if tt, ok := lookupTooltip(word); ok {
			return tt, true
		}
	}

	if word, ok := enclosingFunction(runes, cursor); ok {
		return lookupTooltip(word)
	}

	return Tooltip{}, false
}

func lookupTooltip(word string) (Tooltip, bool) {
	for _, b := range jqBuiltins {
		if b.Name == word {
			return Tooltip{Signature: b.Signature, Description: b.Description}, true
		}
	}
	return Tooltip{}, false
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// wordAtCursor returns the identifier the cursor sits within or directly
// after (so a cursor placed right after "length" still detects it).
func wordAtCursor(runes []rune, cursor int) (string, bool) {
	start, end := cursor, cursor
	for start > 0 && isIdentRune(runes[start-1]) {
		start--
	}
	for end < len(runes) && isIdentRune(runes[end]) {
		end++
	}
	if start == end {
		return "", false
	}
	return string(runes[start:end]), true
}

// enclosingFunction scans backwards from cursor for an unmatched "(" and
// returns the identifier immediately preceding it, mirroring
// find_enclosing_function/find_function_before_paren.
func enclosingFunction(runes []rune, cursor int) (string, bool) {
	depth := 0
	limit := cursor
	if limit > len(runes) {
		limit = len(runes)
	}
	for i := limit - 1; i >= 0; i-- {
		switch runes[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth < 0 {
				end := i
				for end > 0 && isSpace(runes[end-1]) {
					end--
				}
				if end == 0 || !isIdentRune(runes[end-1]) {
					depth = 0
					continue
				}
				start := end
				for start > 0 && isIdentRune(runes[start-1]) {
					start--
				}
				return string(runes[start:end]), true
			}
		}
	}
	return "", false
}
