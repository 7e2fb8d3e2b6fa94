package editor

// FindCharPosition returns the rune index of the next/previous occurrence
// of target relative to fromCol, honoring Find (land on it) vs Till (land
// one short of it) semantics, or ok=false if there is no match. Grounded
// on original_source/src/editor/char_search_tests.rs's find_char_position
// table (forward search starts at fromCol+1, backward search stops before
// fromCol).
func FindCharPosition(runes []rune, fromCol int, target rune, dir Dir, kind SearchKind) (int, bool) {
	switch dir {
	case DirForward:
		start := fromCol + 1
		if start >= len(runes) {
			return 0, false
		}
		for i := start; i < len(runes); i++ {
			if runes[i] == target {
				if kind == KindTill {
					return i - 1, true
				}
				return i, true
			}
		}
		return 0, false
	default: // DirBackward
		if fromCol == 0 {
			return 0, false
		}
		for i := fromCol - 1; i >= 0; i-- {
			if runes[i] == target {
				if kind == KindTill {
					return i + 1, true
				}
				return i, true
			}
		}
		return 0, false
	}
}

// ExecuteCharSearch moves t's cursor to the result of FindCharPosition
// against t's current contents and cursor, returning whether a match was
// found. Used directly by f/F/t/T ("move to char"), and indirectly (via
// FindCharPosition) by operator+char-search ("delete to char").
func ExecuteCharSearch(t *TextLine, target rune, dir Dir, kind SearchKind) bool {
	pos, ok := FindCharPosition(t.runes, t.cursor, target, dir, kind)
	if !ok {
		return false
	}
	t.cursor = pos
	return true
}

// OperatorCharSearchRange computes the [start, end) rune range an
// operator+char-search combo ("dfx", "dtx", "dFx", "dTx") should delete,
// given the column the motion started from. Mirrors
// editor_events.rs's find_operator_char_range: Find includes the target
// character, Till stops one short of it, and direction flips which end
// of the range is the anchor.
func OperatorCharSearchRange(runes []rune, startCol int, target rune, dir Dir, kind SearchKind) (start, end int, ok bool) {
	if len(runes) == 0 || startCol >= len(runes) {
		return 0, 0, false
	}
	matchIdx, found := findCharMatchIndex(runes, startCol, target, dir)
	if !found {
		return 0, 0, false
	}
	switch dir {
	case DirForward:
		start = startCol
		if kind == KindFind {
			end = matchIdx + 1
		} else {
			end = matchIdx
		}
	default:
		if kind == KindFind {
			start = matchIdx
		} else {
			start = matchIdx + 1
		}
		end = startCol + 1
	}
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

func findCharMatchIndex(runes []rune, fromCol int, target rune, dir Dir) (int, bool) {
	switch dir {
	case DirForward:
		start := fromCol + 1
		if start >= len(runes) {
			return 0, false
		}
		for i := start; i < len(runes); i++ {
			if runes[i] == target {
				return i, true
			}
		}
		return 0, false
	default:
		if fromCol == 0 {
			return 0, false
		}
		for i := fromCol - 1; i >= 0; i-- {
			if runes[i] == target {
				return i, true
			}
		}
		return 0, false
	}
}
