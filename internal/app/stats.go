package app

import (
	"fmt"
	"strings"

	"github.com/schmitthub/jqview/internal/jsonvalue"
)

// ResultStats is a small summary of the last successful result's shape,
// grounded on original_source/src/stats/stats_state.rs's ResultStats
// (computed from the unformatted result text, not the live one, so a
// transient syntax error doesn't blank the status bar).
type ResultStats struct {
	Lines    int
	Chars    int
	Elements int
	HasElems bool
}

// computeStats parses result's shape for the status line: rune count,
// line count and, when the parsed value is an array or object, its
// element/key count.
func computeStats(result string) ResultStats {
	lines := strings.Count(result, "\n") + 1
	if result == "" {
		lines = 0
	}
	st := ResultStats{Lines: lines, Chars: len([]rune(result))}
	if value, ok := jsonvalue.ParseFirstValue(result); ok {
		if arr, ok := jsonvalue.IsArray(value); ok {
			st.Elements, st.HasElems = len(arr), true
		} else if obj, ok := jsonvalue.IsObject(value); ok {
			st.Elements, st.HasElems = len(obj), true
		}
	}
	return st
}

// Stats holds the most recently computed ResultStats, grounded on
// StatsState::compute/display: it only updates from a non-blank
// successful result and is otherwise left showing the previous one.
type Stats struct {
	stats ResultStats
	has   bool
}

// Compute updates the stats from result, a no-op if result is blank
// (matching stats_state.rs's "trimmed.is_empty() -> return").
func (s *Stats) Compute(result string) {
	if strings.TrimSpace(result) == "" {
		return
	}
	s.stats = computeStats(result)
	s.has = true
}

// Display renders the status-bar summary, or ok=false if no result has
// been computed yet.
func (s *Stats) Display() (string, bool) {
	if !s.has {
		return "", false
	}
	if s.stats.HasElems {
		return fmt.Sprintf("%d lines, %d chars, %d elements", s.stats.Lines, s.stats.Chars, s.stats.Elements), true
	}
	return fmt.Sprintf("%d lines, %d chars", s.stats.Lines, s.stats.Chars), true
}
