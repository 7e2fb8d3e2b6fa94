package results

// scrollMargin mirrors original_source/src/search/search_events/scroll.rs's
// SCROLL_MARGIN — the Neovim-style margin kept between the cursor/match
// and the viewport edge, rather than centering on every move.
const scrollMargin = 5

// ScrollState tracks the results pane's vertical and horizontal scroll
// offsets, grounded on spec.md §3.5's ScrollState shape. MaxVOffset and
// MaxHOffset are recomputed by the owner (the render path knows the
// content size) and passed to UpdateMax*; every mutator re-clamps the
// offset so the offset ≤ max invariant always holds.
type ScrollState struct {
	VOffset        int
	MaxVOffset     int
	ViewportHeight int

	HOffset        int
	MaxHOffset     int
	ViewportWidth  int
}

func clamp(n, max int) int {
	if max < 0 {
		max = 0
	}
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// UpdateMaxVOffset records a new vertical scroll ceiling (e.g. after a
// re-query changes line count) and re-clamps VOffset.
func (s *ScrollState) UpdateMaxVOffset(max int) {
	s.MaxVOffset = max
	s.VOffset = clamp(s.VOffset, max)
}

// UpdateMaxHOffset records a new horizontal scroll ceiling and re-clamps
// HOffset.
func (s *ScrollState) UpdateMaxHOffset(max int) {
	s.MaxHOffset = max
	s.HOffset = clamp(s.HOffset, max)
}

func (s *ScrollState) ScrollVBy(delta int) {
	s.VOffset = clamp(s.VOffset+delta, s.MaxVOffset)
}

func (s *ScrollState) ScrollHBy(delta int) {
	s.HOffset = clamp(s.HOffset+delta, s.MaxHOffset)
}

func (s *ScrollState) JumpHLeftEdge() {
	s.HOffset = 0
}

// JumpHLineEnd sets HOffset so the given line width's end is visible,
// mirroring the "$" key's results_events.rs behavior (jump to the
// max-selected-line-width-relative right edge).
func (s *ScrollState) JumpHLineEnd(lineWidth int) {
	if s.ViewportWidth <= 0 || lineWidth <= s.ViewportWidth {
		s.HOffset = 0
		return
	}
	s.HOffset = clamp(lineWidth-s.ViewportWidth, s.MaxHOffset)
}

// EnsureVisible scrolls vertically, with a scrollMargin-sized buffer
// from either viewport edge, so that line stays on-screen. Mirrors
// scroll_to_match's Neovim-style margin scrolling (not centering).
func (s *ScrollState) EnsureVisible(line int) {
	if s.ViewportHeight <= 0 {
		s.VOffset = line
		return
	}
	if s.MaxVOffset <= 0 {
		return
	}

	margin := scrollMargin
	if half := s.ViewportHeight / 2; margin > half {
		margin = half
	}

	visibleStart := s.VOffset
	visibleEnd := s.VOffset + s.ViewportHeight

	if line < visibleStart+margin {
		s.VOffset = clamp(line-margin, s.MaxVOffset)
	} else if line >= visibleEnd-margin {
		s.VOffset = clamp(line+margin+1-s.ViewportHeight, s.MaxVOffset)
	}
}

// EnsureHVisible scrolls horizontally so that [col, col+length) is
// visible, with a fixed left margin, mirroring scroll_to_match's
// horizontal branch for search match visibility.
func (s *ScrollState) EnsureHVisible(col, length int) {
	const leftMargin = 10
	if s.MaxHOffset <= 0 {
		return
	}
	if s.ViewportWidth <= 0 {
		s.HOffset = clamp(col-leftMargin, s.MaxHOffset)
		return
	}

	end := col + length
	visibleStart := s.HOffset
	visibleEnd := s.HOffset + s.ViewportWidth

	if col < visibleStart || end > visibleEnd {
		s.HOffset = clamp(col-leftMargin, s.MaxHOffset)
	}
}
