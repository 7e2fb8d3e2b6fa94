// Package results tracks the results pane's cursor, scroll, and search
// state, grounded on original_source/src/results/{results_events.rs,
// cursor_state_tests.rs} and original_source/src/search/*.
package results

// SelectionMode distinguishes a plain cursor move from an extending
// Visual-mode selection anchored at the line Visual mode was entered on.
type SelectionMode int

const (
	Normal SelectionMode = iota
	Visual
)

// CursorState tracks the results pane's active line, Normal/Visual mode,
// and an optional mouse-hover line, grounded on
// original_source/src/results/cursor_state_tests.rs.
type CursorState struct {
	cursorLine int
	totalLines int
	mode       SelectionMode
	anchorLine int
	hasAnchor  bool
	hoveredLine int
	hasHover   bool
	lineWidths []int
}

// New returns a CursorState at line 0, Normal mode, with no hover.
func New() *CursorState {
	return &CursorState{}
}

func (c *CursorState) CursorLine() int        { return c.cursorLine }
func (c *CursorState) TotalLines() int        { return c.totalLines }
func (c *CursorState) Mode() SelectionMode    { return c.mode }
func (c *CursorState) IsVisualMode() bool     { return c.mode == Visual }

func (c *CursorState) HoveredLine() (int, bool) {
	return c.hoveredLine, c.hasHover
}

func (c *CursorState) SetHovered(line int) {
	c.hoveredLine = line
	c.hasHover = true
}

func (c *CursorState) ClearHover() {
	c.hoveredLine = 0
	c.hasHover = false
}

func (c *CursorState) clampLine(n int) int {
	if c.totalLines <= 0 {
		return 0
	}
	if n < 0 {
		return 0
	}
	if n > c.totalLines-1 {
		return c.totalLines - 1
	}
	return n
}

// UpdateTotalLines records a new line count (e.g. after re-query) and
// clamps the cursor back into range.
func (c *CursorState) UpdateTotalLines(n int) {
	c.totalLines = n
	c.cursorLine = c.clampLine(c.cursorLine)
}

// MoveToLine jumps the cursor to n, clamped to [0, totalLines-1].
func (c *CursorState) MoveToLine(n int) {
	c.cursorLine = c.clampLine(n)
}

// MoveUp moves the cursor up by n lines, saturating at 0.
func (c *CursorState) MoveUp(n int) {
	c.MoveToLine(c.cursorLine - n)
}

// MoveDown moves the cursor down by n lines, saturating at the last line.
func (c *CursorState) MoveDown(n int) {
	c.MoveToLine(c.cursorLine + n)
}

func (c *CursorState) MoveToFirst() { c.MoveToLine(0) }
func (c *CursorState) MoveToLast()  { c.MoveToLine(c.totalLines - 1) }

// EnterVisualMode anchors the selection at the current cursor line.
func (c *CursorState) EnterVisualMode() {
	c.mode = Visual
	c.anchorLine = c.cursorLine
	c.hasAnchor = true
}

func (c *CursorState) ExitVisualMode() {
	c.mode = Normal
	c.hasAnchor = false
}

func (c *CursorState) ToggleVisualMode() {
	if c.mode == Visual {
		c.ExitVisualMode()
	} else {
		c.EnterVisualMode()
	}
}

// SelectionRange returns (start, end) inclusive of the anchor-to-cursor
// span in Visual mode, or (cursorLine, cursorLine) in Normal mode.
func (c *CursorState) SelectionRange() (int, int) {
	if c.mode != Visual || !c.hasAnchor {
		return c.cursorLine, c.cursorLine
	}
	if c.anchorLine <= c.cursorLine {
		return c.anchorLine, c.cursorLine
	}
	return c.cursorLine, c.anchorLine
}

// IsLineSelected reports whether line falls within the active Visual
// selection. Always false in Normal mode.
func (c *CursorState) IsLineSelected(line int) bool {
	if c.mode != Visual {
		return false
	}
	start, end := c.SelectionRange()
	return line >= start && line <= end
}

func (c *CursorState) IsCursorLine(line int) bool {
	return line == c.cursorLine
}

// Reset clears cursor position, mode, and hover back to zero values,
// keeping totalLines (a fresh query will call UpdateTotalLines anyway).
func (c *CursorState) Reset() {
	c.cursorLine = 0
	c.mode = Normal
	c.hasAnchor = false
	c.hoveredLine = 0
	c.hasHover = false
}

// ClickSelect jumps the cursor to line (clamped) and enters Visual mode
// anchored there — a single click selects just that line.
func (c *CursorState) ClickSelect(line int) {
	c.MoveToLine(line)
	c.EnterVisualMode()
}

// DragExtend moves the cursor to line (clamped) without touching the
// anchor, extending the Visual selection. A no-op outside Visual mode.
func (c *CursorState) DragExtend(line int) {
	if c.mode != Visual {
		return
	}
	c.MoveToLine(line)
}

// SetLineWidths records per-line rendered widths, used by horizontal
// scroll-to-cursor and "$" end-of-line jumps.
func (c *CursorState) SetLineWidths(widths []int) {
	c.lineWidths = widths
}

// CursorLineWidth returns the rendered width of the cursor's line, or 0
// if line widths haven't been recorded or the cursor is out of range.
func (c *CursorState) CursorLineWidth() int {
	return c.lineWidth(c.cursorLine)
}

// MaxSelectedLineWidth returns the widest line width within the current
// selection range (Visual mode) or just the cursor line (Normal mode).
func (c *CursorState) MaxSelectedLineWidth() int {
	start, end := c.SelectionRange()
	max := 0
	for line := start; line <= end; line++ {
		if w := c.lineWidth(line); w > max {
			max = w
		}
	}
	return max
}

func (c *CursorState) lineWidth(line int) int {
	if line < 0 || line >= len(c.lineWidths) {
		return 0
	}
	return c.lineWidths[line]
}
