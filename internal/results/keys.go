package results

// Key is a minimal, toolkit-independent key event for the results pane,
// mirroring internal/editor.Key's approach so this package stays
// testable without a bubbletea dependency.
type Key struct {
	Rune rune
	Named NamedKey
	Ctrl  bool
}

type NamedKey int

const (
	KeyNone NamedKey = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyTab
	KeyBackTab
	KeyEsc
)

// Action reports what the results pane key handler could not satisfy
// itself — the app orchestrator owns focus, clipboard, help overlay,
// and the search bar, so those effects are returned rather than
// performed here. Grounded on results_events.rs's calls out to
// crate::app/crate::clipboard/crate::search/crate::help.
type Action int

const (
	ActionNone Action = iota
	ActionExitToInput
	ActionExitToInputInsertMode
	ActionOpenSearch
	ActionToggleHelp
	ActionYank
)

// Pane bundles the cursor and scroll state the results key handler
// mutates together, mirroring App's results_cursor/results_scroll pair
// in results_events.rs.
type Pane struct {
	Cursor *CursorState
	Scroll *ScrollState
}

// HandleKey dispatches one key event per results_events.rs's
// handle_results_pane_key, first checking Visual-mode-specific keys,
// then the Normal-mode table. Returns the Action the caller must still
// perform, or ActionNone if this function fully handled the key.
func (p *Pane) HandleKey(k Key) Action {
	if p.Cursor.IsVisualMode() {
		if act, handled := p.handleVisualModeKey(k); handled {
			return act
		}
	}

	switch {
	case k.Named == KeyTab && !k.Ctrl:
		return p.exitResultsPane()
	case k.Named == KeyBackTab:
		return p.exitResultsPane()

	case k.Rune == 'i':
		p.exitResultsPane()
		return ActionExitToInputInsertMode

	case k.Rune == '/':
		return ActionOpenSearch

	case k.Rune == '?':
		return ActionToggleHelp

	case k.Rune == 'y':
		return ActionYank

	case k.Rune == 'v' || k.Rune == 'V':
		p.Cursor.EnterVisualMode()
		return ActionNone

	case k.Named == KeyUp || k.Rune == 'k':
		p.moveCursor(-1)
	case k.Named == KeyDown || k.Rune == 'j':
		p.moveCursor(1)

	case k.Rune == 'K':
		p.moveCursor(-10)
	case k.Rune == 'J':
		p.moveCursor(10)

	case k.Named == KeyLeft || k.Rune == 'h':
		p.Scroll.ScrollHBy(-1)
	case k.Named == KeyRight || k.Rune == 'l':
		p.Scroll.ScrollHBy(1)

	case k.Rune == 'H':
		p.Scroll.ScrollHBy(-10)
	case k.Rune == 'L':
		p.Scroll.ScrollHBy(10)

	case k.Rune == '0' || k.Rune == '^':
		p.Scroll.JumpHLeftEdge()

	case k.Rune == '$':
		p.Scroll.JumpHLineEnd(p.Cursor.CursorLineWidth())

	case k.Named == KeyHome || k.Rune == 'g':
		p.Cursor.MoveToFirst()
		p.Scroll.EnsureVisible(p.Cursor.CursorLine())

	case k.Named == KeyEnd || k.Rune == 'G':
		p.Cursor.MoveToLast()
		p.Scroll.EnsureVisible(p.Cursor.CursorLine())

	case k.Named == KeyPgUp || (k.Rune == 'u' && k.Ctrl):
		p.moveCursor(-(p.Scroll.ViewportHeight / 2))
	case k.Named == KeyPgDown || (k.Rune == 'd' && k.Ctrl):
		p.moveCursor(p.Scroll.ViewportHeight / 2)
	}

	return ActionNone
}

func (p *Pane) handleVisualModeKey(k Key) (Action, bool) {
	switch {
	case k.Named == KeyEsc:
		p.Cursor.ExitVisualMode()
		return ActionNone, true

	case k.Rune == 'v' || k.Rune == 'V':
		p.Cursor.ExitVisualMode()
		return ActionNone, true

	case k.Rune == 'y':
		p.Cursor.ExitVisualMode()
		return ActionYank, true

	case k.Rune == '$':
		p.Scroll.JumpHLineEnd(p.Cursor.MaxSelectedLineWidth())
		return ActionNone, true
	}
	return ActionNone, false
}

func (p *Pane) moveCursor(delta int) {
	if delta < 0 {
		p.Cursor.MoveUp(-delta)
	} else {
		p.Cursor.MoveDown(delta)
	}
	p.Scroll.EnsureVisible(p.Cursor.CursorLine())
}

func (p *Pane) exitResultsPane() Action {
	p.Cursor.ExitVisualMode()
	return ActionExitToInput
}
