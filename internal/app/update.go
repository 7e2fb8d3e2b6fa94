package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/schmitthub/jqview/internal/ai"
	"github.com/schmitthub/jqview/internal/editor"
	"github.com/schmitthub/jqview/internal/popup"
	"github.com/schmitthub/jqview/internal/query"
	"github.com/schmitthub/jqview/internal/tui"
)

// queryDebounceTickMsg and aiDebounceTickMsg wrap the two
// *query.Debouncer instances' tea.Cmd output in distinct outer types.
// query.Debouncer's tickMsg carries only a bare generation number with
// no indication of which Debouncer scheduled it, and this orchestrator
// reuses the type for both the query-execution debounce and the AI
// advisor debounce rather than duplicating it — so Update's dispatch
// needs its own wrapper per call site to know which Debouncer.Ready to
// call before ever touching the shared inner message.
type queryDebounceTickMsg struct{ inner tea.Msg }
type aiDebounceTickMsg struct{ inner tea.Msg }

// scheduleQueryDebounce arms the query debounce timer, wrapping its
// tick in queryDebounceTickMsg so Update can tell it apart from the AI
// debouncer's tick.
func (m *Model) scheduleQueryDebounce() tea.Cmd {
	inner := m.queryDebouncer.Schedule()
	return func() tea.Msg { return queryDebounceTickMsg{inner: inner()} }
}

// scheduleAIDebounce arms the AI advisor debounce timer, analogous to
// scheduleQueryDebounce.
func (m *Model) scheduleAIDebounce() tea.Cmd {
	inner := m.aiDebouncer.Schedule()
	return func() tea.Msg { return aiDebounceTickMsg{inner: inner()} }
}

// Update is the Bubble Tea entry point: it dispatches window-size and
// worker-channel messages directly, and routes key events through the
// precedence ladder described in spec.md §4.1 — Help overlay, then any
// open modal popup, then global shortcuts, then the focused submachine —
// each tier returning as soon as it claims the key.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resultsScrl.ViewportHeight = msg.Height - 4
		m.resultsScrl.ViewportWidth = msg.Width
		m.resultsScrl.UpdateMaxVOffset(m.maxVOffset())
		m.resultsScrl.UpdateMaxHOffset(m.maxHOffset())
		return m, nil

	case query.ResponseMsg:
		return m, m.handleQueryResponse(query.Response(msg))
	case query.ChannelClosedMsg:
		return m, nil

	case ai.ResponseMsg:
		return m, m.handleAIResponse(ai.Response(msg))
	case ai.ChannelClosedMsg:
		return m, nil

	case queryDebounceTickMsg:
		if m.queryDebouncer.Ready(msg.inner) {
			return m, m.submitQuery(m.editor.Line.Value())
		}
		return m, nil

	case aiDebounceTickMsg:
		if m.aiDebouncer.Ready(msg.inner) {
			return m, m.triggerAIRequest()
		}
		return m, nil

	case tui.SpinnerTickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

// handleKey runs the precedence ladder: the first tier that claims the
// key short-circuits the rest.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if handled, cmd := m.handleHelpKeys(msg); handled {
		return cmd
	}
	if handled, cmd := m.handlePopupKeys(msg); handled {
		return cmd
	}
	if handled, cmd := m.handleGlobalKeys(msg); handled {
		return cmd
	}
	return m.handleFocusKeys(msg)
}

// handleHelpKeys absorbs all input while the full-screen help overlay
// is open: scrolling keys move helpScroll, Esc/q/?/F1 close it, and any
// other key is consumed without effect.
func (m *Model) handleHelpKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !m.helpVisible {
		return false, nil
	}
	switch {
	case msg.Type == tea.KeyEsc, msg.String() == "q", tui.IsHelp(msg), msg.Type == tea.KeyF1:
		m.helpVisible = false
	case msg.String() == "j", msg.Type == tea.KeyDown:
		m.helpScroll++
	case msg.String() == "k", msg.Type == tea.KeyUp:
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	case msg.String() == "J", msg.Type == tea.KeyCtrlD, msg.Type == tea.KeyPgDown:
		m.helpScroll += 10
	case msg.String() == "K", msg.Type == tea.KeyCtrlU, msg.Type == tea.KeyPgUp:
		m.helpScroll -= 10
		if m.helpScroll < 0 {
			m.helpScroll = 0
		}
	case msg.String() == "g", msg.Type == tea.KeyHome:
		m.helpScroll = 0
	case msg.String() == "G", msg.Type == tea.KeyEnd:
		m.helpScroll = 1 << 30
	}
	return true, nil
}

// handlePopupKeys routes keys to whichever modal popup the Coordinator
// currently has open (History, Snippets, or AI's navigation selection).
// Autocomplete is intentionally excluded here: it is handled inside
// handleFocusKeys's Input branch since it never takes exclusive focus
// away from the editor (spec.md §4.1 tier 2/3 boundary).
func (m *Model) handlePopupKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch m.popups.Active() {
	case popup.KindHistory:
		return true, m.handleHistoryPopupKeys(msg)
	case popup.KindSnippets:
		return true, m.handleSnippetsPopupKeys(msg)
	case popup.KindAI:
		if handled, cmd := m.handleAIPopupKeys(msg); handled {
			return true, cmd
		}
		return false, nil
	}
	return false, nil
}

// handleGlobalKeys implements spec.md §4.1's shortcut table: bindings
// that apply regardless of focus, checked after Help/popup tiers and
// before the focused submachine gets the key.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		m.outputMode = OutputNone
		return true, tea.Quit

	case msg.Type == tea.KeyCtrlE:
		if m.hasErr {
			m.showErrorOverlay = !m.showErrorOverlay
			return true, nil
		}
		return true, nil

	case msg.Type == tea.KeyF1, (tui.IsHelp(msg) && m.isNormalModeInput()):
		m.helpVisible = !m.helpVisible
		m.helpScroll = 0
		return true, nil

	case msg.Type == tea.KeyTab:
		if m.autocompleteState.IsVisible() {
			return true, m.acceptAutocomplete()
		}
		m.switchFocus()
		return true, nil

	case msg.Type == tea.KeyShiftTab:
		m.popups.CloseAll()
		m.autocompleteState.Hide()
		m.aiState.Selection.Clear()
		m.searchState.Close()
		m.switchFocus()
		return true, nil

	case msg.Type == tea.KeyCtrlH:
		m.toggleHistoryPopup()
		return true, nil

	case msg.Type == tea.KeyCtrlT:
		m.toggleSnippetsPopup()
		return true, nil

	case msg.Type == tea.KeyCtrlA:
		if m.aiConfigured {
			m.aiState.Toggle()
			if m.aiState.Visible {
				m.popups.Open(popup.KindAI)
			} else {
				m.popups.Close(popup.KindAI)
			}
		}
		return true, nil

	case msg.Type == tea.KeyEnter && !msg.Alt:
		// A modal popup (History/Snippets) claims Enter itself in the
		// popup tier above; reaching here means none is open, or the AI
		// popup is open but not in Navigation-apply mode.
		m.finalizeResult()
		return true, tea.Quit

	case msg.Type == tea.KeyCtrlQ, isShiftOrAltEnter(msg):
		m.finalizeQuery()
		return true, tea.Quit

	case msg.Type == tea.KeyCtrlP:
		m.historyCycleOlder()
		return true, m.submitQuery(m.editor.Line.Value())

	case msg.Type == tea.KeyCtrlN:
		m.historyCycleNewer()
		return true, m.submitQuery(m.editor.Line.Value())

	case msg.String() == "q" && !m.isEditingInput():
		m.quitting = true
		m.outputMode = OutputNone
		return true, tea.Quit
	}
	return false, nil
}

// isShiftOrAltEnter matches the "finalize emitting the query string"
// bindings: Shift-Enter, Alt-Enter.
func isShiftOrAltEnter(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyShiftEnter || (msg.Type == tea.KeyEnter && msg.Alt)
}

// isNormalModeInput reports whether "?" should be treated as the
// toggle-help shortcut rather than literal input text — true whenever
// the editor isn't actively being typed into.
func (m *Model) isNormalModeInput() bool {
	return !m.isEditingInput()
}

// isEditingInput reports whether the editor is in Insert mode with
// focus on the input — the "editing" state the q-quits-only-when-not-
// editing global rule and the ?-toggles-help rule both check against.
func (m *Model) isEditingInput() bool {
	if m.focus != FocusInput {
		return false
	}
	_, insert := m.editor.Mode.(editor.InsertMode)
	return insert
}

func (m *Model) switchFocus() {
	if m.focus == FocusInput {
		m.focus = FocusResults
	} else {
		m.focus = FocusInput
	}
}

// handleFocusKeys routes to whichever submachine currently has focus.
func (m *Model) handleFocusKeys(msg tea.KeyMsg) tea.Cmd {
	if m.focus == FocusResults {
		return m.handleResultsKey(msg)
	}
	return m.handleInputKey(msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	line := m.resultsScrl.VOffset + msg.Y
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.resultsCur.ClickSelect(line)
		m.focus = FocusResults
	}
	return nil
}
