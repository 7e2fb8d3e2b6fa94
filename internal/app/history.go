package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/schmitthub/jqview/internal/popup"
)

// toggleHistoryPopup opens the History browse/search popup, or closes
// it if already open (the Coordinator enforces that opening it closes
// whatever else was active).
func (m *Model) toggleHistoryPopup() {
	if m.popups.IsOpen(popup.KindHistory) {
		m.popups.Close(popup.KindHistory)
		m.historyState.Close()
		return
	}
	m.popups.Open(popup.KindHistory)
	m.historyState.Open(nil)
}

func (m *Model) toggleSnippetsPopup() {
	if m.popups.IsOpen(popup.KindSnippets) {
		m.popups.Close(popup.KindSnippets)
		m.snippetsState.Close()
		return
	}
	m.popups.Open(popup.KindSnippets)
	m.snippetsState.Open()
}

// handleHistoryPopupKeys drives the History popup's browse/search/
// select/close cycle while it owns the screen.
func (m *Model) handleHistoryPopupKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEsc:
		m.popups.Close(popup.KindHistory)
		m.historyState.Close()
		return nil

	case msg.Type == tea.KeyUp:
		m.historyState.SelectPrevious()
		return nil
	case msg.Type == tea.KeyDown:
		m.historyState.SelectNext()
		return nil

	case msg.Type == tea.KeyEnter:
		entry, ok := m.historyState.SelectedEntry()
		m.popups.Close(popup.KindHistory)
		m.historyState.Close()
		if !ok {
			return nil
		}
		m.editor.Line.SetValue(entry)
		m.historyCycling = false
		return m.onEditorChanged()

	case msg.Type == tea.KeyBackspace:
		q := m.historyState.SearchQuery()
		if q != "" {
			m.historyState.SetSearchQuery(q[:len(q)-1])
		}
		return nil

	case msg.Type == tea.KeyRunes:
		m.historyState.SetSearchQuery(m.historyState.SearchQuery() + string(msg.Runes))
		return nil
	}
	return nil
}

// handleSnippetsPopupKeys mirrors handleHistoryPopupKeys for the
// Snippets popup; selecting a snippet loads its query into the editor.
func (m *Model) handleSnippetsPopupKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEsc:
		m.popups.Close(popup.KindSnippets)
		m.snippetsState.Close()
		return nil

	case msg.Type == tea.KeyUp:
		m.snippetsState.SelectPrev()
		return nil
	case msg.Type == tea.KeyDown:
		m.snippetsState.SelectNext()
		return nil

	case msg.Type == tea.KeyEnter:
		sn, ok := m.snippetsState.SelectedSnippet()
		m.popups.Close(popup.KindSnippets)
		m.snippetsState.Close()
		if !ok {
			return nil
		}
		m.editor.Line.SetValue(sn.Query)
		m.historyCycling = false
		return m.onEditorChanged()

	case msg.Type == tea.KeyBackspace:
		q := m.snippetsState.SearchQuery()
		if q != "" {
			m.snippetsState.SetSearchQuery(q[:len(q)-1])
		}
		return nil

	case msg.Type == tea.KeyRunes:
		m.snippetsState.SetSearchQuery(m.snippetsState.SearchQuery() + string(msg.Runes))
		return nil
	}
	return nil
}

// historyCycleOlder implements Ctrl-P (spec.md §4.1 "History cycling"):
// walk to the next older entry, stashing the pre-cycle buffer text the
// first time it's invoked so Ctrl-N can restore it.
func (m *Model) historyCycleOlder() {
	m.historyState.SetSearchQuery("")
	entries := m.historyState.VisibleEntries()
	if len(entries) == 0 {
		return
	}
	if !m.historyCycling {
		m.historyCycleStash = m.editor.Line.Value()
		m.historyCycling = true
		m.historyCycleIdx = -1
	}
	if m.historyCycleIdx < len(entries)-1 {
		m.historyCycleIdx++
	}
	m.editor.Line.SetValue(entries[m.historyCycleIdx].Entry)
}

// historyCycleNewer implements Ctrl-N: walk to the next newer entry; at
// the pre-cycle position (-1) it restores the original (uncycled) text.
func (m *Model) historyCycleNewer() {
	if !m.historyCycling {
		return
	}
	m.historyCycleIdx--
	if m.historyCycleIdx < -1 {
		m.historyCycleIdx = -1
	}
	if m.historyCycleIdx == -1 {
		m.editor.Line.SetValue(m.historyCycleStash)
		m.historyCycling = false
		return
	}
	m.historyState.SetSearchQuery("")
	entries := m.historyState.VisibleEntries()
	if m.historyCycleIdx >= len(entries) {
		m.historyCycleIdx = len(entries) - 1
	}
	if m.historyCycleIdx >= 0 {
		m.editor.Line.SetValue(entries[m.historyCycleIdx].Entry)
	}
}
