package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleInputKey is the Input submachine: autocomplete navigation takes
// priority while the popup is visible (Up/Down move the selection
// rather than the editor cursor), otherwise the key goes straight to
// editor.Editor.HandleKey. A yank produced by the editor (yy/y-motion/
// text-object) is copied to the clipboard immediately after.
func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	if m.autocompleteState.IsVisible() {
		switch msg.Type {
		case tea.KeyUp:
			m.autocompleteState.SelectPrevious()
			return nil
		case tea.KeyDown:
			m.autocompleteState.SelectNext()
			return nil
		case tea.KeyEsc:
			m.autocompleteState.Hide()
			return nil
		}
	}

	changed := m.editor.HandleKey(toEditorKey(msg))

	if m.editor.Yanked != "" {
		_ = m.clip.Copy(m.editor.Yanked)
	}

	if changed {
		return m.onEditorChanged()
	}
	return nil
}
