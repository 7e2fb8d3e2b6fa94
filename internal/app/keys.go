package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/schmitthub/jqview/internal/editor"
	"github.com/schmitthub/jqview/internal/results"
)

// toEditorKey translates a tea.KeyMsg into editor.Key, the
// toolkit-independent event internal/editor is built around, so that
// package never needs to import bubbletea.
func toEditorKey(msg tea.KeyMsg) editor.Key {
	switch msg.Type {
	case tea.KeyEsc:
		return editor.Key{Named: editor.KeyEsc}
	case tea.KeyBackspace:
		return editor.Key{Named: editor.KeyBackspace}
	case tea.KeyLeft:
		return editor.Key{Named: editor.KeyLeft}
	case tea.KeyRight:
		return editor.Key{Named: editor.KeyRight}
	case tea.KeyHome:
		return editor.Key{Named: editor.KeyHome}
	case tea.KeyEnd:
		return editor.Key{Named: editor.KeyEnd}
	case tea.KeyCtrlR:
		return editor.Key{Rune: 'r', Ctrl: true}
	case tea.KeyRunes, tea.KeySpace:
		if len(msg.Runes) > 0 {
			return editor.Key{Rune: msg.Runes[0]}
		}
		return editor.Key{Rune: ' '}
	default:
		return editor.Key{}
	}
}

// toResultsKey translates a tea.KeyMsg into results.Key.
func toResultsKey(msg tea.KeyMsg) results.Key {
	switch msg.Type {
	case tea.KeyEsc:
		return results.Key{Named: results.KeyEsc}
	case tea.KeyUp:
		return results.Key{Named: results.KeyUp}
	case tea.KeyDown:
		return results.Key{Named: results.KeyDown}
	case tea.KeyLeft:
		return results.Key{Named: results.KeyLeft}
	case tea.KeyRight:
		return results.Key{Named: results.KeyRight}
	case tea.KeyHome:
		return results.Key{Named: results.KeyHome}
	case tea.KeyEnd:
		return results.Key{Named: results.KeyEnd}
	case tea.KeyPgUp:
		return results.Key{Named: results.KeyPgUp}
	case tea.KeyPgDown:
		return results.Key{Named: results.KeyPgDown}
	case tea.KeyTab:
		return results.Key{Named: results.KeyTab}
	case tea.KeyShiftTab:
		return results.Key{Named: results.KeyBackTab}
	case tea.KeyCtrlU:
		return results.Key{Rune: 'u', Ctrl: true}
	case tea.KeyCtrlD:
		return results.Key{Rune: 'd', Ctrl: true}
	case tea.KeyRunes, tea.KeySpace:
		if len(msg.Runes) > 0 {
			return results.Key{Rune: msg.Runes[0]}
		}
		return results.Key{Rune: ' '}
	default:
		return results.Key{}
	}
}
