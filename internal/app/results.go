package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/schmitthub/jqview/internal/results"
)

// handleResultsKey routes a key to the results pane submachine and
// performs whatever Action it couldn't satisfy itself (focus changes,
// search, help, yank — results.Pane has no clipboard/popup access of
// its own, per keys.go's Action doc comment).
func (m *Model) handleResultsKey(msg tea.KeyMsg) tea.Cmd {
	if m.searchState.State() == results.Active {
		return m.handleSearchKey(msg)
	}
	if m.searchState.State() == results.Confirmed {
		switch msg.String() {
		case "n":
			m.jumpToMatch(m.searchState.NextMatch())
			return nil
		case "N":
			m.jumpToMatch(m.searchState.PrevMatch())
			return nil
		}
	}

	k := toResultsKey(msg)
	act := m.resultsPane.HandleKey(k)
	switch act {
	case results.ActionExitToInput:
		m.focus = FocusInput
	case results.ActionExitToInputInsertMode:
		m.focus = FocusInput
	case results.ActionOpenSearch:
		m.searchState.Open()
	case results.ActionToggleHelp:
		m.helpVisible = !m.helpVisible
		m.helpScroll = 0
	case results.ActionYank:
		m.yankSelection()
	}
	return nil
}

// yankSelection copies the currently selected result lines (Visual mode
// range, or just the cursor line in Normal mode) to the clipboard.
func (m *Model) yankSelection() {
	r := m.activeResultForBounds()
	start, end := m.resultsCur.SelectionRange()
	var lines []string
	for i := start; i <= end && i < len(r.RenderedLines); i++ {
		if i < 0 {
			continue
		}
		lines = append(lines, r.RenderedLines[i].Text)
	}
	if len(lines) == 0 {
		return
	}
	_ = m.clip.Copy(strings.Join(lines, "\n"))
	m.resultsCur.ExitVisualMode()
}

// handleSearchKey drives the results-pane search bar while it is Active
// (being typed into): Enter confirms and jumps to the first match,
// Esc cancels back to Closed.
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchState.Close()
		return nil
	case tea.KeyEnter:
		m.runSearch()
		m.searchState.Confirm()
		return nil
	case tea.KeyBackspace:
		if q := m.searchState.Query; q != "" {
			m.searchState.Query = q[:len(q)-1]
		}
		return nil
	case tea.KeyRunes:
		m.searchState.Query += string(msg.Runes)
		return nil
	}
	return nil
}

// jumpToMatch scrolls/cursors to match if one exists (an empty match
// list leaves the view untouched).
func (m *Model) jumpToMatch(match results.Match, ok bool) {
	if !ok {
		return
	}
	m.resultsScrl.EnsureVisible(match.Line)
	m.resultsScrl.EnsureHVisible(match.Col, match.Len)
	m.resultsCur.MoveToLine(match.Line)
}

// runSearch recomputes matches against the active result's rendered
// lines and scrolls to the first one.
func (m *Model) runSearch() {
	r := m.activeResultForBounds()
	lines := make([]string, len(r.RenderedLines))
	for i, l := range r.RenderedLines {
		lines[i] = l.Text
	}
	matches := results.FindMatches(lines, m.searchState.Query)
	m.searchState.SetMatches(matches)
	if match, ok := m.searchState.CurrentMatch(); ok {
		m.resultsScrl.EnsureVisible(match.Line)
		m.resultsScrl.EnsureHVisible(match.Col, match.Len)
		m.resultsCur.MoveToLine(match.Line)
	}
}
