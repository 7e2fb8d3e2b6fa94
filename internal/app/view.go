package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/schmitthub/jqview/internal/editor"
	"github.com/schmitthub/jqview/internal/popup"
	"github.com/schmitthub/jqview/internal/tui"
)

// View renders the full screen: input line, results pane, status bar,
// and whichever single overlay (help, error, active popup) currently
// takes priority — mirroring the precedence ladder Update dispatches
// keys through.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.viewInputLine(),
		m.viewResultsPane(),
		m.viewStatusBar(),
	)

	if m.helpVisible {
		return m.viewHelpOverlay()
	}
	if m.showErrorOverlay && m.hasErr {
		return lipgloss.JoinVertical(lipgloss.Left, body, m.viewErrorOverlay())
	}
	switch m.popups.Active() {
	case popup.KindHistory:
		return lipgloss.JoinVertical(lipgloss.Left, body, m.viewHistoryPopup())
	case popup.KindSnippets:
		return lipgloss.JoinVertical(lipgloss.Left, body, m.viewSnippetsPopup())
	}
	if m.aiState.Visible && m.aiConfigured {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.viewAIPanel())
	}
	if m.autocompleteState.IsVisible() {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.viewAutocompletePopup())
	}
	if m.hasTooltip {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.viewTooltip())
	}
	return body
}

func (m *Model) viewInputLine() string {
	prompt := "> "
	if m.focus == FocusResults {
		prompt = "  "
	}
	line := m.editor.Line.Value()
	style := lipgloss.NewStyle().Foreground(tui.ColorPrimary)
	if m.focus == FocusResults {
		style = lipgloss.NewStyle().Foreground(tui.ColorSecondary)
	}
	return style.Render(prompt + line)
}

func (m *Model) viewResultsPane() string {
	r := m.activeResultForBounds()
	if !m.hasResult {
		return m.spinner.SetLabel("evaluating...").View()
	}
	var lines []string
	start := m.resultsScrl.VOffset
	height := m.resultsScrl.ViewportHeight
	if height <= 0 {
		height = len(r.RenderedLines)
	}
	for i := start; i < start+height && i < len(r.RenderedLines); i++ {
		if i < 0 {
			continue
		}
		text := r.RenderedLines[i].Text
		switch {
		case m.focus == FocusResults && m.resultsCur.IsCursorLine(i):
			text = tui.HighlightStyle.Render(text)
		case m.resultsCur.IsLineSelected(i):
			text = lipgloss.NewStyle().Foreground(tui.ColorSelected).Render(text)
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewStatusBar() string {
	bar := tui.NewStatusBar(m.width)
	center := ""
	if stats, ok := m.stats.Display(); ok {
		center = stats
	}
	right := ""
	if m.hasErr {
		right = tui.ErrorStyle.Render("error (Ctrl-E to view)")
	}
	bar = bar.SetLeft(m.modeLabel()).SetCenter(center).SetRight(right)
	return bar.View()
}

func (m *Model) modeLabel() string {
	if m.focus == FocusResults {
		if m.resultsCur.IsVisualMode() {
			return "RESULTS/VISUAL"
		}
		return "RESULTS"
	}
	switch m.editor.Mode.(type) {
	case editor.InsertMode:
		return "INSERT"
	case editor.OperatorMode, editor.OperatorCharSearchMode, editor.TextObjectMode, editor.CharSearchMode:
		return "NORMAL/PENDING"
	default:
		return "NORMAL"
	}
}

func (m *Model) viewErrorOverlay() string {
	panel := tui.NewPanel(tui.PanelConfig{Title: "Error", Width: m.width, Height: 5, Focused: true})
	return panel.SetContent(tui.ErrorStyle.Render(m.lastErr)).View()
}

func (m *Model) viewHelpOverlay() string {
	panel := tui.NewPanel(tui.PanelConfig{Title: "Help", Width: m.width, Height: m.height, Focused: true})
	lines := append(globalHelpLines(m.width), helpText()...)
	if m.helpScroll >= len(lines) {
		m.helpScroll = len(lines) - 1
	}
	if m.helpScroll < 0 {
		m.helpScroll = 0
	}
	visible := lines[m.helpScroll:]
	return panel.SetContent(strings.Join(visible, "\n")).View()
}

// globalHelpLines renders the app-wide shortcut row with tui.HelpModel
// the same way the teacher's dashboards render a footer help bar,
// wrapped to its own "Global:" section above the editor/results detail.
func globalHelpLines(width int) []string {
	bar := tui.NewHelp(tui.DefaultHelpConfig()).SetWidth(width - 2).SetBindings(globalBindings()).SetShowAll(true)
	return []string{
		"jqview — interactive jq query explorer",
		"",
		"Global:",
		"  " + bar.FullHelp(),
		"",
	}
}

// globalBindings lists every global shortcut handleGlobalKeys dispatches
// on, reusing tui.DefaultKeyMap's Help/Tab/Enter/Quit bindings where
// they match and defining the rest (most of them have no tui.KeyMap
// analogue, since KeyMap only covers generic single-key navigation).
func globalBindings() []key.Binding {
	km := tui.DefaultKeyMap()
	return []key.Binding{
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit w/o output")),
		key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "toggle error overlay")),
		km.Help,
		km.Tab,
		key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "switch focus, close popups")),
		km.Enter,
		key.NewBinding(key.WithKeys("shift+enter", "alt+enter", "ctrl+q"), key.WithHelp("shift/alt+enter, ctrl+q", "emit query text")),
		km.Quit,
		key.NewBinding(key.WithKeys("ctrl+p", "ctrl+n"), key.WithHelp("ctrl+p/n", "cycle history")),
		key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "toggle history popup")),
		key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle snippets popup")),
		key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "toggle AI advisor")),
	}
}

func helpText() []string {
	return []string{
		"Editor (Normal mode):",
		"  h l 0 $ w b e   motion",
		"  i a I A         enter insert mode",
		"  x X D C         delete",
		"  d/c/y + motion  operator + motion",
		"  di\" ca( ya{     text objects",
		"  f/F/t/T + char  char search, ; , repeat",
		"  u / Ctrl-R      undo / redo",
		"",
		"Results pane:",
		"  j k / arrows    move cursor",
		"  h l / arrows    scroll horizontally",
		"  g G             first / last line",
		"  v V             visual mode, y to yank",
		"  /               search, n N next/prev match",
		"  i               back to input (insert mode)",
	}
}

func (m *Model) viewHistoryPopup() string {
	panel := tui.NewPanel(tui.PanelConfig{Title: "History", Width: m.width, Height: 12, Focused: true})
	var b strings.Builder
	fmt.Fprintf(&b, "search: %s\n\n", m.historyState.SearchQuery())
	for _, e := range m.historyState.VisibleEntries() {
		marker := "  "
		if e.DisplayIndex == m.historyState.SelectedIndex() {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%s\n", marker, e.Entry)
	}
	return panel.SetContent(b.String()).View()
}

func (m *Model) viewSnippetsPopup() string {
	panel := tui.NewPanel(tui.PanelConfig{Title: "Snippets", Width: m.width, Height: 12, Focused: true})
	var b strings.Builder
	fmt.Fprintf(&b, "search: %s\n\n", m.snippetsState.SearchQuery())
	for i, sn := range m.snippetsState.FilteredSnippets() {
		marker := "  "
		if i == m.snippetsState.SelectedIndex() {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%s: %s\n", marker, sn.Name, sn.Query)
	}
	return panel.SetContent(b.String()).View()
}

func (m *Model) viewAIPanel() string {
	panel := tui.NewPanel(tui.PanelConfig{Title: "AI Advisor", Width: m.width, Height: 8})
	text := m.aiState.Response
	if m.aiState.Loading {
		text += "\n" + m.spinner.SetLabel("thinking...").View()
	}
	if m.aiState.Err != "" {
		text = tui.ErrorStyle.Render(m.aiState.Err)
	}
	return panel.SetContent(text).View()
}

func (m *Model) viewAutocompletePopup() string {
	var b strings.Builder
	for i, s := range m.autocompleteState.Suggestions() {
		marker := "  "
		if i == m.autocompleteState.SelectedIndex() {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%s", marker, s.Label)
		if s.Detail != "" {
			fmt.Fprintf(&b, "  (%s)", s.Detail)
		}
		b.WriteString("\n")
	}
	return tui.MutedStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) viewTooltip() string {
	return tui.MutedStyle.Render(fmt.Sprintf("%s — %s", m.tooltip.Signature, m.tooltip.Description))
}
