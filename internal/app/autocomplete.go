package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/schmitthub/jqview/internal/autocomplete"
)

// refreshAutocomplete re-runs context analysis against the current
// buffer/cursor and updates the popup's suggestion list, per spec.md
// §4.3. A cleared buffer or a context with no candidates hides the
// popup (State.IsVisible is derived from the suggestion list).
func (m *Model) refreshAutocomplete() {
	q := m.editor.Line.Value()
	cursor := m.editor.Line.Cursor()
	ctx, partial := autocomplete.AnalyzeContext(q, cursor, &m.editor.Brace)
	suggestions := autocomplete.Suggest(ctx, partial, q, cursor, *m.originalJSON, &m.editor.Brace)
	m.autocompleteState.UpdateSuggestions(suggestions)
	if len(suggestions) > 0 {
		m.autocompleteState.BaseQuery = q
	}
	m.lastAutocompleteCtx = ctx
	m.lastAutocompletePartial = partial
}

// refreshTooltip looks up the jq builtin the cursor sits on or inside,
// independent of (and composable with) the autocomplete popup.
func (m *Model) refreshTooltip() {
	tt, ok := autocomplete.DetectTooltip(m.editor.Line.Value(), m.editor.Line.Cursor())
	m.tooltip, m.hasTooltip = tt, ok
}

// acceptAutocomplete splices the selected suggestion into the buffer
// (Tab, spec.md §4.3.6), then re-runs the usual edit-triggered refresh
// (autocomplete/tooltip recompute, debounce reschedule) exactly as any
// other content-changing key would.
func (m *Model) acceptAutocomplete() tea.Cmd {
	sel, ok := m.autocompleteState.Selected()
	if !ok {
		return nil
	}
	q := m.editor.Line.Value()
	cursor := m.editor.Line.Cursor()
	plan := autocomplete.PlanInsertion(m.lastAutocompleteCtx, sel, q, cursor, m.lastAutocompletePartial, m.autocompleteState.BaseQuery)
	newQuery, newCursor := plan.Apply(q, cursor)
	m.editor.Line.SetValue(newQuery)
	for m.editor.Line.Cursor() > newCursor {
		m.editor.Line.MoveBack()
	}
	m.autocompleteState.Hide()
	return m.onEditorChanged()
}
