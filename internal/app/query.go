package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/schmitthub/jqview/internal/cancel"
	"github.com/schmitthub/jqview/internal/query"
)

// submitQuery cancels whatever request is in flight, bumps the version
// counter, and submits a fresh one — mirroring spec.md §4.2's
// version-tagged staleness scheme: a response the orchestrator later
// receives is only applied if its Version still matches m.version.
func (m *Model) submitQuery(q string) tea.Cmd {
	m.cancelTok.Cancel()
	m.cancelTok = cancel.New()
	m.version++

	m.queryWorker.Submit(query.Request{
		Version:      m.version,
		Query:        q,
		OriginalJSON: m.originalJSON,
		Cancel:       m.cancelTok,
	})
	return nil
}

// handleQueryResponse applies one worker Response per spec.md §4.2's
// staleness/caching rules, then re-arms the wait for the next one.
func (m *Model) handleQueryResponse(resp query.Response) tea.Cmd {
	next := query.WaitForResponse(m.queryWorker.Responses())

	if resp.Version != m.version {
		return next // superseded by a newer request, discard silently
	}

	switch resp.Status {
	case query.StatusCancelled:
		return next

	case query.StatusErr:
		m.hasResult = true
		m.lastErr = resp.Err
		m.hasErr = true
		m.applyScrollBounds()
		return next

	case query.StatusOK:
		m.result = resp.Result
		m.hasResult = true
		m.hasErr = false
		m.lastErr = ""

		if !resp.Result.AllNullLines() {
			m.lastSuccessful = resp.Result
			m.hasLastSuccessful = true
			m.baseQueryForSuggestions = resp.Result.NormalizedQuery
			m.baseTypeForSuggestions = resp.Result.ResultType
			m.stats.Compute(resp.Result.Unformatted)
		}

		m.applyScrollBounds()
		m.resultsCur.SetLineWidths(widthsToInt(resp.Result.LineWidths))
		m.resultsCur.UpdateTotalLines(len(resp.Result.RenderedLines))
	}
	return next
}

// applyScrollBounds recomputes the vertical/horizontal scroll ceilings.
// Per spec.md §4.2, while the live result is an error the bounds are
// taken from the cached last-successful result instead, so scrolling
// doesn't collapse to zero during a transient syntax error mid-edit.
func (m *Model) applyScrollBounds() {
	m.resultsScrl.UpdateMaxVOffset(m.maxVOffset())
	m.resultsScrl.UpdateMaxHOffset(m.maxHOffset())
}

func (m *Model) activeResultForBounds() query.Preprocessed {
	if m.hasErr && m.hasLastSuccessful {
		return m.lastSuccessful
	}
	return m.result
}

func (m *Model) maxVOffset() int {
	r := m.activeResultForBounds()
	n := len(r.RenderedLines) - m.resultsScrl.ViewportHeight
	if n < 0 {
		return 0
	}
	return n
}

func (m *Model) maxHOffset() int {
	r := m.activeResultForBounds()
	n := int(r.MaxWidth) - m.resultsScrl.ViewportWidth
	if n < 0 {
		return 0
	}
	return n
}

func widthsToInt(ws []uint16) []int {
	out := make([]int, len(ws))
	for i, w := range ws {
		out[i] = int(w)
	}
	return out
}

// onEditorChanged is called whenever a key handled by the input
// submachine changed the buffer content: it resets the history-cycle
// index, re-runs autocomplete/tooltip analysis, and reschedules both
// debounce timers.
func (m *Model) onEditorChanged() tea.Cmd {
	m.historyCycling = false
	m.refreshAutocomplete()
	m.refreshTooltip()
	return tea.Batch(m.scheduleQueryDebounce(), m.scheduleAIDebounce())
}

// finalizeResult is Enter's action: print the current (cached successful,
// if the live one is an error) rendered result to stdout on exit, per
// spec.md §6.1.
func (m *Model) finalizeResult() {
	r := m.result
	if m.hasErr && m.hasLastSuccessful {
		r = m.lastSuccessful
	}
	m.recordHistory()
	m.outputMode = OutputResult
	m.finalText = r.Unformatted
	m.quitting = true
}

// finalizeQuery is Shift-Enter/Alt-Enter/Ctrl-Q's action: print the
// query string itself rather than its result.
func (m *Model) finalizeQuery() {
	m.recordHistory()
	m.outputMode = OutputQuery
	m.finalText = m.editor.Line.Value()
	m.quitting = true
}

// recordHistory persists the confirmed query to disk, ignoring a write
// failure (history is a convenience, not load-bearing for the session
// that just produced a result).
func (m *Model) recordHistory() {
	_ = m.historyState.AddEntry(m.editor.Line.Value())
}
