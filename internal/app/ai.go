package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/schmitthub/jqview/internal/ai"
)

// triggerAIRequest builds and submits a fresh advisor request for the
// current query/error context, a no-op when AI isn't configured. Called
// after the AI debounce timer fires (spec.md §4.4).
func (m *Model) triggerAIRequest() tea.Cmd {
	if !m.aiConfigured || m.aiWorker == nil {
		return nil
	}
	q := m.editor.Line.Value()
	if !m.aiState.IsQueryChanged(q) {
		return nil
	}
	m.aiState.SetLastQueryHash(q)

	// spec.md §4.4 step 1.b: explicitly cancel the in-flight call (if
	// any) before submitting the superseding one, rather than leaving it
	// to run to completion and filtering its response out as stale.
	if inFlight, ok := m.aiState.InFlightID(); ok {
		m.aiWorker.Submit(ai.CancelRequest(inFlight))
	}

	prompt := m.buildAIPrompt(q)
	m.aiWorker.Submit(m.aiState.BuildRequest(prompt))
	return nil
}

// buildAIPrompt composes the advisor prompt from the current query and,
// if the live result is an error, the failure text — so the advisor can
// suggest a fix rather than just a continuation.
func (m *Model) buildAIPrompt(q string) string {
	if m.hasErr {
		return "The jq query `" + q + "` failed with error: " + m.lastErr +
			". Suggest one or more corrected or alternative queries."
	}
	return "Given the jq query `" + q + "`, suggest useful next filters to explore the data further."
}

// handleAIResponse applies one streamed chunk/terminal Response, subject
// to AcceptsResponse's staleness filtering, then re-arms the listener.
func (m *Model) handleAIResponse(resp ai.Response) tea.Cmd {
	next := ai.WaitForResponse(m.aiWorker.Responses())

	if !m.aiState.AcceptsResponse(resp) {
		return next
	}

	switch resp.Kind {
	case ai.KindChunk:
		m.aiState.AppendChunk(resp.Text)
	case ai.KindComplete:
		m.aiState.CompleteRequest()
	case ai.KindCancelled:
		m.aiState.ClearStaleResponse()
	case ai.KindError:
		m.aiState.SetError(resp.Err)
	}
	return next
}

// handleAIPopupKeys handles the AI panel's Hover->Navigation promotion
// and Apply semantics (spec.md §4.4): Up/Down promote/move the
// selection to Navigation mode; Enter, only while Navigation is active,
// applies the selected suggestion. Any other key falls through so the
// AI panel composes with normal input editing instead of stealing focus.
func (m *Model) handleAIPopupKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	n := len(m.aiState.Suggestions)
	switch msg.Type {
	case tea.KeyUp:
		if n == 0 {
			return false, nil
		}
		m.aiState.Selection.NavigatePrev(n)
		return true, nil
	case tea.KeyDown:
		if n == 0 {
			return false, nil
		}
		m.aiState.Selection.NavigateNext(n)
		return true, nil
	case tea.KeyEnter:
		if !m.aiState.Selection.IsNavigationActive() {
			return false, nil
		}
		idx, ok := m.aiState.Selection.Selected()
		if !ok || idx < 0 || idx >= n {
			return false, nil
		}
		return true, m.applyAISuggestion(m.aiState.Suggestions[idx].Query)
	}
	return false, nil
}

// applyAISuggestion replaces the editor line wholesale with query,
// moves the cursor to the end, hides autocomplete, and executes the
// query immediately rather than waiting on the debounce — spec.md
// §4.4's Apply semantics.
func (m *Model) applyAISuggestion(query string) tea.Cmd {
	m.editor.Line.SetValue(query)
	m.autocompleteState.Hide()
	m.historyCycling = false
	if m.aiWorker != nil {
		if inFlight, ok := m.aiState.InFlightID(); ok {
			m.aiWorker.Submit(ai.CancelRequest(inFlight))
		}
	}
	return tea.Batch(m.submitQuery(query), m.scheduleAIDebounce())
}
