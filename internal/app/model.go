// Package app is the Bubble Tea orchestrator: it owns every subsystem
// package (editor, query, autocomplete, ai, popup, results, history,
// snippets, clipboard) and wires them together through the precedence-
// ladder key dispatch, the query/AI worker channel bridges, and the
// status-bar stats tracker. Grounded throughout on the teacher's
// internal/tui dashboards (Model/Update/View, channel-to-tea.Cmd
// bridging), adapted to a single-pane editor+results layout instead of
// a multi-widget dashboard.
package app

import (
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/schmitthub/jqview/internal/ai"
	"github.com/schmitthub/jqview/internal/ai/provider"
	"github.com/schmitthub/jqview/internal/autocomplete"
	"github.com/schmitthub/jqview/internal/cancel"
	"github.com/schmitthub/jqview/internal/clipboard"
	"github.com/schmitthub/jqview/internal/cmdutil"
	"github.com/schmitthub/jqview/internal/config"
	"github.com/schmitthub/jqview/internal/editor"
	"github.com/schmitthub/jqview/internal/history"
	"github.com/schmitthub/jqview/internal/iostreams"
	"github.com/schmitthub/jqview/internal/jsonvalue"
	"github.com/schmitthub/jqview/internal/popup"
	"github.com/schmitthub/jqview/internal/query"
	"github.com/schmitthub/jqview/internal/results"
	"github.com/schmitthub/jqview/internal/snippets"
	"github.com/schmitthub/jqview/internal/tui"
)

// Focus identifies which submachine keys not absorbed by a popup or
// global shortcut are routed to (spec.md §4.1 tier 4).
type Focus int

const (
	FocusInput Focus = iota
	FocusResults
)

// OutputMode selects what cmd/jqview's caller prints to stdout once the
// program exits, per spec.md §6.1.
type OutputMode int

const (
	OutputNone OutputMode = iota
	OutputResult
	OutputQuery
)

// Model is the top-level Bubble Tea model. Every field below is owned
// and mutated only on the UI goroutine; workers communicate strictly
// through channels bridged by the query.ResponseMsg / ai.ResponseMsg
// tea.Cmd pattern (internal/query/worker.go, internal/ai/worker.go).
type Model struct {
	ios *iostreams.IOStreams
	cfg config.Config

	originalJSON *jsonvalue.Value

	editor *editor.Editor
	focus  Focus

	queryWorker    *query.Worker
	queryDebouncer *query.Debouncer
	version        uint64
	cancelTok      *cancel.Token

	result    query.Preprocessed
	hasResult bool
	lastErr   string
	hasErr    bool

	lastSuccessful    query.Preprocessed
	hasLastSuccessful bool

	baseQueryForSuggestions string
	baseTypeForSuggestions  jsonvalue.ResultType

	showErrorOverlay bool

	popups *popup.Coordinator

	historyState      *history.State
	historyCycling    bool
	historyCycleIdx   int
	historyCycleStash string

	snippetsState   *snippets.State
	snippetsWatcher *snippets.Watcher

	autocompleteState       *autocomplete.State
	lastAutocompleteCtx     autocomplete.SuggestionContext
	lastAutocompletePartial string

	aiState      *ai.State
	aiWorker     *ai.Worker
	aiConfigured bool
	aiDebouncer  *query.Debouncer

	clip clipboard.Clipboard

	resultsPane results.Pane
	resultsCur  *results.CursorState
	resultsScrl *results.ScrollState
	searchState *results.SearchState

	tooltip    autocomplete.Tooltip
	hasTooltip bool

	spinner tui.SpinnerModel

	helpVisible bool
	helpScroll  int

	stats Stats

	width, height int

	quitting   bool
	outputMode OutputMode
	finalText  string
}

// New constructs the orchestrator Model from shared Factory
// dependencies and the parsed source JSON document. The AI worker is
// only constructed when credentials are present (spec.md §3.6's
// configured-only lifecycle) — an unconfigured install never spins up
// the goroutine, it just never has anything to submit to. The AI state
// is always constructed.
func New(f *cmdutil.Factory, root jsonvalue.Value) (*Model, error) {
	cur := results.New()
	scrl := &results.ScrollState{}

	histState, err := f.History()
	if err != nil {
		return nil, err
	}
	snipState, err := f.Snippets()
	if err != nil {
		return nil, err
	}

	watcher, err := snippets.Watch(f.Config.SnippetsFile(), func() { _ = snipState.Load() })
	if err != nil {
		watcher = nil
	}

	coord := popup.New()
	coord.Register(popup.KindHistory, func() { histState.Close() })
	coord.Register(popup.KindSnippets, func() { snipState.Close() })

	aiCfg, err := f.Config.AIConfig()
	if err != nil {
		return nil, err
	}
	configured := aiCfg.APIKey != ""
	aiSt := ai.New(configured, configured)
	if aiCfg.WordLimit > 0 {
		aiSt.WordLimit = aiCfg.WordLimit
	}
	coord.Register(popup.KindAI, func() { aiSt.Visible = false })

	var aiWorker *ai.Worker
	if configured {
		var p provider.Provider
		pc := provider.Config{APIKey: aiCfg.APIKey, Model: aiCfg.Model, BaseURL: aiCfg.BaseURL}
		switch aiCfg.Provider {
		case "anthropic":
			p = provider.NewAnthropic(pc)
		default:
			p = provider.NewOpenAICompatible(pc)
		}
		aiWorker = ai.NewWorker(p, &http.Client{Timeout: 60 * time.Second})
	}

	m := &Model{
		ios:               f.IOStreams,
		cfg:               f.Config,
		originalJSON:      &root,
		editor:            editor.NewEditor(),
		focus:             FocusInput,
		queryWorker:       query.NewWorker(f.Evaluator()),
		queryDebouncer:    query.NewDebouncer(f.Config.QueryDebounce()),
		cancelTok:         cancel.New(),
		popups:            coord,
		historyState:      histState,
		historyCycleIdx:   -1,
		snippetsState:     snipState,
		snippetsWatcher:   watcher,
		autocompleteState: autocomplete.New(),
		aiState:           aiSt,
		aiWorker:          aiWorker,
		aiConfigured:      configured,
		aiDebouncer:       query.NewDebouncer(f.Config.AIDebounce()),
		clip:              f.Clipboard(),
		resultsCur:        cur,
		resultsScrl:       scrl,
		searchState:       results.NewSearch(),
		spinner:           tui.NewDefaultSpinner(""),
	}
	m.resultsPane = results.Pane{Cursor: m.resultsCur, Scroll: m.resultsScrl}
	return m, nil
}

// Outcome reports what cmd/jqview should do with stdout after the
// program exits: OutputNone means nothing should be printed and the
// process should exit non-zero (spec.md §6.1).
func (m *Model) Outcome() (OutputMode, string) {
	return m.outputMode, m.finalText
}

// Init kicks off the initial root-filter query and arms the worker
// response listeners, mirroring the teacher's loopdash Init: one
// waitForLoopEvent(ch) tea.Cmd per channel, re-issued after every
// receipt.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		query.WaitForResponse(m.queryWorker.Responses()),
		m.submitQuery("."),
		m.spinner.Init(),
	}
	if m.aiWorker != nil {
		cmds = append(cmds, ai.WaitForResponse(m.aiWorker.Responses()))
	}
	return tea.Batch(cmds...)
}
