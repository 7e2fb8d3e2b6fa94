package cmdutil

import (
	"os"
	"sync"

	"github.com/schmitthub/jqview/internal/clipboard"
	"github.com/schmitthub/jqview/internal/config"
	"github.com/schmitthub/jqview/internal/evaluator"
	"github.com/schmitthub/jqview/internal/history"
	"github.com/schmitthub/jqview/internal/iostreams"
	"github.com/schmitthub/jqview/internal/snippets"
)

// Factory provides shared dependencies for the jqview CLI, grounded on
// the teacher's internal/cmdutil/factory.go: lazy initialization for
// resources that do I/O (history/snippets file loads), eager
// initialization for cheap ones (IOStreams, Config).
type Factory struct {
	Version string
	Commit  string
	Debug   bool

	IOStreams *iostreams.IOStreams
	Config    config.Config

	evaluatorOnce sync.Once
	evaluatorImpl evaluator.Evaluator

	clipboardOnce sync.Once
	clipboardImpl clipboard.Clipboard

	historyOnce sync.Once
	historyData *history.State
	historyErr  error

	snippetsOnce sync.Once
	snippetsData *snippets.State
	snippetsErr  error
}

// New creates a Factory, auto-detecting terminal color/TTY support the
// same way the teacher's Factory constructor does.
func New(version, commit string, cfg config.Config) *Factory {
	ios := iostreams.NewIOStreams()

	if ios.IsOutputTTY() {
		ios.DetectTerminalTheme()
		if os.Getenv("NO_COLOR") != "" {
			ios.SetColorEnabled(false)
		}
	} else {
		ios.SetColorEnabled(false)
	}

	return &Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: ios,
		Config:    cfg,
	}
}

// Evaluator returns the lazily-constructed jq Evaluator. Executing the
// jq language itself is a spec Non-goal, so this is the StubEvaluator
// seam — a real binding would replace this one line.
func (f *Factory) Evaluator() evaluator.Evaluator {
	f.evaluatorOnce.Do(func() {
		f.evaluatorImpl = evaluator.NewStub()
	})
	return f.evaluatorImpl
}

// Clipboard returns the configured clipboard backend, honoring
// Config.ClipboardBackend() ("osc52" by default; anything else falls
// back to an in-memory no-op rather than failing startup).
func (f *Factory) Clipboard() clipboard.Clipboard {
	f.clipboardOnce.Do(func() {
		switch f.Config.ClipboardBackend() {
		case "osc52":
			f.clipboardImpl = clipboard.NewOSC52(f.IOStreams.Out, clipboard.TermPlain)
		default:
			f.clipboardImpl = clipboard.NewMemory()
		}
	})
	return f.clipboardImpl
}

// History returns the lazily-loaded, disk-backed history popup state.
func (f *Factory) History() (*history.State, error) {
	f.historyOnce.Do(func() {
		f.historyData = history.New(f.Config.HistoryFile())
		f.historyErr = f.historyData.Load()
	})
	return f.historyData, f.historyErr
}

// Snippets returns the lazily-loaded, disk-backed snippet library
// state.
func (f *Factory) Snippets() (*snippets.State, error) {
	f.snippetsOnce.Do(func() {
		f.snippetsData = snippets.New(f.Config.SnippetsFile())
		f.snippetsErr = f.snippetsData.Load()
	})
	return f.snippetsData, f.snippetsErr
}
