package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/schmitthub/jqview/internal/iostreams"
)

// ProgramOption configures a BubbleTea program.
type ProgramOption func(*programOptions)

type programOptions struct {
	altScreen   bool
	mouseMotion bool
	ctx         context.Context
}

func defaultProgramOptions() programOptions {
	return programOptions{}
}

// WithAltScreen enables or disables the alternate screen buffer.
func WithAltScreen(enabled bool) ProgramOption {
	return func(o *programOptions) {
		o.altScreen = enabled
	}
}

// WithMouseMotion enables or disables mouse motion events.
func WithMouseMotion(enabled bool) ProgramOption {
	return func(o *programOptions) {
		o.mouseMotion = enabled
	}
}

// WithContext ties the program's lifetime to ctx: cancellation (e.g. from
// signals.SetupSignalContext on SIGTERM) quits the program the same way a
// received SIGINT does, restoring the terminal before the process exits.
func WithContext(ctx context.Context) ProgramOption {
	return func(o *programOptions) {
		o.ctx = ctx
	}
}

// RunProgram creates and runs a BubbleTea program with the given IOStreams.
// It returns the final model state after the program exits.
func RunProgram(ios *iostreams.IOStreams, model tea.Model, opts ...ProgramOption) (tea.Model, error) {
	cfg := defaultProgramOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	teaOpts := []tea.ProgramOption{
		tea.WithInput(ios.In),
		tea.WithOutput(ios.ErrOut),
	}

	if cfg.altScreen {
		teaOpts = append(teaOpts, tea.WithAltScreen())
	}

	if cfg.mouseMotion {
		teaOpts = append(teaOpts, tea.WithMouseAllMotion())
	}

	if cfg.ctx != nil {
		teaOpts = append(teaOpts, tea.WithContext(cfg.ctx))
	}

	p := tea.NewProgram(model, teaOpts...)
	finalModel, err := p.Run()
	return finalModel, err
}
