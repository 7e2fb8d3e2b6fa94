// Package root assembles the jqview cobra command tree, grounded on the
// teacher's internal/cmd/root/root.go: a PersistentPreRunE that brings
// up file logging before any subcommand runs, global flags bound
// straight to the Factory, and the default (no-subcommand) action
// wired directly into RunE rather than split into its own pkg/cmd
// package — jqview has exactly one primary action, not a management
// surface of many equally-weighted verbs.
package root

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/schmitthub/jqview/internal/app"
	"github.com/schmitthub/jqview/internal/cmd/config"
	"github.com/schmitthub/jqview/internal/cmd/history"
	"github.com/schmitthub/jqview/internal/cmd/snippets"
	"github.com/schmitthub/jqview/internal/cmdutil"
	internalconfig "github.com/schmitthub/jqview/internal/config"
	"github.com/schmitthub/jqview/internal/jsonvalue"
	"github.com/schmitthub/jqview/internal/logger"
	"github.com/schmitthub/jqview/internal/signals"
	"github.com/schmitthub/jqview/internal/tui"
)

// NewCmdRoot creates the root jqview command: reading stdin and
// launching the TUI is its default RunE, with config/history/snippets
// as non-interactive subcommands operating on the same packages
// without ever constructing the Bubble Tea model (spec.md §6.1).
func NewCmdRoot(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jqview",
		Short: "Interactively explore jq queries against JSON on stdin",
		Long: `jqview reads a JSON document from stdin and opens an interactive
editor for building jq filter expressions against it, live-previewing
the result as you type.

  Enter              print the filtered result and exit
  Shift-Enter/Alt-Enter/Ctrl-Q   print the query string itself and exit
  Ctrl-C / q         exit without printing anything`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeLogger(f.Debug)
			logger.Debug().Str("version", f.Version).Bool("debug", f.Debug).Msg("jqview starting")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDefault(cmd, f)
		},
		Version: f.Version,
	}

	cmd.PersistentFlags().BoolVarP(&f.Debug, "debug", "D", false, "Enable debug logging")

	cmd.AddCommand(config.NewCmdConfig(f))
	cmd.AddCommand(history.NewCmdHistory(f))
	cmd.AddCommand(snippets.NewCmdSnippets(f))

	return cmd
}

// initializeLogger brings up file logging, falling back to a nop
// logger on any setup failure rather than refusing to start.
func initializeLogger(debug bool) {
	logsDir, err := internalconfig.LogsDir()
	if err != nil {
		logger.Init()
		return
	}
	fileEnabled := true
	if err := logger.NewLogger(&logger.Options{
		LogsDir: logsDir,
		FileConfig: &logger.LoggingConfig{
			FileEnabled: &fileEnabled,
			MaxSizeMB:   10,
			MaxAgeDays:  30,
			MaxBackups:  3,
		},
	}); err != nil {
		logger.Init()
		logger.Warn().Err(err).Msg("file logging unavailable")
	}
	_ = debug
}

// runDefault reads the source JSON document from stdin, launches the
// TUI, and renders the three-way stdout contract from spec.md §6.1
// once it exits.
func runDefault(cmd *cobra.Command, f *cmdutil.Factory) error {
	data, err := io.ReadAll(f.IOStreams.In)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		fmt.Fprintln(f.IOStreams.ErrOut, "jqview: no input on stdin")
		return cmdutil.SilentError
	}
	if !utf8.Valid(data) {
		fmt.Fprintln(f.IOStreams.ErrOut, "jqview: stdin is not valid UTF-8")
		return cmdutil.SilentError
	}

	var root jsonvalue.Value
	if err := sonic.Unmarshal(data, &root); err != nil {
		fmt.Fprintf(f.IOStreams.ErrOut, "jqview: invalid JSON on stdin: %s\n", err)
		return cmdutil.SilentError
	}

	m, err := app.New(f, root)
	if err != nil {
		return fmt.Errorf("initializing: %w", err)
	}

	// SIGINT is already handled by Bubble Tea as a Ctrl-C key event; this
	// context additionally catches SIGTERM (e.g. from a process manager)
	// so the terminal is restored instead of left in raw/alt-screen mode.
	ctx, cancel := signals.SetupSignalContext(cmd.Context())
	defer cancel()

	finalModel, err := tui.RunProgram(f.IOStreams, m,
		tui.WithAltScreen(true), tui.WithMouseMotion(true), tui.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("running: %w", err)
	}

	result, ok := finalModel.(*app.Model)
	if !ok {
		return fmt.Errorf("unexpected program model type %T", finalModel)
	}

	mode, text := result.Outcome()
	switch mode {
	case app.OutputResult, app.OutputQuery:
		fmt.Fprintln(f.IOStreams.Out, text)
		return nil
	default:
		return cmdutil.SilentError
	}
}
