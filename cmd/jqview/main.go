// Command jqview reads a JSON document from stdin and opens an
// interactive editor for building jq filter expressions against it.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/schmitthub/jqview/internal/cmd/root"
	"github.com/schmitthub/jqview/internal/cmdutil"
	"github.com/schmitthub/jqview/internal/config"
	"github.com/schmitthub/jqview/internal/iostreams"
	"github.com/schmitthub/jqview/internal/logger"
)

// version and commit are overridden at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	os.Exit(run())
}

func run() int {
	defer logger.Close()

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "jqview: loading configuration: %v\n", err)
		return 1
	}

	f := cmdutil.New(version, commit, cfg)

	rootCmd := root.NewCmdRoot(f)
	rootCmd.SilenceErrors = true

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		if !errors.Is(err, cmdutil.SilentError) {
			printError(f.IOStreams.ErrOut, f.IOStreams.ColorScheme(), err, cmd)
		}

		var exitErr *cmdutil.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return 1
	}

	return 0
}

// userFormattedError is a duck-typed interface for errors that provide
// their own rich user-facing rendering.
type userFormattedError interface {
	FormatUserError() string
}

func printError(out io.Writer, cs *iostreams.ColorScheme, err error, cmd *cobra.Command) {
	var flagErr *cmdutil.FlagError
	var ufErr userFormattedError

	switch {
	case errors.As(err, &flagErr):
		fmt.Fprintln(out, err)
		fmt.Fprintln(out)
		fmt.Fprintln(out, cmd.UsageString())
		fmt.Fprintf(out, "\nRun '%s --help' for more information.\n", cmd.CommandPath())
	case errors.As(err, &ufErr):
		fmt.Fprint(out, ufErr.FormatUserError())
	default:
		fmt.Fprintf(out, "%s %s\n", cs.FailureIcon(), err)
	}
}
