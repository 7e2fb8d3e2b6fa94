// Package check implements "jqview config check", grounded on the
// teacher's internal/cmd/config/check: validating the settings file
// and reporting the resolved values a run would actually use. jqview's
// config has no semantic Validator (no required fields, no referenced
// paths to check) — there is nothing to get semantically wrong in a
// flat debounce/provider/path settings file — so this command's job is
// narrower than the teacher's: confirm the file parses and surface
// what was resolved, including env-var overrides.
package check

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/jqview/internal/cmdutil"
	"github.com/schmitthub/jqview/internal/config"
)

// NewCmdCheck creates the "config check" command.
func NewCmdCheck(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate jqview's settings file and print the resolved configuration",
		Long: `Loads ~/.config/jqview/settings.yaml (merged with any JQVIEW_-prefixed
environment variables) and prints the values a run would actually use.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}
	return cmd
}

func run(f *cmdutil.Factory) error {
	ios := f.IOStreams
	cs := ios.ColorScheme()

	path := config.SettingsFile()
	cfg := f.Config

	fmt.Fprintf(ios.ErrOut, "%s %s\n\n", cs.SuccessIcon(), path)
	fmt.Fprintf(ios.ErrOut, "  query.debounce:  %s\n", cfg.QueryDebounce())
	fmt.Fprintf(ios.ErrOut, "  ai.debounce:     %s\n", cfg.AIDebounce())
	fmt.Fprintf(ios.ErrOut, "  ai.provider:     %s\n", cfg.AIProvider())
	fmt.Fprintf(ios.ErrOut, "  ai.model:        %s\n", cfg.AIModel())
	fmt.Fprintf(ios.ErrOut, "  ai.configured:   %t\n", cfg.AIAPIKey() != "")
	fmt.Fprintf(ios.ErrOut, "  clipboard:       %s\n", cfg.ClipboardBackend())
	fmt.Fprintf(ios.ErrOut, "  history.file:    %s\n", cfg.HistoryFile())
	fmt.Fprintf(ios.ErrOut, "  snippets.file:   %s\n", cfg.SnippetsFile())
	fmt.Fprintf(ios.ErrOut, "  autocomplete.sample_size: %d\n", cfg.AutocompleteSampleSize())

	return nil
}
