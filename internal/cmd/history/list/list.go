// Package list implements "jqview history list", grounded on the
// teacher's internal/cmd/volume/list pattern (tabwriter table, -q for
// names only).
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/jqview/internal/cmdutil"
)

// Options holds the list command's flags.
type Options struct {
	Quiet bool
}

// NewCmd creates the "history list" command.
func NewCmd(f *cmdutil.Factory) *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved query history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Only print the query text")

	return cmd
}

func run(f *cmdutil.Factory, opts *Options) error {
	ios := f.IOStreams

	hs, err := f.History()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}
	hs.SetSearchQuery("")
	entries := hs.VisibleEntries()

	if len(entries) == 0 {
		fmt.Fprintln(ios.ErrOut, "No history entries.")
		return nil
	}

	if opts.Quiet {
		for _, e := range entries {
			fmt.Fprintln(ios.Out, e.Entry)
		}
		return nil
	}

	table := ios.NewTablePrinter("#", "QUERY")
	for _, e := range entries {
		table.AddRow(fmt.Sprintf("%d", e.DisplayIndex), e.Entry)
	}
	return table.Render()
}
