// Package list implements "jqview snippets list".
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

// NewCmd creates the "snippets list" command.
func NewCmd(f *cmdutil.Factory) *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved query snippets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Only print snippet names")

	return cmd
}

func run(f *cmdutil.Factory, opts *Options) error {
	ios := f.IOStreams

	ss, err := f.Snippets()
	if err != nil {
		return fmt.Errorf("loading snippets: %w", err)
	}
	ss.SetSearchQuery("")
	snaps := ss.FilteredSnippets()

	if len(snaps) == 0 {
		fmt.Fprintln(ios.ErrOut, "No snippets saved.")
		return nil
	}

	if opts.Quiet {
		for _, sn := range snaps {
			fmt.Fprintln(ios.Out, sn.Name)
		}
		return nil
	}

	table := ios.NewTablePrinter("NAME", "QUERY", "DESCRIPTION")
	for _, sn := range snaps {
		table.AddRow(sn.Name, sn.Query, sn.Description)
	}
	return table.Render()
}
