// Package snippets provides the "jqview snippets" command group.
package snippets

import (
	"github.com/spf13/cobra"

	"github.com/schmitthub/jqview/internal/cmd/snippets/list"
	"github.com/schmitthub/jqview/internal/cmdutil"
)

// NewCmdSnippets creates the "snippets" command.
func NewCmdSnippets(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snippets",
		Short: "Inspect saved query snippets",
	}
	cmd.AddCommand(list.NewCmd(f))
	return cmd
}
