// Package history provides the "jqview history" command group.
package history

import (
	"github.com/spf13/cobra"

	"github.com/schmitthub/jqview/internal/cmd/history/list"
	"github.com/schmitthub/jqview/internal/cmdutil"
)

// NewCmdHistory creates the "history" command.
func NewCmdHistory(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect saved query history",
	}
	cmd.AddCommand(list.NewCmd(f))
	return cmd
}
