// Package config provides the "jqview config" command group, grounded
// on the teacher's internal/cmd/config/config.go.
package config

import (
	"github.com/spf13/cobra"

	"github.com/schmitthub/jqview/internal/cmd/config/check"
	"github.com/schmitthub/jqview/internal/cmdutil"
)

// NewCmdConfig creates the "config" command.
func NewCmdConfig(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect jqview's configuration",
	}
	cmd.AddCommand(check.NewCmdCheck(f))
	return cmd
}
