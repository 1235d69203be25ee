package config

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "config" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage persistent configuration",
		Long:  `Get and set persistent configuration values such as the database location.`,
	}

	cmd.AddCommand(GetCommand())
	cmd.AddCommand(SetCommand())
	cmd.AddCommand(PathCommand())

	return cmd
}
