// Package sync holds commands for pulling provider data into the inventory.
package sync

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "sync" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync the inventory with Hetzner Cloud",
		Long: `Pull servers and monthly prices from the Hetzner Cloud account into
the inventory. Store the API token once with "sync login".`,
	}

	cmd.AddCommand(RunCommand())
	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(LogoutCommand())

	return cmd
}
