package server

import (
	"serverbook/internal/inventory"
	"serverbook/internal/registry"

	"github.com/spf13/cobra"
)

// NewCommand returns the "server" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "server",
		Aliases: []string{"servers"},
		Short:   "Manage the server inventory",
		Long:    `Register, list, inspect, and remove servers in the inventory.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(AddCommand())
	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(RmCommand())
	cmd.AddCommand(BrowseCommand())

	return cmd
}

// openRegistry opens the inventory and returns the server registry plus a
// close func.
func openRegistry() (*registry.Servers, func(), error) {
	store, err := inventory.Open()
	if err != nil {
		return nil, nil, err
	}
	return registry.NewServers(store), func() { store.Close() }, nil
}
