package provider

import (
	"serverbook/internal/inventory"
	"serverbook/internal/registry"

	"github.com/spf13/cobra"
)

// NewCommand returns the "provider" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "provider",
		Aliases: []string{"providers"},
		Short:   "Manage hosting providers",
		Long:    `Register, list, and remove the hosting providers servers are rented from.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(AddCommand())
	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(RmCommand())

	return cmd
}

// openRegistry opens the inventory and returns the provider registry plus
// a close func.
func openRegistry() (*registry.Providers, func(), error) {
	store, err := inventory.Open()
	if err != nil {
		return nil, nil, err
	}
	return registry.NewProviders(store), func() { store.Close() }, nil
}
