package cost

import (
	"serverbook/internal/inventory"
	"serverbook/internal/registry"

	"github.com/spf13/cobra"
)

// NewCommand returns the "cost" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cost",
		Aliases: []string{"costs"},
		Short:   "Manage monthly cost snapshots",
		Long:    `Record, list, and remove per-month cost snapshots for servers.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(AddCommand())
	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(RmCommand())

	return cmd
}

// openRegistry opens the inventory and returns the cost registry plus a
// close func.
func openRegistry() (*registry.Costs, func(), error) {
	store, err := inventory.Open()
	if err != nil {
		return nil, nil, err
	}
	return registry.NewCosts(store), func() { store.Close() }, nil
}
