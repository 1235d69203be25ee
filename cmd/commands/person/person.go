package person

import (
	"serverbook/internal/inventory"
	"serverbook/internal/registry"

	"github.com/spf13/cobra"
)

// NewCommand returns the "person" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "person",
		Aliases: []string{"people"},
		Short:   "Manage server owners",
		Long:    `Register, list, and remove the people servers are assigned to.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(AddCommand())
	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(RmCommand())

	return cmd
}

// openRegistry opens the inventory and returns the people registry plus a
// close func.
func openRegistry() (*registry.People, func(), error) {
	store, err := inventory.Open()
	if err != nil {
		return nil, nil, err
	}
	return registry.NewPeople(store), func() { store.Close() }, nil
}
