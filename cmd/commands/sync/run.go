package sync

import (
	"fmt"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"serverbook/internal/hetzner"
	"serverbook/internal/inventory"
	"serverbook/internal/registry"
)

// RunCommand returns the "sync run" command.
func RunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Import servers and prices from Hetzner Cloud",
		Long: `Fetch the account's servers, match them to inventory records by public
IP and name, create or update them, and record a cost snapshot for the
current month from the server type's gross monthly price.`,
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := hetzner.NewKeyringStore().GetToken()
			if err != nil {
				return err
			}

			store, err := inventory.Open()
			if err != nil {
				return err
			}
			defer store.Close()

			im := hetzner.NewImporter(
				hetzner.NewCloudSource(token),
				registry.NewProviders(store),
				registry.NewServers(store),
				registry.NewCosts(store),
			)

			var (
				res    hetzner.Result
				runErr error
			)
			action := func() {
				res, runErr = im.Run(cmd.Context())
			}
			if err := spinner.New().Title("Importing from Hetzner Cloud...").Action(action).Run(); err != nil {
				return err
			}
			if runErr != nil {
				return runErr
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Import complete: %d created, %d updated, %d snapshot(s) recorded\n",
				res.Created, res.Updated, res.Snapshots)
			return nil
		},
	}

	return cmd
}
