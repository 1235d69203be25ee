package cost

import (
	"fmt"

	"serverbook/internal/domain"

	"github.com/spf13/cobra"
)

// ListCommand returns the "cost list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List cost snapshots",
		Long:         `List cost snapshots, newest month first, optionally filtered by server.`,
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, closeFn, err := openRegistry()
			if err != nil {
				return err
			}
			defer closeFn()

			var list []domain.CostSnapshot
			if serverID, _ := cmd.Flags().GetInt64("server"); serverID != 0 {
				list, err = reg.ListByServer(cmd.Context(), serverID)
			} else {
				list, err = reg.List(cmd.Context())
			}
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				printJSON(cmd, list)
				return nil
			}

			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No cost snapshots recorded.")
				return nil
			}
			printSnapshots(cmd, list)
			return nil
		},
	}

	cmd.Flags().Int64("server", 0, "Only snapshots for this server ID")
	cmd.Flags().Bool("json", false, "Output as JSON")

	return cmd
}
