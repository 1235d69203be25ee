package cost

import (
	"fmt"

	"serverbook/internal/domain"

	"github.com/spf13/cobra"
)

// AddCommand returns the "cost add" command.
func AddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "add",
		Short:        "Record a cost snapshot",
		Long:         `Record what a server cost for one month, e.g. from an invoice.`,
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range []string{"server", "month", "cost"} {
				if !cmd.Flags().Changed(name) {
					return fmt.Errorf("--%s is required", name)
				}
			}

			serverID, _ := cmd.Flags().GetInt64("server")
			month, _ := cmd.Flags().GetString("month")
			amount, _ := cmd.Flags().GetFloat64("cost")

			fields := domain.SnapshotFields{
				ServerID:  &serverID,
				Month:     &month,
				CostMonth: &amount,
			}
			if cmd.Flags().Changed("source") {
				source, _ := cmd.Flags().GetString("source")
				fields.Source = &source
			}

			reg, closeFn, err := openRegistry()
			if err != nil {
				return err
			}
			defer closeFn()

			snap, err := reg.Create(cmd.Context(), fields)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Snapshot recorded with ID %d (%s: %.2f)\n",
				snap.ID, snap.Month.Format("2006-01"), snap.CostMonth)
			return nil
		},
	}

	cmd.Flags().Int64("server", 0, "Server ID the snapshot belongs to")
	cmd.Flags().String("month", "", "Billing month, YYYY-MM")
	cmd.Flags().Float64("cost", 0, "Cost for the month")
	cmd.Flags().String("source", "", "Where the number came from, e.g. an invoice reference")

	return cmd
}
