package cost

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"serverbook/internal/domain"

	"github.com/spf13/cobra"
)

// printJSON encodes a value as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

// printSnapshots prints the snapshot list as a table.
func printSnapshots(cmd *cobra.Command, snapshots []domain.CostSnapshot) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tMONTH\tCOST\tSERVER\tSOURCE")
	fmt.Fprintln(w, "--\t-----\t----\t------\t------")

	for _, s := range snapshots {
		server := ""
		if s.Server != nil {
			server = s.Server.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\t%s\n",
			s.ID, s.Month.Format("2006-01"), s.CostMonth, server, s.Source)
	}

	w.Flush()
}

// printSnapshotDetail prints a vertical key-value view of one snapshot.
func printSnapshotDetail(cmd *cobra.Command, s *domain.CostSnapshot) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "  ID:\t%d\n", s.ID)
	fmt.Fprintf(w, "  Month:\t%s\n", s.Month.Format("2006-01"))
	fmt.Fprintf(w, "  Cost:\t%.2f\n", s.CostMonth)
	if s.Source != "" {
		fmt.Fprintf(w, "  Source:\t%s\n", s.Source)
	}
	if s.Server != nil {
		fmt.Fprintf(w, "  Server:\t%s (ID %d)\n", s.Server.Name, s.Server.ID)
	}
	fmt.Fprintf(w, "  Recorded:\t%s\n", s.CreatedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	w.Flush()
}
