package server

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"serverbook/internal/domain"

	"github.com/spf13/cobra"
)

// printJSON encodes a value as indented JSON to the command's stdout.
// Secrets are redacted by the secret.Text marshaller only in string
// contexts; JSON output carries the stored values for scripting.
func printJSON(cmd *cobra.Command, v any) {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

// printServers prints the server list as a table.
func printServers(cmd *cobra.Command, servers []domain.Server) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tPURPOSE\tPROVIDER\tOWNER\tIP\tCOST/MO")
	fmt.Fprintln(w, "--\t----\t------\t-------\t--------\t-----\t--\t-------")

	for _, s := range servers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Name, s.Status, s.Purpose,
			relName(s.Provider), ownName(s.Owner), s.IPPublic, costColumn(s))
	}

	w.Flush()
}

// printServerDetail prints a vertical key-value table of one server,
// followed by its cost history.
func printServerDetail(cmd *cobra.Command, s *domain.Server) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "  ID:\t%d\n", s.ID)
	fmt.Fprintf(w, "  Name:\t%s\n", s.Name)
	fmt.Fprintf(w, "  Hostname:\t%s\n", s.Hostname)
	fmt.Fprintf(w, "  Status:\t%s\n", s.Status)
	fmt.Fprintf(w, "  Purpose:\t%s\n", s.Purpose)
	fmt.Fprintf(w, "  Billing:\t%s\n", s.BillingType)

	if s.IPPublic != "" {
		fmt.Fprintf(w, "  Public IP:\t%s\n", s.IPPublic)
	}
	if s.IPPrivate != "" {
		fmt.Fprintf(w, "  Private IP:\t%s\n", s.IPPrivate)
	}
	if s.Port != nil {
		fmt.Fprintf(w, "  SSH port:\t%d\n", *s.Port)
	}
	if s.Username != "" {
		fmt.Fprintf(w, "  Username:\t%s\n", s.Username)
	}
	if s.Provider != nil {
		fmt.Fprintf(w, "  Provider:\t%s (ID %d)\n", s.Provider.Name, s.Provider.ID)
	}
	if s.Owner != nil {
		fmt.Fprintf(w, "  Owner:\t%s (ID %d)\n", s.Owner.Name, s.Owner.ID)
	}
	if s.OS != "" {
		fmt.Fprintf(w, "  OS:\t%s\n", s.OS)
	}
	if s.CPU != "" {
		fmt.Fprintf(w, "  CPU:\t%s\n", s.CPU)
	}
	if s.RAM != "" {
		fmt.Fprintf(w, "  RAM:\t%s\n", s.RAM)
	}
	if s.Storage != "" {
		fmt.Fprintf(w, "  Storage:\t%s\n", s.Storage)
	}
	if s.Location != "" {
		fmt.Fprintf(w, "  Location:\t%s\n", s.Location)
	}
	if s.CostMonthEstimated != nil {
		fmt.Fprintf(w, "  Est. cost/mo:\t%.2f\n", *s.CostMonthEstimated)
	}
	if s.DecommissionAt != nil {
		fmt.Fprintf(w, "  Decommission:\t%s\n", s.DecommissionAt.Format("2006-01-02"))
	}
	if s.Tags != "" {
		fmt.Fprintf(w, "  Tags:\t%s\n", s.Tags)
	}
	if s.Account != "" {
		fmt.Fprintf(w, "  Account:\t%s\n", s.Account)
	}
	if s.Description != "" {
		fmt.Fprintf(w, "  Description:\t%s\n", s.Description)
	}
	fmt.Fprintf(w, "  Created:\t%s\n", s.CreatedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	w.Flush()

	if len(s.CostSnapshots) == 0 {
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), "\n  Cost history:")
	w = tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "  MONTH\tCOST\tSOURCE")
	for _, snap := range s.CostSnapshots {
		fmt.Fprintf(w, "  %s\t%.2f\t%s\n", snap.Month.Format("2006-01"), snap.CostMonth, snap.Source)
	}
	w.Flush()
}

func relName(p *domain.Provider) string {
	if p == nil {
		return ""
	}
	return p.Name
}

func ownName(p *domain.Person) string {
	if p == nil {
		return ""
	}
	return p.Name
}

// costColumn formats the latest known cost, preferring snapshots over the
// operator's estimate.
func costColumn(s domain.Server) string {
	if len(s.CostSnapshots) > 0 {
		return fmt.Sprintf("%.2f", s.CostSnapshots[0].CostMonth)
	}
	if s.CostMonthEstimated != nil {
		return fmt.Sprintf("~%.2f", *s.CostMonthEstimated)
	}
	return ""
}
