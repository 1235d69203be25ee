package provider

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

// printProviders prints the provider list as a table.
func printProviders(cmd *cobra.Command, providers []domain.Provider) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSERVERS\tCONSOLE\tNOTES")
	fmt.Fprintln(w, "--\t----\t-------\t-------\t-----")

	for _, p := range providers {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
			p.ID, p.Name, p.ServerCount, p.ConsoleURL, p.Notes)
	}

	w.Flush()
}

// printProviderDetail prints a vertical key-value view of one provider,
// including its servers.
func printProviderDetail(cmd *cobra.Command, p *domain.Provider) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "  ID:\t%d\n", p.ID)
	fmt.Fprintf(w, "  Name:\t%s\n", p.Name)
	if p.ConsoleURL != "" {
		fmt.Fprintf(w, "  Console:\t%s\n", p.ConsoleURL)
	}
	if p.Notes != "" {
		fmt.Fprintf(w, "  Notes:\t%s\n", p.Notes)
	}
	fmt.Fprintf(w, "  Created:\t%s\n", p.CreatedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	w.Flush()

	if len(p.Servers) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "\n  No servers on this provider.")
		return
	}

	fmt.Fprintln(cmd.OutOrStdout())
	w = tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "  ID\tNAME\tSTATUS\tIP")
	for _, s := range p.Servers {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\n", s.ID, s.Name, s.Status, s.IPPublic)
	}
	w.Flush()
}
