package person

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

// printPeople prints the person list as a table.
func printPeople(cmd *cobra.Command, people []domain.Person) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSERVERS\tEMAIL\tTELEGRAM")
	fmt.Fprintln(w, "--\t----\t-------\t-----\t--------")

	for _, p := range people {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
			p.ID, p.Name, p.ServerCount, p.Email, p.Telegram)
	}

	w.Flush()
}

// printPersonDetail prints a vertical key-value view of one person,
// including the servers they own.
func printPersonDetail(cmd *cobra.Command, p *domain.Person) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "  ID:\t%d\n", p.ID)
	fmt.Fprintf(w, "  Name:\t%s\n", p.Name)
	if p.Email != "" {
		fmt.Fprintf(w, "  Email:\t%s\n", p.Email)
	}
	if p.Telegram != "" {
		fmt.Fprintf(w, "  Telegram:\t%s\n", p.Telegram)
	}
	fmt.Fprintf(w, "  Created:\t%s\n", p.CreatedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	w.Flush()

	if len(p.ServersOwned) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "\n  No servers assigned.")
		return
	}

	fmt.Fprintln(cmd.OutOrStdout())
	w = tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "  ID\tNAME\tSTATUS\tIP")
	for _, s := range p.ServersOwned {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\n", s.ID, s.Name, s.Status, s.IPPublic)
	}
	w.Flush()
}
