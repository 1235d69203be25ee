package provider

import (
	"fmt"
	"os"

	"serverbook/internal/domain"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/spf13/cobra"
)

// AddCommand returns the "provider add" command.
func AddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a provider",
		Long: `Register a hosting provider.

Without flags, an interactive form is shown. Example:
  serverbook provider add --name Hetzner --console-url https://console.hetzner.cloud`,
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE:         runAdd,
	}

	cmd.Flags().String("name", "", "Provider name (required unless interactive)")
	cmd.Flags().String("console-url", "", "Management console URL")
	cmd.Flags().String("notes", "", "Free-form notes")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	consoleURL, _ := cmd.Flags().GetString("console-url")
	notes, _ := cmd.Flags().GetString("notes")

	if name == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("--name is required")
		}
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Name").Validate(huh.ValidateNotEmpty()).Value(&name),
				huh.NewInput().Title("Console URL").Value(&consoleURL),
				huh.NewInput().Title("Notes").Value(&notes),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	reg, closeFn, err := openRegistry()
	if err != nil {
		return err
	}
	defer closeFn()

	fields := domain.ProviderFields{Name: &name}
	if consoleURL != "" {
		fields.ConsoleURL = &consoleURL
	}
	if notes != "" {
		fields.Notes = &notes
	}

	p, err := reg.Create(cmd.Context(), fields)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Provider %q registered with ID %d\n", p.Name, p.ID)
	return nil
}
