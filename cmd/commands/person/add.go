package person

import (
	"fmt"
	"os"

	"serverbook/internal/domain"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/spf13/cobra"
)

// AddCommand returns the "person add" command.
func AddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a person",
		Long: `Register a person servers can be assigned to.

Without flags, an interactive form is shown. Example:
  serverbook person add --name Alice --email alice@example.com`,
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE:         runAdd,
	}

	cmd.Flags().String("name", "", "Person name (required unless interactive)")
	cmd.Flags().String("email", "", "Contact email")
	cmd.Flags().String("telegram", "", "Telegram handle")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	telegram, _ := cmd.Flags().GetString("telegram")

	if name == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("--name is required")
		}
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Name").Validate(huh.ValidateNotEmpty()).Value(&name),
				huh.NewInput().Title("Email").Value(&email),
				huh.NewInput().Title("Telegram").Value(&telegram),
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

	fields := domain.PersonFields{Name: &name}
	if email != "" {
		fields.Email = &email
	}
	if telegram != "" {
		fields.Telegram = &telegram
	}

	p, err := reg.Create(cmd.Context(), fields)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Person %q registered with ID %d\n", p.Name, p.ID)
	return nil
}
