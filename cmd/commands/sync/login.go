package sync

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"serverbook/internal/hetzner"
)

// LoginCommand returns the "sync login" command.
func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the Hetzner Cloud API token",
		Long: `Store a Hetzner Cloud API token in the OS keychain. With no --token
flag the token is read from the terminal without echo.`,
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, _ := cmd.Flags().GetString("token")
			if token == "" {
				if !term.IsTerminal(int(os.Stdin.Fd())) {
					return fmt.Errorf("--token is required when not running in a terminal")
				}
				fmt.Fprint(cmd.OutOrStdout(), "Enter API token: ")
				raw, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(cmd.OutOrStdout())
				if err != nil {
					return err
				}
				token = strings.TrimSpace(string(raw))
			}
			if token == "" {
				return fmt.Errorf("token must not be empty")
			}

			if err := hetzner.NewKeyringStore().SetToken(token); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Token stored in the OS keychain")
			return nil
		},
	}

	cmd.Flags().String("token", "", "API token (prefer the interactive prompt)")

	return cmd
}
