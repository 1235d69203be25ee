package sync

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"serverbook/internal/hetzner"
)

// LogoutCommand returns the "sync logout" command.
func LogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "logout",
		Short:        "Remove the stored API token",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := hetzner.NewKeyringStore().DeleteToken()
			if errors.Is(err, hetzner.ErrTokenNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "No token stored.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Token removed")
			return nil
		},
	}
}
