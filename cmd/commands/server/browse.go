package server

import (
	"serverbook/internal/tui"

	"github.com/spf13/cobra"
)

// BrowseCommand returns the "server browse" command.
func BrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "browse",
		Short:        "Browse the inventory interactively",
		Long:         `Open a full-screen browser over the inventory with per-server cost history.`,
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, closeFn, err := openRegistry()
			if err != nil {
				return err
			}
			defer closeFn()

			return tui.RunBrowse(reg)
		},
	}
}
