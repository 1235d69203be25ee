package server

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/spf13/cobra"
)

// RmCommand returns the "server rm" command.
func RmCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a server",
		Long: `Remove a server from the inventory. Its cost history is removed with
it.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			reg, closeFn, err := openRegistry()
			if err != nil {
				return err
			}
			defer closeFn()

			s, err := reg.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				var confirmed bool
				prompt := huh.NewConfirm().
					Title(fmt.Sprintf("Remove server %q and its %d cost snapshot(s)?", s.Name, len(s.CostSnapshots))).
					Value(&confirmed)
				if err := prompt.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := reg.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Server %q removed\n", s.Name)
			return nil
		},
	}

	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	return cmd
}
