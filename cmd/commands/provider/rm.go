package provider

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/spf13/cobra"
)

// RmCommand returns the "provider rm" command.
func RmCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a provider",
		Long: `Remove a provider. Its servers stay in the inventory but become
unassigned.`,
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

			p, err := reg.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				var confirmed bool
				prompt := huh.NewConfirm().
					Title(fmt.Sprintf("Remove provider %q? Its %d server(s) will become unassigned.", p.Name, len(p.Servers))).
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
			fmt.Fprintf(cmd.OutOrStdout(), "Provider %q removed\n", p.Name)
			return nil
		},
	}

	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	return cmd
}
