package server

import (
	"strconv"

	"github.com/spf13/cobra"
)

// ShowCommand returns the "server show" command.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "show <id>",
		Short:        "Show a server and its cost history",
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

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				printJSON(cmd, s)
				return nil
			}
			printServerDetail(cmd, s)
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Output as JSON")

	return cmd
}
