package person

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListCommand returns the "person list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List all people",
		Long:         `List all registered people with their server counts, ordered by name.`,
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, closeFn, err := openRegistry()
			if err != nil {
				return err
			}
			defer closeFn()

			people, err := reg.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				printJSON(cmd, people)
				return nil
			}

			if len(people) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No people registered.")
				return nil
			}
			printPeople(cmd, people)
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Output as JSON")

	return cmd
}
