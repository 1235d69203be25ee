// Package serve runs the REST API over the inventory.
package serve

import (
	"fmt"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"serverbook/internal/config"
	"serverbook/internal/httpapi"
	"serverbook/internal/inventory"
)

// NewCommand returns the "serve" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the inventory over HTTP",
		Long: `Start the REST API. The listen address comes from --listen, then the
"listen" configuration key, then the built-in default.`,
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			addr, _ := cmd.Flags().GetString("listen")
			if addr == "" {
				addr = cfg.ListenAddr()
			}

			dbPath, err := inventory.DefaultPath()
			if err != nil {
				return err
			}
			store, err := inventory.OpenAt(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			e := httpapi.New(store).Router()
			e.Logger.SetLevel(log.INFO)

			fmt.Fprintf(cmd.OutOrStdout(), "Serving inventory on %s (database: %s)\n", addr, dbPath)
			return e.Start(addr)
		},
	}

	cmd.Flags().String("listen", "", "Listen address, e.g. :8080 or 127.0.0.1:9000")

	return cmd
}
