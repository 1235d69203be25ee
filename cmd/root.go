package cmd

import (
	"fmt"
	"os"

	cfgcmd "serverbook/cmd/commands/config"
	"serverbook/cmd/commands/cost"
	"serverbook/cmd/commands/person"
	"serverbook/cmd/commands/provider"
	"serverbook/cmd/commands/serve"
	"serverbook/cmd/commands/server"
	"serverbook/cmd/commands/sync"
	"serverbook/internal/config"
	"serverbook/internal/inventory"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "serverbook",
		Short: "An inventory and cost tracker for rented servers",
		Long: `serverbook keeps a local registry of the servers your team rents,
who owns them, which provider they run on, and what they cost per month.

Quick start:
  serverbook server add            # Register a server
  serverbook server list           # List the inventory
  serverbook server browse         # Interactive browser
  serverbook cost add              # Record a monthly cost snapshot
  serverbook sync login            # Store a Hetzner API token
  serverbook sync run              # Import servers from Hetzner Cloud
  serverbook serve                 # Run the HTTP API`,
		PersistentPreRunE: applyConfig,
	}

	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(cost.NewCommand())
	cmd.AddCommand(person.NewCommand())
	cmd.AddCommand(provider.NewCommand())
	cmd.AddCommand(serve.NewCommand())
	cmd.AddCommand(server.NewCommand())
	cmd.AddCommand(sync.NewCommand())

	return cmd
}

// applyConfig loads the persistent config and points the inventory at the
// configured database location before any subcommand runs.
func applyConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DatabasePath != "" {
		inventory.SetPath(cfg.DatabasePath)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
