// Command hrmsctl runs operator tasks against an HRMS database or server.
package main

import (
	"fmt"
	"os"

	"github.com/aussiebroadwan/hrms/internal/hrms/app"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hrmsctl",
		Short:         "Operator tool for the HRMS service",
		Version:       app.BuildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("db", "", "SQLite database file (overrides HRMS_DATABASE_FILE)")

	root.AddCommand(
		newMigrateCmd(),
		newAdminCmd(),
		newTokenCmd(),
		newHealthCmd(),
	)
	return root
}

// loadConfig reads the service configuration and applies the --db flag.
func loadConfig(cmd *cobra.Command) (app.Config, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return app.Config{}, err
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.DatabaseFile = db
	}
	return cfg, nil
}
