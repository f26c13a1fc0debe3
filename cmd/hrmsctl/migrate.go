package main

import (
	"fmt"

	"github.com/aussiebroadwan/hrms/internal/hrms/app"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			st, err := app.OpenStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			version, dirty, err := st.MigrationVersion()
			if err != nil {
				return fmt.Errorf("read migration version: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s at schema version %d (dirty=%t)\n", cfg.DatabaseFile, version, dirty)
			return nil
		},
	}
}
