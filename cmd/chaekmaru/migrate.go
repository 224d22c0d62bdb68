package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chaekmaru/chaekmaru/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(cmd.Context(), db); err != nil {
				return fmt.Errorf("database.Migrate > %w", err)
			}
			fmt.Println("Migrations applied.")
			return nil
		},
	}
}
