package main

import (
	"fmt"

	"github.com/evandrarf/linguaflow-be/database"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var seedUser string

	command := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(v)
			if err != nil {
				return fmt.Errorf("failed to connect database: %w", err)
			}
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			color.Green("Migrations completed")

			if seedUser != "" {
				n, err := database.SeedDemoVocabulary(db, seedUser)
				if err != nil {
					return fmt.Errorf("failed to seed demo vocabulary: %w", err)
				}
				color.Green("Seeded %d demo words for %s", n, seedUser)
			}
			return nil
		},
	}
	command.Flags().StringVar(&seedUser, "seed-user", "", "seed demo vocabulary for this user id when it has no words")
	return command
}
