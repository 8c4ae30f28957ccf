package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/andrewpaige1/flashlearn-api/config"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := config.Load()
			if _, err := config.Connect(env); err != nil {
				return err
			}
			log.Printf("Migrated %s database", env.DBDriver)
			return nil
		},
	}
}
