package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Rewrite stored services and appointments in the current format",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			a, err := buildApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			// never overwrite data that could not be read
			if a.loadErr != nil {
				return fmt.Errorf("stored data is unreadable: %w", a.loadErr)
			}

			if err := a.catalog.Save(cmd.Context()); err != nil {
				return fmt.Errorf("save services: %w", err)
			}
			if err := a.scheduler.Save(cmd.Context()); err != nil {
				return fmt.Errorf("save appointments: %w", err)
			}

			log.Printf("migrated %d services, %d appointments", len(a.catalog.Services()), len(a.scheduler.Snapshot()))
			return nil
		},
	}
}
