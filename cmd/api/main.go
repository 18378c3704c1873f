package main

import (
	"log"
	"os"

	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/garage-scheduler/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "garage",
		Short:        "Appointment book for a one-mechanic garage",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(newServeCmd(), newReportCmd(), newMigrateCmd())
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("invalid configuration: %v", err)
		return nil, err
	}
	return cfg, nil
}
