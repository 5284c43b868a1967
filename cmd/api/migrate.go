package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/pdv-api/internal/infrastructure/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica las migraciones pendientes del esquema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		return postgres.Migrate(cmd.Context(), cfg.DB, log.Component("migrate"))
	},
}
