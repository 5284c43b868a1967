package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/pdv-api/pkg/config"
	"github.com/jhoicas/pdv-api/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "pdv-api",
	Short: "API REST de ponto de venda (cidades, bairros, produtos, pessoas, vendas)",
	Long: `API REST de ponto de venda sobre PostgreSQL.

Subcomandos:
  serve    - levanta el servidor HTTP (por defecto)
  migrate  - aplica las migraciones embebidas
  seed     - carga datos de ejemplo en una base vacía`,
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap carga configuración y logger, comunes a todos los subcomandos.
func bootstrap() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	return cfg, log, nil
}
