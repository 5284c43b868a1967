package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/application/usecase"
	"github.com/jhoicas/pdv-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pdv-api/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga cidades, bairros y produtos de ejemplo si la base está vacía",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		pool, err := postgres.NewPool(ctx, cfg.DB, cfg.Log.SQLLevel, log.Zerolog())
		if err != nil {
			return fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		defer pool.Close()

		return seed(ctx, log,
			usecase.NewCityUseCase(postgres.NewCityRepository(pool)),
			usecase.NewNeighborhoodUseCase(postgres.NewNeighborhoodRepository(pool)),
			usecase.NewProductUseCase(postgres.NewProductRepository(pool)),
		)
	},
}

var (
	seedCities = []dto.CityRequest{
		{Nome: "Curitiba", UF: "PR"},
		{Nome: "São Paulo", UF: "SP"},
		{Nome: "Recife", UF: "PE"},
	}
	seedNeighborhoods = []dto.NeighborhoodRequest{
		{Nome: "Centro"},
		{Nome: "Batel"},
		{Nome: "Boa Viagem"},
	}
	seedProducts = []dto.ProductRequest{
		{Nome: "Café 500g", Valor: decimal.RequireFromString("18.90")},
		{Nome: "Pão francês (un)", Valor: decimal.RequireFromString("0.75")},
		{Nome: "Leite integral 1L", Valor: decimal.RequireFromString("5.49")},
	}
)

// seed inserta cada grupo solo si su tabla está vacía.
func seed(ctx context.Context, log *logger.Logger,
	cities *usecase.CityUseCase,
	neighborhoods *usecase.NeighborhoodUseCase,
	products *usecase.ProductUseCase,
) error {
	if existing, err := cities.List(ctx); err != nil {
		return err
	} else if len(existing) == 0 {
		for _, in := range seedCities {
			if _, err := cities.Create(ctx, in); err != nil {
				return fmt.Errorf("seed cidade %s: %w", in.Nome, err)
			}
		}
		log.Info().Int("n", len(seedCities)).Msg("cidades cargadas")
	}

	if existing, err := neighborhoods.List(ctx); err != nil {
		return err
	} else if len(existing) == 0 {
		for _, in := range seedNeighborhoods {
			if _, err := neighborhoods.Create(ctx, in); err != nil {
				return fmt.Errorf("seed bairro %s: %w", in.Nome, err)
			}
		}
		log.Info().Int("n", len(seedNeighborhoods)).Msg("bairros cargados")
	}

	if existing, err := products.List(ctx); err != nil {
		return err
	} else if len(existing) == 0 {
		for _, in := range seedProducts {
			if _, err := products.Create(ctx, in); err != nil {
				return fmt.Errorf("seed produto %s: %w", in.Nome, err)
			}
		}
		log.Info().Int("n", len(seedProducts)).Msg("produtos cargados")
	}
	return nil
}
