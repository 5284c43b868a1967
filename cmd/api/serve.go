package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/jhoicas/pdv-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/pdv-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pdv-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/pdv-api/internal/interfaces/http"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Levanta el servidor HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := cmd.Context()

	if cfg.App.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.DB, log.Component("migrate")); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB, cfg.Log.SQLLevel, log.Zerolog())
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	cityRepo := postgres.NewCityRepository(pool)
	neighborhoodRepo := postgres.NewNeighborhoodRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	personRepo := postgres.NewPersonRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	itemRepo := postgres.NewSaleItemRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// PDF: comprovante de venda
	receiptGenerator := infrapdf.NewReceiptGenerator(cfg.App.Name)

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    "PDV API",
		}))
	} else {
		log.Warn().Str("path", cfg.HTTP.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		CityUC:         usecase.NewCityUseCase(cityRepo),
		NeighborhoodUC: usecase.NewNeighborhoodUseCase(neighborhoodRepo),
		ProductUC:      usecase.NewProductUseCase(productRepo),
		PersonUC:       usecase.NewPersonUseCase(personRepo),
		SaleUC:         usecase.NewSaleUseCase(saleRepo, itemRepo, txRunner),
		SaleItemUC:     usecase.NewSaleItemUseCase(itemRepo),
		ReceiptUC:      usecase.NewSaleReceiptUseCase(saleRepo, itemRepo, personRepo, productRepo, receiptGenerator),
		DB:             pool,
		ServiceName:    cfg.App.Name,
		Log:            log.Component("http"),
		QueryTimeout:   cfg.HTTP.QueryTimeout,
	})

	listenErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("servidor HTTP: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}
