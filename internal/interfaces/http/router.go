package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/pdv-api/internal/application/usecase"
)

// ServerConfig ajustes del servidor Fiber.
type ServerConfig struct {
	AppName      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// NewApp crea la aplicación Fiber con el ErrorHandler de la API.
func NewApp(cfg ServerConfig) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CityUC         *usecase.CityUseCase
	NeighborhoodUC *usecase.NeighborhoodUseCase
	ProductUC      *usecase.ProductUseCase
	PersonUC       *usecase.PersonUseCase
	SaleUC         *usecase.SaleUseCase
	SaleItemUC     *usecase.SaleItemUseCase
	ReceiptUC      *usecase.SaleReceiptUseCase

	DB           Pinger // nil en tests
	ServiceName  string
	Log          zerolog.Logger
	QueryTimeout time.Duration
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	app.Use(RequestLogger(deps.Log))
	app.Use(QueryTimeout(deps.QueryTimeout))

	app.Get("/health", NewHealthHandler(deps.DB, deps.ServiceName).Check)

	cities := app.Group("/cidades")
	cityHandler := NewCityHandler(deps.CityUC)
	cities.Get("/", cityHandler.List)
	cities.Get("/:id", cityHandler.GetByID)
	cities.Post("/", cityHandler.Create)
	cities.Put("/:id", cityHandler.Update)
	cities.Delete("/:id", cityHandler.Delete)

	neighborhoods := app.Group("/bairros")
	neighborhoodHandler := NewNeighborhoodHandler(deps.NeighborhoodUC)
	neighborhoods.Get("/", neighborhoodHandler.List)
	neighborhoods.Get("/:id", neighborhoodHandler.GetByID)
	neighborhoods.Post("/", neighborhoodHandler.Create)
	neighborhoods.Put("/:id", neighborhoodHandler.Update)
	neighborhoods.Delete("/:id", neighborhoodHandler.Delete)

	products := app.Group("/produtos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	persons := app.Group("/pessoas")
	personHandler := NewPersonHandler(deps.PersonUC)
	persons.Get("/", personHandler.List)
	persons.Get("/:id", personHandler.GetByID)
	persons.Get("/:cidade/:bairro/:nome", personHandler.ListByPath)
	persons.Post("/", personHandler.Create)
	persons.Put("/:id", personHandler.Update)
	persons.Delete("/:id", personHandler.Delete)

	sales := app.Group("/vendas")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptUC)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/itens", saleHandler.Items)
	if deps.ReceiptUC != nil {
		sales.Get("/:id/comprovante", saleHandler.Receipt)
	}
	sales.Post("/", saleHandler.Create)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)

	items := app.Group("/itensvenda")
	itemHandler := NewSaleItemHandler(deps.SaleItemUC)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Post("/", itemHandler.Create)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
}
