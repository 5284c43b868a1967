//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
	"github.com/jhoicas/pdv-api/pkg/config"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("pdv_test"),
		tcpostgres.WithUsername("pdv"),
		tcpostgres.WithPassword("pdv"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "iniciar contenedor postgres: %v\n", err)
		os.Exit(1)
	}

	code := func() int {
		defer func() { _ = pgContainer.Terminate(ctx) }()

		connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Fprintf(os.Stderr, "connection string: %v\n", err)
			return 1
		}
		cfg := config.DBConfig{DatabaseURL: connStr, MaxConns: 5}
		if err := Migrate(ctx, cfg, zerolog.Nop()); err != nil {
			fmt.Fprintf(os.Stderr, "migrar: %v\n", err)
			return 1
		}
		testPool, err = NewPool(ctx, cfg, "none", zerolog.Nop())
		if err != nil {
			fmt.Fprintf(os.Stderr, "pool: %v\n", err)
			return 1
		}
		defer testPool.Close()
		return m.Run()
	}()
	os.Exit(code)
}

// resetDB vacía las tablas y reinicia las secuencias.
func resetDB(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE itensvenda, vendas, pessoas, produtos, bairros, cidades RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

type seeded struct {
	city    *entity.City
	bairro  *entity.Neighborhood
	person  *entity.Person
	product *entity.Product
}

func seedBase(t *testing.T) seeded {
	t.Helper()
	ctx := context.Background()
	s := seeded{
		city:    &entity.City{Name: "Curitiba", UF: "PR"},
		bairro:  &entity.Neighborhood{Name: "Centro"},
		product: &entity.Product{Name: "Café", Price: decimal.RequireFromString("12.50")},
	}
	require.NoError(t, NewCityRepository(testPool).Create(ctx, s.city))
	require.NoError(t, NewNeighborhoodRepository(testPool).Create(ctx, s.bairro))
	require.NoError(t, NewProductRepository(testPool).Create(ctx, s.product))
	s.person = &entity.Person{
		Name: "Ana Souza", CityID: s.city.ID, NeighborhoodID: s.bairro.ID,
		PostalCode: "80010-000", Street: "Rua XV", Number: "10", Email: "ana@example.com",
	}
	require.NoError(t, NewPersonRepository(testPool).Create(ctx, s.person))
	return s
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCityRepo_CRUD(t *testing.T) {
	resetDB(t)
	ctx := context.Background()
	repo := NewCityRepository(testPool)

	city := &entity.City{Name: "Curitiba", UF: "PR"}
	require.NoError(t, repo.Create(ctx, city))
	require.NotZero(t, city.ID)

	got, err := repo.GetByID(ctx, city.ID)
	require.NoError(t, err)
	assert.Equal(t, city, got)

	city.Name = "Londrina"
	require.NoError(t, repo.Update(ctx, city))
	got, err = repo.GetByID(ctx, city.ID)
	require.NoError(t, err)
	assert.Equal(t, "Londrina", got.Name)

	require.NoError(t, repo.Update(ctx, &entity.City{ID: 9999, Name: "X", UF: "XX"}))
	missing, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Delete(ctx, city.ID))
	require.NoError(t, repo.Delete(ctx, city.ID))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPersonRepo_RoundTripYFiltros(t *testing.T) {
	resetDB(t)
	ctx := context.Background()
	s := seedBase(t)
	repo := NewPersonRepository(testPool)

	got, err := repo.GetByID(ctx, s.person.ID)
	require.NoError(t, err)
	assert.Equal(t, s.person, got)

	other := &entity.Person{Name: "Bruno", CityID: s.city.ID, NeighborhoodID: s.bairro.ID}
	require.NoError(t, repo.Create(ctx, other))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	none, err := repo.ListByFilters(ctx, repository.PersonFilter{})
	require.NoError(t, err)
	assert.Equal(t, all, none)

	byName, err := repo.ListByFilters(ctx, repository.PersonFilter{Name: ptr("SOUZA")})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, s.person.ID, byName[0].ID)

	injected, err := repo.ListByFilters(ctx, repository.PersonFilter{Name: ptr(`x' OR '1'='1`)})
	require.NoError(t, err)
	assert.Empty(t, injected)
	wildcard, err := repo.ListByFilters(ctx, repository.PersonFilter{Name: ptr("_")})
	require.NoError(t, err)
	assert.Empty(t, wildcard)

	percent, err := repo.ListByFilters(ctx, repository.PersonFilter{Name: ptr("%")})
	require.NoError(t, err)
	assert.Empty(t, percent)
}

func TestPersonRepo_ReferenciaInexistente(t *testing.T) {
	resetDB(t)
	s := seedBase(t)
	err := NewPersonRepository(testPool).Create(context.Background(),
		&entity.Person{Name: "Bia", CityID: 4242, NeighborhoodID: s.bairro.ID})
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
}

func TestProductRepo_DeleteReferenciado(t *testing.T) {
	resetDB(t)
	ctx := context.Background()
	s := seedBase(t)

	sale := &entity.Sale{Date: day(2024, 5, 10), PersonID: s.person.ID, Total: s.product.Price}
	require.NoError(t, NewSaleRepository(testPool).Create(ctx, sale))
	require.NoError(t, NewSaleItemRepository(testPool).Create(ctx, &entity.SaleItem{
		SaleID: sale.ID, ProductID: s.product.ID, Units: 1, Subtotal: s.product.Price,
	}))

	err := NewProductRepository(testPool).Delete(ctx, s.product.ID)
	assert.ErrorIs(t, err, domain.ErrReferenced)

	require.NoError(t, NewSaleRepository(testPool).Delete(ctx, sale.ID))
	items, err := NewSaleItemRepository(testPool).ListBySale(ctx, sale.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, NewProductRepository(testPool).Delete(ctx, s.product.ID))
}

func TestSaleRepo_Filtros(t *testing.T) {
	resetDB(t)
	ctx := context.Background()
	s := seedBase(t)
	sales := NewSaleRepository(testPool)

	jan := &entity.Sale{Date: day(2024, 1, 10), PersonID: s.person.ID, Total: decimal.NewFromInt(5)}
	feb := &entity.Sale{Date: day(2024, 2, 10), PersonID: s.person.ID, Total: decimal.NewFromInt(7)}
	require.NoError(t, sales.Create(ctx, jan))
	require.NoError(t, sales.Create(ctx, feb))
	require.NoError(t, NewSaleItemRepository(testPool).Create(ctx, &entity.SaleItem{
		SaleID: feb.ID, ProductID: s.product.ID, Units: 1, Subtotal: decimal.NewFromInt(7),
	}))

	got, err := sales.GetByID(ctx, jan.ID)
	require.NoError(t, err)
	assert.True(t, got.Date.Equal(jan.Date))
	assert.True(t, got.Total.Equal(jan.Total))

	list, err := sales.ListByFilters(ctx, repository.SaleFilter{From: ptr(day(2024, 2, 1))})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, feb.ID, list[0].ID)

	list, err = sales.ListByFilters(ctx, repository.SaleFilter{To: ptr(day(2024, 1, 10))})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, jan.ID, list[0].ID)

	list, err = sales.ListByFilters(ctx, repository.SaleFilter{ProductID: &s.product.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, feb.ID, list[0].ID)
}

func TestTxRunner_RollbackAnteFallo(t *testing.T) {
	resetDB(t)
	ctx := context.Background()
	s := seedBase(t)

	err := NewTxRunner(testPool).RunSale(ctx, func(sales repository.SaleRepository, items repository.SaleItemRepository) error {
		sale := &entity.Sale{Date: day(2024, 5, 10), PersonID: s.person.ID}
		if err := sales.Create(ctx, sale); err != nil {
			return err
		}
		return items.Create(ctx, &entity.SaleItem{SaleID: sale.ID, ProductID: 4242, Units: 1})
	})
	require.True(t, errors.Is(err, domain.ErrReferenceNotFound), "err = %v", err)

	list, err := NewSaleRepository(testPool).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTxRunner_Commit(t *testing.T) {
	resetDB(t)
	ctx := context.Background()
	s := seedBase(t)

	var saleID int64
	err := NewTxRunner(testPool).RunSale(ctx, func(sales repository.SaleRepository, items repository.SaleItemRepository) error {
		sale := &entity.Sale{Date: day(2024, 5, 10), PersonID: s.person.ID, Total: decimal.NewFromInt(25)}
		if err := sales.Create(ctx, sale); err != nil {
			return err
		}
		saleID = sale.ID
		return items.Create(ctx, &entity.SaleItem{
			SaleID: sale.ID, ProductID: s.product.ID, Units: 2, Subtotal: decimal.NewFromInt(25),
		})
	})
	require.NoError(t, err)

	items, err := NewSaleItemRepository(testPool).ListBySale(ctx, saleID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Units)
}

func TestProductRepo_ValorNegativoEsEntradaInvalida(t *testing.T) {
	resetDB(t)
	err := NewProductRepository(testPool).Create(context.Background(),
		&entity.Product{Name: "X", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
