package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

type fixture struct {
	store    *Store
	person   *entity.Person
	product  *entity.Product
	cityID   int64
	bairroID int64
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	s := NewStore()

	city := &entity.City{Name: "Curitiba", UF: "PR"}
	require.NoError(t, NewCityRepository(s).Create(ctx, city))
	bairro := &entity.Neighborhood{Name: "Centro"}
	require.NoError(t, NewNeighborhoodRepository(s).Create(ctx, bairro))
	person := &entity.Person{Name: "Ana", CityID: city.ID, NeighborhoodID: bairro.ID}
	require.NoError(t, NewPersonRepository(s).Create(ctx, person))
	product := &entity.Product{Name: "Café", Price: decimal.RequireFromString("12.50")}
	require.NoError(t, NewProductRepository(s).Create(ctx, product))

	return fixture{store: s, person: person, product: product, cityID: city.ID, bairroID: bairro.ID}
}

func TestCityRepo_IDsSecuenciales(t *testing.T) {
	ctx := context.Background()
	repo := NewCityRepository(NewStore())

	a := &entity.City{Name: "Curitiba", UF: "PR"}
	b := &entity.City{Name: "Recife", UF: "PE"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Curitiba", list[0].Name)
	assert.Equal(t, "Recife", list[1].Name)
}

func TestCityRepo_UpdateInexistenteNoInserta(t *testing.T) {
	ctx := context.Background()
	repo := NewCityRepository(NewStore())

	require.NoError(t, repo.Update(ctx, &entity.City{ID: 42, Name: "X", UF: "XX"}))
	got, err := repo.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPersonRepo_ReferenciaInexistente(t *testing.T) {
	f := newFixture(t)
	repo := NewPersonRepository(f.store)

	err := repo.Create(context.Background(), &entity.Person{Name: "Bia", CityID: 999, NeighborhoodID: f.bairroID})
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
}

func TestCityRepo_DeleteReferenciada(t *testing.T) {
	f := newFixture(t)
	err := NewCityRepository(f.store).Delete(context.Background(), f.cityID)
	assert.ErrorIs(t, err, domain.ErrReferenced)
}

func TestProductRepo_DeleteReferenciadoPorItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sale := &entity.Sale{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), PersonID: f.person.ID}
	require.NoError(t, NewSaleRepository(f.store).Create(ctx, sale))
	require.NoError(t, NewSaleItemRepository(f.store).Create(ctx, &entity.SaleItem{
		SaleID: sale.ID, ProductID: f.product.ID, Units: 1, Subtotal: f.product.Price,
	}))

	err := NewProductRepository(f.store).Delete(ctx, f.product.ID)
	assert.ErrorIs(t, err, domain.ErrReferenced)

	kept, err := NewProductRepository(f.store).GetByID(ctx, f.product.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestSaleRepo_DeleteEnCascada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sales := NewSaleRepository(f.store)
	items := NewSaleItemRepository(f.store)

	sale := &entity.Sale{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), PersonID: f.person.ID}
	require.NoError(t, sales.Create(ctx, sale))
	require.NoError(t, items.Create(ctx, &entity.SaleItem{SaleID: sale.ID, ProductID: f.product.ID, Units: 2}))

	require.NoError(t, sales.Delete(ctx, sale.ID))
	left, err := items.ListBySale(ctx, sale.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestPersonRepo_Filtros(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewPersonRepository(f.store)
	require.NoError(t, repo.Create(ctx, &entity.Person{Name: "Mariana", CityID: f.cityID, NeighborhoodID: f.bairroID}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	none, err := repo.ListByFilters(ctx, repository.PersonFilter{})
	require.NoError(t, err)
	assert.Equal(t, all, none)

	name := "ANA"
	byName, err := repo.ListByFilters(ctx, repository.PersonFilter{Name: &name})
	require.NoError(t, err)
	assert.Len(t, byName, 2)

	other := int64(999)
	byCity, err := repo.ListByFilters(ctx, repository.PersonFilter{CityID: &other})
	require.NoError(t, err)
	assert.Empty(t, byCity)
}

func TestSaleRepo_FiltroPorFechaYProducto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sales := NewSaleRepository(f.store)
	items := NewSaleItemRepository(f.store)

	march := &entity.Sale{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), PersonID: f.person.ID}
	april := &entity.Sale{Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), PersonID: f.person.ID}
	require.NoError(t, sales.Create(ctx, march))
	require.NoError(t, sales.Create(ctx, april))
	require.NoError(t, items.Create(ctx, &entity.SaleItem{SaleID: april.ID, ProductID: f.product.ID, Units: 1}))

	from := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	got, err := sales.ListByFilters(ctx, repository.SaleFilter{From: &from})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, april.ID, got[0].ID)

	to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	got, err = sales.ListByFilters(ctx, repository.SaleFilter{To: &to})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, march.ID, got[0].ID)

	got, err = sales.ListByFilters(ctx, repository.SaleFilter{ProductID: &f.product.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, april.ID, got[0].ID)
}

func TestTxRunner_RollbackDeshaceTodo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := NewTxRunner(f.store).RunSale(ctx, func(sales repository.SaleRepository, items repository.SaleItemRepository) error {
		sale := &entity.Sale{Date: time.Now(), PersonID: f.person.ID}
		if err := sales.Create(ctx, sale); err != nil {
			return err
		}
		if err := items.Create(ctx, &entity.SaleItem{SaleID: sale.ID, ProductID: f.product.ID, Units: 1}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := NewSaleRepository(f.store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	itemList, err := NewSaleItemRepository(f.store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, itemList)
}

// El rollback restaura el almacén entero, no solo lo escrito dentro de fn.
func TestTxRunner_RollbackDescartaEscriturasAjenas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	boom := errors.New("boom")
	cities := NewCityRepository(f.store)

	err := NewTxRunner(f.store).RunSale(ctx, func(repository.SaleRepository, repository.SaleItemRepository) error {
		require.NoError(t, cities.Create(ctx, &entity.City{Name: "Recife", UF: "PE"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := cities.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Curitiba", list[0].Name)
}
