package usecase_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/application/usecase"
	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
	"github.com/jhoicas/pdv-api/internal/infrastructure/memory"
)

type env struct {
	cities   *usecase.CityUseCase
	bairros  *usecase.NeighborhoodUseCase
	products *usecase.ProductUseCase
	persons  *usecase.PersonUseCase
	sales    *usecase.SaleUseCase
	items    *usecase.SaleItemUseCase
	receipts *usecase.SaleReceiptUseCase
	gen      *fakeGenerator
}

type fakeGenerator struct {
	last *dto.SaleReceipt
}

func (g *fakeGenerator) GenerateSaleReceipt(_ context.Context, r *dto.SaleReceipt) ([]byte, error) {
	g.last = r
	return []byte("%PDF-fake"), nil
}

func newEnv() *env {
	s := memory.NewStore()
	saleRepo := memory.NewSaleRepository(s)
	itemRepo := memory.NewSaleItemRepository(s)
	personRepo := memory.NewPersonRepository(s)
	productRepo := memory.NewProductRepository(s)
	gen := &fakeGenerator{}
	return &env{
		cities:   usecase.NewCityUseCase(memory.NewCityRepository(s)),
		bairros:  usecase.NewNeighborhoodUseCase(memory.NewNeighborhoodRepository(s)),
		products: usecase.NewProductUseCase(productRepo),
		persons:  usecase.NewPersonUseCase(personRepo),
		sales:    usecase.NewSaleUseCase(saleRepo, itemRepo, memory.NewTxRunner(s)),
		items:    usecase.NewSaleItemUseCase(itemRepo),
		receipts: usecase.NewSaleReceiptUseCase(saleRepo, itemRepo, personRepo, productRepo, gen),
		gen:      gen,
	}
}

// seedPerson crea cidade, bairro y pessoa; retorna el id de la pessoa.
func (e *env) seedPerson(t *testing.T, name string) int64 {
	t.Helper()
	ctx := context.Background()
	cityID, err := e.cities.Create(ctx, dto.CityRequest{Nome: "Curitiba", UF: "PR"})
	require.NoError(t, err)
	bairroID, err := e.bairros.Create(ctx, dto.NeighborhoodRequest{Nome: "Centro"})
	require.NoError(t, err)
	id, err := e.persons.Create(ctx, dto.PersonRequest{Nome: name, CidadeFK: cityID, BairroFK: bairroID, Email: "a@b.com"})
	require.NoError(t, err)
	return id
}

func TestCityUseCase_NormalizaUF(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	id, err := e.cities.Create(ctx, dto.CityRequest{Nome: "  Curitiba ", UF: " pr"})
	require.NoError(t, err)

	got, err := e.cities.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, dto.CityResponse{ID: id, Nome: "Curitiba", UF: "PR"}, *got)
}

func TestCityUseCase_UFInvalida(t *testing.T) {
	e := newEnv()
	_, err := e.cities.Create(context.Background(), dto.CityRequest{Nome: "Curitiba", UF: "PRX"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCityUseCase_GetInexistenteDevuelveVacioSinError(t *testing.T) {
	e := newEnv()
	got, err := e.cities.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductUseCase_ValorRedondeadoYNegativo(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	id, err := e.products.Create(ctx, dto.ProductRequest{Nome: "Pão", Valor: decimal.RequireFromString("3.456")})
	require.NoError(t, err)
	got, err := e.products.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Valor.Equal(decimal.RequireFromString("3.46")))

	_, err = e.products.Create(ctx, dto.ProductRequest{Nome: "Pão", Valor: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_UpdateInexistenteNoCrea(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	require.NoError(t, e.products.Update(ctx, 99, dto.ProductRequest{Nome: "X", Valor: decimal.NewFromInt(1)}))
	list, err := e.products.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPersonUseCase_CreateYGetDevuelveTodosLosCampos(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	cityID, _ := e.cities.Create(ctx, dto.CityRequest{Nome: "Recife", UF: "PE"})
	bairroID, _ := e.bairros.Create(ctx, dto.NeighborhoodRequest{Nome: "Boa Vista"})

	in := dto.PersonRequest{
		Nome: "Carla", CidadeFK: cityID, BairroFK: bairroID, Cep: "50050-000",
		Endereco: "Rua da Aurora", Numero: "100", Complemento: "ap 2", Telefone: "81999990000", Email: "carla@example.com",
	}
	id, err := e.persons.Create(ctx, in)
	require.NoError(t, err)

	got, err := e.persons.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, dto.PersonResponse{
		ID: id, Nome: in.Nome, CidadeFK: in.CidadeFK, BairroFK: in.BairroFK, Cep: in.Cep,
		Endereco: in.Endereco, Numero: in.Numero, Complemento: in.Complemento, Telefone: in.Telefone, Email: in.Email,
	}, *got)
}

func TestPersonUseCase_FiltrosVaciosIgualQueList(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	e.seedPerson(t, "Ana")
	e.seedPerson(t, "Bruno")

	all, err := e.persons.List(ctx)
	require.NoError(t, err)
	filtered, err := e.persons.ListByFilters(ctx, dto.PersonFilter{})
	require.NoError(t, err)
	assert.Equal(t, all, filtered)

	blank := "   "
	filtered, err = e.persons.ListByFilters(ctx, dto.PersonFilter{Nome: &blank})
	require.NoError(t, err)
	assert.Equal(t, all, filtered)

	name := "bru"
	filtered, err = e.persons.ListByFilters(ctx, dto.PersonFilter{Nome: &name})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Bruno", filtered[0].Nome)
}

func TestSaleUseCase_PessoaInexistente(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	_, err := e.sales.Create(ctx, dto.CreateSaleRequest{Data: "2024-05-10", PessoaFK: 404, VrTotal: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)

	list, err := e.sales.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSaleUseCase_FechaInvalida(t *testing.T) {
	e := newEnv()
	personID := e.seedPerson(t, "Ana")
	_, err := e.sales.Create(context.Background(), dto.CreateSaleRequest{Data: "10/05/2024", PessoaFK: personID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaleUseCase_ConItensCalculaTotal(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	personID := e.seedPerson(t, "Ana")
	cafe, _ := e.products.Create(ctx, dto.ProductRequest{Nome: "Café", Valor: decimal.RequireFromString("12.50")})
	pao, _ := e.products.Create(ctx, dto.ProductRequest{Nome: "Pão", Valor: decimal.RequireFromString("0.75")})

	id, err := e.sales.Create(ctx, dto.CreateSaleRequest{
		Data:     "2024-05-10",
		PessoaFK: personID,
		Itens: []dto.SaleLineInput{
			{ProdutoFK: cafe, Unidades: 2, Subtotal: decimal.RequireFromString("25.00")},
			{ProdutoFK: pao, Unidades: 4, Subtotal: decimal.RequireFromString("3.00")},
		},
	})
	require.NoError(t, err)

	got, err := e.sales.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2024-05-10", got.Data)
	assert.True(t, got.VrTotal.Equal(decimal.RequireFromString("28.00")))
	require.Len(t, got.Itens, 2)
	assert.Equal(t, id, got.Itens[0].VendaFK)
}

func TestSaleUseCase_ItemInvalidoNoPersisteNada(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	personID := e.seedPerson(t, "Ana")
	cafe, _ := e.products.Create(ctx, dto.ProductRequest{Nome: "Café", Valor: decimal.NewFromInt(10)})

	_, err := e.sales.Create(ctx, dto.CreateSaleRequest{
		Data:     "2024-05-10",
		PessoaFK: personID,
		Itens: []dto.SaleLineInput{
			{ProdutoFK: cafe, Unidades: 1, Subtotal: decimal.NewFromInt(10)},
			{ProdutoFK: 999, Unidades: 1, Subtotal: decimal.NewFromInt(5)},
		},
	})
	require.ErrorIs(t, err, domain.ErrReferenceNotFound)

	sales, err := e.sales.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
	items, err := e.items.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSaleUseCase_FiltrosPorFecha(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	personID := e.seedPerson(t, "Ana")
	for _, d := range []string{"2024-01-10", "2024-02-10", "2024-03-10"} {
		_, err := e.sales.Create(ctx, dto.CreateSaleRequest{Data: d, PessoaFK: personID})
		require.NoError(t, err)
	}

	from, to := "2024-02-01", "2024-02-28"
	got, err := e.sales.ListByFilters(ctx, dto.SaleFilter{DataInicio: &from, DataFim: &to})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-02-10", got[0].Data)

	bad := "ontem"
	_, err = e.sales.ListByFilters(ctx, dto.SaleFilter{DataInicio: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaleUseCase_ItemsDeVentaInexistenteEsVacio(t *testing.T) {
	e := newEnv()
	items, err := e.sales.Items(context.Background(), 12)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSaleItemUseCase_UnidadesInvalidas(t *testing.T) {
	e := newEnv()
	_, err := e.items.Create(context.Background(), dto.SaleItemRequest{VendaFK: 1, ProdutoFK: 1, Unidades: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.items.Create(context.Background(), dto.SaleItemRequest{VendaFK: 1, ProdutoFK: 1, Unidades: math.MaxInt32 + 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaleReceiptUseCase_Generate(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	personID := e.seedPerson(t, "Ana")
	cafe, _ := e.products.Create(ctx, dto.ProductRequest{Nome: "Café", Valor: decimal.RequireFromString("12.50")})
	saleID, err := e.sales.Create(ctx, dto.CreateSaleRequest{
		Data:     "2024-05-10",
		PessoaFK: personID,
		Itens:    []dto.SaleLineInput{{ProdutoFK: cafe, Unidades: 2, Subtotal: decimal.RequireFromString("25.00")}},
	})
	require.NoError(t, err)

	pdf, filename, err := e.receipts.Generate(ctx, saleID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Contains(t, filename, "comprovante_venda_")

	require.NotNil(t, e.gen.last)
	assert.Equal(t, "Ana", e.gen.last.Cliente)
	require.Len(t, e.gen.last.Linhas, 1)
	assert.Equal(t, "Café", e.gen.last.Linhas[0].Produto)
	assert.True(t, e.gen.last.Linhas[0].ValorUnitario.Equal(decimal.RequireFromString("12.50")))

	_, _, err = e.receipts.Generate(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// brokenProducts falla en GetByID; el resto delega en el repositorio real.
type brokenProducts struct {
	repository.ProductRepository
	err error
}

func (b brokenProducts) GetByID(context.Context, int64) (*entity.Product, error) {
	return nil, b.err
}

func TestSaleReceiptUseCase_PropagaErrorDeProduto(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	saleRepo := memory.NewSaleRepository(s)
	itemRepo := memory.NewSaleItemRepository(s)
	personRepo := memory.NewPersonRepository(s)
	productRepo := memory.NewProductRepository(s)

	cityID, err := usecase.NewCityUseCase(memory.NewCityRepository(s)).Create(ctx, dto.CityRequest{Nome: "Curitiba", UF: "PR"})
	require.NoError(t, err)
	bairroID, err := usecase.NewNeighborhoodUseCase(memory.NewNeighborhoodRepository(s)).Create(ctx, dto.NeighborhoodRequest{Nome: "Centro"})
	require.NoError(t, err)
	personID, err := usecase.NewPersonUseCase(personRepo).Create(ctx, dto.PersonRequest{Nome: "Ana", CidadeFK: cityID, BairroFK: bairroID})
	require.NoError(t, err)
	cafe, err := usecase.NewProductUseCase(productRepo).Create(ctx, dto.ProductRequest{Nome: "Café", Valor: decimal.NewFromInt(10)})
	require.NoError(t, err)
	saleID, err := usecase.NewSaleUseCase(saleRepo, itemRepo, memory.NewTxRunner(s)).Create(ctx, dto.CreateSaleRequest{
		Data:     "2024-05-10",
		PessoaFK: personID,
		Itens:    []dto.SaleLineInput{{ProdutoFK: cafe, Unidades: 1, Subtotal: decimal.NewFromInt(10)}},
	})
	require.NoError(t, err)

	errDB := errors.New("conexão perdida")
	gen := &fakeGenerator{}
	receipts := usecase.NewSaleReceiptUseCase(saleRepo, itemRepo, personRepo, brokenProducts{productRepo, errDB}, gen)

	_, _, err = receipts.Generate(ctx, saleID)
	assert.ErrorIs(t, err, errDB)
	assert.Nil(t, gen.last)
}
