package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

// SaleUseCase casos de uso para vendas.
type SaleUseCase struct {
	sales    repository.SaleRepository
	items    repository.SaleItemRepository
	txRunner SaleTxRunner
}

// NewSaleUseCase construye el caso de uso. txRunner se usa solo en altas con itens.
func NewSaleUseCase(sales repository.SaleRepository, items repository.SaleItemRepository, txRunner SaleTxRunner) *SaleUseCase {
	return &SaleUseCase{sales: sales, items: items, txRunner: txRunner}
}

func (uc *SaleUseCase) header(data string, personID int64, total decimal.Decimal) (*entity.Sale, error) {
	date, err := parseDate("data", data)
	if err != nil {
		return nil, err
	}
	total, err = money("vrtotal", total)
	if err != nil {
		return nil, err
	}
	return &entity.Sale{Date: date, PersonID: personID, Total: total}, nil
}

// Create da de alta la venda.
// Sin itens es un único INSERT. Con itens, cabecera y líneas se graban en la misma transacción
// y cualquier fallo deja la base como estaba; vrtotal en cero se reemplaza por la suma de subtotales.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (int64, error) {
	sale, err := uc.header(in.Data, in.PessoaFK, in.VrTotal)
	if err != nil {
		return 0, err
	}
	if len(in.Itens) == 0 {
		if err := uc.sales.Create(ctx, sale); err != nil {
			return 0, err
		}
		return sale.ID, nil
	}

	lines := make([]*entity.SaleItem, 0, len(in.Itens))
	sum := decimal.Zero
	for i, it := range in.Itens {
		if err := units(fmt.Sprintf("itens[%d].unidades", i), it.Unidades); err != nil {
			return 0, err
		}
		subtotal, err := money(fmt.Sprintf("itens[%d].subtotal", i), it.Subtotal)
		if err != nil {
			return 0, err
		}
		sum = sum.Add(subtotal)
		lines = append(lines, &entity.SaleItem{ProductID: it.ProdutoFK, Units: it.Unidades, Subtotal: subtotal})
	}
	if sale.Total.IsZero() {
		sale.Total = sum
	}

	err = uc.txRunner.RunSale(ctx, func(sales repository.SaleRepository, items repository.SaleItemRepository) error {
		if err := sales.Create(ctx, sale); err != nil {
			return err
		}
		for _, line := range lines {
			line.SaleID = sale.ID
			if err := items.Create(ctx, line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sale.ID, nil
}

// GetByID retorna la venda con sus itens, o nil, nil si no existe.
func (uc *SaleUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(ctx, id)
	if err != nil || sale == nil {
		return nil, err
	}
	items, err := uc.items.ListBySale(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toSaleResponse(sale)
	out.Itens = toSaleItemResponses(items)
	return &out, nil
}

// Items lista los itens de una venda; vacío si la venda no existe.
func (uc *SaleUseCase) Items(ctx context.Context, saleID int64) ([]dto.SaleItemResponse, error) {
	items, err := uc.items.ListBySale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	return toSaleItemResponses(items), nil
}

func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	return uc.ListByFilters(ctx, dto.SaleFilter{})
}

// ListByFilters aplica solo los filtros presentes; las fechas son inclusivas.
func (uc *SaleUseCase) ListByFilters(ctx context.Context, f dto.SaleFilter) ([]dto.SaleResponse, error) {
	filter := repository.SaleFilter{PersonID: f.PessoaID, ProductID: f.ProdutoID}
	if f.DataInicio != nil {
		from, err := parseDate("date1", *f.DataInicio)
		if err != nil {
			return nil, err
		}
		filter.From = &from
	}
	if f.DataFim != nil {
		to, err := parseDate("date2", *f.DataFim)
		if err != nil {
			return nil, err
		}
		filter.To = &to
	}

	list, err := uc.sales.ListByFilters(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// Update sobrescribe la cabecera. Los itens no se tocan.
func (uc *SaleUseCase) Update(ctx context.Context, id int64, in dto.UpdateSaleRequest) error {
	sale, err := uc.header(in.Data, in.PessoaFK, in.VrTotal)
	if err != nil {
		return err
	}
	sale.ID = id
	return uc.sales.Update(ctx, sale)
}

// Delete borra la venda y, en cascada, sus itens.
func (uc *SaleUseCase) Delete(ctx context.Context, id int64) error {
	return uc.sales.Delete(ctx, id)
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:       s.ID,
		Data:     formatDate(s.Date),
		PessoaFK: s.PersonID,
		VrTotal:  s.Total,
	}
}
