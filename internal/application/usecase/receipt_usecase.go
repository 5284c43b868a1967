package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

// SaleReceiptUseCase arma el comprobante PDF de una venda.
type SaleReceiptUseCase struct {
	sales     repository.SaleRepository
	items     repository.SaleItemRepository
	persons   repository.PersonRepository
	products  repository.ProductRepository
	generator ReceiptGenerator
}

// NewSaleReceiptUseCase construye el caso de uso inyectando todas sus dependencias.
func NewSaleReceiptUseCase(
	sales repository.SaleRepository,
	items repository.SaleItemRepository,
	persons repository.PersonRepository,
	products repository.ProductRepository,
	generator ReceiptGenerator,
) *SaleReceiptUseCase {
	return &SaleReceiptUseCase{
		sales:     sales,
		items:     items,
		persons:   persons,
		products:  products,
		generator: generator,
	}
}

// Generate retorna el PDF y el nombre de archivo sugerido.
// domain.ErrNotFound si la venda no existe.
func (uc *SaleReceiptUseCase) Generate(ctx context.Context, saleID int64) (pdf []byte, filename string, err error) {
	sale, err := uc.sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, "", fmt.Errorf("comprovante: obtener venda: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	receipt := &dto.SaleReceipt{
		VendaID: sale.ID,
		Data:    formatDate(sale.Date),
		VrTotal: sale.Total,
	}

	person, err := uc.persons.GetByID(ctx, sale.PersonID)
	if err != nil {
		return nil, "", fmt.Errorf("comprovante: obtener pessoa: %w", err)
	}
	if person != nil {
		receipt.Cliente = person.Name
		receipt.Email = person.Email
		receipt.Telefone = person.Phone
		receipt.Endereco = joinNonEmpty(", ", person.Street, person.Number, person.Complement, person.PostalCode)
	}

	items, err := uc.items.ListBySale(ctx, saleID)
	if err != nil {
		return nil, "", fmt.Errorf("comprovante: obtener itens: %w", err)
	}
	for _, it := range items {
		p, err := uc.products.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, "", fmt.Errorf("comprovante: obtener produto %d: %w", it.ProductID, err)
		}
		name := fmt.Sprintf("Produto #%d", it.ProductID)
		if p != nil {
			name = p.Name
		}
		unit := decimal.Zero
		if it.Units > 0 {
			unit = it.Subtotal.Div(decimal.NewFromInt(int64(it.Units))).Round(moneyPlaces)
		}
		receipt.Linhas = append(receipt.Linhas, dto.ReceiptLine{
			Produto:       name,
			Unidades:      it.Units,
			ValorUnitario: unit,
			Subtotal:      it.Subtotal,
		})
	}

	pdf, err = uc.generator.GenerateSaleReceipt(ctx, receipt)
	if err != nil {
		return nil, "", fmt.Errorf("comprovante: generación fallida: %w", err)
	}
	return pdf, fmt.Sprintf("comprovante_venda_%d.pdf", sale.ID), nil
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
