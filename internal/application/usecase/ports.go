package usecase

import (
	"context"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

// SaleTxRunner ejecuta fn dentro de una transacción con repos de venta e itens sobre la misma conexión.
// Si fn retorna error se hace rollback de todo lo escrito.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		itemRepo repository.SaleItemRepository,
	) error) error
}

// ReceiptGenerator genera el comprobante de una venta.
type ReceiptGenerator interface {
	GenerateSaleReceipt(ctx context.Context, receipt *dto.SaleReceipt) ([]byte, error)
}
