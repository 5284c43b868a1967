package repository

import (
	"context"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
)

// SaleItemRepository define el puerto de persistencia para las líneas de venta.
type SaleItemRepository interface {
	Create(ctx context.Context, item *entity.SaleItem) error
	GetByID(ctx context.Context, id int64) (*entity.SaleItem, error)
	List(ctx context.Context) ([]*entity.SaleItem, error)
	ListBySale(ctx context.Context, saleID int64) ([]*entity.SaleItem, error)
	Update(ctx context.Context, item *entity.SaleItem) error
	Delete(ctx context.Context, id int64) error
}
