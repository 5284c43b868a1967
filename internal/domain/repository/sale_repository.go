package repository

import (
	"context"
	"time"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
)

// SaleFilter criterios opcionales de búsqueda de ventas. From/To son inclusivos.
// ProductID selecciona ventas con al menos una línea de ese producto.
type SaleFilter struct {
	From      *time.Time
	To        *time.Time
	PersonID  *int64
	ProductID *int64
}

// IsEmpty indica si no hay ningún criterio.
func (f SaleFilter) IsEmpty() bool {
	return f.From == nil && f.To == nil && f.PersonID == nil && f.ProductID == nil
}

// SaleRepository define el puerto de persistencia para la cabecera de venta.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
	ListByFilters(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id int64) error
}
