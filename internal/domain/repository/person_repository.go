package repository

import (
	"context"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
)

// PersonFilter criterios opcionales de búsqueda de personas.
// Solo se aplican los campos no nulos, combinados con AND.
type PersonFilter struct {
	CityID         *int64
	NeighborhoodID *int64
	Name           *string // coincidencia parcial, sin distinguir mayúsculas
}

// IsEmpty indica si no hay ningún criterio.
func (f PersonFilter) IsEmpty() bool {
	return f.CityID == nil && f.NeighborhoodID == nil && f.Name == nil
}

// PersonRepository define el puerto de persistencia para Person.
type PersonRepository interface {
	Create(ctx context.Context, person *entity.Person) error
	GetByID(ctx context.Context, id int64) (*entity.Person, error)
	List(ctx context.Context) ([]*entity.Person, error)
	ListByFilters(ctx context.Context, filter PersonFilter) ([]*entity.Person, error)
	Update(ctx context.Context, person *entity.Person) error
	Delete(ctx context.Context, id int64) error
}
