package repository

import (
	"context"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
)

// CityRepository define el puerto de persistencia para City.
type CityRepository interface {
	Create(ctx context.Context, city *entity.City) error
	GetByID(ctx context.Context, id int64) (*entity.City, error)
	List(ctx context.Context) ([]*entity.City, error)
	Update(ctx context.Context, city *entity.City) error
	Delete(ctx context.Context, id int64) error
}
