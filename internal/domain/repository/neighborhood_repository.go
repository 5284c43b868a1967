package repository

import (
	"context"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
)

// NeighborhoodRepository define el puerto de persistencia para Neighborhood.
type NeighborhoodRepository interface {
	Create(ctx context.Context, n *entity.Neighborhood) error
	GetByID(ctx context.Context, id int64) (*entity.Neighborhood, error)
	List(ctx context.Context) ([]*entity.Neighborhood, error)
	Update(ctx context.Context, n *entity.Neighborhood) error
	Delete(ctx context.Context, id int64) error
}
