package usecase

import (
	"context"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

// NeighborhoodUseCase casos de uso CRUD para bairros.
type NeighborhoodUseCase struct {
	repo repository.NeighborhoodRepository
}

func NewNeighborhoodUseCase(repo repository.NeighborhoodRepository) *NeighborhoodUseCase {
	return &NeighborhoodUseCase{repo: repo}
}

func (uc *NeighborhoodUseCase) Create(ctx context.Context, in dto.NeighborhoodRequest) (int64, error) {
	name, err := requireName(in.Nome)
	if err != nil {
		return 0, err
	}
	n := &entity.Neighborhood{Name: name}
	if err := uc.repo.Create(ctx, n); err != nil {
		return 0, err
	}
	return n.ID, nil
}

func (uc *NeighborhoodUseCase) GetByID(ctx context.Context, id int64) (*dto.NeighborhoodResponse, error) {
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil || n == nil {
		return nil, err
	}
	return &dto.NeighborhoodResponse{ID: n.ID, Nome: n.Name}, nil
}

func (uc *NeighborhoodUseCase) List(ctx context.Context) ([]dto.NeighborhoodResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NeighborhoodResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NeighborhoodResponse{ID: n.ID, Nome: n.Name})
	}
	return out, nil
}

func (uc *NeighborhoodUseCase) Update(ctx context.Context, id int64, in dto.NeighborhoodRequest) error {
	name, err := requireName(in.Nome)
	if err != nil {
		return err
	}
	return uc.repo.Update(ctx, &entity.Neighborhood{ID: id, Name: name})
}

func (uc *NeighborhoodUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
