package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

// CityUseCase casos de uso CRUD para cidades.
type CityUseCase struct {
	repo repository.CityRepository
}

// NewCityUseCase construye el caso de uso.
func NewCityUseCase(repo repository.CityRepository) *CityUseCase {
	return &CityUseCase{repo: repo}
}

func (uc *CityUseCase) toEntity(in dto.CityRequest) (*entity.City, error) {
	name, err := requireName(in.Nome)
	if err != nil {
		return nil, err
	}
	uf := normalizeUF(in.UF)
	if len([]rune(uf)) != 2 {
		return nil, fmt.Errorf("%w: uf deve ter 2 letras", domain.ErrInvalidInput)
	}
	return &entity.City{Name: name, UF: uf}, nil
}

// Create da de alta la cidade y retorna el id asignado.
func (uc *CityUseCase) Create(ctx context.Context, in dto.CityRequest) (int64, error) {
	city, err := uc.toEntity(in)
	if err != nil {
		return 0, err
	}
	if err := uc.repo.Create(ctx, city); err != nil {
		return 0, err
	}
	return city.ID, nil
}

// GetByID retorna nil, nil si no existe.
func (uc *CityUseCase) GetByID(ctx context.Context, id int64) (*dto.CityResponse, error) {
	city, err := uc.repo.GetByID(ctx, id)
	if err != nil || city == nil {
		return nil, err
	}
	out := toCityResponse(city)
	return &out, nil
}

func (uc *CityUseCase) List(ctx context.Context) ([]dto.CityResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CityResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCityResponse(c))
	}
	return out, nil
}

// Update sobrescribe la cidade; si el id no existe no hace nada.
func (uc *CityUseCase) Update(ctx context.Context, id int64, in dto.CityRequest) error {
	city, err := uc.toEntity(in)
	if err != nil {
		return err
	}
	city.ID = id
	return uc.repo.Update(ctx, city)
}

func (uc *CityUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toCityResponse(c *entity.City) dto.CityResponse {
	return dto.CityResponse{ID: c.ID, Nome: c.Name, UF: c.UF}
}
