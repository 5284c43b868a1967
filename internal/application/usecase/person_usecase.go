package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

// PersonUseCase casos de uso para pessoas.
type PersonUseCase struct {
	repo repository.PersonRepository
}

func NewPersonUseCase(repo repository.PersonRepository) *PersonUseCase {
	return &PersonUseCase{repo: repo}
}

func (uc *PersonUseCase) toEntity(in dto.PersonRequest) (*entity.Person, error) {
	name, err := requireName(in.Nome)
	if err != nil {
		return nil, err
	}
	return &entity.Person{
		Name:           name,
		CityID:         in.CidadeFK,
		NeighborhoodID: in.BairroFK,
		PostalCode:     strings.TrimSpace(in.Cep),
		Street:         strings.TrimSpace(in.Endereco),
		Number:         strings.TrimSpace(in.Numero),
		Complement:     strings.TrimSpace(in.Complemento),
		Phone:          strings.TrimSpace(in.Telefone),
		Email:          strings.TrimSpace(in.Email),
	}, nil
}

// Create falla con ErrReferenceNotFound si cidade o bairro no existen.
func (uc *PersonUseCase) Create(ctx context.Context, in dto.PersonRequest) (int64, error) {
	person, err := uc.toEntity(in)
	if err != nil {
		return 0, err
	}
	if err := uc.repo.Create(ctx, person); err != nil {
		return 0, err
	}
	return person.ID, nil
}

func (uc *PersonUseCase) GetByID(ctx context.Context, id int64) (*dto.PersonResponse, error) {
	person, err := uc.repo.GetByID(ctx, id)
	if err != nil || person == nil {
		return nil, err
	}
	out := toPersonResponse(person)
	return &out, nil
}

func (uc *PersonUseCase) List(ctx context.Context) ([]dto.PersonResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toPersonResponses(list), nil
}

// ListByFilters aplica solo los filtros presentes (AND); un nome vacío se ignora.
func (uc *PersonUseCase) ListByFilters(ctx context.Context, f dto.PersonFilter) ([]dto.PersonResponse, error) {
	filter := repository.PersonFilter{CityID: f.CidadeID, NeighborhoodID: f.BairroID}
	if f.Nome != nil {
		if name := strings.TrimSpace(*f.Nome); name != "" {
			filter.Name = &name
		}
	}
	list, err := uc.repo.ListByFilters(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toPersonResponses(list), nil
}

func (uc *PersonUseCase) Update(ctx context.Context, id int64, in dto.PersonRequest) error {
	person, err := uc.toEntity(in)
	if err != nil {
		return err
	}
	person.ID = id
	return uc.repo.Update(ctx, person)
}

func (uc *PersonUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toPersonResponses(list []*entity.Person) []dto.PersonResponse {
	out := make([]dto.PersonResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPersonResponse(p))
	}
	return out
}

func toPersonResponse(p *entity.Person) dto.PersonResponse {
	return dto.PersonResponse{
		ID:          p.ID,
		Nome:        p.Name,
		CidadeFK:    p.CityID,
		BairroFK:    p.NeighborhoodID,
		Cep:         p.PostalCode,
		Endereco:    p.Street,
		Numero:      p.Number,
		Complemento: p.Complement,
		Telefone:    p.Phone,
		Email:       p.Email,
	}
}
