package usecase

import (
	"context"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para produtos. El valor se guarda redondeado a centavos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (uc *ProductUseCase) toEntity(in dto.ProductRequest) (*entity.Product, error) {
	name, err := requireName(in.Nome)
	if err != nil {
		return nil, err
	}
	price, err := money("valor", in.Valor)
	if err != nil {
		return nil, err
	}
	return &entity.Product{Name: name, Price: price}, nil
}

// Create crea un nuevo produto y retorna su id.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (int64, error) {
	product, err := uc.toEntity(in)
	if err != nil {
		return 0, err
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return 0, err
	}
	return product.ID, nil
}

// GetByID obtiene un produto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	out := toProductResponse(product)
	return &out, nil
}

func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update actualiza nome y valor.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) error {
	product, err := uc.toEntity(in)
	if err != nil {
		return err
	}
	product.ID = id
	return uc.repo.Update(ctx, product)
}

// Delete falla con ErrReferenced si algún item de venda usa el produto.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{ID: p.ID, Nome: p.Name, Valor: p.Price}
}
