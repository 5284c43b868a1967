package usecase

import (
	"context"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

// SaleItemUseCase CRUD de itens de venda sueltos (fuera del alta atómica de la venda).
type SaleItemUseCase struct {
	repo repository.SaleItemRepository
}

func NewSaleItemUseCase(repo repository.SaleItemRepository) *SaleItemUseCase {
	return &SaleItemUseCase{repo: repo}
}

func (uc *SaleItemUseCase) toEntity(in dto.SaleItemRequest) (*entity.SaleItem, error) {
	if err := units("unidades", in.Unidades); err != nil {
		return nil, err
	}
	subtotal, err := money("subtotal", in.Subtotal)
	if err != nil {
		return nil, err
	}
	return &entity.SaleItem{
		SaleID:    in.VendaFK,
		ProductID: in.ProdutoFK,
		Units:     in.Unidades,
		Subtotal:  subtotal,
	}, nil
}

func (uc *SaleItemUseCase) Create(ctx context.Context, in dto.SaleItemRequest) (int64, error) {
	item, err := uc.toEntity(in)
	if err != nil {
		return 0, err
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return 0, err
	}
	return item.ID, nil
}

func (uc *SaleItemUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil || item == nil {
		return nil, err
	}
	out := toSaleItemResponse(item)
	return &out, nil
}

func (uc *SaleItemUseCase) List(ctx context.Context) ([]dto.SaleItemResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toSaleItemResponses(list), nil
}

func (uc *SaleItemUseCase) Update(ctx context.Context, id int64, in dto.SaleItemRequest) error {
	item, err := uc.toEntity(in)
	if err != nil {
		return err
	}
	item.ID = id
	return uc.repo.Update(ctx, item)
}

func (uc *SaleItemUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toSaleItemResponses(list []*entity.SaleItem) []dto.SaleItemResponse {
	out := make([]dto.SaleItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, toSaleItemResponse(it))
	}
	return out
}

func toSaleItemResponse(it *entity.SaleItem) dto.SaleItemResponse {
	return dto.SaleItemResponse{
		ID:        it.ID,
		VendaFK:   it.SaleID,
		ProdutoFK: it.ProductID,
		Unidades:  it.Units,
		Subtotal:  it.Subtotal,
	}
}
