package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

var _ repository.SaleItemRepository = (*SaleItemRepo)(nil)

const saleItemColumns = `id, venda_fk, produto_fk, unidades, subtotal`

// SaleItemRepo implementación de SaleItemRepository (usable con pool o tx).
type SaleItemRepo struct {
	q Querier
}

// NewSaleItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleItemRepository(q Querier) *SaleItemRepo {
	return &SaleItemRepo{q: q}
}

// Create persiste una línea de venta.
func (r *SaleItemRepo) Create(ctx context.Context, item *entity.SaleItem) error {
	query := `
		INSERT INTO itensvenda (venda_fk, produto_fk, unidades, subtotal)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, item.SaleID, item.ProductID, item.Units, item.Subtotal).Scan(&item.ID)
	if err != nil {
		return writeError("insert item venda", err)
	}
	return nil
}

func (r *SaleItemRepo) GetByID(ctx context.Context, id int64) (*entity.SaleItem, error) {
	var it entity.SaleItem
	err := r.q.QueryRow(ctx, `SELECT `+saleItemColumns+` FROM itensvenda WHERE id = $1`, id).
		Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Units, &it.Subtotal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item venda: %w", err)
	}
	return &it, nil
}

func (r *SaleItemRepo) List(ctx context.Context) ([]*entity.SaleItem, error) {
	return r.list(ctx, `SELECT `+saleItemColumns+` FROM itensvenda ORDER BY id`)
}

// ListBySale devuelve las líneas de una venta.
func (r *SaleItemRepo) ListBySale(ctx context.Context, saleID int64) ([]*entity.SaleItem, error) {
	return r.list(ctx, `SELECT `+saleItemColumns+` FROM itensvenda WHERE venda_fk = $1 ORDER BY id`, saleID)
}

func (r *SaleItemRepo) list(ctx context.Context, query string, args ...any) ([]*entity.SaleItem, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list itens venda: %w", err)
	}
	defer rows.Close()
	list := []*entity.SaleItem{}
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Units, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan item venda: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func (r *SaleItemRepo) Update(ctx context.Context, item *entity.SaleItem) error {
	query := `
		UPDATE itensvenda SET venda_fk = $2, produto_fk = $3, unidades = $4, subtotal = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, item.ID, item.SaleID, item.ProductID, item.Units, item.Subtotal)
	if err != nil {
		return writeError("update item venda", err)
	}
	return nil
}

func (r *SaleItemRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM itensvenda WHERE id = $1`, id); err != nil {
		return deleteError("delete item venda", err)
	}
	return nil
}
