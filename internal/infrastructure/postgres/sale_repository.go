package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta y asigna su ID.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO vendas (data, pessoa_fk, vrtotal) VALUES ($1, $2, $3) RETURNING id`,
		sale.Date, sale.PersonID, sale.Total,
	).Scan(&sale.ID)
	if err != nil {
		return writeError("insert venda", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx, `SELECT v.id, v.data, v.pessoa_fk, v.vrtotal FROM vendas v WHERE v.id = $1`, id).
		Scan(&s.ID, &s.Date, &s.PersonID, &s.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}
	return &s, nil
}

// List lista todas las ventas.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return r.ListByFilters(ctx, repository.SaleFilter{})
}

// ListByFilters filtra por rango de fechas, persona y/o producto vendido.
func (r *SaleRepo) ListByFilters(ctx context.Context, filter repository.SaleFilter) ([]*entity.Sale, error) {
	where, args := saleWhere(filter)
	rows, err := r.q.Query(ctx,
		`SELECT v.id, v.data, v.pessoa_fk, v.vrtotal FROM vendas v`+where+` ORDER BY v.data, v.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()
	list := []*entity.Sale{}
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Date, &s.PersonID, &s.Total); err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update sobrescribe fecha, persona y total de la venta.
func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	_, err := r.q.Exec(ctx, `UPDATE vendas SET data = $2, pessoa_fk = $3, vrtotal = $4 WHERE id = $1`,
		sale.ID, sale.Date, sale.PersonID, sale.Total)
	if err != nil {
		return writeError("update venda", err)
	}
	return nil
}

// Delete elimina la venta; sus líneas se borran en cascada.
func (r *SaleRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM vendas WHERE id = $1`, id); err != nil {
		return deleteError("delete venda", err)
	}
	return nil
}
