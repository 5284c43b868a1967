package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

var _ repository.NeighborhoodRepository = (*NeighborhoodRepo)(nil)

// NeighborhoodRepo implementación de NeighborhoodRepository (usable con pool o tx).
type NeighborhoodRepo struct {
	q Querier
}

// NewNeighborhoodRepository construye el adaptador.
func NewNeighborhoodRepository(q Querier) *NeighborhoodRepo {
	return &NeighborhoodRepo{q: q}
}

func (r *NeighborhoodRepo) Create(ctx context.Context, n *entity.Neighborhood) error {
	err := r.q.QueryRow(ctx, `INSERT INTO bairros (nome) VALUES ($1) RETURNING id`, n.Name).Scan(&n.ID)
	if err != nil {
		return writeError("insert bairro", err)
	}
	return nil
}

func (r *NeighborhoodRepo) GetByID(ctx context.Context, id int64) (*entity.Neighborhood, error) {
	var n entity.Neighborhood
	err := r.q.QueryRow(ctx, `SELECT id, nome FROM bairros WHERE id = $1`, id).Scan(&n.ID, &n.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bairro: %w", err)
	}
	return &n, nil
}

func (r *NeighborhoodRepo) List(ctx context.Context) ([]*entity.Neighborhood, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nome FROM bairros ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list bairros: %w", err)
	}
	defer rows.Close()
	list := []*entity.Neighborhood{}
	for rows.Next() {
		var n entity.Neighborhood
		if err := rows.Scan(&n.ID, &n.Name); err != nil {
			return nil, fmt.Errorf("scan bairro: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

func (r *NeighborhoodRepo) Update(ctx context.Context, n *entity.Neighborhood) error {
	if _, err := r.q.Exec(ctx, `UPDATE bairros SET nome = $2 WHERE id = $1`, n.ID, n.Name); err != nil {
		return writeError("update bairro", err)
	}
	return nil
}

func (r *NeighborhoodRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM bairros WHERE id = $1`, id); err != nil {
		return deleteError("delete bairro", err)
	}
	return nil
}
