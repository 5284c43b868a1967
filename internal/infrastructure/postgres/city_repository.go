package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

var _ repository.CityRepository = (*CityRepo)(nil)

// CityRepo implementación de CityRepository sobre PostgreSQL (usable con pool o tx).
type CityRepo struct {
	q Querier
}

// NewCityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCityRepository(q Querier) *CityRepo {
	return &CityRepo{q: q}
}

// Create inserta la ciudad y asigna el ID generado.
func (r *CityRepo) Create(ctx context.Context, city *entity.City) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO cidades (nome, uf) VALUES ($1, $2) RETURNING id`,
		city.Name, city.UF,
	).Scan(&city.ID)
	if err != nil {
		return writeError("insert cidade", err)
	}
	return nil
}

// GetByID obtiene una ciudad por ID; nil si no existe.
func (r *CityRepo) GetByID(ctx context.Context, id int64) (*entity.City, error) {
	var c entity.City
	err := r.q.QueryRow(ctx, `SELECT id, nome, uf FROM cidades WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.UF)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cidade: %w", err)
	}
	return &c, nil
}

// List devuelve todas las ciudades ordenadas por ID.
func (r *CityRepo) List(ctx context.Context) ([]*entity.City, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nome, uf FROM cidades ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list cidades: %w", err)
	}
	defer rows.Close()
	list := []*entity.City{}
	for rows.Next() {
		var c entity.City
		if err := rows.Scan(&c.ID, &c.Name, &c.UF); err != nil {
			return nil, fmt.Errorf("scan cidade: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update sobrescribe la ciudad. Si el ID no existe no hace nada.
func (r *CityRepo) Update(ctx context.Context, city *entity.City) error {
	_, err := r.q.Exec(ctx, `UPDATE cidades SET nome = $2, uf = $3 WHERE id = $1`,
		city.ID, city.Name, city.UF)
	if err != nil {
		return writeError("update cidade", err)
	}
	return nil
}

// Delete elimina una ciudad por ID. Falla con ErrReferenced si alguna persona la usa.
func (r *CityRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM cidades WHERE id = $1`, id)
	if err != nil {
		return deleteError("delete cidade", err)
	}
	return nil
}
