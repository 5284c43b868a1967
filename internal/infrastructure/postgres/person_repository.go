package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

var _ repository.PersonRepository = (*PersonRepo)(nil)

const personColumns = `p.id, p.nome, p.cidade_fk, p.bairro_fk, p.cep, p.endereco, p.numero, p.complemento, p.telefone, p.email`

// PersonRepo implementación de PersonRepository (usable con pool o tx).
type PersonRepo struct {
	q Querier
}

// NewPersonRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPersonRepository(q Querier) *PersonRepo {
	return &PersonRepo{q: q}
}

// Create persiste una nueva persona. Ciudad y barrio deben existir.
func (r *PersonRepo) Create(ctx context.Context, p *entity.Person) error {
	query := `
		INSERT INTO pessoas (nome, cidade_fk, bairro_fk, cep, endereco, numero, complemento, telefone, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Name, p.CityID, p.NeighborhoodID, p.PostalCode, p.Street, p.Number, p.Complement, p.Phone, p.Email,
	).Scan(&p.ID)
	if err != nil {
		return writeError("insert pessoa", err)
	}
	return nil
}

// GetByID obtiene una persona por ID.
func (r *PersonRepo) GetByID(ctx context.Context, id int64) (*entity.Person, error) {
	p, err := scanPerson(r.q.QueryRow(ctx, `SELECT `+personColumns+` FROM pessoas p WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pessoa: %w", err)
	}
	return p, nil
}

// List lista todas las personas.
func (r *PersonRepo) List(ctx context.Context) ([]*entity.Person, error) {
	return r.ListByFilters(ctx, repository.PersonFilter{})
}

// ListByFilters aplica solo los criterios informados (AND).
func (r *PersonRepo) ListByFilters(ctx context.Context, filter repository.PersonFilter) ([]*entity.Person, error) {
	where, args := personWhere(filter)
	rows, err := r.q.Query(ctx, `SELECT `+personColumns+` FROM pessoas p`+where+` ORDER BY p.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list pessoas: %w", err)
	}
	defer rows.Close()
	list := []*entity.Person{}
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pessoa: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update sobrescribe todos los campos de la persona.
func (r *PersonRepo) Update(ctx context.Context, p *entity.Person) error {
	query := `
		UPDATE pessoas
		SET nome = $2, cidade_fk = $3, bairro_fk = $4, cep = $5, endereco = $6,
		    numero = $7, complemento = $8, telefone = $9, email = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.CityID, p.NeighborhoodID, p.PostalCode, p.Street, p.Number, p.Complement, p.Phone, p.Email,
	)
	if err != nil {
		return writeError("update pessoa", err)
	}
	return nil
}

// Delete elimina una persona. Falla con ErrReferenced si tiene ventas.
func (r *PersonRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM pessoas WHERE id = $1`, id); err != nil {
		return deleteError("delete pessoa", err)
	}
	return nil
}

func scanPerson(row pgx.Row) (*entity.Person, error) {
	var p entity.Person
	err := row.Scan(&p.ID, &p.Name, &p.CityID, &p.NeighborhoodID, &p.PostalCode, &p.Street,
		&p.Number, &p.Complement, &p.Phone, &p.Email)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
