package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*ProductRepo)(nil)
	_ repository.PersonRepository  = (*PersonRepo)(nil)
)

// ProductRepo ProductRepository en memoria.
type ProductRepo struct{ s *Store }

func NewProductRepository(s *Store) *ProductRepo { return &ProductRepo{s: s} }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.products.insert(func(id int64) entity.Product {
		return entity.Product{ID: id, Name: p.Name, Price: p.Price}
	})
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if p, ok := r.s.products.get(id); ok {
		return &p, nil
	}
	return nil, nil
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return pointers(r.s.products.ordered()), nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products.rows[p.ID]; ok {
		r.s.products.rows[p.ID] = *p
	}
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, it := range r.s.items.rows {
		if it.ProductID == id {
			return domain.ErrReferenced
		}
	}
	delete(r.s.products.rows, id)
	return nil
}

// PersonRepo PersonRepository en memoria.
type PersonRepo struct{ s *Store }

func NewPersonRepository(s *Store) *PersonRepo { return &PersonRepo{s: s} }

// checkRefs exige que ciudad y barrio existan; llamar con el lock tomado.
func (r *PersonRepo) checkRefs(p *entity.Person) error {
	if _, ok := r.s.cities.rows[p.CityID]; !ok {
		return domain.ErrReferenceNotFound
	}
	if _, ok := r.s.neighborhoods.rows[p.NeighborhoodID]; !ok {
		return domain.ErrReferenceNotFound
	}
	return nil
}

func (r *PersonRepo) Create(_ context.Context, p *entity.Person) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkRefs(p); err != nil {
		return err
	}
	p.ID = r.s.persons.insert(func(id int64) entity.Person {
		row := *p
		row.ID = id
		return row
	})
	return nil
}

func (r *PersonRepo) GetByID(_ context.Context, id int64) (*entity.Person, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if p, ok := r.s.persons.get(id); ok {
		return &p, nil
	}
	return nil, nil
}

func (r *PersonRepo) List(ctx context.Context) ([]*entity.Person, error) {
	return r.ListByFilters(ctx, repository.PersonFilter{})
}

func (r *PersonRepo) ListByFilters(_ context.Context, f repository.PersonFilter) ([]*entity.Person, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*entity.Person{}
	for _, p := range r.s.persons.ordered() {
		if f.CityID != nil && p.CityID != *f.CityID {
			continue
		}
		if f.NeighborhoodID != nil && p.NeighborhoodID != *f.NeighborhoodID {
			continue
		}
		if f.Name != nil && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(*f.Name)) {
			continue
		}
		out = append(out, &p)
	}
	return out, nil
}

func (r *PersonRepo) Update(_ context.Context, p *entity.Person) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.persons.rows[p.ID]; !ok {
		return nil
	}
	if err := r.checkRefs(p); err != nil {
		return err
	}
	r.s.persons.rows[p.ID] = *p
	return nil
}

func (r *PersonRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, s := range r.s.sales.rows {
		if s.PersonID == id {
			return domain.ErrReferenced
		}
	}
	delete(r.s.persons.rows, id)
	return nil
}
