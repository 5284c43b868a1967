package memory

import (
	"context"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

var (
	_ repository.CityRepository         = (*CityRepo)(nil)
	_ repository.NeighborhoodRepository = (*NeighborhoodRepo)(nil)
)

// CityRepo CityRepository en memoria.
type CityRepo struct{ s *Store }

func NewCityRepository(s *Store) *CityRepo { return &CityRepo{s: s} }

func (r *CityRepo) Create(_ context.Context, city *entity.City) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	city.ID = r.s.cities.insert(func(id int64) entity.City {
		c := *city
		c.ID = id
		return c
	})
	return nil
}

func (r *CityRepo) GetByID(_ context.Context, id int64) (*entity.City, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if c, ok := r.s.cities.get(id); ok {
		return &c, nil
	}
	return nil, nil
}

func (r *CityRepo) List(_ context.Context) ([]*entity.City, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return pointers(r.s.cities.ordered()), nil
}

func (r *CityRepo) Update(_ context.Context, city *entity.City) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.cities.rows[city.ID]; ok {
		r.s.cities.rows[city.ID] = *city
	}
	return nil
}

func (r *CityRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.persons.rows {
		if p.CityID == id {
			return domain.ErrReferenced
		}
	}
	delete(r.s.cities.rows, id)
	return nil
}

// NeighborhoodRepo NeighborhoodRepository en memoria.
type NeighborhoodRepo struct{ s *Store }

func NewNeighborhoodRepository(s *Store) *NeighborhoodRepo { return &NeighborhoodRepo{s: s} }

func (r *NeighborhoodRepo) Create(_ context.Context, n *entity.Neighborhood) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n.ID = r.s.neighborhoods.insert(func(id int64) entity.Neighborhood {
		return entity.Neighborhood{ID: id, Name: n.Name}
	})
	return nil
}

func (r *NeighborhoodRepo) GetByID(_ context.Context, id int64) (*entity.Neighborhood, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if n, ok := r.s.neighborhoods.get(id); ok {
		return &n, nil
	}
	return nil, nil
}

func (r *NeighborhoodRepo) List(_ context.Context) ([]*entity.Neighborhood, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return pointers(r.s.neighborhoods.ordered()), nil
}

func (r *NeighborhoodRepo) Update(_ context.Context, n *entity.Neighborhood) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.neighborhoods.rows[n.ID]; ok {
		r.s.neighborhoods.rows[n.ID] = *n
	}
	return nil
}

func (r *NeighborhoodRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.persons.rows {
		if p.NeighborhoodID == id {
			return domain.ErrReferenced
		}
	}
	delete(r.s.neighborhoods.rows, id)
	return nil
}

func pointers[T any](rows []T) []*T {
	out := make([]*T, 0, len(rows))
	for i := range rows {
		out = append(out, &rows[i])
	}
	return out
}
