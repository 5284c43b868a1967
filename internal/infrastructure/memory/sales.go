package memory

import (
	"context"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

var (
	_ repository.SaleRepository     = (*SaleRepo)(nil)
	_ repository.SaleItemRepository = (*SaleItemRepo)(nil)
)

// SaleRepo SaleRepository en memoria.
type SaleRepo struct{ s *Store }

func NewSaleRepository(s *Store) *SaleRepo { return &SaleRepo{s: s} }

func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.persons.rows[sale.PersonID]; !ok {
		return domain.ErrReferenceNotFound
	}
	sale.ID = r.s.sales.insert(func(id int64) entity.Sale {
		row := *sale
		row.ID = id
		return row
	})
	return nil
}

func (r *SaleRepo) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if s, ok := r.s.sales.get(id); ok {
		return &s, nil
	}
	return nil, nil
}

func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return r.ListByFilters(ctx, repository.SaleFilter{})
}

func (r *SaleRepo) ListByFilters(_ context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*entity.Sale{}
	for _, s := range r.s.sales.ordered() {
		if f.From != nil && s.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && s.Date.After(*f.To) {
			continue
		}
		if f.PersonID != nil && s.PersonID != *f.PersonID {
			continue
		}
		if f.ProductID != nil && !r.hasProduct(s.ID, *f.ProductID) {
			continue
		}
		out = append(out, &s)
	}
	return out, nil
}

func (r *SaleRepo) hasProduct(saleID, productID int64) bool {
	for _, it := range r.s.items.rows {
		if it.SaleID == saleID && it.ProductID == productID {
			return true
		}
	}
	return false
}

func (r *SaleRepo) Update(_ context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sales.rows[sale.ID]; !ok {
		return nil
	}
	if _, ok := r.s.persons.rows[sale.PersonID]; !ok {
		return domain.ErrReferenceNotFound
	}
	r.s.sales.rows[sale.ID] = *sale
	return nil
}

// Delete borra la venta y sus líneas (cascada).
func (r *SaleRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for itemID, it := range r.s.items.rows {
		if it.SaleID == id {
			delete(r.s.items.rows, itemID)
		}
	}
	delete(r.s.sales.rows, id)
	return nil
}

// SaleItemRepo SaleItemRepository en memoria.
type SaleItemRepo struct{ s *Store }

func NewSaleItemRepository(s *Store) *SaleItemRepo { return &SaleItemRepo{s: s} }

func (r *SaleItemRepo) checkRefs(it *entity.SaleItem) error {
	if _, ok := r.s.sales.rows[it.SaleID]; !ok {
		return domain.ErrReferenceNotFound
	}
	if _, ok := r.s.products.rows[it.ProductID]; !ok {
		return domain.ErrReferenceNotFound
	}
	if it.Units <= 0 || it.Subtotal.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

func (r *SaleItemRepo) Create(_ context.Context, it *entity.SaleItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkRefs(it); err != nil {
		return err
	}
	it.ID = r.s.items.insert(func(id int64) entity.SaleItem {
		row := *it
		row.ID = id
		return row
	})
	return nil
}

func (r *SaleItemRepo) GetByID(_ context.Context, id int64) (*entity.SaleItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if it, ok := r.s.items.get(id); ok {
		return &it, nil
	}
	return nil, nil
}

func (r *SaleItemRepo) List(_ context.Context) ([]*entity.SaleItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return pointers(r.s.items.ordered()), nil
}

func (r *SaleItemRepo) ListBySale(_ context.Context, saleID int64) ([]*entity.SaleItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*entity.SaleItem{}
	for _, it := range r.s.items.ordered() {
		if it.SaleID == saleID {
			out = append(out, &it)
		}
	}
	return out, nil
}

func (r *SaleItemRepo) Update(_ context.Context, it *entity.SaleItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items.rows[it.ID]; !ok {
		return nil
	}
	if err := r.checkRefs(it); err != nil {
		return err
	}
	r.s.items.rows[it.ID] = *it
	return nil
}

func (r *SaleItemRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.items.rows, id)
	return nil
}
