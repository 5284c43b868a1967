// Package memory implementa los repositorios sobre mapas en memoria.
// Replica la política de integridad del esquema PostgreSQL (FK RESTRICT, cascada de itensvenda)
// para que los tests de casos de uso y HTTP se comporten igual que contra la base real.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/jhoicas/pdv-api/internal/application/usecase"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

// table guarda filas por ID con secuencia propia, como una columna IDENTITY.
type table[T any] struct {
	rows map[int64]T
	next int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T)}
}

func (t *table[T]) insert(row func(id int64) T) int64 {
	t.next++
	t.rows[t.next] = row(t.next)
	return t.next
}

func (t *table[T]) get(id int64) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

// ordered devuelve las filas por ID ascendente.
func (t *table[T]) ordered() []T {
	out := make([]T, 0, len(t.rows))
	for _, id := range slices.Sorted(maps.Keys(t.rows)) {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) clone() *table[T] {
	return &table[T]{rows: maps.Clone(t.rows), next: t.next}
}

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu            sync.RWMutex
	cities        *table[entity.City]
	neighborhoods *table[entity.Neighborhood]
	products      *table[entity.Product]
	persons       *table[entity.Person]
	sales         *table[entity.Sale]
	items         *table[entity.SaleItem]
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		cities:        newTable[entity.City](),
		neighborhoods: newTable[entity.Neighborhood](),
		products:      newTable[entity.Product](),
		persons:       newTable[entity.Person](),
		sales:         newTable[entity.Sale](),
		items:         newTable[entity.SaleItem](),
	}
}

type snapshot struct {
	cities        *table[entity.City]
	neighborhoods *table[entity.Neighborhood]
	products      *table[entity.Product]
	persons       *table[entity.Person]
	sales         *table[entity.Sale]
	items         *table[entity.SaleItem]
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		cities:        s.cities.clone(),
		neighborhoods: s.neighborhoods.clone(),
		products:      s.products.clone(),
		persons:       s.persons.clone(),
		sales:         s.sales.clone(),
		items:         s.items.clone(),
	}
}

// restore reemplaza todas las tablas por la copia: se pierde cualquier escritura
// hecha después del snapshot, incluso fuera de la transacción. Solo para tests.
func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cities = snap.cities
	s.neighborhoods = snap.neighborhoods
	s.products = snap.products
	s.persons = snap.persons
	s.sales = snap.sales
	s.items = snap.items
}

var _ usecase.SaleTxRunner = (*TxRunner)(nil)

// TxRunner emula la unidad de trabajo: si fn falla, el almacén vuelve al estado previo.
// No aísla escrituras concurrentes: un rollback también descarta lo que otros
// repositorios grabaron mientras fn corría. No usar fuera de tests.
type TxRunner struct {
	store *Store
	txMu  sync.Mutex
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	itemRepo repository.SaleItemRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	snap := r.store.snapshot()
	if err := fn(NewSaleRepository(r.store), NewSaleItemRepository(r.store)); err != nil {
		r.store.restore(snap)
		return err
	}
	if err := ctx.Err(); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}
