package table_test

import (
	"context"
	"sync"

	"github.com/jhoicas/almacen-admin/internal/application/table"
	"github.com/jhoicas/almacen-admin/internal/domain"
)

// fakeGateway gateway en memoria para los tests de controlador y modal.
// Simula el servicio remoto: asigna ids en Create y reemplaza por id en
// Update. Los errores inyectables imitan fallos de transporte.
type fakeGateway[T table.Row] struct {
	mu     sync.Mutex
	items  []T
	nextID int
	withID func(T, int) T

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	// onCreate hook opcional que corre antes de persistir (para simular
	// reentradas como el doble submit).
	onCreate func()
}

func newFakeGateway[T table.Row](withID func(T, int) T, items ...T) *fakeGateway[T] {
	g := &fakeGateway[T]{withID: withID}
	for _, it := range items {
		g.items = append(g.items, it)
		if it.RowID() >= g.nextID {
			g.nextID = it.RowID()
		}
	}
	return g
}

func (g *fakeGateway[T]) List(ctx context.Context) ([]T, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listCalls++
	if g.listErr != nil {
		return nil, g.listErr
	}
	out := make([]T, len(g.items))
	copy(out, g.items)
	return out, nil
}

func (g *fakeGateway[T]) Create(ctx context.Context, rec T) (T, error) {
	if g.onCreate != nil {
		g.onCreate()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.createCalls++
	if g.createErr != nil {
		var zero T
		return zero, g.createErr
	}
	g.nextID++
	rec = g.withID(rec, g.nextID)
	g.items = append(g.items, rec)
	return rec, nil
}

func (g *fakeGateway[T]) Update(ctx context.Context, id int, rec T) (T, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updateCalls++
	if g.updateErr != nil {
		var zero T
		return zero, g.updateErr
	}
	for i, it := range g.items {
		if it.RowID() == id {
			g.items[i] = g.withID(rec, id)
			return g.items[i], nil
		}
	}
	var zero T
	return zero, domain.ErrNotFound
}

func (g *fakeGateway[T]) Delete(ctx context.Context, id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deleteCalls++
	if g.deleteErr != nil {
		return g.deleteErr
	}
	for i, it := range g.items {
		if it.RowID() == id {
			g.items = append(g.items[:i], g.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (g *fakeGateway[T]) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.items)
}

func (g *fakeGateway[T]) byID(id int) (T, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, it := range g.items {
		if it.RowID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}
