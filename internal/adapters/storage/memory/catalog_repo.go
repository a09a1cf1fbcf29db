package memory

import (
	"context"
	"sort"
	"sync"

	"medication-cart/internal/domain/catalog"
)

type catalogRepo struct {
	mu          sync.RWMutex
	drawers     map[string]catalog.Drawer
	medications map[string]catalog.Medication
	order       []string // ids de medicación en orden de carga
}

// NewCatalogRepo arma un catálogo de solo lectura a partir de datos ya validados (seed).
func NewCatalogRepo(drawers []catalog.Drawer, medications []catalog.Medication) catalog.Repository {
	r := &catalogRepo{
		drawers:     make(map[string]catalog.Drawer, len(drawers)),
		medications: make(map[string]catalog.Medication, len(medications)),
		order:       make([]string, 0, len(medications)),
	}
	for _, d := range drawers {
		r.drawers[d.ID] = d
	}
	for _, m := range medications {
		if _, exists := r.medications[m.ID]; !exists {
			r.order = append(r.order, m.ID)
		}
		r.medications[m.ID] = m
	}
	return r
}

func (r *catalogRepo) ListDrawers(ctx context.Context) ([]catalog.Drawer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Drawer, 0, len(r.drawers))
	for _, d := range r.drawers {
		out = append(out, d)
	}

	// Orden estable por position, luego id
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *catalogRepo) GetDrawer(ctx context.Context, id string) (catalog.Drawer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.drawers[id]
	if !ok {
		return catalog.Drawer{}, catalog.ErrNotFound
	}
	return d, nil
}

func (r *catalogRepo) CountDrawers(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.drawers), nil
}

func (r *catalogRepo) ListMedications(ctx context.Context) ([]catalog.Medication, error) {
	return r.filter(func(catalog.Medication) bool { return true }), nil
}

func (r *catalogRepo) ListByDrawer(ctx context.Context, drawerID string) ([]catalog.Medication, error) {
	return r.filter(func(m catalog.Medication) bool { return m.DrawerID == drawerID }), nil
}

func (r *catalogRepo) GetMedication(ctx context.Context, id string) (catalog.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.medications[id]
	if !ok {
		return catalog.Medication{}, catalog.ErrNotFound
	}
	return m, nil
}

func (r *catalogRepo) filter(keep func(catalog.Medication) bool) []catalog.Medication {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Medication, 0)
	for _, id := range r.order {
		m := r.medications[id]
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
