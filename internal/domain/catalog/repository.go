package catalog

import "context"

// Repository es de solo lectura: el simulador nunca escribe el catálogo.
type Repository interface {
	ListDrawers(ctx context.Context) ([]Drawer, error)
	GetDrawer(ctx context.Context, id string) (Drawer, error)
	CountDrawers(ctx context.Context) (int, error)

	ListMedications(ctx context.Context) ([]Medication, error)
	ListByDrawer(ctx context.Context, drawerID string) ([]Medication, error)
	GetMedication(ctx context.Context, id string) (Medication, error)
}
