package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"medication-cart/internal/domain/dosing"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListDrawers(ctx context.Context) ([]Drawer, error) {
	return s.repo.ListDrawers(ctx)
}

func (s *Service) GetDrawer(ctx context.Context, id string) (Drawer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Drawer{}, ErrInvalidInput
	}
	return s.repo.GetDrawer(ctx, id)
}

func (s *Service) CountDrawers(ctx context.Context) (int, error) {
	return s.repo.CountDrawers(ctx)
}

func (s *Service) ListMedications(ctx context.Context) ([]Medication, error) {
	return s.repo.ListMedications(ctx)
}

func (s *Service) ListByDrawer(ctx context.Context, drawerID string) ([]Medication, error) {
	drawerID = strings.TrimSpace(drawerID)
	if drawerID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByDrawer(ctx, drawerID)
}

func (s *Service) GetMedication(ctx context.Context, id string) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medication{}, ErrInvalidInput
	}
	return s.repo.GetMedication(ctx, id)
}

// DrawerContents separa medicaciones de herramientas/insumos, como la vista del cajón.
type DrawerContents struct {
	Drawer      Drawer
	Medications []Medication
	Tools       []Medication
}

func (s *Service) DrawerContents(ctx context.Context, drawerID string) (DrawerContents, error) {
	d, err := s.GetDrawer(ctx, drawerID)
	if err != nil {
		return DrawerContents{}, err
	}

	items, err := s.repo.ListByDrawer(ctx, d.ID)
	if err != nil {
		return DrawerContents{}, err
	}

	out := DrawerContents{
		Drawer:      d,
		Medications: make([]Medication, 0),
		Tools:       make([]Medication, 0),
	}
	for _, m := range items {
		if m.ItemType == ItemTypeMedication {
			out.Medications = append(out.Medications, m)
		} else {
			out.Tools = append(out.Tools, m)
		}
	}
	return out, nil
}

// PreparationTarget busca el registro e interpreta su dosis.
// Propaga dosing.ErrNoPreparationData y *dosing.ParseError sin transformarlos.
func (s *Service) PreparationTarget(ctx context.Context, medicationID string) (Medication, dosing.Target, error) {
	m, err := s.GetMedication(ctx, medicationID)
	if err != nil {
		return Medication{}, dosing.Target{}, err
	}

	t, err := dosing.Interpret(m.PrepRecord())
	if err != nil {
		return m, dosing.Target{}, fmt.Errorf("medication %s: %w", m.ID, err)
	}
	return m, t, nil
}
