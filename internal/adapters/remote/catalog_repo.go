package remote

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"medication-cart/internal/domain/catalog"
	"medication-cart/internal/platform/httpclient"
)

// CatalogRepo lee el catálogo de un servidor del carro en marcha.
// Cada lectura termina (o falla) antes de devolver: no hay datos parciales.
type CatalogRepo struct {
	c *httpclient.Client
}

func NewCatalogRepo(c *httpclient.Client) *CatalogRepo {
	return &CatalogRepo{c: c}
}

type drawerWire struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Position int    `json:"position"`
	Color    string `json:"color"`
	Size     string `json:"size"`
}

type medicationWire struct {
	ID       string `json:"id"`
	DrawerID string `json:"drawer_id"`

	Name        string `json:"name"`
	GenericName string `json:"generic_name"`
	BrandName   string `json:"brand_name"`

	Dosage         string `json:"dosage"`
	Form           string `json:"form"`
	Route          string `json:"route"`
	Frequency      string `json:"frequency"`
	Classification string `json:"classification"`

	Indication            string `json:"indication"`
	Contraindications     string `json:"contraindications"`
	SideEffects           string `json:"side_effects"`
	NursingConsiderations string `json:"nursing_considerations"`
	Warnings              string `json:"warnings"`
	StorageInstructions   string `json:"storage_instructions"`
	Manufacturer          string `json:"manufacturer"`
	NDCNumber             string `json:"ndc_number"`

	ControlledSubstance bool   `json:"controlled_substance"`
	ScheduleClass       string `json:"schedule_class"`
	Color               string `json:"color"`
	ItemType            string `json:"item_type"`

	PrepMethod       *string `json:"prep_method"`
	PrepTargetAmount *string `json:"prep_target_amount"`
	PrepTargetUnit   *string `json:"prep_target_unit"`
	PrepMaxAmount    *string `json:"prep_max_amount"`
}

func (r *CatalogRepo) ListDrawers(ctx context.Context) ([]catalog.Drawer, error) {
	var in []drawerWire
	if err := r.c.GetJSON(ctx, "/api/drawers", &in); err != nil {
		return nil, err
	}
	out := make([]catalog.Drawer, 0, len(in))
	for _, d := range in {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *CatalogRepo) GetDrawer(ctx context.Context, id string) (catalog.Drawer, error) {
	var d drawerWire
	if err := r.c.GetJSON(ctx, "/api/drawers/"+url.PathEscape(id), &d); err != nil {
		return catalog.Drawer{}, mapErr(err)
	}
	return d.toDomain(), nil
}

func (r *CatalogRepo) CountDrawers(ctx context.Context) (int, error) {
	items, err := r.ListDrawers(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (r *CatalogRepo) ListMedications(ctx context.Context) ([]catalog.Medication, error) {
	return r.listMedications(ctx, "/api/medications")
}

func (r *CatalogRepo) ListByDrawer(ctx context.Context, drawerID string) ([]catalog.Medication, error) {
	return r.listMedications(ctx, "/api/medications/drawer/"+url.PathEscape(drawerID))
}

func (r *CatalogRepo) GetMedication(ctx context.Context, id string) (catalog.Medication, error) {
	var m medicationWire
	if err := r.c.GetJSON(ctx, "/api/medications/"+url.PathEscape(id), &m); err != nil {
		return catalog.Medication{}, mapErr(err)
	}
	return m.toDomain(), nil
}

func (r *CatalogRepo) listMedications(ctx context.Context, path string) ([]catalog.Medication, error) {
	var in []medicationWire
	if err := r.c.GetJSON(ctx, path, &in); err != nil {
		return nil, err
	}
	out := make([]catalog.Medication, 0, len(in))
	for _, m := range in {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func mapErr(err error) error {
	if httpclient.StatusCode(err) == http.StatusNotFound {
		return catalog.ErrNotFound
	}
	return err
}

func (d drawerWire) toDomain() catalog.Drawer {
	return catalog.Drawer{
		ID:       d.ID,
		Label:    d.Label,
		Position: d.Position,
		Color:    d.Color,
		Size:     d.Size,
	}
}

func (m medicationWire) toDomain() catalog.Medication {
	itemType := catalog.ItemType(strings.TrimSpace(m.ItemType))
	if itemType == "" {
		itemType = catalog.ItemTypeMedication
	}
	return catalog.Medication{
		ID:                    m.ID,
		DrawerID:              m.DrawerID,
		Name:                  m.Name,
		GenericName:           m.GenericName,
		BrandName:             m.BrandName,
		Dosage:                m.Dosage,
		Form:                  m.Form,
		Route:                 m.Route,
		Frequency:             m.Frequency,
		Classification:        m.Classification,
		Indication:            m.Indication,
		Contraindications:     m.Contraindications,
		SideEffects:           m.SideEffects,
		NursingConsiderations: m.NursingConsiderations,
		Warnings:              m.Warnings,
		StorageInstructions:   m.StorageInstructions,
		Manufacturer:          m.Manufacturer,
		NDCNumber:             m.NDCNumber,
		ControlledSubstance:   m.ControlledSubstance,
		ScheduleClass:         m.ScheduleClass,
		Color:                 m.Color,
		ItemType:              itemType,
		PrepMethod:            m.PrepMethod,
		PrepTargetAmount:      m.PrepTargetAmount,
		PrepTargetUnit:        m.PrepTargetUnit,
		PrepMaxAmount:         m.PrepMaxAmount,
	}
}
