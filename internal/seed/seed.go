// Package seed carga el catálogo de referencia (cajones + registros) desde YAML.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"medication-cart/internal/domain/catalog"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

const defaultDrawerColor = "#6B7280"
const defaultMedicationColor = "#3B82F6"

// Catalog es el catálogo ya validado.
type Catalog struct {
	Drawers     []catalog.Drawer
	Medications []catalog.Medication
}

type file struct {
	Drawers     []drawerEntry     `yaml:"drawers"`
	Medications []medicationEntry `yaml:"medications"`
}

type drawerEntry struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label"`
	Position int    `yaml:"position"`
	Color    string `yaml:"color"`
	Size     string `yaml:"size"`
}

type medicationEntry struct {
	ID       string `yaml:"id"`
	DrawerID string `yaml:"drawer_id"`

	Name        string `yaml:"name"`
	GenericName string `yaml:"generic_name"`
	BrandName   string `yaml:"brand_name"`

	Dosage         string `yaml:"dosage"`
	Form           string `yaml:"form"`
	Route          string `yaml:"route"`
	Frequency      string `yaml:"frequency"`
	Classification string `yaml:"classification"`

	Indication            string `yaml:"indication"`
	Contraindications     string `yaml:"contraindications"`
	SideEffects           string `yaml:"side_effects"`
	NursingConsiderations string `yaml:"nursing_considerations"`
	Warnings              string `yaml:"warnings"`
	StorageInstructions   string `yaml:"storage_instructions"`
	Manufacturer          string `yaml:"manufacturer"`
	NDCNumber             string `yaml:"ndc_number"`

	ControlledSubstance bool   `yaml:"controlled_substance"`
	ScheduleClass       string `yaml:"schedule_class"`
	Color               string `yaml:"color"`

	ItemType string `yaml:"item_type"`

	PrepMethod       *string `yaml:"prep_method"`
	PrepTargetAmount *string `yaml:"prep_target_amount"`
	PrepTargetUnit   *string `yaml:"prep_target_unit"`
	PrepMaxAmount    *string `yaml:"prep_max_amount"`
}

// Default devuelve el catálogo embebido.
func Default() (Catalog, error) {
	return Parse(defaultCatalog)
}

func LoadFile(path string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(b)
}

// Load usa path si viene, si no el catálogo embebido.
func Load(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse valida estructura (ids, referencias a cajones, item_type).
// Los datos de preparación NO se validan aquí: eso es del intérprete (cartctl validate).
func Parse(b []byte) (Catalog, error) {
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	out := Catalog{
		Drawers:     make([]catalog.Drawer, 0, len(f.Drawers)),
		Medications: make([]catalog.Medication, 0, len(f.Medications)),
	}

	drawers := map[string]struct{}{}
	for i, d := range f.Drawers {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			return Catalog{}, fmt.Errorf("%w: drawer #%d without id", ErrInvalidCatalog, i+1)
		}
		if _, dup := drawers[id]; dup {
			return Catalog{}, fmt.Errorf("%w: duplicated drawer %q", ErrInvalidCatalog, id)
		}
		if strings.TrimSpace(d.Label) == "" {
			return Catalog{}, fmt.Errorf("%w: drawer %q without label", ErrInvalidCatalog, id)
		}
		drawers[id] = struct{}{}

		out.Drawers = append(out.Drawers, catalog.Drawer{
			ID:       id,
			Label:    strings.TrimSpace(d.Label),
			Position: d.Position,
			Color:    orDefault(d.Color, defaultDrawerColor),
			Size:     orDefault(d.Size, "standard"),
		})
	}
	sort.SliceStable(out.Drawers, func(i, j int) bool {
		return out.Drawers[i].Position < out.Drawers[j].Position
	})

	meds := map[string]struct{}{}
	for i, m := range f.Medications {
		id := strings.TrimSpace(m.ID)
		if id == "" {
			id = uuid.NewString()
		}
		if _, dup := meds[id]; dup {
			return Catalog{}, fmt.Errorf("%w: duplicated medication %q", ErrInvalidCatalog, id)
		}
		meds[id] = struct{}{}

		if _, ok := drawers[strings.TrimSpace(m.DrawerID)]; !ok {
			return Catalog{}, fmt.Errorf("%w: medication #%d (%s) references unknown drawer %q",
				ErrInvalidCatalog, i+1, m.Name, m.DrawerID)
		}
		if strings.TrimSpace(m.Name) == "" {
			return Catalog{}, fmt.Errorf("%w: medication %q without name", ErrInvalidCatalog, id)
		}

		itemType := catalog.ItemType(orDefault(strings.ToLower(m.ItemType), string(catalog.ItemTypeMedication)))
		if !itemType.Valid() {
			return Catalog{}, fmt.Errorf("%w: medication %q has item_type %q", ErrInvalidCatalog, id, m.ItemType)
		}

		out.Medications = append(out.Medications, catalog.Medication{
			ID:                    id,
			DrawerID:              strings.TrimSpace(m.DrawerID),
			Name:                  strings.TrimSpace(m.Name),
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
			Color:                 orDefault(m.Color, defaultMedicationColor),
			ItemType:              itemType,
			PrepMethod:            m.PrepMethod,
			PrepTargetAmount:      m.PrepTargetAmount,
			PrepTargetUnit:        m.PrepTargetUnit,
			PrepMaxAmount:         m.PrepMaxAmount,
		})
	}

	return out, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}
