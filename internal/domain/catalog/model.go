package catalog

import "medication-cart/internal/domain/dosing"

// ItemType distingue medicaciones de herramientas e insumos.
// @Enum medication, tool, supply
type ItemType string

const (
	ItemTypeMedication ItemType = "medication"
	ItemTypeTool       ItemType = "tool"
	ItemTypeSupply     ItemType = "supply"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeMedication, ItemTypeTool, ItemTypeSupply:
		return true
	}
	return false
}

// Drawer es un compartimento del carro.
type Drawer struct {
	ID       string
	Label    string
	Position int
	Color    string // hex, "#6B7280" por defecto
	Size     string // standard, large, ...
}

// Medication es un registro del catálogo (medicación, herramienta o insumo).
// Inmutable para el simulador.
type Medication struct {
	ID       string
	DrawerID string

	Name        string
	GenericName string
	BrandName   string

	Dosage         string // texto de la orden, p.ej. "250 mg/5 mL"
	Form           string
	Route          string
	Frequency      string
	Classification string

	Indication            string
	Contraindications     string
	SideEffects           string
	NursingConsiderations string
	Warnings              string
	StorageInstructions   string
	Manufacturer          string
	NDCNumber             string

	ControlledSubstance bool
	ScheduleClass       string
	Color               string

	ItemType ItemType

	// Datos de preparación (opcionales; nil = ausente).
	PrepMethod       *string
	PrepTargetAmount *string
	PrepTargetUnit   *string
	PrepMaxAmount    *string
}

// PrepRecord devuelve la vista que consume el intérprete de dosis.
func (m Medication) PrepRecord() dosing.Record {
	return dosing.Record{
		ItemType:         string(m.ItemType),
		PrepMethod:       m.PrepMethod,
		PrepTargetAmount: m.PrepTargetAmount,
		PrepTargetUnit:   m.PrepTargetUnit,
		PrepMaxAmount:    m.PrepMaxAmount,
	}
}
