package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"medication-cart/internal/domain/catalog"
)

// Schema del catálogo. seq conserva el orden de carga de los registros.
const Schema = `
CREATE TABLE IF NOT EXISTS drawers (
	id       TEXT PRIMARY KEY,
	label    TEXT NOT NULL,
	position INTEGER NOT NULL,
	color    TEXT NOT NULL DEFAULT '#6B7280',
	size     TEXT NOT NULL DEFAULT 'standard'
);

CREATE TABLE IF NOT EXISTS medications (
	seq                    BIGSERIAL,
	id                     TEXT PRIMARY KEY,
	drawer_id              TEXT NOT NULL REFERENCES drawers(id),
	name                   TEXT NOT NULL,
	generic_name           TEXT,
	brand_name             TEXT,
	dosage                 TEXT NOT NULL,
	form                   TEXT NOT NULL,
	route                  TEXT NOT NULL,
	frequency              TEXT,
	classification         TEXT NOT NULL,
	indication             TEXT,
	contraindications      TEXT,
	side_effects           TEXT,
	nursing_considerations TEXT,
	warnings               TEXT,
	storage_instructions   TEXT,
	manufacturer           TEXT,
	ndc_number             TEXT,
	controlled_substance   BOOLEAN NOT NULL DEFAULT FALSE,
	schedule_class         TEXT,
	color                  TEXT,
	item_type              TEXT NOT NULL DEFAULT 'medication',
	prep_method            TEXT,
	prep_target_amount     TEXT,
	prep_target_unit       TEXT,
	prep_max_amount        TEXT
);

CREATE INDEX IF NOT EXISTS medications_drawer_idx ON medications (drawer_id, seq);
`

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	return err
}

// SeedIfEmpty carga el catálogo solo si no hay cajones. Devuelve true si insertó.
func SeedIfEmpty(ctx context.Context, db *sql.DB, drawers []catalog.Drawer, medications []catalog.Medication) (bool, error) {
	n, err := NewCatalogRepo(db).CountDrawers(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	for _, d := range drawers {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO drawers (id, label, position, color, size)
			VALUES ($1,$2,$3,$4,$5)
		`, d.ID, d.Label, d.Position, d.Color, d.Size); err != nil {
			return false, fmt.Errorf("insert drawer %s: %w", d.ID, err)
		}
	}

	for _, m := range medications {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO medications (
				id, drawer_id,
				name, generic_name, brand_name,
				dosage, form, route, frequency, classification,
				indication, contraindications, side_effects, nursing_considerations,
				warnings, storage_instructions, manufacturer, ndc_number,
				controlled_substance, schedule_class, color, item_type,
				prep_method, prep_target_amount, prep_target_unit, prep_max_amount
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26)
		`,
			m.ID, m.DrawerID,
			m.Name, emptyToNull(m.GenericName), emptyToNull(m.BrandName),
			m.Dosage, m.Form, m.Route, emptyToNull(m.Frequency), m.Classification,
			emptyToNull(m.Indication), emptyToNull(m.Contraindications), emptyToNull(m.SideEffects), emptyToNull(m.NursingConsiderations),
			emptyToNull(m.Warnings), emptyToNull(m.StorageInstructions), emptyToNull(m.Manufacturer), emptyToNull(m.NDCNumber),
			m.ControlledSubstance, emptyToNull(m.ScheduleClass), emptyToNull(m.Color), string(m.ItemType),
			toNullString(m.PrepMethod), toNullString(m.PrepTargetAmount), toNullString(m.PrepTargetUnit), toNullString(m.PrepMaxAmount),
		); err != nil {
			return false, fmt.Errorf("insert medication %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}
