package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"medication-cart/internal/domain/catalog"
)

type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

const medicationColumns = `
	id, drawer_id,
	name, generic_name, brand_name,
	dosage, form, route, frequency, classification,
	indication, contraindications, side_effects, nursing_considerations,
	warnings, storage_instructions, manufacturer, ndc_number,
	controlled_substance, schedule_class, color, item_type,
	prep_method, prep_target_amount, prep_target_unit, prep_max_amount
`

func (r *CatalogRepo) ListDrawers(ctx context.Context) ([]catalog.Drawer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, label, position, color, size
		FROM drawers
		ORDER BY position ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Drawer, 0)
	for rows.Next() {
		var d catalog.Drawer
		if err := rows.Scan(&d.ID, &d.Label, &d.Position, &d.Color, &d.Size); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) GetDrawer(ctx context.Context, id string) (catalog.Drawer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return catalog.Drawer{}, catalog.ErrNotFound
	}

	var d catalog.Drawer
	err := r.db.QueryRowContext(ctx, `
		SELECT id, label, position, color, size
		FROM drawers
		WHERE id = $1
	`, id).Scan(&d.ID, &d.Label, &d.Position, &d.Color, &d.Size)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Drawer{}, catalog.ErrNotFound
		}
		return catalog.Drawer{}, err
	}
	return d, nil
}

func (r *CatalogRepo) CountDrawers(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM drawers`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *CatalogRepo) ListMedications(ctx context.Context) ([]catalog.Medication, error) {
	return r.queryMedications(ctx, `SELECT `+medicationColumns+` FROM medications ORDER BY seq ASC`)
}

func (r *CatalogRepo) ListByDrawer(ctx context.Context, drawerID string) ([]catalog.Medication, error) {
	return r.queryMedications(ctx, `SELECT `+medicationColumns+` FROM medications WHERE drawer_id = $1 ORDER BY seq ASC`, drawerID)
}

func (r *CatalogRepo) GetMedication(ctx context.Context, id string) (catalog.Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return catalog.Medication{}, catalog.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+medicationColumns+` FROM medications WHERE id = $1`, id)
	m, err := scanMedication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Medication{}, catalog.ErrNotFound
		}
		return catalog.Medication{}, err
	}
	return m, nil
}

func (r *CatalogRepo) queryMedications(ctx context.Context, q string, args ...any) ([]catalog.Medication, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMedication(s scanner) (catalog.Medication, error) {
	var (
		m        catalog.Medication
		itemType string

		generic, brand, frequency                     sql.NullString
		indication, contraindications, sideEffects    sql.NullString
		nursing, warnings, storage, manufacturer, ndc sql.NullString
		schedule, color                               sql.NullString
		prepMethod, prepAmount, prepUnit, prepMax     sql.NullString
	)

	if err := s.Scan(
		&m.ID, &m.DrawerID,
		&m.Name, &generic, &brand,
		&m.Dosage, &m.Form, &m.Route, &frequency, &m.Classification,
		&indication, &contraindications, &sideEffects, &nursing,
		&warnings, &storage, &manufacturer, &ndc,
		&m.ControlledSubstance, &schedule, &color, &itemType,
		&prepMethod, &prepAmount, &prepUnit, &prepMax,
	); err != nil {
		return catalog.Medication{}, err
	}

	m.GenericName = generic.String
	m.BrandName = brand.String
	m.Frequency = frequency.String
	m.Indication = indication.String
	m.Contraindications = contraindications.String
	m.SideEffects = sideEffects.String
	m.NursingConsiderations = nursing.String
	m.Warnings = warnings.String
	m.StorageInstructions = storage.String
	m.Manufacturer = manufacturer.String
	m.NDCNumber = ndc.String
	m.ScheduleClass = schedule.String
	m.Color = color.String
	m.ItemType = catalog.ItemType(itemType)

	// los datos de preparación distinguen ausente (NULL) de vacío
	m.PrepMethod = fromNullString(prepMethod)
	m.PrepTargetAmount = fromNullString(prepAmount)
	m.PrepTargetUnit = fromNullString(prepUnit)
	m.PrepMaxAmount = fromNullString(prepMax)

	return m, nil
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func toNullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func emptyToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
