package main

import (
	"bytes"
	"context"
	"testing"

	mem "medication-cart/internal/adapters/storage/memory"
	"medication-cart/internal/domain/catalog"
	"medication-cart/internal/seed"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func serviceFrom(t *testing.T, c seed.Catalog) *catalog.Service {
	t.Helper()
	return catalog.NewService(mem.NewCatalogRepo(c.Drawers, c.Medications))
}

func TestValidateCatalog_Default(t *testing.T) {
	c, err := seed.Default()
	require.NoError(t, err)

	var out bytes.Buffer
	rep, err := validateCatalog(context.Background(), serviceFrom(t, c), &out)
	require.NoError(t, err)

	assert.Zero(t, rep.Ambiguous)
	assert.Zero(t, rep.Invalid)
	assert.Positive(t, rep.OK)
	assert.Positive(t, rep.NoData, "tools and albuterol have no exercise")
	assert.Contains(t, out.String(), "med-amoxicillin: syringe 5 mL (max 10)")
}

func TestValidateCatalog_ReportsBadRecords(t *testing.T) {
	c, err := seed.Parse([]byte(`
drawers:
  - {id: d, label: D, position: 1}
medications:
  - {id: spoon, drawer_id: d, name: Spoon, prep_method: spoon, prep_target_amount: "1", prep_target_unit: mL}
  - {id: neg, drawer_id: d, name: Neg, prep_method: syringe, prep_target_amount: "-2", prep_target_unit: mL}
  - {id: big, drawer_id: d, name: Big, prep_method: cup, prep_target_amount: "8", prep_target_unit: tablet}
  - {id: fine, drawer_id: d, name: Fine, prep_method: cup, prep_target_amount: "1", prep_target_unit: tablet}
`))
	require.NoError(t, err)

	var out bytes.Buffer
	rep, err := validateCatalog(context.Background(), serviceFrom(t, c), &out)
	require.NoError(t, err)

	assert.Equal(t, validationReport{OK: 1, Ambiguous: 1, Invalid: 2}, rep)
	assert.Contains(t, out.String(), `spoon: prep_method "spoon"`)
	assert.Contains(t, out.String(), "1 ok, 0 no data, 1 ambiguous, 2 invalid")
}

func TestListCatalog(t *testing.T) {
	c, err := seed.Default()
	require.NoError(t, err)
	svc := serviceFrom(t, c)

	var out bytes.Buffer
	require.NoError(t, listCatalog(context.Background(), svc, &out, nil))
	assert.Contains(t, out.String(), "[drawer-oral]")
	assert.Contains(t, out.String(), "tool-stethoscope")
	assert.Contains(t, out.String(), "(practice: syringe)")

	out.Reset()
	require.NoError(t, listCatalog(context.Background(), svc, &out, []string{"drawer-supplies"}))
	assert.NotContains(t, out.String(), "[drawer-oral]")
	assert.Contains(t, out.String(), "supply-alcohol-pads")
}
