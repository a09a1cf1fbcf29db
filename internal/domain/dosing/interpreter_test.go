package dosing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func completeRecord(method, amount, unit string) Record {
	return Record{
		ItemType:         ItemTypeMedication,
		PrepMethod:       str(method),
		PrepTargetAmount: str(amount),
		PrepTargetUnit:   str(unit),
	}
}

func TestInterpret_SyringeDefaults(t *testing.T) {
	got, err := Interpret(completeRecord("syringe", "2.5", "mL"))
	require.NoError(t, err)

	assert.Equal(t, MethodSyringe, got.Method)
	assert.Equal(t, 2.5, got.TargetAmount)
	assert.Equal(t, "mL", got.Unit)
	assert.Equal(t, 10.0, got.MaxAmount)
	assert.Equal(t, 0.5, got.StepSize)
	assert.Nil(t, got.TabletCount)
}

func TestInterpret_CupDefaults(t *testing.T) {
	got, err := Interpret(completeRecord("cup", "2", "tablet"))
	require.NoError(t, err)

	assert.Equal(t, MethodCup, got.Method)
	assert.Equal(t, 6.0, got.MaxAmount)
	assert.Equal(t, 1.0, got.StepSize)
	require.NotNil(t, got.TabletCount)
	assert.Equal(t, 2.0, *got.TabletCount)
}

func TestInterpret_MaxOverride(t *testing.T) {
	rec := completeRecord("syringe", "1.5", "mL")
	rec.PrepMaxAmount = str("3")

	got, err := Interpret(rec)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.MaxAmount)
}

func TestInterpret_MissingFieldsReturnNoData(t *testing.T) {
	cases := map[string]func(r *Record){
		"no method":    func(r *Record) { r.PrepMethod = nil },
		"no amount":    func(r *Record) { r.PrepTargetAmount = nil },
		"no unit":      func(r *Record) { r.PrepTargetUnit = nil },
		"blank method": func(r *Record) { r.PrepMethod = str("  ") },
		"blank amount": func(r *Record) { r.PrepTargetAmount = str("") },
		"blank unit":   func(r *Record) { r.PrepTargetUnit = str("") },
		"tool":         func(r *Record) { r.ItemType = "tool" },
		"supply":       func(r *Record) { r.ItemType = "supply" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			rec := completeRecord("syringe", "2.5", "mL")
			mutate(&rec)

			_, err := Interpret(rec)
			assert.ErrorIs(t, err, ErrNoPreparationData)
		})
	}
}

func TestInterpret_ToolWithoutPrepData(t *testing.T) {
	_, err := Interpret(Record{ItemType: "tool"})
	assert.ErrorIs(t, err, ErrNoPreparationData)
}

func TestInterpret_MalformedNumbersAreParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		rec   Record
		field string
	}{
		{name: "target not a number", rec: completeRecord("syringe", "two", "mL"), field: "prepTargetAmount"},
		{name: "target negative", rec: completeRecord("syringe", "-1", "mL"), field: "prepTargetAmount"},
		{name: "target NaN", rec: completeRecord("syringe", "NaN", "mL"), field: "prepTargetAmount"},
		{
			name: "max not a number",
			rec: func() Record {
				r := completeRecord("cup", "1", "tablet")
				r.PrepMaxAmount = str("six")
				return r
			}(),
			field: "prepMaxAmount",
		},
		{
			name: "max zero",
			rec: func() Record {
				r := completeRecord("cup", "0", "tablet")
				r.PrepMaxAmount = str("0")
				return r
			}(),
			field: "prepMaxAmount",
		},
		{name: "target above default max", rec: completeRecord("cup", "7", "tablet"), field: "prepTargetAmount"},
		{name: "half tablet", rec: completeRecord("cup", "1.5", "tablet"), field: "prepTargetAmount"},
		{name: "syringe target off the 0.5 grid", rec: completeRecord("syringe", "2.3", "mL"), field: "prepTargetAmount"},
		{
			name: "max off the syringe grid",
			rec: func() Record {
				r := completeRecord("syringe", "2.5", "mL")
				r.PrepMaxAmount = str("7.3")
				return r
			}(),
			field: "prepMaxAmount",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Interpret(tc.rec)
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe), "expected *ParseError, got %T", err)
			assert.Equal(t, tc.field, pe.Field)
			assert.NotErrorIs(t, err, ErrNoPreparationData)
		})
	}
}

func TestInterpret_TargetAndMaxOnStepAreReachable(t *testing.T) {
	rec := completeRecord("syringe", "2.5", "mL")
	rec.PrepMaxAmount = str("7.5")

	got, err := Interpret(rec)
	require.NoError(t, err)

	full := MapPosition(0, 0, 100, got.MaxAmount, got.StepSize)
	assert.Equal(t, 7.5, full)
	assert.Equal(t, got.TargetAmount, Quantize(got.TargetAmount, got.MaxAmount, got.StepSize))
}

func TestInterpret_UnknownMethodIsFlagged(t *testing.T) {
	_, err := Interpret(completeRecord("spoon", "1", "mL"))

	assert.ErrorIs(t, err, ErrAmbiguousMethod)
	assert.ErrorIs(t, err, ErrNoPreparationData)
}

func TestInterpret_MethodIsCaseInsensitive(t *testing.T) {
	got, err := Interpret(completeRecord("Syringe", "4", "mL"))
	require.NoError(t, err)
	assert.Equal(t, MethodSyringe, got.Method)
}
