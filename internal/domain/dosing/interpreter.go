package dosing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNoPreparationData: el registro no ofrece ejercicio (no es error de runtime).
	ErrNoPreparationData = errors.New("no preparation data")

	// ErrAmbiguousMethod marca un prepMethod desconocido. Se reporta como dato a revisar,
	// nunca se adivina el método esperado.
	ErrAmbiguousMethod = fmt.Errorf("%w: ambiguous prep method", ErrNoPreparationData)
)

// ParseError indica un campo numérico presente pero inválido.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	errNotFinite  = errors.New("not a finite number")
	errNegative   = errors.New("must not be negative")
	errAboveMax   = errors.New("exceeds max amount")
	errZeroMaxima = errors.New("must be greater than zero")
	errOffStep    = errors.New("not a multiple of the step size")
)

// stepEpsilon absorbe el error de coma flotante al dividir por el paso.
const stepEpsilon = 1e-9

// Interpret deriva el Target de un registro.
// Devuelve ErrNoPreparationData si falta method/amount/unit o si no es una medicación,
// y *ParseError si un monto no se puede interpretar (fail closed).
func Interpret(rec Record) (Target, error) {
	if rec.ItemType != ItemTypeMedication {
		return Target{}, ErrNoPreparationData
	}

	method, okM := present(rec.PrepMethod)
	amountRaw, okA := present(rec.PrepTargetAmount)
	unit, okU := present(rec.PrepTargetUnit)
	if !okM || !okA || !okU {
		return Target{}, ErrNoPreparationData
	}

	m := Method(strings.ToLower(method))
	if !m.Valid() {
		return Target{}, ErrAmbiguousMethod
	}

	target, err := parseAmount("prepTargetAmount", amountRaw)
	if err != nil {
		return Target{}, err
	}

	maxAmount := DefaultSyringeMax
	step := SyringeStep
	if m == MethodCup {
		maxAmount = DefaultCupMax
		step = CupStep
	}

	if maxRaw, ok := present(rec.PrepMaxAmount); ok {
		maxAmount, err = parseAmount("prepMaxAmount", maxRaw)
		if err != nil {
			return Target{}, err
		}
		if maxAmount == 0 {
			return Target{}, &ParseError{Field: "prepMaxAmount", Value: maxRaw, Err: errZeroMaxima}
		}
		if !onStep(maxAmount, step) {
			return Target{}, &ParseError{Field: "prepMaxAmount", Value: maxRaw, Err: errOffStep}
		}
	}

	if target > maxAmount {
		return Target{}, &ParseError{Field: "prepTargetAmount", Value: amountRaw, Err: errAboveMax}
	}
	// un target fuera de la grilla nunca se alcanza con cantidades cuantizadas
	if !onStep(target, step) {
		return Target{}, &ParseError{Field: "prepTargetAmount", Value: amountRaw, Err: errOffStep}
	}

	t := Target{
		TargetAmount: target,
		Unit:         unit,
		Method:       m,
		MaxAmount:    maxAmount,
		StepSize:     step,
	}
	if m == MethodCup {
		count := target
		t.TabletCount = &count
	}
	return t, nil
}

func onStep(v, step float64) bool {
	n := v / step
	return math.Abs(n-math.Round(n)) <= stepEpsilon
}

func present(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	v := strings.TrimSpace(*p)
	return v, v != ""
}

func parseAmount(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ParseError{Field: field, Value: raw, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Field: field, Value: raw, Err: errNotFinite}
	}
	if v < 0 {
		return 0, &ParseError{Field: field, Value: raw, Err: errNegative}
	}
	return v, nil
}
