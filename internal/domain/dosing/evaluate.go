package dosing

import (
	"fmt"
	"math"
)

const (
	TitleCorrect   = "Correct!"
	TitleIncorrect = "Not Quite Right"

	defaultLiquidUnit = "mL"
)

// Attempt es lo que el estudiante entregó: método elegido + cantidad.
type Attempt struct {
	Method Method
	Amount float64
}

// Evaluate compara un intento con el Target. Es pura: llamarla dos veces da el mismo Verdict.
func Evaluate(a Attempt, t Target) Verdict {
	amountOK := math.Abs(a.Amount-t.TargetAmount) < AmountTolerance
	methodOK := a.Method == t.Method

	v := Verdict{
		AmountCorrect:  amountOK,
		MethodCorrect:  methodOK,
		OverallCorrect: amountOK && methodOK,
		Feedback: Feedback{
			Title:          TitleIncorrect,
			ChosenMethod:   a.Method,
			ExpectedMethod: t.Method,
			Submitted:      FormatAmount(a.Method, a.Amount, t),
			Expected:       FormatAmount(t.Method, t.TargetAmount, t),
		},
	}

	if v.OverallCorrect {
		v.Feedback.Title = TitleCorrect
	}
	if !methodOK {
		v.Feedback.WrongMethod = fmt.Sprintf(
			"A %s would be the correct delivery method for this medication.",
			t.Method.DisplayName(),
		)
	}
	if !amountOK {
		v.Feedback.WrongAmount = fmt.Sprintf(
			"You prepared %s. The correct dose is %s.",
			v.Feedback.Submitted, v.Feedback.Expected,
		)
	}
	return v
}

// FormatAmount: cup = tabletas enteras con plural; syringe = un decimal + unidad.
// Evaluate formatea lo entregado con el método elegido y lo esperado con el del Target.
func FormatAmount(m Method, amount float64, t Target) string {
	if m == MethodCup {
		n := int(math.Round(amount))
		if n == 1 {
			return "1 tablet"
		}
		return fmt.Sprintf("%d tablets", n)
	}

	unit := defaultLiquidUnit
	if t.Method == MethodSyringe && t.Unit != "" {
		unit = t.Unit
	}
	return fmt.Sprintf("%.1f %s", amount, unit)
}

// SuccessMessage arma el texto de éxito con la dosis ordenada (texto del catálogo).
func SuccessMessage(dosage string, m Method) string {
	return fmt.Sprintf("You correctly prepared %s using a %s.", dosage, m.DisplayName())
}
