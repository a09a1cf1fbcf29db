package dosing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var (
	syringeTarget = Target{TargetAmount: 2.5, Unit: "mL", Method: MethodSyringe, MaxAmount: 10, StepSize: 0.5}
	cupTarget     = func() Target {
		n := 2.0
		return Target{TargetAmount: 2, Unit: "tablet", Method: MethodCup, MaxAmount: 6, StepSize: 1, TabletCount: &n}
	}()
)

func TestEvaluate_CorrectSyringe(t *testing.T) {
	v := Evaluate(Attempt{Method: MethodSyringe, Amount: 2.5}, syringeTarget)

	assert.True(t, v.AmountCorrect)
	assert.True(t, v.MethodCorrect)
	assert.True(t, v.OverallCorrect)
	assert.Equal(t, TitleCorrect, v.Feedback.Title)
	assert.Empty(t, v.Feedback.WrongMethod)
	assert.Empty(t, v.Feedback.WrongAmount)
}

func TestEvaluate_WrongMethodNamesCorrectOne(t *testing.T) {
	v := Evaluate(Attempt{Method: MethodCup, Amount: 2.5}, syringeTarget)

	assert.False(t, v.MethodCorrect)
	assert.False(t, v.OverallCorrect)
	assert.Equal(t, MethodSyringe, v.Feedback.ExpectedMethod)
	assert.Equal(t, "A syringe would be the correct delivery method for this medication.", v.Feedback.WrongMethod)
	assert.Equal(t, TitleIncorrect, v.Feedback.Title)
}

func TestEvaluate_WrongMethodReportsRealTarget(t *testing.T) {
	v := Evaluate(Attempt{Method: MethodCup, Amount: 2}, syringeTarget)

	assert.Equal(t, "2 tablets", v.Feedback.Submitted)
	assert.Equal(t, "2.5 mL", v.Feedback.Expected)
	assert.Equal(t, "You prepared 2 tablets. The correct dose is 2.5 mL.", v.Feedback.WrongAmount)

	v = Evaluate(Attempt{Method: MethodSyringe, Amount: 1}, cupTarget)
	assert.Equal(t, "You prepared 1.0 mL. The correct dose is 2 tablets.", v.Feedback.WrongAmount)
}

func TestEvaluate_WrongTabletCount(t *testing.T) {
	v := Evaluate(Attempt{Method: MethodCup, Amount: 3}, cupTarget)

	assert.False(t, v.AmountCorrect)
	assert.True(t, v.MethodCorrect)
	assert.False(t, v.OverallCorrect)
	assert.Equal(t, "3 tablets", v.Feedback.Submitted)
	assert.Equal(t, "2 tablets", v.Feedback.Expected)
	assert.Equal(t, "You prepared 3 tablets. The correct dose is 2 tablets.", v.Feedback.WrongAmount)
}

func TestEvaluate_WrongVolume(t *testing.T) {
	v := Evaluate(Attempt{Method: MethodSyringe, Amount: 3}, syringeTarget)

	assert.False(t, v.AmountCorrect)
	assert.Equal(t, "You prepared 3.0 mL. The correct dose is 2.5 mL.", v.Feedback.WrongAmount)
}

func TestEvaluate_ToleranceBoundary(t *testing.T) {
	cases := []struct {
		amount float64
		want   bool
	}{
		{2.5 + 0.009, true},
		{2.5 - 0.009, true},
		{2.5 + 0.011, false},
		{2.5 - 0.011, false},
	}

	for _, tc := range cases {
		v := Evaluate(Attempt{Method: MethodSyringe, Amount: tc.amount}, syringeTarget)
		assert.Equal(t, tc.want, v.AmountCorrect, "amount=%v", tc.amount)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	a := Attempt{Method: MethodCup, Amount: 1}

	first := Evaluate(a, cupTarget)
	second := Evaluate(a, cupTarget)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("verdict changed between calls (-first +second):\n%s", diff)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1 tablet", FormatAmount(MethodCup, 1, cupTarget))
	assert.Equal(t, "0 tablets", FormatAmount(MethodCup, 0, cupTarget))
	assert.Equal(t, "2.5 mL", FormatAmount(MethodSyringe, 2.5, syringeTarget))
	// jeringa elegida para una tableta: unidad líquida por defecto
	assert.Equal(t, "2.0 mL", FormatAmount(MethodSyringe, 2, cupTarget))
}

func TestSuccessMessage(t *testing.T) {
	assert.Equal(t,
		"You correctly prepared 500 mg/5 mL using a medication cup.",
		SuccessMessage("500 mg/5 mL", MethodCup),
	)
}
