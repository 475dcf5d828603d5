// Package money converts between the external floating representation of an
// amount and the internal integer minor-units representation every other
// package operates on. It is used only at the public API boundary (C1).
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

const scale = 100

// Parse converts an external floating amount into integer minor units,
// half-to-even rounding to 2 decimal places first so that binary-float noise
// (32.980000001) never leaks into the stored balance, and so that exact
// halfway cases (x.xx5) round the way spec.md mandates rather than always up.
// It returns false if x is not a finite number.
func Parse(x float64) (int64, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}

	rounded := decimal.NewFromFloat(x).RoundBank(2)

	return rounded.Mul(decimal.NewFromInt(scale)).Round(0).IntPart(), true
}

// Format converts an integer minor-units balance back into an external
// floating amount, rounded to 2 decimal places.
func Format(minorUnits int64) float64 {
	amount := decimal.NewFromInt(minorUnits).Div(decimal.NewFromInt(scale))

	f, _ := amount.Round(2).Float64()

	return f
}
