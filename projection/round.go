// SPDX-License-Identifier: MIT

package projection

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/cohort/age"
)

// DisplayPlaces is the number of decimals used when survival ratios are shown
// to people.
const DisplayPlaces = 3

// RoundPlaces rounds x to places decimals, half away from zero, using exact
// decimal arithmetic (so 0.0005 rounds up, which binary float tricks miss).
// Non-finite inputs return 0.
func RoundPlaces(x float64, places int32) float64 {
	if isNonFinite(x) {
		return 0
	}

	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}

// RoundedSurvivalRate is SurvivalRate rounded to DisplayPlaces for display.
// The stepper always uses the raw ratio.
func RoundedSurvivalRate(start, end float64) float64 {
	return RoundPlaces(SurvivalRate(start, end), DisplayPlaces)
}

// Rounded returns a display copy of r with every ratio rounded to places
// decimals. r is not modified.
func (r SurvivalRates) Rounded(places int32) SurvivalRates {
	round := func(src map[age.Group]float64) map[age.Group]float64 {
		out := make(map[age.Group]float64, len(src))
		for g, v := range src {
			out[g] = RoundPlaces(v, places)
		}
		return out
	}

	return SurvivalRates{Female: round(r.Female), Male: round(r.Male)}
}
