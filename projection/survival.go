// SPDX-License-Identifier: MIT

package projection

import (
	"github.com/katalvlaran/cohort/age"
)

// SurvivalRate returns end/start, the fraction of a cohort observed one band
// older after one step.
//
// Any non-finite quotient (NaN from 0/0, ±Inf from x/0) resolves to exactly
// 0.0 so that an empty starting cohort cannot poison later arithmetic.
//
// Example:
//
//	SurvivalRate(1000, 900) // 0.9
//	SurvivalRate(0, 5)      // 0.0
func SurvivalRate(start, end float64) float64 {
	return finiteOrZero(end / start)
}

// DeriveSurvivalRates computes, per sex, rate[g] = End[next(g)] / Start[g]
// for every band g except the open-ended one.
//
// Implementation:
//   - Stage 1: validate the sex of every historical slot.
//   - Stage 2: derive the ratios band by band, clamping non-finite ones.
//   - Stage 3: overlay WithSurvivalOverride entries, per sex independently.
//
// Errors:
//   - ErrSexMismatch when a slot holds the wrong sex.
//   - ErrMissingCohort when a band of any snapshot is absent.
//   - ErrInvalidCount when a count of any snapshot is negative or non-finite.
//
// Complexity: O(age.Count).
func DeriveSurvivalRates(h HistoricalSeries, opts ...Option) (SurvivalRates, error) {
	if err := h.validate(); err != nil {
		return SurvivalRates{}, projectionErrorf(opDeriveSurvival, err)
	}
	o := gatherOptions(opts)

	female, err := deriveSexSurvival(h.FemaleStart, h.FemaleEnd, o.survival[Female])
	if err != nil {
		return SurvivalRates{}, projectionErrorf(opDeriveSurvival, err)
	}
	male, err := deriveSexSurvival(h.MaleStart, h.MaleEnd, o.survival[Male])
	if err != nil {
		return SurvivalRates{}, projectionErrorf(opDeriveSurvival, err)
	}

	return SurvivalRates{Female: female, Male: male}, nil
}

// deriveSexSurvival derives one sex's ratios and applies its overrides.
func deriveSexSurvival(start, end Snapshot, override map[age.Group]float64) (map[age.Group]float64, error) {
	s, err := start.Vector()
	if err != nil {
		return nil, err
	}
	e, err := end.Vector()
	if err != nil {
		return nil, err
	}
	groups := age.Groups()
	rates := make(map[age.Group]float64, len(groups)-1)
	for i := 0; i < len(groups)-1; i++ {
		rates[groups[i]] = SurvivalRate(s[i], e[i+1])
	}
	for g, r := range override {
		rates[g] = r
	}

	return rates, nil
}

// finiteOrZero clamps NaN, +Inf and -Inf to 0.
func finiteOrZero(x float64) float64 {
	if isNonFinite(x) {
		return 0
	}

	return x
}
