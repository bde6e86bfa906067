// SPDX-License-Identifier: MIT

package projection

import (
	"fmt"

	"github.com/katalvlaran/cohort/age"
)

// DeriveBirthRates computes per-sex birth rates from a Female and a Male
// snapshot of the same year.
//
// Base case:
//
//	newborns   = female[0-4] + male[0-4]
//	women      = Σ female[20-24 … 35-39]
//	fertility  = newborns / women          (0 when women == 0)
//	share      = female[0-4] / newborns    (0 when newborns == 0)
//	Female     = fertility × share
//	Male       = fertility × (1 − share)
//
// Overrides: WithFertility replaces fertility by fertility/FertilityGroupCount;
// WithFemalePercentage replaces share. Each override is independent.
//
// Errors:
//   - ErrSexMismatch when female/male are swapped.
//   - ErrMissingCohort when 0-4 or a fertile band is absent.
func DeriveBirthRates(female, male Snapshot, opts ...Option) (BirthRates, error) {
	if female.Sex != Female {
		return BirthRates{}, projectionErrorf(opDeriveBirth,
			fmt.Errorf("female argument holds %s: %w", female.Sex, ErrSexMismatch))
	}
	if male.Sex != Male {
		return BirthRates{}, projectionErrorf(opDeriveBirth,
			fmt.Errorf("male argument holds %s: %w", male.Sex, ErrSexMismatch))
	}

	femaleBorn, err := female.Count(age.First())
	if err != nil {
		return BirthRates{}, projectionErrorf(opDeriveBirth, err)
	}
	maleBorn, err := male.Count(age.First())
	if err != nil {
		return BirthRates{}, projectionErrorf(opDeriveBirth, err)
	}
	women, err := fertileWomen(female)
	if err != nil {
		return BirthRates{}, projectionErrorf(opDeriveBirth, err)
	}

	return birthRates(femaleBorn, maleBorn, women, gatherOptions(opts)), nil
}

// birthRates combines observed newborns and fertile women with overrides.
func birthRates(femaleBorn, maleBorn, women float64, o options) BirthRates {
	newborns := femaleBorn + maleBorn

	fertility := finiteOrZero(newborns / women)
	if o.hasFertility {
		fertility = o.fertility / age.FertilityGroupCount
	}
	share := finiteOrZero(femaleBorn / newborns)
	if o.hasFemalePct {
		share = o.femalePct
	}

	return BirthRates{
		Female: fertility * share,
		Male:   fertility * (1 - share),
	}
}

// fertileWomen sums the fertile bands of a Female snapshot.
func fertileWomen(female Snapshot) (float64, error) {
	var sum float64
	for _, g := range age.FertilityGroups() {
		v, err := female.Count(g)
		if err != nil {
			return 0, err
		}
		sum += v
	}

	return sum, nil
}
