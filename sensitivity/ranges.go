// SPDX-License-Identifier: MIT

package sensitivity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cohort/age"
	"github.com/katalvlaran/cohort/projection"
)

// DegenerateWidth is added to a range whose min equals its max, so that every
// parameter has a non-empty interval to sample from.
const DegenerateWidth = 1e-7

// DeriveRanges scans a chronological history and returns the observed
// extremes of every assumption.
//
// Implementation:
//   - Stage 1: validate order (strictly ascending years) and sexes.
//   - Stage 2: per year, fertility = (f[0-4]+m[0-4]) / Σ f[fertile] × 4 and
//     female share = f[0-4] / (f[0-4]+m[0-4]); zero denominators yield 0.
//   - Stage 3: for every pair of years exactly one step apart, survival
//     ratio per band per sex (projection.SurvivalRate, clamped).
//   - Stage 4: widen degenerate intervals by DegenerateWidth.
//
// Errors:
//   - ErrShortHistory when no two years are one step apart.
//   - ErrUnsortedHistory when years repeat or go backwards.
//   - projection.ErrSexMismatch, projection.ErrMissingCohort on bad snapshots.
//
// Complexity: O(y² + y·age.Count) for y years.
func DeriveRanges(history []YearPair) (Ranges, error) {
	for i, p := range history {
		if p.Female.Sex != projection.Female || p.Male.Sex != projection.Male {
			return Ranges{}, sensitivityErrorf(opDeriveRanges,
				fmt.Errorf("year %d: %w", p.Year(), projection.ErrSexMismatch))
		}
		if p.Male.Year != p.Female.Year {
			return Ranges{}, sensitivityErrorf(opDeriveRanges,
				fmt.Errorf("female %d, male %d: %w", p.Female.Year, p.Male.Year, ErrUnsortedHistory))
		}
		if i > 0 && p.Year() <= history[i-1].Year() {
			return Ranges{}, sensitivityErrorf(opDeriveRanges,
				fmt.Errorf("%d after %d: %w", p.Year(), history[i-1].Year(), ErrUnsortedHistory))
		}
	}

	fert := newTracker()
	share := newTracker()
	for _, p := range history {
		f, s, err := birthAssumptions(p)
		if err != nil {
			return Ranges{}, sensitivityErrorf(opDeriveRanges, err)
		}
		fert.add(f)
		share.add(s)
	}

	groups := age.Groups()
	femaleSurv := make(map[age.Group]*tracker, age.Count-1)
	maleSurv := make(map[age.Group]*tracker, age.Count-1)
	for _, g := range groups[:age.Count-1] {
		femaleSurv[g] = newTracker()
		maleSurv[g] = newTracker()
	}

	intervals := 0
	for i, start := range history {
		for _, end := range history[i+1:] {
			if end.Year()-start.Year() != age.Step {
				continue
			}
			intervals++
			h := projection.HistoricalSeries{
				FemaleStart: start.Female, MaleStart: start.Male,
				FemaleEnd: end.Female, MaleEnd: end.Male,
			}
			rates, err := projection.DeriveSurvivalRates(h)
			if err != nil {
				return Ranges{}, sensitivityErrorf(opDeriveRanges, err)
			}
			for _, g := range groups[:age.Count-1] {
				femaleSurv[g].add(rates.Female[g])
				maleSurv[g].add(rates.Male[g])
			}
		}
	}
	if intervals == 0 {
		return Ranges{}, sensitivityErrorf(opDeriveRanges,
			fmt.Errorf("%d years, no %d-year interval: %w", len(history), age.Step, ErrShortHistory))
	}

	r := Ranges{
		Fertility:        fert.bounds(math.Inf(1)),
		FemalePercentage: share.bounds(1),
		FemaleSurvival:   make(map[age.Group]Bounds, age.Count-1),
		MaleSurvival:     make(map[age.Group]Bounds, age.Count-1),
	}
	for _, g := range groups[:age.Count-1] {
		r.FemaleSurvival[g] = femaleSurv[g].bounds(math.Inf(1))
		r.MaleSurvival[g] = maleSurv[g].bounds(math.Inf(1))
	}

	return r, nil
}

// birthAssumptions returns the fertility (births per fertile woman per step,
// on the WithFertility scale) and female newborn share of one year.
func birthAssumptions(p YearPair) (fertility, share float64, err error) {
	femaleBorn, err := p.Female.Count(age.First())
	if err != nil {
		return 0, 0, err
	}
	maleBorn, err := p.Male.Count(age.First())
	if err != nil {
		return 0, 0, err
	}
	var women float64
	for _, g := range age.FertilityGroups() {
		v, err := p.Female.Count(g)
		if err != nil {
			return 0, 0, err
		}
		women += v
	}

	fertility = finiteOrZero((femaleBorn+maleBorn)/women) * age.FertilityGroupCount
	share = finiteOrZero(femaleBorn / (femaleBorn + maleBorn))

	return fertility, share, nil
}

func finiteOrZero(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}

	return x
}

// tracker accumulates a running min/max.
type tracker struct{ min, max float64 }

func newTracker() *tracker {
	return &tracker{min: math.Inf(1), max: math.Inf(-1)}
}

func (t *tracker) add(x float64) {
	if x < t.min {
		t.min = x
	}
	if x > t.max {
		t.max = x
	}
}

// bounds returns [min, max], widened by DegenerateWidth when min >= max.
// When widening upward would cross limit, the interval widens downward.
func (t *tracker) bounds(limit float64) Bounds {
	b := Bounds{Min: t.min, Max: t.max}
	if b.Min < b.Max {
		return b
	}
	if b.Max+DegenerateWidth <= limit {
		b.Max += DegenerateWidth
	} else {
		b.Min -= DegenerateWidth
	}

	return b
}
