// SPDX-License-Identifier: MIT
// Package projection: functional options for rate overrides.
//
// Contract:
//   - Options are functional (type Option func(*options)).
//   - Constructors validate eagerly and panic on nonsensical values; the
//     algorithms themselves never panic.
//   - With no options every rate is derived from the historical snapshots.
//   - Later options win: applying WithFertility twice keeps the last value.

package projection

import (
	"fmt"

	"github.com/katalvlaran/cohort/age"
)

const (
	panicFertilityInvalid  = "projection: WithFertility: fertility must be finite and non-negative"
	panicPercentageInvalid = "projection: WithFemalePercentage: percentage must be within [0,1]"
	panicSexInvalid        = "projection: WithSurvivalOverride: unknown sex"
	panicRateInvalid       = "projection: WithSurvivalOverride: rate must be finite and non-negative"
	panicGroupInvalid      = "projection: WithSurvivalOverride: group has no survival rate"
)

// Option configures rate derivation.
type Option func(*options)

// options is the resolved configuration.
type options struct {
	hasFertility bool
	fertility    float64 // total births per fertile woman per step

	hasFemalePct bool
	femalePct    float64 // share of newborns that are female, [0,1]

	survival [2]map[age.Group]float64 // per-sex overrides, indexed by Sex
}

// WithFertility overrides the derived fertility with an absolute figure:
// total expected births per fertile woman per step. It is normalized by the
// number of fertile bands, so 4.0 means one birth per woman per band.
// Panics on NaN, ±Inf or a negative value.
func WithFertility(fertility float64) Option {
	if isNonFinite(fertility) || fertility < 0 {
		panic(panicFertilityInvalid)
	}

	return func(o *options) {
		o.hasFertility = true
		o.fertility = fertility
	}
}

// WithFemalePercentage overrides the derived share of female newborns.
// Panics unless p is within [0,1].
func WithFemalePercentage(p float64) Option {
	if isNonFinite(p) || p < 0 || p > 1 {
		panic(panicPercentageInvalid)
	}

	return func(o *options) {
		o.hasFemalePct = true
		o.femalePct = p
	}
}

// WithSurvivalOverride replaces the derived survival rate of every band
// listed in rates, for one sex only. Bands not listed keep their derived
// value. The map is copied.
//
// Panics on an unknown sex, an unknown or open-ended band, or a negative or
// non-finite rate.
func WithSurvivalOverride(sex Sex, rates map[age.Group]float64) Option {
	if !sex.Valid() {
		panic(panicSexInvalid)
	}
	cp := make(map[age.Group]float64, len(rates))
	for g, r := range rates {
		if !g.Valid() || g.IsOpenEnded() {
			panic(fmt.Sprintf("%s: %q", panicGroupInvalid, g))
		}
		if isNonFinite(r) || r < 0 {
			panic(panicRateInvalid)
		}
		cp[g] = r
	}

	return func(o *options) {
		if o.survival[sex] == nil {
			o.survival[sex] = make(map[age.Group]float64, len(cp))
		}
		for g, r := range cp {
			o.survival[sex][g] = r
		}
	}
}

// WithSurvivalRate is WithSurvivalOverride for a single band.
func WithSurvivalRate(sex Sex, g age.Group, rate float64) Option {
	return WithSurvivalOverride(sex, map[age.Group]float64{g: rate})
}

// gatherOptions applies opts over the zero configuration.
func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
