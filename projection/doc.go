// Package projection implements the cohort-component population projection:
// survival-ratio derivation, birth-rate derivation and the five-year stepper.
//
// 🚀 What is the cohort-component method?
//
//	Every sex/age cohort is aged forward one band per step by a survival
//	ratio, and a new 0-4 cohort is produced from the number of women in the
//	fertile bands. Repeating that step walks the population forward in time:
//
//	  births_f   = round(W × BirthRate_f)        W = Σ female[20-24 … 35-39]
//	  births_m   = round(W × BirthRate_m)
//	  next[i]    = round(prev[i-1] × Survival[i-1])    for every band i > 0
//
// ✨ Key features:
//   - rates derived from the two most recent historical snapshots
//   - per-band, per-sex survival overrides (WithSurvivalOverride)
//   - fertility and newborn sex-split overrides (WithFertility,
//     WithFemalePercentage)
//   - non-finite ratios (zero denominators) clamp to 0.0 and never poison
//     the recurrence
//   - deterministic, allocation-only: no shared state between calls
//
// ⚙️ Usage:
//
//	h := projection.HistoricalSeries{
//		FemaleStart: f2015, MaleStart: m2015,
//		FemaleEnd:   f2020, MaleEnd:   m2020,
//	}
//	series, err := projection.Predict(h, 2050,
//		projection.WithFertility(1.6),
//		projection.WithSurvivalRate(projection.Male, age.G60to64, 0.93),
//	)
//
// Years must sit on the five-year grid of the historical snapshots;
// misaligned horizons are rejected with ErrMisalignedYear rather than
// coerced.
//
// Complexity: O(steps × bands) time, O(steps × bands) memory for the
// returned Series.
package projection
