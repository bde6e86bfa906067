// Package age defines the fixed, ordered enumeration of five-year age bands
// used by every cohort computation in this module.
//
// What & Why:
//
//	A cohort-component projection ages people forward one band per step, so
//	the order of bands is part of the model: band i survives into band i+1.
//	The enumeration is a process-wide constant; callers receive copies and
//	can never reorder or extend it.
//
// Bands:
//
//	0-4, 5-9, 10-14, …, 90-94, 95-99, 100+   (21 bands, the last open-ended)
//
// Fertility bands:
//
//	20-24, 25-29, 30-34, 35-39 — the female bands whose population drives
//	the size of each new 0-4 cohort.
//
// Usage:
//
//	for _, g := range age.Groups() {
//		next, err := age.Next(g) // ErrNoNextGroup for "100+"
//		...
//	}
package age
