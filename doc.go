// Package cohort is your in-memory toolkit for projecting populations by
// five-year age band and sex, and for asking which assumption the projection
// is most sensitive to.
//
// 🚀 What is cohort?
//
//	A small, deterministic library that brings together:
//		• Age bands: the 21 canonical bands 0-4 … 95-99, 100+
//		• Projection: survival & birth rates from two censuses, stepped forward
//		• Overrides: fertility, newborn sex ratio, per-band survival
//		• Sensitivity: observed ranges, Saltelli sampling, Sobol S1/ST indices
//
// ✨ Why choose cohort?
//
//   - Beginner-friendly – one HistoricalSeries in, one Series out
//   - Reproducible – integer-rounded steps, seeded sampling
//   - Pure Go – no cgo; shopspring/decimal for display rounding, zap for logs
//
// Under the hood, everything is organized under four subpackages:
//
//	age/         — canonical age bands, ordering and fertile bands
//	projection/  — snapshots, rate derivation, Model, Predict, Totals
//	sensitivity/ — ranges, Problem, Sample, Evaluate, Analyze, Analyzer
//	matrix/      — dense row-major float64 matrix for sample designs
//
// Quick ASCII example (one step, survival s, birth rate b):
//
//	F[20-24]₂₀₂₀ ──s──▶ F[25-29]₂₀₂₅
//	ΣF[fertile]₂₀₂₀ ──b──▶ F[0-4]₂₀₂₅
//
// See examples/ for a national projection and a full sensitivity study.
//
//	go get github.com/katalvlaran/cohort/projection
package cohort
