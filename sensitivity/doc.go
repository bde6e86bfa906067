// Package sensitivity measures how strongly each projection assumption drives
// the projected population, using variance-based (Sobol) global sensitivity
// analysis.
//
// What is a Sobol index?
//
//	For a model Y = f(X1, …, Xd) with independent inputs, the first-order
//	index S1_i is the share of Var(Y) explained by Xi alone; the total-order
//	index ST_i adds every interaction involving Xi. S1 ≈ ST means Xi acts
//	additively; ST ≫ S1 flags interactions.
//
// Pipeline:
//
//  1. DeriveRanges  — min/max of fertility, newborn sex share and per-band
//     survival ratios observed across a multi-year history.
//  2. DefaultProblem — pick the parameters to vary and their bounds.
//  3. Sample        — Saltelli cross-sampling: N·(d+2) parameter rows.
//  4. Evaluate      — run the continuous cohort recurrence for every row and
//     record the total population at each horizon.
//  5. Analyze       — first- and total-order indices per parameter.
//
// Analyzer.Run chains steps 3–5 for several horizons and logs each stage.
//
// Usage:
//
//	ranges, err := sensitivity.DeriveRanges(history)
//	problem := sensitivity.DefaultProblem(ranges)
//	report, err := sensitivity.NewAnalyzer(
//		sensitivity.WithSeed(7),
//		sensitivity.WithLogger(logger),
//	).Run(h, problem)
//
// Sampling uses a seeded pseudo-random source, so equal seeds reproduce
// equal reports.
package sensitivity
