// SPDX-License-Identifier: MIT

package sensitivity

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/cohort/age"
	"github.com/katalvlaran/cohort/matrix"
	"github.com/katalvlaran/cohort/projection"
)

// HorizonIndices are the indices of one projection horizon.
type HorizonIndices struct {
	Steps    int     // projection steps from the most recent historical year
	Year     int     // calendar year reached after Steps
	Mean     float64 // mean projected total over all design rows
	Variance float64 // sample variance of the projected total
	Indices
}

// Report is the result of Analyzer.Run.
type Report struct {
	Problem     Problem
	BaseSamples int
	Rows        int // model evaluations, BaseSamples·(d+2)
	Horizons    []HorizonIndices
}

// Analyzer runs the sample → evaluate → analyze pipeline for several
// horizons at once.
type Analyzer struct {
	cfg config
}

// NewAnalyzer resolves opts. Without options it uses DefaultBaseSamples,
// DefaultHorizons, DefaultSeed and a no-op logger.
func NewAnalyzer(opts ...Option) *Analyzer {
	return &Analyzer{cfg: gatherOptions(opts)}
}

// Run samples p, evaluates every row against h and computes Sobol indices for
// each configured horizon.
//
// Errors: any error of Sample, Evaluate or Analyze, wrapped with the stage.
func (a *Analyzer) Run(h projection.HistoricalSeries, p Problem) (Report, error) {
	log := a.cfg.logger.With(
		zap.Int("parameters", p.Len()),
		zap.Int("base_samples", a.cfg.base),
		zap.Int("start_year", h.StartYear()),
	)

	began := time.Now()
	samples, err := Sample(p, a.cfg.base, WithRand(a.cfg.source()))
	if err != nil {
		log.Error("sampling failed", zap.Error(err))
		return Report{}, sensitivityErrorf(opRun, err)
	}
	log.Debug("sampled design", zap.Int("rows", samples.Rows()), zap.Duration("elapsed", time.Since(began)))

	began = time.Now()
	outputs, err := Evaluate(h, p, samples, a.cfg.horizons)
	if err != nil {
		log.Error("evaluation failed", zap.Error(err))
		return Report{}, sensitivityErrorf(opRun, err)
	}
	log.Debug("evaluated design", zap.Ints("horizons", a.cfg.horizons), zap.Duration("elapsed", time.Since(began)))

	means, variances := outputs.ColumnMeans(), outputs.ColumnVariances()
	report := Report{
		Problem:     p,
		BaseSamples: a.cfg.base,
		Rows:        samples.Rows(),
		Horizons:    make([]HorizonIndices, 0, len(a.cfg.horizons)),
	}
	for c, steps := range a.cfg.horizons {
		ix, err := Analyze(p, column(outputs, c))
		if err != nil {
			log.Error("analysis failed", zap.Int("steps", steps), zap.Error(err))
			return Report{}, sensitivityErrorf(opRun, err)
		}
		year := h.StartYear() + steps*age.Step
		log.Debug("analyzed horizon", zap.Int("steps", steps), zap.Int("year", year), zap.Float64("mean", means[c]))
		report.Horizons = append(report.Horizons, HorizonIndices{
			Steps:    steps,
			Year:     year,
			Mean:     means[c],
			Variance: variances[c],
			Indices:  ix,
		})
	}

	return report, nil
}

// column extracts column c of m.
func column(m *matrix.Dense, c int) []float64 {
	out := make([]float64, m.Rows())
	for r := range out {
		out[r], _ = m.At(r, c) // r, c within bounds by construction
	}

	return out
}
