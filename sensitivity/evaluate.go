// SPDX-License-Identifier: MIT

package sensitivity

import (
	"fmt"

	"github.com/katalvlaran/cohort/matrix"
	"github.com/katalvlaran/cohort/projection"
)

// Evaluate runs the continuous cohort recurrence for every sampled row and
// records the total population after each horizon (in steps).
//
// The result has one row per sample row and one column per horizon.
//
// Errors:
//   - ErrSampleShape when samples has the wrong number of columns or a
//     horizon is < 1.
//   - ErrInvalidBounds when a sampled value lies outside its bounds.
//   - projection errors from NewModel (missing cohorts, sex mismatch).
//
// Complexity: O(rows · max(horizons) · age.Count).
func Evaluate(h projection.HistoricalSeries, p Problem, samples *matrix.Dense, horizons []int) (*matrix.Dense, error) {
	if samples == nil || samples.Cols() != p.Len() {
		return nil, sensitivityErrorf(opEvaluate, fmt.Errorf("samples for %d parameters: %w", p.Len(), ErrSampleShape))
	}
	maxSteps, err := maxHorizon(horizons)
	if err != nil {
		return nil, sensitivityErrorf(opEvaluate, err)
	}

	out, err := matrix.NewDense(samples.Rows(), len(horizons))
	if err != nil {
		return nil, sensitivityErrorf(opEvaluate, err)
	}
	for r := 0; r < samples.Rows(); r++ {
		totals, err := runRow(h, p, samples, r, maxSteps)
		if err != nil {
			return nil, sensitivityErrorf(opEvaluate, err)
		}
		for c, steps := range horizons {
			if err = out.Set(r, c, totals[steps-1]); err != nil {
				return nil, sensitivityErrorf(opEvaluate, err)
			}
		}
	}

	return out, nil
}

// Envelope returns the population trajectories (totals after each of steps
// steps) with the smallest and the largest final population across samples.
func Envelope(h projection.HistoricalSeries, p Problem, samples *matrix.Dense, steps int) (lo, hi []float64, err error) {
	if samples == nil || samples.Cols() != p.Len() || samples.Rows() == 0 {
		return nil, nil, sensitivityErrorf(opEnvelope, fmt.Errorf("samples for %d parameters: %w", p.Len(), ErrSampleShape))
	}
	if steps < 1 {
		return nil, nil, sensitivityErrorf(opEnvelope, fmt.Errorf("steps = %d: %w", steps, ErrSampleShape))
	}

	for r := 0; r < samples.Rows(); r++ {
		totals, err := runRow(h, p, samples, r, steps)
		if err != nil {
			return nil, nil, sensitivityErrorf(opEnvelope, err)
		}
		last := totals[steps-1]
		if lo == nil || last < lo[steps-1] {
			lo = totals
		}
		if hi == nil || last > hi[steps-1] {
			hi = totals
		}
	}

	return lo, hi, nil
}

// runRow projects sample row r and returns its totals.
func runRow(h projection.HistoricalSeries, p Problem, samples *matrix.Dense, r, steps int) ([]float64, error) {
	row, err := samples.Row(r)
	if err != nil {
		return nil, err
	}
	opts, err := p.Options(row)
	if err != nil {
		return nil, fmt.Errorf("row %d: %w", r, err)
	}
	m, err := projection.NewModel(h, opts...)
	if err != nil {
		return nil, err
	}

	return m.Totals(steps), nil
}

func maxHorizon(horizons []int) (int, error) {
	if len(horizons) == 0 {
		return 0, fmt.Errorf("no horizons: %w", ErrSampleShape)
	}
	maxSteps := 0
	for _, s := range horizons {
		if s < 1 {
			return 0, fmt.Errorf("horizon %d: %w", s, ErrSampleShape)
		}
		if s > maxSteps {
			maxSteps = s
		}
	}

	return maxSteps, nil
}
