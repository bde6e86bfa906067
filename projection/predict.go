// SPDX-License-Identifier: MIT

package projection

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cohort/age"
)

// Model is a projection with its rates derived once from a HistoricalSeries.
// A Model is immutable after NewModel and safe for concurrent use.
type Model struct {
	startYear int
	survival  SurvivalRates
	births    BirthRates

	// dense forms used by the stepper
	female, male []float64 // most recent historical counts, band order
	survF, survM []float64 // survival rates, band order, len Count-1
	fertileIdx   []int     // positions of the fertile bands
}

// NewModel derives survival and birth rates from the two most recent
// historical snapshots (applying any overrides) and captures the most recent
// snapshots as the starting state.
//
// Errors:
//   - ErrSexMismatch, ErrMissingCohort from derivation.
//   - ErrInvalidCount when a starting count is negative or non-finite.
func NewModel(h HistoricalSeries, opts ...Option) (*Model, error) {
	survival, err := DeriveSurvivalRates(h, opts...)
	if err != nil {
		return nil, projectionErrorf(opNewModel, err)
	}
	births, err := DeriveBirthRates(h.FemaleEnd, h.MaleEnd, opts...)
	if err != nil {
		return nil, projectionErrorf(opNewModel, err)
	}
	female, err := h.FemaleEnd.Vector()
	if err != nil {
		return nil, projectionErrorf(opNewModel, err)
	}
	male, err := h.MaleEnd.Vector()
	if err != nil {
		return nil, projectionErrorf(opNewModel, err)
	}

	idx := make([]int, 0, age.FertilityGroupCount)
	for _, g := range age.FertilityGroups() {
		i, _ := age.Index(g) // fixed enumeration; cannot fail
		idx = append(idx, i)
	}

	return &Model{
		startYear:  h.StartYear(),
		survival:   survival,
		births:     births,
		female:     female,
		male:       male,
		survF:      survival.vector(Female),
		survM:      survival.vector(Male),
		fertileIdx: idx,
	}, nil
}

// SurvivalRates returns a copy of the rates feeding the stepper.
func (m *Model) SurvivalRates() SurvivalRates {
	cp := func(src map[age.Group]float64) map[age.Group]float64 {
		out := make(map[age.Group]float64, len(src))
		for g, r := range src {
			out[g] = r
		}
		return out
	}

	return SurvivalRates{Female: cp(m.survival.Female), Male: cp(m.survival.Male)}
}

// BirthRates returns the birth rates feeding the stepper.
func (m *Model) BirthRates() BirthRates { return m.births }

// StartYear returns the year the projection steps from.
func (m *Model) StartYear() int { return m.startYear }

// Predict steps the population from StartYear+5 up to and including endYear.
//
// Algorithm, per step:
//  1. W = Σ previous female counts over the fertile bands.
//  2. female[0-4] = round(W × BirthRates.Female); male[0-4] likewise.
//  3. For every other band i: next[i] = round(prev[i-1] × Survival[i-1]).
//  4. Emit the Female then the Male snapshot; they become "previous".
//
// Rounding is half away from zero (math.Round).
//
// Errors:
//   - ErrMisalignedYear when endYear−StartYear is not a multiple of age.Step.
//   - ErrHorizon when endYear < StartYear+age.Step.
//
// Complexity: O(steps × age.Count).
func (m *Model) Predict(endYear int) (Series, error) {
	steps, err := m.stepsTo(endYear)
	if err != nil {
		return nil, projectionErrorf(opPredict, err)
	}

	out := make(Series, 0, 2*steps)
	prevF, prevM := m.female, m.male
	for year := m.startYear + age.Step; year <= endYear; year += age.Step {
		nextF, nextM := m.step(prevF, prevM, math.Round)
		out = append(out,
			snapshotFromVector(Female, year, nextF),
			snapshotFromVector(Male, year, nextM),
		)
		prevF, prevM = nextF, nextM
	}

	return out, nil
}

// Totals runs the same recurrence without rounding and returns the total
// population (both sexes) after each of the first steps steps. It is the
// continuous form used for sensitivity analysis, where rounding would add
// noise to the variance decomposition.
func (m *Model) Totals(steps int) []float64 {
	if steps <= 0 {
		return nil
	}
	out := make([]float64, steps)
	prevF, prevM := m.female, m.male
	for s := 0; s < steps; s++ {
		nextF, nextM := m.step(prevF, prevM, identity)
		out[s] = sum(nextF) + sum(nextM)
		prevF, prevM = nextF, nextM
	}

	return out
}

// step advances one five-year interval. prevF and prevM are never written;
// the returned vectors are freshly allocated.
func (m *Model) step(prevF, prevM []float64, round func(float64) float64) (nextF, nextM []float64) {
	var women float64
	for _, i := range m.fertileIdx {
		women += prevF[i]
	}

	nextF = make([]float64, age.Count)
	nextM = make([]float64, age.Count)
	nextF[0] = round(women * m.births.Female)
	nextM[0] = round(women * m.births.Male)
	for i := 1; i < age.Count; i++ {
		nextF[i] = round(prevF[i-1] * m.survF[i-1])
		nextM[i] = round(prevM[i-1] * m.survM[i-1])
	}

	return nextF, nextM
}

// stepsTo validates endYear against the five-year grid.
func (m *Model) stepsTo(endYear int) (int, error) {
	delta := endYear - m.startYear
	if delta%age.Step != 0 {
		return 0, fmt.Errorf("end year %d, start year %d: %w", endYear, m.startYear, ErrMisalignedYear)
	}
	if delta < age.Step {
		return 0, fmt.Errorf("end year %d, start year %d: %w", endYear, m.startYear, ErrHorizon)
	}

	return delta / age.Step, nil
}

// Predict is NewModel followed by Model.Predict. It is the single entry
// point for both the purely historical projection and the scenario with
// fertility, newborn-share or survival overrides.
//
// Example:
//
//	series, err := Predict(h, 2050)                       // historical rates
//	series, err := Predict(h, 2050, WithFertility(1.4))   // scenario
func Predict(h HistoricalSeries, endYear int, opts ...Option) (Series, error) {
	m, err := NewModel(h, opts...)
	if err != nil {
		return nil, err
	}

	return m.Predict(endYear)
}

func identity(x float64) float64 { return x }

func sum(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}

	return s
}
