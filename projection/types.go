// SPDX-License-Identifier: MIT

// Package projection: domain types. Everything here is value-semantic;
// maps are copied on the way in (NewSnapshot, Clone) and on the way out of
// every Series so that no two snapshots share storage.
package projection

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cohort/age"
)

// Sex selects one half of the population.
type Sex int

const (
	// Female snapshots drive births through the fertile bands.
	Female Sex = iota
	// Male snapshots are aged forward alongside Female ones.
	Male
)

// String implements fmt.Stringer.
func (s Sex) String() string {
	switch s {
	case Female:
		return "Female"
	case Male:
		return "Male"
	default:
		return fmt.Sprintf("Sex(%d)", int(s))
	}
}

// Valid reports whether s is Female or Male.
func (s Sex) Valid() bool { return s == Female || s == Male }

// Snapshot is one sex's full age distribution at one point in time.
//
// Counts maps every band of age.Groups to a non-negative population count.
// Historical inputs may carry fractional counts; projected snapshots are
// always integral.
type Snapshot struct {
	Sex    Sex
	Year   int
	Counts map[age.Group]float64
}

// NewSnapshot builds a Snapshot from a copy of counts.
func NewSnapshot(sex Sex, year int, counts map[age.Group]float64) Snapshot {
	s := Snapshot{Sex: sex, Year: year, Counts: make(map[age.Group]float64, len(counts))}
	for g, v := range counts {
		s.Counts[g] = v
	}

	return s
}

// Count returns the population of band g.
// Errors: ErrMissingCohort when g is absent.
func (s Snapshot) Count(g age.Group) (float64, error) {
	v, ok := s.Counts[g]
	if !ok {
		return 0, fmt.Errorf("%s %d band %q: %w", s.Sex, s.Year, g, ErrMissingCohort)
	}

	return v, nil
}

// Clone returns a deep copy; the result shares no storage with s.
func (s Snapshot) Clone() Snapshot {
	return NewSnapshot(s.Sex, s.Year, s.Counts)
}

// Total sums every band present in the snapshot.
func (s Snapshot) Total() float64 {
	var sum float64
	for _, g := range age.Groups() {
		sum += s.Counts[g]
	}

	return sum
}

// Vector returns the counts in band order.
// Errors: ErrMissingCohort for the first absent band, ErrInvalidCount for a
// negative or non-finite value.
// Complexity: O(age.Count).
func (s Snapshot) Vector() ([]float64, error) {
	out := make([]float64, age.Count)
	for i, g := range age.Groups() {
		v, err := s.Count(g)
		if err != nil {
			return nil, err
		}
		if isNonFinite(v) || v < 0 {
			return nil, fmt.Errorf("%s %d band %q = %g: %w", s.Sex, s.Year, g, v, ErrInvalidCount)
		}
		out[i] = v
	}

	return out, nil
}

// snapshotFromVector converts an ordered vector back into a Snapshot.
func snapshotFromVector(sex Sex, year int, v []float64) Snapshot {
	s := Snapshot{Sex: sex, Year: year, Counts: make(map[age.Group]float64, age.Count)}
	for i, g := range age.Groups() {
		s.Counts[g] = v[i]
	}

	return s
}

// HistoricalSeries holds the two most recent observed snapshots per sex.
// Start and End are expected to be exactly one step (five years) apart.
type HistoricalSeries struct {
	FemaleStart Snapshot
	MaleStart   Snapshot
	FemaleEnd   Snapshot
	MaleEnd     Snapshot
}

// StartYear is the year of the most recent snapshots; projection steps are
// counted from here.
func (h HistoricalSeries) StartYear() int { return h.FemaleEnd.Year }

// validate checks that every slot holds a snapshot of the right sex.
func (h HistoricalSeries) validate() error {
	slots := []struct {
		name string
		snap Snapshot
		want Sex
	}{
		{"FemaleStart", h.FemaleStart, Female},
		{"MaleStart", h.MaleStart, Male},
		{"FemaleEnd", h.FemaleEnd, Female},
		{"MaleEnd", h.MaleEnd, Male},
	}
	for _, sl := range slots {
		if sl.snap.Sex != sl.want {
			return fmt.Errorf("%s holds %s: %w", sl.name, sl.snap.Sex, ErrSexMismatch)
		}
	}

	return nil
}

// SurvivalRates maps every band except the last to the fraction of its
// population expected in the next band after one step.
type SurvivalRates struct {
	Female map[age.Group]float64
	Male   map[age.Group]float64
}

// For returns the rates of one sex.
func (r SurvivalRates) For(sex Sex) map[age.Group]float64 {
	if sex == Male {
		return r.Male
	}

	return r.Female
}

// vector returns the rates of one sex in band order (len age.Count-1).
func (r SurvivalRates) vector(sex Sex) []float64 {
	m := r.For(sex)
	out := make([]float64, age.Count-1)
	for i := 0; i < age.Count-1; i++ {
		out[i] = m[age.At(i)]
	}

	return out
}

// BirthRates are the expected newborns per fertile woman per step, split by
// the sex of the newborn.
type BirthRates struct {
	Female float64
	Male   float64
}

// For returns the rate of one sex.
func (b BirthRates) For(sex Sex) float64 {
	if sex == Male {
		return b.Male
	}

	return b.Female
}

// Series is the output of a projection: one Female and one Male snapshot per
// step year, chronological, Female first within each year.
type Series []Snapshot

// Steps returns the number of projected step years.
func (s Series) Steps() int { return len(s) / 2 }

// Years returns the projected step years in order.
func (s Series) Years() []int {
	out := make([]int, 0, s.Steps())
	for i := 0; i+1 < len(s); i += 2 {
		out = append(out, s[i].Year)
	}

	return out
}

// At returns the Female and Male snapshots of year.
func (s Series) At(year int) (female, male Snapshot, ok bool) {
	for i := 0; i+1 < len(s); i += 2 {
		if s[i].Year == year {
			return s[i], s[i+1], true
		}
	}

	return Snapshot{}, Snapshot{}, false
}

// Totals returns the whole population (both sexes) of every step year.
func (s Series) Totals() []float64 {
	out := make([]float64, 0, s.Steps())
	for i := 0; i+1 < len(s); i += 2 {
		out = append(out, s[i].Total()+s[i+1].Total())
	}

	return out
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
