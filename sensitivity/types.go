// SPDX-License-Identifier: MIT

package sensitivity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cohort/age"
	"github.com/katalvlaran/cohort/projection"
)

// Bounds is a closed interval [Min, Max] a parameter is sampled from.
type Bounds struct {
	Min float64
	Max float64
}

// Width returns Max − Min.
func (b Bounds) Width() float64 { return b.Max - b.Min }

// Scale maps u ∈ [0,1) onto the interval.
func (b Bounds) Scale(u float64) float64 { return b.Min + u*(b.Max-b.Min) }

// Contains reports whether x lies within the interval.
func (b Bounds) Contains(x float64) bool { return x >= b.Min && x <= b.Max }

func (b Bounds) valid() bool {
	return !math.IsNaN(b.Min) && !math.IsInf(b.Min, 0) &&
		!math.IsNaN(b.Max) && !math.IsInf(b.Max, 0) && b.Min < b.Max
}

// YearPair is the Female and Male snapshot of one observed year.
type YearPair struct {
	Female projection.Snapshot
	Male   projection.Snapshot
}

// Year returns the observation year.
func (p YearPair) Year() int { return p.Female.Year }

// Ranges are the observed extremes of every model assumption.
type Ranges struct {
	// Fertility is total births per fertile woman per step (the scale
	// accepted by projection.WithFertility).
	Fertility Bounds

	// FemalePercentage is the share of newborns that are female.
	FemalePercentage Bounds

	// Survival ratios per band, every band but the last.
	FemaleSurvival map[age.Group]Bounds
	MaleSurvival   map[age.Group]Bounds
}

// SurvivalFor returns the survival bounds of one sex.
func (r Ranges) SurvivalFor(sex projection.Sex) map[age.Group]Bounds {
	if sex == projection.Male {
		return r.MaleSurvival
	}

	return r.FemaleSurvival
}

// Kind identifies which model assumption a Parameter replaces.
type Kind int

const (
	// KindFertility maps to projection.WithFertility.
	KindFertility Kind = iota
	// KindFemalePercentage maps to projection.WithFemalePercentage.
	KindFemalePercentage
	// KindSurvival maps to projection.WithSurvivalRate for Sex and Group.
	KindSurvival
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindFertility:
		return "fertility"
	case KindFemalePercentage:
		return "female_percentage"
	case KindSurvival:
		return "survival"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Parameter is one varied model input.
type Parameter struct {
	Name   string
	Kind   Kind
	Sex    projection.Sex // KindSurvival only
	Group  age.Group      // KindSurvival only
	Bounds Bounds
}

// validate checks that every value within Bounds is a legal override.
func (p Parameter) validate() error {
	if !p.Bounds.valid() {
		return fmt.Errorf("%s [%g, %g]: %w", p.Name, p.Bounds.Min, p.Bounds.Max, ErrInvalidBounds)
	}
	switch p.Kind {
	case KindFertility:
		if p.Bounds.Min < 0 {
			return fmt.Errorf("%s: negative fertility: %w", p.Name, ErrInvalidBounds)
		}
	case KindFemalePercentage:
		if p.Bounds.Min < 0 || p.Bounds.Max > 1 {
			return fmt.Errorf("%s: percentage outside [0,1]: %w", p.Name, ErrInvalidBounds)
		}
	case KindSurvival:
		if p.Bounds.Min < 0 {
			return fmt.Errorf("%s: negative survival: %w", p.Name, ErrInvalidBounds)
		}
		if !p.Sex.Valid() || !p.Group.Valid() || p.Group.IsOpenEnded() {
			return fmt.Errorf("%s: %s %q has no survival rate: %w", p.Name, p.Sex, p.Group, ErrInvalidBounds)
		}
	default:
		return fmt.Errorf("%s: %s: %w", p.Name, p.Kind, ErrInvalidBounds)
	}

	return nil
}

// option converts a sampled value into a projection override.
func (p Parameter) option(v float64) projection.Option {
	switch p.Kind {
	case KindFertility:
		return projection.WithFertility(v)
	case KindFemalePercentage:
		return projection.WithFemalePercentage(v)
	default:
		return projection.WithSurvivalRate(p.Sex, p.Group, v)
	}
}

// Problem is the ordered set of varied parameters.
type Problem struct {
	Parameters []Parameter
}

// Len returns the number of parameters (d).
func (p Problem) Len() int { return len(p.Parameters) }

// Names returns parameter names in order.
func (p Problem) Names() []string {
	out := make([]string, len(p.Parameters))
	for i, par := range p.Parameters {
		out[i] = par.Name
	}

	return out
}

// Validate checks the problem is non-empty and every parameter's bounds are
// legal overrides.
func (p Problem) Validate() error {
	if len(p.Parameters) == 0 {
		return ErrEmptyProblem
	}
	for _, par := range p.Parameters {
		if err := par.validate(); err != nil {
			return err
		}
	}

	return nil
}

// Options converts one sampled row (len d) into projection overrides.
func (p Problem) Options(row []float64) ([]projection.Option, error) {
	if len(row) != len(p.Parameters) {
		return nil, fmt.Errorf("row of %d values for %d parameters: %w", len(row), len(p.Parameters), ErrSampleShape)
	}
	opts := make([]projection.Option, len(row))
	for i, par := range p.Parameters {
		if !par.Bounds.Contains(row[i]) {
			return nil, fmt.Errorf("%s = %g outside [%g, %g]: %w",
				par.Name, row[i], par.Bounds.Min, par.Bounds.Max, ErrInvalidBounds)
		}
		opts[i] = par.option(row[i])
	}

	return opts, nil
}

// index returns the position of the parameter called name.
func (p Problem) index(name string) (int, error) {
	for i, par := range p.Parameters {
		if par.Name == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownParameter)
}
