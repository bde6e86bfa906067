// SPDX-License-Identifier: MIT

package sensitivity

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cohort/age"
	"github.com/katalvlaran/cohort/projection"
)

// Parameter names used by DefaultProblem.
const (
	NameFertility        = "fertility"
	NameFemalePercentage = "female_percentage"
)

// defaultSurvivalGroups are the bands whose survival ratios DefaultProblem
// varies: infancy, early adolescence, the fertile peak and mid-life.
var defaultSurvivalGroups = [...]age.Group{age.G0to4, age.G10to14, age.G25to29, age.G35to39, age.G50to54}

// DefaultSurvivalGroups returns the bands varied by DefaultProblem.
func DefaultSurvivalGroups() []age.Group {
	out := make([]age.Group, len(defaultSurvivalGroups))
	copy(out, defaultSurvivalGroups[:])

	return out
}

// SurvivalName is the parameter name of a survival ratio, e.g. "25-29_female".
func SurvivalName(sex projection.Sex, g age.Group) string {
	return fmt.Sprintf("%s_%s", g, strings.ToLower(sex.String()))
}

// DefaultProblem varies fertility, the female newborn share and the survival
// ratios of DefaultSurvivalGroups for each sex (12 parameters), using the
// observed ranges as bounds.
func DefaultProblem(r Ranges) Problem {
	return NewProblem(r, DefaultSurvivalGroups()...)
}

// NewProblem varies fertility, the female newborn share and the survival
// ratios of groups (Female first, then Male).
func NewProblem(r Ranges, groups ...age.Group) Problem {
	params := make([]Parameter, 0, 2+2*len(groups))
	params = append(params,
		Parameter{Name: NameFertility, Kind: KindFertility, Bounds: r.Fertility},
		Parameter{Name: NameFemalePercentage, Kind: KindFemalePercentage, Bounds: r.FemalePercentage},
	)
	for _, sex := range []projection.Sex{projection.Female, projection.Male} {
		surv := r.SurvivalFor(sex)
		for _, g := range groups {
			params = append(params, Parameter{
				Name:   SurvivalName(sex, g),
				Kind:   KindSurvival,
				Sex:    sex,
				Group:  g,
				Bounds: surv[g],
			})
		}
	}

	return Problem{Parameters: params}
}

// Narrow returns a copy of p where the named parameter's bounds shrink by
// coeff·width from each side. coeff = 0.25 keeps the central half.
//
// Errors:
//   - ErrUnknownParameter for an unknown name.
//   - ErrInvalidBounds when coeff is outside [0, 0.5).
func Narrow(p Problem, name string, coeff float64) (Problem, error) {
	i, err := p.index(name)
	if err != nil {
		return Problem{}, sensitivityErrorf(opNarrow, err)
	}
	if !(coeff >= 0 && coeff < 0.5) {
		return Problem{}, sensitivityErrorf(opNarrow, fmt.Errorf("coeff %g: %w", coeff, ErrInvalidBounds))
	}

	out := Problem{Parameters: make([]Parameter, len(p.Parameters))}
	copy(out.Parameters, p.Parameters)
	b := out.Parameters[i].Bounds
	w := b.Width() * coeff
	out.Parameters[i].Bounds = Bounds{Min: b.Min + w, Max: b.Max - w}

	return out, nil
}
