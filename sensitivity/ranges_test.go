package sensitivity_test

import (
	"testing"

	"github.com/katalvlaran/cohort/age"
	"github.com/katalvlaran/cohort/projection"
	"github.com/katalvlaran/cohort/sensitivity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func TestDeriveRanges_SmallHistory(t *testing.T) {
	r, err := sensitivity.DeriveRanges(smallHistory())
	require.NoError(t, err)

	assert.InDelta(t, 400.0/390.0, r.Fertility.Min, eps)
	assert.InDelta(t, 2.0, r.Fertility.Max, eps)
	assert.InDelta(t, 0.375, r.FemalePercentage.Min, eps)
	assert.InDelta(t, 0.5, r.FemalePercentage.Max, eps)

	cases := []struct {
		sex  projection.Sex
		g    age.Group
		want sensitivity.Bounds
	}{
		{projection.Female, age.G0to4, sensitivity.Bounds{Min: 0.9, Max: 0.95}},
		{projection.Female, age.G5to9, sensitivity.Bounds{Min: 0.5, Max: 0.9}},
		{projection.Female, age.G20to24, sensitivity.Bounds{Min: 0.5, Max: 0.95}},
		{projection.Male, age.G0to4, sensitivity.Bounds{Min: 0.8, Max: 0.95}},
	}
	for _, tc := range cases {
		got := r.SurvivalFor(tc.sex)[tc.g]
		assert.InDelta(t, tc.want.Min, got.Min, eps, "%s %s min", tc.sex, tc.g)
		assert.InDelta(t, tc.want.Max, got.Max, eps, "%s %s max", tc.sex, tc.g)
	}

	assert.Len(t, r.FemaleSurvival, age.Count-1)
	assert.Len(t, r.MaleSurvival, age.Count-1)
}

// TestDeriveRanges_DegenerateWidened checks that bands never observed
// (ratio 0 in every interval) still get a sampleable interval.
func TestDeriveRanges_DegenerateWidened(t *testing.T) {
	r, err := sensitivity.DeriveRanges(smallHistory())
	require.NoError(t, err)

	b := r.FemaleSurvival[age.G60to64]
	assert.Equal(t, 0.0, b.Min)
	assert.Equal(t, sensitivity.DegenerateWidth, b.Max)
	assert.Greater(t, b.Width(), 0.0)
}

func TestDeriveRanges_ShareAtUpperLimitWidensDown(t *testing.T) {
	history := []sensitivity.YearPair{
		{
			Female: sparse(projection.Female, 2015, map[age.Group]float64{age.G0to4: 10, age.G20to24: 100}),
			Male:   sparse(projection.Male, 2015, nil),
		},
		{
			Female: sparse(projection.Female, 2020, map[age.Group]float64{age.G0to4: 20, age.G20to24: 100}),
			Male:   sparse(projection.Male, 2020, nil),
		},
	}
	r, err := sensitivity.DeriveRanges(history)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.FemalePercentage.Max, "share must stay a valid percentage")
	assert.InDelta(t, 1-sensitivity.DegenerateWidth, r.FemalePercentage.Min, eps)
}

func TestDeriveRanges_Errors(t *testing.T) {
	h := smallHistory()

	_, err := sensitivity.DeriveRanges(h[:1])
	assert.ErrorIs(t, err, sensitivity.ErrShortHistory)

	_, err = sensitivity.DeriveRanges([]sensitivity.YearPair{h[0], h[2]})
	assert.ErrorIs(t, err, sensitivity.ErrShortHistory, "2010 and 2020 are two steps apart")

	_, err = sensitivity.DeriveRanges([]sensitivity.YearPair{h[1], h[0]})
	assert.ErrorIs(t, err, sensitivity.ErrUnsortedHistory)

	swapped := smallHistory()
	swapped[1].Female, swapped[1].Male = swapped[1].Male, swapped[1].Female
	_, err = sensitivity.DeriveRanges(swapped)
	assert.ErrorIs(t, err, projection.ErrSexMismatch)

	missing := smallHistory()
	delete(missing[2].Female.Counts, age.G30to34)
	_, err = sensitivity.DeriveRanges(missing)
	assert.ErrorIs(t, err, projection.ErrMissingCohort)
}

func TestDefaultProblem(t *testing.T) {
	r, err := sensitivity.DeriveRanges(smallHistory())
	require.NoError(t, err)

	p := sensitivity.DefaultProblem(r)
	require.Equal(t, 12, p.Len())
	assert.Equal(t, []string{
		"fertility", "female_percentage",
		"0-4_female", "10-14_female", "25-29_female", "35-39_female", "50-54_female",
		"0-4_male", "10-14_male", "25-29_male", "35-39_male", "50-54_male",
	}, p.Names())
	assert.Equal(t, r.Fertility, p.Parameters[0].Bounds)
	assert.Equal(t, r.MaleSurvival[age.G0to4], p.Parameters[7].Bounds)
	assert.Equal(t, sensitivity.KindSurvival, p.Parameters[7].Kind)
	assert.Equal(t, projection.Male, p.Parameters[7].Sex)
	assert.NoError(t, p.Validate())
}

func TestNarrow(t *testing.T) {
	p := sensitivity.Problem{Parameters: []sensitivity.Parameter{
		{Name: "fertility", Kind: sensitivity.KindFertility, Bounds: sensitivity.Bounds{Min: 1, Max: 2}},
	}}
	n, err := sensitivity.Narrow(p, "fertility", 0.25)
	require.NoError(t, err)
	assert.Equal(t, sensitivity.Bounds{Min: 1.25, Max: 1.75}, n.Parameters[0].Bounds)
	assert.Equal(t, sensitivity.Bounds{Min: 1, Max: 2}, p.Parameters[0].Bounds, "source untouched")

	_, err = sensitivity.Narrow(p, "nope", 0.25)
	assert.ErrorIs(t, err, sensitivity.ErrUnknownParameter)
	_, err = sensitivity.Narrow(p, "fertility", 0.5)
	assert.ErrorIs(t, err, sensitivity.ErrInvalidBounds)
}

func TestProblem_Validate(t *testing.T) {
	assert.ErrorIs(t, sensitivity.Problem{}.Validate(), sensitivity.ErrEmptyProblem)

	bad := []sensitivity.Parameter{
		{Name: "inverted", Kind: sensitivity.KindFertility, Bounds: sensitivity.Bounds{Min: 2, Max: 1}},
		{Name: "negative", Kind: sensitivity.KindFertility, Bounds: sensitivity.Bounds{Min: -1, Max: 1}},
		{Name: "pct", Kind: sensitivity.KindFemalePercentage, Bounds: sensitivity.Bounds{Min: 0.5, Max: 1.5}},
		{Name: "top", Kind: sensitivity.KindSurvival, Sex: projection.Female, Group: age.G100Plus,
			Bounds: sensitivity.Bounds{Min: 0, Max: 1}},
		{Name: "kind", Kind: sensitivity.Kind(9), Bounds: sensitivity.Bounds{Min: 0, Max: 1}},
	}
	for _, par := range bad {
		err := sensitivity.Problem{Parameters: []sensitivity.Parameter{par}}.Validate()
		assert.ErrorIs(t, err, sensitivity.ErrInvalidBounds, par.Name)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "fertility", sensitivity.KindFertility.String())
	assert.Equal(t, "female_percentage", sensitivity.KindFemalePercentage.String())
	assert.Equal(t, "survival", sensitivity.KindSurvival.String())
	assert.Equal(t, "Kind(9)", sensitivity.Kind(9).String())
}
