package projection_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cohort/age"
	"github.com/katalvlaran/cohort/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_CountAndTotal(t *testing.T) {
	s := sparse(projection.Female, 2020, map[age.Group]float64{age.G0to4: 10, age.G100Plus: 2.5})

	v, err := s.Count(age.G100Plus)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
	assert.Equal(t, 12.5, s.Total())

	delete(s.Counts, age.G5to9)
	_, err = s.Count(age.G5to9)
	assert.ErrorIs(t, err, projection.ErrMissingCohort)
}

func TestSnapshot_CloneIndependent(t *testing.T) {
	s := sparse(projection.Male, 2020, map[age.Group]float64{age.G0to4: 10})
	c := s.Clone()
	c.Counts[age.G0to4] = 99

	assert.Equal(t, 10.0, s.Counts[age.G0to4])
	assert.Equal(t, s.Sex, c.Sex)
	assert.Equal(t, s.Year, c.Year)
}

func TestNewSnapshot_CopiesInput(t *testing.T) {
	in := map[age.Group]float64{age.G0to4: 1}
	s := projection.NewSnapshot(projection.Female, 2020, in)
	in[age.G0to4] = 2

	assert.Equal(t, 1.0, s.Counts[age.G0to4])
}

func TestSnapshot_Vector(t *testing.T) {
	s := sparse(projection.Female, 2020, map[age.Group]float64{age.G0to4: 3, age.G100Plus: 7})
	v, err := s.Vector()
	require.NoError(t, err)
	require.Len(t, v, age.Count)
	assert.Equal(t, 3.0, v[0])
	assert.Equal(t, 7.0, v[age.Count-1])

	cases := []struct {
		name string
		val  float64
	}{
		{"negative", -1},
		{"NaN", math.NaN()},
		{"Inf", math.Inf(1)},
	}
	for _, tc := range cases {
		bad := s.Clone()
		bad.Counts[age.G45to49] = tc.val
		_, err = bad.Vector()
		assert.ErrorIs(t, err, projection.ErrInvalidCount, tc.name)
	}

	missing := s.Clone()
	delete(missing.Counts, age.G45to49)
	_, err = missing.Vector()
	assert.ErrorIs(t, err, projection.ErrMissingCohort)
}

func TestSeries_Totals(t *testing.T) {
	series, err := projection.Predict(singleBand(), 2030)
	require.NoError(t, err)

	totals := series.Totals()
	require.Len(t, totals, series.Steps())
	for i, year := range series.Years() {
		f, m, ok := series.At(year)
		require.True(t, ok)
		assert.Equal(t, f.Total()+m.Total(), totals[i], "year %d", year)
	}
}
