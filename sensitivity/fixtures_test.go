package sensitivity_test

import (
	"testing"

	"github.com/katalvlaran/cohort/age"
	"github.com/katalvlaran/cohort/projection"
	"github.com/katalvlaran/cohort/sensitivity"
)

var (
	female2015 = []float64{4609465, 4024755, 3533982, 3260485, 3987011, 5958673, 6145860, 5605733, 5288769, 4750801,
		5382475, 6114708, 5498509, 4481741, 2180709, 3522448, 1818669, 1205980, 365890, 46189, 6288}
	male2015 = []float64{4872040, 4232445, 3702589, 3419312, 4163057, 6125318, 6147438, 5430433, 4945739, 4376376,
		4634895, 4859152, 3865909, 2802033, 1149423, 1493858, 661974, 357454, 70912, 8464, 1204}
	female2020 = []float64{3836611, 4635743, 4041370, 3591364, 3401107, 4145188, 6068610, 6198024, 5610823, 5257968,
		4686765, 5247889, 5866238, 5099956, 3963419, 1799526, 2555100, 1065362, 522047, 108310, 8684}
	male2020 = []float64{4053692, 4896880, 4247345, 3751083, 3538361, 4290943, 6175349, 6111248, 5318361, 4778909,
		4155226, 4273108, 4298075, 3186549, 2151705, 804388, 889007, 320190, 130678, 19652, 1914}
)

func dense(sex projection.Sex, year int, values []float64) projection.Snapshot {
	counts := make(map[age.Group]float64, age.Count)
	for i, g := range age.Groups() {
		counts[g] = values[i]
	}
	return projection.NewSnapshot(sex, year, counts)
}

func sparse(sex projection.Sex, year int, set map[age.Group]float64) projection.Snapshot {
	counts := make(map[age.Group]float64, age.Count)
	for _, g := range age.Groups() {
		counts[g] = set[g]
	}
	return projection.NewSnapshot(sex, year, counts)
}

func national(tb testing.TB) projection.HistoricalSeries {
	tb.Helper()
	return nationalSeries()
}

// nationalSeries is the 2015/2020 national census pair.
func nationalSeries() projection.HistoricalSeries {
	return projection.HistoricalSeries{
		FemaleStart: dense(projection.Female, 2015, female2015),
		MaleStart:   dense(projection.Male, 2015, male2015),
		FemaleEnd:   dense(projection.Female, 2020, female2020),
		MaleEnd:     dense(projection.Male, 2020, male2020),
	}
}

// smallHistory is three observed years with hand-checkable ratios:
//
//	fertility:  2.0 (2010), 400/390 (2015), 1.6 (2020)
//	share:      0.4, 0.5, 0.375
//	female 0-4: 38/40 = 0.95, 45/50 = 0.9
//	female 5-9: 90/100 = 0.9, 19/38 = 0.5
//	male 0-4:   57/60 = 0.95, 40/50 = 0.8
func smallHistory() []sensitivity.YearPair {
	return []sensitivity.YearPair{
		{
			Female: sparse(projection.Female, 2010, map[age.Group]float64{
				age.G0to4: 40, age.G5to9: 100, age.G20to24: 200,
			}),
			Male: sparse(projection.Male, 2010, map[age.Group]float64{
				age.G0to4: 60, age.G5to9: 100,
			}),
		},
		{
			Female: sparse(projection.Female, 2015, map[age.Group]float64{
				age.G0to4: 50, age.G5to9: 38, age.G10to14: 90, age.G20to24: 200, age.G25to29: 190,
			}),
			Male: sparse(projection.Male, 2015, map[age.Group]float64{
				age.G0to4: 50, age.G5to9: 57, age.G10to14: 95,
			}),
		},
		{
			Female: sparse(projection.Female, 2020, map[age.Group]float64{
				age.G0to4: 30, age.G5to9: 45, age.G10to14: 19, age.G20to24: 100, age.G25to29: 100,
			}),
			Male: sparse(projection.Male, 2020, map[age.Group]float64{
				age.G0to4: 50, age.G5to9: 40,
			}),
		},
	}
}
