package projection_test

import (
	"testing"

	"github.com/katalvlaran/cohort/age"
	"github.com/katalvlaran/cohort/projection"
)

// National fixture: four snapshots, 2015 and 2020, 21 bands each.
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

// snapshot builds a full Snapshot from band-ordered values.
func snapshot(tb testing.TB, sex projection.Sex, year int, values []float64) projection.Snapshot {
	tb.Helper()
	if len(values) != age.Count {
		tb.Fatalf("snapshot: want %d values, got %d", age.Count, len(values))
	}
	counts := make(map[age.Group]float64, age.Count)
	for i, g := range age.Groups() {
		counts[g] = values[i]
	}

	return projection.NewSnapshot(sex, year, counts)
}

// sparse builds a full Snapshot where every band not listed is zero.
func sparse(sex projection.Sex, year int, set map[age.Group]float64) projection.Snapshot {
	counts := make(map[age.Group]float64, age.Count)
	for _, g := range age.Groups() {
		counts[g] = set[g]
	}

	return projection.NewSnapshot(sex, year, counts)
}

// national returns the 2015/2020 historical series.
func national(tb testing.TB) projection.HistoricalSeries {
	tb.Helper()
	return projection.HistoricalSeries{
		FemaleStart: snapshot(tb, projection.Female, 2015, female2015),
		MaleStart:   snapshot(tb, projection.Male, 2015, male2015),
		FemaleEnd:   snapshot(tb, projection.Female, 2020, female2020),
		MaleEnd:     snapshot(tb, projection.Male, 2020, male2020),
	}
}

// singleBand returns a history where only 20-24 is populated (1000 per sex).
func singleBand() projection.HistoricalSeries {
	set := map[age.Group]float64{age.G20to24: 1000}
	return projection.HistoricalSeries{
		FemaleStart: sparse(projection.Female, 2015, set),
		MaleStart:   sparse(projection.Male, 2015, set),
		FemaleEnd:   sparse(projection.Female, 2020, set),
		MaleEnd:     sparse(projection.Male, 2020, set),
	}
}
