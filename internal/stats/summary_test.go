package stats

import (
	"math"
	"testing"

	"github.com/galeworks/windreport/internal/dataset"
)

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestAggregateSampleDataset(t *testing.T) {
	sum := Aggregate(dataset.Sample())

	if sum.TotalProjects != 8 {
		t.Fatalf("total projects = %d, want 8", sum.TotalProjects)
	}
	if sum.DistinctStates != 5 {
		t.Fatalf("distinct states = %d, want 5", sum.DistinctStates)
	}
	if !almost(sum.TotalCapacity, 9.194434) {
		t.Fatalf("total capacity = %v, want ~9.194434", sum.TotalCapacity)
	}
	if !almost(sum.AvgCapacity, 9.194434/8) {
		t.Fatalf("avg capacity = %v, want ~1.149304", sum.AvgCapacity)
	}
	if sum.Capacity.Count != 8 || !almost(sum.Capacity.Min, 0.294048) || !almost(sum.Capacity.Max, 1.733693) {
		t.Fatalf("describe = %#v", sum.Capacity)
	}
	if !sum.UnitsCapacity.Defined {
		t.Fatalf("correlation should be defined for the sample")
	}
	if sum.UnitsCapacity.R < -1 || sum.UnitsCapacity.R > 1 {
		t.Fatalf("correlation = %v, want within [-1, 1]", sum.UnitsCapacity.R)
	}
}

func TestGroupOrderingAndContent(t *testing.T) {
	sum := Aggregate(dataset.Sample())

	// OK, KS, IA each have 2 records; NY and TX one each. Ties break
	// on key, so the order is IA, KS, OK, NY, TX.
	wantKeys := []string{"IA", "KS", "OK", "NY", "TX"}
	if len(sum.ByState) != 5 {
		t.Fatalf("state groups = %d, want 5", len(sum.ByState))
	}
	for i, k := range wantKeys {
		if sum.ByState[i].Key != k {
			t.Fatalf("state order[%d] = %q, want %q (%#v)", i, sum.ByState[i].Key, k, sum.ByState)
		}
	}
	for i := 1; i < len(sum.ByState); i++ {
		if sum.ByState[i].Count > sum.ByState[i-1].Count {
			t.Fatalf("state groups not in descending count order: %#v", sum.ByState)
		}
	}

	if len(sum.ByFacility) != 3 {
		t.Fatalf("facility groups = %d, want 3", len(sum.ByFacility))
	}
	if sum.ByFacility[0].Key != "Community Center" || sum.ByFacility[0].Count != 3 {
		t.Fatalf("facility order = %#v", sum.ByFacility)
	}
}

func TestGroupSumsAddUpToTotal(t *testing.T) {
	sum := Aggregate(dataset.Sample())
	var total float64
	for _, g := range sum.ByState {
		total += g.Sum
	}
	if !almost(total, sum.TotalCapacity) {
		t.Fatalf("sum of state sums = %v, total = %v", total, sum.TotalCapacity)
	}
}

func TestMissingCapacityExcludedFromMeanNotCount(t *testing.T) {
	tbl := &dataset.Table{Records: []dataset.Record{
		{ID: "a", State: "OK", Capacity: dataset.MW(2), Units: 1, HasUnits: true},
		{ID: "b", State: "OK", Capacity: dataset.Capacity{}, Units: 2, HasUnits: true},
		{ID: "c", State: "TX", Capacity: dataset.MW(4), Units: 3, HasUnits: true},
	}}
	sum := Aggregate(tbl)
	if sum.TotalProjects != 3 {
		t.Fatalf("total projects = %d, want 3 (missing capacity still counts)", sum.TotalProjects)
	}
	if sum.TotalCapacity != 6 {
		t.Fatalf("total capacity = %v, want 6", sum.TotalCapacity)
	}
	// Mean divides by the two present values, not by the record count.
	if sum.AvgCapacity != 3 {
		t.Fatalf("avg capacity = %v, want 3", sum.AvgCapacity)
	}
	ok := sum.ByState[0]
	if ok.Key != "OK" || ok.Count != 2 || ok.Sum != 2 || ok.Mean != 2 {
		t.Fatalf("OK group = %#v", ok)
	}
}

func TestPearsonDefined(t *testing.T) {
	tbl := &dataset.Table{Records: []dataset.Record{
		{ID: "a", Capacity: dataset.MW(1), Units: 1, HasUnits: true},
		{ID: "b", Capacity: dataset.MW(2), Units: 2, HasUnits: true},
		{ID: "c", Capacity: dataset.MW(3), Units: 3, HasUnits: true},
	}}
	sum := Aggregate(tbl)
	if !sum.UnitsCapacity.Defined {
		t.Fatalf("correlation should be defined")
	}
	if !almost(sum.UnitsCapacity.R, 1) {
		t.Fatalf("perfectly linear series: r = %v, want 1", sum.UnitsCapacity.R)
	}
}

func TestPearsonUndefined(t *testing.T) {
	cases := map[string]*dataset.Table{
		"no records": {},
		"single pair": {Records: []dataset.Record{
			{ID: "a", Capacity: dataset.MW(1), Units: 1, HasUnits: true},
		}},
		"missing capacity breaks pairs": {Records: []dataset.Record{
			{ID: "a", Capacity: dataset.MW(1), Units: 1, HasUnits: true},
			{ID: "b", Capacity: dataset.Capacity{}, Units: 2, HasUnits: true},
		}},
		"missing units breaks pairs": {Records: []dataset.Record{
			{ID: "a", Capacity: dataset.MW(1), Units: 1, HasUnits: true},
			{ID: "b", Capacity: dataset.MW(2)},
		}},
		"zero variance": {Records: []dataset.Record{
			{ID: "a", Capacity: dataset.MW(1), Units: 2, HasUnits: true},
			{ID: "b", Capacity: dataset.MW(2), Units: 2, HasUnits: true},
		}},
	}
	for name, tbl := range cases {
		sum := Aggregate(tbl)
		if sum.UnitsCapacity.Defined {
			t.Fatalf("%s: correlation should be undefined, got r=%v", name, sum.UnitsCapacity.R)
		}
	}
}

func TestTopByCountClips(t *testing.T) {
	sum := Aggregate(dataset.Sample())
	top := TopByCount(sum.ByState, 3)
	if len(top) != 3 {
		t.Fatalf("top = %d entries, want 3", len(top))
	}
	top = TopByCount(sum.ByFacility, 5)
	if len(top) != 3 {
		t.Fatalf("top should not pad beyond available groups, got %d", len(top))
	}
}

func TestTopByCapacityOrder(t *testing.T) {
	sum := Aggregate(dataset.Sample())
	top := TopByCapacity(sum.ByState, 3)
	if len(top) != 3 {
		t.Fatalf("top = %d entries, want 3", len(top))
	}
	// OK: 1.733693+1.522472=3.256165, KS: 1.174680+0.681184=1.855864,
	// IA: 1.426943+0.294048=1.720991.
	if top[0].Key != "OK" || top[1].Key != "KS" || top[2].Key != "IA" {
		t.Fatalf("top by capacity = %#v", top)
	}
	for i := 1; i < len(top); i++ {
		if top[i].Sum > top[i-1].Sum {
			t.Fatalf("top by capacity not descending: %#v", top)
		}
	}
}
