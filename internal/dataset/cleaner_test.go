package dataset

import (
	"strings"
	"testing"
)

func TestCleanSplitsCoordinates(t *testing.T) {
	tbl := &Table{Records: []Record{
		{ID: "T001", Coordinates: "40.0,-95.0", RawCapacity: "1.5", RawUnits: "2"},
	}}
	if err := Clean(tbl, CleanOptions{}); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	r := tbl.Records[0]
	if !r.HasCoords || r.Latitude != 40.0 || r.Longitude != -95.0 {
		t.Fatalf("coordinates = (%v, %v, has=%v), want (40, -95, true)", r.Latitude, r.Longitude, r.HasCoords)
	}
}

func TestCleanMalformedCoordinatesFailRun(t *testing.T) {
	cases := []string{"40.0", "40.0,-95.0,12", "north,west"}
	for _, raw := range cases {
		tbl := &Table{Records: []Record{{ID: "T00X", Coordinates: raw}}}
		err := Clean(tbl, CleanOptions{})
		if err == nil {
			t.Fatalf("Clean(%q): expected structural error", raw)
		}
		if !strings.Contains(err.Error(), "T00X") {
			t.Fatalf("Clean(%q): error should name the record, got: %v", raw, err)
		}
	}
}

func TestCleanEmptyCoordinatesAreNotFatal(t *testing.T) {
	tbl := &Table{Records: []Record{
		{ID: "T001", Coordinates: "", RawCapacity: "1.5", RawUnits: "2"},
	}}
	if err := Clean(tbl, CleanOptions{}); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if tbl.Records[0].HasCoords {
		t.Fatalf("expected record without coordinates to stay unmapped")
	}
	if !tbl.Records[0].Capacity.Valid {
		t.Fatalf("capacity should still be coerced for unmapped records")
	}
}

func TestCleanCapacityCoercion(t *testing.T) {
	tbl := &Table{Records: []Record{
		{ID: "a", RawCapacity: "1.733693"},
		{ID: "b", RawCapacity: "N/A"},
		{ID: "c", RawCapacity: ""},
		{ID: "d", RawCapacity: "1.000,5"},
		{ID: "e", RawCapacity: "-0.5"},
	}}
	if err := Clean(tbl, CleanOptions{}); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	recs := tbl.Records
	if !recs[0].Capacity.Valid || recs[0].Capacity.MW != 1.733693 {
		t.Fatalf("capacity a = %#v", recs[0].Capacity)
	}
	if recs[1].Capacity.Valid {
		t.Fatalf("capacity N/A should be missing, got %#v", recs[1].Capacity)
	}
	if recs[2].Capacity.Valid {
		t.Fatalf("empty capacity should be missing, got %#v", recs[2].Capacity)
	}
	if !recs[3].Capacity.Valid || recs[3].Capacity.MW != 1000.5 {
		t.Fatalf("locale capacity = %#v, want 1000.5", recs[3].Capacity)
	}
	// Negative capacity is kept as a valid value; anomaly screening is
	// out of scope.
	if !recs[4].Capacity.Valid || recs[4].Capacity.MW != -0.5 {
		t.Fatalf("negative capacity = %#v, want valid -0.5", recs[4].Capacity)
	}
}

func TestCleanDecimalCommaLocale(t *testing.T) {
	tbl := &Table{Records: []Record{{ID: "a", RawCapacity: "1,5"}}}
	if err := Clean(tbl, CleanOptions{DecimalSeparator: ','}); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if !tbl.Records[0].Capacity.Valid || tbl.Records[0].Capacity.MW != 1.5 {
		t.Fatalf("capacity = %#v, want 1.5", tbl.Records[0].Capacity)
	}
}

func TestCleanUnits(t *testing.T) {
	tbl := &Table{Records: []Record{
		{ID: "a", RawUnits: "4"},
		{ID: "b", RawUnits: "several"},
		{ID: "c", RawUnits: ""},
	}}
	if err := Clean(tbl, CleanOptions{}); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if !tbl.Records[0].HasUnits || tbl.Records[0].Units != 4 {
		t.Fatalf("units a = %#v", tbl.Records[0])
	}
	if tbl.Records[1].HasUnits || tbl.Records[2].HasUnits {
		t.Fatalf("unparseable units should be marked absent")
	}
}

func TestSampleIsClean(t *testing.T) {
	tbl := Sample()
	if tbl.Len() != 8 {
		t.Fatalf("sample records = %d, want 8", tbl.Len())
	}
	for _, r := range tbl.Records {
		if !r.Capacity.Valid || !r.HasUnits {
			t.Fatalf("sample record %s not clean: %#v", r.ID, r)
		}
		if r.HasCoords {
			t.Fatalf("sample record %s should carry no coordinates", r.ID)
		}
	}
}
