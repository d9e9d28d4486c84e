package dataset

// Capacity is an installed-capacity value in megawatts that may be
// absent. A zero Capacity means "missing", not 0 MW; consumers must
// check Valid before using MW.
type Capacity struct {
	MW    float64
	Valid bool
}

// MW wraps a present capacity value.
func MW(v float64) Capacity { return Capacity{MW: v, Valid: true} }

// Record is one wind-installation row.
type Record struct {
	ID          string
	ProjectName string
	Facility    string
	State       string

	// Coordinates holds the raw "lat,lon" string until Clean splits it.
	Coordinates string
	Latitude    float64
	Longitude   float64
	HasCoords   bool

	// RawCapacity holds the capacity field as read; Clean coerces it.
	RawCapacity string
	Capacity    Capacity

	RawUnits string
	Units    int
	HasUnits bool
}

// Table is an ordered collection of Records sharing one schema. It is
// built once by the loader, mutated only by Clean, then treated as
// frozen by every later stage.
type Table struct {
	Name    string
	Records []Record
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.Records) }
