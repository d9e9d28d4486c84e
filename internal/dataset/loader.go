package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Options controls CSV loading.
type Options struct {
	// Delimiter for CSV. If 0, auto-detects from the file extension.
	Delimiter rune
}

// Column names recognized in the header, case-insensitive.
const (
	colID          = "turbine_id"
	colProjectName = "project_name"
	colFacility    = "facility"
	colState       = "state"
	colCoordinates = "coordinates"
	colLatitude    = "latitude"
	colLongitude   = "longitude"
	colCapacity    = "installed_capacity"
	colUnits       = "number_of_units"
)

// ReadCSV loads a wind-installation dataset from a CSV file. The header
// must declare the expected columns; a missing required column is a
// structural failure. Coordinates may arrive either as one combined
// "lat,lon" column or as separate latitude/longitude columns.
func ReadCSV(path string, opt Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	// Records keep their field strings, so the reader must not reuse
	// its backing buffer across rows.
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = delim

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: empty dataset")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	require := func(name string) (int, error) {
		i, ok := idx[name]
		if !ok {
			return 0, fmt.Errorf("missing required column %q", name)
		}
		return i, nil
	}

	iProject, err := require(colProjectName)
	if err != nil {
		return nil, err
	}
	iFacility, err := require(colFacility)
	if err != nil {
		return nil, err
	}
	iState, err := require(colState)
	if err != nil {
		return nil, err
	}
	iCapacity, err := require(colCapacity)
	if err != nil {
		return nil, err
	}
	iUnits, err := require(colUnits)
	if err != nil {
		return nil, err
	}
	iID, hasID := idx[colID]
	iCoords, hasCoords := idx[colCoordinates]
	iLat, hasLat := idx[colLatitude]
	iLon, hasLon := idx[colLongitude]
	if !hasCoords && !(hasLat && hasLon) {
		return nil, fmt.Errorf("missing required column %q (or %q and %q)", colCoordinates, colLatitude, colLongitude)
	}

	t := &Table{Name: filepath.Base(path)}
	ncol := len(header)
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(t.Records)+1, err)
		}
		if len(rec) < ncol {
			tmp := make([]string, ncol)
			copy(tmp, rec)
			rec = tmp
		}
		field := func(i int) string { return strings.TrimSpace(rec[i]) }

		row := Record{
			ProjectName: field(iProject),
			Facility:    field(iFacility),
			State:       field(iState),
			RawCapacity: field(iCapacity),
			RawUnits:    field(iUnits),
		}
		if hasID {
			row.ID = field(iID)
		}
		if row.ID == "" {
			// Rows without an identifier still need a stable handle for
			// error messages and map popups.
			row.ID = uuid.New().String()
		}
		if hasCoords {
			row.Coordinates = field(iCoords)
		} else {
			lat, lon := field(iLat), field(iLon)
			if lat != "" || lon != "" {
				row.Coordinates = lat + "," + lon
			}
		}
		t.Records = append(t.Records, row)
	}
	return t, nil
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
