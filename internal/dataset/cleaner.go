package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// CleanOptions controls value coercion during cleaning.
type CleanOptions struct {
	// Numeric parsing locale. If DecimalSeparator is 0, auto-detect per value.
	DecimalSeparator   rune
	ThousandsSeparator rune
}

// Clean splits combined coordinate strings into numeric latitude and
// longitude and coerces the capacity field to a numeric value.
//
// The two fields get different failure policies. Coordinates are
// structurally required for mapping: a non-empty value that does not
// split into exactly two parseable parts aborts the run, while an
// empty value only marks the record as unmapped. Capacity is the
// analysis subject and is coerced permissively: any value that fails
// to parse becomes an explicit missing marker so a handful of bad rows
// cannot abort the whole run.
func Clean(t *Table, opt CleanOptions) error {
	for i := range t.Records {
		rec := &t.Records[i]

		if raw := strings.TrimSpace(rec.Coordinates); raw != "" {
			parts := strings.Split(raw, ",")
			if len(parts) != 2 {
				return fmt.Errorf("record %s: coordinates %q: want \"lat,lon\"", rec.ID, raw)
			}
			lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
			if err != nil {
				return fmt.Errorf("record %s: latitude %q: %w", rec.ID, parts[0], err)
			}
			lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
			if err != nil {
				return fmt.Errorf("record %s: longitude %q: %w", rec.ID, parts[1], err)
			}
			rec.Latitude = lat
			rec.Longitude = lon
			rec.HasCoords = true
		}

		if x, ok := parseNumeric(rec.RawCapacity, opt); ok {
			rec.Capacity = MW(x)
		} else {
			rec.Capacity = Capacity{}
		}

		if n, err := strconv.Atoi(strings.TrimSpace(rec.RawUnits)); err == nil {
			rec.Units = n
			rec.HasUnits = true
		}
	}
	return nil
}

// parseNumeric parses a numeric-like string, tolerating decimal commas
// and common thousands separators.
func parseNumeric(s string, opt CleanOptions) (float64, bool) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, false
	}
	// Normalize non-breaking spaces
	raw = strings.ReplaceAll(raw, " ", " ")
	raw = strings.TrimSpace(raw)

	dec := opt.DecimalSeparator
	thou := opt.ThousandsSeparator
	if dec == 0 {
		cpos := strings.LastIndex(raw, ",")
		dpos := strings.LastIndex(raw, ".")
		switch {
		case cpos >= 0 && dpos >= 0 && cpos > dpos:
			dec, thou = ',', '.'
		case cpos >= 0 && dpos < 0:
			dec = ','
		default:
			dec = '.'
		}
	}
	if thou == 0 {
		for _, sep := range []rune{',', '.', ' '} {
			if sep != dec {
				raw = strings.ReplaceAll(raw, string(sep), "")
			}
		}
	} else if thou != dec {
		raw = strings.ReplaceAll(raw, string(thou), "")
	}
	if dec != '.' {
		raw = strings.ReplaceAll(raw, string(dec), ".")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
