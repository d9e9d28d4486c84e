package stats

import (
	"math"
	"sort"

	"github.com/galeworks/windreport/internal/dataset"
)

// GroupStat aggregates capacity over records sharing one field value.
// Count covers every record in the group; Sum and Mean cover only
// records whose capacity is present.
type GroupStat struct {
	Key   string
	Count int
	Sum   float64
	Mean  float64
}

// Correlation is a Pearson coefficient that may be undefined. R is
// meaningless unless Defined is true; callers must surface the
// undefined case rather than treating it as zero.
type Correlation struct {
	R       float64
	Defined bool
}

// Describe holds descriptive statistics over non-missing capacity values.
type Describe struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
	Std   float64
}

// Summary is the derived, read-only view of a cleaned table. It is
// recomputed each run and never written back.
type Summary struct {
	TotalProjects  int
	DistinctStates int

	// Capacity totals over non-missing values only.
	TotalCapacity float64
	AvgCapacity   float64
	Capacity      Describe

	// Sorted by descending count, key as tiebreak.
	ByState    []GroupStat
	ByFacility []GroupStat

	UnitsCapacity Correlation
}

// Aggregate computes the summary for a cleaned table. It is a pure
// function of its input; the table is not modified.
func Aggregate(t *dataset.Table) *Summary {
	s := &Summary{TotalProjects: t.Len()}

	states := make(map[string]bool)
	var (
		n    int
		sum  float64
		mean float64
		m2   float64
		min  = math.Inf(1)
		max  = math.Inf(-1)
	)
	// Pearson accumulators over rows with both units and capacity present.
	var pn, sumX, sumY, sumXX, sumYY, sumXY float64

	for _, rec := range t.Records {
		states[rec.State] = true
		if !rec.Capacity.Valid {
			continue
		}
		x := rec.Capacity.MW
		n++
		sum += x
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
		delta := x - mean
		mean += delta / float64(n)
		m2 += delta * (x - mean)

		if rec.HasUnits {
			u := float64(rec.Units)
			pn++
			sumX += u
			sumY += x
			sumXX += u * u
			sumYY += x * x
			sumXY += u * x
		}
	}
	s.DistinctStates = len(states)
	if n > 0 {
		s.Capacity = Describe{Count: n, Min: min, Max: max, Mean: mean}
		if n > 1 {
			s.Capacity.Std = math.Sqrt(m2 / float64(n-1))
		}
		s.TotalCapacity = sum
		s.AvgCapacity = sum / float64(n)
	}

	s.ByState = groupBy(t, func(r dataset.Record) string { return r.State })
	s.ByFacility = groupBy(t, func(r dataset.Record) string { return r.Facility })
	s.UnitsCapacity = pearson(pn, sumX, sumY, sumXX, sumYY, sumXY)
	return s
}

func groupBy(t *dataset.Table, key func(dataset.Record) string) []GroupStat {
	type acc struct {
		count int
		sum   float64
		capN  int
	}
	groups := map[string]*acc{}
	for _, rec := range t.Records {
		k := key(rec)
		a := groups[k]
		if a == nil {
			a = &acc{}
			groups[k] = a
		}
		a.count++
		if rec.Capacity.Valid {
			a.sum += rec.Capacity.MW
			a.capN++
		}
	}
	out := make([]GroupStat, 0, len(groups))
	for k, a := range groups {
		g := GroupStat{Key: k, Count: a.count, Sum: a.sum}
		if a.capN > 0 {
			g.Mean = a.sum / float64(a.capN)
		}
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Key < out[j].Key
		}
		return out[i].Count > out[j].Count
	})
	return out
}

func pearson(n, sumX, sumY, sumXX, sumYY, sumXY float64) Correlation {
	if n < 2 {
		return Correlation{}
	}
	denom := math.Sqrt((n*sumXX - sumX*sumX) * (n*sumYY - sumY*sumY))
	if denom == 0 {
		return Correlation{}
	}
	r := (n*sumXY - sumX*sumY) / denom
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return Correlation{}
	}
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return Correlation{R: r, Defined: true}
}

// TopByCount returns at most n groups ordered by descending record
// count. The input must already carry groupBy's ordering.
func TopByCount(groups []GroupStat, n int) []GroupStat {
	if len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

// TopByCapacity returns at most n groups ordered by descending total
// capacity, key as tiebreak.
func TopByCapacity(groups []GroupStat, n int) []GroupStat {
	cp := make([]GroupStat, len(groups))
	copy(cp, groups)
	sort.Slice(cp, func(i, j int) bool {
		if cp[i].Sum == cp[j].Sum {
			return cp[i].Key < cp[j].Key
		}
		return cp[i].Sum > cp[j].Sum
	})
	if len(cp) > n {
		cp = cp[:n]
	}
	return cp
}
