// Package report formats the aggregate summary as a fixed-structure
// plain-text analysis report.
package report

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/galeworks/windreport/internal/stats"
	"github.com/galeworks/windreport/internal/utils"
)

// Render produces the text report from the aggregate summary alone.
// All numbers are formatted to two decimal places; an undefined
// correlation is stated as such, never printed as a number.
func Render(sum *stats.Summary, topN int) string {
	if topN <= 0 {
		topN = 3
	}
	var b strings.Builder

	b.WriteString("Wind Installation Analysis Report\n")
	b.WriteString("=================================\n\n")

	b.WriteString("Overview\n")
	fmt.Fprintf(&b, "- Total projects: %d\n", sum.TotalProjects)
	fmt.Fprintf(&b, "- States covered: %d\n", sum.DistinctStates)
	fmt.Fprintf(&b, "- Total installed capacity: %.2f MW\n\n", sum.TotalCapacity)

	fmt.Fprintf(&b, "Top %d states by installation count\n", topN)
	countTable(&b, stats.TopByCount(sum.ByState, topN), "State")

	fmt.Fprintf(&b, "\nTop %d facility types by installation count\n", topN)
	countTable(&b, stats.TopByCount(sum.ByFacility, topN), "Facility")

	b.WriteString("\nCapacity analysis\n")
	fmt.Fprintf(&b, "- Average capacity per installation: %.2f MW\n", sum.AvgCapacity)
	if sum.Capacity.Count > 0 {
		fmt.Fprintf(&b, "- Capacity range: %.2f to %.2f MW (std %.2f)\n",
			sum.Capacity.Min, sum.Capacity.Max, sum.Capacity.Std)
	}
	if sum.UnitsCapacity.Defined {
		fmt.Fprintf(&b, "- Correlation between units and capacity: %.2f\n", sum.UnitsCapacity.R)
	} else {
		b.WriteString("- Correlation between units and capacity: undefined (insufficient data)\n")
	}

	fmt.Fprintf(&b, "\nTop %d states by total capacity\n", topN)
	capacityTable(&b, stats.TopByCapacity(sum.ByState, topN))

	return b.String()
}

// WriteFile renders the report and writes it atomically.
func WriteFile(path string, sum *stats.Summary, topN int) error {
	return utils.SafeWriteFile(path, []byte(Render(sum, topN)))
}

func countTable(b *strings.Builder, groups []stats.GroupStat, label string) {
	tw := tablewriter.NewWriter(b)
	tw.SetHeader([]string{label, "Installations"})
	for _, g := range groups {
		tw.Append([]string{g.Key, fmt.Sprintf("%d", g.Count)})
	}
	tw.Render()
}

func capacityTable(b *strings.Builder, groups []stats.GroupStat) {
	tw := tablewriter.NewWriter(b)
	tw.SetHeader([]string{"State", "Total MW", "Mean MW", "Installations"})
	for _, g := range groups {
		tw.Append([]string{
			g.Key,
			fmt.Sprintf("%.2f", g.Sum),
			fmt.Sprintf("%.2f", g.Mean),
			fmt.Sprintf("%d", g.Count),
		})
	}
	tw.Render()
}
