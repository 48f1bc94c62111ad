package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/testforge/testforge/internal/insights"
	"github.com/testforge/testforge/internal/models"
)

// printer formats counts with English digit grouping.
var printer = message.NewPrinter(language.English)

// Table is a titled grid of preformatted cells.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Write renders t as aligned columns. Widths are measured in terminal cells
// so labels with wide runes stay aligned.
func (t Table) Write(w io.Writer) error {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(t.Title)
		b.WriteString("\n\n")
	}
	writeRow(&b, t.Headers, widths)
	total := 0
	for _, wd := range widths {
		total += wd + 2
	}
	b.WriteString(strings.Repeat("─", max(total-2, 0)))
	b.WriteString("\n")
	for _, row := range t.Rows {
		writeRow(&b, row, widths)
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		if i == len(cells)-1 {
			b.WriteString(cell)
			break
		}
		b.WriteString(padRight(cell, widths[i]))
		b.WriteString("  ")
	}
	b.WriteString("\n")
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

func pct(v float64) string { return fmt.Sprintf("%.2f%%", v) }

func points(v float64) string { return fmt.Sprintf("%+.2f", v) }

func count(n int) string { return printer.Sprintf("%d", n) }

// SummaryTable renders the headline figures as a two column table.
func SummaryTable(s models.SummaryMetrics) Table {
	return Table{
		Title:   "Summary",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total test suites", count(s.TotalTests)},
			{"Unique problems", count(s.UniqueProblems)},
			{"Compilation success (CSR)", pct(s.AvgCSR)},
			{"Runtime success (RSR)", pct(s.AvgRSR)},
			{"Semantic validity (SVR)", pct(s.AvgSVR)},
			{"Functional correctness (FC)", pct(s.AvgFC)},
			{"Line coverage", pct(s.AvgCoverage)},
			{"O1 compile failure", pct(s.AvgO1)},
			{"O2 runtime failure", pct(s.AvgO2)},
			{"O3 semantically invalid", pct(s.AvgO3)},
			{"O4 valid suite", pct(s.AvgO4)},
		},
	}
}

// CombinedTable renders one row per LLM with both metric families.
func CombinedTable(rows []models.CombinedMetrics) Table {
	t := Table{
		Title:   "LLM comparison",
		Headers: []string{"LLM", "CSR", "RSR", "SVR", "FC", "Coverage", "Correct cases", "Test cases"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			models.Label(models.DimensionLLM, r.LLM),
			pct(r.CSRPercentage), pct(r.RSRPercentage), pct(r.SVRPercentage),
			pct(r.FCPercentage), pct(r.AvgLineCoverage),
			count(r.FunctionallyCorrectCases), count(r.TotalTestCases),
		})
	}
	return t
}

// AggregateTable renders by-dimension rate bundles.
func AggregateTable(dim models.Dimension, aggs []models.DimensionAggregate) Table {
	t := Table{
		Title:   "By " + dimensionTitle(dim),
		Headers: []string{dimensionTitle(dim), "CSR", "RSR", "SVR", "FC", "Coverage"},
	}
	for _, a := range aggs {
		t.Rows = append(t.Rows, []string{
			models.Label(dim, a.Value),
			pct(a.CSRPercentage), pct(a.RSRPercentage), pct(a.SVRPercentage),
			pct(a.FCPercentage), pct(a.AvgLineCoverage),
		})
	}
	return t
}

// OutcomeTable renders the per-LLM outcome partition with counts.
func OutcomeTable(rows []models.OutcomeMetrics) Table {
	t := Table{
		Title:   "Outcomes by LLM",
		Headers: []string{"LLM", "Suites", "O1", "O2", "O3", "O4"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			models.Label(models.DimensionLLM, r.LLM),
			count(r.TotalExpected),
			fmt.Sprintf("%s (%s)", pct(r.O1Percentage), count(r.O1Count)),
			fmt.Sprintf("%s (%s)", pct(r.O2Percentage), count(r.O2Count)),
			fmt.Sprintf("%s (%s)", pct(r.O3Percentage), count(r.O3Count)),
			fmt.Sprintf("%s (%s)", pct(r.O4Percentage), count(r.O4Count)),
		})
	}
	return t
}

// BreakdownTable renders outcome partitions by a dimension other than LLM.
func BreakdownTable(dim models.Dimension, rows []models.OutcomeBreakdown) Table {
	t := Table{
		Title:   "Outcomes by " + dimensionTitle(dim),
		Headers: []string{dimensionTitle(dim), "Suites", "O1", "O2", "O3", "O4"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			models.Label(dim, r.Value),
			count(r.TotalExpected),
			pct(r.O1Percentage), pct(r.O2Percentage), pct(r.O3Percentage), pct(r.O4Percentage),
		})
	}
	return t
}

// CrossO4Table renders the valid-suite share per LLM and second dimension.
func CrossO4Table(dim models.Dimension, rows []models.CrossO4) Table {
	t := Table{
		Title:   "Valid suites (O4) by LLM and " + strings.ToLower(dimensionTitle(dim)),
		Headers: []string{"LLM", dimensionTitle(dim), "O4", "Suites"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			models.Label(models.DimensionLLM, r.LLM),
			models.Label(dim, r.Value),
			pct(r.O4Percentage),
			count(r.TotalExpected),
		})
	}
	return t
}

// CrossFCTable renders functional correctness per LLM and second dimension,
// with coverage when the rows carry it.
func CrossFCTable(dim models.Dimension, rows []models.CrossFC) Table {
	withCoverage := len(rows) > 0 && rows[0].AvgLineCoverage != nil
	t := Table{
		Title:   "Functional correctness by LLM and " + strings.ToLower(dimensionTitle(dim)),
		Headers: []string{"LLM", dimensionTitle(dim), "FC"},
	}
	if withCoverage {
		t.Headers = append(t.Headers, "Coverage")
	}
	for _, r := range rows {
		row := []string{
			models.Label(models.DimensionLLM, r.LLM),
			models.Label(dim, r.Value),
			pct(r.FCPercentage),
		}
		if withCoverage {
			cov := "-"
			if r.AvgLineCoverage != nil {
				cov = pct(*r.AvgLineCoverage)
			}
			row = append(row, cov)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// HeatmapTable pivots heatmap cells into LLM rows and test type columns.
// Missing cells render as "-".
func HeatmapTable(cells []models.HeatmapCell) Table {
	var llms, testTypes []string
	seenLLM := map[string]bool{}
	seenType := map[string]bool{}
	values := map[[2]string]float64{}
	for _, c := range cells {
		if !seenLLM[c.LLM] {
			seenLLM[c.LLM] = true
			llms = append(llms, c.LLM)
		}
		if !seenType[c.TestType] {
			seenType[c.TestType] = true
			testTypes = append(testTypes, c.TestType)
		}
		values[[2]string{c.LLM, c.TestType}] = c.Value
	}

	t := Table{Title: "FC heatmap (LLM × test type)", Headers: []string{"LLM"}}
	for _, tt := range testTypes {
		t.Headers = append(t.Headers, models.Label(models.DimensionTestType, tt))
	}
	for _, llm := range llms {
		row := []string{models.Label(models.DimensionLLM, llm)}
		for _, tt := range testTypes {
			v, ok := values[[2]string{llm, tt}]
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, fmt.Sprintf("%.1f%%", v))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// DegradationTable renders Easy to Hard drops. A nil d renders a single
// explanatory row.
func DegradationTable(d *models.DegradationMetrics) Table {
	t := Table{Title: "Degradation (Easy − Hard)", Headers: []string{"Metric", "Drop"}}
	if d == nil {
		t.Rows = [][]string{{"unavailable", "selection has no Easy or no Hard rows"}}
		return t
	}
	t.Rows = [][]string{
		{"CSR", points(d.CSRDrop)},
		{"RSR", points(d.RSRDrop)},
		{"SVR", points(d.SVRDrop)},
		{"FC", points(d.FCDrop)},
		{"Coverage", points(d.CoverageDrop)},
		{"Severity", string(d.Severity)},
	}
	return t
}

// InsightsTable renders insights in order.
func InsightsTable(ins []insights.Insight) Table {
	t := Table{Title: "Insights", Headers: []string{"Insight", "Severity", "Detail"}}
	for _, i := range ins {
		sev := string(i.Severity)
		if sev == "" {
			sev = "-"
		}
		t.Rows = append(t.Rows, []string{i.Title, sev, i.Message})
	}
	return t
}

func dimensionTitle(dim models.Dimension) string {
	switch dim {
	case models.DimensionLLM:
		return "LLM"
	case models.DimensionPrompt:
		return "Prompt strategy"
	case models.DimensionTestType:
		return "Test type"
	case models.DimensionComplexity:
		return "Complexity"
	}
	return string(dim)
}
