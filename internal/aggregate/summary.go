package aggregate

import "github.com/testforge/testforge/internal/models"

// DefaultUniqueProblems is the number of distinct problems in the benchmark
// corpus. It cannot be derived from the metric rows.
const DefaultUniqueProblems = 489

// Policy holds the tunable inputs of the engine that are not part of the
// row data.
type Policy struct {
	Severity       SeverityPolicy
	UniqueProblems int
}

// DefaultPolicy returns the stock thresholds and corpus size.
func DefaultPolicy() Policy {
	return Policy{
		Severity:       DefaultSeverityPolicy(),
		UniqueProblems: DefaultUniqueProblems,
	}
}

// Summarize reduces the whole of both collections to headline figures. The
// outcome shares are the partition of the dataset-wide totals.
func Summarize(setRows []models.SetRow, caseRows []models.CaseRow, uniqueProblems int) models.SummaryMetrics {
	s := SumSet(setRows)
	c := SumCase(caseRows)
	p := NewPartition(s)

	return models.SummaryMetrics{
		TotalTests:     s.TotalExpected,
		UniqueProblems: uniqueProblems,
		AvgCSR:         s.CSR(),
		AvgRSR:         s.RSR(),
		AvgSVR:         s.SVR(),
		AvgFC:          c.FC(),
		AvgCoverage:    c.AvgLineCoverage,
		AvgO1:          p.Percentages[0],
		AvgO2:          p.Percentages[1],
		AvgO3:          p.Percentages[2],
		AvgO4:          p.Percentages[3],
	}
}
