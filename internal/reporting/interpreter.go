package reporting

import (
	"fmt"
	"strings"

	"github.com/testforge/testforge/internal/models"
)

// InterpretRate returns a plain-language label for a percentage (0–100).
func InterpretRate(pct float64) string {
	switch {
	case pct > 90:
		return "Excellent (>90%)"
	case pct >= 70:
		return "Good (70-90%)"
	case pct >= 50:
		return "Needs Work (50-70%)"
	default:
		return "Poor (<50%)"
	}
}

// InterpretOutcomes explains where generated suites are lost in the
// compile, run and semantic pipeline.
func InterpretOutcomes(s models.SummaryMetrics) string {
	if s.TotalTests == 0 {
		return "No test suites in this selection."
	}
	stages := []struct {
		name string
		pct  float64
	}{
		{"do not compile", s.AvgO1},
		{"fail at runtime", s.AvgO2},
		{"run but are semantically invalid", s.AvgO3},
	}
	worst := stages[0]
	for _, st := range stages[1:] {
		if st.pct > worst.pct {
			worst = st
		}
	}
	if worst.pct == 0 {
		return fmt.Sprintf("All suites are valid (%.2f%%).", s.AvgO4)
	}
	return fmt.Sprintf("%.2f%% of suites are valid; the largest loss is suites that %s (%.2f%%).",
		s.AvgO4, worst.name, worst.pct)
}

// InterpretDegradation explains an Easy to Hard drop.
func InterpretDegradation(d *models.DegradationMetrics) string {
	if d == nil {
		return "Degradation is unavailable: the selection has no Easy or no Hard problems."
	}
	switch d.Severity {
	case models.SeverityHigh:
		return fmt.Sprintf("Performance collapses on Hard problems (CSR %+.2f, FC %+.2f points).", d.CSRDrop, d.FCDrop)
	case models.SeverityMedium:
		return fmt.Sprintf("Performance drops noticeably on Hard problems (CSR %+.2f, FC %+.2f points).", d.CSRDrop, d.FCDrop)
	default:
		return fmt.Sprintf("Performance holds up on Hard problems (CSR %+.2f, FC %+.2f points).", d.CSRDrop, d.FCDrop)
	}
}

// FormatSummaryReport produces a plain-language reading of the headline
// figures.
func FormatSummaryReport(s models.SummaryMetrics, d *models.DegradationMetrics) string {
	var b strings.Builder

	b.WriteString("=== Interpretation ===\n\n")
	b.WriteString(fmt.Sprintf("Compilation:   %.2f%% (%s)\n", s.AvgCSR, InterpretRate(s.AvgCSR)))
	b.WriteString(fmt.Sprintf("Runtime:       %.2f%% (%s)\n", s.AvgRSR, InterpretRate(s.AvgRSR)))
	b.WriteString(fmt.Sprintf("Semantics:     %.2f%% (%s)\n", s.AvgSVR, InterpretRate(s.AvgSVR)))
	b.WriteString(fmt.Sprintf("Correctness:   %.2f%% (%s)\n", s.AvgFC, InterpretRate(s.AvgFC)))
	b.WriteString(fmt.Sprintf("Coverage:      %.2f%%\n", s.AvgCoverage))
	b.WriteString(fmt.Sprintf("Outcomes:      %s\n", InterpretOutcomes(s)))
	b.WriteString(fmt.Sprintf("Complexity:    %s\n", InterpretDegradation(d)))

	return b.String()
}
