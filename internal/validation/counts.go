package validation

import (
	"fmt"

	"github.com/testforge/testforge/internal/models"
)

// CheckSetCounts reports pipeline stages whose count exceeds the stage before
// it. Such rows still aggregate, but their outcome partition goes negative.
func CheckSetCounts(r models.SetRow) []string {
	stages := []struct {
		name  string
		count int
	}{
		{"total_expected", r.TotalExpected},
		{"compiled", r.Compiled},
		{"runtime_success", r.RuntimeSuccess},
		{"semantically_valid", r.SemanticallyValid},
	}
	var errs []string
	for i := 1; i < len(stages); i++ {
		prev, cur := stages[i-1], stages[i]
		if cur.count > prev.count {
			errs = append(errs, fmt.Sprintf("/%s: %d exceeds %s %d", cur.name, cur.count, prev.name, prev.count))
		}
	}
	return errs
}

// CheckCaseCounts reports a functionally correct count above the total.
func CheckCaseCounts(r models.CaseRow) []string {
	if r.FunctionallyCorrectCases > r.TotalTestCases {
		return []string{fmt.Sprintf("/functionally_correct_cases: %d exceeds total_test_cases %d",
			r.FunctionallyCorrectCases, r.TotalTestCases)}
	}
	return nil
}
