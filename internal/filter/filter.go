// Package filter narrows metric rows to the slice of the benchmark a user is
// looking at.
package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/testforge/testforge/internal/models"
)

// All is the selector value that disables a predicate.
const All = "all"

// State is the user's current selection. Empty predicate fields match every
// row. View and Language are not predicates.
type State struct {
	LLM        string      `json:"llm,omitempty" yaml:"llm,omitempty"`
	PromptType string      `json:"prompt_type,omitempty" yaml:"prompt_type,omitempty"`
	TestType   string      `json:"test_type,omitempty" yaml:"test_type,omitempty"`
	Complexity string      `json:"complexity,omitempty" yaml:"complexity,omitempty"`
	View       models.View `json:"view" yaml:"view"`
	Language   string      `json:"language" yaml:"language"`
}

// New returns a State with no predicates, the test-set view and Java.
func New() State {
	return State{View: models.ViewTestSet, Language: models.SourceLanguage}
}

// Value returns the predicate on dim, empty when unset.
func (s State) Value(dim models.Dimension) string {
	switch dim {
	case models.DimensionLLM:
		return s.LLM
	case models.DimensionPrompt:
		return s.PromptType
	case models.DimensionTestType:
		return s.TestType
	case models.DimensionComplexity:
		return s.Complexity
	}
	return ""
}

// Set sets the predicate on dim. An empty value or "all" clears it.
func (s *State) Set(dim models.Dimension, value string) {
	if strings.EqualFold(value, All) {
		value = ""
	}
	switch dim {
	case models.DimensionLLM:
		s.LLM = value
	case models.DimensionPrompt:
		s.PromptType = value
	case models.DimensionTestType:
		s.TestType = value
	case models.DimensionComplexity:
		s.Complexity = value
	}
}

// Active reports whether any predicate is set.
func (s State) Active() bool {
	return s.LLM != "" || s.PromptType != "" || s.TestType != "" || s.Complexity != ""
}

// Clear drops every predicate. View and Language are kept.
func (s *State) Clear() {
	s.LLM, s.PromptType, s.TestType, s.Complexity = "", "", "", ""
}

var dimensions = []models.Dimension{
	models.DimensionLLM,
	models.DimensionPrompt,
	models.DimensionTestType,
	models.DimensionComplexity,
}

type keyed interface {
	Key(dim models.Dimension) (string, bool)
}

// matches keeps a row unless it carries a dimension whose value differs from
// the predicate. Rows from coarser files lack some dimensions and are kept.
func (s State) matches(r keyed) bool {
	for _, dim := range dimensions {
		want := s.Value(dim)
		if want == "" {
			continue
		}
		if got, ok := r.Key(dim); ok && got != want {
			return false
		}
	}
	return true
}

func apply[R keyed](s State, rows []R) []R {
	if !s.Active() {
		return rows
	}
	out := make([]R, 0, len(rows))
	for _, r := range rows {
		if s.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// ApplySet returns the test-set rows selected by s. The input is not
// modified.
func (s State) ApplySet(rows []models.SetRow) []models.SetRow { return apply(s, rows) }

// ApplyCase returns the test-case rows selected by s. The input is not
// modified.
func (s State) ApplyCase(rows []models.CaseRow) []models.CaseRow { return apply(s, rows) }

// Parse builds a State from user-supplied selector strings, resolving labels
// and alternate spellings to canonical values. Unknown values are rejected so
// typos surface instead of silently matching nothing.
func Parse(llm, prompt, testType, complexity, view string) (State, error) {
	s := New()
	var errs []error

	inputs := map[models.Dimension]string{
		models.DimensionLLM:        llm,
		models.DimensionPrompt:     prompt,
		models.DimensionTestType:   testType,
		models.DimensionComplexity: complexity,
	}
	for _, dim := range dimensions {
		in := strings.TrimSpace(inputs[dim])
		if in == "" || strings.EqualFold(in, All) {
			continue
		}
		v, ok := models.Resolve(dim, in)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown %s %q (valid: %s)", dim, in, strings.Join(Choices(dim), ", ")))
			continue
		}
		s.Set(dim, v)
	}

	if view != "" {
		v, err := ParseView(view)
		if err != nil {
			errs = append(errs, err)
		} else {
			s.View = v
		}
	}

	if err := errors.Join(errs...); err != nil {
		return State{}, fmt.Errorf("filter: %w", err)
	}
	return s, nil
}

// ParseView validates a metric view name.
func ParseView(v string) (models.View, error) {
	switch view := models.View(strings.ToLower(strings.TrimSpace(v))); view {
	case models.ViewTestSet, models.ViewTestCase, models.ViewOutcomes:
		return view, nil
	}
	return "", fmt.Errorf("unknown view %q (valid: %s, %s, %s)", v, models.ViewTestSet, models.ViewTestCase, models.ViewOutcomes)
}

// Choices lists the accepted values for dim, "all" first.
func Choices(dim models.Dimension) []string {
	opts := models.OptionsFor(dim)
	out := make([]string, 0, len(opts)+1)
	out = append(out, All)
	for _, o := range opts {
		out = append(out, o.Value)
	}
	return out
}

// String renders the active predicates, for log lines and report headers.
func (s State) String() string {
	var parts []string
	for _, dim := range dimensions {
		if v := s.Value(dim); v != "" {
			parts = append(parts, fmt.Sprintf("%s=%s", dim, v))
		}
	}
	if len(parts) == 0 {
		return All
	}
	return strings.Join(parts, " ")
}
