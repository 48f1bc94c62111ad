package dataset

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/testforge/testforge/internal/models"
	"github.com/testforge/testforge/internal/validation"
)

// RowError describes why one CSV row was rejected.
type RowError struct {
	Path     string
	Line     int
	Problems []string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, strings.Join(e.Problems, "; "))
}

// Problems collects every rejected row of a file.
type Problems []*RowError

func (p Problems) Error() string {
	msgs := make([]string, 0, len(p))
	for _, e := range p {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

// textColumns are never coerced to numbers, so a model named "7" stays a
// string.
var textColumns = map[string]bool{
	"llm":                              true,
	string(models.DimensionPrompt):     true,
	string(models.DimensionTestType):   true,
	string(models.DimensionComplexity): true,
}

// record converts a CSV row to a JSON-like document: numeric cells become
// json.Number, empty cells are dropped.
func record(row Row) map[string]any {
	rec := make(map[string]any, len(row))
	for k, v := range row {
		if v == "" {
			continue
		}
		if !textColumns[k] && isNumber(v) {
			rec[k] = json.Number(v)
			continue
		}
		rec[k] = v
	}
	return rec
}

func isNumber(s string) bool {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return false
	}
	return json.Valid([]byte(s))
}

// DecodeSetRows validates and decodes test-set rows read from path. Every
// row must carry the dimensions of level. The returned error is Problems
// when rows were rejected.
func DecodeSetRows(path string, level Level, rows []Row) ([]models.SetRow, error) {
	return decodeRows(path, level, rows, validation.ValidateSetRecord, func(r *models.SetRow) *models.Dimensions {
		return &r.Dimensions
	})
}

// DecodeCaseRows validates and decodes test-case rows read from path.
func DecodeCaseRows(path string, level Level, rows []Row) ([]models.CaseRow, error) {
	return decodeRows(path, level, rows, validation.ValidateCaseRecord, func(r *models.CaseRow) *models.Dimensions {
		return &r.Dimensions
	})
}

func decodeRows[R any](
	path string,
	level Level,
	rows []Row,
	validate func(map[string]any) []string,
	dims func(*R) *models.Dimensions,
) ([]R, error) {
	out := make([]R, 0, len(rows))
	var problems Problems

	for i, row := range rows {
		line := i + 2 // header is line 1
		rec := record(row)

		errs := validate(rec)
		for _, dim := range level.Dimensions() {
			if _, ok := rec[string(dim)]; !ok {
				errs = append(errs, fmt.Sprintf("/: missing %s required by level %s", dim, level))
			}
		}
		if len(errs) > 0 {
			problems = append(problems, &RowError{Path: path, Line: line, Problems: errs})
			continue
		}

		var r R
		if err := mapstructure.Decode(rec, &r); err != nil {
			problems = append(problems, &RowError{Path: path, Line: line, Problems: []string{err.Error()}})
			continue
		}
		normalize(dims(&r))
		out = append(out, r)
	}

	if len(problems) > 0 {
		return nil, problems
	}
	return out, nil
}

// normalize folds the spelling differences between the two metric families,
// e.g. "Few-Shot" in one file and "few_shot" in the other.
func normalize(d *models.Dimensions) {
	if d.PromptType != nil {
		v := models.NormalizePrompt(*d.PromptType)
		d.PromptType = &v
	}
	if d.TestType != nil {
		v := models.NormalizeTestType(*d.TestType)
		d.TestType = &v
	}
	if d.Complexity != nil {
		v := strings.TrimSpace(*d.Complexity)
		d.Complexity = &v
	}
}
