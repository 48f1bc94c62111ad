package reporting

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []FileResult {
	return []FileResult{
		{Family: "set", Level: "llm", Path: "data/Test set metrics/tsm_llm.csv", Rows: 4},
		{Family: "set", Level: "llm_prompt", Path: "data/Test set metrics/tsm_llm_prompt.csv",
			Problems: []string{"tsm_llm_prompt.csv:3: /compiled: got string, want integer"}},
		{Family: "case", Level: "llm", Path: "data/Test case metrics/tcm_llm.csv",
			Err: "csv: open data/Test case metrics/tcm_llm.csv: no such file or directory"},
		{Family: "case", Level: "llm_test", Path: "data/Test case metrics/tcm_llm_test.csv", Rows: 12,
			Warnings: []string{"tcm_llm_test.csv:2: /functionally_correct_cases: 5 exceeds total_test_cases 4"}},
	}
}

func TestConvertToJUnit(t *testing.T) {
	suites := ConvertToJUnit(sampleResults())

	assert.Equal(t, 4, suites.Tests)
	assert.Equal(t, 1, suites.Failures)
	assert.Equal(t, 1, suites.Errors)
	require.Len(t, suites.TestSuites, 2)

	set := suites.TestSuites[0]
	assert.Equal(t, "testforge.set", set.Name)
	assert.Equal(t, 2, set.Tests)
	assert.Equal(t, 1, set.Failures)
	require.Len(t, set.TestCases, 2)
	assert.Nil(t, set.TestCases[0].Failure)
	require.NotNil(t, set.TestCases[1].Failure)
	assert.Equal(t, "ValidationFailure", set.TestCases[1].Failure.Type)
	assert.Contains(t, set.TestCases[1].Failure.Body, "/compiled")

	cases := suites.TestSuites[1]
	require.NotNil(t, cases.TestCases[0].Error)
	assert.Equal(t, "LoadError", cases.TestCases[0].Error.Type)
	assert.Nil(t, cases.TestCases[1].Failure)
	assert.Contains(t, cases.TestCases[1].SystemOut, "exceeds total_test_cases")
}

func TestWriteJUnitXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validate.xml")

	require.NoError(t, WriteJUnitXML(sampleResults(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), xml.Header))

	var parsed JUnitTestSuites
	require.NoError(t, xml.Unmarshal(data, &parsed))
	assert.Equal(t, 4, parsed.Tests)
	assert.Len(t, parsed.TestSuites, 2)
}

func TestFileResultOK(t *testing.T) {
	r := sampleResults()
	assert.True(t, r[0].OK())
	assert.False(t, r[1].OK())
	assert.False(t, r[2].OK())
	assert.True(t, r[3].OK())
}

func TestValidationTable(t *testing.T) {
	tbl := ValidationTable(sampleResults())

	require.Len(t, tbl.Rows, 4)
	assert.Equal(t, "ok", tbl.Rows[0][3])
	assert.Equal(t, "1 invalid row(s)", tbl.Rows[1][3])
	assert.True(t, strings.HasPrefix(tbl.Rows[2][3], "error: csv: open"))
	assert.Equal(t, "ok, 1 warning(s)", tbl.Rows[3][3])
	assert.Equal(t, "12", tbl.Rows[3][2])
}
