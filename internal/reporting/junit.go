package reporting

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// JUnit XML schema types

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one metric family.
type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Name       string          `xml:"name,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Errors     int             `xml:"errors,attr"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one validated CSV file.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Error     *JUnitError   `xml:"error,omitempty"`
	SystemOut string        `xml:"system-out,omitempty"`
}

// JUnitFailure represents rows that failed validation.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// JUnitError represents a file that could not be read or parsed.
type JUnitError struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
}

// JUnitProperty is a key-value metadata entry.
type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// FileResult is the validation outcome of one metrics file.
type FileResult struct {
	Family   string   `json:"family" yaml:"family"`
	Level    string   `json:"level" yaml:"level"`
	Path     string   `json:"path" yaml:"path"`
	Rows     int      `json:"rows" yaml:"rows"`
	Err      string   `json:"error,omitempty" yaml:"error,omitempty"`
	Problems []string `json:"problems,omitempty" yaml:"problems,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// OK reports whether the file loaded without problems. Warnings do not
// count.
func (r FileResult) OK() bool { return r.Err == "" && len(r.Problems) == 0 }

// ConvertToJUnit groups file results into one suite per family.
func ConvertToJUnit(results []FileResult) *JUnitTestSuites {
	out := &JUnitTestSuites{}
	index := map[string]int{}

	for _, r := range results {
		i, ok := index[r.Family]
		if !ok {
			i = len(out.TestSuites)
			index[r.Family] = i
			out.TestSuites = append(out.TestSuites, JUnitTestSuite{
				Name:       "testforge." + r.Family,
				Properties: []JUnitProperty{{Name: "family", Value: r.Family}},
			})
		}
		suite := &out.TestSuites[i]

		tc := JUnitTestCase{
			Name:      r.Level,
			Classname: r.Path,
			SystemOut: strings.Join(r.Warnings, "\n"),
		}
		switch {
		case r.Err != "":
			tc.Error = &JUnitError{Message: r.Err, Type: "LoadError"}
			suite.Errors++
			out.Errors++
		case len(r.Problems) > 0:
			tc.Failure = &JUnitFailure{
				Message: fmt.Sprintf("%d invalid row(s)", len(r.Problems)),
				Type:    "ValidationFailure",
				Body:    strings.Join(r.Problems, "\n"),
			}
			suite.Failures++
			out.Failures++
		}
		suite.Tests++
		out.Tests++
		suite.TestCases = append(suite.TestCases, tc)
	}
	return out
}

// WriteJUnitXML writes JUnit XML to the specified file path.
func WriteJUnitXML(results []FileResult, path string) error {
	suites := ConvertToJUnit(results)

	data, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JUnit XML: %w", err)
	}

	output := append([]byte(xml.Header), data...)
	return os.WriteFile(path, output, 0644)
}

// ValidationTable renders file results.
func ValidationTable(results []FileResult) Table {
	t := Table{Title: "Validation", Headers: []string{"Family", "Level", "Rows", "Status"}}
	for _, r := range results {
		status := "ok"
		switch {
		case r.Err != "":
			status = "error: " + r.Err
		case len(r.Problems) > 0:
			status = fmt.Sprintf("%d invalid row(s)", len(r.Problems))
		case len(r.Warnings) > 0:
			status = fmt.Sprintf("ok, %d warning(s)", len(r.Warnings))
		}
		t.Rows = append(t.Rows, []string{r.Family, r.Level, count(r.Rows), status})
	}
	return t
}
