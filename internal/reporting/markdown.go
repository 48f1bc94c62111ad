package reporting

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/testforge/testforge/internal/dashboard"
	"github.com/testforge/testforge/internal/models"
)

//go:embed report.md.tmpl
var reportTemplate string

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct":   pct,
	"count": count,
	"pts":   points,
	"llm":   func(v string) string { return models.Label(models.DimensionLLM, v) },
	"label": func(dim models.Dimension, v string) string { return models.Label(dim, v) },
	"table": markdownTable,

	"combinedTable":  CombinedTable,
	"aggregateTable": AggregateTable,
	"outcomeTable":   OutcomeTable,
	"breakdownTable": BreakdownTable,
	"heatmapTable":   HeatmapTable,
}).Parse(reportTemplate))

// Markdown renders a full report for snap.
func Markdown(snap *dashboard.Snapshot) (string, error) {
	var b bytes.Buffer
	if err := reportTmpl.Execute(&b, snap); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return b.String(), nil
}

// HTML renders the Markdown report of snap as a standalone HTML page.
func HTML(snap *dashboard.Snapshot) (string, error) {
	md, err := Markdown(snap)
	if err != nil {
		return "", err
	}
	body, err := MarkdownToHTML(md)
	if err != nil {
		return "", err
	}
	return "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>testforge report</title>\n</head>\n<body>\n" +
		body + "</body>\n</html>\n", nil
}

// MarkdownToHTML converts GitHub flavored Markdown to an HTML fragment.
func MarkdownToHTML(md string) (string, error) {
	var b bytes.Buffer
	conv := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := conv.Convert([]byte(md), &b); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return b.String(), nil
}

// markdownTable renders a Table as a GFM pipe table without its title.
func markdownTable(t Table) string {
	if len(t.Rows) == 0 {
		return "_No data for this selection._\n"
	}
	var b strings.Builder
	b.WriteString("| " + strings.Join(escapeCells(t.Headers), " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(t.Headers)) + "\n")
	for _, row := range t.Rows {
		b.WriteString("| " + strings.Join(escapeCells(row), " | ") + " |\n")
	}
	return b.String()
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return out
}
