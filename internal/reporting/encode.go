package reporting

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how command output is rendered.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (valid: table, json, yaml)", s)
}

// Encode writes v as JSON or YAML. Tables are rendered by the caller since
// they need a Table, not arbitrary data.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("format %q cannot encode data", format)
}

// Render writes v in format, using tables for FormatTable.
func Render(w io.Writer, format Format, v any, tables ...Table) error {
	if format != FormatTable {
		return Encode(w, format, v)
	}
	for _, t := range tables {
		if err := t.Write(w); err != nil {
			return err
		}
	}
	return nil
}
