package validation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed schemas/set_row.schema.json
	setRowSchemaJSON string

	//go:embed schemas/case_row.schema.json
	caseRowSchemaJSON string

	//go:embed schemas/config.schema.json
	configSchemaJSON string
)

// defaultPrinter is used to format schema validation error messages.
var defaultPrinter = message.NewPrinter(language.English)

var (
	setRowSchema  *jsonschema.Schema
	caseRowSchema *jsonschema.Schema
	configSchema  *jsonschema.Schema
)

func init() {
	setRowSchema = mustCompileSchema(setRowSchemaJSON, "set_row.schema.json")
	caseRowSchema = mustCompileSchema(caseRowSchemaJSON, "case_row.schema.json")
	configSchema = mustCompileSchema(configSchemaJSON, "config.schema.json")
}

func mustCompileSchema(raw string, name string) *jsonschema.Schema {
	var schemaDoc any
	if err := json.Unmarshal([]byte(raw), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// ValidateSetRecord validates one decoded test-set CSV record. Numeric cells
// are expected as json.Number, everything else as string.
func ValidateSetRecord(record map[string]any) []string {
	return validateAgainstSchema(setRowSchema, record)
}

// ValidateCaseRecord validates one decoded test-case CSV record.
func ValidateCaseRecord(record map[string]any) []string {
	return validateAgainstSchema(caseRowSchema, record)
}

// ValidateConfigFile validates a .testforge.yaml file against the config
// schema.
func ValidateConfigFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return ValidateConfigBytes(data), nil
}

// ValidateConfigBytes validates raw YAML bytes against the config schema.
func ValidateConfigBytes(data []byte) []string {
	return validateYAMLBytes(configSchema, data)
}

func validateYAMLBytes(schema *jsonschema.Schema, data []byte) []string {
	var yamlDoc any
	if err := yaml.Unmarshal(data, &yamlDoc); err != nil {
		return []string{fmt.Sprintf("YAML parse error: %v", err)}
	}
	// An empty file decodes to nil; treat it as an empty mapping.
	if yamlDoc == nil {
		yamlDoc = map[string]any{}
	}
	return validateAgainstSchema(schema, yamlDoc)
}

func validateAgainstSchema(schema *jsonschema.Schema, instance any) []string {
	err := schema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var errs []string
	collectSchemaErrors(ve, &errs)
	return errs
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*errs = append(*errs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(defaultPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, errs)
	}
}
