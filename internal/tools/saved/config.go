package saved

import (
	"fmt"
	"strings"
)

// SavedQueryConfig represents the YAML definition of one saved-query tool.
// Each file under the query library becomes an MCP tool that runs a fixed
// SQL statement with bound parameters.
type SavedQueryConfig struct {
	// Name is the unique tool identifier (e.g. "table-row-count")
	Name string `yaml:"name"`

	// Title is the human-readable tool title shown to clients
	Title string `yaml:"title,omitempty"`

	// Description explains what the query returns and when to use it
	Description string `yaml:"description"`

	// SQL is the statement to execute. Parameters are bound positionally
	// to "?" placeholders in declaration order.
	SQL string `yaml:"sql"`

	// Parameters defines typed input parameters for the statement
	Parameters []ParameterConfig `yaml:"parameters,omitempty"`

	// MaxRows caps the collected result rows. Zero means the dispatcher
	// default.
	MaxRows int `yaml:"max_rows,omitempty"`

	// Category groups related saved queries (e.g. "diagnostics")
	Category string `yaml:"category,omitempty"`
}

// ParameterConfig defines a typed input parameter
type ParameterConfig struct {
	// Name is the parameter identifier
	Name string `yaml:"name"`

	// Type is the JSON Schema type (string, integer, number, boolean)
	Type string `yaml:"type"`

	// Description explains the parameter's purpose
	Description string `yaml:"description,omitempty"`

	// Default value (type depends on Type field)
	Default any `yaml:"default,omitempty"`

	// Required indicates if this parameter must be provided
	Required bool `yaml:"required,omitempty"`
}

const defaultCategory = "saved"

// validate checks the config for the mistakes a YAML author can make:
// missing identity fields, unknown parameter types, and a placeholder count
// that does not match the declared parameters.
func (c *SavedQueryConfig) validate(path string) error {
	if c.Name == "" {
		return fmt.Errorf("tool name is required in config file: %s", path)
	}
	if c.Description == "" {
		return fmt.Errorf("tool description is required in config file: %s", path)
	}
	if strings.TrimSpace(c.SQL) == "" {
		return fmt.Errorf("tool sql is required in config file: %s", path)
	}
	if c.MaxRows < 0 {
		return fmt.Errorf("max_rows must not be negative in config file: %s", path)
	}

	if placeholders := strings.Count(c.SQL, "?"); placeholders != len(c.Parameters) {
		return fmt.Errorf("sql has %d placeholders but %d parameters are declared in config file: %s",
			placeholders, len(c.Parameters), path)
	}

	if err := validateParameters(c.Parameters); err != nil {
		return fmt.Errorf("invalid parameters in %s: %w", path, err)
	}

	if c.Category == "" {
		c.Category = defaultCategory
	}
	return nil
}

func validateParameters(params []ParameterConfig) error {
	validTypes := map[string]bool{
		"string": true, "integer": true, "number": true, "boolean": true,
	}
	names := make(map[string]bool)

	for i, param := range params {
		if param.Name == "" {
			return fmt.Errorf("parameter[%d] name is required", i)
		}
		if names[param.Name] {
			return fmt.Errorf("duplicate parameter name '%s'", param.Name)
		}
		names[param.Name] = true

		if param.Type != "" && !validTypes[param.Type] {
			return fmt.Errorf("parameter '%s' has invalid type '%s'", param.Name, param.Type)
		}
	}

	return nil
}
