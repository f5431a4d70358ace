package cmd

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

const tableRule = "─"

// printJSON writes v as indented JSON
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// printYAML writes v as YAML
func printYAML(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

// printStructured handles the machine-readable formats. It reports false
// for "table" so the caller renders its own table.
func printStructured(format string, v any) (bool, error) {
	switch format {
	case "json":
		return true, printJSON(v)
	case "yaml":
		return true, printYAML(v)
	}
	return false, nil
}
