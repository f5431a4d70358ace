package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		// Generate example value based on field type
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"interrupt": "i",
			"help":      []string{"h", "?"},
		}
	}

	// Handle pointer types
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			// Return boolean value directly (not pointer)
			return fieldName != "debug"
		case reflect.Int:
			switch fieldName {
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "max_log_files":
				return DefaultMaxLogFiles
			case "refresh_interval":
				return DefaultRefreshInterval
			}
			return 10
		}
	}

	// Handle direct types
	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "api_url":
			return DefaultAPIURL
		case "theme":
			return "dark"
		default:
			return "example"
		}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Int {
			return []int{25, 50, 90}
		}
		return []string{"example1", "example2"}
	}

	return nil
}
