package model

import "strings"

type field struct {
	name  string
	value string
}

// missingFields returns the names of the fields whose values are empty.
func missingFields(fields ...field) []string {
	var missing []string
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// optional trims an optional text value, returning nil if nothing is left.
func optional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
