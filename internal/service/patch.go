package service

import "strings"

// Patch bodies arrive as decoded JSON or as values inferred from CLI flags, so
// numbers are float64 and booleans are bool. Each helper reports whether the key
// was present and returns a validation error when it holds the wrong type.

func patchString(fields map[string]interface{}, key string) (string, bool, error) {
	raw, ok := fields[key]
	if !ok {
		return "", false, nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", true, newValidationError(key, "must be a string")
	}
	return strings.TrimSpace(value), true, nil
}

func patchBool(fields map[string]interface{}, key string) (bool, bool, error) {
	raw, ok := fields[key]
	if !ok {
		return false, false, nil
	}
	value, ok := raw.(bool)
	if !ok {
		return false, true, newValidationError(key, "must be true or false")
	}
	return value, true, nil
}

// patchNumber treats an explicit null as zero
func patchNumber(fields map[string]interface{}, key string) (float64, bool, error) {
	raw, ok := fields[key]
	if !ok {
		return 0, false, nil
	}
	switch value := raw.(type) {
	case nil:
		return 0, true, nil
	case float64:
		return value, true, nil
	case int:
		return float64(value), true, nil
	case uint:
		return float64(value), true, nil
	}
	return 0, true, newValidationError(key, "must be a number")
}
