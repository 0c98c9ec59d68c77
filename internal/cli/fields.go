package cli

import (
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/validation"
)

// splitPair splits "key=value"; the key must not be empty
func splitPair(raw string) (string, string, error) {
	key, value, ok := strings.Cut(raw, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", raw)
	}
	return key, value, nil
}

// ParseFields collects --field key=value pairs. A repeated key keeps the last value.
func ParseFields(pairs []string) (map[string]string, error) {
	fields := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, err := splitPair(pair)
		if err != nil {
			return nil, err
		}
		fields[key] = value
	}
	return fields, nil
}

// InferFields types raw values for a partial update: booleans, null, numbers and
// JSON objects or arrays keep their type, everything else stays a string.
// Numbers with a leading zero, such as phone numbers, stay strings.
func InferFields(raw map[string]string) map[string]interface{} {
	fields := make(map[string]interface{}, len(raw))
	for key, value := range raw {
		fields[key] = inferValue(value)
	}
	return fields
}

func inferValue(value string) interface{} {
	trimmed := strings.TrimSpace(value)
	switch trimmed {
	case "true", "false":
		return trimmed == "true"
	case "null":
		return nil
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var nested interface{}
		if err := json.Unmarshal([]byte(trimmed), &nested); err == nil {
			return nested
		}
	}
	leadingZero := len(trimmed) > 1 && trimmed[0] == '0' && trimmed[1] != '.'
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil && !leadingZero {
		return n
	}
	return value
}

// DecodeInput converts raw fields into I and validates its binding tags. Fields
// declared as strings on I are never converted to numbers.
func DecodeInput[I any](raw map[string]string) (*I, error) {
	var input I
	stringFields := stringJSONFields(reflect.TypeOf(input))

	fields := make(map[string]interface{}, len(raw))
	for key, value := range raw {
		if stringFields[key] {
			fields[key] = value
			continue
		}
		fields[key] = inferValue(value)
	}

	body, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, &input); err != nil {
		return nil, fmt.Errorf("invalid fields: %w", err)
	}
	if err := validation.New().Struct(&input); err != nil {
		return nil, err
	}
	return &input, nil
}

// stringJSONFields returns the json names of the string fields of struct type t
func stringJSONFields(t reflect.Type) map[string]bool {
	names := map[string]bool{}
	if t.Kind() != reflect.Struct {
		return names
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		if field.Type.Kind() == reflect.String {
			names[name] = true
		}
	}
	return names
}

// OpenFiles opens every --file field=path pair. The returned function closes them.
func OpenFiles(pairs []string) ([]apiclient.File, func(), error) {
	var (
		files  []apiclient.File
		opened []*os.File
	)
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, pair := range pairs {
		field, path, err := splitPair(pair)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		f, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		opened = append(opened, f)
		files = append(files, apiclient.File{
			Field:       field,
			Name:        filepath.Base(path),
			ContentType: mime.TypeByExtension(filepath.Ext(path)),
			Reader:      f,
		})
	}
	return files, closeAll, nil
}
