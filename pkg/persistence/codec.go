package persistence

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Encode renders a whole collection as one compact JSON array followed by a newline.
// An empty collection is always written as [] and never as null.
func Encode[T any](data []T) ([]byte, error) {
	if data == nil {
		data = make([]T, 0)
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode collection: %w", err)
	}
	return append(raw, '\n'), nil
}

// Decode parses a whole collection. Anything that is not a JSON array of T is
// reported as a corrupted store, including null records, unknown keys and
// records missing a key of T that is not marked omitempty.
func Decode[T any](source string, raw []byte) ([]T, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, NewCorruptedError(source, err)
	}

	required := requiredKeys[T]()
	data := make([]T, 0, len(records))
	for i, record := range records {
		item, err := decodeRecord[T](record, required)
		if err != nil {
			return nil, NewCorruptedError(source, fmt.Errorf("record %d: %w", i, err))
		}
		data = append(data, item)
	}
	return data, nil
}

func decodeRecord[T any](record json.RawMessage, required []string) (T, error) {
	var item T

	if bytes.Equal(bytes.TrimSpace(record), []byte("null")) {
		return item, errors.New("null record")
	}

	if len(required) > 0 {
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(record, &keys); err != nil {
			return item, err
		}
		for _, key := range required {
			if _, ok := keys[key]; !ok {
				return item, fmt.Errorf("missing key %q", key)
			}
		}
	}

	dec := json.NewDecoder(bytes.NewReader(record))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&item); err != nil {
		return item, err
	}
	return item, nil
}

// requiredKeys lists the json keys of T's exported fields, skipping omitempty ones.
func requiredKeys[T any]() []string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		return nil
	}

	var keys []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Anonymous {
			continue
		}
		name, opts, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" && opts == "" {
			continue
		}
		if strings.Contains(opts, "omitempty") || strings.Contains(opts, "omitzero") {
			continue
		}
		if name == "" {
			name = field.Name
		}
		keys = append(keys, name)
	}
	return keys
}
