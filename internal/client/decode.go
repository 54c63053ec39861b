// ABOUTME: Shape-checked JSON decoding for API responses
// ABOUTME: Rejects null, empty and mis-shaped bodies instead of defaulting to empty values

package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// validator is implemented by records with required fields
type validator interface {
	validate() error
}

// checkShape verifies the top-level JSON kind of a body
func checkShape(ep Endpoint, data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &DecodeError{Op: ep.Name, Err: errors.New("empty response body")}
	}

	switch ep.shape {
	case shapeArray:
		if trimmed[0] != '[' {
			return nil, &DecodeError{Op: ep.Name, Err: fmt.Errorf("expected JSON array, got %s", describe(trimmed))}
		}
	case shapeObject:
		if trimmed[0] != '{' {
			return nil, &DecodeError{Op: ep.Name, Err: fmt.Errorf("expected JSON object, got %s", describe(trimmed))}
		}
	}
	return trimmed, nil
}

// decodeObject decodes a single record and checks its required fields
func decodeObject[T any](ep Endpoint, data []byte) (*T, error) {
	trimmed, err := checkShape(ep, data)
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, &DecodeError{Op: ep.Name, Err: err}
	}
	if v, ok := any(&out).(validator); ok {
		if err := v.validate(); err != nil {
			return nil, &DecodeError{Op: ep.Name, Err: err}
		}
	}
	return &out, nil
}

// decodeList decodes an array of records and checks each element
func decodeList[T any](ep Endpoint, data []byte) ([]T, error) {
	trimmed, err := checkShape(ep, data)
	if err != nil {
		return nil, err
	}

	out := []T{}
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, &DecodeError{Op: ep.Name, Err: err}
	}
	for i := range out {
		if v, ok := any(&out[i]).(validator); ok {
			if err := v.validate(); err != nil {
				return nil, &DecodeError{Op: ep.Name, Err: fmt.Errorf("element %d: %w", i, err)}
			}
		}
	}
	return out, nil
}

// describe names the JSON kind a body starts with
func describe(data []byte) string {
	switch data[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	default:
		return "number"
	}
}
