package profiles

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// ErrInvalidJSON is returned when profile text does not parse as JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// Indent is the indentation unit of formatted profiles.
const Indent = "  "

// Validate reports whether text is a single JSON value, with the parser's
// message on failure.
func Validate(text string) error {
	if _, err := decode([]byte(text)); err != nil {
		return err
	}
	return nil
}

// Format pretty-prints a JSON document with two-space indentation. Object
// key order and string escapes are kept as written, so formatting an already
// formatted document is a no-op.
func Format(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if err := Validate(trimmed); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(trimmed), "", Indent); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return buf.String(), nil
}

// SameJSON reports whether a and b hold equal JSON values. Object key order
// and whitespace are ignored; numbers compare by value, so 1.5 equals 1.50.
func SameJSON(a, b []byte) bool {
	va, err := decode(a)
	if err != nil {
		return false
	}
	vb, err := decode(b)
	if err != nil {
		return false
	}
	return reflect.DeepEqual(numbersToFloat(va), numbersToFloat(vb))
}

// numbersToFloat replaces every json.Number in v that fits a float64 with its
// value. Numbers out of float64 range keep their literal text.
func numbersToFloat(v any) any {
	switch t := v.(type) {
	case json.Number:
		if f, err := strconv.ParseFloat(t.String(), 64); err == nil {
			return f
		}
		return t
	case map[string]any:
		for k, e := range t {
			t[k] = numbersToFloat(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = numbersToFloat(e)
		}
		return t
	default:
		return v
	}
}

func decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidJSON)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrInvalidJSON)
	}
	return v, nil
}
