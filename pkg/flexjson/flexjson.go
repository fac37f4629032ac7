// Package flexjson provides tolerant JSON scalar types for upstream
// payloads that mix naming conventions and encode numbers as strings.
// Decoding never fails: anything unusable is treated as absent.
package flexjson

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a nullable numeric value. It accepts JSON numbers, numeric
// strings, and null; everything else decodes as absent.
type Number struct {
	Value float64
	Valid bool
}

// Num builds a valid Number, mostly for tests and fixtures.
func Num(v float64) Number {
	return Number{Value: v, Valid: true}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	n.Value, n.Valid = 0, false

	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return nil
		}
		s = strings.TrimSpace(str)
		if s == "" {
			return nil
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	n.Value, n.Valid = f, true
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns the value as a nullable pointer.
func (n Number) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// FirstValid returns the first valid number, resolving primary-then-alternate
// key pairs (camelCase preferred over snake_case).
func FirstValid(values ...Number) Number {
	for _, v := range values {
		if v.Valid {
			return v
		}
	}
	return Number{}
}

// String is a string value that accepts JSON strings, numbers, and booleans.
// Null and anything else decode as the empty string.
type String string

func (s *String) UnmarshalJSON(data []byte) error {
	*s = ""

	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = String(str)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*s = String(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*s = String(strconv.FormatBool(b))
		return nil
	}

	return nil
}

// FirstNonEmpty returns the first non-empty string of a key-pair resolution
// chain.
func FirstNonEmpty(values ...String) String {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
