package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric request field that browsers may send either as a JSON
// number or as a string. null and "" count as "not supplied".
type Number struct {
	Value float64
	Set   bool // something other than null or "" was supplied
	Valid bool // the supplied value is a finite number
}

// NumberOf returns a supplied, valid Number.
func NumberOf(v float64) Number {
	return Number{Value: v, Set: true, Valid: true}
}

// ParseNumber interprets a form value.
func ParseNumber(raw string) Number {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Number{}
	}
	n := Number{Set: true}
	if v, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		n.Value, n.Valid = v, true
	}
	return n
}

// UnmarshalJSON never fails on a well-formed JSON value: booleans, objects and
// non-numeric strings decode as Set but not Valid so callers can report them.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = ParseNumber(s)
		return nil
	}
	*n = ParseNumber(string(data))
	return nil
}

// MarshalJSON writes null for absent or invalid values.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Set || !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// ID reports the value as a positive integer identifier.
func (n Number) ID() (int64, bool) {
	if !n.Set || !n.Valid || n.Value <= 0 || n.Value != math.Trunc(n.Value) || n.Value >= 1<<63 {
		return 0, false
	}
	return int64(n.Value), true
}
