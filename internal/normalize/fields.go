// Package normalize converts raw, loosely-typed backend records into the
// typed domain model. The backend has accumulated several historical field
// names and value encodings for the same logical data, so every accessor here
// tries a fixed priority order of candidate keys and tolerates numbers stored
// as strings. Nothing in this package returns an error: missing or malformed
// data degrades to the zero value or nil, never to a failure.
package normalize

import (
	"strconv"
	"strings"
	"time"
)

// firstValue returns the first present, non-nil value among the candidate
// keys, in the order given.
func firstValue(raw map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// stringField resolves a string-valued field through its candidate keys.
// Numeric values are rendered to their string form; other types yield "".
func stringField(raw map[string]any, keys ...string) string {
	v, ok := firstValue(raw, keys...)
	if !ok {
		return ""
	}
	return asString(v)
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// boolField resolves a boolean field, accepting native bools and the strings
// "true"/"false" (case-insensitive). def is returned when no candidate key is
// present or the value is unusable.
func boolField(raw map[string]any, def bool, keys ...string) bool {
	v, ok := firstValue(raw, keys...)
	if !ok {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true":
			return true
		case "false":
			return false
		}
	}
	return def
}

// floatField resolves a numeric field, accepting native numbers and numeric
// strings. Parse failure yields nil, never an error.
func floatField(raw map[string]any, keys ...string) *float64 {
	v, ok := firstValue(raw, keys...)
	if !ok {
		return nil
	}
	f, ok := asFloat(v)
	if !ok {
		return nil
	}
	return &f
}

// intField resolves an integer field with the same tolerance as floatField;
// fractional values are truncated.
func intField(raw map[string]any, keys ...string) *int {
	v, ok := firstValue(raw, keys...)
	if !ok {
		return nil
	}
	f, ok := asFloat(v)
	if !ok {
		return nil
	}
	n := int(f)
	return &n
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// stringSliceField resolves an array-of-strings field. Non-string elements
// are skipped rather than failing the whole array.
func stringSliceField(raw map[string]any, keys ...string) []string {
	v, ok := firstValue(raw, keys...)
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// mapSliceField resolves an array-of-objects field.
func mapSliceField(raw map[string]any, keys ...string) []map[string]any {
	v, ok := firstValue(raw, keys...)
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []map[string]any
	for _, e := range arr {
		if m, ok := e.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// mapField resolves a nested-object field.
func mapField(raw map[string]any, keys ...string) map[string]any {
	v, ok := firstValue(raw, keys...)
	if !ok {
		return nil
	}
	m, _ := v.(map[string]any)
	return m
}

// timestampLayouts are tried in order when parsing createdAt and startDate.
// The backend writes RFC 3339, but older records carry a zone-less datetime
// or a bare date.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// timeField resolves a timestamp stored as an ISO-8601 string. Unparseable
// values yield nil.
func timeField(raw map[string]any, keys ...string) *time.Time {
	s := stringField(raw, keys...)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// weekdayNames indexes the English weekday names used as day-of-week slot
// keys, lowercased for case-insensitive inference.
var weekdayNames = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// isWeekdayName reports whether a schedule slot key is a weekday name.
func isWeekdayName(key string) bool {
	return weekdayNames[strings.ToLower(strings.TrimSpace(key))]
}
