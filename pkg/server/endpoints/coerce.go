package endpoints

import (
	"fmt"
	"strconv"
	"strings"
)

// Tree rows arrive from spreadsheet exports where every cell may be a JSON
// number, a numeric string, an empty string or null. These helpers fold all
// of those shapes into Go values: optional fields read absent, null, empty
// or zero as "not set", required fields reject anything unparsable.

func optString(row map[string]interface{}, key string) *string {
	v, ok := row[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

func optInt(row map[string]interface{}, key string) *int {
	f := optFloat(row, key)
	if f == nil {
		return nil
	}
	i := int(*f)
	return &i
}

func optFloat(row map[string]interface{}, key string) *float64 {
	v, ok := row[key]
	if !ok || v == nil {
		return nil
	}
	switch n := v.(type) {
	case float64:
		if n == 0 {
			return nil
		}
		return &n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || f == 0 {
			return nil
		}
		return &f
	default:
		return nil
	}
}

func requireInt(row map[string]interface{}, key string) (int, error) {
	return parseInt(row[key], key)
}

func parseInt(v interface{}, name string) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("missing required field %q", name)
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("field %q is not a number: %q", name, n)
		}
		return int(f), nil
	default:
		return 0, fmt.Errorf("field %q is not a number", name)
	}
}
