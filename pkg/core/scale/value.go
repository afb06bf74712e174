package scale

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// timeLayouts are the date formats recognized in string data.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// Number converts a numeric data value to float64.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// Timestamp converts a time value or date string to Unix milliseconds.
func Timestamp(v any) (float64, bool) {
	switch t := v.(type) {
	case time.Time:
		return float64(t.UnixMilli()), true
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return float64(parsed.UnixMilli()), true
			}
		}
	}
	return 0, false
}

// Key returns the category key of a data value.
func Key(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.Format(time.RFC3339)
	}
	if f, ok := Number(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	b, _ := json.Marshal(v)
	return string(b)
}

// infer returns the scale type that fits every non-nil value.
func infer(values []any) Type {
	seen := 0
	numeric, temporal := true, true
	for _, v := range values {
		if v == nil {
			continue
		}
		seen++
		if _, ok := Number(v); !ok {
			numeric = false
		}
		if _, ok := Timestamp(v); !ok {
			temporal = false
		}
		if !numeric && !temporal {
			return TypeCategory
		}
	}
	switch {
	case seen == 0:
		return TypeIdentity
	case numeric:
		return TypeLinear
	case temporal:
		return TypeTime
	}
	return TypeCategory
}
