package util

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NumberOr coerces an arbitrary value from external analytical data into a
// float64, returning def when the value is absent, non-numeric, NaN, or
// infinite. Every read of upstream analysis data goes through this helper so
// sparse input degrades to a conservative default instead of failing a build.
func NumberOr(value any, def float64) float64 {
	switch v := value.(type) {
	case float64:
		return finiteOr(v, def)
	case float32:
		return finiteOr(float64(v), def)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return def
		}
		return finiteOr(parsed, def)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return def
		}
		return finiteOr(parsed, def)
	default:
		return def
	}
}

// NonEmptyStringOr returns value trimmed, or def when value is empty or
// whitespace only.
func NonEmptyStringOr(value, def string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return def
}

// ClampScore bounds a score to the [0,100] range used everywhere downstream.
func ClampScore(value float64) float64 {
	if math.IsNaN(value) || value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

func finiteOr(value, def float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return def
	}
	return value
}
