package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"preflop-decision-api/internal/models"
)

// NormalizeCompletion parses the model reply and coerces it into a Decision.
// Only replies that are not valid JSON are replaced by the fallback decision; the
// second return value reports whether that happened. Valid JSON that is not an
// object (including null) carries no fields, so every field takes its default.
func NormalizeCompletion(raw string) (*models.Decision, bool) {
	var value interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &value); err != nil {
		return NormalizeFields(models.FallbackDecision()), true
	}

	parsed, ok := value.(map[string]interface{})
	if !ok {
		parsed = map[string]interface{}{}
	}
	return NormalizeFields(parsed), false
}

// NormalizeFields fills every Decision field from parsed, using defaults for
// anything missing or of the wrong shape.
func NormalizeFields(parsed map[string]interface{}) *models.Decision {
	return &models.Decision{
		Decision:   stringOr(parsed["decision"], models.DefaultDecision),
		Confidence: numberOr(parsed["confidence"], models.DefaultConfidence),
		Rationale:  stringOr(parsed["rationale"], models.DefaultRationale),
		WhenFold:   stringSlice(parsed["when_fold"]),
		WhenCall:   stringSlice(parsed["when_call"]),
		WhenRaise:  stringSlice(parsed["when_raise"]),
		RiskFlags:  stringSlice(parsed["risk_flags"]),
	}
}

func stringOr(v interface{}, fallback string) string {
	if isFalsy(v) {
		return fallback
	}
	return stringify(v)
}

func numberOr(v interface{}, fallback float64) float64 {
	var n float64
	switch val := v.(type) {
	case float64:
		n = val
	case string:
		val = strings.TrimSpace(val)
		if val == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fallback
		}
		n = parsed
	case bool:
		if val {
			return 1
		}
		return 0
	default:
		return fallback
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return fallback
	}
	return n
}

// stringSlice never returns nil so the field always encodes as a JSON array.
func stringSlice(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, stringify(item))
	}
	return out
}

func isFalsy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	}
	return false
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
