package grocery

import (
	"math"
	"strconv"
	"strings"
)

var vulgarFractions = map[rune]float64{
	'¼': 0.25, '½': 0.5, '¾': 0.75,
	'⅓': 1.0 / 3, '⅔': 2.0 / 3,
	'⅛': 0.125, '⅜': 0.375, '⅝': 0.625, '⅞': 0.875,
}

// ParseAmount parses a recipe quantity: "2", "1.5", "1/2", "1 1/2", "½", "1½".
// Ranges ("2-3") and words ("a pinch") are not numeric.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	var total float64
	fields := strings.Fields(s)
	if len(fields) > 2 {
		return 0, false
	}
	for i, f := range fields {
		v, ok := parseAmountField(f)
		if !ok {
			return 0, false
		}
		// Only "whole fraction" is a valid two-part amount.
		if i == 1 && (v >= 1 || strings.ContainsAny(fields[0], "/.")) {
			return 0, false
		}
		total += v
	}
	if total < 0 {
		return 0, false
	}
	return total, true
}

func parseAmountField(f string) (float64, bool) {
	var frac float64
	runes := []rune(f)
	if last := runes[len(runes)-1]; vulgarFractions[last] != 0 {
		frac = vulgarFractions[last]
		f = string(runes[:len(runes)-1])
		if f == "" {
			return frac, true
		}
	}

	if num, den, ok := strings.Cut(f, "/"); ok {
		if frac != 0 {
			return 0, false
		}
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, false
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}

	v, err := strconv.ParseFloat(f, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v + frac, true
}

// FormatAmount renders a summed quantity with at most three decimals.
func FormatAmount(v float64) string {
	v = math.Round(v*1000) / 1000
	return strconv.FormatFloat(v, 'f', -1, 64)
}
