package medtext

import (
	"regexp"
	"strconv"
)

// Explicit abnormal flags printed by source labs. A flag always outranks a
// numeric range comparison: the lab computed it with context the engine
// lacks (sex- and age-adjusted ranges, method-specific cutoffs).
var abnormalFlagRE = regexp.MustCompile(`(?i)\b(HIGH|ELEVATED|ABNORMAL|POSITIVE|POS|LOW|DECREASED|H|L)\b`)

var (
	firstNumberRE = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)
	rangeMinMaxRE = regexp.MustCompile(`^\s*([-+]?\d+(?:\.\d+)?)\s*[-–]\s*([-+]?\d+(?:\.\d+)?)\s*$`)
	rangeBelowRE  = regexp.MustCompile(`^\s*<\s*=?\s*([-+]?\d+(?:\.\d+)?)`)
	rangeAboveRE  = regexp.MustCompile(`^\s*>\s*=?\s*([-+]?\d+(?:\.\d+)?)`)
)

// IsAbnormal decides whether a result value is abnormal. Decision order,
// first match wins:
//
//  1. value carries an explicit whole-word flag (H, LOW, POSITIVE, ...)
//  2. value's first numeric token falls outside referenceRange
//  3. otherwise not abnormal
//
// Range bounds are inclusive for "min-max"; "< max" is abnormal at or above
// max, "> min" abnormal at or below min. A non-numeric value or an
// unparseable range degrades to "not abnormal", never to an error.
func IsAbnormal(value, referenceRange string) bool {
	if hasAbnormalFlag(value) {
		return true
	}
	if referenceRange == "" {
		return false
	}

	num := firstNumberRE.FindString(stripUnit(value))
	if num == "" {
		return false
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return false
	}

	if m := rangeMinMaxRE.FindStringSubmatch(referenceRange); m != nil {
		min, _ := strconv.ParseFloat(m[1], 64)
		max, _ := strconv.ParseFloat(m[2], 64)
		return v < min || v > max
	}
	if m := rangeBelowRE.FindStringSubmatch(referenceRange); m != nil {
		max, _ := strconv.ParseFloat(m[1], 64)
		return v >= max
	}
	if m := rangeAboveRE.FindStringSubmatch(referenceRange); m != nil {
		min, _ := strconv.ParseFloat(m[1], 64)
		return v <= min
	}
	return false
}

// hasAbnormalFlag checks the value for an explicit flag token. The unit is
// blanked out first so "7.5 mmol/L" does not read as a LOW flag, and a
// single-letter match directly after a slash is rejected for units the
// whitelist does not know.
func hasAbnormalFlag(value string) bool {
	s := stripUnit(value)
	for _, loc := range abnormalFlagRE.FindAllStringIndex(s, -1) {
		if loc[0] > 0 && (s[loc[0]-1] == '/' || s[loc[0]-1] == '.') {
			continue
		}
		return true
	}
	return false
}
