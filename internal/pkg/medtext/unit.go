package medtext

import (
	"regexp"
	"sort"
	"strings"
)

// clinicalUnits is the closed whitelist of units the engine will report.
// Unrecognized units are left absent rather than guessed: misidentifying a
// clinical unit is worse than omitting it. Micro signs are normalized to
// U+00B5 before matching.
var clinicalUnits = []string{
	"mg/dL", "g/dL", "mmol/L", "µmol/L", "ng/mL", "pg/mL", "mIU/L", "U/L",
	"IU/L", "µg/dL", "mEq/L", "mmHg", "µg/L", "ng/dL", "pmol/L", "mm/hr",
	"cells/µL", "k/µL", "g/L", "%", "cm", "mm", "kg/m2", "µg/mL",
}

var (
	unitCanonical = func() map[string]string {
		m := make(map[string]string, len(clinicalUnits))
		for _, u := range clinicalUnits {
			m[strings.ToLower(u)] = u
		}
		return m
	}()

	// Longest alternatives first so "mmHg" is never cut short to "mm".
	// The leading digit anchor keeps a bare "%" in prose from being read
	// as a unit; the trailing class forbids matching inside a longer token.
	unitRE = func() *regexp.Regexp {
		sorted := append([]string(nil), clinicalUnits...)
		sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
		quoted := make([]string, len(sorted))
		for i, u := range sorted {
			quoted[i] = regexp.QuoteMeta(u)
		}
		return regexp.MustCompile(`(?i)\d[\d.]*\s*(` + strings.Join(quoted, "|") + `)(?:[^A-Za-z0-9]|$)`)
	}()

	// Exponent-style hematology units (x10^9/L and friends) have no fixed
	// spelling per lab, so they are matched structurally.
	exponentUnitRE = regexp.MustCompile(`(?i)\d[\d.]*\s*(x10\^\d+\s*/\s*µ?L)`)
)

var microNormalizer = strings.NewReplacer("μ", "µ")

// ExtractUnit scans a raw result value for a numeric token immediately
// followed by a recognized clinical unit and returns the unit in its
// canonical spelling. Matching is case-insensitive.
func ExtractUnit(valueText string) (string, bool) {
	s := microNormalizer.Replace(valueText)
	if m := exponentUnitRE.FindStringSubmatch(s); m != nil {
		return strings.ReplaceAll(m[1], " ", ""), true
	}
	if m := unitRE.FindStringSubmatch(s); m != nil {
		if canonical, ok := unitCanonical[strings.ToLower(m[1])]; ok {
			return canonical, true
		}
	}
	return "", false
}

// stripUnit blanks the matched unit out of a value so that downstream
// whole-word scans (the abnormal-flag check in particular) cannot mistake
// the trailing "L" of "mmol/L" for a LOW flag.
func stripUnit(valueText string) string {
	s := microNormalizer.Replace(valueText)
	if loc := exponentUnitRE.FindStringSubmatchIndex(s); loc != nil {
		return s[:loc[2]] + " " + s[loc[3]:]
	}
	if loc := unitRE.FindStringSubmatchIndex(s); loc != nil {
		return s[:loc[2]] + " " + s[loc[3]:]
	}
	return s
}
