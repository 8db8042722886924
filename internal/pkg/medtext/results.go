package medtext

import (
	"regexp"
	"strings"
)

// headerWords blacklists table header and metadata labels that must never
// become test rows. Checked word-by-word: a candidate name made up entirely
// of these words is a misread header.
var headerWords = map[string]bool{
	"test": true, "tests": true, "name": true, "parameter": true,
	"analyte": true, "component": true, "result": true, "results": true,
	"value": true, "values": true, "range": true, "reference": true,
	"ref": true, "unit": true, "units": true, "flag": true, "flags": true,
	"status": true, "normal": true, "patient": true, "provider": true,
	"physician": true, "doctor": true, "facility": true, "date": true,
	"dob": true, "mrn": true, "phone": true, "address": true,
	"collected": true, "reported": true, "comments": true, "diagnosis": true,
	"interpretation": true, "plan": true, "impression": true,
	"collection": true, "specimen": true, "report": true, "visit": true,
	"encounter": true, "appointment": true, "weight": true, "height": true,
	"temperature": true, "pulse": true, "bp": true,
}

func isValidResultName(name string) bool {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return false
	}
	words := strings.Fields(strings.ToLower(strings.Map(keepLetters, name)))
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !headerWords[w] {
			return true
		}
	}
	return false
}

func keepLetters(r rune) rune {
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == ' ' {
		return r
	}
	return ' '
}

// resultStrategy is one parsing strategy for the results table. Strategies
// are tried in strict order and the engine commits to the first one that
// yields at least one valid row; they are fallbacks, not merges.
type resultStrategy struct {
	name  string
	parse func(text string) []TestResult
}

var resultStrategies = []resultStrategy{
	{name: "pipe_table", parse: parsePipeTable},
	{name: "colon_rows", parse: parseColonRows},
	{name: "flagged_lines", parse: parseFlaggedLines},
}

// ParseResults extracts the individual test results from a document body.
// When no structured strategy yields a row, imaging and pathology text falls
// back to a single narrative pseudo-result.
func ParseResults(text string) []TestResult {
	for _, strategy := range resultStrategies {
		if rows := strategy.parse(text); len(rows) > 0 {
			return rows
		}
	}
	return parseNarrative(text)
}

var tableSeparatorRE = regexp.MustCompile(`^[\s|:+-]+$`)

// parsePipeTable reads rows of the form "name | value | referenceRange".
func parsePipeTable(text string) []TestResult {
	var rows []TestResult
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "|") || tableSeparatorRE.MatchString(line) {
			continue
		}
		cells := splitPipeCells(line)
		if len(cells) < 2 {
			continue
		}
		name := cells[0]
		if !isValidResultName(name) {
			continue
		}
		row := TestResult{Name: name, Value: cells[1]}
		if len(cells) > 2 {
			row.ReferenceRange = cells[2]
		}
		finishRow(&row)
		rows = append(rows, row)
	}
	return rows
}

func splitPipeCells(line string) []string {
	raw := strings.Split(line, "|")
	cells := make([]string, 0, len(raw))
	for _, c := range raw {
		if c = strings.TrimSpace(c); c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

var (
	colonRowRE   = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9 ()/.'%-]{1,40}?)\s*:\s*(.+)$`)
	parenRangeRE = regexp.MustCompile(`\(([^)]+)\)\s*$`)

	// Qualitative values that count as results even without a number.
	qualitativeRE = regexp.MustCompile(`(?i)\b(positive|negative|detected|not\s+detected|reactive|non-?reactive|normal|abnormal|present|absent|trace)\b`)
)

// parseColonRows reads "Name: Value (ReferenceRange)" lines. The value must
// carry a number or a qualitative term; colon lines are also how documents
// spell their metadata, and the name blacklist alone cannot catch every
// "Ordering Provider: ..." variant.
func parseColonRows(text string) []TestResult {
	var rows []TestResult
	for _, line := range strings.Split(text, "\n") {
		m := colonRowRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if !isValidResultName(name) {
			continue
		}
		value := strings.TrimSpace(m[2])
		var refRange string
		if pm := parenRangeRE.FindStringSubmatch(value); pm != nil {
			refRange = strings.TrimSpace(pm[1])
			value = strings.TrimSpace(value[:len(value)-len(pm[0])])
		}
		if value == "" || !looksLikeResultValue(value) {
			continue
		}
		row := TestResult{Name: name, Value: value, ReferenceRange: refRange}
		finishRow(&row)
		rows = append(rows, row)
	}
	return rows
}

func looksLikeResultValue(value string) bool {
	return strings.ContainsAny(value, "0123456789") || qualitativeRE.MatchString(value)
}

// flaggedLineRE reads "Name  Value  H  Range" rows, where the whole-word H
// or L column is the lab's own abnormal flag.
var flaggedLineRE = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9 ()/.'%-]{1,40}?)\s{2,}(\S+(?:\s\S+)?)\s+(H|L)\b\s*(.*?)\s*$`)

// parseFlaggedLines handles the flagged row layout. The explicit H/L token
// sets IsAbnormal directly, bypassing range evaluation: the flag is already
// the lab's answer.
func parseFlaggedLines(text string) []TestResult {
	var rows []TestResult
	for _, line := range strings.Split(text, "\n") {
		m := flaggedLineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if !isValidResultName(name) {
			continue
		}
		row := TestResult{
			Name:           name,
			Value:          strings.TrimSpace(m[2]),
			ReferenceRange: strings.TrimSpace(m[4]),
			IsAbnormal:     true,
		}
		if unit, ok := ExtractUnit(row.Value); ok {
			row.Unit = unit
		}
		rows = append(rows, row)
	}
	return rows
}

// finishRow derives Unit and IsAbnormal for a parsed row. Rows never set
// IsAbnormal without going through the evaluator; only the flagged-line
// strategy, where the document states the flag itself, skips it.
func finishRow(row *TestResult) {
	if unit, ok := ExtractUnit(row.Value); ok {
		row.Unit = unit
	}
	row.IsAbnormal = IsAbnormal(row.Value, row.ReferenceRange)
}

var imagingKeywords = []string{
	"RADIOLOGY", "IMAGING", "PATHOLOGY", "MRI", "CT SCAN", "X-RAY", "ULTRASOUND",
}

// parseNarrative is the fallback for imaging and pathology reports, which
// rarely carry tabular results. It emits one synthetic result holding the
// FINDINGS/IMPRESSION/DIAGNOSIS prose so callers still get something to
// surface.
func parseNarrative(text string) []TestResult {
	upper := strings.ToUpper(text)
	matched := false
	for _, kw := range imagingKeywords {
		if strings.Contains(upper, kw) {
			matched = true
			break
		}
	}
	if !matched {
		return nil
	}

	section := captureSection(text, "findings", "impression", "diagnosis")
	if section == "" {
		return nil
	}

	name := extractTestName(text)
	if name == "" {
		name = "Imaging Results"
	}
	lower := strings.ToLower(section)
	return []TestResult{{
		Name:       name,
		Value:      section,
		IsAbnormal: strings.Contains(lower, "abnormal") || strings.Contains(lower, "concerning"),
	}}
}
