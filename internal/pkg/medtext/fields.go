package medtext

import (
	"regexp"
	"strings"
)

// fieldRule is one entry of an ordered label rule table. Rules are tried in
// declaration order and the first rule that matches anywhere in the document
// wins, even when a later-priority label appears earlier in the text.
// Documents interleave sections unpredictably, so "most specific label wins
// regardless of position" is the only ordering that holds up.
type fieldRule struct {
	label string
	re    *regexp.Regexp
}

func labelRules(pairs ...string) []fieldRule {
	if len(pairs)%2 != 0 {
		panic("labelRules: label/pattern pairs required")
	}
	rules := make([]fieldRule, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		rules = append(rules, fieldRule{label: pairs[i], re: regexp.MustCompile(pairs[i+1])})
	}
	return rules
}

var (
	providerRules = labelRules(
		"ordering provider", `(?i)ordering\s+provider\s*[:\-]\s*([^\n]+)`,
		"physician", `(?i)\bphysician\s*[:\-]\s*([^\n]+)`,
		"ordered by", `(?i)ordered\s+by\s*[:\-]\s*([^\n]+)`,
		"provider", `(?i)\bprovider\s*[:\-]\s*([^\n]+)`,
		"doctor", `(?i)\bdoctor\s*[:\-]\s*([^\n]+)`,
	)

	facilityRules = labelRules(
		"facility", `(?i)\bfacility\s*[:\-]\s*([^\n]+)`,
		"laboratory", `(?i)\blaboratory\s*[:\-]\s*([^\n]+)`,
		"lab", `(?i)\blab\s*[:\-]\s*([^\n]+)`,
		"clinic", `(?i)\bclinic\s*[:\-]\s*([^\n]+)`,
		"location", `(?i)\blocation\s*[:\-]\s*([^\n]+)`,
	)

	patientNameRules = labelRules(
		"patient name", `(?i)patient\s+name\s*[:\-]\s*([^\n]+)`,
		"patient", `(?im)^\s*patient\s*[:\-]\s*([^\n]+)`,
		"name", `(?im)^\s*name\s*[:\-]\s*([^\n]+)`,
	)

	dobRules = labelRules(
		"date of birth", `(?i)date\s+of\s+birth[^\n\d]*`+dateTokenPattern,
		"dob", `(?i)\bDOB\b[^\n\d]*`+dateTokenPattern,
		"birth date", `(?i)birth\s*date[^\n\d]*`+dateTokenPattern,
	)

	mrnRules = labelRules(
		"medical record number", `(?i)medical\s+record\s+(?:number|no\.?)\s*[:#]?\s*([A-Za-z0-9-]+)`,
		"mrn", `(?i)\bMRN\b\s*[:#]?\s*([A-Za-z0-9-]+)`,
		"patient id", `(?i)patient\s+id\s*[:#]?\s*([A-Za-z0-9-]+)`,
	)

	collectionDateRules = labelRules(
		"collection date", `(?i)collection\s+date[^\n\d]*`+dateTokenPattern,
		"date collected", `(?i)date\s+collected[^\n\d]*`+dateTokenPattern,
		"specimen collected", `(?i)specimen\s+collected[^\n\d]*`+dateTokenPattern,
		"collected", `(?i)\bcollected\b[^\n\d]*`+dateTokenPattern,
		"drawn", `(?i)\bdrawn\b[^\n\d]*`+dateTokenPattern,
	)

	reportDateRules = labelRules(
		"report date", `(?i)report\s+date[^\n\d]*`+dateTokenPattern,
		"date reported", `(?i)date\s+reported[^\n\d]*`+dateTokenPattern,
		"date of report", `(?i)date\s+of\s+report[^\n\d]*`+dateTokenPattern,
		"reported", `(?i)\breported\b[^\n\d]*`+dateTokenPattern,
	)

	visitDateRules = labelRules(
		"visit date", `(?i)visit\s+date[^\n\d]*`+dateTokenPattern,
		"date of visit", `(?i)date\s+of\s+visit[^\n\d]*`+dateTokenPattern,
		"date of service", `(?i)date\s+of\s+service[^\n\d]*`+dateTokenPattern,
		"encounter date", `(?i)encounter\s+date[^\n\d]*`+dateTokenPattern,
		"appointment date", `(?i)appointment\s+date[^\n\d]*`+dateTokenPattern,
		"date", `(?im)^\s*date\s*[:\-][^\n\d]*`+dateTokenPattern,
	)

	testNameRules = labelRules(
		"test name", `(?i)test\s+name\s*[:\-]\s*([^\n]+)`,
		"test", `(?im)^\s*test\s*[:\-]\s*([^\n]+)`,
		"panel", `(?i)\bpanel\s*[:\-]\s*([^\n]+)`,
		"examination", `(?i)\bexam(?:ination)?\s*[:\-]\s*([^\n]+)`,
		"procedure", `(?i)\bprocedure\s*[:\-]\s*([^\n]+)`,
	)

	visitTypeRules = labelRules(
		"visit type", `(?i)visit\s+type\s*[:\-]\s*([^\n]+)`,
		"encounter type", `(?i)encounter\s+type\s*[:\-]\s*([^\n]+)`,
		"appointment type", `(?i)appointment\s+type\s*[:\-]\s*([^\n]+)`,
		"type of visit", `(?i)type\s+of\s+visit\s*[:\-]\s*([^\n]+)`,
	)

	chiefComplaintRules = labelRules(
		"chief complaint", `(?i)chief\s+complaint\s*[:\-]\s*([^\n]+)`,
		"reason for visit", `(?i)reason\s+for\s+visit\s*[:\-]\s*([^\n]+)`,
		"presenting complaint", `(?i)presenting\s+complaint\s*[:\-]\s*([^\n]+)`,
	)
)

// Named lab panels recognized as a test-name fallback when no explicit label
// exists. Longer names first so the spelled-out form beats its acronym.
var labPanels = []string{
	"Comprehensive Metabolic Panel", "Basic Metabolic Panel",
	"Complete Blood Count", "Hemoglobin A1c", "Thyroid Panel", "Lipid Panel",
	"Iron Panel", "Vitamin B12", "Vitamin D", "Urinalysis", "Ferritin",
	"Cortisol", "HbA1c", "CBC", "CMP", "BMP", "TSH", "PSA", "CRP", "ESR",
}

var labPanelREs = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(labPanels))
	for i, p := range labPanels {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p) + `\b`)
	}
	return res
}()

// ExtractFields pulls every named field from free text. Each field runs its
// own rule cascade independently; failing to find one field never blocks the
// others.
func ExtractFields(text string) Fields {
	f := Fields{
		TestName:       extractTestName(text),
		VisitType:      firstRuleMatch(text, visitTypeRules),
		Provider:       firstRuleMatch(text, providerRules),
		Facility:       firstRuleMatch(text, facilityRules),
		CollectionDate: firstDateMatch(text, collectionDateRules),
		ReportDate:     firstDateMatch(text, reportDateRules),
		VisitDate:      firstDateMatch(text, visitDateRules),
		ChiefComplaint: firstRuleMatch(text, chiefComplaintRules),
		VitalSigns:     extractVitalSigns(text),
		Diagnoses:      extractListSection(text, "diagnoses", "diagnosis", "assessment"),
		Symptoms:       extractListSection(text, "symptoms", "symptom"),
		Medications:    extractListSection(text, "current medications", "medications", "prescriptions"),
		Comments:       captureSection(text, "comments", "interpretation"),
		Conclusions:    captureSection(text, "conclusions", "conclusion", "plan"),
		FollowUp:       captureSection(text, "follow-up", "follow up"),
	}

	name := firstRuleMatch(text, patientNameRules)
	dob := firstDateMatch(text, dobRules)
	mrn := firstRuleMatch(text, mrnRules)
	if name != "" || dob != nil || mrn != "" {
		f.Patient = &PatientInfo{Name: name, DateOfBirth: dob, MRN: mrn}
	}
	return f
}

func firstRuleMatch(text string, rules []fieldRule) string {
	for _, rule := range rules {
		if m := rule.re.FindStringSubmatch(text); m != nil {
			if v := cleanFieldValue(m[1]); v != "" {
				return v
			}
		}
	}
	return ""
}

func firstDateMatch(text string, rules []fieldRule) *Date {
	for _, rule := range rules {
		if m := rule.re.FindStringSubmatch(text); m != nil {
			if d := parseDateToken(m[1]); d != nil {
				return d
			}
		}
	}
	return nil
}

func extractTestName(text string) string {
	if name := firstRuleMatch(text, testNameRules); name != "" && isValidResultName(name) {
		return name
	}
	for i, re := range labPanelREs {
		if re.MatchString(text) {
			return labPanels[i]
		}
	}
	return ""
}

func cleanFieldValue(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimRight(v, " \t.,;")
	return v
}

// --- sections ---

// sectionHeaderRE marks lines that start a new labeled section, used to
// terminate section capture.
var sectionHeaderRE = regexp.MustCompile(`^[A-Za-z][A-Za-z ()'/-]{0,40}:`)

// captureSection returns the narrative text under the first of the given
// headers: the remainder of the header line plus following lines up to a
// blank line or the next labeled section. Headers match case-insensitively
// at line start.
func captureSection(text string, headers ...string) string {
	lines := strings.Split(text, "\n")
	for _, header := range headers {
		for i := range lines {
			rest, ok := matchHeaderLine(lines[i], header)
			if !ok {
				continue
			}
			parts := []string{}
			if rest != "" {
				parts = append(parts, rest)
			}
			for j := i + 1; j < len(lines); j++ {
				l := strings.TrimSpace(lines[j])
				if l == "" || sectionHeaderRE.MatchString(l) {
					break
				}
				parts = append(parts, l)
			}
			if len(parts) > 0 {
				return strings.Join(parts, "\n")
			}
		}
	}
	return ""
}

// matchHeaderLine reports whether the line begins with the header word
// followed by a boundary (colon, dash, or end of line), returning any
// same-line remainder.
func matchHeaderLine(line, header string) (string, bool) {
	l := strings.TrimSpace(line)
	if len(l) < len(header) || !strings.EqualFold(l[:len(header)], header) {
		return "", false
	}
	rest := l[len(header):]
	if rest == "" {
		return "", true
	}
	switch rest[0] {
	case ':', '-':
		return strings.TrimSpace(rest[1:]), true
	case ' ', '\t':
		rest = strings.TrimSpace(rest)
		if strings.HasPrefix(rest, ":") || strings.HasPrefix(rest, "-") {
			return strings.TrimSpace(rest[1:]), true
		}
		return "", false
	default:
		return "", false
	}
}

var bulletPrefixRE = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*`)

// extractListSection collects free-text line items under a list header.
// An inline value ("Diagnosis: Migraine, tension headache") splits on
// commas and semicolons; otherwise each bulleted or plain line below the
// header is one item.
func extractListSection(text string, headers ...string) []string {
	lines := strings.Split(text, "\n")
	for _, header := range headers {
		for i := range lines {
			rest, ok := matchHeaderLine(lines[i], header)
			if !ok {
				continue
			}
			if rest != "" {
				return splitListItems(rest)
			}
			var items []string
			for j := i + 1; j < len(lines); j++ {
				l := strings.TrimSpace(lines[j])
				if l == "" || sectionHeaderRE.MatchString(l) {
					break
				}
				if item := cleanFieldValue(bulletPrefixRE.ReplaceAllString(l, "")); item != "" {
					items = append(items, item)
				}
			}
			if len(items) > 0 {
				return items
			}
		}
	}
	return nil
}

func splitListItems(s string) []string {
	var items []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' }) {
		if item := cleanFieldValue(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// --- vital signs ---

var (
	bpRE     = regexp.MustCompile(`(?i)(?:blood\s+pressure|\bBP\b)\s*[:\s]\s*(\d{2,3}\s*/\s*\d{2,3})`)
	pulseRE  = regexp.MustCompile(`(?i)(?:pulse|heart\s+rate|\bHR\b)\s*[:\s]\s*(\d{2,3})`)
	tempRE   = regexp.MustCompile(`(?i)temp(?:erature)?\.?\s*[:\s]\s*(\d{2,3}(?:\.\d+)?\s*°?\s*[FC]?)`)
	respRE   = regexp.MustCompile(`(?i)(?:respiratory\s+rate|resp\.?|\bRR\b)\s*[:\s]\s*(\d{1,2})`)
	weightRE = regexp.MustCompile(`(?i)(?:weight|\bwt\b)\.?\s*[:\s]\s*(\d{1,3}(?:\.\d+)?\s*(?:kg|lbs?|pounds)?)`)
	heightRE = regexp.MustCompile(`(?i)(?:height|\bht\b)\.?\s*[:\s]\s*(\d+(?:\.\d+)?\s*(?:cm|in|m)|\d+'\s*\d*"?)`)
)

// extractVitalSigns only scans inside a located "Vital Signs" section.
// Narrative text elsewhere is full of numbers that would otherwise read as
// pulses and temperatures.
func extractVitalSigns(text string) *VitalSigns {
	section := vitalsSection(text)
	if section == "" {
		return nil
	}
	vs := VitalSigns{
		BloodPressure:   firstGroup(bpRE, section),
		Pulse:           firstGroup(pulseRE, section),
		Temperature:     firstGroup(tempRE, section),
		RespiratoryRate: firstGroup(respRE, section),
		Weight:          firstGroup(weightRE, section),
		Height:          firstGroup(heightRE, section),
	}
	if vs == (VitalSigns{}) {
		return nil
	}
	return &vs
}

// vitalsSection returns the header-line remainder plus the lines below a
// "Vital Signs" header up to the first blank line. Individual vitals are
// colon-labeled themselves, so the generic section-header terminator cannot
// be used here.
func vitalsSection(text string) string {
	lines := strings.Split(text, "\n")
	for _, header := range []string{"vital signs", "vitals"} {
		for i := range lines {
			rest, ok := matchHeaderLine(lines[i], header)
			if !ok {
				continue
			}
			parts := []string{}
			if rest != "" {
				parts = append(parts, rest)
			}
			for j := i + 1; j < len(lines); j++ {
				l := strings.TrimSpace(lines[j])
				if l == "" {
					break
				}
				parts = append(parts, l)
			}
			return strings.Join(parts, "\n")
		}
	}
	return ""
}

func firstGroup(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return cleanFieldValue(m[1])
	}
	return ""
}
