package medtext

import "strings"

// categoryRule pairs a category with its keyword evidence. Rules are
// evaluated in declaration order and the first category with any hit in the
// body text or the filename wins; categories are mutually exclusive by
// construction. Filename hints are an OR-condition, not a tiebreaker, so a
// filename alone can classify a document with no matching body text.
type categoryRule struct {
	category  DocumentCategory
	keywords  []string
	fileHints []string
}

var categoryRules = []categoryRule{
	{
		category: CategoryLabResult,
		keywords: []string{
			"lab results", "laboratory report", "laboratory", "test results",
			"specimen", "reference range", "metabolic panel", "lipid panel",
			"complete blood count", "urinalysis",
		},
		fileHints: []string{"lab", "test", "result"},
	},
	{
		category: CategoryImaging,
		keywords: []string{
			"radiology", "imaging", "mri", "ct scan", "x-ray", "ultrasound",
			"impression:", "findings:",
		},
		fileHints: []string{"mri", "xray", "x-ray", "ct_", "ultrasound", "imaging", "scan"},
	},
	{
		category: CategoryCondition,
		keywords: []string{
			"diagnosis", "diagnosed", "condition", "chief complaint",
			"assessment", "symptoms",
		},
		fileHints: []string{"diagnosis", "condition"},
	},
	{
		category: CategoryMedication,
		keywords: []string{
			"medication", "prescription", "prescribed", "pharmacy", "dosage",
			"refill", "dispense",
		},
		fileHints: []string{"medication", "prescription", "rx_", "rx-"},
	},
	{
		category: CategoryAppointment,
		keywords: []string{
			"appointment", "visit note", "office visit", "follow-up visit",
			"scheduled", "encounter",
		},
		fileHints: []string{"visit", "appointment", "appt", "gp_", "dr_", "dr-"},
	},
}

// Classify assigns a document to exactly one category from weighted keyword
// evidence plus filename hints. Anything with no evidence at all is General.
func Classify(text, filename string) DocumentCategory {
	body := strings.ToLower(text)
	fname := strings.ToLower(filename)

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(body, kw) {
				return rule.category
			}
		}
		if fname == "" {
			continue
		}
		for _, hint := range rule.fileHints {
			if strings.Contains(fname, hint) {
				return rule.category
			}
		}
	}
	return CategoryGeneral
}
