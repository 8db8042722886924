package medtext

import (
	"fmt"
	"strings"
)

var categoryTitles = map[DocumentCategory]string{
	CategoryLabResult:   "Lab Result",
	CategoryImaging:     "Imaging Report",
	CategoryCondition:   "Condition",
	CategoryMedication:  "Medication",
	CategoryAppointment: "Appointment",
	CategoryGeneral:     "Medical Document",
}

// FormatSummary renders a record as human-readable Markdown. The rendering
// is deterministic: identical records always produce byte-identical output,
// which downstream diffing and tests rely on. Absent fields are omitted,
// never shown as placeholders.
func FormatSummary(rec *ExtractedRecord) string {
	var b strings.Builder

	title := rec.TestName
	if title == "" {
		title = rec.VisitType
	}
	if title == "" {
		title = categoryTitles[rec.DocumentCategory]
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	writeMetaLine(&b, "Category", categoryTitles[rec.DocumentCategory])
	writeMetaDate(&b, "Collection Date", rec.CollectionDate)
	writeMetaDate(&b, "Report Date", rec.ReportDate)
	writeMetaDate(&b, "Visit Date", rec.VisitDate)
	writeMetaLine(&b, "Provider", rec.Provider)
	writeMetaLine(&b, "Facility", rec.Facility)
	if p := rec.PatientInfo; p != nil {
		writeMetaLine(&b, "Patient", p.Name)
		writeMetaDate(&b, "Date of Birth", p.DateOfBirth)
		writeMetaLine(&b, "MRN", p.MRN)
	}
	writeMetaLine(&b, "Chief Complaint", rec.ChiefComplaint)
	b.WriteString("\n")

	if len(rec.AbnormalResults) > 0 {
		b.WriteString("## Abnormal Results\n\n")
		writeResultsTable(&b, rec.AbnormalResults)
	}
	if len(rec.Results) > 0 {
		b.WriteString("## All Results\n\n")
		writeResultsTable(&b, rec.Results)
	}

	writeList(&b, "Diagnoses", rec.Diagnoses)
	writeList(&b, "Symptoms", rec.Symptoms)
	writeList(&b, "Medications", rec.Medications)

	if vs := rec.VitalSigns; vs != nil {
		b.WriteString("## Vital Signs\n\n")
		writeMetaLine(&b, "Blood Pressure", vs.BloodPressure)
		writeMetaLine(&b, "Pulse", vs.Pulse)
		writeMetaLine(&b, "Temperature", vs.Temperature)
		writeMetaLine(&b, "Respiratory Rate", vs.RespiratoryRate)
		writeMetaLine(&b, "Weight", vs.Weight)
		writeMetaLine(&b, "Height", vs.Height)
		b.WriteString("\n")
	}

	writeSection(&b, "Comments", rec.Comments)
	writeSection(&b, "Conclusions", rec.Conclusions)
	writeSection(&b, "Follow-up", rec.FollowUp)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeMetaLine(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "**%s:** %s\n", label, value)
	}
}

func writeMetaDate(b *strings.Builder, label string, d *Date) {
	if d != nil {
		fmt.Fprintf(b, "**%s:** %s\n", label, d.String())
	}
}

func writeResultsTable(b *strings.Builder, results []TestResult) {
	b.WriteString("| Test | Value | Unit | Reference Range | Flag |\n")
	b.WriteString("|------|-------|------|-----------------|------|\n")
	for _, r := range results {
		flag := ""
		if r.IsAbnormal {
			flag = "abnormal"
		}
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s |\n",
			tableCell(r.Name), tableCell(r.Value), tableCell(r.Unit),
			tableCell(r.ReferenceRange), flag)
	}
	b.WriteString("\n")
}

// tableCell keeps multi-line narrative values (the imaging fallback) from
// breaking the Markdown table.
func tableCell(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(s, "|", "/"), "\n", " "))
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func writeSection(b *strings.Builder, title, body string) {
	if body == "" {
		return
	}
	fmt.Fprintf(b, "## %s\n\n%s\n\n", title, body)
}
