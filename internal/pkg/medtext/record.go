// Package medtext is the medical document extraction engine. It turns raw
// clinical text (lab reports, visit notes, imaging dumps) into a structured
// record using ordered, heuristic extraction strategies. Every function in
// this package is pure and synchronous: no I/O, no shared state, identical
// output for identical input.
package medtext

import (
	"fmt"
	"time"
)

type DocumentCategory string

const (
	CategoryLabResult   DocumentCategory = "lab_result"
	CategoryImaging     DocumentCategory = "imaging"
	CategoryCondition   DocumentCategory = "condition"
	CategoryMedication  DocumentCategory = "medication"
	CategoryAppointment DocumentCategory = "appointment"
	CategoryGeneral     DocumentCategory = "general"
)

// Date is a canonical calendar date. A date that could not be parsed is
// represented by a nil *Date, never by a zero value.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// TestResult is one row of a lab report. Value keeps the original text;
// Unit and ReferenceRange stay empty when the source did not provide them.
type TestResult struct {
	Name           string `json:"name"`
	Value          string `json:"value"`
	Unit           string `json:"unit,omitempty"`
	ReferenceRange string `json:"reference_range,omitempty"`
	IsAbnormal     bool   `json:"is_abnormal"`
}

type PatientInfo struct {
	Name        string `json:"name,omitempty"`
	DateOfBirth *Date  `json:"date_of_birth,omitempty"`
	MRN         string `json:"mrn,omitempty"`
}

type VitalSigns struct {
	BloodPressure   string `json:"blood_pressure,omitempty"`
	Pulse           string `json:"pulse,omitempty"`
	Temperature     string `json:"temperature,omitempty"`
	RespiratoryRate string `json:"respiratory_rate,omitempty"`
	Weight          string `json:"weight,omitempty"`
	Height          string `json:"height,omitempty"`
}

// Fields is the partial record produced by ExtractFields. Each field is
// independently extracted; absence of one never blocks the others.
type Fields struct {
	TestName       string
	VisitType      string
	Provider       string
	Facility       string
	Patient        *PatientInfo
	CollectionDate *Date
	ReportDate     *Date
	VisitDate      *Date
	ChiefComplaint string
	VitalSigns     *VitalSigns
	Diagnoses      []string
	Symptoms       []string
	Medications    []string
	Comments       string
	Conclusions    string
	FollowUp       string
}

// ExtractedRecord is the engine's single canonical output. AbnormalResults
// is always the filtered subset of Results; it is derived by Assemble and
// never set independently.
type ExtractedRecord struct {
	DocumentCategory DocumentCategory `json:"document_category"`
	TestName         string           `json:"test_name,omitempty"`
	VisitType        string           `json:"visit_type,omitempty"`
	CollectionDate   *Date            `json:"collection_date,omitempty"`
	ReportDate       *Date            `json:"report_date,omitempty"`
	VisitDate        *Date            `json:"visit_date,omitempty"`
	Provider         string           `json:"provider,omitempty"`
	Facility         string           `json:"facility,omitempty"`
	PatientInfo      *PatientInfo     `json:"patient_info,omitempty"`
	Results          []TestResult     `json:"results"`
	AbnormalResults  []TestResult     `json:"abnormal_results"`
	Diagnoses        []string         `json:"diagnoses,omitempty"`
	Symptoms         []string         `json:"symptoms,omitempty"`
	Medications      []string         `json:"medications,omitempty"`
	VitalSigns       *VitalSigns      `json:"vital_signs,omitempty"`
	ChiefComplaint   string           `json:"chief_complaint,omitempty"`
	Comments         string           `json:"comments,omitempty"`
	Conclusions      string           `json:"conclusions,omitempty"`
	FollowUp         string           `json:"follow_up,omitempty"`
}
