package medtext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractAll(text, filename string) *ExtractedRecord {
	return Assemble(Classify(text, filename), ExtractFields(text), ParseResults(text))
}

func TestAssembleAbnormalSubset(t *testing.T) {
	results := []TestResult{
		{Name: "Glucose", Value: "110", ReferenceRange: "70-99", IsAbnormal: true},
		{Name: "Sodium", Value: "140", ReferenceRange: "135-145"},
		{Name: "Potassium", Value: "5.9", ReferenceRange: "3.5-5.2", IsAbnormal: true},
	}

	rec := Assemble(CategoryLabResult, Fields{}, results)

	require.Len(t, rec.AbnormalResults, 2)
	for _, r := range rec.AbnormalResults {
		assert.True(t, r.IsAbnormal)
	}
	assert.Subset(t, rec.Results, rec.AbnormalResults)
}

func TestAssembleResultsOnlyForLabDocuments(t *testing.T) {
	results := []TestResult{{Name: "Glucose", Value: "110"}}

	rec := Assemble(CategoryCondition, Fields{Diagnoses: []string{"anemia"}}, results)

	assert.Empty(t, rec.Results, "non-lab documents carry no results")
	assert.Empty(t, rec.AbnormalResults)
	assert.Equal(t, []string{"anemia"}, rec.Diagnoses)
}

func TestAssembleVisitListsOnlyForVisitDocuments(t *testing.T) {
	fields := Fields{Diagnoses: []string{"anemia"}, Medications: []string{"iron"}}

	rec := Assemble(CategoryLabResult, fields, nil)

	assert.Empty(t, rec.Diagnoses)
	assert.Empty(t, rec.Medications)
}

func TestAssembleSingleDateFill(t *testing.T) {
	d := &Date{Year: 2023, Month: time.May, Day: 2}

	t.Run("Lab document implies collection date", func(t *testing.T) {
		rec := Assemble(CategoryLabResult, Fields{ReportDate: d}, nil)
		require.NotNil(t, rec.CollectionDate)
		assert.Equal(t, *d, *rec.CollectionDate)
		assert.Equal(t, *d, *rec.ReportDate, "the found date is never regressed")
	})

	t.Run("Visit document implies visit date", func(t *testing.T) {
		rec := Assemble(CategoryAppointment, Fields{CollectionDate: d}, nil)
		require.NotNil(t, rec.VisitDate)
		assert.Equal(t, *d, *rec.VisitDate)
	})

	t.Run("No fill when two dates were found", func(t *testing.T) {
		other := &Date{Year: 2023, Month: time.May, Day: 4}
		rec := Assemble(CategoryLabResult, Fields{ReportDate: d, VisitDate: other}, nil)
		assert.Nil(t, rec.CollectionDate)
	})
}

func TestExtractionIsPureAndDeterministic(t *testing.T) {
	text := `Laboratory Report
Patient Name: Jane Example
Collection Date: 01/12/2023
Hemoglobin: 14.2 g/dL (12.0 - 16.0)
WBC: 7.5 x10^9/L (4.5-11.0)`

	first := extractAll(text, "lab.pdf")
	second := extractAll(text, "lab.pdf")
	assert.Equal(t, first, second, "identical input must produce identical records")
}

func TestExtractionEmptyInput(t *testing.T) {
	rec := extractAll("", "")

	assert.Equal(t, CategoryGeneral, rec.DocumentCategory)
	assert.Empty(t, rec.Results)
	assert.Empty(t, rec.AbnormalResults)
	assert.Empty(t, rec.TestName)
	assert.Empty(t, rec.Provider)
	assert.Nil(t, rec.PatientInfo)
	assert.Nil(t, rec.CollectionDate)
	assert.Nil(t, rec.VitalSigns)
}

func TestExtractionEndToEndLabReport(t *testing.T) {
	text := `Laboratory Report
Patient Name: Jane Example
DOB: 03/05/1985
Ordering Provider: Dr. Alice Wong
Facility: Meadowview Medical Lab
Collection Date: 01/12/2023
Date Reported: 01/15/2023

Hemoglobin: 14.2 g/dL (12.0 - 16.0)
Glucose: 112 mg/dL (70-99)

Comments:
Fasting sample.`

	rec := extractAll(text, "jane_lab_results.pdf")

	assert.Equal(t, CategoryLabResult, rec.DocumentCategory)
	assert.Equal(t, "Dr. Alice Wong", rec.Provider)
	assert.Equal(t, "Meadowview Medical Lab", rec.Facility)
	require.NotNil(t, rec.PatientInfo)
	assert.Equal(t, "Jane Example", rec.PatientInfo.Name)
	require.NotNil(t, rec.CollectionDate)
	assert.Equal(t, "2023-01-12", rec.CollectionDate.String())
	require.NotNil(t, rec.ReportDate)
	assert.Equal(t, "2023-01-15", rec.ReportDate.String())

	require.Len(t, rec.Results, 2)
	require.Len(t, rec.AbnormalResults, 1)
	assert.Equal(t, "Glucose", rec.AbnormalResults[0].Name)
	assert.Equal(t, "Fasting sample.", rec.Comments)
}
