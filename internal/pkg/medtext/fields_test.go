package medtext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFieldsProvider(t *testing.T) {
	t.Run("Most specific label wins regardless of position", func(t *testing.T) {
		text := "Provider: Dr. Generic\nSome text\nOrdering Provider: Dr. Alice Wong"
		f := ExtractFields(text)
		assert.Equal(t, "Dr. Alice Wong", f.Provider,
			"the later Ordering Provider label outranks the earlier generic one")
	})

	t.Run("Falls through the cascade", func(t *testing.T) {
		f := ExtractFields("Doctor: Dr. Patel")
		assert.Equal(t, "Dr. Patel", f.Provider)
	})

	t.Run("Absent when no label matches", func(t *testing.T) {
		f := ExtractFields("no provider mentioned here")
		assert.Empty(t, f.Provider)
	})
}

func TestExtractFieldsPatient(t *testing.T) {
	text := "Patient Name: Jane Example\nDOB: 03/05/1985\nMRN: A-10392\n"
	f := ExtractFields(text)

	require.NotNil(t, f.Patient)
	assert.Equal(t, "Jane Example", f.Patient.Name)
	assert.Equal(t, "A-10392", f.Patient.MRN)
	require.NotNil(t, f.Patient.DateOfBirth)
	assert.Equal(t, Date{Year: 1985, Month: time.March, Day: 5}, *f.Patient.DateOfBirth)
}

func TestExtractFieldsDates(t *testing.T) {
	t.Run("Collection and report dates", func(t *testing.T) {
		text := "Collection Date: 01/12/2023\nDate Reported: January 15, 2023"
		f := ExtractFields(text)
		require.NotNil(t, f.CollectionDate)
		assert.Equal(t, "2023-01-12", f.CollectionDate.String())
		require.NotNil(t, f.ReportDate)
		assert.Equal(t, "2023-01-15", f.ReportDate.String())
	})

	t.Run("Generic date label only as last resort", func(t *testing.T) {
		text := "Date: 06/01/2022\nVisit Date: 06/03/2022"
		f := ExtractFields(text)
		require.NotNil(t, f.VisitDate)
		assert.Equal(t, "2022-06-03", f.VisitDate.String())
	})

	t.Run("Unparseable date stays absent", func(t *testing.T) {
		f := ExtractFields("Collection Date: pending")
		assert.Nil(t, f.CollectionDate)
	})
}

func TestExtractTestName(t *testing.T) {
	t.Run("Explicit label", func(t *testing.T) {
		f := ExtractFields("Test Name: Ferritin, Serum")
		assert.Equal(t, "Ferritin, Serum", f.TestName)
	})

	t.Run("Panel whitelist fallback", func(t *testing.T) {
		f := ExtractFields("Results below are from your recent CBC performed at the clinic.")
		assert.Equal(t, "CBC", f.TestName)
	})

	t.Run("Spelled-out panel beats its acronym", func(t *testing.T) {
		f := ExtractFields("Complete Blood Count (CBC) with differential")
		assert.Equal(t, "Complete Blood Count", f.TestName)
	})

	t.Run("No label and no known panel", func(t *testing.T) {
		f := ExtractFields("a letter about nothing in particular")
		assert.Empty(t, f.TestName)
	})
}

func TestExtractVitalSigns(t *testing.T) {
	t.Run("Only inside a vital signs section", func(t *testing.T) {
		text := "The patient reported a pulse: 110 during exercise last week.\n"
		f := ExtractFields(text)
		assert.Nil(t, f.VitalSigns, "numbers in narrative must not become vitals")
	})

	t.Run("Full section", func(t *testing.T) {
		text := "Vital Signs:\nBP: 128/82, Pulse: 71, Temp: 98.6 F\nWeight: 182 lbs, Height: 170 cm\n\nPlan: rest"
		f := ExtractFields(text)
		require.NotNil(t, f.VitalSigns)
		assert.Equal(t, "128/82", f.VitalSigns.BloodPressure)
		assert.Equal(t, "71", f.VitalSigns.Pulse)
		assert.Equal(t, "98.6 F", f.VitalSigns.Temperature)
		assert.Equal(t, "182 lbs", f.VitalSigns.Weight)
		assert.Equal(t, "170 cm", f.VitalSigns.Height)
	})
}

func TestExtractListSection(t *testing.T) {
	t.Run("Inline comma list", func(t *testing.T) {
		f := ExtractFields("Diagnosis: Migraine, tension headache")
		assert.Equal(t, []string{"Migraine", "tension headache"}, f.Diagnoses)
	})

	t.Run("Bulleted block", func(t *testing.T) {
		text := "Medications:\n- Lisinopril 10mg daily\n- Metformin 500mg BID\n\nPlan: continue"
		f := ExtractFields(text)
		assert.Equal(t, []string{"Lisinopril 10mg daily", "Metformin 500mg BID"}, f.Medications)
	})

	t.Run("Absent section", func(t *testing.T) {
		f := ExtractFields("nothing to see")
		assert.Nil(t, f.Symptoms)
	})
}

func TestCaptureSection(t *testing.T) {
	t.Run("Stops at blank line", func(t *testing.T) {
		text := "Comments:\nSpecimen slightly hemolyzed.\nRepeat if clinically indicated.\n\nUnrelated trailer"
		f := ExtractFields(text)
		assert.Equal(t, "Specimen slightly hemolyzed.\nRepeat if clinically indicated.", f.Comments)
	})

	t.Run("Stops at the next labeled section", func(t *testing.T) {
		text := "Plan: increase dose\nFollow-up: return in 2 weeks"
		f := ExtractFields(text)
		assert.Equal(t, "increase dose", f.Conclusions)
		assert.Equal(t, "return in 2 weeks", f.FollowUp)
	})
}
