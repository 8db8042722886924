package medtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResultsPipeTable(t *testing.T) {
	text := `Test | Result | Reference Range
-----|--------|----------------
Glucose | 110 mg/dL | 70-99
Sodium | 140 mEq/L | 135-145`

	rows := ParseResults(text)
	require.Len(t, rows, 2, "the header row must be skipped")

	assert.Equal(t, "Glucose", rows[0].Name)
	assert.Equal(t, "110 mg/dL", rows[0].Value)
	assert.Equal(t, "mg/dL", rows[0].Unit)
	assert.Equal(t, "70-99", rows[0].ReferenceRange)
	assert.True(t, rows[0].IsAbnormal)

	assert.Equal(t, "Sodium", rows[1].Name)
	assert.False(t, rows[1].IsAbnormal)
}

func TestParseResultsColonRows(t *testing.T) {
	text := "Hemoglobin: 14.2 g/dL (12.0 - 16.0)\nWBC: 7.5 x10^9/L (4.5-11.0)"

	rows := ParseResults(text)
	require.Len(t, rows, 2)

	assert.Equal(t, "Hemoglobin", rows[0].Name)
	assert.Equal(t, "14.2 g/dL", rows[0].Value)
	assert.Equal(t, "g/dL", rows[0].Unit)
	assert.Equal(t, "12.0 - 16.0", rows[0].ReferenceRange)
	assert.False(t, rows[0].IsAbnormal)

	assert.Equal(t, "WBC", rows[1].Name)
	assert.Equal(t, "x10^9/L", rows[1].Unit)
	assert.Equal(t, "4.5-11.0", rows[1].ReferenceRange)
	assert.False(t, rows[1].IsAbnormal)
}

func TestParseResultsStrategyPrecedence(t *testing.T) {
	text := `Glucose | 110 mg/dL | 70-99
Hemoglobin: 14.2 g/dL (12.0-16.0)`

	rows := ParseResults(text)
	require.Len(t, rows, 1, "the first strategy with a valid row wins; strategies never merge")
	assert.Equal(t, "Glucose", rows[0].Name)
}

func TestParseResultsColonRowFiltering(t *testing.T) {
	text := `Patient Name: John Doe
Ordering Provider: Dr. Smith
Hemoglobin: 14.2 g/dL (12.0-16.0)
Plan: rest and fluids`

	rows := ParseResults(text)
	require.Len(t, rows, 1, "metadata and narrative colon lines are not results")
	assert.Equal(t, "Hemoglobin", rows[0].Name)
}

func TestParseResultsFlaggedLines(t *testing.T) {
	text := "Hemoglobin  18.5  H  12.0-16.0\nFerritin  8  L  12-150\nNotes follow here."

	rows := ParseResults(text)
	require.Len(t, rows, 2)

	assert.Equal(t, "Hemoglobin", rows[0].Name)
	assert.Equal(t, "18.5", rows[0].Value)
	assert.Equal(t, "12.0-16.0", rows[0].ReferenceRange)
	assert.True(t, rows[0].IsAbnormal, "an explicit H flag is abnormal without range evaluation")

	assert.Equal(t, "Ferritin", rows[1].Name)
	assert.True(t, rows[1].IsAbnormal)
}

func TestParseResultsNarrativeFallback(t *testing.T) {
	t.Run("Imaging report", func(t *testing.T) {
		text := `RADIOLOGY REPORT
Examination: MRI Brain

FINDINGS:
No acute intracranial process. Mild chronic changes.

Signed electronically.`

		rows := ParseResults(text)
		require.Len(t, rows, 1)
		assert.Equal(t, "MRI Brain", rows[0].Name)
		assert.Contains(t, rows[0].Value, "No acute intracranial process")
		assert.False(t, rows[0].IsAbnormal)
	})

	t.Run("Concerning findings flagged", func(t *testing.T) {
		text := "CT SCAN\nIMPRESSION:\nFindings concerning for fracture."
		rows := ParseResults(text)
		require.Len(t, rows, 1)
		assert.True(t, rows[0].IsAbnormal)
	})

	t.Run("Synthetic name when no examination label", func(t *testing.T) {
		text := "ULTRASOUND\nFINDINGS:\nUnremarkable study."
		rows := ParseResults(text)
		require.Len(t, rows, 1)
		assert.Equal(t, "Imaging Results", rows[0].Name)
	})

	t.Run("No fallback without imaging keywords", func(t *testing.T) {
		rows := ParseResults("FINDINGS:\nSome prose that is not a report.")
		assert.Empty(t, rows)
	})
}

func TestParseResultsEmptyInput(t *testing.T) {
	assert.Empty(t, ParseResults(""))
	assert.Empty(t, ParseResults("just a paragraph of prose with nothing tabular"))
}

func TestIsValidResultName(t *testing.T) {
	assert.True(t, isValidResultName("Hemoglobin"))
	assert.True(t, isValidResultName("Vitamin B12"))
	assert.False(t, isValidResultName("X"), "single characters are table noise")
	assert.False(t, isValidResultName("Test"))
	assert.False(t, isValidResultName("Reference Range"))
	assert.False(t, isValidResultName("Test Name"))
}
