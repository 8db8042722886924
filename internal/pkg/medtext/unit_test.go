package medtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractUnit(t *testing.T) {
	t.Run("Common chemistry units", func(t *testing.T) {
		cases := map[string]string{
			"14.2 g/dL":    "g/dL",
			"98 mg/dL":     "mg/dL",
			"4.1 mmol/L":   "mmol/L",
			"2.3 mIU/L":    "mIU/L",
			"120 mmHg":     "mmHg",
			"45 U/L":       "U/L",
			"13 ng/mL":     "ng/mL",
			"5.4 mEq/L":    "mEq/L",
			"22 mm/hr":     "mm/hr",
			"26.4 kg/m2":   "kg/m2",
			"310 cells/μL": "cells/µL",
		}
		for value, want := range cases {
			unit, ok := ExtractUnit(value)
			assert.True(t, ok, value)
			assert.Equal(t, want, unit, value)
		}
	})

	t.Run("Case-insensitive with canonical spelling", func(t *testing.T) {
		unit, ok := ExtractUnit("98 MG/DL")
		assert.True(t, ok)
		assert.Equal(t, "mg/dL", unit)
	})

	t.Run("Percent anchored to a number", func(t *testing.T) {
		unit, ok := ExtractUnit("42.1 %")
		assert.True(t, ok)
		assert.Equal(t, "%", unit)

		_, ok = ExtractUnit("a large % of patients")
		assert.False(t, ok, "bare percent in prose is not a unit")
	})

	t.Run("Exponent-style hematology units", func(t *testing.T) {
		unit, ok := ExtractUnit("7.5 x10^9/L")
		assert.True(t, ok)
		assert.Equal(t, "x10^9/L", unit)
	})

	t.Run("mmHg not truncated to mm", func(t *testing.T) {
		unit, ok := ExtractUnit("118 mmHg")
		assert.True(t, ok)
		assert.Equal(t, "mmHg", unit)
	})

	t.Run("Unrecognized units stay absent", func(t *testing.T) {
		_, ok := ExtractUnit("3.2 furlongs")
		assert.False(t, ok)
		_, ok = ExtractUnit("Positive")
		assert.False(t, ok)
	})
}
