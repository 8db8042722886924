package medtext

// Assemble composes classification, extracted fields, and parsed results
// into the engine's single output record. Pure composition: no new
// extraction happens here.
//
// Results are kept only for lab and imaging documents; visit-note list
// sections (diagnoses, symptoms, medications) are kept only for the
// document types that carry them. AbnormalResults is always recomputed as
// the filter of Results, never taken from the caller.
func Assemble(category DocumentCategory, fields Fields, results []TestResult) *ExtractedRecord {
	rec := &ExtractedRecord{
		DocumentCategory: category,
		TestName:         fields.TestName,
		VisitType:        fields.VisitType,
		CollectionDate:   fields.CollectionDate,
		ReportDate:       fields.ReportDate,
		VisitDate:        fields.VisitDate,
		Provider:         fields.Provider,
		Facility:         fields.Facility,
		PatientInfo:      fields.Patient,
		Results:          []TestResult{},
		AbnormalResults:  []TestResult{},
		VitalSigns:       fields.VitalSigns,
		ChiefComplaint:   fields.ChiefComplaint,
		Comments:         fields.Comments,
		Conclusions:      fields.Conclusions,
		FollowUp:         fields.FollowUp,
	}

	switch category {
	case CategoryLabResult, CategoryImaging:
		rec.Results = append(rec.Results, results...)
	case CategoryCondition, CategoryAppointment:
		rec.Diagnoses = fields.Diagnoses
		rec.Symptoms = fields.Symptoms
		rec.Medications = fields.Medications
	case CategoryMedication:
		rec.Medications = fields.Medications
	}

	for _, r := range rec.Results {
		if r.IsAbnormal {
			rec.AbnormalResults = append(rec.AbnormalResults, r)
		}
	}

	fillImpliedDate(rec)
	return rec
}

// fillImpliedDate applies the single-date rule: when exactly one date was
// found anywhere in the text, it also fills the field the document type
// implies. A found date is never overwritten or regressed to absent.
func fillImpliedDate(rec *ExtractedRecord) {
	var only *Date
	count := 0
	for _, d := range []*Date{rec.CollectionDate, rec.ReportDate, rec.VisitDate} {
		if d != nil {
			only = d
			count++
		}
	}
	if count != 1 {
		return
	}

	switch rec.DocumentCategory {
	case CategoryLabResult, CategoryImaging:
		if rec.CollectionDate == nil {
			rec.CollectionDate = only
		}
	case CategoryCondition, CategoryAppointment:
		if rec.VisitDate == nil {
			rec.VisitDate = only
		}
	}
}
