package responses

import "medextract-service/internal/pkg/medtext"

type ExtractedDocument struct {
	*medtext.ExtractedRecord
	Summary string `json:"summary,omitempty"`
}

type ClassifiedDocument struct {
	DocumentCategory medtext.DocumentCategory `json:"document_category"`
}

type DocumentSummary struct {
	DocumentCategory medtext.DocumentCategory `json:"document_category"`
	Summary          string                   `json:"summary"`
}

type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
