package utils

import (
	"strings"

	"medextract-service/internal/pkg/dto/requests"
)

// normalizeDocumentText unifies line endings so downstream line-oriented
// parsing never sees carriage returns.
func normalizeDocumentText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

func SanitizeExtractDocumentRequest(input *requests.ExtractDocument) {
	input.Text = normalizeDocumentText(strings.TrimSpace(input.Text))
	input.Filename = strings.TrimSpace(input.Filename)
}

func SanitizeClassifyDocumentRequest(input *requests.ClassifyDocument) {
	input.Text = normalizeDocumentText(strings.TrimSpace(input.Text))
	input.Filename = strings.TrimSpace(input.Filename)
}

func SanitizeSummarizeDocumentRequest(input *requests.SummarizeDocument) {
	input.Text = normalizeDocumentText(strings.TrimSpace(input.Text))
	input.Filename = strings.TrimSpace(input.Filename)
}
