package constvars

const (
	ExtractDocumentSuccessMessage   = "Successfully extracted document"
	ClassifyDocumentSuccessMessage  = "Successfully classified document"
	SummarizeDocumentSuccessMessage = "Successfully summarized document"
	HealthCheckSuccessMessage       = "Service is healthy"
)
