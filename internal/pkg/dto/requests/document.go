package requests

type ExtractDocument struct {
	Text           string `json:"text" validate:"required"`
	Filename       string `json:"filename"`
	IncludeSummary bool   `json:"include_summary"`
}

type ClassifyDocument struct {
	Text     string `json:"text" validate:"required"`
	Filename string `json:"filename"`
}

type SummarizeDocument struct {
	Text     string `json:"text" validate:"required"`
	Filename string `json:"filename"`
}
