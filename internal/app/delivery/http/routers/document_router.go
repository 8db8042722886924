package routers

import (
	"medextract-service/internal/app/services/documents"

	"github.com/go-chi/chi/v5"
)

func attachDocumentRoutes(router chi.Router, documentController *documents.DocumentController) {
	router.Post("/extract", documentController.ExtractDocument)
	router.Post("/classify", documentController.ClassifyDocument)
	router.Post("/summarize", documentController.SummarizeDocument)
}
