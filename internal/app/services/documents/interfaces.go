package documents

import (
	"context"

	"medextract-service/internal/pkg/dto/requests"
	"medextract-service/internal/pkg/dto/responses"
)

type DocumentUsecase interface {
	ExtractDocument(ctx context.Context, request *requests.ExtractDocument) (*responses.ExtractedDocument, error)
	ClassifyDocument(ctx context.Context, request *requests.ClassifyDocument) (*responses.ClassifiedDocument, error)
	SummarizeDocument(ctx context.Context, request *requests.SummarizeDocument) (*responses.DocumentSummary, error)
}
