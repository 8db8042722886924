package documents

import (
	"context"

	"medextract-service/internal/app/config"
	"medextract-service/internal/pkg/constvars"
	"medextract-service/internal/pkg/dto/requests"
	"medextract-service/internal/pkg/dto/responses"
	"medextract-service/internal/pkg/exceptions"
	"medextract-service/internal/pkg/medtext"

	"go.uber.org/zap"
)

type documentUsecase struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

func NewDocumentUsecase(logger *zap.Logger, internalConfig *config.InternalConfig) DocumentUsecase {
	return &documentUsecase{
		Log:            logger,
		InternalConfig: internalConfig,
	}
}

func (uc *documentUsecase) ExtractDocument(ctx context.Context, request *requests.ExtractDocument) (*responses.ExtractedDocument, error) {
	record, err := uc.extract(ctx, request.Text, request.Filename)
	if err != nil {
		return nil, err
	}

	response := &responses.ExtractedDocument{ExtractedRecord: record}
	if request.IncludeSummary {
		response.Summary = medtext.FormatSummary(record)
	}
	return response, nil
}

func (uc *documentUsecase) ClassifyDocument(ctx context.Context, request *requests.ClassifyDocument) (*responses.ClassifiedDocument, error) {
	if err := uc.checkDocument(ctx, request.Text); err != nil {
		return nil, err
	}

	category := medtext.Classify(request.Text, request.Filename)
	uc.Log.Info("Document classified",
		zap.String(constvars.LoggingCategoryKey, string(category)),
		zap.String(constvars.LoggingFilenameKey, request.Filename),
	)
	return &responses.ClassifiedDocument{DocumentCategory: category}, nil
}

func (uc *documentUsecase) SummarizeDocument(ctx context.Context, request *requests.SummarizeDocument) (*responses.DocumentSummary, error) {
	record, err := uc.extract(ctx, request.Text, request.Filename)
	if err != nil {
		return nil, err
	}

	return &responses.DocumentSummary{
		DocumentCategory: record.DocumentCategory,
		Summary:          medtext.FormatSummary(record),
	}, nil
}

func (uc *documentUsecase) extract(ctx context.Context, text, filename string) (*medtext.ExtractedRecord, error) {
	if err := uc.checkDocument(ctx, text); err != nil {
		return nil, err
	}

	category := medtext.Classify(text, filename)
	fields := medtext.ExtractFields(text)
	results := medtext.ParseResults(text)
	record := medtext.Assemble(category, fields, results)

	uc.Log.Info("Document extracted",
		zap.String(constvars.LoggingCategoryKey, string(record.DocumentCategory)),
		zap.String(constvars.LoggingFilenameKey, filename),
		zap.Int(constvars.LoggingTextLengthKey, len(text)),
		zap.Int(constvars.LoggingResultsKey, len(record.Results)),
	)
	return record, nil
}

func (uc *documentUsecase) checkDocument(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(text) > uc.InternalConfig.Extraction.MaxDocumentSizeInKilobyte<<10 {
		return exceptions.ErrDocumentTooLarge(nil)
	}
	return nil
}
