package documents

import (
	"context"
	"errors"
	"net/http"
	"time"

	"medextract-service/internal/app/config"
	"medextract-service/internal/pkg/constvars"
	"medextract-service/internal/pkg/dto/requests"
	"medextract-service/internal/pkg/exceptions"
	"medextract-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DocumentController struct {
	Log             *zap.Logger
	InternalConfig  *config.InternalConfig
	DocumentUsecase DocumentUsecase
}

func NewDocumentController(logger *zap.Logger, internalConfig *config.InternalConfig, documentUsecase DocumentUsecase) *DocumentController {
	return &DocumentController{
		Log:             logger,
		InternalConfig:  internalConfig,
		DocumentUsecase: documentUsecase,
	}
}

func (ctrl *DocumentController) ExtractDocument(w http.ResponseWriter, r *http.Request) {
	request := &requests.ExtractDocument{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeExtractDocumentRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.DocumentUsecase.ExtractDocument(ctx, request)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExtractDocumentSuccessMessage, result)
}

func (ctrl *DocumentController) ClassifyDocument(w http.ResponseWriter, r *http.Request) {
	request := &requests.ClassifyDocument{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeClassifyDocumentRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.DocumentUsecase.ClassifyDocument(ctx, request)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClassifyDocumentSuccessMessage, result)
}

func (ctrl *DocumentController) SummarizeDocument(w http.ResponseWriter, r *http.Request) {
	request := &requests.SummarizeDocument{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeSummarizeDocumentRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.DocumentUsecase.SummarizeDocument(ctx, request)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SummarizeDocumentSuccessMessage, result)
}

func (ctrl *DocumentController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(ctrl.InternalConfig.Extraction.RequestTimeoutInSeconds) * time.Second
	return context.WithTimeout(r.Context(), timeout)
}

func (ctrl *DocumentController) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
