package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	formFieldFile         = "file"
	formFieldProviderID   = "provider_id"
	formFieldDocumentType = "document_type"
)

// DocumentHandlerParams holds dependencies for DocumentHandler, injected by Fx.
type DocumentHandlerParams struct {
	fx.In

	DocumentUC usecase.DocumentUsecase
	Logger     *slog.Logger
}

// DocumentHandler serves the verification document endpoints
type DocumentHandler struct {
	documentUC usecase.DocumentUsecase
	logger     *slog.Logger
}

// NewDocumentHandler is the constructor for DocumentHandler
func NewDocumentHandler(params DocumentHandlerParams) *DocumentHandler {
	return &DocumentHandler{
		documentUC: params.DocumentUC,
		logger:     params.Logger,
	}
}

// UploadDocument handles the multipart POST /documents
func (h *DocumentHandler) UploadDocument(c echo.Context) error {
	providerID, err := uuid.Parse(c.FormValue(formFieldProviderID))
	if err != nil {
		return invalidID(c, "provider")
	}

	docType := c.FormValue(formFieldDocumentType)
	if docType == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "document_type is required")
	}

	fileHeader, err := c.FormFile(formFieldFile)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("Failed to open uploaded file", slog.Any("error", err))

		return invalidBody(c)
	}
	defer file.Close()

	document, err := h.documentUC.UploadDocument(c.Request().Context(), principal(c), &usecase.UploadDocumentInput{
		ProviderID:   providerID,
		DocumentType: docType,
		FileName:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get(echo.HeaderContentType),
		Size:         fileHeader.Size,
		Content:      file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, document)
}

// GetDocument handles GET /documents/:id
func (h *DocumentHandler) GetDocument(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "document")
	}

	document, err := h.documentUC.GetDocument(c.Request().Context(), principal(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, document)
}

// ListProviderDocuments handles GET /providers/:id/verification-documents
func (h *DocumentHandler) ListProviderDocuments(c echo.Context) error {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "provider")
	}

	documents, err := h.documentUC.ListProviderDocuments(c.Request().Context(), principal(c), providerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, documents)
}

// RequestVerification handles POST /documents/:id/verification
func (h *DocumentHandler) RequestVerification(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "document")
	}

	document, err := h.documentUC.RequestVerification(c.Request().Context(), principal(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, document)
}

// ApproveDocument handles POST /documents/:id/approve
func (h *DocumentHandler) ApproveDocument(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "document")
	}

	document, err := h.documentUC.ApproveDocument(c.Request().Context(), principal(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, document)
}

// RejectDocument handles POST /documents/:id/reject
func (h *DocumentHandler) RejectDocument(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "document")
	}

	var req ReasonRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	document, err := h.documentUC.RejectDocument(c.Request().Context(), principal(c), id, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, document)
}
