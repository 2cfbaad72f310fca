package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ModuleHandlerParams holds dependencies for ModuleHandler, injected by Fx.
// DocumentsAPI is always the in-process implementation: this handler is the
// server side of the HTTP documents module client.
type ModuleHandlerParams struct {
	fx.In

	DocumentsAPI service.DocumentsModuleAPI `name:"documentsModuleLocal"`
	Logger       *slog.Logger
}

// ModuleHandler exposes the documents module API to other modules
type ModuleHandler struct {
	documentsAPI service.DocumentsModuleAPI
	logger       *slog.Logger
}

// CheckResult is the payload of a documents module check
type CheckResult struct {
	Result bool `json:"result"`
}

// NewModuleHandler is the constructor for ModuleHandler
func NewModuleHandler(params ModuleHandlerParams) *ModuleHandler {
	return &ModuleHandler{
		documentsAPI: params.DocumentsAPI,
		logger:       params.Logger,
	}
}

// DocumentCheck handles GET /internal/documents/providers/:providerId/checks/:check
func (h *ModuleHandler) DocumentCheck(c echo.Context) error {
	providerID, err := uuid.Parse(c.Param("providerId"))
	if err != nil {
		return invalidID(c, "provider")
	}

	check := service.DocumentCheck(c.Param("check"))
	if !check.IsValid() {
		return response.Error(c, http.StatusNotFound, "UNKNOWN_CHECK", "Unknown document check", nil)
	}

	result, err := service.RunDocumentCheck(c.Request().Context(), h.documentsAPI, check, providerID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Document check failed",
			slog.String("check", string(check)),
			slog.String("provider_id", providerID.String()),
			slog.Any("error", err),
		)

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CheckResult{Result: result})
}
