package handler

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProviderHandlerParams holds dependencies for ProviderHandler, injected by Fx.
type ProviderHandlerParams struct {
	fx.In

	ProviderUC usecase.ProviderUsecase
	Logger     *slog.Logger
}

// ProviderHandler serves the provider lifecycle endpoints
type ProviderHandler struct {
	providerUC usecase.ProviderUsecase
	logger     *slog.Logger
}

// NewProviderHandler is the constructor for ProviderHandler
func NewProviderHandler(params ProviderHandlerParams) *ProviderHandler {
	return &ProviderHandler{
		providerUC: params.ProviderUC,
		logger:     params.Logger,
	}
}

// CreateProviderRequest represents the request body for opening a provider account
type CreateProviderRequest struct {
	Name string `json:"name" validate:"required,max=200"`
	Type string `json:"type" validate:"required,oneof=individual company"`
}

// ReasonRequest carries the reason of a reject, suspend or correction request.
// Blank reasons are refused by the domain, not here.
type ReasonRequest struct {
	Reason string `json:"reason"`
}

// AddDocumentRequest represents a document reference to attach
type AddDocumentRequest struct {
	Type      string `json:"type" validate:"required"`
	Number    string `json:"number" validate:"required"`
	IsPrimary bool   `json:"is_primary"`
	Replace   bool   `json:"replace"`
}

// AddServiceRequest represents a service to offer
type AddServiceRequest struct {
	ServiceID   string `json:"service_id" validate:"required,uuid"`
	ServiceName string `json:"service_name" validate:"required,max=200"`
}

// CreateProvider handles POST /providers
func (h *ProviderHandler) CreateProvider(c echo.Context) error {
	var req CreateProviderRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	provider, err := h.providerUC.CreateProvider(c.Request().Context(), principal(c), &usecase.CreateProviderInput{
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, provider)
}

// GetMyProvider handles GET /providers/me
func (h *ProviderHandler) GetMyProvider(c echo.Context) error {
	provider, err := h.providerUC.GetProviderByUser(c.Request().Context(), principal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, provider)
}

// GetProvider handles GET /providers/:id
func (h *ProviderHandler) GetProvider(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "provider")
	}

	provider, err := h.providerUC.GetProvider(c.Request().Context(), principal(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, provider)
}

// CompleteBasicInfo handles POST /providers/:id/basic-info/complete
func (h *ProviderHandler) CompleteBasicInfo(c echo.Context) error {
	return h.transition(c, h.providerUC.CompleteBasicInfo)
}

// Activate handles POST /providers/:id/activate
func (h *ProviderHandler) Activate(c echo.Context) error {
	return h.transition(c, h.providerUC.Activate)
}

// Reject handles POST /providers/:id/reject
func (h *ProviderHandler) Reject(c echo.Context) error {
	return h.transitionWithReason(c, h.providerUC.Reject)
}

// Suspend handles POST /providers/:id/suspend
func (h *ProviderHandler) Suspend(c echo.Context) error {
	return h.transitionWithReason(c, h.providerUC.Suspend)
}

// RequireCorrection handles POST /providers/:id/require-correction
func (h *ProviderHandler) RequireCorrection(c echo.Context) error {
	return h.transitionWithReason(c, h.providerUC.RequireBasicInfoCorrection)
}

// DeleteProvider handles DELETE /providers/:id
func (h *ProviderHandler) DeleteProvider(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "provider")
	}

	if err := h.providerUC.Delete(c.Request().Context(), principal(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddDocument handles POST /providers/:id/documents
func (h *ProviderHandler) AddDocument(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "provider")
	}

	var req AddDocumentRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	provider, err := h.providerUC.AddDocument(c.Request().Context(), principal(c), &usecase.AddProviderDocumentInput{
		ProviderID: id,
		Type:       req.Type,
		Number:     req.Number,
		IsPrimary:  req.IsPrimary,
		Replace:    req.Replace,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, provider)
}

// RemoveDocument handles DELETE /providers/:id/documents/:type
func (h *ProviderHandler) RemoveDocument(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "provider")
	}

	provider, err := h.providerUC.RemoveDocument(c.Request().Context(), principal(c), id, c.Param("type"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, provider)
}

// SetPrimaryDocument handles PUT /providers/:id/documents/:type/primary
func (h *ProviderHandler) SetPrimaryDocument(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "provider")
	}

	provider, err := h.providerUC.SetPrimaryDocument(c.Request().Context(), principal(c), id, c.Param("type"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, provider)
}

// AddService handles POST /providers/:id/services
func (h *ProviderHandler) AddService(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "provider")
	}

	var req AddServiceRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	// validated as a uuid above
	serviceID := uuid.MustParse(req.ServiceID)

	provider, err := h.providerUC.AddService(c.Request().Context(), principal(c), &usecase.AddProviderServiceInput{
		ProviderID:  id,
		ServiceID:   serviceID,
		ServiceName: req.ServiceName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, provider)
}

// RemoveService handles DELETE /providers/:id/services/:serviceId
func (h *ProviderHandler) RemoveService(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "provider")
	}

	serviceID, err := uuid.Parse(c.Param("serviceId"))
	if err != nil {
		return invalidID(c, "service")
	}

	provider, err := h.providerUC.RemoveService(c.Request().Context(), principal(c), id, serviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, provider)
}

type transitionFunc func(ctx context.Context, principal entity.Principal, providerID uuid.UUID) (*entity.Provider, error)

type reasonTransitionFunc func(ctx context.Context, principal entity.Principal, providerID uuid.UUID, reason string) (*entity.Provider, error)

func (h *ProviderHandler) transition(c echo.Context, fn transitionFunc) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "provider")
	}

	provider, err := fn(c.Request().Context(), principal(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, provider)
}

func (h *ProviderHandler) transitionWithReason(c echo.Context, fn reasonTransitionFunc) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "provider")
	}

	var req ReasonRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	provider, err := fn(c.Request().Context(), principal(c), id, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, provider)
}
