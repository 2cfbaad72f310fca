// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/config"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/entity"
	"marketplace/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProviderHandler *handler.ProviderHandler
	DocumentHandler *handler.DocumentHandler
	ModuleHandler   *handler.ModuleHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Registry        *prometheus.Registry
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	providerHandler *handler.ProviderHandler
	documentHandler *handler.DocumentHandler
	moduleHandler   *handler.ModuleHandler
	authMiddleware  *middleware.AuthMiddleware
	registry        *prometheus.Registry
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		providerHandler: params.ProviderHandler,
		documentHandler: params.DocumentHandler,
		moduleHandler:   params.ModuleHandler,
		authMiddleware:  params.AuthMiddleware,
		registry:        params.Registry,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics.Enabled && r.registry != nil {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler(r.registry)))
	}

	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleSystemAdmin)

	// API v1 routes, all authenticated. Ownership is checked by the usecases.
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	providers := apiV1.Group("/providers")
	{
		providers.POST("", r.providerHandler.CreateProvider)
		providers.GET("/me", r.providerHandler.GetMyProvider)
		providers.GET("/:id", r.providerHandler.GetProvider)
		providers.DELETE("/:id", r.providerHandler.DeleteProvider)
		providers.POST("/:id/basic-info/complete", r.providerHandler.CompleteBasicInfo)

		providers.POST("/:id/activate", r.providerHandler.Activate, requireAdmin)
		providers.POST("/:id/reject", r.providerHandler.Reject, requireAdmin)
		providers.POST("/:id/suspend", r.providerHandler.Suspend, requireAdmin)
		providers.POST("/:id/require-correction", r.providerHandler.RequireCorrection, requireAdmin)

		providers.POST("/:id/documents", r.providerHandler.AddDocument)
		providers.DELETE("/:id/documents/:type", r.providerHandler.RemoveDocument)
		providers.PUT("/:id/documents/:type/primary", r.providerHandler.SetPrimaryDocument)
		providers.POST("/:id/services", r.providerHandler.AddService)
		providers.DELETE("/:id/services/:serviceId", r.providerHandler.RemoveService)

		providers.GET("/:id/verification-documents", r.documentHandler.ListProviderDocuments)
	}

	documents := apiV1.Group("/documents")
	{
		documents.POST("", r.documentHandler.UploadDocument)
		documents.GET("/:id", r.documentHandler.GetDocument)
		documents.POST("/:id/verification", r.documentHandler.RequestVerification)
		documents.POST("/:id/approve", r.documentHandler.ApproveDocument, requireAdmin)
		documents.POST("/:id/reject", r.documentHandler.RejectDocument, requireAdmin)
	}

	// Module-to-module calls carry a service token with the system-admin role
	internal := e.Group("/internal")
	internal.Use(r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleSystemAdmin))
	{
		internal.GET("/documents/providers/:providerId/checks/:check", r.moduleHandler.DocumentCheck)
	}
}
