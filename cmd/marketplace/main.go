package main

import (
	"context"
	"log/slog"
	"os"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/delivery/api"
	apimiddleware "marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/auth"
	"marketplace/internal/infra/httpclient"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/metrics"
	"marketplace/internal/infra/modules/documents"
	"marketplace/internal/infra/notification"
	"marketplace/internal/infra/persistence/postgres"
	"marketplace/internal/infra/pubsub"
	"marketplace/internal/infra/storage"
	"marketplace/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.NewRegistry,
		newMetrics,
		func(m *metrics.Metrics) service.OnboardingMetrics { return m },
		func(m *metrics.Metrics) httpclient.BreakerObserver { return m },
	)
}

func newMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.New(reg)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProviderRepository,
			postgres.NewDocumentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		storage.Module,
		pubsub.Module,
		notification.Module,
		fx.Provide(
			auth.NewJWTService,
			impl.NewProvidersModuleAPI,
			fx.Annotate(
				impl.NewDocumentsModuleAPI,
				fx.ResultTags(`name:"documentsModuleLocal"`),
			),
			newDocumentsModuleAPI,
		),
	)
}

type documentsModuleParams struct {
	fx.In

	Config   *config.Config
	Local    service.DocumentsModuleAPI `name:"documentsModuleLocal"`
	Observer httpclient.BreakerObserver
	Logger   *slog.Logger
}

// newDocumentsModuleAPI selects how the providers module reaches the documents module
func newDocumentsModuleAPI(params documentsModuleParams) (service.DocumentsModuleAPI, error) {
	if params.Config.DocumentsModule.Mode != constants.DocumentsModuleHTTP {
		return params.Local, nil
	}

	params.Logger.Info("Using HTTP documents module client",
		slog.String("base_url", params.Config.DocumentsModule.BaseURL),
	)

	client, err := documents.NewClient(params.Config.DocumentsModule, params.Observer, params.Logger)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProviderService,
			impl.NewDocumentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProviderHandler,
			handler.NewDocumentHandler,
			handler.NewModuleHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
