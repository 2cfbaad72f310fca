package pubsub

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopQueue drops verification jobs; documents stay pending until retried.
type noopQueue struct {
	logger *slog.Logger
}

func (q *noopQueue) EnqueueVerification(_ context.Context, job *service.VerificationJob) error {
	q.logger.Debug("[NoopPubSub] Verification queue disabled, skipping",
		slog.String("document_id", job.DocumentID),
	)

	return nil
}

func (q *noopQueue) Close() error {
	return nil
}

// QueueParams holds dependencies for VerificationJobQueue, injected by Fx
type QueueParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewVerificationJobQueue creates a VerificationJobQueue based on configuration
func NewVerificationJobQueue(params QueueParams) (service.VerificationJobQueue, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op verification queue")

		return &noopQueue{logger: logger}, nil
	}

	var queue service.VerificationJobQueue
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for verification jobs",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		queue = NewLocalHTTPQueue(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub for verification jobs",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		queue, err = NewGooglePubSubQueue(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing verification job queue")

			return queue.Close()
		},
	})

	return queue, nil
}

// jobAttributes builds the message attributes used for filtering and tracing.
func jobAttributes(job *service.VerificationJob) map[string]string {
	attributes := map[string]string{
		constants.AttributeDocumentID: job.DocumentID,
		constants.AttributeProviderID: job.ProviderID,
	}
	if job.RequestID != "" {
		attributes[constants.AttributeRequestID] = job.RequestID
	}

	return attributes
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewVerificationJobQueue),
)
