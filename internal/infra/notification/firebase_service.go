// Package notification delivers provider lifecycle notifications.
package notification

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const topicPrefix = "provider_"

// messageSender is the part of the FCM client used by firebaseNotifier.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// firebaseNotifier publishes to the per-provider FCM topic that the provider's
// devices subscribe to.
type firebaseNotifier struct {
	client messageSender
	logger *slog.Logger
}

// NewFirebaseNotifier creates a notifier backed by Firebase Cloud Messaging.
func NewFirebaseNotifier(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.ProviderNotifier, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseNotifier{client: client, logger: logger}, nil
}

// NotifyStatusChange sends the notification to the provider's topic.
func (n *firebaseNotifier) NotifyStatusChange(ctx context.Context, notification *service.ProviderStatusNotification) error {
	messageID, err := n.client.Send(ctx, buildMessage(notification))
	if err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	n.logger.Debug("Provider notification sent",
		slog.String("provider_id", notification.ProviderID.String()),
		slog.String("message_id", messageID),
	)

	return nil
}

func buildMessage(notification *service.ProviderStatusNotification) *messaging.Message {
	data := make(map[string]string, len(notification.Data)+2)
	for k, v := range notification.Data {
		data[k] = v
	}
	data["provider_id"] = notification.ProviderID.String()
	if notification.Status != "" {
		data["status"] = string(notification.Status)
	}

	return &messaging.Message{
		Topic: topicPrefix + notification.ProviderID.String(),
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: data,
	}
}

// logNotifier records notifications in the log when Firebase is not configured.
type logNotifier struct {
	logger *slog.Logger
}

func (n *logNotifier) NotifyStatusChange(ctx context.Context, notification *service.ProviderStatusNotification) error {
	n.logger.InfoContext(ctx, "Provider notification (not delivered)",
		slog.String("provider_id", notification.ProviderID.String()),
		slog.String("title", notification.Title),
		slog.String("status", string(notification.Status)),
	)

	return nil
}

// Params holds dependencies for ProviderNotifier, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewProviderNotifier picks Firebase when configured and the log notifier otherwise.
func NewProviderNotifier(params Params) (service.ProviderNotifier, error) {
	cfg := params.Config.Firebase
	if cfg == nil || (cfg.ProjectID == "" && cfg.CredentialsPath == "") {
		params.Logger.Info("Firebase not configured, provider notifications are only logged")

		return &logNotifier{logger: params.Logger}, nil
	}

	return NewFirebaseNotifier(params.Ctx, cfg, params.Logger)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewProviderNotifier),
)
