package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenValidator validates the OIDC token attached to a push request.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying verification jobs
type PushHandler struct {
	verifyPushAuth bool
	validateToken  TokenValidator
	logger         *slog.Logger
	verificationUC usecase.VerificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	VerificationUC usecase.VerificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Push requests are signed only when Google Pub/Sub delivers them
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		verificationUC: params.VerificationUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// It answers 503 for retryable failures so Pub/Sub redelivers, and 200 otherwise,
// malformed envelopes included.
func (h *PushHandler) HandlePush(c echo.Context) error {
	started := time.Now()
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		return h.dropMessage(c, "Failed to parse push message", err)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return h.dropMessage(c, "Failed to decode message data", err)
	}

	var job service.VerificationJob
	if err := json.Unmarshal(data, &job); err != nil {
		return h.dropMessage(c, "Failed to parse verification job", err)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &job)
	ctx = deliverycontext.NewRequestScope(ctx, requestID, h.logger)
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	reqLogger.Info("[Worker] Processing verification job",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("document_id", job.DocumentID),
		slog.String("provider_id", job.ProviderID),
		slog.Int("attempt", job.Attempt),
	)

	if err := h.verificationUC.ProcessVerificationJob(ctx, &job); err != nil {
		retryable := errors.Is(err, usecase.ErrRetryableVerification)
		reqLogger.Error("[Worker] Failed to process verification job",
			slog.String("document_id", job.DocumentID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
			slog.String("elapsed", util.FormatDuration(time.Since(started))),
		)
		// Non-retryable failures are acknowledged to prevent infinite redelivery
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Verification job processed",
		slog.String("document_id", job.DocumentID),
		slog.String("elapsed", util.FormatDuration(time.Since(started))),
	)

	return c.NoContent(http.StatusOK)
}

// dropMessage acknowledges a message that can never be processed. Redelivering it
// would fail the same way, so it is logged and answered with 200.
func (h *PushHandler) dropMessage(c echo.Context, reason string, err error) error {
	h.logger.Error("[Worker] "+reason+", dropping message", slog.Any("error", err))

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, the job, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, job *service.VerificationJob) string {
	if requestID, ok := pushMsg.Message.Attributes[constants.AttributeRequestID]; ok && requestID != "" {
		return requestID
	}

	if job.RequestID != "" {
		return job.RequestID
	}

	// Set by RequestIDMiddleware from the X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
