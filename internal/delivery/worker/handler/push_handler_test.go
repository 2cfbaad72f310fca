package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/service"
	mockusecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func createTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockusecase.MockVerificationUsecase) {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}
	uc := mockusecase.NewMockVerificationUsecase(t)

	return NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.DiscardHandler),
		VerificationUC: uc,
	}), uc
}

func pushBody(t *testing.T, job *service.VerificationJob, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(job)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/p/subscriptions/s"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body string, header map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_ProcessesJob(t *testing.T) {
	h, uc := createTestPushHandler(t, nil)
	job := &service.VerificationJob{DocumentID: "doc-1", ProviderID: "prov-1", Attempt: 2}

	uc.EXPECT().
		ProcessVerificationJob(mock.Anything, job).
		RunAndReturn(func(ctx context.Context, _ *service.VerificationJob) error {
			assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))
			assert.NotNil(t, deliverycontext.GetLogger(ctx))

			return nil
		})

	rec := push(h, pushBody(t, job, map[string]string{"request_id": "req-42"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RequestIDFallsBackToJob(t *testing.T) {
	h, uc := createTestPushHandler(t, nil)
	job := &service.VerificationJob{RequestID: "from-job", DocumentID: "doc-1"}

	uc.EXPECT().
		ProcessVerificationJob(mock.Anything, job).
		RunAndReturn(func(ctx context.Context, _ *service.VerificationJob) error {
			assert.Equal(t, "from-job", deliverycontext.GetRequestIDFromContext(ctx))

			return nil
		})

	assert.Equal(t, http.StatusOK, push(h, pushBody(t, job, nil), nil).Code)
}

func TestPushHandler_ErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "retryable", err: errors.Wrap(usecase.ErrRetryableVerification, "update document"), want: http.StatusServiceUnavailable},
		{name: "permanent", err: errors.New("invalid document id"), want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := createTestPushHandler(t, nil)
			job := &service.VerificationJob{DocumentID: "doc-1"}
			uc.EXPECT().ProcessVerificationJob(mock.Anything, job).Return(tt.err)

			assert.Equal(t, tt.want, push(h, pushBody(t, job, nil), nil).Code)
		})
	}
}

func TestPushHandler_BadMessagesAreAcknowledged(t *testing.T) {
	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "truncated envelope", body: `{"message":`, want: "Failed to parse push message"},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`, want: "Failed to decode message data"},
		{name: "data not a job", body: `{"message":{"data":"` + notJSON + `"}}`, want: "Failed to parse verification job"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h, _ := createTestPushHandler(t, nil)
			h.logger = slog.New(slog.NewTextHandler(&buf, nil))

			// Redelivery cannot fix a malformed message, so it is acked
			assert.Equal(t, http.StatusOK, push(h, tt.body, nil).Code)
			assert.Contains(t, buf.String(), "level=ERROR")
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"
	h, uc := createTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	var audience string
	h.validateToken = func(_ context.Context, token, aud string) (*idtoken.Payload, error) {
		audience = aud
		if token != "good" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
	}

	job := &service.VerificationJob{DocumentID: "doc-1"}
	body := pushBody(t, job, nil)

	assert.Equal(t, http.StatusUnauthorized, push(h, body, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, push(h, body, map[string]string{"Authorization": "Bearer bad"}).Code)

	uc.EXPECT().ProcessVerificationJob(mock.Anything, job).Return(nil)
	assert.Equal(t, http.StatusOK, push(h, body, map[string]string{"Authorization": "Bearer good"}).Code)
	assert.Equal(t, "http://example.com/push", audience)
}

func TestNewPushHandler_SkipsAuthInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "develop"

	h, _ := createTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
