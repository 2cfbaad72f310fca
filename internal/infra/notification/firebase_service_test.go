package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)

	return "projects/test/messages/1", nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirebaseNotifier_SendsToProviderTopic(t *testing.T) {
	sender := &fakeSender{}
	notifier := &firebaseNotifier{client: sender, logger: testLogger()}
	providerID := uuid.New()

	err := notifier.NotifyStatusChange(context.Background(), &service.ProviderStatusNotification{
		ProviderID: providerID,
		Status:     entity.ProviderStatusActive,
		Title:      "Account activated",
		Body:       "You can now accept bookings",
		Data:       map[string]string{"reason": ""},
	})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "provider_"+providerID.String(), msg.Topic)
	assert.Equal(t, "Account activated", msg.Notification.Title)
	assert.Equal(t, "active", msg.Data["status"])
	assert.Equal(t, providerID.String(), msg.Data["provider_id"])
}

func TestFirebaseNotifier_DocumentNotificationHasNoStatus(t *testing.T) {
	msg := buildMessage(&service.ProviderStatusNotification{
		ProviderID: uuid.New(),
		Title:      "Document verified",
		Data:       map[string]string{"document_id": "d1"},
	})

	_, hasStatus := msg.Data["status"]
	assert.False(t, hasStatus)
	assert.Equal(t, "d1", msg.Data["document_id"])
}

func TestFirebaseNotifier_SendFailure(t *testing.T) {
	notifier := &firebaseNotifier{client: &fakeSender{err: errors.New("unavailable")}, logger: testLogger()}

	err := notifier.NotifyStatusChange(context.Background(), &service.ProviderStatusNotification{ProviderID: uuid.New()})
	assert.ErrorContains(t, err, "unavailable")
}
