package documents

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketplace/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.DocumentsModuleConfig{
		BaseURL:      server.URL,
		ServiceToken: "svc-token",
		Timeout:      time.Second,
	}, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

func TestClient_Checks(t *testing.T) {
	providerID := uuid.New()
	answers := map[string]string{
		"required": `{"data":{"result":true}}`,
		"verified": `{"data":{"result":true}}`,
		"pending":  `{"data":{"result":false}}`,
		"rejected": `{"data":{"result":false}}`,
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer svc-token", r.Header.Get("Authorization"))

		check := strings.TrimPrefix(r.URL.Path, "/internal/documents/providers/"+providerID.String()+"/checks/")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(answers[check]))
	})

	ctx := context.Background()

	required, err := client.HasRequiredDocuments(ctx, providerID)
	require.NoError(t, err)
	assert.True(t, required)

	verified, err := client.HasVerifiedDocuments(ctx, providerID)
	require.NoError(t, err)
	assert.True(t, verified)

	pending, err := client.HasPendingDocuments(ctx, providerID)
	require.NoError(t, err)
	assert.False(t, pending)

	rejected, err := client.HasRejectedDocuments(ctx, providerID)
	require.NoError(t, err)
	assert.False(t, rejected)
}

func TestClient_ErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "structured error", status: http.StatusForbidden, body: `{"error":{"code":"FORBIDDEN","message":"access denied"}}`, wantErr: "403 FORBIDDEN: access denied"},
		{name: "plain error", status: http.StatusNotFound, body: `not found`, wantErr: "documents module returned 404"},
		{name: "server error", status: http.StatusBadGateway, body: `upstream`, wantErr: "server error 502"},
		{name: "bad body", status: http.StatusOK, body: `{`, wantErr: "failed to decode"},
		{name: "null data", status: http.StatusOK, body: `{"data":null}`, wantErr: "has no result"},
		{name: "missing result", status: http.StatusOK, body: `{"data":{}}`, wantErr: "has no result"},
		{name: "null result", status: http.StatusOK, body: `{"data":{"result":null}}`, wantErr: "has no result"},
		{name: "empty object", status: http.StatusOK, body: `{}`, wantErr: "has no result"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			result, err := client.HasPendingDocuments(context.Background(), uuid.New())
			assert.False(t, result)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(config.DocumentsModuleConfig{}, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
