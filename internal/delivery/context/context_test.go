package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestScope(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := NewRequestScope(context.Background(), "req-42", base)

	assert.Equal(t, "req-42", GetRequestIDFromContext(ctx))
	GetLoggerOrDefault(ctx, nil).Info("hello")
	assert.Contains(t, buf.String(), "request_id=req-42")
}

func TestGetLoggerOrDefault_Fallback(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestIsValidRequestID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: uuid.NewString(), want: true},
		{id: "trace:abc_1.2", want: true},
		{id: "", want: false},
		{id: "has space", want: false},
		{id: "line\nbreak", want: false},
		{id: strings.Repeat("a", maxRequestIDLength+1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidRequestID(tt.id))
		})
	}
}

func TestGetRequestID_FromEchoContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))

	c.SetRequest(req.WithContext(WithRequestID(req.Context(), "req-7")))
	assert.Equal(t, "req-7", GetRequestID(c))
}

func TestWithPrincipal(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	principal := entity.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

	ctx := WithPrincipal(NewRequestScope(context.Background(), "req-1", base), principal, base)

	got, ok := GetPrincipal(ctx)
	require.True(t, ok)
	assert.Equal(t, principal, got)

	GetLoggerOrDefault(ctx, base).Info("acting")
	assert.Contains(t, buf.String(), "request_id=req-1")
	assert.Contains(t, buf.String(), "user_id="+principal.UserID.String())

	attrs := PrincipalAttrs(ctx)
	require.Len(t, attrs, 2)
	assert.Equal(t, "user_id", attrs[0].Key)
	assert.Equal(t, "roles", attrs[1].Key)
}

func TestGetPrincipal_Anonymous(t *testing.T) {
	_, ok := GetPrincipal(context.Background())

	assert.False(t, ok)
	assert.Nil(t, PrincipalAttrs(context.Background()))
}
