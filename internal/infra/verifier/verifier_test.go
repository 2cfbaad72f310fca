package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/httpclient"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDocument(contentType string, size int64) *entity.Document {
	return &entity.Document{
		ID:           uuid.New(),
		ProviderID:   uuid.New(),
		DocumentType: entity.DocumentTypeIdentity,
		ContentType:  contentType,
		FileSize:     size,
		Status:       entity.DocumentStatusPendingVerification,
	}
}

func TestContentVerifier(t *testing.T) {
	verifier := NewContentVerifier(64, config.DefaultAllowedContentTypes())
	pdf := []byte("%PDF-1.7\n1 0 obj\n")

	tests := []struct {
		name         string
		document     *entity.Document
		content      []byte
		wantDecision service.VerificationDecision
		wantReason   string
	}{
		{name: "png verified", document: newTestDocument("image/png", int64(len(pngHeader))), content: pngHeader, wantDecision: service.VerificationDecisionVerified},
		{name: "pdf verified", document: newTestDocument("application/pdf", int64(len(pdf))), content: pdf, wantDecision: service.VerificationDecisionVerified},
		{name: "empty file", document: newTestDocument("image/png", 0), content: nil, wantDecision: service.VerificationDecisionRejected, wantReason: reasonEmptyFile},
		{name: "too large", document: newTestDocument("application/pdf", 0), content: bytes.Repeat([]byte("%PDF-"), 20), wantDecision: service.VerificationDecisionRejected, wantReason: reasonTooLarge},
		{name: "size mismatch", document: newTestDocument("image/png", 999), content: pngHeader, wantDecision: service.VerificationDecisionRejected, wantReason: reasonSizeMismatch},
		{name: "declared pdf but png", document: newTestDocument("application/pdf", int64(len(pngHeader))), content: pngHeader, wantDecision: service.VerificationDecisionRejected, wantReason: reasonContentMismatch},
		{name: "text not allowed", document: newTestDocument("image/png", 5), content: []byte("hello"), wantDecision: service.VerificationDecisionRejected, wantReason: reasonNotAllowed},
		{name: "gif not allowed", document: newTestDocument("image/png", 10), content: []byte("GIF89a\x01\x00\x01\x00"), wantDecision: service.VerificationDecisionRejected, wantReason: reasonNotAllowed},
		{name: "declared png but jpeg", document: newTestDocument("image/png", 11), content: []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00"), wantDecision: service.VerificationDecisionRejected, wantReason: reasonContentMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := verifier.Verify(context.Background(), tt.document, bytes.NewReader(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.wantDecision, outcome.Decision)
			assert.Equal(t, tt.wantReason, outcome.Reason)
		})
	}
}

func TestContentVerifier_RecordsChecksum(t *testing.T) {
	verifier := NewContentVerifier(1<<20, []string{"image/jpg"})
	jpeg := []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")

	outcome, err := verifier.Verify(context.Background(), newTestDocument("image/jpg", int64(len(jpeg))), bytes.NewReader(jpeg))
	require.NoError(t, err)
	require.Equal(t, service.VerificationDecisionVerified, outcome.Decision)

	var data ContentData
	require.NoError(t, json.Unmarshal(outcome.Data, &data))
	assert.Equal(t, "image/jpeg", data.DetectedContentType)
	assert.Equal(t, int64(len(jpeg)), data.Size)
	assert.Len(t, data.SHA256, 64)
}

func newOCRVerifier(t *testing.T, handler http.HandlerFunc) *OCRVerifier {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := httpclient.NewCircuitBreakerClient("ocr-test", time.Second, config.CircuitBreakerConfig{}, nil, testLogger())

	return NewOCRVerifier(client, server.URL, "ocr-key")
}

func TestOCRVerifier(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantDecision service.VerificationDecision
		wantReason   string
		wantErr      bool
	}{
		{name: "approved", status: http.StatusOK, body: `{"status":"approved","data":{"name":"MARIA"}}`, wantDecision: service.VerificationDecisionVerified},
		{name: "rejected", status: http.StatusOK, body: `{"status":"rejected","reason":"photo unreadable"}`, wantDecision: service.VerificationDecisionRejected, wantReason: "photo unreadable"},
		{name: "unknown status", status: http.StatusOK, body: `{"status":"maybe"}`, wantErr: true},
		{name: "server error", status: http.StatusServiceUnavailable, body: `down`, wantErr: true},
		{name: "client error", status: http.StatusBadRequest, body: `bad`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := newOCRVerifier(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer ocr-key", r.Header.Get("Authorization"))
				assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
				assert.Equal(t, "identity_document", r.Header.Get("X-Document-Type"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			outcome, err := verifier.Verify(context.Background(), newTestDocument("image/png", 4), strings.NewReader("\x89PNG"))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, outcome)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDecision, outcome.Decision)
			assert.Equal(t, tt.wantReason, outcome.Reason)
		})
	}
}

func TestNewDocumentVerifier(t *testing.T) {
	cfg := &config.Config{}
	cfg.Upload.MaxFileSize = 1 << 20

	v, err := NewDocumentVerifier(Params{Config: cfg, Logger: testLogger()})
	require.NoError(t, err)
	assert.IsType(t, &ContentVerifier{}, v)

	cfg.Verification.Verifier = "ocr"
	_, err = NewDocumentVerifier(Params{Config: cfg, Logger: testLogger()})
	assert.Error(t, err)

	cfg.Verification.OCR.Endpoint = "http://ocr.local/verify"
	v, err = NewDocumentVerifier(Params{Config: cfg, Logger: testLogger()})
	require.NoError(t, err)
	assert.IsType(t, &OCRVerifier{}, v)

	cfg.Verification.Verifier = "magic"
	_, err = NewDocumentVerifier(Params{Config: cfg, Logger: testLogger()})
	assert.Error(t, err)
}
