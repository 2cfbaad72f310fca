package verifier

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/httpclient"

	"github.com/pkg/errors"
)

// OCRResponse is the verdict returned by the OCR service.
type OCRResponse struct {
	Status string          `json:"status"`
	Reason string          `json:"reason"`
	Data   json.RawMessage `json:"data"`
}

const (
	ocrStatusApproved = "approved"
	ocrStatusRejected = "rejected"
)

// OCRVerifier sends the file to an external OCR service and maps its verdict.
type OCRVerifier struct {
	client   *httpclient.CircuitBreakerClient
	endpoint string
	apiKey   string
}

// NewOCRVerifier creates a verifier calling endpoint through the breaker client.
func NewOCRVerifier(client *httpclient.CircuitBreakerClient, endpoint, apiKey string) *OCRVerifier {
	return &OCRVerifier{client: client, endpoint: endpoint, apiKey: apiKey}
}

// Verify posts the raw file. Transport failures and unknown verdicts are errors.
func (v *OCRVerifier) Verify(ctx context.Context, document *entity.Document, content io.Reader) (*service.VerificationOutcome, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, content)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", document.ContentType)
	req.Header.Set("X-Document-Id", document.ID.String())
	req.Header.Set("X-Document-Type", string(document.DocumentType))
	if v.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+v.apiKey)
	}

	resp, err := v.client.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("ocr service returned %d", resp.StatusCode)
	}

	var ocrResp OCRResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&ocrResp); err != nil {
		return nil, errors.Wrap(err, "failed to decode ocr response")
	}

	switch ocrResp.Status {
	case ocrStatusApproved:
		return &service.VerificationOutcome{
			Decision: service.VerificationDecisionVerified,
			Data:     ocrResp.Data,
		}, nil
	case ocrStatusRejected:
		return &service.VerificationOutcome{
			Decision: service.VerificationDecisionRejected,
			Reason:   ocrResp.Reason,
			Data:     ocrResp.Data,
		}, nil
	default:
		return nil, errors.Errorf("unknown ocr status %q", ocrResp.Status)
	}
}
