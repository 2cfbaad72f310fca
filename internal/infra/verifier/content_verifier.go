// Package verifier implements automated document verification.
package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"slices"
	"strings"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

const (
	reasonEmptyFile       = "document file is empty"
	reasonSizeMismatch    = "stored file size does not match the upload"
	reasonTooLarge        = "document file exceeds the maximum allowed size"
	reasonContentMismatch = "file content does not match the declared content type"
	reasonNotAllowed      = "file content type is not allowed"
)

// ContentVerifier inspects the stored bytes: emptiness, size, and the content
// type sniffed from the data against the declared one and the allow-list.
type ContentVerifier struct {
	maxFileSize  int64
	allowedTypes []string
}

// ContentData is recorded on the document when content verification succeeds.
type ContentData struct {
	SHA256              string `json:"sha256"`
	Size                int64  `json:"size"`
	DetectedContentType string `json:"detected_content_type"`
}

// NewContentVerifier creates a verifier bound to the upload limits.
func NewContentVerifier(maxFileSize int64, allowedTypes []string) *ContentVerifier {
	normalized := make([]string, 0, len(allowedTypes))
	for _, t := range allowedTypes {
		normalized = append(normalized, canonicalContentType(t))
	}

	return &ContentVerifier{maxFileSize: maxFileSize, allowedTypes: normalized}
}

// Verify reads at most one byte past the size limit.
func (v *ContentVerifier) Verify(_ context.Context, document *entity.Document, content io.Reader) (*service.VerificationOutcome, error) {
	data, err := io.ReadAll(io.LimitReader(content, v.maxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read document content")
	}

	if len(data) == 0 {
		return rejected(reasonEmptyFile), nil
	}

	if int64(len(data)) > v.maxFileSize {
		return rejected(reasonTooLarge), nil
	}

	if document.FileSize > 0 && int64(len(data)) != document.FileSize {
		return rejected(reasonSizeMismatch), nil
	}

	detected, ok := v.detectAllowed(mimetype.Detect(data))
	if !ok {
		return rejected(reasonNotAllowed), nil
	}

	if declared := canonicalContentType(document.ContentType); declared != detected {
		return rejected(reasonContentMismatch), nil
	}

	sum, size, err := util.Checksum(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(ContentData{SHA256: sum, Size: size, DetectedContentType: detected})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &service.VerificationOutcome{
		Decision: service.VerificationDecisionVerified,
		Data:     payload,
	}, nil
}

// detectAllowed walks the detected type and its parents until one is allowed.
func (v *ContentVerifier) detectAllowed(detected *mimetype.MIME) (string, bool) {
	for m := detected; m != nil; m = m.Parent() {
		if contentType := canonicalContentType(m.String()); slices.Contains(v.allowedTypes, contentType) {
			return contentType, true
		}
	}

	return "", false
}

func rejected(reason string) *service.VerificationOutcome {
	return &service.VerificationOutcome{
		Decision: service.VerificationDecisionRejected,
		Reason:   reason,
	}
}

// canonicalContentType drops parameters and folds the image/jpg alias.
func canonicalContentType(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if mediaType == "image/jpg" {
		return "image/jpeg"
	}

	return mediaType
}
