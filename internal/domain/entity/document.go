package entity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DocumentType is the kind of verification document uploaded to the documents module.
type DocumentType string

const (
	DocumentTypeIdentity         DocumentType = "identity_document"
	DocumentTypeProofOfResidence DocumentType = "proof_of_residence"
	DocumentTypeCriminalRecord   DocumentType = "criminal_record"
	DocumentTypeOther            DocumentType = "other"
)

// RequiredDocumentTypes lists the document types every provider must submit before activation.
func RequiredDocumentTypes() []DocumentType {
	return []DocumentType{DocumentTypeIdentity, DocumentTypeProofOfResidence}
}

// ParseDocumentType converts user input into a DocumentType.
func ParseDocumentType(s string) (DocumentType, error) {
	t := DocumentType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case DocumentTypeIdentity, DocumentTypeProofOfResidence, DocumentTypeCriminalRecord, DocumentTypeOther:
		return t, nil
	default:
		return "", errors.Wrapf(ErrInvalidInput, "unknown document type %q", s)
	}
}

// DocumentStatus is the verification state of an uploaded document.
type DocumentStatus string

const (
	DocumentStatusUploaded            DocumentStatus = "uploaded"
	DocumentStatusPendingVerification DocumentStatus = "pending_verification"
	DocumentStatusVerified            DocumentStatus = "verified"
	DocumentStatusRejected            DocumentStatus = "rejected"
	DocumentStatusFailed              DocumentStatus = "failed"
)

// IsAwaitingVerification reports whether the document has not reached a verdict yet.
func (s DocumentStatus) IsAwaitingVerification() bool {
	return s == DocumentStatusUploaded || s == DocumentStatusPendingVerification
}

// Document is one uploaded verification artifact owned by the documents module.
// ProviderID is a lookup reference only.
type Document struct {
	ID                   uuid.UUID       `json:"id"`
	ProviderID           uuid.UUID       `json:"provider_id"`
	DocumentType         DocumentType    `json:"document_type"`
	FileName             string          `json:"file_name"`
	FileKey              string          `json:"file_key"`
	FileURL              string          `json:"file_url"`
	ContentType          string          `json:"content_type"`
	FileSize             int64           `json:"file_size"`
	Status               DocumentStatus  `json:"status"`
	OcrData              json.RawMessage `json:"ocr_data,omitempty"`
	RejectionReason      *string         `json:"rejection_reason,omitempty"`
	FailureReason        *string         `json:"failure_reason,omitempty"`
	VerificationAttempts int             `json:"verification_attempts"`
	UploadedAt           time.Time       `json:"uploaded_at"`
	VerifiedAt           *time.Time      `json:"verified_at,omitempty"`
	UpdatedAt            time.Time       `json:"updated_at"`
	Version              int64           `json:"version"`
}

// NewDocument creates a document in the Uploaded state. Upload constraints such as the
// content type allow-list and size limit are checked by the caller beforehand.
func NewDocument(id, providerID uuid.UUID, docType DocumentType, fileName, fileKey, fileURL, contentType string, size int64, now time.Time) (*Document, error) {
	if id == uuid.Nil || providerID == uuid.Nil {
		return nil, errors.Wrap(ErrInvalidInput, "document and provider ids are required")
	}

	if strings.TrimSpace(fileName) == "" || fileKey == "" {
		return nil, errors.Wrap(ErrInvalidInput, "file name and key are required")
	}

	return &Document{
		ID:           id,
		ProviderID:   providerID,
		DocumentType: docType,
		FileName:     strings.TrimSpace(fileName),
		FileKey:      fileKey,
		FileURL:      fileURL,
		ContentType:  contentType,
		FileSize:     size,
		Status:       DocumentStatusUploaded,
		UploadedAt:   now,
		UpdatedAt:    now,
		Version:      1,
	}, nil
}

// MarkAsPendingVerification queues the document for verification. It is valid from
// Uploaded and, as a retry, from Failed. Prior verdict reasons are cleared.
func (d *Document) MarkAsPendingVerification() error {
	if d.Status != DocumentStatusUploaded && d.Status != DocumentStatusFailed {
		return errors.Wrapf(ErrInvalidTransition, "cannot queue document in status %s for verification", d.Status)
	}

	d.Status = DocumentStatusPendingVerification
	d.RejectionReason = nil
	d.FailureReason = nil
	d.VerificationAttempts++
	d.UpdatedAt = time.Now().UTC()

	return nil
}

// MarkAsVerified records a successful verification with its extracted data.
func (d *Document) MarkAsVerified(ocrData json.RawMessage) error {
	if err := d.requirePending("verify"); err != nil {
		return err
	}

	now := time.Now().UTC()
	d.Status = DocumentStatusVerified
	d.OcrData = ocrData
	d.VerifiedAt = &now
	d.UpdatedAt = now

	return nil
}

// MarkAsRejected records a human or automated rejection. The reason is mandatory.
func (d *Document) MarkAsRejected(reason string) error {
	reason, err := RequireReason(reason)
	if err != nil {
		return err
	}

	if err := d.requirePending("reject"); err != nil {
		return err
	}

	d.Status = DocumentStatusRejected
	d.RejectionReason = &reason
	d.UpdatedAt = time.Now().UTC()

	return nil
}

// MarkAsFailed records a system failure during verification. The document can be retried.
func (d *Document) MarkAsFailed(reason string, diagnostics json.RawMessage) error {
	reason, err := RequireReason(reason)
	if err != nil {
		return err
	}

	if err := d.requirePending("fail"); err != nil {
		return err
	}

	d.Status = DocumentStatusFailed
	d.FailureReason = &reason
	if len(diagnostics) > 0 {
		d.OcrData = diagnostics
	}
	d.UpdatedAt = time.Now().UTC()

	return nil
}

func (d *Document) requirePending(action string) error {
	if d.Status != DocumentStatusPendingVerification {
		return errors.Wrapf(ErrInvalidTransition, "cannot %s document in status %s", action, d.Status)
	}

	return nil
}
