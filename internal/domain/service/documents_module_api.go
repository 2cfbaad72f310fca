package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUnknownDocumentCheck is returned for a check name outside DocumentChecks.
var ErrUnknownDocumentCheck = errors.New("unknown document check")

// DocumentsModuleAPI is the only way the providers module may ask about a provider's
// verification documents. Implementations never expose documents module storage.
// A returned error is a failed result regardless of whether it came from transport
// or from the documents module itself.
type DocumentsModuleAPI interface {
	// HasRequiredDocuments reports whether every required document type was uploaded.
	HasRequiredDocuments(ctx context.Context, providerID uuid.UUID) (bool, error)

	// HasVerifiedDocuments reports whether every required document type has a verified document.
	HasVerifiedDocuments(ctx context.Context, providerID uuid.UUID) (bool, error)

	// HasPendingDocuments reports whether any document still awaits verification.
	HasPendingDocuments(ctx context.Context, providerID uuid.UUID) (bool, error)

	// HasRejectedDocuments reports whether any document was rejected.
	HasRejectedDocuments(ctx context.Context, providerID uuid.UUID) (bool, error)
}

// DocumentCheck names one of the DocumentsModuleAPI predicates.
type DocumentCheck string

const (
	DocumentCheckRequired DocumentCheck = "required"
	DocumentCheckVerified DocumentCheck = "verified"
	DocumentCheckPending  DocumentCheck = "pending"
	DocumentCheckRejected DocumentCheck = "rejected"
)

// DocumentChecks returns the predicates in activation precedence order.
func DocumentChecks() []DocumentCheck {
	return []DocumentCheck{DocumentCheckRequired, DocumentCheckVerified, DocumentCheckPending, DocumentCheckRejected}
}

// IsValid checks if the DocumentCheck is a valid value.
func (c DocumentCheck) IsValid() bool {
	switch c {
	case DocumentCheckRequired, DocumentCheckVerified, DocumentCheckPending, DocumentCheckRejected:
		return true
	default:
		return false
	}
}

// RunDocumentCheck dispatches a named check to the API.
func RunDocumentCheck(ctx context.Context, api DocumentsModuleAPI, check DocumentCheck, providerID uuid.UUID) (bool, error) {
	switch check {
	case DocumentCheckRequired:
		return api.HasRequiredDocuments(ctx, providerID)
	case DocumentCheckVerified:
		return api.HasVerifiedDocuments(ctx, providerID)
	case DocumentCheckPending:
		return api.HasPendingDocuments(ctx, providerID)
	case DocumentCheckRejected:
		return api.HasRejectedDocuments(ctx, providerID)
	default:
		return false, ErrUnknownDocumentCheck
	}
}
