package usecase

import (
	"context"
	"io"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// DocumentUsecase defines the commands and queries of the documents module.
type DocumentUsecase interface {
	// UploadDocument stores the file, records the document and schedules its verification.
	// It returns without waiting for the verification to run.
	UploadDocument(ctx context.Context, principal entity.Principal, input *UploadDocumentInput) (*entity.Document, error)

	GetDocument(ctx context.Context, principal entity.Principal, documentID uuid.UUID) (*entity.Document, error)
	ListProviderDocuments(ctx context.Context, principal entity.Principal, providerID uuid.UUID) ([]*entity.Document, error)

	// RequestVerification re-queues an uploaded or failed document.
	RequestVerification(ctx context.Context, principal entity.Principal, documentID uuid.UUID) (*entity.Document, error)

	// Manual review by an administrator
	ApproveDocument(ctx context.Context, principal entity.Principal, documentID uuid.UUID) (*entity.Document, error)
	RejectDocument(ctx context.Context, principal entity.Principal, documentID uuid.UUID, reason string) (*entity.Document, error)
}

// UploadDocumentInput carries one uploaded file.
type UploadDocumentInput struct {
	ProviderID   uuid.UUID
	DocumentType string
	FileName     string
	ContentType  string
	Size         int64
	Content      io.Reader
}
