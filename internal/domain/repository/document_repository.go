package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDocumentNotFound is returned when a document does not exist.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository loads and stores documents of the documents module.
type DocumentRepository interface {
	// GetByID returns the document with the given id.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)

	// GetByProviderID returns all documents uploaded for a provider, oldest first.
	GetByProviderID(ctx context.Context, providerID uuid.UUID) ([]*entity.Document, error)

	// Add persists a new document.
	Add(ctx context.Context, document *entity.Document) error

	// Update persists the document in one versioned write; a stale version yields ErrConcurrencyConflict.
	Update(ctx context.Context, document *entity.Document) error
}
