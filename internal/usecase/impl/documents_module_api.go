package impl

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// documentsModuleAPI answers the providers module from documents module storage.
type documentsModuleAPI struct {
	documentRepo repository.DocumentRepository
}

// NewDocumentsModuleAPI creates the in-process documents module API.
func NewDocumentsModuleAPI(documentRepo repository.DocumentRepository) service.DocumentsModuleAPI {
	return &documentsModuleAPI{documentRepo: documentRepo}
}

func (a *documentsModuleAPI) HasRequiredDocuments(ctx context.Context, providerID uuid.UUID) (bool, error) {
	return a.coversRequiredTypes(ctx, providerID, func(*entity.Document) bool { return true })
}

func (a *documentsModuleAPI) HasVerifiedDocuments(ctx context.Context, providerID uuid.UUID) (bool, error) {
	return a.coversRequiredTypes(ctx, providerID, func(d *entity.Document) bool {
		return d.Status == entity.DocumentStatusVerified
	})
}

func (a *documentsModuleAPI) HasPendingDocuments(ctx context.Context, providerID uuid.UUID) (bool, error) {
	return a.any(ctx, providerID, func(d *entity.Document) bool {
		return d.Status.IsAwaitingVerification()
	})
}

func (a *documentsModuleAPI) HasRejectedDocuments(ctx context.Context, providerID uuid.UUID) (bool, error) {
	return a.any(ctx, providerID, func(d *entity.Document) bool {
		return d.Status == entity.DocumentStatusRejected
	})
}

// coversRequiredTypes reports whether every required type has a document matching fn.
func (a *documentsModuleAPI) coversRequiredTypes(ctx context.Context, providerID uuid.UUID, fn func(*entity.Document) bool) (bool, error) {
	documents, err := a.documentRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		return false, errors.Wrap(err, "load provider documents")
	}

	covered := make(map[entity.DocumentType]bool)
	for _, d := range documents {
		if fn(d) {
			covered[d.DocumentType] = true
		}
	}

	for _, required := range entity.RequiredDocumentTypes() {
		if !covered[required] {
			return false, nil
		}
	}

	return true, nil
}

func (a *documentsModuleAPI) any(ctx context.Context, providerID uuid.UUID, fn func(*entity.Document) bool) (bool, error) {
	documents, err := a.documentRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		return false, errors.Wrap(err, "load provider documents")
	}

	for _, d := range documents {
		if fn(d) {
			return true, nil
		}
	}

	return false, nil
}
