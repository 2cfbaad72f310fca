package service

import (
	"context"

	"github.com/google/uuid"
)

// ProvidersModuleAPI is the only way the documents module may ask about a provider.
type ProvidersModuleAPI interface {
	// ProviderOwner returns the user that owns the provider. Absent and deleted
	// providers report repository.ErrProviderNotFound.
	ProviderOwner(ctx context.Context, providerID uuid.UUID) (uuid.UUID, error)
}
