package impl

import (
	"context"

	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// providersModuleAPI answers the documents module from providers module storage.
type providersModuleAPI struct {
	providerRepo repository.ProviderRepository
}

// NewProvidersModuleAPI creates the in-process providers module API.
func NewProvidersModuleAPI(providerRepo repository.ProviderRepository) service.ProvidersModuleAPI {
	return &providersModuleAPI{providerRepo: providerRepo}
}

func (a *providersModuleAPI) ProviderOwner(ctx context.Context, providerID uuid.UUID) (uuid.UUID, error) {
	provider, err := a.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "load provider")
	}

	return provider.UserID, nil
}
