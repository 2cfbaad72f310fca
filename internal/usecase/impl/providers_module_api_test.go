package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvidersModuleAPI_ProviderOwner(t *testing.T) {
	repo := mockRepo.NewMockProviderRepository(t)
	api := NewProvidersModuleAPI(repo)

	ctx := context.Background()
	provider := newTestProvider(t, entity.ProviderStatusPendingDocumentVerification)

	repo.EXPECT().GetByID(ctx, provider.ID).Return(provider, nil)

	owner, err := api.ProviderOwner(ctx, provider.ID)
	require.NoError(t, err)
	assert.Equal(t, provider.UserID, owner)
}

func TestProvidersModuleAPI_ProviderOwner_NotFound(t *testing.T) {
	repo := mockRepo.NewMockProviderRepository(t)
	api := NewProvidersModuleAPI(repo)

	ctx := context.Background()
	providerID := uuid.New()

	repo.EXPECT().GetByID(ctx, providerID).Return(nil, repository.ErrProviderNotFound)

	owner, err := api.ProviderOwner(ctx, providerID)
	assert.ErrorIs(t, err, repository.ErrProviderNotFound)
	assert.Equal(t, uuid.Nil, owner)
}
