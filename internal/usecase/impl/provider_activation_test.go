package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expectChecks(fx providerServiceFixtures, required, verified, pending, rejected bool) {
	fx.documentsAPI.EXPECT().HasRequiredDocuments(mock.Anything, mock.Anything).Return(required, nil)
	fx.documentsAPI.EXPECT().HasVerifiedDocuments(mock.Anything, mock.Anything).Return(verified, nil)
	fx.documentsAPI.EXPECT().HasPendingDocuments(mock.Anything, mock.Anything).Return(pending, nil)
	fx.documentsAPI.EXPECT().HasRejectedDocuments(mock.Anything, mock.Anything).Return(rejected, nil)
}

func TestProviderService_Activate_Success(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	provider := newTestProvider(t, entity.ProviderStatusPendingDocumentVerification)
	reason := "old"
	provider.RejectionReason = &reason

	fx.providerRepo.EXPECT().GetByID(ctx, provider.ID).Return(provider, nil)
	expectChecks(fx, true, true, false, false)
	fx.providerRepo.EXPECT().Update(ctx, provider).Return(nil)

	activated, err := fx.service.Activate(ctx, adminPrincipal(), provider.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProviderStatusActive, activated.Status)
	assert.Equal(t, entity.VerificationStatusVerified, activated.VerificationStatus)
	assert.Nil(t, activated.RejectionReason)
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.Activations.WithLabelValues("activated")))
}

func TestProviderService_Activate_GuardPrecedence(t *testing.T) {
	tests := []struct {
		name                                  string
		required, verified, pending, rejected bool
		want                                  error
		wantOutcome                           string
	}{
		{"missing required", false, true, false, false, domainerrors.ErrMissingRequiredDocuments, "missing_required_documents"},
		{"not verified", true, false, false, false, domainerrors.ErrDocumentsNotVerified, "documents_not_verified"},
		{"pending", true, true, true, false, domainerrors.ErrDocumentsPendingVerification, "documents_pending_verification"},
		{"rejected", true, true, false, true, domainerrors.ErrDocumentsRejected, "documents_rejected"},
		{"missing beats everything", false, false, true, true, domainerrors.ErrMissingRequiredDocuments, "missing_required_documents"},
		{"not verified beats pending and rejected", true, false, true, true, domainerrors.ErrDocumentsNotVerified, "documents_not_verified"},
		{"pending beats rejected", true, true, true, true, domainerrors.ErrDocumentsPendingVerification, "documents_pending_verification"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProviderService(t)

			ctx := context.Background()
			provider := newTestProvider(t, entity.ProviderStatusPendingDocumentVerification)

			fx.providerRepo.EXPECT().GetByID(ctx, provider.ID).Return(provider, nil)
			expectChecks(fx, tt.required, tt.verified, tt.pending, tt.rejected)

			_, err := fx.service.Activate(ctx, adminPrincipal(), provider.ID)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, entity.ProviderStatusPendingDocumentVerification, provider.Status)
			fx.providerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.Activations.WithLabelValues(tt.wantOutcome)))
		})
	}
}

func TestProviderService_Activate_TransportFailure(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	provider := newTestProvider(t, entity.ProviderStatusPendingDocumentVerification)

	fx.providerRepo.EXPECT().GetByID(ctx, provider.ID).Return(provider, nil)
	fx.documentsAPI.EXPECT().HasRequiredDocuments(mock.Anything, provider.ID).Return(true, nil)
	fx.documentsAPI.EXPECT().HasVerifiedDocuments(mock.Anything, provider.ID).Return(false, errors.New("connection refused"))
	fx.documentsAPI.EXPECT().HasPendingDocuments(mock.Anything, provider.ID).Return(true, nil)
	fx.documentsAPI.EXPECT().HasRejectedDocuments(mock.Anything, provider.ID).Return(false, nil)

	_, err := fx.service.Activate(ctx, adminPrincipal(), provider.ID)
	require.ErrorIs(t, err, domainerrors.ErrCrossModuleFailure)
	assert.EqualError(t, err, "failed to validate documents: connection refused")
}

func TestProviderService_Activate_BusinessFailureRankedBeforeLaterTransportFailure(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	provider := newTestProvider(t, entity.ProviderStatusPendingDocumentVerification)

	fx.providerRepo.EXPECT().GetByID(ctx, provider.ID).Return(provider, nil)
	fx.documentsAPI.EXPECT().HasRequiredDocuments(mock.Anything, provider.ID).Return(false, nil)
	fx.documentsAPI.EXPECT().HasVerifiedDocuments(mock.Anything, provider.ID).Return(false, errors.New("timeout"))
	fx.documentsAPI.EXPECT().HasPendingDocuments(mock.Anything, provider.ID).Return(false, nil)
	fx.documentsAPI.EXPECT().HasRejectedDocuments(mock.Anything, provider.ID).Return(false, errors.New("timeout"))

	_, err := fx.service.Activate(ctx, adminPrincipal(), provider.ID)
	assert.ErrorIs(t, err, domainerrors.ErrMissingRequiredDocuments)
}

func TestProviderService_Activate_RequiresAdmin(t *testing.T) {
	fx := createTestProviderService(t)

	_, err := fx.service.Activate(context.Background(), ownerPrincipal(uuid.New()), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProviderService_Activate_WrongStateSkipsDocumentChecks(t *testing.T) {
	statuses := []entity.ProviderStatus{
		entity.ProviderStatusPendingBasicInfo,
		entity.ProviderStatusActive,
		entity.ProviderStatusRejected,
		entity.ProviderStatusSuspended,
	}

	for _, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			fx := createTestProviderService(t)

			ctx := context.Background()
			provider := newTestProvider(t, status)

			fx.providerRepo.EXPECT().GetByID(ctx, provider.ID).Return(provider, nil)

			_, err := fx.service.Activate(ctx, adminPrincipal(), provider.ID)
			require.ErrorIs(t, err, domainerrors.ErrInvalidStateTransition)
			assert.Equal(t, status, provider.Status)
			fx.documentsAPI.AssertNotCalled(t, "HasRequiredDocuments", mock.Anything, mock.Anything)
			fx.documentsAPI.AssertNotCalled(t, "HasRejectedDocuments", mock.Anything, mock.Anything)
			fx.providerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.Activations.WithLabelValues("invalid_state_transition")))
		})
	}
}

func TestProviderService_Activate_StaleVersion(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	provider := newTestProvider(t, entity.ProviderStatusPendingDocumentVerification)

	fx.providerRepo.EXPECT().GetByID(ctx, provider.ID).Return(provider, nil)
	expectChecks(fx, true, true, false, false)
	fx.providerRepo.EXPECT().Update(ctx, provider).Return(errors.Wrap(repository.ErrConcurrencyConflict, "provider"))

	_, err := fx.service.Activate(ctx, adminPrincipal(), provider.ID)
	assert.ErrorIs(t, err, domainerrors.ErrConcurrencyConflict)
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.Activations.WithLabelValues("concurrency_conflict")))
}

func TestProviderService_Activate_NotFound(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	providerID := uuid.New()

	fx.providerRepo.EXPECT().GetByID(ctx, providerID).Return(nil, repository.ErrProviderNotFound)

	_, err := fx.service.Activate(ctx, adminPrincipal(), providerID)
	assert.ErrorIs(t, err, domainerrors.ErrProviderNotFound)
}
