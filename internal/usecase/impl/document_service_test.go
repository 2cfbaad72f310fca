package impl

import (
	"context"
	"strings"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/metrics"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// documentServiceFixtures holds all test dependencies for document service tests.
type documentServiceFixtures struct {
	service      usecase.DocumentUsecase
	txManager    *mockRepo.MockTransactionManager
	txFactory    *mockRepo.MockRepositoryFactory
	documentRepo *mockRepo.MockDocumentRepository
	providersAPI *mockSvc.MockProvidersModuleAPI
	storage      *mockSvc.MockBlobStorage
	queue        *mockSvc.MockVerificationJobQueue
	metrics      *metrics.Metrics
}

func createTestDocumentService(t *testing.T) documentServiceFixtures {
	fx := documentServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		txFactory:    mockRepo.NewMockRepositoryFactory(t),
		documentRepo: mockRepo.NewMockDocumentRepository(t),
		providersAPI: mockSvc.NewMockProvidersModuleAPI(t),
		storage:      mockSvc.NewMockBlobStorage(t),
		queue:        mockSvc.NewMockVerificationJobQueue(t),
		metrics:      metrics.New(prometheus.NewRegistry()),
	}

	notifier := mockSvc.NewMockProviderNotifier(t)
	notifier.EXPECT().NotifyStatusChange(mock.Anything, mock.Anything).Return(nil).Maybe()

	cfg := &config.Config{}
	cfg.Upload.MaxFileSize = 10 << 20
	cfg.Upload.AllowedContentTypes = config.DefaultAllowedContentTypes()

	fx.service = NewDocumentService(DocumentServiceParams{
		TxManager:    fx.txManager,
		DocumentRepo: fx.documentRepo,
		ProvidersAPI: fx.providersAPI,
		Storage:      fx.storage,
		Queue:        fx.queue,
		Notifier:     notifier,
		Metrics:      fx.metrics,
		Config:       cfg,
		Logger:       testLogger(),
	})

	return fx
}

func (fx documentServiceFixtures) expectTransaction() {
	fx.txFactory.EXPECT().NewDocumentRepository().Return(fx.documentRepo)
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.txFactory)
		})
}

func newUploadInput(providerID uuid.UUID, contentType string, size int64) *usecase.UploadDocumentInput {
	return &usecase.UploadDocumentInput{
		ProviderID:   providerID,
		DocumentType: "identity_document",
		FileName:     "rg-front.jpg",
		ContentType:  contentType,
		Size:         size,
		Content:      strings.NewReader("file-bytes"),
	}
}

func TestDocumentService_UploadDocument_Success(t *testing.T) {
	fx := createTestDocumentService(t)

	ctx := context.Background()
	provider := newTestProvider(t, entity.ProviderStatusPendingDocumentVerification)

	fx.providersAPI.EXPECT().ProviderOwner(ctx, provider.ID).Return(provider.UserID, nil)
	fx.storage.EXPECT().
		Upload(ctx, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, provider.ID.String()+"/") }), "image/jpeg", mock.Anything).
		Return("https://files.example.com/doc", nil)
	fx.expectTransaction()
	fx.documentRepo.EXPECT().Add(ctx, mock.AnythingOfType("*entity.Document")).Return(nil)
	fx.queue.EXPECT().
		EnqueueVerification(ctx, mock.MatchedBy(func(job *service.VerificationJob) bool {
			return job.ProviderID == provider.ID.String() && job.Attempt == 1
		})).
		Return(nil)

	document, err := fx.service.UploadDocument(ctx, ownerPrincipal(provider.UserID), newUploadInput(provider.ID, "IMAGE/JPEG; charset=binary", 2048))
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentStatusPendingVerification, document.Status)
	assert.Equal(t, "image/jpeg", document.ContentType)
	assert.Equal(t, "https://files.example.com/doc", document.FileURL)
	assert.Equal(t, 1, document.VerificationAttempts)
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.Uploads.WithLabelValues("accepted")))
}

func TestDocumentService_UploadDocument_EnqueueFailureKeepsDocument(t *testing.T) {
	fx := createTestDocumentService(t)

	ctx := context.Background()
	provider := newTestProvider(t, entity.ProviderStatusPendingDocumentVerification)

	fx.providersAPI.EXPECT().ProviderOwner(ctx, provider.ID).Return(provider.UserID, nil)
	fx.storage.EXPECT().Upload(ctx, mock.Anything, "application/pdf", mock.Anything).Return("url", nil)
	fx.expectTransaction()
	fx.documentRepo.EXPECT().Add(ctx, mock.AnythingOfType("*entity.Document")).Return(nil)
	fx.queue.EXPECT().EnqueueVerification(ctx, mock.Anything).Return(assert.AnError)

	document, err := fx.service.UploadDocument(ctx, adminPrincipal(), newUploadInput(provider.ID, "application/pdf", 2048))
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentStatusPendingVerification, document.Status)
	fx.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDocumentService_UploadDocument_ContentTypeNotAllowed(t *testing.T) {
	fx := createTestDocumentService(t)

	_, err := fx.service.UploadDocument(context.Background(), adminPrincipal(), newUploadInput(uuid.New(), "image/gif", 2048))
	require.ErrorIs(t, err, domainerrors.ErrContentTypeNotAllowed)
	assert.Contains(t, err.Error(), "not allowed")
	fx.providersAPI.AssertNotCalled(t, "ProviderOwner", mock.Anything, mock.Anything)
}

func TestDocumentService_UploadDocument_FileTooLarge(t *testing.T) {
	fx := createTestDocumentService(t)

	_, err := fx.service.UploadDocument(context.Background(), adminPrincipal(), newUploadInput(uuid.New(), "image/png", 11<<20))
	require.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
	assert.Contains(t, err.Error(), "10.0 MB")
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.Uploads.WithLabelValues("invalid")))
}

func TestDocumentService_UploadDocument_InputValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.UploadDocumentInput)
	}{
		{"unknown type", func(in *usecase.UploadDocumentInput) { in.DocumentType = "selfie" }},
		{"blank file name", func(in *usecase.UploadDocumentInput) { in.FileName = "  " }},
		{"missing content type", func(in *usecase.UploadDocumentInput) { in.ContentType = "" }},
		{"empty file", func(in *usecase.UploadDocumentInput) { in.Size = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDocumentService(t)

			input := newUploadInput(uuid.New(), "image/png", 2048)
			tt.mutate(input)

			_, err := fx.service.UploadDocument(context.Background(), adminPrincipal(), input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestDocumentService_UploadDocument_ForbiddenForStranger(t *testing.T) {
	fx := createTestDocumentService(t)

	ctx := context.Background()
	provider := newTestProvider(t, entity.ProviderStatusPendingDocumentVerification)

	fx.providersAPI.EXPECT().ProviderOwner(ctx, provider.ID).Return(provider.UserID, nil)

	_, err := fx.service.UploadDocument(ctx, ownerPrincipal(uuid.New()), newUploadInput(provider.ID, "image/png", 2048))
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDocumentService_UploadDocument_UnknownProvider(t *testing.T) {
	fx := createTestDocumentService(t)

	ctx := context.Background()
	providerID := uuid.New()

	fx.providersAPI.EXPECT().ProviderOwner(ctx, providerID).Return(uuid.Nil, repository.ErrProviderNotFound)

	_, err := fx.service.UploadDocument(ctx, adminPrincipal(), newUploadInput(providerID, "image/png", 2048))
	assert.ErrorIs(t, err, domainerrors.ErrProviderNotFound)
	fx.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentService_UploadDocument_PersistFailureRemovesFile(t *testing.T) {
	fx := createTestDocumentService(t)

	ctx := context.Background()
	provider := newTestProvider(t, entity.ProviderStatusPendingDocumentVerification)

	fx.providersAPI.EXPECT().ProviderOwner(ctx, provider.ID).Return(provider.UserID, nil)
	fx.storage.EXPECT().Upload(ctx, mock.Anything, "image/png", mock.Anything).Return("url", nil)
	fx.expectTransaction()
	fx.documentRepo.EXPECT().Add(ctx, mock.Anything).Return(assert.AnError)
	fx.storage.EXPECT().Delete(ctx, mock.Anything).Return(nil)

	_, err := fx.service.UploadDocument(ctx, adminPrincipal(), newUploadInput(provider.ID, "image/png", 2048))
	require.ErrorIs(t, err, domainerrors.ErrInternalError)
	assert.EqualError(t, err, "failed to upload document")
	fx.queue.AssertNotCalled(t, "EnqueueVerification", mock.Anything, mock.Anything)
}

func TestDocumentService_UploadDocument_StorageFailure(t *testing.T) {
	fx := createTestDocumentService(t)

	ctx := context.Background()
	provider := newTestProvider(t, entity.ProviderStatusPendingDocumentVerification)

	fx.providersAPI.EXPECT().ProviderOwner(ctx, provider.ID).Return(provider.UserID, nil)
	fx.storage.EXPECT().Upload(ctx, mock.Anything, "image/png", mock.Anything).Return("", assert.AnError)

	_, err := fx.service.UploadDocument(ctx, adminPrincipal(), newUploadInput(provider.ID, "image/png", 2048))
	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
}

func TestDocumentService_RequestVerification_RetriesFailedDocument(t *testing.T) {
	fx := createTestDocumentService(t)

	ctx := context.Background()
	provider := newTestProvider(t, entity.ProviderStatusPendingDocumentVerification)
	document := newStoredDocument(provider.ID, entity.DocumentTypeIdentity, entity.DocumentStatusFailed)
	reason := "ocr timeout"
	document.FailureReason = &reason
	document.VerificationAttempts = 1

	fx.documentRepo.EXPECT().GetByID(ctx, document.ID).Return(document, nil)
	fx.providersAPI.EXPECT().ProviderOwner(ctx, provider.ID).Return(provider.UserID, nil)
	fx.documentRepo.EXPECT().Update(ctx, document).Return(nil)
	fx.queue.EXPECT().
		EnqueueVerification(ctx, mock.MatchedBy(func(job *service.VerificationJob) bool { return job.Attempt == 2 })).
		Return(nil)

	updated, err := fx.service.RequestVerification(ctx, ownerPrincipal(provider.UserID), document.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentStatusPendingVerification, updated.Status)
	assert.Nil(t, updated.FailureReason)
	assert.Nil(t, updated.RejectionReason)
}

func TestDocumentService_RequestVerification_VerifiedDocument(t *testing.T) {
	fx := createTestDocumentService(t)

	ctx := context.Background()
	provider := newTestProvider(t, entity.ProviderStatusActive)
	document := newStoredDocument(provider.ID, entity.DocumentTypeIdentity, entity.DocumentStatusVerified)

	fx.documentRepo.EXPECT().GetByID(ctx, document.ID).Return(document, nil)
	fx.providersAPI.EXPECT().ProviderOwner(ctx, provider.ID).Return(provider.UserID, nil)

	_, err := fx.service.RequestVerification(ctx, adminPrincipal(), document.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStateTransition)
}

func TestDocumentService_ApproveDocument(t *testing.T) {
	fx := createTestDocumentService(t)

	ctx := context.Background()
	document := newStoredDocument(uuid.New(), entity.DocumentTypeProofOfResidence, entity.DocumentStatusPendingVerification)

	fx.documentRepo.EXPECT().GetByID(ctx, document.ID).Return(document, nil)
	fx.documentRepo.EXPECT().Update(ctx, document).Return(nil)

	approved, err := fx.service.ApproveDocument(ctx, adminPrincipal(), document.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentStatusVerified, approved.Status)
	assert.NotNil(t, approved.VerifiedAt)
}

func TestDocumentService_RejectDocument(t *testing.T) {
	t.Run("blank reason", func(t *testing.T) {
		fx := createTestDocumentService(t)

		_, err := fx.service.RejectDocument(context.Background(), adminPrincipal(), uuid.New(), " ")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("not admin", func(t *testing.T) {
		fx := createTestDocumentService(t)

		_, err := fx.service.RejectDocument(context.Background(), ownerPrincipal(uuid.New()), uuid.New(), "blurry")
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("pending document", func(t *testing.T) {
		fx := createTestDocumentService(t)

		ctx := context.Background()
		document := newStoredDocument(uuid.New(), entity.DocumentTypeIdentity, entity.DocumentStatusPendingVerification)

		fx.documentRepo.EXPECT().GetByID(ctx, document.ID).Return(document, nil)
		fx.documentRepo.EXPECT().Update(ctx, document).Return(nil)

		rejected, err := fx.service.RejectDocument(ctx, adminPrincipal(), document.ID, "blurry photo")
		require.NoError(t, err)
		assert.Equal(t, entity.DocumentStatusRejected, rejected.Status)
		require.NotNil(t, rejected.RejectionReason)
		assert.Equal(t, "blurry photo", *rejected.RejectionReason)
	})

	t.Run("unknown document", func(t *testing.T) {
		fx := createTestDocumentService(t)

		ctx := context.Background()
		documentID := uuid.New()
		fx.documentRepo.EXPECT().GetByID(ctx, documentID).Return(nil, repository.ErrDocumentNotFound)

		_, err := fx.service.RejectDocument(ctx, adminPrincipal(), documentID, "blurry photo")
		assert.ErrorIs(t, err, domainerrors.ErrDocumentNotFound)
	})
}

func TestDocumentService_ListProviderDocuments(t *testing.T) {
	fx := createTestDocumentService(t)

	ctx := context.Background()
	provider := newTestProvider(t, entity.ProviderStatusPendingDocumentVerification)
	documents := []*entity.Document{
		newStoredDocument(provider.ID, entity.DocumentTypeIdentity, entity.DocumentStatusVerified),
	}

	fx.providersAPI.EXPECT().ProviderOwner(ctx, provider.ID).Return(provider.UserID, nil)
	fx.documentRepo.EXPECT().GetByProviderID(ctx, provider.ID).Return(documents, nil)

	listed, err := fx.service.ListProviderDocuments(ctx, ownerPrincipal(provider.UserID), provider.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}
