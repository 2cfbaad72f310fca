package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredDocument(providerID uuid.UUID, docType entity.DocumentType, status entity.DocumentStatus) *entity.Document {
	return &entity.Document{
		ID:           uuid.New(),
		ProviderID:   providerID,
		DocumentType: docType,
		FileName:     string(docType) + ".pdf",
		FileKey:      providerID.String() + "/" + string(docType),
		ContentType:  "application/pdf",
		FileSize:     1024,
		Status:       status,
		UploadedAt:   time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
		Version:      1,
	}
}

func TestDocumentsModuleAPI_Checks(t *testing.T) {
	providerID := uuid.New()

	tests := []struct {
		name                                  string
		documents                             []*entity.Document
		required, verified, pending, rejected bool
	}{
		{
			name: "no documents",
		},
		{
			name: "all required verified",
			documents: []*entity.Document{
				newStoredDocument(providerID, entity.DocumentTypeIdentity, entity.DocumentStatusVerified),
				newStoredDocument(providerID, entity.DocumentTypeProofOfResidence, entity.DocumentStatusVerified),
			},
			required: true,
			verified: true,
		},
		{
			name: "one required missing",
			documents: []*entity.Document{
				newStoredDocument(providerID, entity.DocumentTypeIdentity, entity.DocumentStatusVerified),
				newStoredDocument(providerID, entity.DocumentTypeOther, entity.DocumentStatusVerified),
			},
		},
		{
			name: "required present but pending",
			documents: []*entity.Document{
				newStoredDocument(providerID, entity.DocumentTypeIdentity, entity.DocumentStatusPendingVerification),
				newStoredDocument(providerID, entity.DocumentTypeProofOfResidence, entity.DocumentStatusVerified),
			},
			required: true,
			pending:  true,
		},
		{
			name: "rejected resubmitted and verified",
			documents: []*entity.Document{
				newStoredDocument(providerID, entity.DocumentTypeIdentity, entity.DocumentStatusRejected),
				newStoredDocument(providerID, entity.DocumentTypeIdentity, entity.DocumentStatusVerified),
				newStoredDocument(providerID, entity.DocumentTypeProofOfResidence, entity.DocumentStatusVerified),
			},
			required: true,
			verified: true,
			rejected: true,
		},
		{
			name: "failed counts as neither pending nor rejected",
			documents: []*entity.Document{
				newStoredDocument(providerID, entity.DocumentTypeIdentity, entity.DocumentStatusFailed),
				newStoredDocument(providerID, entity.DocumentTypeProofOfResidence, entity.DocumentStatusUploaded),
			},
			required: true,
			pending:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := mockRepo.NewMockDocumentRepository(t)
			repo.EXPECT().GetByProviderID(ctx, providerID).Return(tt.documents, nil)
			api := NewDocumentsModuleAPI(repo)

			required, err := api.HasRequiredDocuments(ctx, providerID)
			require.NoError(t, err)
			verified, err := api.HasVerifiedDocuments(ctx, providerID)
			require.NoError(t, err)
			pending, err := api.HasPendingDocuments(ctx, providerID)
			require.NoError(t, err)
			rejected, err := api.HasRejectedDocuments(ctx, providerID)
			require.NoError(t, err)

			assert.Equal(t, tt.required, required, "required")
			assert.Equal(t, tt.verified, verified, "verified")
			assert.Equal(t, tt.pending, pending, "pending")
			assert.Equal(t, tt.rejected, rejected, "rejected")
		})
	}
}

func TestDocumentsModuleAPI_RepositoryError(t *testing.T) {
	ctx := context.Background()
	providerID := uuid.New()
	repo := mockRepo.NewMockDocumentRepository(t)
	repo.EXPECT().GetByProviderID(ctx, providerID).Return(nil, assert.AnError)

	_, err := NewDocumentsModuleAPI(repo).HasRequiredDocuments(ctx, providerID)
	require.ErrorIs(t, err, assert.AnError)
}
