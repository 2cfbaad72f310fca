package postgres

import (
	"context"
	"encoding/json"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// documentRepository implements the domain.DocumentRepository interface.
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository is the constructor for documentRepository.
func NewDocumentRepository(db *gorm.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

// GetByID retrieves a document by its ID.
func (repo *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	var documentM model.DocumentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&documentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find document by id")
	}

	return toDocumentDomain(&documentM), nil
}

// GetByProviderID retrieves every document uploaded for a provider, oldest first.
func (repo *documentRepository) GetByProviderID(ctx context.Context, providerID uuid.UUID) ([]*entity.Document, error) {
	var documentsM []*model.DocumentModel
	err := repo.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("uploaded_at ASC").
		Order("id ASC").
		Find(&documentsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find documents by provider")
	}

	documents := make([]*entity.Document, len(documentsM))
	for i, documentM := range documentsM {
		documents[i] = toDocumentDomain(documentM)
	}

	return documents, nil
}

// Add persists a new document.
func (repo *documentRepository) Add(ctx context.Context, document *entity.Document) error {
	if err := repo.db.WithContext(ctx).Create(fromDocumentDomain(document)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("document already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create document")
	}

	return nil
}

// Update writes the document guarded by its version and advances the entity's Version.
func (repo *documentRepository) Update(ctx context.Context, document *entity.Document) error {
	documentM := fromDocumentDomain(document)
	nextVersion := document.Version + 1

	result := repo.db.WithContext(ctx).
		Model(&model.DocumentModel{}).
		Where("id = ? AND version = ?", document.ID, document.Version).
		UpdateColumns(map[string]any{
			"status":                documentM.Status,
			"ocr_data":              documentM.OcrData,
			"rejection_reason":      documentM.RejectionReason,
			"failure_reason":        documentM.FailureReason,
			"verification_attempts": documentM.VerificationAttempts,
			"verified_at":           documentM.VerifiedAt,
			"updated_at":            documentM.UpdatedAt,
			"version":               nextVersion,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update document")
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(repository.ErrConcurrencyConflict, "document %s version %d", document.ID, document.Version)
	}

	document.Version = nextVersion

	return nil
}

// toDocumentDomain converts a GORM DocumentModel to a domain Document entity.
func toDocumentDomain(data *model.DocumentModel) *entity.Document {
	if data == nil {
		return nil
	}

	var ocrData json.RawMessage
	if len(data.OcrData) > 0 {
		ocrData = json.RawMessage(data.OcrData)
	}

	return &entity.Document{
		ID:                   data.ID,
		ProviderID:           data.ProviderID,
		DocumentType:         entity.DocumentType(data.DocumentType),
		FileName:             data.FileName,
		FileKey:              data.FileKey,
		FileURL:              data.FileURL,
		ContentType:          data.ContentType,
		FileSize:             data.FileSize,
		Status:               entity.DocumentStatus(data.Status),
		OcrData:              ocrData,
		RejectionReason:      data.RejectionReason,
		FailureReason:        data.FailureReason,
		VerificationAttempts: data.VerificationAttempts,
		UploadedAt:           data.UploadedAt,
		VerifiedAt:           data.VerifiedAt,
		UpdatedAt:            data.UpdatedAt,
		Version:              data.Version,
	}
}

// fromDocumentDomain converts a domain Document entity to a GORM DocumentModel.
func fromDocumentDomain(data *entity.Document) *model.DocumentModel {
	if data == nil {
		return nil
	}

	var ocrData datatypes.JSON
	if len(data.OcrData) > 0 {
		ocrData = datatypes.JSON(data.OcrData)
	}

	return &model.DocumentModel{
		ID:                   data.ID,
		ProviderID:           data.ProviderID,
		DocumentType:         string(data.DocumentType),
		FileName:             data.FileName,
		FileKey:              data.FileKey,
		FileURL:              data.FileURL,
		ContentType:          data.ContentType,
		FileSize:             data.FileSize,
		Status:               string(data.Status),
		OcrData:              ocrData,
		RejectionReason:      data.RejectionReason,
		FailureReason:        data.FailureReason,
		VerificationAttempts: data.VerificationAttempts,
		UploadedAt:           data.UploadedAt,
		VerifiedAt:           data.VerifiedAt,
		UpdatedAt:            data.UpdatedAt,
		Version:              data.Version,
	}
}
