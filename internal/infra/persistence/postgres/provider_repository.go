package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// providerRepository implements the domain.ProviderRepository interface.
type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(db *gorm.DB) repository.ProviderRepository {
	return &providerRepository{db: db}
}

// GetByID retrieves a non-deleted provider with its documents and services.
func (repo *providerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	return repo.first(ctx, "id = ?", id)
}

// GetByUserID retrieves the non-deleted provider owned by a user.
func (repo *providerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Provider, error) {
	return repo.first(ctx, "user_id = ?", userID)
}

func (repo *providerRepository) first(ctx context.Context, condition string, value uuid.UUID) (*entity.Provider, error) {
	var providerM model.ProviderModel
	err := repo.db.WithContext(ctx).
		Preload("Documents", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Services", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where(condition, value).
		Where("is_deleted = ?", false).
		First(&providerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider")
	}

	return toProviderDomain(&providerM), nil
}

// Add persists a new provider with its collections.
func (repo *providerRepository) Add(ctx context.Context, provider *entity.Provider) error {
	providerM := fromProviderDomain(provider)

	if err := repo.db.WithContext(ctx).Create(providerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrProviderAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required provider information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create provider")
	}

	return nil
}

// Update writes the provider row guarded by its version and rewrites the
// collections in the same transaction. The entity's Version is advanced on success.
func (repo *providerRepository) Update(ctx context.Context, provider *entity.Provider) error {
	providerM := fromProviderDomain(provider)
	nextVersion := provider.Version + 1

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ProviderModel{}).
			Where("id = ? AND version = ?", provider.ID, provider.Version).
			UpdateColumns(map[string]any{
				"name":                providerM.Name,
				"type":                providerM.Type,
				"status":              providerM.Status,
				"verification_status": providerM.VerificationStatus,
				"suspension_reason":   providerM.SuspensionReason,
				"rejection_reason":    providerM.RejectionReason,
				"correction_reason":   providerM.CorrectionReason,
				"is_deleted":          providerM.IsDeleted,
				"deleted_at":          providerM.DeletedAt,
				"deleted_by":          providerM.DeletedBy,
				"updated_by":          providerM.UpdatedBy,
				"updated_at":          providerM.UpdatedAt,
				"version":             nextVersion,
			})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to update provider")
		}
		if result.RowsAffected == 0 {
			return errors.Wrapf(repository.ErrConcurrencyConflict, "provider %s version %d", provider.ID, provider.Version)
		}

		if err := tx.Where("provider_id = ?", provider.ID).Delete(&model.ProviderDocumentModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear provider documents")
		}
		if len(providerM.Documents) > 0 {
			if err := tx.Create(&providerM.Documents).Error; err != nil {
				return errors.Wrap(err, "failed to write provider documents")
			}
		}

		if err := tx.Where("provider_id = ?", provider.ID).Delete(&model.ProviderServiceModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear provider services")
		}
		if len(providerM.Services) > 0 {
			if err := tx.Create(&providerM.Services).Error; err != nil {
				return errors.Wrap(err, "failed to write provider services")
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrConcurrencyConflict) {
			return err
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("provider update conflicts with existing data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update provider")
	}

	provider.Version = nextVersion

	return nil
}

// toProviderDomain converts a GORM ProviderModel to a domain Provider entity.
func toProviderDomain(data *model.ProviderModel) *entity.Provider {
	if data == nil {
		return nil
	}

	documents := make([]entity.ProviderDocument, 0, len(data.Documents))
	for _, d := range data.Documents {
		documents = append(documents, entity.ProviderDocument{
			Type:      entity.ProviderDocumentType(d.Type),
			Number:    d.Number,
			IsPrimary: d.IsPrimary,
		})
	}

	services := make([]entity.ProviderService, 0, len(data.Services))
	for _, s := range data.Services {
		services = append(services, entity.ProviderService{
			ServiceID:   s.ServiceID,
			ServiceName: s.ServiceName,
		})
	}

	return &entity.Provider{
		ID:                 data.ID,
		UserID:             data.UserID,
		Name:               data.Name,
		Type:               entity.ProviderType(data.Type),
		Status:             entity.ProviderStatus(data.Status),
		VerificationStatus: entity.VerificationStatus(data.VerificationStatus),
		SuspensionReason:   data.SuspensionReason,
		RejectionReason:    data.RejectionReason,
		CorrectionReason:   data.CorrectionReason,
		Documents:          documents,
		Services:           services,
		IsDeleted:          data.IsDeleted,
		DeletedAt:          data.DeletedAt,
		DeletedBy:          data.DeletedBy,
		UpdatedBy:          data.UpdatedBy,
		Version:            data.Version,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromProviderDomain converts a domain Provider entity to a GORM ProviderModel.
func fromProviderDomain(data *entity.Provider) *model.ProviderModel {
	if data == nil {
		return nil
	}

	documents := make([]model.ProviderDocumentModel, 0, len(data.Documents))
	for i, d := range data.Documents {
		documents = append(documents, model.ProviderDocumentModel{
			ProviderID: data.ID,
			Type:       string(d.Type),
			Number:     d.Number,
			IsPrimary:  d.IsPrimary,
			Position:   i,
		})
	}

	services := make([]model.ProviderServiceModel, 0, len(data.Services))
	for i, s := range data.Services {
		services = append(services, model.ProviderServiceModel{
			ProviderID:  data.ID,
			ServiceID:   s.ServiceID,
			ServiceName: s.ServiceName,
			Position:    i,
		})
	}

	return &model.ProviderModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		Name:               data.Name,
		Type:               string(data.Type),
		Status:             string(data.Status),
		VerificationStatus: string(data.VerificationStatus),
		SuspensionReason:   data.SuspensionReason,
		RejectionReason:    data.RejectionReason,
		CorrectionReason:   data.CorrectionReason,
		IsDeleted:          data.IsDeleted,
		DeletedAt:          data.DeletedAt,
		DeletedBy:          data.DeletedBy,
		UpdatedBy:          data.UpdatedBy,
		Version:            data.Version,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
		Documents:          documents,
		Services:           services,
	}
}
