package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DocumentModel is the GORM-specific struct for the 'documents' table.
type DocumentModel struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ProviderID           uuid.UUID      `gorm:"type:uuid;not null;index:idx_documents_provider"`
	DocumentType         string         `gorm:"type:varchar(64);not null"`
	FileName             string         `gorm:"type:varchar(255);not null"`
	FileKey              string         `gorm:"type:varchar(512);not null"`
	FileURL              string         `gorm:"type:text"`
	ContentType          string         `gorm:"type:varchar(128);not null"`
	FileSize             int64          `gorm:"not null"`
	Status               string         `gorm:"type:varchar(32);not null;index"`
	OcrData              datatypes.JSON `gorm:"column:ocr_data"`
	RejectionReason      *string        `gorm:"type:text"`
	FailureReason        *string        `gorm:"type:text"`
	VerificationAttempts int            `gorm:"not null;default:0"`
	UploadedAt           time.Time      `gorm:"not null"`
	VerifiedAt           *time.Time
	UpdatedAt            time.Time
	Version              int64 `gorm:"not null;default:1"`
}

// TableName explicitly sets the table name for GORM.
func (DocumentModel) TableName() string {
	return "documents"
}

// All returns every model managed by the persistence layer, in migration order.
func All() []any {
	return []any{
		&ProviderModel{},
		&ProviderDocumentModel{},
		&ProviderServiceModel{},
		&DocumentModel{},
	}
}
