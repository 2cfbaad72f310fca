package model

import (
	"time"

	"github.com/google/uuid"
)

// ProviderModel is the GORM-specific struct for the 'providers' table.
type ProviderModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_providers_active_user,where:is_deleted = false"`
	Name               string     `gorm:"type:varchar(255);not null"`
	Type               string     `gorm:"type:varchar(32);not null"`
	Status             string     `gorm:"type:varchar(64);not null;index"`
	VerificationStatus string     `gorm:"type:varchar(32);not null"`
	SuspensionReason   *string    `gorm:"type:text"`
	RejectionReason    *string    `gorm:"type:text"`
	CorrectionReason   *string    `gorm:"type:text"`
	IsDeleted          bool       `gorm:"not null;default:false"`
	DeletedAt          *time.Time `gorm:"column:deleted_at"`
	DeletedBy          *uuid.UUID `gorm:"type:uuid"`
	UpdatedBy          *uuid.UUID `gorm:"type:uuid"`
	Version            int64      `gorm:"not null;default:1"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Documents []ProviderDocumentModel `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
	Services  []ProviderServiceModel  `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProviderModel) TableName() string {
	return "providers"
}

// ProviderDocumentModel is the GORM-specific struct for the 'provider_documents' table.
type ProviderDocumentModel struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type       string    `gorm:"type:varchar(32);not null"`
	Number     string    `gorm:"type:varchar(32);not null"`
	IsPrimary  bool      `gorm:"not null;default:false"`
	Position   int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProviderDocumentModel) TableName() string {
	return "provider_documents"
}

// ProviderServiceModel is the GORM-specific struct for the 'provider_services' table.
type ProviderServiceModel struct {
	ProviderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceName string    `gorm:"type:varchar(255);not null"`
	Position    int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProviderServiceModel) TableName() string {
	return "provider_services"
}
