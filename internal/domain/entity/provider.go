package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ProviderType distinguishes natural persons from companies.
type ProviderType string

const (
	ProviderTypeIndividual ProviderType = "individual"
	ProviderTypeCompany    ProviderType = "company"
)

// IsValid checks if the ProviderType is a valid value.
func (t ProviderType) IsValid() bool {
	return t == ProviderTypeIndividual || t == ProviderTypeCompany
}

// ProviderStatus is the lifecycle state of a provider account.
type ProviderStatus string

const (
	ProviderStatusPendingBasicInfo            ProviderStatus = "pending_basic_info"
	ProviderStatusPendingDocumentVerification ProviderStatus = "pending_document_verification"
	ProviderStatusActive                      ProviderStatus = "active"
	ProviderStatusSuspended                   ProviderStatus = "suspended"
	ProviderStatusRejected                    ProviderStatus = "rejected"
)

// IsValid checks if the ProviderStatus is a valid value.
func (s ProviderStatus) IsValid() bool {
	switch s {
	case ProviderStatusPendingBasicInfo, ProviderStatusPendingDocumentVerification,
		ProviderStatusActive, ProviderStatusSuspended, ProviderStatusRejected:
		return true
	default:
		return false
	}
}

// VerificationStatus is the administrative view of a provider's status.
type VerificationStatus string

const (
	VerificationStatusPending   VerificationStatus = "pending"
	VerificationStatusVerified  VerificationStatus = "verified"
	VerificationStatusRejected  VerificationStatus = "rejected"
	VerificationStatusSuspended VerificationStatus = "suspended"
)

// VerificationStatusFor derives the verification status that accompanies a lifecycle status.
func VerificationStatusFor(status ProviderStatus) VerificationStatus {
	switch status {
	case ProviderStatusActive:
		return VerificationStatusVerified
	case ProviderStatusRejected:
		return VerificationStatusRejected
	case ProviderStatusSuspended:
		return VerificationStatusSuspended
	default:
		return VerificationStatusPending
	}
}

// Provider is a service-provider account and the aggregate root of the providers module.
// It owns its document references and offered services; the verification artifacts
// themselves belong to the documents module.
type Provider struct {
	ID                 uuid.UUID          `json:"id"`
	UserID             uuid.UUID          `json:"user_id"`
	Name               string             `json:"name"`
	Type               ProviderType       `json:"type"`
	Status             ProviderStatus     `json:"status"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	SuspensionReason   *string            `json:"suspension_reason,omitempty"`
	RejectionReason    *string            `json:"rejection_reason,omitempty"`
	CorrectionReason   *string            `json:"correction_reason,omitempty"`
	Documents          []ProviderDocument `json:"documents"`
	Services           []ProviderService  `json:"services"`
	IsDeleted          bool               `json:"is_deleted"`
	DeletedAt          *time.Time         `json:"deleted_at,omitempty"`
	DeletedBy          *uuid.UUID         `json:"deleted_by,omitempty"`
	UpdatedBy          *uuid.UUID         `json:"updated_by,omitempty"`
	Version            int64              `json:"version"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// NewProvider creates a provider in the initial PendingBasicInfo state.
func NewProvider(userID uuid.UUID, name string, providerType ProviderType, now time.Time) (*Provider, error) {
	if userID == uuid.Nil {
		return nil, errors.Wrap(ErrInvalidInput, "user id is required")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Wrap(ErrInvalidInput, "provider name is required")
	}

	if !providerType.IsValid() {
		return nil, errors.Wrapf(ErrInvalidInput, "unknown provider type %q", providerType)
	}

	return &Provider{
		ID:                 uuid.New(),
		UserID:             userID,
		Name:               name,
		Type:               providerType,
		Status:             ProviderStatusPendingBasicInfo,
		VerificationStatus: VerificationStatusPending,
		Documents:          []ProviderDocument{},
		Services:           []ProviderService{},
		Version:            1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

// CompleteBasicInfo moves the provider from PendingBasicInfo to PendingDocumentVerification.
func (p *Provider) CompleteBasicInfo(actor uuid.UUID) error {
	if err := p.transition(ProviderStatusPendingBasicInfo, ProviderStatusPendingDocumentVerification, "complete basic info for"); err != nil {
		return err
	}
	p.CorrectionReason = nil
	p.touch(actor)

	return nil
}

// Activate moves the provider from PendingDocumentVerification to Active.
// Document checks against the documents module happen before this call.
func (p *Provider) Activate(actor uuid.UUID) error {
	if err := p.transition(ProviderStatusPendingDocumentVerification, ProviderStatusActive, "activate"); err != nil {
		return err
	}
	p.RejectionReason = nil
	p.SuspensionReason = nil
	p.touch(actor)

	return nil
}

// Reject moves the provider from PendingDocumentVerification to Rejected.
func (p *Provider) Reject(actor uuid.UUID, reason string) error {
	reason, err := RequireReason(reason)
	if err != nil {
		return err
	}

	if err := p.transition(ProviderStatusPendingDocumentVerification, ProviderStatusRejected, "reject"); err != nil {
		return err
	}
	p.RejectionReason = &reason
	p.touch(actor)

	return nil
}

// Suspend moves the provider from Active to Suspended.
func (p *Provider) Suspend(actor uuid.UUID, reason string) error {
	reason, err := RequireReason(reason)
	if err != nil {
		return err
	}

	if err := p.transition(ProviderStatusActive, ProviderStatusSuspended, "suspend"); err != nil {
		return err
	}
	p.SuspensionReason = &reason
	p.touch(actor)

	return nil
}

// RequireBasicInfoCorrection returns the provider from PendingDocumentVerification
// to PendingBasicInfo so the owner can fix the submitted data.
func (p *Provider) RequireBasicInfoCorrection(actor uuid.UUID, reason string) error {
	reason, err := RequireReason(reason)
	if err != nil {
		return err
	}

	if err := p.transition(ProviderStatusPendingDocumentVerification, ProviderStatusPendingBasicInfo, "require basic info correction for"); err != nil {
		return err
	}
	p.CorrectionReason = &reason
	p.touch(actor)

	return nil
}

// Delete soft-deletes the provider. Status is left untouched.
func (p *Provider) Delete(actor uuid.UUID, at time.Time) error {
	if err := p.ensureMutable(); err != nil {
		return err
	}

	p.IsDeleted = true
	p.DeletedAt = &at
	p.DeletedBy = &actor
	p.UpdatedBy = &actor
	p.UpdatedAt = at

	return nil
}

// AddDocument attaches a document reference. A second document of the same type is
// refused unless replace is set. The first document of a type is always primary.
func (p *Provider) AddDocument(actor uuid.UUID, doc ProviderDocument, replace bool) error {
	if err := p.ensureMutable(); err != nil {
		return err
	}

	idx := p.documentIndex(doc.Type)
	if idx >= 0 {
		if !replace {
			return errors.Wrapf(ErrDocumentTypeExists, "document of type %s already exists", doc.Type)
		}
		doc.IsPrimary = doc.IsPrimary || p.Documents[idx].IsPrimary
		p.Documents[idx] = doc
		p.touch(actor)

		return nil
	}

	doc.IsPrimary = true
	p.Documents = append(p.Documents, doc)
	p.touch(actor)

	return nil
}

// RemoveDocument detaches the document reference of the given type.
func (p *Provider) RemoveDocument(actor uuid.UUID, docType ProviderDocumentType) error {
	if err := p.ensureMutable(); err != nil {
		return err
	}

	idx := p.documentIndex(docType)
	if idx < 0 {
		return errors.Wrapf(ErrProviderDocumentNotFound, "no document of type %s", docType)
	}

	p.Documents = append(p.Documents[:idx], p.Documents[idx+1:]...)
	p.touch(actor)

	return nil
}

// SetPrimaryDocument marks the first document of the given type as primary and clears
// the flag on any other document of that type. Other types keep their flags.
func (p *Provider) SetPrimaryDocument(actor uuid.UUID, docType ProviderDocumentType) error {
	if err := p.ensureMutable(); err != nil {
		return err
	}

	idx := p.documentIndex(docType)
	if idx < 0 {
		return errors.Wrapf(ErrProviderDocumentNotFound, "no document of type %s", docType)
	}

	for i := range p.Documents {
		if p.Documents[i].Type == docType {
			p.Documents[i].IsPrimary = i == idx
		}
	}
	p.touch(actor)

	return nil
}

// PrimaryDocument returns the primary document of the given type, if any.
func (p *Provider) PrimaryDocument(docType ProviderDocumentType) (ProviderDocument, bool) {
	for _, doc := range p.Documents {
		if doc.Type == docType && doc.IsPrimary {
			return doc, true
		}
	}

	return ProviderDocument{}, false
}

// AddService adds an offered service.
func (p *Provider) AddService(actor uuid.UUID, serviceID uuid.UUID, serviceName string) error {
	if err := p.ensureMutable(); err != nil {
		return err
	}

	if serviceID == uuid.Nil {
		return errors.Wrap(ErrInvalidInput, "service id is required")
	}

	serviceName = strings.TrimSpace(serviceName)
	if serviceName == "" {
		return errors.Wrap(ErrInvalidInput, "service name is required")
	}

	if p.serviceIndex(serviceID) >= 0 {
		return errors.Wrapf(ErrServiceAlreadyOffered, "service %s already offered", serviceID)
	}

	p.Services = append(p.Services, ProviderService{ServiceID: serviceID, ServiceName: serviceName})
	p.touch(actor)

	return nil
}

// RemoveService removes an offered service.
func (p *Provider) RemoveService(actor uuid.UUID, serviceID uuid.UUID) error {
	if err := p.ensureMutable(); err != nil {
		return err
	}

	idx := p.serviceIndex(serviceID)
	if idx < 0 {
		return errors.Wrapf(ErrProviderServiceNotFound, "service %s not offered", serviceID)
	}

	p.Services = append(p.Services[:idx], p.Services[idx+1:]...)
	p.touch(actor)

	return nil
}

// RequireReason trims a transition reason and refuses blank values.
func RequireReason(reason string) (string, error) {
	trimmed := strings.TrimSpace(reason)
	if trimmed == "" {
		return "", ErrReasonRequired
	}

	return trimmed, nil
}

// CanActivate reports whether Activate would be accepted in the current status.
func (p *Provider) CanActivate() error {
	return p.expectStatus(ProviderStatusPendingDocumentVerification, "activate")
}

func (p *Provider) expectStatus(from ProviderStatus, action string) error {
	if err := p.ensureMutable(); err != nil {
		return err
	}

	if p.Status != from {
		return errors.Wrapf(ErrInvalidTransition, "cannot %s provider in status %s", action, p.Status)
	}

	return nil
}

func (p *Provider) transition(from, to ProviderStatus, action string) error {
	if err := p.expectStatus(from, action); err != nil {
		return err
	}

	p.Status = to
	p.VerificationStatus = VerificationStatusFor(to)

	return nil
}

func (p *Provider) ensureMutable() error {
	if p.IsDeleted {
		return errors.Wrapf(ErrProviderDeleted, "provider %s", p.ID)
	}

	return nil
}

func (p *Provider) touch(actor uuid.UUID) {
	p.UpdatedBy = &actor
	p.UpdatedAt = time.Now().UTC()
}

func (p *Provider) documentIndex(docType ProviderDocumentType) int {
	for i, doc := range p.Documents {
		if doc.Type == docType {
			return i
		}
	}

	return -1
}

func (p *Provider) serviceIndex(serviceID uuid.UUID) int {
	for i, svc := range p.Services {
		if svc.ServiceID == serviceID {
			return i
		}
	}

	return -1
}
