package entity

import "github.com/pkg/errors"

// Errors raised by aggregate methods. Callers wrap-check them with errors.Is.
var (
	ErrInvalidTransition        = errors.New("invalid state transition")
	ErrReasonRequired           = errors.New("reason is required")
	ErrProviderDeleted          = errors.New("provider is deleted")
	ErrInvalidInput             = errors.New("invalid input")
	ErrInvalidDocumentNumber    = errors.New("invalid document number")
	ErrDocumentTypeExists       = errors.New("document type already exists")
	ErrProviderDocumentNotFound = errors.New("provider document not found")
	ErrServiceAlreadyOffered    = errors.New("service already offered")
	ErrProviderServiceNotFound  = errors.New("provider service not found")
)
