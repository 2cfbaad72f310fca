package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	uploadOutcomeAccepted = "accepted"
	uploadOutcomeInvalid  = "invalid"
	uploadOutcomeFailed   = "failed"
)

type documentService struct {
	txManager           repository.TransactionManager
	documentRepo        repository.DocumentRepository
	providersAPI        service.ProvidersModuleAPI
	storage             service.BlobStorage
	queue               service.VerificationJobQueue
	notifier            service.ProviderNotifier
	metrics             service.OnboardingMetrics
	maxFileSize         int64
	allowedContentTypes []string
	logger              *slog.Logger
}

// DocumentServiceParams holds dependencies for DocumentService, injected by Fx.
type DocumentServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DocumentRepo repository.DocumentRepository
	ProvidersAPI service.ProvidersModuleAPI
	Storage      service.BlobStorage
	Queue        service.VerificationJobQueue
	Notifier     service.ProviderNotifier
	Metrics      service.OnboardingMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDocumentService is the constructor for documentService.
func NewDocumentService(params DocumentServiceParams) usecase.DocumentUsecase {
	maxFileSize := int64(10 << 20)
	allowed := config.DefaultAllowedContentTypes()
	if params.Config != nil {
		if params.Config.Upload.MaxFileSize > 0 {
			maxFileSize = params.Config.Upload.MaxFileSize
		}
		if len(params.Config.Upload.AllowedContentTypes) > 0 {
			allowed = params.Config.Upload.AllowedContentTypes
		}
	}

	normalized := make([]string, 0, len(allowed))
	for _, ct := range allowed {
		normalized = append(normalized, normalizeContentType(ct))
	}

	return &documentService{
		txManager:           params.TxManager,
		documentRepo:        params.DocumentRepo,
		providersAPI:        params.ProvidersAPI,
		storage:             params.Storage,
		queue:               params.Queue,
		notifier:            params.Notifier,
		metrics:             params.Metrics,
		maxFileSize:         maxFileSize,
		allowedContentTypes: normalized,
		logger:              params.Logger,
	}
}

func (s *documentService) UploadDocument(ctx context.Context, principal entity.Principal, input *usecase.UploadDocumentInput) (*entity.Document, error) {
	docType, contentType, err := s.validateUpload(input)
	if err != nil {
		s.metrics.ObserveUpload(uploadOutcomeInvalid)

		return nil, err
	}

	if err := s.authorizeProvider(ctx, principal, input.ProviderID, "upload document"); err != nil {
		s.metrics.ObserveUpload(uploadOutcomeInvalid)

		return nil, err
	}

	logger := s.getLogger(ctx)
	documentID := uuid.New()
	key := path.Join(input.ProviderID.String(), documentID.String())

	fileURL, err := s.storage.Upload(ctx, key, contentType, input.Content)
	if err != nil {
		logger.Error("failed to store document file",
			slog.String("provider_id", input.ProviderID.String()),
			slog.Any("error", err),
		)
		s.metrics.ObserveUpload(uploadOutcomeFailed)

		return nil, domainerrors.ErrStorageFailed
	}

	document, err := entity.NewDocument(documentID, input.ProviderID, docType, input.FileName, key, fileURL, contentType, input.Size, time.Now().UTC())
	if err == nil {
		err = document.MarkAsPendingVerification()
	}
	if err == nil {
		err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			return factory.NewDocumentRepository().Add(ctx, document)
		})
	}
	if err != nil {
		s.removeFile(ctx, key)
		s.metrics.ObserveUpload(uploadOutcomeFailed)

		return nil, failure(ctx, s.logger, "upload document", err)
	}

	s.enqueue(ctx, document)
	s.metrics.ObserveUpload(uploadOutcomeAccepted)

	logger.Info("document uploaded",
		slog.String("document_id", document.ID.String()),
		slog.String("provider_id", document.ProviderID.String()),
		slog.String("document_type", string(document.DocumentType)),
		slog.String("size", util.FormatBytes(document.FileSize)),
	)

	return document, nil
}

func (s *documentService) GetDocument(ctx context.Context, principal entity.Principal, documentID uuid.UUID) (*entity.Document, error) {
	document, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, failure(ctx, s.logger, "get document", err)
	}

	if err := s.authorizeProvider(ctx, principal, document.ProviderID, "get document"); err != nil {
		return nil, err
	}

	return document, nil
}

func (s *documentService) ListProviderDocuments(ctx context.Context, principal entity.Principal, providerID uuid.UUID) ([]*entity.Document, error) {
	if err := s.authorizeProvider(ctx, principal, providerID, "list documents"); err != nil {
		return nil, err
	}

	documents, err := s.documentRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		return nil, failure(ctx, s.logger, "list documents", err)
	}

	return documents, nil
}

func (s *documentService) RequestVerification(ctx context.Context, principal entity.Principal, documentID uuid.UUID) (*entity.Document, error) {
	document, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, failure(ctx, s.logger, "request verification", err)
	}

	if err := s.authorizeProvider(ctx, principal, document.ProviderID, "request verification"); err != nil {
		return nil, err
	}

	// A document already pending is only re-enqueued; a lost job must not strand it.
	if document.Status != entity.DocumentStatusPendingVerification {
		if err := document.MarkAsPendingVerification(); err != nil {
			return nil, translateDomainError(err)
		}

		if err := s.documentRepo.Update(ctx, document); err != nil {
			return nil, failure(ctx, s.logger, "request verification", err)
		}
	}

	s.enqueue(ctx, document)

	return document, nil
}

func (s *documentService) ApproveDocument(ctx context.Context, principal entity.Principal, documentID uuid.UUID) (*entity.Document, error) {
	if !principal.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	document, err := s.review(ctx, documentID, "approve document", func(d *entity.Document) error {
		return d.MarkAsVerified(d.OcrData)
	})
	if err != nil {
		return nil, err
	}

	s.notifyDocument(ctx, document, "Document verified", "One of your documents was verified.")

	return document, nil
}

func (s *documentService) RejectDocument(ctx context.Context, principal entity.Principal, documentID uuid.UUID, reason string) (*entity.Document, error) {
	reason, err := entity.RequireReason(reason)
	if err != nil {
		return nil, translateDomainError(err)
	}

	if !principal.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	document, err := s.review(ctx, documentID, "reject document", func(d *entity.Document) error {
		return d.MarkAsRejected(reason)
	})
	if err != nil {
		return nil, err
	}

	s.notifyDocument(ctx, document, "Document rejected", reason)

	return document, nil
}

func (s *documentService) review(ctx context.Context, documentID uuid.UUID, op string, fn func(*entity.Document) error) (*entity.Document, error) {
	document, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, failure(ctx, s.logger, op, err)
	}

	if err := fn(document); err != nil {
		return nil, translateDomainError(err)
	}

	if err := s.documentRepo.Update(ctx, document); err != nil {
		return nil, failure(ctx, s.logger, op, err)
	}

	s.getLogger(ctx).Info("document reviewed",
		slog.String("operation", op),
		slog.String("document_id", document.ID.String()),
		slog.String("status", string(document.Status)),
	)

	return document, nil
}

// validateUpload checks the upload constraints in order: document type, file name,
// content type allow-list, then size.
func (s *documentService) validateUpload(input *usecase.UploadDocumentInput) (entity.DocumentType, string, error) {
	if input.ProviderID == uuid.Nil {
		return "", "", domainerrors.ErrValidationFailed.WithMessage("provider id is required")
	}

	docType, err := entity.ParseDocumentType(input.DocumentType)
	if err != nil {
		return "", "", translateDomainError(err)
	}

	if strings.TrimSpace(input.FileName) == "" {
		return "", "", domainerrors.ErrValidationFailed.WithMessage("file name is required")
	}

	contentType := normalizeContentType(input.ContentType)
	if contentType == "" {
		return "", "", domainerrors.ErrValidationFailed.WithMessage("content type is required")
	}

	if !slices.Contains(s.allowedContentTypes, contentType) {
		return "", "", domainerrors.ErrContentTypeNotAllowed.WithMessage(
			fmt.Sprintf("content type %s is not allowed", contentType))
	}

	if input.Size <= 0 || input.Content == nil {
		return "", "", domainerrors.ErrValidationFailed.WithMessage("file is empty")
	}

	if input.Size > s.maxFileSize {
		return "", "", domainerrors.ErrFileTooLarge.WithMessage(
			fmt.Sprintf("file size exceeds the maximum allowed size of %s", util.FormatBytes(s.maxFileSize)))
	}

	return docType, contentType, nil
}

// authorizeProvider asks the providers module who owns the provider and checks that
// the principal owns or administers it.
func (s *documentService) authorizeProvider(ctx context.Context, principal entity.Principal, providerID uuid.UUID, op string) error {
	owner, err := s.providersAPI.ProviderOwner(ctx, providerID)
	if err != nil {
		return failure(ctx, s.logger, op, err)
	}

	if !principal.CanActFor(owner) {
		return domainerrors.ErrForbidden
	}

	return nil
}

// enqueue schedules verification. A failed enqueue leaves the document pending so
// it can be re-queued through RequestVerification.
func (s *documentService) enqueue(ctx context.Context, document *entity.Document) {
	job := &service.VerificationJob{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		DocumentID: document.ID.String(),
		ProviderID: document.ProviderID.String(),
		Attempt:    document.VerificationAttempts,
	}

	if err := s.queue.EnqueueVerification(ctx, job); err != nil {
		s.getLogger(ctx).Error("failed to enqueue document verification",
			slog.String("document_id", job.DocumentID),
			slog.Any("error", err),
		)
	}
}

func (s *documentService) removeFile(ctx context.Context, key string) {
	if err := s.storage.Delete(ctx, key); err != nil {
		s.getLogger(ctx).Warn("failed to remove orphaned document file",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

func (s *documentService) notifyDocument(ctx context.Context, document *entity.Document, title, body string) {
	err := s.notifier.NotifyStatusChange(ctx, &service.ProviderStatusNotification{
		ProviderID: document.ProviderID,
		Title:      title,
		Body:       body,
		Data: map[string]string{
			"document_id":     document.ID.String(),
			"document_status": string(document.Status),
		},
	})
	if err != nil {
		s.getLogger(ctx).Warn("failed to send document notification",
			slog.String("document_id", document.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *documentService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// normalizeContentType drops media type parameters and lowercases the rest.
func normalizeContentType(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")

	return strings.ToLower(strings.TrimSpace(mediaType))
}
