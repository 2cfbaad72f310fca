package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	verificationSkipped       = "skipped"
	defaultRejectionReason    = "document rejected by automated verification"
	fileUnavailableReason     = "document file could not be read"
	verifierUnavailableReason = "verification service unavailable"
)

type verificationService struct {
	documentRepo repository.DocumentRepository
	storage      service.BlobStorage
	verifier     service.DocumentVerifier
	notifier     service.ProviderNotifier
	metrics      service.OnboardingMetrics
	logger       *slog.Logger
}

// VerificationServiceParams holds dependencies for VerificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	DocumentRepo repository.DocumentRepository
	Storage      service.BlobStorage
	Verifier     service.DocumentVerifier
	Notifier     service.ProviderNotifier
	Metrics      service.OnboardingMetrics
	Logger       *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	return &verificationService{
		documentRepo: params.DocumentRepo,
		storage:      params.Storage,
		verifier:     params.Verifier,
		notifier:     params.Notifier,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

func (s *verificationService) ProcessVerificationJob(ctx context.Context, job *service.VerificationJob) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String(constants.AttributeDocumentID, job.DocumentID),
		slog.Int("attempt", job.Attempt),
	)

	documentID, err := uuid.Parse(job.DocumentID)
	if err != nil {
		return errors.Wrapf(err, "invalid document id %q", job.DocumentID)
	}

	document, err := s.documentRepo.GetByID(ctx, documentID)
	if errors.Is(err, repository.ErrDocumentNotFound) {
		logger.Warn("verification job for unknown document acknowledged")
		s.metrics.ObserveVerification(verificationSkipped)

		return nil
	}
	if err != nil {
		return errors.Wrapf(usecase.ErrRetryableVerification, "load document: %v", err)
	}

	if document.Status != entity.DocumentStatusPendingVerification {
		logger.Info("document not pending verification, skipping",
			slog.String("status", string(document.Status)),
		)
		s.metrics.ObserveVerification(verificationSkipped)

		return nil
	}

	outcome := s.verify(ctx, logger, document)
	if err := applyOutcome(document, outcome); err != nil {
		return errors.Wrap(err, "apply verification outcome")
	}

	if err := s.documentRepo.Update(ctx, document); err != nil {
		return errors.Wrapf(usecase.ErrRetryableVerification, "update document: %v", err)
	}

	s.metrics.ObserveVerification(string(outcome.Decision))
	logger.Info("document verification finished",
		slog.String("decision", string(outcome.Decision)),
		slog.String("status", string(document.Status)),
	)

	if outcome.Decision != service.VerificationDecisionFailed {
		s.notify(ctx, logger, document)
	}

	return nil
}

// verify runs the verifier over the stored file. Problems reaching the file or the
// verifier become a failed outcome so the document can be retried later.
func (s *verificationService) verify(ctx context.Context, logger *slog.Logger, document *entity.Document) *service.VerificationOutcome {
	content, err := s.storage.Open(ctx, document.FileKey)
	if err != nil {
		logger.Error("failed to open document file", slog.Any("error", err))

		return failedOutcome(fileUnavailableReason, err)
	}
	defer content.Close()

	outcome, err := s.verifier.Verify(ctx, document, content)
	if err != nil {
		logger.Error("document verifier failed", slog.Any("error", err))

		return failedOutcome(verifierUnavailableReason, err)
	}

	return outcome
}

func applyOutcome(document *entity.Document, outcome *service.VerificationOutcome) error {
	switch outcome.Decision {
	case service.VerificationDecisionVerified:
		return document.MarkAsVerified(outcome.Data)
	case service.VerificationDecisionRejected:
		reason := outcome.Reason
		if reason == "" {
			reason = defaultRejectionReason
		}

		return document.MarkAsRejected(reason)
	default:
		reason := outcome.Reason
		if reason == "" {
			reason = verifierUnavailableReason
		}

		return document.MarkAsFailed(reason, outcome.Data)
	}
}

func failedOutcome(reason string, cause error) *service.VerificationOutcome {
	diagnostics, _ := json.Marshal(map[string]string{"error": cause.Error()})

	return &service.VerificationOutcome{
		Decision: service.VerificationDecisionFailed,
		Reason:   reason,
		Data:     diagnostics,
	}
}

func (s *verificationService) notify(ctx context.Context, logger *slog.Logger, document *entity.Document) {
	body := "Your document was verified."
	if document.Status == entity.DocumentStatusRejected && document.RejectionReason != nil {
		body = *document.RejectionReason
	}

	err := s.notifier.NotifyStatusChange(ctx, &service.ProviderStatusNotification{
		ProviderID: document.ProviderID,
		Title:      "Document " + string(document.Status),
		Body:       body,
		Data: map[string]string{
			"document_id":     document.ID.String(),
			"document_status": string(document.Status),
		},
	})
	if err != nil {
		logger.Warn("failed to send document notification", slog.Any("error", err))
	}
}
