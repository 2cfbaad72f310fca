package service

import (
	"context"
	"encoding/json"
	"io"

	"marketplace/internal/domain/entity"
)

// VerificationDecision is the verdict of a verifier run.
type VerificationDecision string

const (
	VerificationDecisionVerified VerificationDecision = "verified"
	VerificationDecisionRejected VerificationDecision = "rejected"
	VerificationDecisionFailed   VerificationDecision = "failed"
)

// VerificationOutcome carries the verdict, a reason for non-verified verdicts and
// the data extracted from the file.
type VerificationOutcome struct {
	Decision VerificationDecision
	Reason   string
	Data     json.RawMessage
}

// DocumentVerifier inspects a document file. A returned error means the verifier
// itself could not run; the document is then marked failed and may be retried.
type DocumentVerifier interface {
	Verify(ctx context.Context, document *entity.Document, content io.Reader) (*VerificationOutcome, error)
}
