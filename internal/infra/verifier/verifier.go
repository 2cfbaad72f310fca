package verifier

import (
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/httpclient"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const ocrBreakerName = "ocr"

// Params holds dependencies for DocumentVerifier, injected by Fx
type Params struct {
	fx.In

	Config   *config.Config
	Observer httpclient.BreakerObserver
	Logger   *slog.Logger
}

// NewDocumentVerifier selects the verifier named in the configuration.
func NewDocumentVerifier(params Params) (service.DocumentVerifier, error) {
	cfg := params.Config

	switch cfg.Verification.Verifier {
	case "", constants.VerifierContent:
		params.Logger.Info("Using content verifier")

		return NewContentVerifier(cfg.Upload.MaxFileSize, cfg.Upload.AllowedContentTypes), nil
	case constants.VerifierOCR:
		ocr := cfg.Verification.OCR
		if ocr.Endpoint == "" {
			return nil, errors.New("ocr endpoint is required for ocr verifier")
		}
		params.Logger.Info("Using OCR verifier", slog.String("endpoint", ocr.Endpoint))

		client := httpclient.NewCircuitBreakerClient(ocrBreakerName, ocr.Timeout, ocr.Breaker, params.Observer, params.Logger)

		return NewOCRVerifier(client, ocr.Endpoint, ocr.APIKey), nil
	default:
		return nil, errors.Errorf("unknown verifier: %s", cfg.Verification.Verifier)
	}
}

// Module provides the verifier FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewDocumentVerifier),
)
