// Package documents reaches the documents module over its internal HTTP API.
package documents

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"marketplace/config"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/httpclient"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const breakerName = "documents-module"

// CheckResponse is the body of a successful check call. Result is a pointer so a
// reply without it is told apart from a false answer.
type CheckResponse struct {
	Data *struct {
		Result *bool `json:"result"`
	} `json:"data"`
}

type errorResponse struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client implements DocumentsModuleAPI with HTTP calls guarded by a circuit breaker.
type Client struct {
	http         *httpclient.CircuitBreakerClient
	baseURL      string
	serviceToken string
}

// NewClient builds the RPC client from the documents module configuration.
func NewClient(cfg config.DocumentsModuleConfig, observer httpclient.BreakerObserver, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("documents module base URL is required for http mode")
	}

	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, errors.Wrap(err, "invalid documents module base URL")
	}

	return &Client{
		http:         httpclient.NewCircuitBreakerClient(breakerName, cfg.Timeout, cfg.Breaker, observer, logger),
		baseURL:      cfg.BaseURL,
		serviceToken: cfg.ServiceToken,
	}, nil
}

// HasRequiredDocuments calls the required check.
func (c *Client) HasRequiredDocuments(ctx context.Context, providerID uuid.UUID) (bool, error) {
	return c.check(ctx, providerID, service.DocumentCheckRequired)
}

// HasVerifiedDocuments calls the verified check.
func (c *Client) HasVerifiedDocuments(ctx context.Context, providerID uuid.UUID) (bool, error) {
	return c.check(ctx, providerID, service.DocumentCheckVerified)
}

// HasPendingDocuments calls the pending check.
func (c *Client) HasPendingDocuments(ctx context.Context, providerID uuid.UUID) (bool, error) {
	return c.check(ctx, providerID, service.DocumentCheckPending)
}

// HasRejectedDocuments calls the rejected check.
func (c *Client) HasRejectedDocuments(ctx context.Context, providerID uuid.UUID) (bool, error) {
	return c.check(ctx, providerID, service.DocumentCheckRejected)
}

func (c *Client) check(ctx context.Context, providerID uuid.UUID, check service.DocumentCheck) (bool, error) {
	endpoint, err := url.JoinPath(c.baseURL, "internal", "documents", "providers", providerID.String(), "checks", string(check))
	if err != nil {
		return false, errors.Wrap(err, "failed to build documents module URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if c.serviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.serviceToken)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return false, errors.Wrap(err, "failed to read documents module response")
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != nil {
			return false, errors.Errorf("documents module returned %d %s: %s", resp.StatusCode, errResp.Error.Code, errResp.Error.Message)
		}

		return false, errors.Errorf("documents module returned %d", resp.StatusCode)
	}

	var checkResp CheckResponse
	if err := json.Unmarshal(body, &checkResp); err != nil {
		return false, errors.Wrap(err, "failed to decode documents module response")
	}

	if checkResp.Data == nil || checkResp.Data.Result == nil {
		return false, errors.Errorf("documents module response for %s check has no result", check)
	}

	return *checkResp.Data.Result, nil
}
