// Package httpclient provides the outbound HTTP client used for calls to other
// modules and external services.
package httpclient

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"marketplace/config"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker/v2"
)

// ErrCircuitOpen is returned when the breaker rejects a request without sending it.
var ErrCircuitOpen = gobreaker.ErrOpenState

// BreakerObserver records breaker state transitions.
type BreakerObserver interface {
	ObserveBreakerState(name string, state gobreaker.State)
}

// ServerError is returned for 5xx responses, which count as breaker failures.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return "server error " + strconv.Itoa(e.StatusCode) + ": " + e.Body
}

// CircuitBreakerClient sends requests through a gobreaker instance.
type CircuitBreakerClient struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*http.Response]
	name       string
}

// NewCircuitBreakerClient builds a client with its own transport and breaker.
// A zero breaker config falls back to DefaultBreakerConfig.
func NewCircuitBreakerClient(name string, timeout time.Duration, cbCfg config.CircuitBreakerConfig, observer BreakerObserver, logger *slog.Logger) *CircuitBreakerClient {
	if cbCfg == (config.CircuitBreakerConfig{}) {
		cbCfg = DefaultBreakerConfig()
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cbCfg.MaxRequests,
		Interval:    cbCfg.Interval,
		Timeout:     cbCfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cbCfg.MinRequests {
				return false
			}

			return float64(counts.TotalFailures)/float64(counts.Requests) >= cbCfg.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			if observer != nil {
				observer.ObserveBreakerState(name, to)
			}
		},
	}

	if observer != nil {
		observer.ObserveBreakerState(name, gobreaker.StateClosed)
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}

	return &CircuitBreakerClient{
		httpClient: &http.Client{Transport: transport, Timeout: timeout},
		breaker:    gobreaker.NewCircuitBreaker[*http.Response](settings),
		name:       name,
	}
}

// DefaultBreakerConfig trips after half of at least five requests fail and
// tries again after thirty seconds.
func DefaultBreakerConfig() config.CircuitBreakerConfig {
	return config.CircuitBreakerConfig{
		MaxRequests:  1,
		Interval:     60 * time.Second,
		Timeout:      30 * time.Second,
		FailureRatio: 0.5,
		MinRequests:  5,
	}
}

// Do executes the request through the breaker. Transport errors and 5xx
// responses count as failures; 5xx bodies are consumed and returned as ServerError.
func (c *CircuitBreakerClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		resp, err := c.httpClient.Do(req.WithContext(ctx))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
			_ = resp.Body.Close()

			return nil, &ServerError{StatusCode: resp.StatusCode, Body: string(body)}
		}

		return resp, nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "%s request failed", c.name)
	}

	return resp, nil
}

// State returns the current state of the circuit breaker.
func (c *CircuitBreakerClient) State() gobreaker.State {
	return c.breaker.State()
}
