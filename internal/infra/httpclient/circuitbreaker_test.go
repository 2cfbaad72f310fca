package httpclient

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"marketplace/config"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testBreakerConfig() config.CircuitBreakerConfig {
	return config.CircuitBreakerConfig{
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		FailureRatio: 0.5,
		MinRequests:  3,
	}
}

type recordingObserver struct {
	states []gobreaker.State
}

func (o *recordingObserver) ObserveBreakerState(_ string, state gobreaker.State) {
	o.states = append(o.states, state)
}

func get(t *testing.T, client *CircuitBreakerClient, url string) (*http.Response, error) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	require.NoError(t, err)

	return client.Do(context.Background(), req)
}

func TestCircuitBreakerClient_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	observer := &recordingObserver{}
	client := NewCircuitBreakerClient("test", time.Second, testBreakerConfig(), observer, testLogger())

	resp, err := get(t, client, server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, gobreaker.StateClosed, client.State())
	assert.Equal(t, []gobreaker.State{gobreaker.StateClosed}, observer.states)
}

func TestCircuitBreakerClient_ClientErrorsDoNotTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewCircuitBreakerClient("test", time.Second, testBreakerConfig(), nil, testLogger())

	for range 5 {
		resp, err := get(t, client, server.URL)
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, gobreaker.StateClosed, client.State())
}

func TestCircuitBreakerClient_TripsOnServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	observer := &recordingObserver{}
	client := NewCircuitBreakerClient("test", time.Second, testBreakerConfig(), observer, testLogger())

	for range 3 {
		_, err := get(t, client, server.URL)
		var serverErr *ServerError
		require.True(t, errors.As(err, &serverErr))
		assert.Equal(t, http.StatusInternalServerError, serverErr.StatusCode)
	}

	assert.Equal(t, gobreaker.StateOpen, client.State())
	assert.Contains(t, observer.states, gobreaker.StateOpen)

	_, err := get(t, client, server.URL)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(3), calls.Load())
}

func TestCircuitBreakerClient_ZeroConfigUsesDefaults(t *testing.T) {
	client := NewCircuitBreakerClient("test", time.Second, config.CircuitBreakerConfig{}, nil, testLogger())
	assert.Equal(t, gobreaker.StateClosed, client.State())
}
