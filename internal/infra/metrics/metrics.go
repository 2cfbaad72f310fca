// Package metrics exposes the Prometheus instruments of the onboarding flow.
package metrics

import (
	"net/http"
	"time"

	"marketplace/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sony/gobreaker/v2"
)

// Metrics provides observability for provider activation and document verification.
type Metrics struct {
	Activations          *prometheus.CounterVec
	DocumentsModuleCalls *prometheus.HistogramVec
	Uploads              *prometheus.CounterVec
	Verifications        *prometheus.CounterVec
	BreakerState         *prometheus.GaugeVec
}

// NewRegistry creates a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// New creates the metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Activations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_provider_activations_total",
			Help: "Provider activation attempts by outcome",
		}, []string{"outcome"}),
		DocumentsModuleCalls: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "marketplace_documents_module_call_duration_seconds",
			Help:    "Duration of documents module API calls made during activation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"check", "result"}),
		Uploads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_document_uploads_total",
			Help: "Document upload attempts by outcome",
		}, []string{"outcome"}),
		Verifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_document_verifications_total",
			Help: "Processed verification jobs by decision",
		}, []string{"decision"}),
		BreakerState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "marketplace_circuit_breaker_state",
			Help: "Current state of the circuit breaker (0=closed, 1=half-open, 2=open)",
		}, []string{"name"}),
	}
}

// Handler serves the metrics gathered by reg.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// ObserveActivation records one activation attempt.
func (m *Metrics) ObserveActivation(outcome string) {
	m.Activations.WithLabelValues(outcome).Inc()
}

// ObserveDocumentCheck records the duration of a documents module call.
// Call with time.Now() taken before the call.
func (m *Metrics) ObserveDocumentCheck(check service.DocumentCheck, result string, started time.Time) {
	m.DocumentsModuleCalls.WithLabelValues(string(check), result).Observe(time.Since(started).Seconds())
}

// ObserveUpload records one upload attempt.
func (m *Metrics) ObserveUpload(outcome string) {
	m.Uploads.WithLabelValues(outcome).Inc()
}

// ObserveVerification records one processed verification job.
func (m *Metrics) ObserveVerification(decision string) {
	m.Verifications.WithLabelValues(decision).Inc()
}

// ObserveBreakerState records a circuit breaker state change.
func (m *Metrics) ObserveBreakerState(name string, state gobreaker.State) {
	m.BreakerState.WithLabelValues(name).Set(stateToFloat(state))
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
