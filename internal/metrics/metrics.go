package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/DominikMe/acs-token-exchange/internal/core"
)

// Ensure Metrics implements Recorder interface at compile time
var _ core.Recorder = (*Metrics)(nil)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// Exchange Metrics
	ExchangesTotal   *prometheus.CounterVec
	ExchangeDuration *prometheus.HistogramVec

	// Issuer Metrics
	IssuerCallsTotal   *prometheus.CounterVec
	IssuerCallDuration *prometheus.HistogramVec

	// Store Metrics
	MappingWritesTotal *prometheus.CounterVec

	// Gauges (updated periodically)
	MappingsTotal    prometheus.Gauge
	MappingsExpiring prometheus.Gauge

	// HTTP Request Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
}

var (
	defaultMetrics *Metrics
	once           sync.Once
)

// Init initializes metrics based on enabled flag.
// If enabled=true, returns Prometheus-based Metrics.
// If enabled=false, returns NoopMetrics (zero overhead).
// Uses sync.Once to ensure Prometheus metrics are only registered once.
func Init(enabled bool) core.Recorder {
	if !enabled {
		return NewNoopMetrics()
	}

	once.Do(func() {
		defaultMetrics = initMetrics()
	})
	return defaultMetrics
}

// initMetrics creates and registers all Prometheus metrics
func initMetrics() *Metrics {
	return &Metrics{
		ExchangesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "token_exchanges_total",
				Help: "Total number of token exchange requests",
			},
			[]string{"outcome"}, // cache_hit, minted, refreshed, error
		),
		ExchangeDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "token_exchange_duration_seconds",
				Help:    "Duration of token exchange requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		IssuerCallsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "issuer_calls_total",
				Help: "Total number of identity service calls",
			},
			[]string{"operation", "provider", "result"},
		),
		IssuerCallDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "issuer_call_duration_seconds",
				Help:    "Duration of identity service calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "provider"},
		),
		MappingWritesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "user_mapping_writes_total",
				Help: "Total number of user mapping upserts",
			},
			[]string{"result"},
		),
		MappingsTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "user_mappings_total",
				Help: "Number of persisted user mappings",
			},
		),
		MappingsExpiring: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "user_mappings_expiring",
				Help: "Number of mappings whose token expires within the minimum-validity window",
			},
		),
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
	}
}

const (
	resultSuccess = "success"
	resultError   = "error"
)

func resultLabel(success bool) string {
	if success {
		return resultSuccess
	}
	return resultError
}

// RecordExchange records one resolve call by outcome.
func (m *Metrics) RecordExchange(outcome string, duration time.Duration) {
	m.ExchangesTotal.WithLabelValues(outcome).Inc()
	m.ExchangeDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordIssuerCall records one mint or refresh call against the issuer.
func (m *Metrics) RecordIssuerCall(
	operation, provider string,
	success bool,
	duration time.Duration,
) {
	m.IssuerCallsTotal.WithLabelValues(operation, provider, resultLabel(success)).Inc()
	m.IssuerCallDuration.WithLabelValues(operation, provider).Observe(duration.Seconds())
}

// RecordMappingWrite records one upsert to the identity store.
func (m *Metrics) RecordMappingWrite(success bool) {
	m.MappingWritesTotal.WithLabelValues(resultLabel(success)).Inc()
}

// SetMappingsCount updates the total mappings gauge.
func (m *Metrics) SetMappingsCount(total int64) {
	m.MappingsTotal.Set(float64(total))
}

// SetExpiringMappingsCount updates the expiring mappings gauge.
func (m *Metrics) SetExpiringMappingsCount(count int64) {
	m.MappingsExpiring.Set(float64(count))
}
