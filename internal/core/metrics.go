package core

import "time"

// Exchange outcome labels recorded per resolve call.
const (
	ExchangeOutcomeCacheHit  = "cache_hit"
	ExchangeOutcomeMinted    = "minted"
	ExchangeOutcomeRefreshed = "refreshed"
	ExchangeOutcomeError     = "error"
)

// Recorder defines the interface for recording application metrics.
// Implementations include Metrics (Prometheus-based) and NoopMetrics (no-op).
type Recorder interface {
	// Exchange operations
	RecordExchange(outcome string, duration time.Duration)

	// Issuer operations ("mint" or "refresh")
	RecordIssuerCall(operation, provider string, success bool, duration time.Duration)

	// Store operations
	RecordMappingWrite(success bool)

	// Gauge setters (for periodic updates)
	SetMappingsCount(total int64)
	SetExpiringMappingsCount(count int64)
}
