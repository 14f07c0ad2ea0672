package metrics

import (
	"time"

	"github.com/DominikMe/acs-token-exchange/internal/core"
)

// Ensure NoopMetrics implements Recorder interface at compile time
var _ core.Recorder = (*NoopMetrics)(nil)

// NoopMetrics is a no-op implementation of Recorder used when metrics are
// disabled. All methods do nothing.
type NoopMetrics struct{}

// NewNoopMetrics creates a new no-op metrics recorder
func NewNoopMetrics() *NoopMetrics {
	return &NoopMetrics{}
}

func (n *NoopMetrics) RecordExchange(outcome string, duration time.Duration) {}

func (n *NoopMetrics) RecordIssuerCall(operation, provider string, success bool, duration time.Duration) {
}

func (n *NoopMetrics) RecordMappingWrite(success bool) {}

func (n *NoopMetrics) SetMappingsCount(total int64) {}

func (n *NoopMetrics) SetExpiringMappingsCount(count int64) {}
