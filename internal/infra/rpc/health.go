package rpc

import (
	"sync"
	"time"
)

// HealthStatus represents the observed health of the channel.
type HealthStatus struct {
	Available     bool
	Latency       time.Duration
	ErrorRate     float64
	LastSuccessAt time.Time
	LastFailureAt time.Time
}

// healthTracker accumulates per-call outcomes into a HealthStatus.
// All methods are safe for concurrent use.
type healthTracker struct {
	mu           sync.RWMutex
	health       HealthStatus
	totalLatency time.Duration
	successCount int
	failureCount int
	requestCount int
}

func newHealthTracker() *healthTracker {
	return &healthTracker{
		health: HealthStatus{
			Available:     true,
			LastSuccessAt: time.Now(),
		},
	}
}

// Health returns a snapshot of the current health status.
func (h *healthTracker) Health() HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.health
}

func (h *healthTracker) RecordSuccess(latency time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.successCount++
	h.requestCount++
	h.totalLatency += latency
	h.health.LastSuccessAt = time.Now()
	h.health.Available = true

	if h.requestCount > 0 {
		h.health.ErrorRate = float64(h.failureCount) / float64(h.requestCount)
	}
	if h.successCount > 0 {
		h.health.Latency = h.totalLatency / time.Duration(h.successCount)
	}
}

func (h *healthTracker) RecordFailure() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.failureCount++
	h.requestCount++
	h.health.LastFailureAt = time.Now()

	if h.requestCount > 0 {
		h.health.ErrorRate = float64(h.failureCount) / float64(h.requestCount)
	}

	if h.health.ErrorRate > 0.5 {
		h.health.Available = false
	}
}
