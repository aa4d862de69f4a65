package rpc

import (
	"testing"
	"time"
)

func TestHealthTracker_ErrorRate(t *testing.T) {
	h := newHealthTracker()

	h.RecordSuccess(10 * time.Millisecond)
	h.RecordSuccess(30 * time.Millisecond)
	h.RecordFailure()

	health := h.Health()
	if !health.Available {
		t.Error("expected channel to stay available at 1/3 error rate")
	}

	want := 1.0 / 3.0
	if health.ErrorRate < want-0.001 || health.ErrorRate > want+0.001 {
		t.Errorf("expected error rate ~%.3f, got %.3f", want, health.ErrorRate)
	}

	if health.Latency != 20*time.Millisecond {
		t.Errorf("expected average latency 20ms, got %v", health.Latency)
	}
}

func TestHealthTracker_UnavailableAfterFailures(t *testing.T) {
	h := newHealthTracker()

	h.RecordSuccess(time.Millisecond)
	h.RecordFailure()
	h.RecordFailure()

	if h.Health().Available {
		t.Error("expected channel unavailable once error rate exceeds 0.5")
	}
}
