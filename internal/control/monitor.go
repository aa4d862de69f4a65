package control

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Availability is the monitor's view of the daemon.
type Availability string

const (
	AvailabilityUnknown Availability = "unknown"
	AvailabilityUp      Availability = "up"
	AvailabilityDown    Availability = "down"
)

// Monitor periodically probes daemon availability and serves health and
// metrics endpoints for long-running use. It probes through a Prober
// rather than a session so a daemon restart is observed as a recovery;
// the one-shot session contract stays untouched.
type Monitor struct {
	prober   *Prober
	interval time.Duration
	server   *http.Server

	mu          sync.RWMutex
	state       Availability
	lastChange  time.Time
	lastProbeAt time.Time
}

// NewMonitor creates a monitor serving /healthz and /metrics on the
// given port.
func NewMonitor(prober *Prober, port int, interval time.Duration) *Monitor {
	mux := http.NewServeMux()
	m := &Monitor{
		prober:   prober,
		interval: interval,
		state:    AvailabilityUnknown,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		},
	}

	mux.HandleFunc("/healthz", m.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())

	return m
}

// Run probes until the context is cancelled, then shuts the HTTP server
// down gracefully.
func (m *Monitor) Run(ctx context.Context) error {
	go func() {
		if err := m.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Monitor server failed", "error", err)
		}
	}()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.check(ctx)
	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return m.server.Shutdown(shutdownCtx)
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

// State returns the last observed availability.
func (m *Monitor) State() Availability {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Monitor) check(ctx context.Context) {
	_, err := m.prober.ProbeStatus(ctx)
	if ctx.Err() != nil {
		return
	}

	next := AvailabilityUp
	if err != nil {
		next = AvailabilityDown
	}

	m.mu.Lock()
	prev := m.state
	m.state = next
	m.lastProbeAt = time.Now()
	if next != prev {
		m.lastChange = m.lastProbeAt
	}
	m.mu.Unlock()

	if next != prev {
		if next == AvailabilityUp {
			slog.Info("keymapd reachable", "previous", prev)
		} else {
			slog.Warn("keymapd unreachable", "previous", prev, "error", err)
		}
	}
}

func (m *Monitor) handleHealth(w http.ResponseWriter, r *http.Request) {
	m.mu.RLock()
	state := m.state
	lastProbeAt := m.lastProbeAt
	lastChange := m.lastChange
	m.mu.RUnlock()

	response := map[string]string{
		"daemon":      string(state),
		"last_probe":  lastProbeAt.Format(time.RFC3339),
		"last_change": lastChange.Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")

	if state == AvailabilityDown {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	_ = json.NewEncoder(w).Encode(response)
}
