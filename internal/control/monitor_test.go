package control

import (
	"context"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vietddude/keyctl/internal/core/domain"
)

func TestMonitor_StateTransitions(t *testing.T) {
	var mu sync.Mutex
	up := true

	fake := &fakeChannel{
		statusFn: func(ctx context.Context) (*domain.Status, error) {
			mu.Lock()
			defer mu.Unlock()
			if up {
				return &domain.Status{DaemonVersion: "test"}, nil
			}
			return nil, status.Error(codes.Unavailable, "connection refused")
		},
	}

	m := NewMonitor(NewProber(fake, 50*time.Millisecond), 0, time.Second)
	ctx := context.Background()

	if m.State() != AvailabilityUnknown {
		t.Fatalf("expected initial state unknown, got %s", m.State())
	}

	m.check(ctx)
	if m.State() != AvailabilityUp {
		t.Errorf("expected up after healthy probe, got %s", m.State())
	}

	mu.Lock()
	up = false
	mu.Unlock()

	m.check(ctx)
	if m.State() != AvailabilityDown {
		t.Errorf("expected down after failed probe, got %s", m.State())
	}

	mu.Lock()
	up = true
	mu.Unlock()

	m.check(ctx)
	if m.State() != AvailabilityUp {
		t.Errorf("expected recovery to up, got %s", m.State())
	}
}
