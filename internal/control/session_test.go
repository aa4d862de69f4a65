package control

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vietddude/keyctl/internal/core/domain"
)

func TestEnsureConnected_SingleConnectAttempt(t *testing.T) {
	// The connect call is slow so all goroutines pile up on the Once.
	fake := &fakeChannel{
		connectAnyFn: func(ctx context.Context) error {
			time.Sleep(50 * time.Millisecond)
			return nil
		},
	}
	client := New(fake)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.Keyboards(ctx); err != nil {
				t.Errorf("Keyboards failed: %v", err)
			}
		}()
	}
	wg.Wait()

	connectAny, _, _, _ := fake.counts()
	if connectAny != 1 {
		t.Errorf("expected exactly 1 connect attempt, got %d", connectAny)
	}
}

func TestEnsureConnected_BenignAlreadyConnected(t *testing.T) {
	// Mixed case on purpose: matching must be case-insensitive.
	fake := &fakeChannel{
		connectAnyErr: status.Error(codes.FailedPrecondition, "Keyboard ALREADY Connected"),
	}
	client := New(fake)

	res, err := client.ConnectAny(context.Background())
	if err != nil {
		t.Fatalf("ConnectAny failed: %v", err)
	}
	if !res.Connected {
		t.Error("expected already-connected to normalize to Connected=true")
	}
	if !client.sess.isConnected() {
		t.Error("expected session to be connected after benign outcome")
	}
}

func TestEnsureConnected_BenignNoKeyboard(t *testing.T) {
	fake := &fakeChannel{
		connectAnyErr: status.Error(codes.NotFound, "no keyboard available to connect"),
	}
	client := New(fake)

	res, err := client.ConnectAny(context.Background())
	if err != nil {
		t.Fatalf("ConnectAny failed: %v", err)
	}
	if res.Connected {
		t.Error("expected no-keyboard to normalize to Connected=false")
	}
	if !client.sess.isConnected() {
		t.Error("expected session connected: the daemon is reachable")
	}
}

func TestEnsureConnected_GenuineFailure(t *testing.T) {
	fake := &fakeChannel{
		connectAnyErr: status.Error(codes.Unavailable, "connection refused"),
	}
	client := New(fake)
	ctx := context.Background()

	// First caller gets the synthetic unavailable error.
	_, err := client.Keyboards(ctx)
	if !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
	if client.sess.isConnected() {
		t.Error("expected session to remain not-connected")
	}

	// Later callers get ErrNotConnected without a new network attempt.
	if err := client.SetLayer(ctx, 1); !errors.Is(err, domain.ErrNotConnected) {
		t.Errorf("expected ErrNotConnected on later call, got %v", err)
	}

	connectAny, _, _, _ := fake.counts()
	if connectAny != 1 {
		t.Errorf("expected no reconnect attempt, got %d connect calls", connectAny)
	}
}

func TestEnsureConnected_ConnectTimeout(t *testing.T) {
	// The transport never answers; the connect budget must cut it off.
	fake := &fakeChannel{
		connectAnyFn: func(ctx context.Context) error {
			<-ctx.Done()
			return status.FromContextError(ctx.Err()).Err()
		},
	}
	client := New(fake, WithConnectTimeout(20*time.Millisecond))

	start := time.Now()
	_, err := client.Keyboards(context.Background())
	if !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("connect was not bounded by its budget, took %v", elapsed)
	}
	if client.sess.isConnected() {
		t.Error("expected session to remain not-connected after timeout")
	}
}
