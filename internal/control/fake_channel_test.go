package control

import (
	"context"
	"sync"
	"time"

	"github.com/vietddude/keyctl/internal/core/domain"
)

// fakeChannel implements rpc.Channel for session tests. Behavior is
// configured through the error fields and optional func hooks; call
// counts are tracked under the mutex so concurrent tests can assert on
// them.
type fakeChannel struct {
	mu sync.Mutex

	connectAnyCalls int
	connectCalls    int
	disconnectCalls int
	closeCalls      int
	stepCalls       int

	connectAnyErr error
	connectErr    error
	disconnectErr error

	connectAnyFn func(ctx context.Context) error
	statusFn     func(ctx context.Context) (*domain.Status, error)
	stepFn       func(call int) (domain.StepResult, error)

	keyboards []domain.Keyboard

	lastAllLedsColor domain.Color
	lastStatusLedOn  bool
}

func (f *fakeChannel) GetStatus(ctx context.Context) (*domain.Status, error) {
	if f.statusFn != nil {
		return f.statusFn(ctx)
	}
	return &domain.Status{DaemonVersion: "test"}, nil
}

func (f *fakeChannel) GetKeyboards(ctx context.Context) ([]domain.Keyboard, error) {
	return f.keyboards, nil
}

func (f *fakeChannel) ConnectAnyKeyboard(ctx context.Context) error {
	f.mu.Lock()
	f.connectAnyCalls++
	f.mu.Unlock()

	if f.connectAnyFn != nil {
		return f.connectAnyFn(ctx)
	}
	return f.connectAnyErr
}

func (f *fakeChannel) ConnectKeyboard(ctx context.Context, id int) error {
	f.mu.Lock()
	f.connectCalls++
	f.mu.Unlock()
	return f.connectErr
}

func (f *fakeChannel) Disconnect(ctx context.Context) error {
	f.mu.Lock()
	f.disconnectCalls++
	f.mu.Unlock()
	return f.disconnectErr
}

func (f *fakeChannel) SetLayer(ctx context.Context, layer int) error {
	return nil
}

func (f *fakeChannel) UnsetLayer(ctx context.Context, layer int) error {
	return nil
}

func (f *fakeChannel) SetLed(ctx context.Context, led int, color domain.Color, sustain time.Duration) error {
	return nil
}

func (f *fakeChannel) SetAllLeds(ctx context.Context, color domain.Color, sustain time.Duration) error {
	f.mu.Lock()
	f.lastAllLedsColor = color
	f.mu.Unlock()
	return nil
}

func (f *fakeChannel) SetStatusLed(ctx context.Context, led int, on bool, sustain time.Duration) error {
	f.mu.Lock()
	f.lastStatusLedOn = on
	f.mu.Unlock()
	return nil
}

func (f *fakeChannel) IncreaseBrightness(ctx context.Context) (domain.StepResult, error) {
	return f.step()
}

func (f *fakeChannel) DecreaseBrightness(ctx context.Context) (domain.StepResult, error) {
	return f.step()
}

func (f *fakeChannel) step() (domain.StepResult, error) {
	f.mu.Lock()
	f.stepCalls++
	call := f.stepCalls
	f.mu.Unlock()

	if f.stepFn != nil {
		return f.stepFn(call)
	}
	return domain.StepResult{Success: true}, nil
}

func (f *fakeChannel) Close() error {
	f.mu.Lock()
	f.closeCalls++
	f.mu.Unlock()
	return nil
}

func (f *fakeChannel) counts() (connectAny, disconnect, closeCalls, steps int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connectAnyCalls, f.disconnectCalls, f.closeCalls, f.stepCalls
}
