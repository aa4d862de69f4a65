package control

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vietddude/keyctl/internal/core/domain"
	"github.com/vietddude/keyctl/internal/infra/rpc"
)

// DefaultProbeTimeout is deliberately aggressive: a healthy keymapd
// answers GetStatus locally in single-digit milliseconds, so anything
// slower than this is treated as the daemon being gone rather than slow.
const DefaultProbeTimeout = 50 * time.Millisecond

// Prober answers whether the daemon is reachable at all. It depends on
// the transport only and carries no session state, so it is safe to use
// before, after, or instead of a session.
type Prober struct {
	ch      rpc.Channel
	timeout time.Duration
}

// NewProber creates a prober with the given per-probe deadline.
// A zero timeout falls back to DefaultProbeTimeout.
func NewProber(ch rpc.Channel, timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &Prober{ch: ch, timeout: timeout}
}

// ProbeStatus issues the status call under the short probe deadline,
// nested inside the caller's own cancellation. Expiry of the probe
// deadline is reinterpreted as the daemon being unavailable; caller
// cancellation propagates as the caller's own context error.
func (p *Prober) ProbeStatus(ctx context.Context) (*domain.Status, error) {
	pctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	st, err := p.ch.GetStatus(pctx)
	if err == nil {
		return st, nil
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if errors.Is(pctx.Err(), context.DeadlineExceeded) || status.Code(err) == codes.DeadlineExceeded {
		return nil, fmt.Errorf("%w: connection timeout", domain.ErrServiceUnavailable)
	}
	return nil, err
}
