// Package control implements the session layer over the keymapd channel:
// the lazy one-shot connect, benign-failure classification, availability
// probing and the stepped brightness executor. Every public operation
// routes through the ensure-connected gate before touching the daemon.
package control

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/vietddude/keyctl/internal/core/domain"
	"github.com/vietddude/keyctl/internal/infra/rpc"
)

// DefaultConnectTimeout bounds the one-shot session connect so a hung
// transport cannot block the first operation forever.
const DefaultConnectTimeout = 5 * time.Second

// closeTimeout bounds the best-effort disconnect during Close.
const closeTimeout = 2 * time.Second

// Client is the session-scoped facade over the keymapd channel.
type Client struct {
	ch     rpc.Channel
	prober *Prober
	sess   session

	connectTimeout time.Duration
	probeTimeout   time.Duration

	closeOnce sync.Once
}

// Option configures a Client.
type Option func(*Client)

// WithConnectTimeout overrides the budget for the one-shot connect.
func WithConnectTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.connectTimeout = d
		}
	}
}

// WithProbeTimeout overrides the availability probe deadline.
func WithProbeTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.probeTimeout = d
		}
	}
}

// New creates a client over the given channel. The session connect is
// lazy: nothing touches the daemon until the first operation.
func New(ch rpc.Channel, opts ...Option) *Client {
	c := &Client{
		ch:             ch,
		connectTimeout: DefaultConnectTimeout,
		probeTimeout:   DefaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.prober = NewProber(ch, c.probeTimeout)
	return c
}

// Status queries the daemon's state under the short probe deadline, so a
// dead daemon is reported quickly as ErrServiceUnavailable instead of
// hanging for the transport's default timeout.
func (c *Client) Status(ctx context.Context) (*domain.Status, error) {
	if err := c.ensureConnected(ctx); err != nil {
		return nil, err
	}
	return c.prober.ProbeStatus(ctx)
}

// Keyboards lists the devices the daemon knows about.
func (c *Client) Keyboards(ctx context.Context) ([]domain.Keyboard, error) {
	if err := c.ensureConnected(ctx); err != nil {
		return nil, err
	}
	return c.ch.GetKeyboards(ctx)
}

// ConnectAny asks the daemon to attach to any available keyboard.
// "Already connected" counts as success, "no keyboard available" as an
// unsuccessful-but-not-erroring result.
func (c *Client) ConnectAny(ctx context.Context) (domain.ConnectResult, error) {
	if err := c.ensureConnected(ctx); err != nil {
		return domain.ConnectResult{}, err
	}
	return connectResult(c.ch.ConnectAnyKeyboard(ctx))
}

// Connect asks the daemon to attach to a specific keyboard.
func (c *Client) Connect(ctx context.Context, id int) (domain.ConnectResult, error) {
	if err := c.ensureConnected(ctx); err != nil {
		return domain.ConnectResult{}, err
	}
	return connectResult(c.ch.ConnectKeyboard(ctx, id))
}

// connectResult normalizes benign connect failures into domain results.
func connectResult(err error) (domain.ConnectResult, error) {
	if err == nil {
		return domain.ConnectResult{Connected: true}, nil
	}
	switch ClassifyError(err) {
	case OutcomeAlreadyConnected:
		return domain.ConnectResult{Connected: true}, nil
	case OutcomeNoKeyboard:
		return domain.ConnectResult{}, nil
	}
	return domain.ConnectResult{}, err
}

// Disconnect detaches the daemon from its current keyboard.
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.ensureConnected(ctx); err != nil {
		return err
	}
	return c.ch.Disconnect(ctx)
}

// SetLayer activates a layer on the connected keyboard.
func (c *Client) SetLayer(ctx context.Context, layer int) error {
	if err := c.ensureConnected(ctx); err != nil {
		return err
	}
	return c.ch.SetLayer(ctx, layer)
}

// UnsetLayer deactivates a layer on the connected keyboard.
func (c *Client) UnsetLayer(ctx context.Context, layer int) error {
	if err := c.ensureConnected(ctx); err != nil {
		return err
	}
	return c.ch.UnsetLayer(ctx, layer)
}

// SetLed colors a single LED.
func (c *Client) SetLed(ctx context.Context, led int, color domain.Color, sustain time.Duration) error {
	if err := c.ensureConnected(ctx); err != nil {
		return err
	}
	return c.ch.SetLed(ctx, led, color, sustain)
}

// SetAllLeds colors the whole board.
func (c *Client) SetAllLeds(ctx context.Context, color domain.Color, sustain time.Duration) error {
	if err := c.ensureConnected(ctx); err != nil {
		return err
	}
	return c.ch.SetAllLeds(ctx, color, sustain)
}

// SetStatusLed switches a status LED on or off.
func (c *Client) SetStatusLed(ctx context.Context, led int, on bool, sustain time.Duration) error {
	if err := c.ensureConnected(ctx); err != nil {
		return err
	}
	return c.ch.SetStatusLed(ctx, led, on, sustain)
}

// RestoreLeds returns the whole board to off.
func (c *Client) RestoreLeds(ctx context.Context) error {
	return c.SetAllLeds(ctx, domain.Color{}, 0)
}

// RestoreStatusLed returns a status LED to off.
func (c *Client) RestoreStatusLed(ctx context.Context, led int) error {
	return c.SetStatusLed(ctx, led, false, 0)
}

// Close releases the session. The disconnect is best effort: a daemon
// that is gone or already detached must not turn disposal into an error.
// Close is idempotent and always returns nil.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		if c.sess.isConnected() {
			ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
			defer cancel()
			if err := c.ch.Disconnect(ctx); err != nil {
				slog.Debug("Disconnect on close failed", "error", err)
			}
		}
		if err := c.ch.Close(); err != nil {
			slog.Debug("Channel close failed", "error", err)
		}
	})
	return nil
}
