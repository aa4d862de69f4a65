// Package rpc provides the transport channel to the keymapd daemon.
//
// This package contains:
//   - Channel interface: one method per daemon RPC
//   - GRPCChannel: gRPC implementation with a JSON message codec
//   - health tracking recorded at the invoke choke point
package rpc

import (
	"context"
	"time"

	"github.com/vietddude/keyctl/internal/core/domain"
)

// Channel is the typed transport abstraction over the daemon's RPC
// surface. A failed call returns a gRPC status error carrying the
// daemon's status code and free-text diagnostic; the session layer
// classifies that text, the channel does not interpret it.
type Channel interface {
	// GetStatus returns the daemon's self-reported state.
	GetStatus(ctx context.Context) (*domain.Status, error)

	// GetKeyboards lists devices the daemon knows about.
	GetKeyboards(ctx context.Context) ([]domain.Keyboard, error)

	// ConnectAnyKeyboard asks the daemon to attach to any available device.
	ConnectAnyKeyboard(ctx context.Context) error

	// ConnectKeyboard asks the daemon to attach to a specific device.
	ConnectKeyboard(ctx context.Context, id int) error

	// Disconnect detaches the daemon from its current device.
	Disconnect(ctx context.Context) error

	// SetLayer activates a layer; UnsetLayer deactivates it.
	SetLayer(ctx context.Context, layer int) error
	UnsetLayer(ctx context.Context, layer int) error

	// SetLed colors a single LED, SetAllLeds the whole board. A zero
	// sustain means "until changed".
	SetLed(ctx context.Context, led int, color domain.Color, sustain time.Duration) error
	SetAllLeds(ctx context.Context, color domain.Color, sustain time.Duration) error

	// SetStatusLed switches a status LED on or off.
	SetStatusLed(ctx context.Context, led int, on bool, sustain time.Duration) error

	// IncreaseBrightness and DecreaseBrightness perform one step each.
	// A reply with Success=false means the step had no effect.
	IncreaseBrightness(ctx context.Context) (domain.StepResult, error)
	DecreaseBrightness(ctx context.Context) (domain.StepResult, error)

	// Close cleans up resources.
	Close() error
}
