package domain

import "errors"

// Error taxonomy for the session layer. Remote operation failures on
// non-connect calls are propagated verbatim as gRPC status errors and
// therefore have no sentinel here; cancellation surfaces as the caller's
// own context error.
var (
	// ErrNotConnected means the one-shot session connect never succeeded.
	// The session does not retry, so this is permanent for the client
	// instance.
	ErrNotConnected = errors.New("not connected to keymapd")

	// ErrServiceUnavailable means a transport-level failure or timeout
	// while connecting to or probing the daemon.
	ErrServiceUnavailable = errors.New("keymapd unavailable")

	// ErrInvalidArgument means a caller-supplied value was out of range.
	ErrInvalidArgument = errors.New("invalid argument")
)
