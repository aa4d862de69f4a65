package domain

// Keyboard describes a device known to the keymapd daemon.
type Keyboard struct {
	ID           int
	Path         string
	FriendlyName string
	IsConnected  bool
}

// Status is the daemon's self-reported state.
type Status struct {
	DaemonVersion     string
	ConnectedKeyboard *Keyboard
}

// Color is an RGB triple. The values are passed through to the daemon
// untouched; keyctl attaches no meaning to them.
type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
}
