package control

import (
	"context"
	"fmt"
	"sync"

	"github.com/vietddude/keyctl/internal/core/domain"
)

// session owns the connected flag and the one-shot lazy connect. The
// sync.Once guarantees at most one underlying connect call no matter how
// many operations race on ensureConnected; concurrent callers block in
// Do until the first attempt resolves and then all observe its outcome.
type session struct {
	connectOnce sync.Once
	connectErr  error

	mu        sync.Mutex
	connected bool
}

func (s *session) markConnected() {
	s.mu.Lock()
	s.connected = true
	s.mu.Unlock()
}

func (s *session) isConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// ensureConnected gates every facade operation. The first caller runs the
// connect sequence and receives its error verbatim; the Once is never
// re-armed, so after a failed first attempt later callers get
// ErrNotConnected instead of a new network attempt.
func (c *Client) ensureConnected(ctx context.Context) error {
	first := false
	c.sess.connectOnce.Do(func() {
		first = true
		c.sess.connectErr = c.connectSession(ctx)
	})

	if first {
		return c.sess.connectErr
	}
	if !c.sess.isConnected() {
		return domain.ErrNotConnected
	}
	return nil
}

// connectSession issues the single "connect to any keyboard" call under a
// bounded budget. Benign outcomes still mark the session connected: the
// daemon answered, and whether a keyboard happens to be attached is
// immaterial for session liveness.
func (c *Client) connectSession(ctx context.Context) error {
	cctx, cancel := context.WithTimeout(ctx, c.connectTimeout)
	defer cancel()

	err := c.ch.ConnectAnyKeyboard(cctx)
	if err == nil {
		c.sess.markConnected()
		return nil
	}

	switch ClassifyError(err) {
	case OutcomeAlreadyConnected, OutcomeNoKeyboard:
		c.sess.markConnected()
		return nil
	}

	return fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
}
